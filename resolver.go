/*
File: resolver.go
Version: 1.3.0
Description: Orchestrates gateway lookup, neighbor lookup and the single probe-and-retry cycle,
             producing a success, partial or error outcome. Nothing escapes Resolve: every failure
             maps to one of the three outcomes.
*/

package main

import (
	"context"
	"runtime"
	"runtime/debug"
	"time"
)

// State is the last step reached by a resolution.
type State int

const (
	StateStart State = iota
	StateGatewayResolved
	StateGatewayFailed
	StateMACResolved
	StateMACMissing
	StateProbed
	StateMACRetryResolved
	StateMACStillMissing
)

func (s State) String() string {
	switch s {
	case StateGatewayResolved:
		return "GATEWAY_RESOLVED"
	case StateGatewayFailed:
		return "GATEWAY_FAILED"
	case StateMACResolved:
		return "MAC_RESOLVED"
	case StateMACMissing:
		return "MAC_MISSING"
	case StateProbed:
		return "PROBED"
	case StateMACRetryResolved:
		return "MAC_RETRY_RESOLVED"
	case StateMACStillMissing:
		return "MAC_STILL_MISSING"
	default:
		return "START"
	}
}

// PTRLookup returns the reverse DNS name of ip, or "".
type PTRLookup interface {
	LookupPTR(ctx context.Context, ip string) string
}

type Resolver struct {
	System    string
	Gateways  *GatewayResolver
	Neighbors *NeighborResolver
	Prober    Prober
	Settle    time.Duration

	// Optional enrichment of successful and partial outcomes.
	Scopes    *ScopeClassifier
	Hostnames PTRLookup

	sleep func(ctx context.Context, d time.Duration)
}

// Resolve runs one full resolution. It is safe to call concurrently; each call is independent.
func (r *Resolver) Resolve(ctx context.Context) (out Outcome) {
	out = Outcome{System: r.System, State: StateStart}

	defer func() {
		if rec := recover(); rec != nil {
			LogError("[RESOLVE] Panic during resolution: %v\nStack: %s", rec, debug.Stack())
			out = Outcome{Status: StatusError, System: r.System, Message: NoGatewayMessage, State: StateGatewayFailed}
		}
	}()

	gw, ok := r.Gateways.ResolveGateway(ctx)
	if !ok {
		out.State = StateGatewayFailed
		out.Status = StatusError
		out.Message = NoGatewayMessage
		LogWarn("[RESOLVE] %s: no default gateway found", out.State)
		return out
	}
	out.Gateway = gw
	out.State = StateGatewayResolved

	mac, ok := r.Neighbors.ResolveMAC(ctx, gw)
	if ok {
		out.State = StateMACResolved
	} else {
		out.State = StateMACMissing
		LogDebug("[RESOLVE] %s: probing %s", out.State, gw)

		r.Prober.Probe(ctx, gw)
		out.State = StateProbed
		r.wait(ctx, r.Settle)

		mac, ok = r.Neighbors.ResolveMAC(ctx, gw)
		if ok {
			out.State = StateMACRetryResolved
		} else {
			out.State = StateMACStillMissing
		}
	}

	if ok {
		out.Status = StatusSuccess
		out.MAC = mac
	} else {
		out.Status = StatusPartial
	}

	if r.Scopes != nil {
		out.Scope = r.Scopes.Classify(gw)
	}
	if r.Hostnames != nil {
		out.Hostname = r.Hostnames.LookupPTR(ctx, gw)
	}

	LogInfo("[RESOLVE] %s: gateway=%s mac=%s", out.State, out.Gateway, out.MAC)
	return out
}

func (r *Resolver) wait(ctx context.Context, d time.Duration) {
	if r.sleep != nil {
		r.sleep(ctx, d)
		return
	}
	sleepContext(ctx, d)
}

// --- Construction ---

// NewResolver wires the runner, platform chains and probe from cfg.
func NewResolver(cfg *Config, family OSFamily, runner Runner) (*Resolver, error) {
	platform := NewPlatform(family, PlatformOptions{
		NativeGateway:  cfg.Native.Gateway,
		NativeNeighbor: cfg.Native.Neighbor,
	})

	timeout := cfg.Commands.parsedTimeout

	var prober Prober
	switch cfg.Probe.Method {
	case ProbeMethodICMP:
		prober = NewICMPProber(cfg.Probe.parsedTimeout, cfg.Probe.Privileged)
	default:
		prober = NewExecProber(runner, platform, cfg.Probe.parsedTimeout)
	}
	prober = NewPacedProber(prober, newProbeLimiter(cfg.Probe.Rate, cfg.Probe.Burst))

	r := &Resolver{
		System:    SystemName(runtime.GOOS),
		Gateways:  NewGatewayResolver(runner, platform, timeout),
		Neighbors: NewNeighborResolver(runner, platform, timeout),
		Prober:    prober,
		Settle:    cfg.Probe.parsedDelay,
	}

	if cfg.Classify.Enabled {
		scopes, err := NewScopeClassifier(cfg.Classify.ExtraPrivate)
		if err != nil {
			return nil, err
		}
		r.Scopes = scopes
	}
	if cfg.Lookup.PTR {
		r.Hostnames = NewPTRResolver(cfg.Lookup.Server, cfg.Lookup.parsedTimeout)
	}
	return r, nil
}
