/*
File: probe.go
Version: 1.1.0
Description: Active probe used to populate the OS neighbor cache before a second table read.
             The probe result is advisory; callers never branch on it.
*/

package main

import (
	"context"
	"errors"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

const (
	DefaultProbeTimeout = 4 * time.Second
	DefaultSettleDelay  = 1 * time.Second
)

type Prober interface {
	Probe(ctx context.Context, ip string) bool
}

// ExecProber runs the platform ping utility once and discards its output.
type ExecProber struct {
	runner   Runner
	platform PlatformStrategy
	timeout  time.Duration
}

func NewExecProber(r Runner, p PlatformStrategy, timeout time.Duration) *ExecProber {
	return &ExecProber{runner: r, platform: p, timeout: timeout}
}

// Probe reports whether ping ran. A lost echo (non-zero exit) still counts:
// the request itself is what triggers address resolution.
func (p *ExecProber) Probe(ctx context.Context, ip string) bool {
	if ip == "" {
		return false
	}
	_, err := p.runner.Exec(ctx, p.platform.ProbeCommand(ip), p.timeout)
	if err == nil {
		return true
	}
	var fault *ProcessFault
	if errors.As(err, &fault) && fault.Kind == FaultExitStatus {
		return true
	}
	LogDebug("[PROBE] %v", err)
	return false
}

// ICMPProber sends the echo in-process instead of spawning ping.
type ICMPProber struct {
	timeout    time.Duration
	privileged bool
}

func NewICMPProber(timeout time.Duration, privileged bool) *ICMPProber {
	return &ICMPProber{timeout: timeout, privileged: privileged}
}

func (p *ICMPProber) Probe(ctx context.Context, ip string) bool {
	if ip == "" {
		return false
	}
	pr, err := probing.NewPinger(ip)
	if err != nil {
		LogDebug("[PROBE] Resolving %s: %v", ip, err)
		return false
	}
	pr.SetLogger(nil)
	pr.SetPrivileged(p.privileged)
	pr.RecordRtts = false
	pr.Count = 1
	pr.Timeout = p.timeout

	if err := pr.RunWithContext(ctx); err != nil {
		LogDebug("[PROBE] Pinging %s: %v", ip, err)
		return false
	}
	stats := pr.Statistics()
	LogDebug("[PROBE] %s: sent=%d recv=%d", ip, stats.PacketsSent, stats.PacketsRecv)
	return stats.PacketsSent > 0
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
