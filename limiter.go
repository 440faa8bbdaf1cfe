/*
File: limiter.go
Version: 2.0.0
Description: Token bucket pacing for active probes. Probes wait for a token instead of being
             dropped, so repeated or concurrent resolutions cannot flood the gateway with echoes.
*/

package main

import (
	"context"

	"golang.org/x/time/rate"
)

// PacedProber delays each probe until the shared limiter grants a token.
type PacedProber struct {
	next    Prober
	limiter *rate.Limiter
}

func NewPacedProber(next Prober, limiter *rate.Limiter) Prober {
	if limiter == nil {
		return next
	}
	return &PacedProber{next: next, limiter: limiter}
}

func (p *PacedProber) Probe(ctx context.Context, ip string) bool {
	if err := p.limiter.Wait(ctx); err != nil {
		LogDebug("[PROBE] Pacing wait for %s aborted: %v", ip, err)
		return false
	}
	return p.next.Probe(ctx, ip)
}

// newProbeLimiter returns nil (no pacing) when qps is not positive.
func newProbeLimiter(qps float64, burst int) *rate.Limiter {
	if qps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(qps), burst)
}
