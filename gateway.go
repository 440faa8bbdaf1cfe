/*
File: gateway.go
Version: 1.1.0
Description: Default gateway resolution. Walks the platform's gateway strategies in order and
             returns the first IPv4 address found. Absence is reported as ok == false, never as "".
*/

package main

import (
	"context"
	"time"
)

type GatewayResolver struct {
	runner   Runner
	platform PlatformStrategy
	timeout  time.Duration
}

func NewGatewayResolver(r Runner, p PlatformStrategy, timeout time.Duration) *GatewayResolver {
	return &GatewayResolver{runner: r, platform: p, timeout: timeout}
}

// ResolveGateway returns the default gateway, or ok == false when every strategy came up empty.
func (g *GatewayResolver) ResolveGateway(ctx context.Context) (ip string, ok bool) {
	for _, s := range g.platform.GatewayStrategies() {
		if ctx.Err() != nil {
			return "", false
		}
		if ip = s.run(ctx, g.runner, g.timeout); ip != "" {
			LogDebug("[GATEWAY] %s -> %s", s.Name, ip)
			return ip, true
		}
		LogDebug("[GATEWAY] %s: no match", s.Name)
	}
	return "", false
}
