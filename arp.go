/*
File: arp.go
Version: 4.0.0
Description: Neighbor (ARP) table lookup for a single IPv4 address.
             Platform-specific native reads live in arp_linux.go and arp_others.go.
*/

package main

import (
	"context"
	"time"
)

type NeighborResolver struct {
	runner   Runner
	platform PlatformStrategy
	timeout  time.Duration
}

func NewNeighborResolver(r Runner, p PlatformStrategy, timeout time.Duration) *NeighborResolver {
	return &NeighborResolver{runner: r, platform: p, timeout: timeout}
}

// ResolveMAC returns the normalized MAC of ip from the OS neighbor table.
// An empty ip is absent input and runs nothing.
func (n *NeighborResolver) ResolveMAC(ctx context.Context, ip string) (mac string, ok bool) {
	if ip == "" {
		return "", false
	}
	for _, s := range n.platform.NeighborStrategies(ip) {
		if ctx.Err() != nil {
			return "", false
		}
		if mac = s.run(ctx, n.runner, n.timeout); mac != "" {
			LogDebug("[NEIGH] %s: %s -> %s", s.Name, ip, mac)
			return mac, true
		}
		LogDebug("[NEIGH] %s: no entry for %s", s.Name, ip)
	}
	return "", false
}
