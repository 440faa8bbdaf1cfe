//go:build linux

/*
File: arp_linux.go
Version: 2.0.0
Description: Linux neighbor table read over Netlink, appended after the command strategies
             when native.neighbor is enabled.
*/

package main

import (
	"context"
	"net"

	"github.com/vishvananda/netlink"
)

var neighList = netlink.NeighList

func nativeNeighborStrategy(ip string) (Strategy, bool) {
	return Strategy{
		Name: "netlink neigh",
		Lookup: func(ctx context.Context) string {
			return lookupNetlinkNeighbor(ip)
		},
	}, true
}

func lookupNetlinkNeighbor(ip string) string {
	target := net.ParseIP(ip).To4()
	if target == nil {
		return ""
	}

	list, err := neighList(0, netlink.FAMILY_V4)
	if err != nil {
		LogDebug("[NEIGH] Failed to list neighbors: %v", err)
		return ""
	}

	for _, neigh := range list {
		if !neigh.IP.Equal(target) {
			continue
		}
		if !isValidState(neigh.State) || len(neigh.HardwareAddr) == 0 {
			continue
		}
		if mac, ok := NormalizeMAC(neigh.HardwareAddr.String()); ok {
			return mac
		}
	}
	return ""
}

// isValidState returns true if the neighbor state indicates a valid, resolvable MAC.
func isValidState(state int) bool {
	// NUD_REACHABLE: Valid and reachable
	// NUD_PERMANENT: Static entry
	// NUD_STALE: Valid but needs verification (still usable)
	// NUD_DELAY: Valid, waiting for verification
	// NUD_PROBE: Valid, verification in progress
	const validMask = netlink.NUD_REACHABLE | netlink.NUD_PERMANENT | netlink.NUD_STALE | netlink.NUD_DELAY | netlink.NUD_PROBE
	return (state & validMask) != 0
}
