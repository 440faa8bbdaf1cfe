/*
File: utils.go
Description: Host address helpers used by the Windows gateway heuristic.
*/

package main

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"
)

// HostIPv4Func resolves the local host name to an IPv4 address.
type HostIPv4Func func(ctx context.Context) (string, error)

func lookupHostIPv4(ctx context.Context) (string, error) {
	host, err := os.Hostname()
	if err != nil {
		return "", err
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return "", errors.New("no IPv4 address for " + host)
}

// guessGatewayFromHost assumes the router sits at .1 of the host's network.
// Loopback results carry no information and yield "".
func guessGatewayFromHost(hostIP string) string {
	if hostIP == "" || strings.HasPrefix(hostIP, "127.") {
		return ""
	}
	i := strings.LastIndexByte(hostIP, '.')
	if i < 0 {
		return ""
	}
	return hostIP[:i+1] + "1"
}
