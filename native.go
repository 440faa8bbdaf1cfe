/*
File: native.go
Version: 1.0.0
Description: Route table read through the OS API (jackpal/gateway), appended after the
             command strategies when native.gateway is enabled.
*/

package main

import (
	"context"

	"github.com/jackpal/gateway"
)

var discoverGateway = gateway.DiscoverGateway

func nativeGatewayStrategy() Strategy {
	return Strategy{
		Name: "native route table",
		Lookup: func(ctx context.Context) string {
			ip, err := discoverGateway()
			if err != nil {
				LogDebug("[GATEWAY] Native route table lookup failed: %v", err)
				return ""
			}
			if v4 := ip.To4(); v4 != nil {
				return v4.String()
			}
			return ""
		},
	}
}
