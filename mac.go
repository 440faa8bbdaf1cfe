/*
File: mac.go
Version: 1.0.0
Description: Canonical MAC address form (six lowercase hex octets, colon separated).
*/

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeMAC converts dash separated, uppercase, unseparated (12 hex digits) and
// leading-zero-compressed forms ("0:1b:2:..") to aa:bb:cc:dd:ee:ff.
func NormalizeMAC(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", ":")

	var parts []string
	switch {
	case strings.Contains(s, ":"):
		parts = strings.Split(s, ":")
	case len(s) == 12:
		for i := 0; i < 12; i += 2 {
			parts = append(parts, s[i:i+2])
		}
	}
	if len(parts) != 6 {
		return "", false
	}

	octets := make([]string, 6)
	for i, p := range parts {
		if len(p) == 0 || len(p) > 2 {
			return "", false
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return "", false
		}
		octets[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(octets, ":"), true
}
