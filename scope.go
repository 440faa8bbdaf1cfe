/*
File: scope.go
Version: 1.0.0
Description: Classifies the gateway address (private, cgnat, link-local, loopback, unspecified, public)
             with a CIDR trie.
*/

package main

import (
	"fmt"
	"net"

	"github.com/yl2chen/cidranger"
)

const (
	ScopePrivate     = "private"
	ScopeCGNAT       = "cgnat"
	ScopeLinkLocal   = "link-local"
	ScopeLoopback    = "loopback"
	ScopeUnspecified = "unspecified"
	ScopePublic      = "public"
)

var builtinScopes = []struct {
	cidr  string
	scope string
}{
	{"0.0.0.0/8", ScopeUnspecified},
	{"10.0.0.0/8", ScopePrivate},
	{"100.64.0.0/10", ScopeCGNAT},
	{"127.0.0.0/8", ScopeLoopback},
	{"169.254.0.0/16", ScopeLinkLocal},
	{"172.16.0.0/12", ScopePrivate},
	{"192.168.0.0/16", ScopePrivate},
}

type scopeEntry struct {
	network net.IPNet
	scope   string
}

func (e *scopeEntry) Network() net.IPNet {
	return e.network
}

type ScopeClassifier struct {
	ranger cidranger.Ranger
}

// NewScopeClassifier builds the classifier; extraPrivate adds site-specific private ranges.
func NewScopeClassifier(extraPrivate []string) (*ScopeClassifier, error) {
	ranger := cidranger.NewPCTrieRanger()

	insert := func(cidr, scope string) error {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return fmt.Errorf("invalid CIDR '%s': %w", cidr, err)
		}
		return ranger.Insert(&scopeEntry{network: *ipNet, scope: scope})
	}

	for _, b := range builtinScopes {
		if err := insert(b.cidr, b.scope); err != nil {
			return nil, err
		}
	}
	for _, cidr := range extraPrivate {
		if err := insert(cidr, ScopePrivate); err != nil {
			return nil, err
		}
	}
	return &ScopeClassifier{ranger: ranger}, nil
}

// Classify returns the scope of the most specific matching range, "public" when none
// matches, or "" when ip is not an IPv4 address.
func (c *ScopeClassifier) Classify(ip string) string {
	parsed := net.ParseIP(ip).To4()
	if parsed == nil {
		return ""
	}

	entries, err := c.ranger.ContainingNetworks(parsed)
	if err != nil || len(entries) == 0 {
		return ScopePublic
	}

	best := ""
	bestLen := -1
	for _, e := range entries {
		se, ok := e.(*scopeEntry)
		if !ok {
			continue
		}
		if ones, _ := se.network.Mask.Size(); ones > bestLen {
			best, bestLen = se.scope, ones
		}
	}
	if best == "" {
		return ScopePublic
	}
	return best
}
