package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeClassifier_Classify(t *testing.T) {
	c, err := NewScopeClassifier([]string{"198.18.0.0/15", "192.168.100.0/24"})
	require.NoError(t, err)

	tests := map[string]string{
		"192.168.1.1":   ScopePrivate,
		"10.20.30.1":    ScopePrivate,
		"172.31.255.1":  ScopePrivate,
		"172.32.0.1":    ScopePublic,
		"100.64.0.1":    ScopeCGNAT,
		"169.254.1.1":   ScopeLinkLocal,
		"127.0.0.1":     ScopeLoopback,
		"0.0.0.0":       ScopeUnspecified,
		"8.8.8.8":       ScopePublic,
		"198.19.1.1":    ScopePrivate,
		"192.168.100.1": ScopePrivate,
		"fe80::1":       "",
		"not-an-ip":     "",
	}

	for ip, want := range tests {
		t.Run(ip, func(t *testing.T) {
			assert.Equal(t, want, c.Classify(ip))
		})
	}
}

func TestNewScopeClassifier_InvalidCIDR(t *testing.T) {
	_, err := NewScopeClassifier([]string{"10.0.0.0/33"})
	assert.Error(t, err)
}
