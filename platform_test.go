package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyFor(t *testing.T) {
	tests := map[string]OSFamily{
		"linux":   FamilyPOSIX,
		"darwin":  FamilyPOSIX,
		"windows": FamilyWindows,
		"freebsd": FamilyOther,
		"plan9":   FamilyOther,
		"":        FamilyOther,
	}

	for goos, want := range tests {
		t.Run(goos, func(t *testing.T) {
			assert.Equal(t, want, FamilyFor(goos))
		})
	}
}

func TestSystemName(t *testing.T) {
	tests := map[string]string{
		"linux":   "Linux",
		"darwin":  "Darwin",
		"windows": "Windows",
		"freebsd": "FreeBSD",
		"solaris": "Solaris",
		"":        "",
	}

	for goos, want := range tests {
		t.Run(goos, func(t *testing.T) {
			assert.Equal(t, want, SystemName(goos))
		})
	}
}

func TestPlatform_ProbeCommand(t *testing.T) {
	posix := NewPlatform(FamilyPOSIX, PlatformOptions{})
	windows := NewPlatform(FamilyWindows, PlatformOptions{})

	assert.Equal(t, "ping -c 1 -W 1 10.0.0.1", posix.ProbeCommand("10.0.0.1").String())
	assert.Equal(t, "ping -n 1 10.0.0.1", windows.ProbeCommand("10.0.0.1").String())
	assert.Equal(t, FamilyOther, NewPlatform(FamilyOther, PlatformOptions{}).Family())
}
