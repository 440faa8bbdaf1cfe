/*
File: platform.go
Version: 1.0.1
Description: OS family detection and the platform name reported to callers.
*/

package main

import (
	"runtime"
	"strings"
)

type OSFamily int

const (
	FamilyOther OSFamily = iota
	FamilyPOSIX
	FamilyWindows
)

func (f OSFamily) String() string {
	switch f {
	case FamilyPOSIX:
		return "posix"
	case FamilyWindows:
		return "windows"
	default:
		return "other"
	}
}

// FamilyFor maps a GOOS value to the family whose command set applies to it.
// Only Linux and macOS are treated as POSIX; the BSDs ship different tools.
func FamilyFor(goos string) OSFamily {
	switch goos {
	case "linux", "darwin":
		return FamilyPOSIX
	case "windows":
		return FamilyWindows
	default:
		return FamilyOther
	}
}

func CurrentFamily() OSFamily {
	return FamilyFor(runtime.GOOS)
}

// SystemName returns the display name of a GOOS value, e.g. "Linux" or "Darwin".
func SystemName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "":
		return ""
	default:
		return strings.ToUpper(goos[:1]) + goos[1:]
	}
}
