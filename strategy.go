/*
File: strategy.go
Version: 2.0.0
Description: Ordered extraction strategies per platform.
             Each strategy pairs a diagnostic command with an extractor for its output; strategies
             are tried in declared order and the first non-empty value wins.
*/

package main

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// --- Strategy ---

// Extractor pulls the wanted value out of command output, returning "" when absent.
type Extractor func(out string) string

// Strategy is one step of a resolution chain. Lookup, when set, replaces the
// command/extractor pair (heuristics and native table reads).
type Strategy struct {
	Name    string
	Command Command
	Extract Extractor
	Lookup  func(ctx context.Context) string
}

func (s Strategy) run(ctx context.Context, r Runner, timeout time.Duration) string {
	if s.Lookup != nil {
		return s.Lookup(ctx)
	}
	out := runText(ctx, r, s.Command, timeout)
	if out == "" || s.Extract == nil {
		return ""
	}
	return s.Extract(out)
}

// PlatformStrategy bundles the gateway and neighbor chains of one OS family.
type PlatformStrategy interface {
	Family() OSFamily
	GatewayStrategies() []Strategy
	NeighborStrategies(ip string) []Strategy
	ProbeCommand(ip string) Command
}

type PlatformOptions struct {
	NativeGateway  bool
	NativeNeighbor bool
	HostIPv4       HostIPv4Func
}

func NewPlatform(family OSFamily, opts PlatformOptions) PlatformStrategy {
	if opts.HostIPv4 == nil {
		opts.HostIPv4 = lookupHostIPv4
	}
	switch family {
	case FamilyPOSIX:
		return &posixPlatform{opts: opts}
	case FamilyWindows:
		return &windowsPlatform{opts: opts}
	default:
		return otherPlatform{}
	}
}

// --- Patterns ---

const ipv4Pattern = `(\d{1,3}(?:\.\d{1,3}){3})`

var (
	viaRegex            = regexp.MustCompile(`via\s+` + ipv4Pattern)
	defaultViaRegex     = regexp.MustCompile(`default via\s+` + ipv4Pattern)
	netstatDefaultRegex = regexp.MustCompile(`(?m)^default\s+` + ipv4Pattern + `\s`)
	routeDefaultRegex   = regexp.MustCompile(`(?m)^0\.0\.0\.0\s+` + ipv4Pattern + `\s`)

	// 0.0.0.0    0.0.0.0    192.168.1.1    192.168.1.50    25
	routePrintRegex = regexp.MustCompile(`0\.0\.0\.0\s+0\.0\.0\.0\s+` + ipv4Pattern + `\s+` + ipv4Pattern + `\s+\d+`)
	// Default Gateway . . . . . . . . . : 192.168.1.1
	ipconfigGatewayRegex = regexp.MustCompile(`Default Gateway[^\r\n:]*:\s*` + ipv4Pattern)

	// 192.168.1.1 dev eth0 lladdr 00:11:22:33:44:55 REACHABLE
	lladdrRegex = regexp.MustCompile(`lladdr\s+([0-9a-f:]{12,17})`)
	macRegex    = regexp.MustCompile(`(?:[0-9a-f]{2}[:\-]){5}[0-9a-f]{2}`)
)

func submatch(re *regexp.Regexp) Extractor {
	return func(out string) string {
		if m := re.FindStringSubmatch(out); len(m) > 1 {
			return m[1]
		}
		return ""
	}
}

func firstOf(extractors ...Extractor) Extractor {
	return func(out string) string {
		for _, e := range extractors {
			if v := e(out); v != "" {
				return v
			}
		}
		return ""
	}
}

// macExtractor lower-cases the output before matching and normalizes the capture.
func macExtractor(re *regexp.Regexp, group int) Extractor {
	return func(out string) string {
		m := re.FindStringSubmatch(strings.ToLower(out))
		if len(m) <= group {
			return ""
		}
		mac, ok := NormalizeMAC(m[group])
		if !ok {
			return ""
		}
		return mac
	}
}

// --- POSIX (Linux, macOS) ---

type posixPlatform struct {
	opts PlatformOptions
}

func (p *posixPlatform) Family() OSFamily { return FamilyPOSIX }

func (p *posixPlatform) GatewayStrategies() []Strategy {
	list := []Strategy{
		{Name: "ip route get", Command: Line("ip route get 1.1.1.1"), Extract: submatch(viaRegex)},
		{Name: "ip route show default", Command: Line("ip route show default"), Extract: submatch(defaultViaRegex)},
		{Name: "netstat -rn", Command: Line("netstat -rn"), Extract: submatch(netstatDefaultRegex)},
		{Name: "route -n", Command: Line("route -n"), Extract: submatch(routeDefaultRegex)},
	}
	if p.opts.NativeGateway {
		list = append(list, nativeGatewayStrategy())
	}
	return list
}

func (p *posixPlatform) NeighborStrategies(ip string) []Strategy {
	list := []Strategy{
		{Name: "ip neigh show", Command: Argv("ip", "neigh", "show", ip), Extract: macExtractor(lladdrRegex, 1)},
		{Name: "arp -n", Command: Argv("arp", "-n", ip), Extract: macExtractor(macRegex, 0)},
		{Name: "arp -a", Command: Argv("arp", "-a"), Extract: macExtractor(ipThenMACRegex(ip), 1)},
	}
	if p.opts.NativeNeighbor {
		if s, ok := nativeNeighborStrategy(ip); ok {
			list = append(list, s)
		}
	}
	return list
}

func (p *posixPlatform) ProbeCommand(ip string) Command {
	return Argv("ping", "-c", "1", "-W", "1", ip)
}

// ipThenMACRegex matches the literal address followed, across any characters
// including newlines, by the first 6-octet MAC.
func ipThenMACRegex(ip string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + regexp.QuoteMeta(strings.ToLower(ip)) + `.*?((?:[0-9a-f]{2}[:\-]){5}[0-9a-f]{2})`)
}

// --- Windows ---

type windowsPlatform struct {
	opts PlatformOptions
}

func (w *windowsPlatform) Family() OSFamily { return FamilyWindows }

func (w *windowsPlatform) GatewayStrategies() []Strategy {
	list := []Strategy{
		{Name: "route print -4", Command: Line("route print -4"), Extract: submatch(routePrintRegex)},
		{Name: "ipconfig", Command: Line("ipconfig"), Extract: extractIpconfigGateway},
		{Name: "host address heuristic", Lookup: w.guessFromHost},
	}
	if w.opts.NativeGateway {
		list = append(list, nativeGatewayStrategy())
	}
	return list
}

// extractIpconfigGateway returns the first Default Gateway that is set and not 0.0.0.0.
func extractIpconfigGateway(out string) string {
	for _, m := range ipconfigGatewayRegex.FindAllStringSubmatch(out, -1) {
		if gw := m[1]; gw != "" && gw != "0.0.0.0" {
			return gw
		}
	}
	return ""
}

func (w *windowsPlatform) guessFromHost(ctx context.Context) string {
	hostIP, err := w.opts.HostIPv4(ctx)
	if err != nil {
		LogDebug("[GATEWAY] Host address lookup failed: %v", err)
		return ""
	}
	return guessGatewayFromHost(hostIP)
}

func (w *windowsPlatform) NeighborStrategies(ip string) []Strategy {
	quoted := regexp.QuoteMeta(ip)
	lineRegex := regexp.MustCompile(`(?m)^\s*` + quoted + `\s+([0-9a-fA-F\-]{17})\s`)
	looseRegex := regexp.MustCompile(`(?s)` + quoted + `.*?([0-9a-fA-F\-]{17})`)
	// Both patterns read the same arp -a output; the anchored one is preferred.
	return []Strategy{
		{Name: "arp -a", Command: Argv("arp", "-a"), Extract: firstOf(macExtractor(lineRegex, 1), macExtractor(looseRegex, 1))},
	}
}

func (w *windowsPlatform) ProbeCommand(ip string) Command {
	return Argv("ping", "-n", "1", ip)
}

// --- Other ---

// otherPlatform has no strategies; resolution fails without running anything.
type otherPlatform struct{}

func (otherPlatform) Family() OSFamily { return FamilyOther }

func (otherPlatform) GatewayStrategies() []Strategy { return nil }

func (otherPlatform) NeighborStrategies(string) []Strategy { return nil }

func (otherPlatform) ProbeCommand(ip string) Command {
	return Argv("ping", "-c", "1", "-W", "1", ip)
}
