/*
File: rdns.go
Version: 2.0.0
Description: Reverse DNS (PTR) name of the gateway. Queries go straight to a configured
             nameserver (or the first one in /etc/resolv.conf) with miekg/dns; concurrent lookups of
             the same address share one query and answers are cached for rdnsTTL.
             Falls back to the system resolver when no nameserver can be determined.
*/

package main

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/sync/singleflight"
)

const (
	rdnsTTL           = 1 * time.Hour
	DefaultPTRTimeout = 2 * time.Second
	resolvConfPath    = "/etc/resolv.conf"
)

type rdnsEntry struct {
	hostname  string
	expiresAt time.Time
}

type PTRResolver struct {
	server  string
	timeout time.Duration
	client  *dns.Client

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]rdnsEntry
	now   func() time.Time
}

// NewPTRResolver returns a resolver that asks server ("host" or "host:port").
// An empty server means the first nameserver of /etc/resolv.conf.
func NewPTRResolver(server string, timeout time.Duration) *PTRResolver {
	if timeout <= 0 {
		timeout = DefaultPTRTimeout
	}
	if server == "" {
		server = systemNameserver()
	} else if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}
	return &PTRResolver{
		server:  server,
		timeout: timeout,
		client:  &dns.Client{Net: "udp", Timeout: timeout},
		cache:   make(map[string]rdnsEntry),
		now:     time.Now,
	}
}

func systemNameserver() string {
	cfg, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(cfg.Servers) == 0 {
		return ""
	}
	return net.JoinHostPort(cfg.Servers[0], cfg.Port)
}

// LookupPTR returns the PTR name of ip without the trailing dot, or "" if there is none.
func (r *PTRResolver) LookupPTR(ctx context.Context, ip string) string {
	r.mu.RLock()
	entry, found := r.cache[ip]
	r.mu.RUnlock()
	if found && r.now().Before(entry.expiresAt) {
		LogDebug("[RDNS] Cache Hit: %s -> %s", ip, entry.hostname)
		return entry.hostname
	}

	v, err, shared := r.group.Do(ip, func() (interface{}, error) {
		return r.query(ctx, ip)
	})
	if err != nil {
		LogDebug("[RDNS] Lookup Failed for %s: %v (shared=%v)", ip, err, shared)
		return ""
	}
	hostname := v.(string)

	r.mu.Lock()
	r.cache[ip] = rdnsEntry{hostname: hostname, expiresAt: r.now().Add(rdnsTTL)}
	r.mu.Unlock()

	return hostname
}

func (r *PTRResolver) query(ctx context.Context, ip string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if r.server == "" {
		names, err := net.DefaultResolver.LookupAddr(ctx, ip)
		if err != nil || len(names) == 0 {
			return "", err
		}
		return strings.TrimSuffix(names[0], "."), nil
	}

	name, err := dns.ReverseAddr(ip)
	if err != nil {
		return "", err
	}
	m := new(dns.Msg)
	m.SetQuestion(name, dns.TypePTR)
	m.RecursionDesired = true

	in, _, err := r.client.ExchangeContext(ctx, m, r.server)
	if err != nil {
		return "", err
	}
	for _, rr := range in.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			return strings.TrimSuffix(ptr.Ptr, "."), nil
		}
	}
	return "", nil
}
