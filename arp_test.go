package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNeighborResolver_POSIX(t *testing.T) {
	const gw = "192.168.1.1"

	tests := map[string]struct {
		runner    *fakeRunner
		wantMAC   string
		wantOK    bool
		wantCalls []string
	}{
		"ip neigh": {
			runner:    newFakeRunner().on("ip neigh show 192.168.1.1", readTestdata(t, "ip_neigh.txt")),
			wantMAC:   "00:11:22:33:44:55",
			wantOK:    true,
			wantCalls: []string{"ip neigh show 192.168.1.1"},
		},
		"ip neigh incomplete falls through to arp -n": {
			runner: newFakeRunner().
				on("ip neigh show 192.168.1.1", "192.168.1.1 dev eth0 INCOMPLETE\n").
				on("arp -n 192.168.1.1", readTestdata(t, "arp_n.txt")),
			wantMAC:   "aa:bb:cc:dd:ee:ff",
			wantOK:    true,
			wantCalls: []string{"ip neigh show 192.168.1.1", "arp -n 192.168.1.1"},
		},
		"arp -a across a line break": {
			runner:    newFakeRunner().on("arp -a", readTestdata(t, "arp_a_darwin.txt")),
			wantMAC:   "00:1b:2c:3d:4e:5f",
			wantOK:    true,
			wantCalls: []string{"ip neigh show 192.168.1.1", "arp -n 192.168.1.1", "arp -a"},
		},
		"compressed lladdr": {
			runner:    newFakeRunner().on("ip neigh show 192.168.1.1", "192.168.1.1 dev en0 lladdr 0:1b:2:3d:4e:f REACHABLE\n"),
			wantMAC:   "00:1b:02:3d:4e:0f",
			wantOK:    true,
			wantCalls: []string{"ip neigh show 192.168.1.1"},
		},
		"not in table": {
			runner:    newFakeRunner().on("arp -n 192.168.1.1", "192.168.1.1 (192.168.1.1) -- no entry\n"),
			wantCalls: []string{"ip neigh show 192.168.1.1", "arp -n 192.168.1.1", "arp -a"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			n := NewNeighborResolver(test.runner, NewPlatform(FamilyPOSIX, PlatformOptions{}), time.Second)

			mac, ok := n.ResolveMAC(context.Background(), gw)

			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantMAC, mac)
			assert.Equal(t, test.wantCalls, test.runner.Calls())
		})
	}
}

func TestNeighborResolver_Windows(t *testing.T) {
	tests := map[string]struct {
		ip      string
		output  string
		wantMAC string
		wantOK  bool
	}{
		"dash separated uppercase": {
			ip:      "192.168.1.1",
			output:  readTestdata(t, "arp_a_windows.txt"),
			wantMAC: "aa:bb:cc:dd:ee:ff",
			wantOK:  true,
		},
		"prefix address does not steal the row": {
			ip:      "192.168.1.10",
			output:  readTestdata(t, "arp_a_windows.txt"),
			wantMAC: "11:22:33:44:55:66",
			wantOK:  true,
		},
		"missing": {
			ip:     "192.168.1.77",
			output: readTestdata(t, "arp_a_windows.txt"),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := newFakeRunner().on("arp -a", test.output)
			n := NewNeighborResolver(r, NewPlatform(FamilyWindows, PlatformOptions{}), time.Second)

			mac, ok := n.ResolveMAC(context.Background(), test.ip)

			assert.Equal(t, test.wantOK, ok)
			assert.Equal(t, test.wantMAC, mac)
			assert.Equal(t, 1, r.count("arp -a"))
		})
	}
}

func TestNeighborResolver_EmptyIPRunsNothing(t *testing.T) {
	for _, family := range []OSFamily{FamilyPOSIX, FamilyWindows, FamilyOther} {
		t.Run(family.String(), func(t *testing.T) {
			r := newFakeRunner().on("arp -a", readTestdata(t, "arp_a_windows.txt"))
			n := NewNeighborResolver(r, NewPlatform(family, PlatformOptions{}), time.Second)

			mac, ok := n.ResolveMAC(context.Background(), "")

			assert.False(t, ok)
			assert.Empty(t, mac)
			assert.Empty(t, r.Calls())
		})
	}
}

func TestNeighborResolver_OtherRunsNothing(t *testing.T) {
	r := newFakeRunner()
	n := NewNeighborResolver(r, NewPlatform(FamilyOther, PlatformOptions{}), time.Second)

	_, ok := n.ResolveMAC(context.Background(), "192.168.1.1")

	assert.False(t, ok)
	assert.Empty(t, r.Calls())
}
