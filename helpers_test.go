package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeRunner answers commands from a table keyed by Command.String(). Queued
// outputs are consumed in order and the last one repeats. Unknown commands
// fail as if the utility were not installed.
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string][]string
	faults  map[string]FaultKind
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: make(map[string][]string),
		faults:  make(map[string]FaultKind),
	}
}

func (f *fakeRunner) on(cmd string, outputs ...string) *fakeRunner {
	f.outputs[cmd] = append(f.outputs[cmd], outputs...)
	return f
}

func (f *fakeRunner) fail(cmd string, kind FaultKind) *fakeRunner {
	f.faults[cmd] = kind
	return f
}

func (f *fakeRunner) Exec(_ context.Context, cmd Command, _ time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := cmd.String()
	f.calls = append(f.calls, key)

	if kind, ok := f.faults[key]; ok {
		return "", &ProcessFault{Command: key, Kind: kind, Err: errors.New("injected")}
	}
	queue, ok := f.outputs[key]
	if !ok || len(queue) == 0 {
		return "", &ProcessFault{Command: key, Kind: FaultNotFound, Err: errors.New("not installed")}
	}
	out := queue[0]
	if len(queue) > 1 {
		f.outputs[key] = queue[1:]
	}
	return out, nil
}

func (f *fakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRunner) count(cmd string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == cmd {
			n++
		}
	}
	return n
}

type fakeProber struct {
	mu    sync.Mutex
	calls []string
	ok    bool
}

func (p *fakeProber) Probe(_ context.Context, ip string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, ip)
	return p.ok
}

type recordingSleep struct {
	waits []time.Duration
}

func (s *recordingSleep) sleep(_ context.Context, d time.Duration) {
	s.waits = append(s.waits, d)
}

type fakePTR map[string]string

func (f fakePTR) LookupPTR(_ context.Context, ip string) string {
	return f[ip]
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func staticHostIPv4(ip string, err error) HostIPv4Func {
	return func(context.Context) (string, error) {
		return ip, err
	}
}
