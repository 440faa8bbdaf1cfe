/*
File: runner.go
Version: 1.2.0
Description: Process boundary for the platform diagnostic utilities (ip, arp, netstat, route, ipconfig, ping).
             Exec reports failures as a typed ProcessFault; runText degrades every fault to empty output
             so the resolvers only ever deal with text.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

const (
	DefaultCommandTimeout = 4 * time.Second
	// Grace period for a killed child whose grandchildren still hold stdout open.
	commandWaitDelay = 1 * time.Second
)

// --- Command ---

// Command is either a pre-tokenized argument list or a single line that is split
// with shell word rules before execution.
type Command struct {
	Argv []string
	Line string
}

func Argv(args ...string) Command {
	return Command{Argv: args}
}

func Line(line string) Command {
	return Command{Line: line}
}

// Tokens returns the argument vector for the command.
func (c Command) Tokens() ([]string, error) {
	if len(c.Argv) > 0 {
		return c.Argv, nil
	}
	words, err := shellquote.Split(c.Line)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("empty command")
	}
	return words, nil
}

func (c Command) String() string {
	if len(c.Argv) > 0 {
		return shellquote.Join(c.Argv...)
	}
	return c.Line
}

// --- Faults ---

type FaultKind int

const (
	FaultExec FaultKind = iota
	FaultTokenize
	FaultNotFound
	FaultTimeout
	FaultExitStatus
)

func (k FaultKind) String() string {
	switch k {
	case FaultTokenize:
		return "TOKENIZE"
	case FaultNotFound:
		return "NOT_FOUND"
	case FaultTimeout:
		return "TIMEOUT"
	case FaultExitStatus:
		return "EXIT_STATUS"
	default:
		return "EXEC"
	}
}

// ProcessFault describes why a command produced no usable output.
type ProcessFault struct {
	Command string
	Kind    FaultKind
	Err     error
}

func (f *ProcessFault) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Command, f.Kind, f.Err)
}

func (f *ProcessFault) Unwrap() error {
	return f.Err
}

// --- Runner ---

// Runner executes a command and returns its decoded standard output.
// Any failure is returned as a *ProcessFault.
type Runner interface {
	Exec(ctx context.Context, cmd Command, timeout time.Duration) (string, error)
}

// ExecRunner spawns real child processes.
type ExecRunner struct{}

func (ExecRunner) Exec(parentCtx context.Context, cmd Command, timeout time.Duration) (string, error) {
	argv, err := cmd.Tokens()
	if err != nil {
		return "", &ProcessFault{Command: cmd.String(), Kind: FaultTokenize, Err: err}
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	ctx, cancel := context.WithTimeout(parentCtx, timeout)
	defer cancel()

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stderr = io.Discard
	c.WaitDelay = commandWaitDelay

	out, err := c.Output()
	text := strings.ToValidUTF8(string(out), "")
	if err == nil {
		return text, nil
	}

	fault := &ProcessFault{Command: cmd.String(), Kind: FaultExec, Err: err}
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded) && parentCtx.Err() == nil:
		fault.Kind = FaultTimeout
		fault.Err = ctx.Err()
	case ctx.Err() != nil:
		fault.Err = ctx.Err()
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		fault.Kind = FaultNotFound
	case errors.As(err, &exitErr):
		fault.Kind = FaultExitStatus
		return text, fault
	}
	return "", fault
}

// runText runs cmd and returns its output, or "" if the command failed in any way.
func runText(ctx context.Context, r Runner, cmd Command, timeout time.Duration) string {
	out, err := r.Exec(ctx, cmd, timeout)
	if err != nil {
		if IsDebugEnabled() {
			LogDebug("[EXEC] %v", err)
		}
		return ""
	}
	return out
}
