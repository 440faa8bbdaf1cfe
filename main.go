/*
File: main.go
Version: 1.0.0
Description: gwmac command line entry point. Resolves the default gateway and its MAC once and
             prints the result as JSON on stdout. Exits 1 when no gateway could be found.
*/

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

type cli struct {
	Config      string `help:"Path to YAML configuration file" type:"path" env:"GWMAC_CONFIG"`
	LogLevel    string `help:"Override logging level (DEBUG, INFO, WARN, ERROR)" env:"GWMAC_LOG_LEVEL"`
	ProbeMethod string `help:"Override active probe method (exec or icmp)" env:"GWMAC_PROBE_METHOD"`
	Pretty      bool   `help:"Indent JSON output"`
}

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("gwmac"),
		kong.Description("Discover the default gateway and its MAC address."),
	)
	os.Exit(run(params, os.Stdout))
}

func run(params cli, stdout io.Writer) int {
	cfg, err := LoadConfig(params.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if params.LogLevel != "" {
		cfg.Logging.Level = params.LogLevel
	}
	if params.ProbeMethod != "" {
		cfg.Probe.Method = params.ProbeMethod
		if err := cfg.finalize(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}

	if err := InitLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 2
	}
	defer ShutdownLogger()

	resolver, err := NewResolver(cfg, CurrentFamily(), ExecRunner{})
	if err != nil {
		LogError("[SYSTEM] %v", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome := resolver.Resolve(ctx)
	if err := writeOutcome(stdout, outcome, params.Pretty); err != nil {
		LogError("[SYSTEM] Writing result: %v", err)
		return 2
	}
	if outcome.Status == StatusError {
		return 1
	}
	return 0
}

func writeOutcome(w io.Writer, o Outcome, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(o.Response())
}
