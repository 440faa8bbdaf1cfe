/*
File: config.go
Version: 4.0.0
Description: YAML configuration with defaults that reproduce the stock behavior when no file is given.
             Duration strings are parsed once into hidden fields; invalid values fall back to defaults
             with a warning.
*/

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// --- Configuration Structures ---

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Commands CommandsConfig `yaml:"commands"`
	Probe    ProbeConfig    `yaml:"probe"`
	Native   NativeConfig   `yaml:"native"`
	Lookup   LookupConfig   `yaml:"lookup"`
	Classify ClassifyConfig `yaml:"classify"`
}

type LoggingConfig struct {
	Level   string   `yaml:"level"`
	Format  string   `yaml:"format"`
	Outputs []string `yaml:"outputs"`

	File struct {
		Path        string `yaml:"path"`
		Permissions uint32 `yaml:"permissions"`
	} `yaml:"file"`

	Syslog struct {
		Network  string `yaml:"network"`
		Address  string `yaml:"address"`
		Tag      string `yaml:"tag"`
		Facility int    `yaml:"facility"`
	} `yaml:"syslog"`
}

type CommandsConfig struct {
	Timeout string `yaml:"timeout"`

	parsedTimeout time.Duration
}

const (
	ProbeMethodExec = "exec"
	ProbeMethodICMP = "icmp"
)

type ProbeConfig struct {
	// "exec" (default) or "icmp"
	Method  string `yaml:"method"`
	Timeout string `yaml:"timeout"`

	// Settle time before the second neighbor read
	Delay string `yaml:"delay"`

	// Probes per second across all resolutions (0 = unpaced)
	Rate  float64 `yaml:"rate"`
	Burst int     `yaml:"burst"`

	// Raw ICMP socket for method "icmp"
	Privileged bool `yaml:"privileged"`

	parsedTimeout time.Duration
	parsedDelay   time.Duration
}

type NativeConfig struct {
	Gateway  bool `yaml:"gateway"`
	Neighbor bool `yaml:"neighbor"`
}

type LookupConfig struct {
	PTR     bool   `yaml:"ptr"`
	Server  string `yaml:"server"`
	Timeout string `yaml:"timeout"`

	parsedTimeout time.Duration
}

type ClassifyConfig struct {
	Enabled      bool     `yaml:"enabled"`
	ExtraPrivate []string `yaml:"extra_private"`
}

// --- Configuration Loading ---

// LoadConfig reads path; an empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// finalize applies defaults, validates and parses durations. It is idempotent so command
// line overrides can be applied on top of a loaded file.
func (cfg *Config) finalize() error {
	// Set defaults
	if cfg.Logging.Level == "" { cfg.Logging.Level = "WARN" }
	if len(cfg.Logging.Outputs) == 0 { cfg.Logging.Outputs = []string{"console"} }

	cfg.Probe.Method = strings.ToLower(strings.TrimSpace(cfg.Probe.Method))
	if cfg.Probe.Method == "" { cfg.Probe.Method = ProbeMethodExec }
	if cfg.Probe.Method != ProbeMethodExec && cfg.Probe.Method != ProbeMethodICMP {
		return fmt.Errorf("probe.method must be '%s' or '%s', got '%s'", ProbeMethodExec, ProbeMethodICMP, cfg.Probe.Method)
	}
	if cfg.Probe.Rate < 0 {
		return fmt.Errorf("probe.rate must not be negative, got %v", cfg.Probe.Rate)
	}

	cfg.Commands.parsedTimeout = parseDurationOr("commands.timeout", cfg.Commands.Timeout, DefaultCommandTimeout)
	cfg.Probe.parsedTimeout = parseDurationOr("probe.timeout", cfg.Probe.Timeout, DefaultProbeTimeout)
	cfg.Probe.parsedDelay = parseDurationOr("probe.delay", cfg.Probe.Delay, DefaultSettleDelay)
	cfg.Lookup.parsedTimeout = parseDurationOr("lookup.timeout", cfg.Lookup.Timeout, DefaultPTRTimeout)

	return nil
}

// parseDurationOr returns def for empty, unparsable or non-positive values.
// A zero delay is allowed ("0s") so the settle wait can be disabled.
func parseDurationOr(key, value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 || (d == 0 && key != "probe.delay") {
		LogWarn("[CONFIG] Invalid %s '%s', defaulting to %v", key, value, def)
		return def
	}
	return d
}
