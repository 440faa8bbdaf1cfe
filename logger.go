/*
File: logger.go
Version: 2.0.0
Description: Structured, multi-output logging on log/slog (console, file, syslog).
             Console output goes to stderr so stdout carries only the resolution result.
             Records are written synchronously; the process is short-lived and must not lose its last lines.
*/

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Global logger instance
var logger *slog.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelWarn,
}))

// Cached level for fast checks
var currentLevel slog.Level = slog.LevelWarn

var logFile *os.File

// InitLogger initializes the global logger based on the provided configuration.
func InitLogger(cfg LoggingConfig) error {
	var handlers []slog.Handler

	lvl := parseLogLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level: lvl,
	}
	noTime := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	for _, output := range cfg.Outputs {
		switch strings.ToLower(strings.TrimSpace(output)) {
		case "console":
			handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))

		case "file":
			if cfg.File.Path == "" {
				return fmt.Errorf("file logging enabled but no path specified")
			}

			perm := os.FileMode(0644)
			if cfg.File.Permissions > 0 {
				perm = os.FileMode(cfg.File.Permissions)
			}

			f, err := os.OpenFile(cfg.File.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			logFile = f

			if strings.EqualFold(cfg.Format, "json") {
				handlers = append(handlers, slog.NewJSONHandler(f, opts))
			} else {
				handlers = append(handlers, slog.NewTextHandler(f, opts))
			}

		case "syslog":
			isLocal := cfg.Syslog.Address == "" || cfg.Syslog.Address == "/dev/log" ||
				cfg.Syslog.Network == "unixgram" || cfg.Syslog.Network == "unix"

			if isLocal && runtime.GOOS != "windows" {
				writer, err := newLocalSyslogWriter(cfg.Syslog.Facility, cfg.Syslog.Tag)
				if err != nil {
					return fmt.Errorf("failed to connect to local syslog: %w", err)
				}
				handlers = append(handlers, slog.NewTextHandler(writer, noTime))
			} else {
				syslogWriter := &SyslogWriter{
					Network:  cfg.Syslog.Network,
					Address:  cfg.Syslog.Address,
					Tag:      cfg.Syslog.Tag,
					Facility: cfg.Syslog.Facility,
					Hostname: "localhost",
				}
				if h, err := os.Hostname(); err == nil {
					syslogWriter.Hostname = h
				}
				handlers = append(handlers, slog.NewTextHandler(syslogWriter, noTime))
			}

		default:
			return fmt.Errorf("unknown logging output '%s'", output)
		}
	}

	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))
	}

	var finalHandler slog.Handler
	if len(handlers) > 1 {
		finalHandler = &MultiHandler{handlers: handlers}
	} else {
		finalHandler = handlers[0]
	}

	currentLevel = lvl
	logger = slog.New(finalHandler)
	slog.SetDefault(logger)
	return nil
}

func ShutdownLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

type MultiHandler struct {
	handlers []slog.Handler
}

func (m *MultiHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: handlers}
}

// --- Level Checks ---

func IsDebugEnabled() bool {
	return currentLevel <= slog.LevelDebug
}

// --- Printf Wrappers ---

func logWithCaller(level slog.Level, format string, v ...interface{}) {
	if logger == nil {
		return
	}
	if !logger.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, v...), pcs[0])
	_ = logger.Handler().Handle(context.Background(), r)
}

func LogDebug(format string, v ...interface{}) {
	logWithCaller(slog.LevelDebug, format, v...)
}

func LogInfo(format string, v ...interface{}) {
	logWithCaller(slog.LevelInfo, format, v...)
}

func LogWarn(format string, v ...interface{}) {
	logWithCaller(slog.LevelWarn, format, v...)
}

func LogError(format string, v ...interface{}) {
	logWithCaller(slog.LevelError, format, v...)
}

// SyslogWriter sends RFC 3164 style lines to a remote syslog endpoint.
type SyslogWriter struct {
	Network  string
	Address  string
	Tag      string
	Hostname string
	Facility int
	conn     net.Conn
	mu       sync.Mutex
}

func (w *SyslogWriter) connect() error {
	if w.conn != nil {
		return nil
	}
	network := w.Network
	if network == "" {
		network = "udp"
	}
	conn, err := net.DialTimeout(network, w.Address, 1*time.Second)
	if err != nil {
		return err
	}
	w.conn = conn
	return nil
}

func (w *SyslogWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	severity := 6
	timestamp := time.Now().Format(time.RFC3339)
	msg := strings.TrimSuffix(string(p), "\n")

	if strings.Contains(msg, "level=ERROR") {
		severity = 3
		msg = strings.Replace(msg, "level=ERROR", "", 1)
	} else if strings.Contains(msg, "level=WARN") {
		severity = 4
		msg = strings.Replace(msg, "level=WARN", "", 1)
	} else if strings.Contains(msg, "level=DEBUG") {
		severity = 7
		msg = strings.Replace(msg, "level=DEBUG", "", 1)
	} else if strings.Contains(msg, "level=INFO") {
		msg = strings.Replace(msg, "level=INFO", "", 1)
	}

	msg = strings.TrimSpace(msg)
	pri := (w.Facility * 8) + severity
	syslogMsg := fmt.Sprintf("<%d>%s %s %s: %s", pri, timestamp, w.Hostname, w.Tag, msg)

	if err := w.connect(); err != nil {
		return len(p), nil
	}

	_, err = fmt.Fprint(w.conn, syslogMsg)
	if err != nil {
		w.conn.Close()
		w.conn = nil
		if err := w.connect(); err == nil {
			fmt.Fprint(w.conn, syslogMsg)
		}
	}

	return len(p), nil
}
