//go:build !windows && !plan9

/*
File: logger_syslog.go
Version: 1.0.0
Description: Local syslog writer (log/syslog) that maps slog levels to syslog severities.
*/

package main

import (
	"io"
	"log/syslog"
	"strings"
)

type syslogWriteWrapper struct {
	w *syslog.Writer
}

func newLocalSyslogWriter(facility int, tag string) (io.Writer, error) {
	writer, err := syslog.New(syslog.Priority(facility)|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, err
	}
	return &syslogWriteWrapper{w: writer}, nil
}

func (sw *syslogWriteWrapper) Write(p []byte) (n int, err error) {
	s := string(p)
	if strings.Contains(s, "level=ERROR") {
		return len(p), sw.w.Err(s)
	} else if strings.Contains(s, "level=WARN") {
		return len(p), sw.w.Warning(s)
	} else if strings.Contains(s, "level=DEBUG") {
		return len(p), sw.w.Debug(s)
	}
	return len(p), sw.w.Info(s)
}
