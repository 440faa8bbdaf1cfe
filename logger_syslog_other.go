//go:build windows || plan9

/*
File: logger_syslog_other.go
Version: 1.0.0
Description: Local syslog stub for platforms without log/syslog.
*/

package main

import (
	"errors"
	"io"
)

func newLocalSyslogWriter(int, string) (io.Writer, error) {
	return nil, errors.New("local syslog is not available on this platform")
}
