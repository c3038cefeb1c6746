// Package logging builds the diagnostic logger for a handler invocation.
//
// Diagnostics are best effort. When debugging is off every message is
// discarded, matching release builds of the handler that print nothing.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"vaelstrom-url-handler/config"
)

const prefix = "[url-handler] "

// New returns a logger writing to console (may be nil) and, when configured,
// to cfg.LogFile. The returned close function must be called before exit.
// If the log file cannot be opened the logger still writes to console and the
// open error is returned alongside it.
func New(cfg config.Config, console io.Writer) (*log.Logger, func() error, error) {
	nop := func() error { return nil }
	if !cfg.Debug {
		return Discard(), nop, nil
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}

	var openErr error
	closeFn := nop
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			openErr = fmt.Errorf("open log file: %w", err)
		} else {
			writers = append(writers, f)
			closeFn = f.Close
		}
	}

	if len(writers) == 0 {
		return Discard(), closeFn, openErr
	}
	return log.New(io.MultiWriter(writers...), prefix, log.LstdFlags|log.Lmsgprefix), closeFn, openErr
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
