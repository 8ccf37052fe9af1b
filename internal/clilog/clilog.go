// Package clilog provides the CLI's progress/stats logging: quiet-gated
// phase lines (populate parse graph, shortest path, etc.) routed through
// log/slog so the same mechanism also carries error records, instead of
// mixing success output on one stream with error output on another.
//
// This stays on the standard library rather than a third-party structured
// logging library — see DESIGN.md.
package clilog

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps a *slog.Logger with the quiet/stats gating TSCrunch's CLI
// has always had: progress lines are skipped entirely in quiet mode, and
// elapsed-time fields are only attached when stats are requested.
type Logger struct {
	base  *slog.Logger
	quiet bool
	stats bool
}

// New builds a Logger writing text-handler records to w (os.Stdout for
// the real CLIs, a buffer in tests).
func New(w io.Writer, quiet, stats bool) *Logger {
	if w == nil {
		w = os.Stdout
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{base: slog.New(h), quiet: quiet, stats: stats}
}

// Step logs the start of a named phase (e.g. "populating LZ layer");
// callers get back a function to call when the phase completes, which
// logs the elapsed time if stats were requested.
func (l *Logger) Step(name string) func() {
	if l.quiet {
		return func() {}
	}
	l.base.Info(name)
	start := time.Now()
	return func() {
		if l.stats {
			l.base.Info(name+" done", slog.Duration("elapsed", time.Since(start)))
		}
	}
}

// Result logs the final input/output size summary.
func (l *Logger) Result(srcKind, dstKind string, decrunchFrom, decrunchTo uint16, srcLen int, loadFrom uint16, dstLen int) {
	if l.quiet {
		return
	}
	l.base.Info("crunch complete",
		slog.String("input", srcKind),
		slog.Int("input_bytes", srcLen),
		slog.String("output", dstKind),
		slog.Int("output_bytes", dstLen),
		slog.Float64("ratio_pct", float64(dstLen)*100.0/float64(srcLen)),
	)
}

// Error logs a terminal CLI error.
func (l *Logger) Error(msg string, err error) {
	l.base.Error(msg, slog.Any("err", err))
}
