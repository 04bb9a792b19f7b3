// Package logging builds the client's logr.Logger.
//
// The terminal belongs to the TUI, so logs are written as JSON lines to a
// file through zap. Without a file every record is discarded.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// File is the log destination. Empty discards logs.
	File string
	// Verbosity enables logr V-levels up to and including this value.
	Verbosity int
}

// New returns a logger and a function that flushes and closes it.
func New(opts Options) (logr.Logger, func() error, error) {
	if opts.File == "" {
		return logr.Discard(), func() error { return nil }, nil
	}

	// #nosec G304
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log, sync := NewWithWriter(f, opts.Verbosity)
	closeFn := func() error {
		_ = sync()
		return f.Close()
	}
	return log, closeFn, nil
}

// NewWithWriter builds a JSON logger on w. The returned function flushes
// buffered records.
func NewWithWriter(w io.Writer, verbosity int) (logr.Logger, func() error) {
	if verbosity < 0 {
		verbosity = 0
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	// logr V(n) maps to zap level -n.
	level := zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	zl := zap.New(core)

	return zapr.NewLogger(zl).WithName("fitodo"), zl.Sync
}

// IntoContext stores the logger in ctx.
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger in ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
