// Package handlers implements the business logic for CLI commands.
//
// Each handler loads configuration, wires logging and metrics, and runs
// either the Bubble Tea UI or a plain scripted rendition when stdout is not
// a terminal.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/fitodo/fitodo/internal/config"
	"github.com/fitodo/fitodo/internal/logging"
	"github.com/fitodo/fitodo/internal/metrics"
	"github.com/fitodo/fitodo/internal/ui/tui"
)

// GlobalOptions carries the persistent root flags.
type GlobalOptions struct {
	ConfigPath  string
	LogFile     string
	Verbosity   int
	NoColor     bool
	MetricsFile string
}

var errNotTTY = errors.New("stdout is not a terminal; rerun with --plain for a scripted walk")

// Factory function variables - can be replaced in tests.
var (
	loadConfig = config.Load

	newLogger = logging.New

	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	runCaptureTUI = tui.RunCapture

	runAppTUI = tui.RunApp
)

// env is what every interactive handler shares.
type env struct {
	cfg      *config.Config
	log      logr.Logger
	recorder *metrics.Recorder

	metricsFile string
	closeLog    func() error
}

// setup loads configuration, builds the logger and applies color settings.
// Flags override the config file.
func setup(ctx context.Context, g GlobalOptions) (context.Context, *env, error) {
	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logOpts := logging.Options{File: cfg.Log.File, Verbosity: cfg.Log.Verbosity}
	if g.LogFile != "" {
		logOpts.File = g.LogFile
	}
	if g.Verbosity > logOpts.Verbosity {
		logOpts.Verbosity = g.Verbosity
	}
	log, closeLog, err := newLogger(logOpts)
	if err != nil {
		return ctx, nil, err
	}

	if g.NoColor || cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	e := &env{
		cfg:         cfg,
		log:         log,
		recorder:    metrics.NewRecorder(),
		metricsFile: g.MetricsFile,
		closeLog:    closeLog,
	}
	return logging.IntoContext(ctx, log), e, nil
}

// captureOptions maps the configuration onto wizard options.
func (e *env) captureOptions() tui.CaptureOptions {
	return tui.CaptureOptions{
		TickInterval: e.cfg.Capture.TickInterval,
		ResetOnRetry: e.cfg.Capture.ResetOnRetry,
		Logger:       e.log,
		Recorder:     e.recorder,
	}
}

// close writes the metrics file, if requested, and closes the log.
func (e *env) close() error {
	var errs []error
	if e.metricsFile != "" {
		if err := e.recorder.WriteTextfile(e.metricsFile); err != nil {
			errs = append(errs, err)
		}
	}
	if e.closeLog != nil {
		if err := e.closeLog(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log: %w", err))
		}
	}
	return errors.Join(errs...)
}
