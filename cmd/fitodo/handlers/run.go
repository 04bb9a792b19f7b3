package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fitodo/fitodo/internal/catalog"
	"github.com/fitodo/fitodo/internal/logging"
	"github.com/fitodo/fitodo/internal/ui/tui"
)

// RunOptions are the flags of the run command.
type RunOptions struct {
	// Plain runs a scripted walk instead of the TUI.
	Plain bool
	// Duration is how long the scripted LiveTest stopwatch runs.
	Duration time.Duration
	// ResetOnRetry overrides capture.reset_on_retry when set.
	ResetOnRetry *bool
}

// Run mounts the capture wizard for a catalog test and prints a summary of
// what the session recorded.
func Run(ctx context.Context, g GlobalOptions, testID string, opts RunOptions) (err error) {
	t, err := catalog.Lookup(testID)
	if err != nil {
		return err
	}
	if !t.Guided {
		return fmt.Errorf("%s: guided capture is coming soon", t.Title)
	}

	ctx, e, err := setup(ctx, g)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, e.close())
	}()

	if opts.ResetOnRetry != nil {
		e.cfg.Capture.ResetOnRetry = *opts.ResetOnRetry
	}
	copts := e.captureOptions()
	log := logging.FromContext(ctx).WithValues("test", testID)
	log.Info("run started", "plain", opts.Plain)

	var exit tui.CaptureExitedMsg
	if opts.Plain {
		exit, err = scriptedWalk(ctx, os.Stdout, copts, opts.Duration, nil)
	} else {
		if !isInteractiveTTY() {
			return errNotTTY
		}
		exit, err = runCaptureTUI(ctx, copts, tui.RunOptions{AltScreen: e.cfg.UI.AltScreen})
	}
	if err != nil {
		return err
	}

	printSessionSummary(exit)
	log.Info("run finished", "session", exit.SessionID, "attempt", exit.Attempt)
	return nil
}

func printSessionSummary(exit tui.CaptureExitedMsg) {
	fmt.Println()
	fmt.Print(tui.RenderSummary(exit))
}
