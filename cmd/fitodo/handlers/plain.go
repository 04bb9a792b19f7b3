package handlers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fitodo/fitodo/internal/capture"
	"github.com/fitodo/fitodo/internal/stopwatch"
	"github.com/fitodo/fitodo/internal/ui/tui"
)

// scriptedWalk drives a wizard forward without a terminal UI and prints each
// stage. The LiveTest stopwatch runs for duration before the attempt is
// finished. onExit is the host callback; it may be nil.
func scriptedWalk(ctx context.Context, w io.Writer, opts tui.CaptureOptions, duration time.Duration, onExit func()) (tui.CaptureExitedMsg, error) {
	copts := []capture.Option{
		capture.WithLogger(opts.Logger),
		capture.WithResetOnRetry(opts.ResetOnRetry),
	}
	if onExit != nil {
		copts = append(copts, capture.WithExitHandler(onExit))
	}
	if opts.Recorder != nil {
		copts = append(copts, capture.WithObserver(opts.Recorder))
		opts.Recorder.SessionStarted()
	}
	ctrl := capture.NewController(copts...)

	for ctrl.Stage() != capture.StageLiveTest {
		v, _ := capture.ViewFor(ctrl.Stage())
		printStage(w, v)
		r, _ := capture.CompletionFor(ctrl.Stage())
		if err := ctrl.Advance(r); err != nil {
			return tui.SummaryFromController(ctrl), err
		}
	}

	v, _ := capture.ViewFor(capture.StageLiveTest)
	printStage(w, v)
	elapsed, err := timeAttempt(ctx, opts.TickInterval, duration)
	if err != nil {
		return tui.SummaryFromController(ctrl), fmt.Errorf("live test interrupted: %w", err)
	}

	result := capture.NewLiveTestResult(elapsed)
	fmt.Fprintf(w, "  Timer stopped at %s\n\n", result.Results.Time)
	if err := ctrl.Advance(result); err != nil {
		return tui.SummaryFromController(ctrl), err
	}
	if opts.Recorder != nil {
		opts.Recorder.AttemptFinished(result.Results)
	}

	printResults(w, capture.MockResults)
	ctrl.Exit()
	return tui.SummaryFromController(ctrl), nil
}

// timeAttempt runs a stopwatch until it reaches duration. Ticks can merge
// while the reader is slow, so the recorded time is capped at duration.
func timeAttempt(ctx context.Context, interval, duration time.Duration) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if duration <= 0 {
		return 0, nil
	}

	sw := stopwatch.New(interval)
	sw.Start()
	defer sw.Stop()

	ticks := sw.Ticks()
	for {
		select {
		case <-ctx.Done():
			sw.Stop()
			return sw.Elapsed(), ctx.Err()
		case e, ok := <-ticks:
			if !ok || e >= duration {
				sw.Stop()
				return min(sw.Elapsed(), duration), nil
			}
		}
	}
}

func printStage(w io.Writer, v capture.View) {
	fmt.Fprintf(w, "%s (%d%%)\n", v.Heading(), v.Stage.Progress())
	fmt.Fprintf(w, "%s: %s\n", v.Section, v.Title)
	fmt.Fprintf(w, "  %s\n", v.Subtitle)
	for _, b := range v.Badges {
		fmt.Fprintf(w, "  %-16s %s\n", b.Label, b.Value)
	}
	fmt.Fprintf(w, "  -> %s\n\n", v.Forward)
}

func printResults(w io.Writer, r capture.Results) {
	fmt.Fprintln(w, "Shuttle Run • Results")
	fmt.Fprintln(w, "Test Complete!")
	fmt.Fprintf(w, "  %-16s %s\n", "Time", r.Time)
	fmt.Fprintf(w, "  %-16s %d\n", "Touches", r.Touches)
	fmt.Fprintf(w, "  %-16s %d\n", "Splits", r.Splits)
	fmt.Fprintf(w, "  %-16s %d\n", "Attempts", r.Attempts)
	fmt.Fprintf(w, "  %-16s %s\n", "Grade", r.Grade)
	fmt.Fprintf(w, "  %-16s %s\n", "Improvement", r.Improvement)
	fmt.Fprintln(w, "AI Analysis")
	for _, note := range r.Analysis {
		fmt.Fprintf(w, "  - %s\n", note)
	}
	fmt.Fprintln(w)
}
