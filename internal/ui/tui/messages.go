// Package tui provides the Bubble Tea terminal UI: the Shuttle Run capture
// wizard and the host app that mounts it.
package tui

import (
	"time"

	"github.com/fitodo/fitodo/internal/capture"
	"github.com/fitodo/fitodo/internal/host"
)

// StopwatchTickMsg carries the latest elapsed value of a LiveTest run. Gen
// identifies the run so ticks from a stopped run are dropped.
type StopwatchTickMsg struct {
	Gen     int
	Elapsed time.Duration
}

// stopwatchStoppedMsg is delivered when a run's tick channel closes.
type stopwatchStoppedMsg struct{ Gen int }

// CaptureExitedMsg is emitted when the wizard asks its host to unmount it.
type CaptureExitedMsg struct {
	SessionID string
	Attempt   int
	Data      capture.Data
}

// NoticeMsg shows a notice in the host app.
type NoticeMsg struct{ Notice host.Notice }

// noticeExpiredMsg hides the notice with the matching sequence number.
type noticeExpiredMsg struct{ Seq int }

// ErrMsg carries an error.
type ErrMsg struct{ Err error }
