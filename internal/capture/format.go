package capture

import (
	"fmt"
	"time"
)

// FormatElapsed renders a duration as MM:SS.CC (minutes, seconds,
// hundredths). Negative durations render as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

// NewLiveTestResult packages a finished attempt. Touches and splits stay at
// the zero the LiveTest screen displays; there is no detector behind them.
func NewLiveTestResult(elapsed time.Duration) LiveTestResult {
	return LiveTestResult{
		Results: TestResults{
			Time:     FormatElapsed(elapsed),
			Elapsed:  elapsed,
			Touches:  0,
			Splits:   0,
			Attempts: 1,
		},
	}
}
