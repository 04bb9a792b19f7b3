package tui

import (
	"fmt"
	"strings"

	"github.com/fitodo/fitodo/internal/capture"
)

// RenderSummary renders what a capture session actually recorded. It is
// separate from the Results screen, which always shows the reference result.
func RenderSummary(exit CaptureExitedMsg) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shuttle Run session"))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(exit.SessionID))
	b.WriteString("\n")

	steps := []struct {
		name string
		done bool
	}{
		{"Setup", exit.Data.SetupComplete},
		{"Calibration", exit.Data.Calibration != nil},
		{"Warm-up", exit.Data.WarmupComplete},
		{"Test Prep", exit.Data.TestPrepComplete},
		{"Live Test", exit.Data.TestResults != nil},
	}
	for _, s := range steps {
		icon, style := pending, sf(dimStyle)
		if s.done {
			icon, style = checkMark, sf(readyStyle)
		}
		fmt.Fprintf(&b, "  %s %s\n", style(icon), style(s.name))
	}

	if c := exit.Data.Calibration; c != nil {
		fmt.Fprintf(&b, "  %s %s, run path %s\n", dimStyle.Render("Calibration:"), c.Distance, strings.ToLower(c.RunPath))
	}

	if res := exit.Data.TestResults; res != nil {
		fmt.Fprintf(&b, "  %s %s (attempt %d)\n", dimStyle.Render("Recorded time:"), activeStyle.Render(res.Time), exit.Attempt)
	} else {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render("No attempt recorded."))
	}
	return b.String()
}

// SummaryFromController builds the exit message for a controller that did
// not run inside a program.
func SummaryFromController(c *capture.Controller) CaptureExitedMsg {
	return CaptureExitedMsg{SessionID: c.ID(), Attempt: c.Attempt(), Data: c.Data()}
}
