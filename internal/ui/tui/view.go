package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fitodo/fitodo/internal/capture"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderCapture(m CaptureModel) string {
	var b strings.Builder

	stage := m.ctrl.Stage()
	if stage == capture.StageResults {
		renderResults(&b, m)
	} else {
		v, _ := capture.ViewFor(stage)
		renderStageHeader(&b, m, v)
		renderProgressBar(&b, stage.Progress(), m.Width)
		renderStageBody(&b, m, v)
	}

	if m.Err != nil {
		fmt.Fprintf(&b, "\n  %s %s\n", failedStyle.Render(crossMark), failedStyle.Render(m.Err.Error()))
	}

	renderCaptureFooter(&b, m)
	return b.String()
}

func renderStageHeader(b *strings.Builder, m CaptureModel, v capture.View) {
	b.WriteString(titleStyle.Render(v.Heading()))
	if m.ctrl.Attempt() > 1 {
		b.WriteString(" ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("(attempt %d)", m.ctrl.Attempt())))
	}
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, pct, width int) {
	barWidth := 40
	if width > 0 && width < 80 {
		barWidth = width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	filled := barWidth * pct / 100
	if filled > barWidth {
		filled = barWidth
	}

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))
	fmt.Fprintf(b, "  %s %d%%\n", bar, pct)
}

func renderStageBody(b *strings.Builder, m CaptureModel, v capture.View) {
	b.WriteString(sectionStyle.Render("  " + v.Section))
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s\n", activeStyle.Render(v.Title))
	fmt.Fprintf(b, "  %s\n\n", subtitleStyle.Render(v.Subtitle))

	renderBadges(b, v.Badges)

	if v.Stage == capture.StageLiveTest {
		renderTimer(b, m, v)
	} else {
		fmt.Fprintf(b, "\n  %s\n", dimStyle.Render(v.Instruction))
	}

	fmt.Fprintf(b, "\n  %s %s  %s\n",
		accentStyle.Render("→ "+v.Forward),
		dimStyle.Render("|"),
		dimStyle.Render("Up next: "+v.UpNext))
}

func renderBadges(b *strings.Builder, badges []capture.Badge) {
	for i := 0; i < len(badges); i += 2 {
		b.WriteString("    ")
		b.WriteString(renderBadge(badges[i]))
		if i+1 < len(badges) {
			b.WriteString("  ")
			b.WriteString(renderBadge(badges[i+1]))
		}
		b.WriteString("\n")
	}
}

func renderBadge(bd capture.Badge) string {
	return fmt.Sprintf("%s %s %s",
		readyStyle.Render(checkMark),
		dimStyle.Render(fmt.Sprintf("%-14s", bd.Label)),
		activeStyle.Render(fmt.Sprintf("%-24s", bd.Value)))
}

func renderTimer(b *strings.Builder, m CaptureModel, v capture.View) {
	elapsed := m.watch.Elapsed()
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(timerStyle.Render(capture.FormatElapsed(elapsed))))
	b.WriteString("\n")

	var status string
	switch {
	case m.watch.Running():
		status = failedStyle.Render("● REC") + " " + activeStyle.Render("Timing...")
	case elapsed > 0:
		status = warningStyle.Render(pending) + " " + dimStyle.Render("Paused")
	default:
		status = dimStyle.Render(v.Instruction)
	}
	fmt.Fprintf(b, "  %s\n", status)
}

func renderResults(b *strings.Builder, m CaptureModel) {
	r := capture.MockResults

	b.WriteString(titleStyle.Render("Shuttle Run • Results"))
	b.WriteString("\n")
	renderProgressBar(b, capture.StageResults.Progress(), m.Width)
	fmt.Fprintf(b, "\n  %s %s\n", readyStyle.Render(checkMark), readyStyle.Render("Test Complete!"))

	b.WriteString(sectionStyle.Render("  Performance"))
	b.WriteString("\n")
	rows := []capture.Badge{
		{Label: "Time", Value: r.Time},
		{Label: "Touches", Value: fmt.Sprintf("%d", r.Touches)},
		{Label: "Splits", Value: fmt.Sprintf("%d", r.Splits)},
		{Label: "Attempts", Value: fmt.Sprintf("%d", r.Attempts)},
		{Label: "Grade", Value: r.Grade},
		{Label: "Improvement", Value: r.Improvement},
	}
	renderBadges(b, rows)

	b.WriteString(sectionStyle.Render("  AI Analysis"))
	b.WriteString("\n")
	for _, note := range r.Analysis {
		fmt.Fprintf(b, "    • %s\n", note)
	}
}

func renderCaptureFooter(b *strings.Builder, m CaptureModel) {
	h := m.help.View(stageHelp{keys: m.keys, stage: m.ctrl.Stage()})
	b.WriteString(footerStyle.Render("  " + h))
	b.WriteString("\n")
}
