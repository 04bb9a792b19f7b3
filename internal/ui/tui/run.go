package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions controls the Bubble Tea program.
type RunOptions struct {
	AltScreen bool
}

func programOptions(ctx context.Context, ro RunOptions) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if ro.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

// RunCapture runs the capture wizard as its own program and returns the
// session as it stood when the wizard exited or the user quit.
func RunCapture(ctx context.Context, opts CaptureOptions, ro RunOptions) (CaptureExitedMsg, error) {
	m := NewCaptureModel(opts)
	m.Standalone = true
	defer m.Shutdown()

	p := tea.NewProgram(m, programOptions(ctx, ro)...)
	finalModel, err := p.Run()
	if err != nil {
		return CaptureExitedMsg{}, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(CaptureModel)
	if fm.Err != nil {
		return SummaryFromController(fm.ctrl), fm.Err
	}
	return SummaryFromController(fm.ctrl), nil
}

// RunApp runs the host app and returns the capture sessions that exited
// during the run.
func RunApp(ctx context.Context, opts AppOptions, ro RunOptions) ([]CaptureExitedMsg, error) {
	m := NewAppModel(opts)
	defer m.Shutdown()

	p := tea.NewProgram(m, programOptions(ctx, ro)...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(AppModel)
	fm.Shutdown()
	return fm.Sessions, nil
}
