package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/fitodo/fitodo/internal/capture"
)

// CaptureKeyMap defines the key bindings of the capture wizard.
type CaptureKeyMap struct {
	Forward key.Binding
	Back    key.Binding
	Retry   key.Binding

	// LiveTest
	Toggle key.Binding
	Pause  key.Binding
	Finish key.Binding

	Quit key.Binding
}

// DefaultCaptureKeyMap returns the default wizard bindings.
func DefaultCaptureKeyMap() CaptureKeyMap {
	return CaptureKeyMap{
		Forward: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "try again"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start/pause"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// stageHelp adapts the wizard bindings to bubbles/help for one stage.
type stageHelp struct {
	keys  CaptureKeyMap
	stage capture.Stage
}

// ShortHelp implements help.KeyMap.
func (h stageHelp) ShortHelp() []key.Binding {
	switch h.stage {
	case capture.StageLiveTest:
		return []key.Binding{h.keys.Toggle, h.keys.Pause, h.keys.Finish, h.keys.Back, h.keys.Quit}
	case capture.StageResults:
		return []key.Binding{h.keys.Retry, h.keys.Back, h.keys.Quit}
	default:
		return []key.Binding{h.keys.Forward, h.keys.Back, h.keys.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (h stageHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// AppKeyMap defines the key bindings of the host app.
type AppKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Select  key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultAppKeyMap returns the default host app bindings.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k AppKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.NextTab, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k AppKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.NextTab, k.PrevTab, k.Back},
		{k.Help, k.Quit},
	}
}
