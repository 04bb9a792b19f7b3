package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/fitodo/fitodo/internal/capture"
	"github.com/fitodo/fitodo/internal/stopwatch"
)

// Recorder receives wizard and host activity for metrics.
type Recorder interface {
	capture.Observer
	SessionStarted()
	AttemptFinished(res capture.TestResults)
	Notice(kind string)
}

// CaptureOptions configures a CaptureModel.
type CaptureOptions struct {
	TickInterval time.Duration
	ResetOnRetry bool
	Logger       logr.Logger
	Recorder     Recorder
	// OnExit is called when the wizard asks its host to unmount it.
	OnExit func()
}

// captureSession is shared by every copy of a CaptureModel.
type captureSession struct {
	exited   bool
	reported bool
}

// CaptureModel is the Bubble Tea model for the Shuttle Run capture wizard.
type CaptureModel struct {
	ctrl     *capture.Controller
	watch    *stopwatch.Stopwatch
	session  *captureSession
	recorder Recorder
	log      logr.Logger

	keys CaptureKeyMap
	help help.Model

	// gen identifies the current stopwatch run.
	gen int

	// Standalone quits the program when the wizard exits.
	Standalone bool

	// UI state
	Width    int
	Height   int
	Err      error
	Quitting bool
}

// NewCaptureModel mounts a wizard at the Setup stage.
func NewCaptureModel(opts CaptureOptions) CaptureModel {
	s := &captureSession{}
	copts := []capture.Option{
		capture.WithLogger(opts.Logger),
		capture.WithResetOnRetry(opts.ResetOnRetry),
		capture.WithExitHandler(func() {
			s.exited = true
			if opts.OnExit != nil {
				opts.OnExit()
			}
		}),
	}
	if opts.Recorder != nil {
		copts = append(copts, capture.WithObserver(opts.Recorder))
		opts.Recorder.SessionStarted()
	}

	return CaptureModel{
		ctrl:     capture.NewController(copts...),
		watch:    stopwatch.New(opts.TickInterval),
		session:  s,
		recorder: opts.Recorder,
		log:      opts.Logger,
		keys:     DefaultCaptureKeyMap(),
		help:     help.New(),
	}
}

// Controller returns the wizard controller.
func (m CaptureModel) Controller() *capture.Controller { return m.ctrl }

// Elapsed returns the LiveTest stopwatch value.
func (m CaptureModel) Elapsed() time.Duration { return m.watch.Elapsed() }

// Exited reports whether the wizard asked to be unmounted.
func (m CaptureModel) Exited() bool { return m.session.exited }

// Shutdown stops the LiveTest stopwatch. Hosts call it before quitting.
func (m CaptureModel) Shutdown() { m.watch.Stop() }

// Init implements tea.Model.
func (m CaptureModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m CaptureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.session.exited {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width

	case StopwatchTickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m, waitForTick(m.gen, m.watch.Ticks())

	case stopwatchStoppedMsg:
		return m, nil

	case CaptureExitedMsg:
		if m.Standalone {
			m.Quitting = true
			return m, tea.Quit
		}

	case ErrMsg:
		m.Err = msg.Err
	}

	return m, nil
}

func (m CaptureModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.watch.Stop()
		m.Quitting = true
		return m, tea.Quit
	}

	stage := m.ctrl.Stage()
	switch stage {
	case capture.StageLiveTest:
		if cmd := m.handleLiveTestKey(msg); cmd != nil {
			return m, cmd
		}

	case capture.StageResults:
		switch {
		case key.Matches(msg, m.keys.Retry):
			m.resetWatch()
			m.ctrl.Restart()
		case key.Matches(msg, m.keys.Back):
			m.ctrl.Exit()
		}

	default:
		switch {
		case key.Matches(msg, m.keys.Forward):
			result, _ := capture.CompletionFor(stage)
			if err := m.ctrl.Advance(result); err != nil {
				m.Err = err
			}
		case key.Matches(msg, m.keys.Back):
			m.ctrl.Retreat()
		}
	}

	return m, m.exitCmd()
}

// handleLiveTestKey drives the stopwatch. It returns a command only when a
// run was started.
func (m *CaptureModel) handleLiveTestKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if m.watch.Running() {
			m.watch.Stop()
			return nil
		}
		return m.startWatch()

	case key.Matches(msg, m.keys.Pause):
		m.watch.Stop()

	case key.Matches(msg, m.keys.Finish), key.Matches(msg, m.keys.Forward):
		m.watch.Stop()
		result := capture.NewLiveTestResult(m.watch.Elapsed())
		m.resetWatch()
		if err := m.ctrl.Advance(result); err != nil {
			m.Err = err
			return nil
		}
		m.log.Info("attempt finished", "time", result.Results.Time, "attempt", m.ctrl.Attempt())
		if m.recorder != nil {
			m.recorder.AttemptFinished(result.Results)
		}

	case key.Matches(msg, m.keys.Back):
		m.resetWatch()
		m.ctrl.Retreat()
	}
	return nil
}

func (m *CaptureModel) startWatch() tea.Cmd {
	m.gen++
	m.watch.Start()
	return waitForTick(m.gen, m.watch.Ticks())
}

// resetWatch stops and zeroes the stopwatch and invalidates pending ticks.
func (m *CaptureModel) resetWatch() {
	m.watch.Reset()
	m.gen++
}

// exitCmd reports the exit to the host once.
func (m CaptureModel) exitCmd() tea.Cmd {
	if !m.session.exited || m.session.reported {
		return nil
	}
	m.session.reported = true
	m.watch.Stop()

	exited := CaptureExitedMsg{
		SessionID: m.ctrl.ID(),
		Attempt:   m.ctrl.Attempt(),
		Data:      m.ctrl.Data(),
	}
	return func() tea.Msg { return exited }
}

func waitForTick(gen int, ch <-chan time.Duration) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return stopwatchStoppedMsg{Gen: gen}
		}
		return StopwatchTickMsg{Gen: gen, Elapsed: e}
	}
}

// View implements tea.Model.
func (m CaptureModel) View() string {
	if m.Quitting {
		return ""
	}
	return renderCapture(m)
}
