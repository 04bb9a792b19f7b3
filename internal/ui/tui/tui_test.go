package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitodo/fitodo/internal/capture"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// pressCapture feeds keys to a capture model and returns the last command.
func pressCapture(m CaptureModel, keys ...string) (CaptureModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(CaptureModel)
	}
	return m, cmd
}

type fakeRecorder struct {
	transitions int
	sessions    int
	attempts    []capture.TestResults
	notices     []string
}

func (r *fakeRecorder) ObserveTransition(_, _ capture.Stage, _ capture.Event) { r.transitions++ }
func (r *fakeRecorder) SessionStarted()                                      { r.sessions++ }
func (r *fakeRecorder) AttemptFinished(res capture.TestResults)              { r.attempts = append(r.attempts, res) }
func (r *fakeRecorder) Notice(kind string)                                   { r.notices = append(r.notices, kind) }

func TestCaptureModel_ForwardWalk(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{})
	defer m.Shutdown()

	want := []capture.Stage{
		capture.StageCalibration,
		capture.StageWarmup,
		capture.StageTestPrep,
		capture.StageLiveTest,
	}
	for _, stage := range want {
		m, _ = pressCapture(m, "enter")
		if got := m.Controller().Stage(); got != stage {
			t.Fatalf("expected %s, got %s", stage, got)
		}
	}

	m, _ = pressCapture(m, "f")
	if got := m.Controller().Stage(); got != capture.StageResults {
		t.Fatalf("expected results, got %s", got)
	}

	data := m.Controller().Data()
	if !data.SetupComplete || data.Calibration == nil || !data.WarmupComplete || !data.TestPrepComplete {
		t.Errorf("expected every step recorded, got %+v", data)
	}
	if data.TestResults == nil || data.TestResults.Time != "00:00.00" {
		t.Errorf("expected an untimed attempt, got %+v", data.TestResults)
	}

	// Forward does nothing on Results.
	m, _ = pressCapture(m, "enter")
	if got := m.Controller().Stage(); got != capture.StageResults {
		t.Errorf("expected to stay on results, got %s", got)
	}
}

func TestCaptureModel_BackAtSetupExits(t *testing.T) {
	exits := 0
	m := NewCaptureModel(CaptureOptions{OnExit: func() { exits++ }})

	m, cmd := pressCapture(m, "esc")
	if exits != 1 {
		t.Fatalf("expected exit callback once, got %d", exits)
	}
	if !m.Exited() {
		t.Error("expected model to report exit")
	}
	if m.Controller().Stage() != capture.StageSetup {
		t.Errorf("expected stage to stay at setup, got %s", m.Controller().Stage())
	}
	if cmd == nil {
		t.Fatal("expected exit command")
	}
	if _, ok := cmd().(CaptureExitedMsg); !ok {
		t.Error("expected CaptureExitedMsg")
	}

	// Keys after exit are ignored and the exit is reported once.
	m, cmd = pressCapture(m, "esc", "enter")
	if cmd != nil || exits != 1 || m.Controller().Stage() != capture.StageSetup {
		t.Error("expected keys after exit to be ignored")
	}
}

func TestCaptureModel_BackKeepsData(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{})
	m, _ = pressCapture(m, "enter", "esc")

	if m.Controller().Stage() != capture.StageSetup {
		t.Fatalf("expected setup, got %s", m.Controller().Stage())
	}
	m, _ = pressCapture(m, "enter")
	if m.Controller().Stage() != capture.StageCalibration {
		t.Fatalf("expected calibration, got %s", m.Controller().Stage())
	}
	if !m.Controller().Data().SetupComplete {
		t.Error("expected setupComplete to survive back")
	}
}

func TestCaptureModel_LiveTestTimer(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{TickInterval: 5 * time.Millisecond})
	defer m.Shutdown()

	m, _ = pressCapture(m, "enter", "enter", "enter", "enter")
	m, cmd := pressCapture(m, "space")
	if !m.watch.Running() {
		t.Fatal("expected stopwatch to run after space")
	}
	if cmd == nil {
		t.Fatal("expected a tick command")
	}

	msg := cmd()
	tick, ok := msg.(StopwatchTickMsg)
	if !ok {
		t.Fatalf("expected StopwatchTickMsg, got %T", msg)
	}
	if tick.Elapsed <= 0 || tick.Elapsed%(5*time.Millisecond) != 0 {
		t.Errorf("expected a positive multiple of the interval, got %v", tick.Elapsed)
	}

	updated, next := m.Update(tick)
	m = updated.(CaptureModel)
	if next == nil {
		t.Error("expected the model to keep waiting for ticks")
	}

	m, _ = pressCapture(m, "p")
	if m.watch.Running() {
		t.Fatal("expected pause to stop the stopwatch")
	}
	frozen := m.Elapsed()
	time.Sleep(20 * time.Millisecond)
	if m.Elapsed() != frozen {
		t.Errorf("expected elapsed to freeze at %v, got %v", frozen, m.Elapsed())
	}

	m, _ = pressCapture(m, "f")
	res := m.Controller().Data().TestResults
	if res == nil {
		t.Fatal("expected test results")
	}
	if res.Elapsed != frozen || res.Time != capture.FormatElapsed(frozen) {
		t.Errorf("expected recorded time %v, got %+v", frozen, res)
	}
	if m.Elapsed() != 0 {
		t.Errorf("expected the stopwatch to reset after finishing, got %v", m.Elapsed())
	}
}

func TestCaptureModel_StaleTickDropped(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{})
	_, cmd := m.Update(StopwatchTickMsg{Gen: 42, Elapsed: time.Second})
	if cmd != nil {
		t.Error("expected stale tick to be dropped")
	}
}

func TestCaptureModel_LeavingLiveTestStopsStopwatch(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{})
	m, _ = pressCapture(m, "enter", "enter", "enter", "enter", "space")
	if !m.watch.Running() {
		t.Fatal("expected stopwatch running")
	}

	m, _ = pressCapture(m, "esc")
	if m.watch.Running() {
		t.Error("expected back to stop the stopwatch")
	}
	if m.Controller().Stage() != capture.StageTestPrep {
		t.Errorf("expected test-prep, got %s", m.Controller().Stage())
	}
}

func TestCaptureModel_TryAgain(t *testing.T) {
	rec := &fakeRecorder{}
	m := NewCaptureModel(CaptureOptions{Recorder: rec})
	m, _ = pressCapture(m, "enter", "enter", "enter", "enter", "f", "r")

	if m.Controller().Stage() != capture.StageSetup {
		t.Fatalf("expected setup after try again, got %s", m.Controller().Stage())
	}
	if m.Controller().Attempt() != 2 {
		t.Errorf("expected attempt 2, got %d", m.Controller().Attempt())
	}
	if !m.Controller().Data().SetupComplete {
		t.Error("expected data kept by default")
	}
	if rec.sessions != 1 || len(rec.attempts) != 1 || rec.transitions != 6 {
		t.Errorf("unexpected recorder state %+v", rec)
	}
}

func TestCaptureModel_TryAgainResets(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{ResetOnRetry: true})
	m, _ = pressCapture(m, "enter", "enter", "enter", "enter", "f", "r")

	if m.Controller().Data() != (capture.Data{}) {
		t.Errorf("expected cleared data, got %+v", m.Controller().Data())
	}
}

func TestCaptureModel_ResultsBackExits(t *testing.T) {
	exits := 0
	m := NewCaptureModel(CaptureOptions{OnExit: func() { exits++ }})
	m, cmd := pressCapture(m, "enter", "enter", "enter", "enter", "f", "esc")

	if exits != 1 {
		t.Fatalf("expected exit, got %d", exits)
	}
	if m.Controller().Stage() != capture.StageResults {
		t.Errorf("expected stage to stay at results, got %s", m.Controller().Stage())
	}
	msg, ok := cmd().(CaptureExitedMsg)
	if !ok {
		t.Fatal("expected CaptureExitedMsg")
	}
	if msg.Data.TestResults == nil || msg.SessionID == "" {
		t.Errorf("expected session data in exit message, got %+v", msg)
	}
}

func TestCaptureModel_StandaloneQuitsOnExit(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{})
	m.Standalone = true

	updated, cmd := m.Update(CaptureExitedMsg{})
	if !updated.(CaptureModel).Quitting {
		t.Error("expected quitting")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

func TestCaptureModel_QuitStopsStopwatch(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{})
	m, _ = pressCapture(m, "enter", "enter", "enter", "enter", "space")
	m, cmd := pressCapture(m, "q")

	if m.watch.Running() {
		t.Error("expected quit to stop the stopwatch")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestCaptureModel_ErrMsg(t *testing.T) {
	m := NewCaptureModel(CaptureOptions{})
	updated, _ := m.Update(ErrMsg{Err: errors.New("boom")})
	if !strings.Contains(updated.View(), "boom") {
		t.Error("expected error in view")
	}
}

func TestRenderCapture_Stages(t *testing.T) {
	tests := []struct {
		presses []string
		want    []string
	}{
		{nil, []string{"Shuttle Run • Step 1 of 5", "20%", "Position Your Device", "Flat, dry", "Calibrate Your Space"}},
		{[]string{"enter"}, []string{"Step 2 of 5", "40%", "5.0m", "00:20s", "Cleared"}},
		{[]string{"enter", "enter"}, []string{"Step 3 of 5", "60%", "98 bpm", "2 x 10m Easy Shuttle"}},
		{[]string{"enter", "enter", "enter"}, []string{"Step 4 of 5", "80%", "Toe behind line", "3-2-1 countdown"}},
		{[]string{"enter", "enter", "enter", "enter"}, []string{"Step 5 of 5", "100%", "00:00.00", "1 of 2", "Ready to start on beep."}},
	}

	for _, tt := range tests {
		m, _ := pressCapture(NewCaptureModel(CaptureOptions{}), tt.presses...)
		view := m.View()
		for _, want := range tt.want {
			if !strings.Contains(view, want) {
				t.Errorf("stage %s: expected view to contain %q", m.Controller().Stage(), want)
			}
		}
	}
}

func TestRenderCapture_ResultsShowsReferenceResult(t *testing.T) {
	m, _ := pressCapture(NewCaptureModel(CaptureOptions{}), "enter", "enter", "enter", "enter", "f")
	view := m.View()

	for _, want := range []string{"Test Complete!", "00:12.45", "B+", "+0.8s", "Consistent pacing throughout the test", "try again"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected results view to contain %q", want)
		}
	}
	if strings.Contains(view, "00:00.00") {
		t.Error("results screen must not show the recorded attempt")
	}
}

func TestRenderCapture_AttemptShownAfterRetry(t *testing.T) {
	m, _ := pressCapture(NewCaptureModel(CaptureOptions{}), "enter", "enter", "enter", "enter", "f", "r")
	if !strings.Contains(m.View(), "(attempt 2)") {
		t.Error("expected attempt number in header")
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		pct    int
		width  int
		filled int
	}{
		{0, 0, 0},
		{50, 0, 20},
		{100, 0, 40},
		{100, 50, 20},
		{60, 20, 6},
	}
	for _, tt := range tests {
		var b strings.Builder
		renderProgressBar(&b, tt.pct, tt.width)
		if got := strings.Count(b.String(), "█"); got != tt.filled {
			t.Errorf("renderProgressBar(%d, %d): expected %d filled cells, got %d", tt.pct, tt.width, tt.filled, got)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	c := capture.NewController()
	for _, stage := range capture.Stages[:4] {
		r, _ := capture.CompletionFor(stage)
		if err := c.Advance(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Advance(capture.NewLiveTestResult(1230 * time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	out := RenderSummary(SummaryFromController(c))
	for _, want := range []string{c.ID(), "Recorded time:", "00:01.23", "attempt 1", "5.0m"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to contain %q", want)
		}
	}
}

func TestRenderSummary_NoAttempt(t *testing.T) {
	out := RenderSummary(SummaryFromController(capture.NewController()))
	if !strings.Contains(out, "No attempt recorded.") {
		t.Error("expected no-attempt line")
	}
}
