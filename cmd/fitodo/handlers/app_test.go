package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitodo/fitodo/internal/host"
	"github.com/fitodo/fitodo/internal/ui/tui"
)

func TestApp_Plain(t *testing.T) {
	saveAndRestoreFactories(t)

	g := writeTestConfig(t, "athlete:\n  name: Asha\n  role: coach\n")
	g.MetricsFile = filepath.Join(t.TempDir(), "fitodo.prom")

	var err error
	output := captureOutput(func() {
		err = App(context.Background(), g, true, 5*time.Millisecond)
	})
	require.NoError(t, err)

	for _, want := range []string{
		"[success] Welcome to FITODO!",
		"Home (coach)",
		"Women's Space",
		"[success] Opening fitness tests...",
		"[success] Starting Shuttle Run test...",
		"Test Complete!",
		"Recorded time:",
		"Back on tests",
	} {
		assert.Contains(t, output, want)
	}

	metrics, err := os.ReadFile(g.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `fitodo_host_notices_total{kind="success"} 3`)
	assert.Contains(t, string(metrics), "fitodo_capture_sessions_total 1")
}

func TestApp_PlainDefaultsName(t *testing.T) {
	saveAndRestoreFactories(t)

	var err error
	output := captureOutput(func() {
		err = App(context.Background(), writeTestConfig(t, ""), true, 0)
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Home (athlete)")
	assert.NotContains(t, output, "Family Dashboard")
}

func TestApp_BadRole(t *testing.T) {
	saveAndRestoreFactories(t)

	err := App(context.Background(), writeTestConfig(t, "athlete:\n  role: referee\n"), true, 0)
	require.Error(t, err)
}

func TestApp_RefusesTUIWithoutTTY(t *testing.T) {
	saveAndRestoreFactories(t)
	isInteractiveTTY = func() bool { return false }

	err := App(context.Background(), writeTestConfig(t, ""), false, 0)
	assert.ErrorIs(t, err, errNotTTY)
}

func TestApp_TUI(t *testing.T) {
	saveAndRestoreFactories(t)
	isInteractiveTTY = func() bool { return true }

	var got tui.AppOptions
	runAppTUI = func(_ context.Context, opts tui.AppOptions, ro tui.RunOptions) ([]tui.CaptureExitedMsg, error) {
		got = opts
		assert.True(t, ro.AltScreen)
		return []tui.CaptureExitedMsg{{SessionID: "a"}, {SessionID: "b"}}, nil
	}

	var err error
	output := captureOutput(func() {
		err = App(context.Background(), writeTestConfig(t, "athlete:\n  name: Asha\n  role: parent\n"), false, 0)
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", got.Profile.Name)
	assert.Equal(t, host.RoleParent, got.Profile.Role)
	assert.Equal(t, time.Millisecond, got.Capture.TickInterval)
	assert.NotNil(t, got.Recorder)
	assert.Contains(t, output, "Shuttle Run session a")
	assert.Contains(t, output, "Shuttle Run session b")
}
