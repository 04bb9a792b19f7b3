package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitodo/fitodo/cmd/fitodo/handlers"
)

func TestApp(t *testing.T) {
	cmd := App(&handlers.GlobalOptions{})

	require.NotNil(t, cmd)
	assert.Equal(t, "app", cmd.Use)
	assert.Equal(t, "Open the FITODO app", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestApp_Flags(t *testing.T) {
	cmd := App(&handlers.GlobalOptions{})

	plain := cmd.Flags().Lookup("plain")
	require.NotNil(t, plain)
	assert.Equal(t, "false", plain.DefValue)

	duration := cmd.Flags().Lookup("duration")
	require.NotNil(t, duration)
	assert.Equal(t, "3s", duration.DefValue)
}

func TestApp_RejectsArgs(t *testing.T) {
	cmd := App(&handlers.GlobalOptions{})
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}
