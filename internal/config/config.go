package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultTickInterval is the LiveTest stopwatch period.
const DefaultTickInterval = 10 * time.Millisecond

// Config is the complete client configuration.
type Config struct {
	Athlete AthleteConfig `mapstructure:"athlete" yaml:"athlete"`
	Capture CaptureConfig `mapstructure:"capture" yaml:"capture"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// AthleteConfig pre-fills the sign-up profile. When Name is set the sign-up
// form is skipped.
type AthleteConfig struct {
	Name string `mapstructure:"name" yaml:"name,omitempty"`
	Role string `mapstructure:"role" yaml:"role,omitempty"`
}

// CaptureConfig tunes the Shuttle Run capture wizard.
type CaptureConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
	// ResetOnRetry clears the accumulated step output on "Try Again".
	ResetOnRetry bool `mapstructure:"reset_on_retry" yaml:"reset_on_retry"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	NoColor   bool `mapstructure:"no_color" yaml:"no_color"`
}

// LogConfig controls the log file. An empty File discards logs.
type LogConfig struct {
	File      string `mapstructure:"file" yaml:"file,omitempty"`
	Verbosity int    `mapstructure:"verbosity" yaml:"verbosity"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Athlete: AthleteConfig{Role: "athlete"},
		Capture: CaptureConfig{TickInterval: DefaultTickInterval},
		UI:      UIConfig{AltScreen: true},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/fitodo/config.yaml (or the platform
// equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fitodo.yaml"
	}
	return filepath.Join(dir, "fitodo", "config.yaml")
}
