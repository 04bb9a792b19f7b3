package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fitodo/fitodo/internal/config"
	"github.com/fitodo/fitodo/internal/host"
	"github.com/fitodo/fitodo/internal/onboarding"
)

var errSignUpNeedsTTY = errors.New("sign-up needs an interactive terminal")

// Factory function variables for signup - can be replaced in tests.
var (
	runSignUpForm = onboarding.Run

	writeConfig = config.Write
)

// SignUp runs the sign-up form and stores the profile in the config file so
// later runs skip the form.
func SignUp(ctx context.Context, g GlobalOptions) error {
	if !isInteractiveTTY() {
		return errSignUpNeedsTTY
	}

	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	role, err := host.ParseRole(cfg.Athlete.Role)
	if err != nil {
		return err
	}
	profile, err := runSignUpForm(ctx, onboarding.Profile{Name: cfg.Athlete.Name, Role: role})
	if err != nil {
		return err
	}

	cfg.Athlete.Name = profile.Name
	cfg.Athlete.Role = string(profile.Role)

	path := g.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := writeConfig(cfg, path); err != nil {
		return err
	}

	n := host.NewRouter().CompleteSignUp(profile.Name, profile.Role)
	fmt.Println(n.Text)
	fmt.Printf("Profile saved to %s\n", path)
	return nil
}
