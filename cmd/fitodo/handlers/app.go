package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fitodo/fitodo/internal/catalog"
	"github.com/fitodo/fitodo/internal/host"
	"github.com/fitodo/fitodo/internal/onboarding"
	"github.com/fitodo/fitodo/internal/ui/tui"
)

// App runs the host app: sign-up gate, tabs and the capture wizard.
func App(ctx context.Context, g GlobalOptions, plain bool, duration time.Duration) (err error) {
	ctx, e, err := setup(ctx, g)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, e.close())
	}()

	role, err := host.ParseRole(e.cfg.Athlete.Role)
	if err != nil {
		return err
	}
	profile := onboarding.Profile{Name: e.cfg.Athlete.Name, Role: role}

	if plain {
		return appScripted(ctx, e, profile, duration)
	}
	if !isInteractiveTTY() {
		return errNotTTY
	}

	sessions, err := runAppTUI(ctx, tui.AppOptions{
		Profile:  profile,
		Capture:  e.captureOptions(),
		Logger:   e.log,
		Recorder: e.recorder,
	}, tui.RunOptions{AltScreen: e.cfg.UI.AltScreen})
	if err != nil {
		return err
	}

	for _, s := range sessions {
		printSessionSummary(s)
	}
	return nil
}

// appScripted walks the host the way a user reaching the Shuttle Run would:
// home, Tests tab, select the test, run the wizard, return.
func appScripted(ctx context.Context, e *env, profile onboarding.Profile, duration time.Duration) error {
	router := host.NewRouter(host.WithLogger(e.log))
	name := profile.Name
	if name == "" {
		name = "Athlete"
	}
	printNotice(router.CompleteSignUp(name, profile.Role), e)

	fmt.Printf("Home (%s)\n", router.Role())
	for _, item := range host.HomeActions(router.Role()) {
		fmt.Printf("  - %-20s %s\n", item.Title, item.Description)
	}
	fmt.Println()

	printNotice(router.Dispatch(host.ActionStartTest), e)
	printNotice(router.SelectTest(catalog.ShuttleRun), e)

	exit, err := scriptedWalk(ctx, os.Stdout, e.captureOptions(), duration, router.Back)
	if err != nil {
		return err
	}
	printSessionSummary(exit)

	fmt.Printf("\nBack on %s\n", router.Screen())
	return nil
}

func printNotice(n host.Notice, e *env) {
	e.recorder.Notice(n.Kind.String())
	fmt.Printf("[%s] %s\n", n.Kind, n.Text)
}
