// Package main is the entry point for the fitodo CLI.
//
// fitodo is a terminal client for FITODO sports assessments. It hosts the
// sign-up gate and tabbed home of the app and the six-stage Shuttle Run
// capture wizard.
//
// Commands: app, run, tests, signup, version, completion.
//
// For detailed usage information, run:
//
//	fitodo --help
package main

import (
	"fmt"
	"os"

	"github.com/fitodo/fitodo/cmd/fitodo/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
