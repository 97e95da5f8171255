// SPDX-License-Identifier: MPL-2.0

// The quill command is the companion binary for quill scripts: it
// scaffolds new scripts and inspects the plugin registry. It is itself a
// quill script.
package main

import (
	"fmt"

	"github.com/quill-sh/quill"
	_ "github.com/quill-sh/quill/plugins/builtin"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// versionString returns a formatted version string for display.
func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func main() {
	// The builtin import above populates the registry for the plugins
	// listing; the binary itself runs without plugin bindings.
	s := quill.New("quill",
		quill.WithVersion(versionString()),
		quill.WithDescription(description()),
		quill.WithoutPlugins(),
	)
	s.Command("init [dir] [--name=<string>] [--force]", "Scaffold a new quill script", runInit)
	s.Command("plugins", "List registered plugins", runPlugins)
	s.Run()
}

func description() string {
	return TitleStyle.Render("quill") + SubtitleStyle.Render(" - single-file command line scripts") + `

quill turns one Go file into a polished command line program: declare
commands with a readable signature string and quill wires argument
parsing, styled help, configuration and a small service container
around your handlers.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Scaffold a script:  quill init myscript
  2. Fetch dependencies: cd myscript && go mod init myscript && go mod tidy
  3. Run it:             go run . --help`
}
