// SPDX-License-Identifier: MPL-2.0

package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/quill-sh/quill/internal/issue"
	"github.com/quill-sh/quill/pkg/platform"
)

//go:embed scaffold.go.tmpl
var scaffoldTemplate string

type initIn struct {
	Dir    string `quill:"dir,optional"`
	Name   string
	Force  bool
	Output io.Writer
}

func runInit(in initIn) error {
	dir := in.Dir
	if dir == "" {
		dir = "."
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve target directory: %w", err)
	}

	name := in.Name
	if name == "" {
		name = filepath.Base(absDir)
	}
	if platform.IsWindowsReservedName(name) {
		return fmt.Errorf("'%s' is reserved on Windows. Use --name to pick another script name", name)
	}

	target := filepath.Join(dir, "main.go")
	if _, statErr := os.Stat(target); statErr == nil && !in.Force {
		if guidance, renderErr := issue.Get(issue.ScaffoldTargetExistsId).Render("auto"); renderErr == nil {
			fmt.Fprint(os.Stderr, guidance)
		}
		return issue.NewErrorContext().
			WithOperation("scaffold script").
			WithResource(target).
			WithSuggestion("Pass --force to overwrite").
			Wrap(os.ErrExist).
			BuildError()
	}

	content, err := renderScaffold(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absTarget, _ := filepath.Abs(target)
	fmt.Fprintf(in.Output, "%s Created %s\n", SuccessStyle.Render("✓"), absTarget)
	fmt.Fprintln(in.Output)
	fmt.Fprintln(in.Output, SubtitleStyle.Render("Next steps:"))
	step := 1
	if dir != "." {
		fmt.Fprintf(in.Output, "  %d. cd %s\n", step, dir)
		step++
	}
	fmt.Fprintf(in.Output, "  %d. go mod init %s && go mod tidy\n", step, name)
	fmt.Fprintf(in.Output, "  %d. go run . --help\n", step+1)

	return nil
}

func renderScaffold(name string) (string, error) {
	tmpl, err := template.New("scaffold").Parse(scaffoldTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse scaffold template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, struct{ Name string }{Name: name}); err != nil {
		return "", fmt.Errorf("failed to render scaffold template: %w", err)
	}
	return b.String(), nil
}
