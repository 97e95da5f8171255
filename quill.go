// SPDX-License-Identifier: MPL-2.0

// Package quill turns a single Go file into a polished command line script.
//
// A script declares commands with a readable signature string and quill
// wires argument parsing, styled help, configuration and a small service
// container around the handler:
//
//	package main
//
//	import (
//		"github.com/quill-sh/quill"
//		"github.com/quill-sh/quill/ui"
//	)
//
//	type greetIn struct {
//		Name  string
//		Shout bool
//		UI    *ui.UI
//	}
//
//	func main() {
//		s := quill.New("greet", quill.WithVersion("1.0.0"))
//		s.Main("<name> [--shout]", "Greet someone politely", func(in greetIn) error {
//			in.UI.Successf("hello, %s", in.Name)
//			return nil
//		})
//		s.Run()
//	}
//
// Handler parameters resolve by name: first from the parsed command line,
// then from the script's container, so the same struct can mix flags with
// services like "ui" and "log". Multi-command scripts declare subcommands
// with Command; the signature's leading words form the command path.
package quill

import (
	"fmt"
	"io"
	"strings"

	"github.com/quill-sh/quill/container"
	"github.com/quill-sh/quill/internal/inject"
	"github.com/quill-sh/quill/internal/signature"
	"github.com/quill-sh/quill/plugin"
)

type (
	// Script is one command line program under construction. Declare
	// commands on it, then call Run (or RunContext in tests).
	Script struct {
		name        string
		version     string
		description string

		registry    *plugin.Registry
		pluginNames []string
		pluginsSet  bool
		noPlugins   bool

		c *container.Container

		input  io.Reader
		output io.Writer

		main     *declaration
		commands []*declaration
		declErrs []error
		declared map[string]bool

		args    []string
		argsSet bool
	}

	// declaration is one parsed command waiting to be mounted.
	declaration struct {
		sig   *signature.Command
		short string
		fn    *inject.Func
	}
)

// New creates a script named name. The name becomes the root command's
// usage word, so it should match the built binary's name.
func New(name string, opts ...Option) *Script {
	s := &Script{
		name:     name,
		version:  "dev",
		registry: plugin.Default(),
		c:        container.New(),
		declared: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	_ = s.c.Set(container.ScriptName, s.name)
	_ = s.c.Set(container.ScriptVersion, s.version)
	if s.input != nil {
		_ = s.c.Set(container.Input, s.input)
	}
	if s.output != nil {
		_ = s.c.Set(container.Output, s.output)
	}
	return s
}

// Container returns the script's service container for direct binding.
func (s *Script) Container() *container.Container {
	return s.c
}

// Main declares the script's root command. argsSig is a signature without
// leading command words, for example "<name> [--shout]"; it may be empty
// for a script that takes no arguments. Declaration problems are deferred
// and reported by Run.
func (s *Script) Main(argsSig, short string, handler any) {
	if s.main != nil {
		s.declErrs = append(s.declErrs, fmt.Errorf("main command already declared"))
		return
	}
	d, err := s.declare(argsSig, short, handler)
	if err != nil {
		s.declErrs = append(s.declErrs, fmt.Errorf("declare main command: %w", err))
		return
	}
	if len(d.sig.Path) > 0 {
		s.declErrs = append(s.declErrs, fmt.Errorf(
			"declare main command: signature %q must not start with a command word; use Command for subcommands", argsSig))
		return
	}
	s.main = d
}

// Command declares a subcommand. The signature's leading bare words form
// the command path, so "db migrate <version>" mounts "migrate" under a
// "db" group command. Declaration problems are deferred and reported by
// Run.
func (s *Script) Command(sig, short string, handler any) {
	d, err := s.declare(sig, short, handler)
	if err != nil {
		s.declErrs = append(s.declErrs, fmt.Errorf("declare command %q: %w", sig, err))
		return
	}
	if len(d.sig.Path) == 0 {
		s.declErrs = append(s.declErrs, fmt.Errorf(
			"declare command %q: signature must start with a command name; use Main for the root command", sig))
		return
	}
	key := strings.Join(d.sig.Path, " ")
	if s.declared[key] {
		s.declErrs = append(s.declErrs, fmt.Errorf("declare command %q: command path already declared", sig))
		return
	}
	s.declared[key] = true
	s.commands = append(s.commands, d)
}

func (s *Script) declare(sig, short string, handler any) (*declaration, error) {
	parsed, err := signature.Parse(sig)
	if err != nil {
		return nil, err
	}
	fn, err := inject.NewFunc(handler)
	if err != nil {
		return nil, err
	}
	return &declaration{sig: parsed, short: short, fn: fn}, nil
}
