// SPDX-License-Identifier: MPL-2.0

// Package shellrun runs POSIX shell snippets in-process, without forking a
// system shell. It registers the "shellrun" plugin, which binds a *Runner
// wired to the script's input and output streams under the "shell" name:
//
//	type in struct {
//		Shell *shellrun.Runner
//	}
//
//	s.Main("", "", func(ctx context.Context, in in) error {
//		return in.Shell.Run(ctx, "ls | head -n 3")
//	})
//
// The interpreter is mvdan.cc/sh, so scripts behave the same on every
// platform, including Windows.
package shellrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ErrExitStatus is the sentinel wrapped by ExitStatusError.
var ErrExitStatus = errors.New("shell exited non-zero")

type (
	// Runner executes shell source against fixed stdio streams. The zero
	// value is not usable; call New.
	Runner struct {
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
	}

	// Option adjusts a single Run or Capture call.
	Option func(*settings)

	settings struct {
		dir    string
		env    []string
		params []string
	}

	// ExitStatusError is returned when the shell source ran to completion
	// and exited non-zero. It wraps ErrExitStatus for errors.Is()
	// compatibility.
	ExitStatusError struct {
		Code int
	}
)

// Error implements the error interface for ExitStatusError.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *ExitStatusError) Unwrap() error {
	return ErrExitStatus
}

// New returns a Runner over the given streams. A nil stderr falls back to
// stdout.
func New(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	if stderr == nil {
		stderr = stdout
	}
	return &Runner{stdin: stdin, stdout: stdout, stderr: stderr}
}

// WithDir sets the working directory for one call.
func WithDir(dir string) Option {
	return func(s *settings) { s.dir = dir }
}

// WithEnv appends KEY=VALUE pairs to the inherited environment for one
// call. Later pairs win over inherited variables of the same name.
func WithEnv(vars ...string) Option {
	return func(s *settings) { s.env = append(s.env, vars...) }
}

// WithParams sets the positional parameters ($1, $2, ...) for one call.
func WithParams(params ...string) Option {
	return func(s *settings) { s.params = append(s.params, params...) }
}

// Validate parses src and reports syntax problems without running
// anything.
func Validate(src string) error {
	if _, err := syntax.NewParser().Parse(strings.NewReader(src), "src"); err != nil {
		return fmt.Errorf("parse shell source: %w", err)
	}
	return nil
}

// Run executes src. A non-zero exit becomes an ExitStatusError; other
// failures (syntax, cancellation) keep their own types.
func (r *Runner) Run(ctx context.Context, src string, opts ...Option) error {
	return r.run(ctx, src, r.stdin, r.stdout, r.stderr, opts)
}

// Capture executes src with stdin disconnected and returns what it wrote
// to stdout. Stderr still flows to the runner's stderr stream.
func (r *Runner) Capture(ctx context.Context, src string, opts ...Option) (string, error) {
	var stdout bytes.Buffer
	err := r.run(ctx, src, nil, &stdout, r.stderr, opts)
	return stdout.String(), err
}

func (r *Runner) run(ctx context.Context, src string, stdin io.Reader, stdout, stderr io.Writer, opts []Option) error {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(src), "src")
	if err != nil {
		return fmt.Errorf("parse shell source: %w", err)
	}

	runnerOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(append(os.Environ(), s.env...)...)),
		interp.StdIO(stdin, stdout, stderr),
	}
	if s.dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(s.dir))
	}
	// "--" ends option parsing; without it a parameter like "-v" would be
	// taken for a shell option.
	if len(s.params) > 0 {
		runnerOpts = append(runnerOpts, interp.Params(append([]string{"--"}, s.params...)...))
	}

	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return fmt.Errorf("create shell interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return &ExitStatusError{Code: int(status)}
		}
		return fmt.Errorf("run shell source: %w", err)
	}
	return nil
}
