// SPDX-License-Identifier: MPL-2.0

package quill

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quill-sh/quill/container"
	"github.com/quill-sh/quill/internal/config"
	"github.com/quill-sh/quill/internal/inject"
	"github.com/quill-sh/quill/internal/issue"
	"github.com/quill-sh/quill/internal/logging"
	"github.com/quill-sh/quill/internal/signature"
	"github.com/quill-sh/quill/pkg/jsonutil"
	"github.com/quill-sh/quill/plugin"
	"github.com/quill-sh/quill/ui"
)

// Run executes the script against os.Args and exits the process. A handler
// returning an ExitError sets the exit code; any other error exits 1.
// Deferred declaration errors are reported here before anything runs.
func (s *Script) Run() {
	if err := s.declarationError(); err != nil {
		s.reportError(err)
		os.Exit(1)
	}
	if err := s.RunContext(context.Background()); err != nil {
		// fang already rendered the error message; add catalog guidance
		// when the failure matches a known issue.
		s.printGuidance(err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// RunContext executes the script and returns the handler's error instead
// of exiting, which makes it the entry point of choice for tests. It
// honors WithArgs and routes cobra's help and error output through
// WithOutput when set.
func (s *Script) RunContext(ctx context.Context) error {
	if err := s.declarationError(); err != nil {
		return err
	}
	root, err := s.buildRoot()
	if err != nil {
		return err
	}
	if s.argsSet {
		root.SetArgs(s.args)
	}
	return fang.Execute(
		ctx,
		root,
		fang.WithVersion(s.version),
		fang.WithNotifySignal(os.Interrupt),
	)
}

// declarationError joins every deferred Main and Command failure.
func (s *Script) declarationError() error {
	return errors.Join(s.declErrs...)
}

// reportError logs err and prints catalog guidance for known failures.
func (s *Script) reportError(err error) {
	s.logger().Error("script declaration failed", "err", err)
	s.printGuidance(err)
}

// printGuidance renders the issue-catalog entry matching err, if any, to
// stderr.
func (s *Script) printGuidance(err error) {
	id, ok := guidanceFor(err)
	if !ok {
		return
	}
	msg, renderErr := issue.Get(id).Render("auto")
	if renderErr != nil {
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// guidanceFor maps an error chain to its issue-catalog entry.
func guidanceFor(err error) (issue.Id, bool) {
	var sigErr *signature.SignatureError
	switch {
	case errors.As(err, &sigErr):
		return issue.SignatureErrorId, true
	case errors.Is(err, inject.ErrInvalidFunc),
		errors.Is(err, inject.ErrUnboundField),
		errors.Is(err, inject.ErrFieldType):
		return issue.HandlerBindErrorId, true
	case errors.Is(err, plugin.ErrUnknown):
		return issue.PluginNotFoundId, true
	case errors.Is(err, container.ErrNotFound):
		return issue.BindingNotFoundId, true
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId, true
	}
	return 0, false
}

// logger resolves the script's "log" binding, falling back to the
// pre-configuration default.
func (s *Script) logger() *log.Logger {
	if logger, err := container.As[*log.Logger](s.c, container.Log); err == nil {
		return logger
	}
	return logging.Default()
}

// buildRoot assembles the cobra command tree from the script's
// declarations.
func (s *Script) buildRoot() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   s.name,
		Short: s.description,
		Long:  s.description,
	}
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentFlags().String("config", "",
		fmt.Sprintf("config file (default is $XDG_CONFIG_HOME/%s/%s.%s)",
			config.AppName, config.ConfigFileName, config.ConfigFileExt))
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return s.initialize(cmd)
	}

	if s.input != nil {
		root.SetIn(s.input)
	}
	if s.output != nil {
		root.SetOut(s.output)
		root.SetErr(s.output)
	}

	if s.main != nil {
		root.Use = s.main.sig.UseString(s.name)
		if s.main.short != "" {
			root.Short = s.main.short
		}
		root.Args = s.main.sig.Validator()
		if err := s.main.sig.RegisterFlags(root.Flags()); err != nil {
			return nil, fmt.Errorf("register flags for main command: %w", err)
		}
		root.RunE = s.runE(s.main)
	} else {
		root.Args = cobra.NoArgs
		root.RunE = func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		}
	}

	for _, d := range s.commands {
		if err := s.mount(root, d); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// mount places a declared subcommand under root, creating bare group
// commands for intermediate path words. A group created here is filled in
// later if its own path is declared too.
func (s *Script) mount(root *cobra.Command, d *declaration) error {
	parent := root
	path := d.sig.Path
	for _, word := range path[:len(path)-1] {
		parent = ensureGroup(parent, word)
	}

	word := path[len(path)-1]
	leaf := findChild(parent, word)
	if leaf == nil {
		leaf = &cobra.Command{}
		parent.AddCommand(leaf)
	}
	leaf.Use = d.sig.UseString(word)
	leaf.Short = d.short
	leaf.Args = d.sig.Validator()
	leaf.RunE = s.runE(d)
	if err := d.sig.RegisterFlags(leaf.Flags()); err != nil {
		return fmt.Errorf("register flags for command %q: %w", strings.Join(path, " "), err)
	}
	return nil
}

func findChild(parent *cobra.Command, word string) *cobra.Command {
	for _, child := range parent.Commands() {
		if child.Name() == word {
			return child
		}
	}
	return nil
}

func ensureGroup(parent *cobra.Command, word string) *cobra.Command {
	if child := findChild(parent, word); child != nil {
		return child
	}
	group := &cobra.Command{Use: word}
	parent.AddCommand(group)
	return group
}

// runE adapts a declaration to cobra: parse the command line into named
// values, then call the handler with the container resolving the rest. A
// non-error handler result is echoed to the "output" binding, strings
// verbatim and anything else as pretty JSON.
func (s *Script) runE(d *declaration) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		values, err := d.sig.ExtractValues(cmd.Flags(), args)
		if err != nil {
			return err
		}
		out, err := d.fn.Call(cmd.Context(), values, s.c)
		if err != nil || out == nil {
			return err
		}
		w, werr := container.As[io.Writer](s.c, container.Output)
		if werr != nil {
			w = cmd.OutOrStdout()
		}
		if text, ok := out.(string); ok {
			fmt.Fprintln(w, text)
			return nil
		}
		encoded, err := jsonutil.Encode(out)
		if err != nil {
			return fmt.Errorf("encode handler result: %w", err)
		}
		fmt.Fprintln(w, encoded)
		return nil
	}
}

// initialize runs once per execution, after flag parsing: load
// configuration, tune the container defaults the script author left
// untouched, and apply the selected plugins.
func (s *Script) initialize(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, cfgPath, err := config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// An explicitly requested config file must load; the implicit
		// lookup degrades to defaults with a warning.
		if cfgFile != "" {
			return err
		}
		logging.Default().Warn("falling back to default configuration", "err", err)
		cfg = config.DefaultConfig()
		cfgPath = ""
	}

	level := log.InfoLevel
	if parsed, perr := log.ParseLevel(cfg.Log.Level.String()); perr == nil {
		level = parsed
	}
	if verbose || cfg.Verbose {
		level = log.DebugLevel
	}

	// Configuration tunes only the bindings the script author never
	// touched; explicit Set and Provide calls win.
	if s.c.Seeded(container.Log) {
		if err := s.c.Set(container.Log, logging.New(os.Stderr, level, logging.Format(cfg.Log.Format))); err != nil {
			return err
		}
	}
	if s.c.Seeded(container.UI) {
		// Configuration can force accessible mode on and color off; the
		// defaults keep ui.New's terminal detection.
		opts := []ui.Option{ui.WithTheme(ui.Theme(cfg.UI.Theme))}
		if cfg.UI.Accessible {
			opts = append(opts, ui.WithAccessible(true))
		}
		if !cfg.UI.Color {
			opts = append(opts, ui.WithColor(false))
		}
		err := s.c.Provide(container.UI, func(c *container.Container) (any, error) {
			in, err := container.As[io.Reader](c, container.Input)
			if err != nil {
				return nil, err
			}
			out, err := container.As[io.Writer](c, container.Output)
			if err != nil {
				return nil, err
			}
			return ui.New(in, out, opts...), nil
		})
		if err != nil {
			return err
		}
	}

	logger := s.logger()
	if cfgPath != "" {
		logger.Debug("configuration loaded", "path", cfgPath)
	} else {
		logger.Debug("using default configuration")
	}

	if s.noPlugins {
		return nil
	}
	names := s.pluginNames
	if !s.pluginsSet {
		names = make([]string, 0, len(cfg.Plugins.Enabled))
		for _, n := range cfg.Plugins.Enabled {
			names = append(names, n.String())
		}
	}
	selected, err := s.registry.Select(names...)
	if err != nil {
		return err
	}
	if err := plugin.Apply(s.c, selected...); err != nil {
		return err
	}
	logger.Debug("plugins applied", "count", len(selected))
	return nil
}
