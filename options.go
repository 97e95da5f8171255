// SPDX-License-Identifier: MPL-2.0

package quill

import (
	"io"

	"github.com/quill-sh/quill/container"
	"github.com/quill-sh/quill/plugin"
)

// Option configures a Script at construction time.
type Option func(*Script)

// WithVersion sets the version reported by --version.
func WithVersion(version string) Option {
	return func(s *Script) {
		s.version = version
	}
}

// WithDescription sets the long help text shown on the root command.
func WithDescription(description string) Option {
	return func(s *Script) {
		s.description = description
	}
}

// WithPlugins selects which registered plugins apply to the container when
// the script runs. With no names, all registered plugins apply in
// registration order. Without this option, the selection comes from the
// quill configuration's plugins.enabled list, falling back to all.
func WithPlugins(names ...string) Option {
	return func(s *Script) {
		s.pluginsSet = true
		s.pluginNames = names
		s.noPlugins = false
	}
}

// WithoutPlugins runs the script with no plugins applied at all.
func WithoutPlugins() Option {
	return func(s *Script) {
		s.noPlugins = true
	}
}

// WithRegistry swaps the plugin registry the script selects from. Mostly
// useful in tests; scripts normally rely on the process-wide default.
func WithRegistry(r *plugin.Registry) Option {
	return func(s *Script) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithContainer swaps the script's container for a prepared one.
func WithContainer(c *container.Container) Option {
	return func(s *Script) {
		if c != nil {
			s.c = c
		}
	}
}

// WithInput rebinds the container's "input" default.
func WithInput(r io.Reader) Option {
	return func(s *Script) {
		s.input = r
	}
}

// WithOutput rebinds the container's "output" default.
func WithOutput(w io.Writer) Option {
	return func(s *Script) {
		s.output = w
	}
}

// WithArgs overrides the command line arguments parsed by Run and
// RunContext. Without it, os.Args applies. Mostly useful in tests.
func WithArgs(args []string) Option {
	return func(s *Script) {
		s.args = args
		s.argsSet = true
	}
}
