// SPDX-License-Identifier: MPL-2.0

// Package ui implements the interactive-output helper bound in every
// container under the name "ui". A UI combines the script's input and
// output streams with styled printing and prompt components, so handlers
// talk to the terminal through one object instead of juggling streams,
// styles and prompt libraries themselves.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme selects the visual theme for prompt components.
type Theme string

const (
	// ThemeDefault uses the base huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// ErrCanceled is returned when the user aborts a prompt.
var ErrCanceled = errors.New("prompt canceled")

type (
	// UI is the interactive-output helper. Construct with New.
	UI struct {
		in         io.Reader
		out        io.Writer
		theme      Theme
		accessible bool
		colored    bool
	}

	// Option adjusts a UI at construction time.
	Option func(*UI)
)

// WithTheme sets the prompt theme.
func WithTheme(t Theme) Option {
	return func(u *UI) { u.theme = t }
}

// WithAccessible forces accessible mode: prompts render as plain
// question/answer lines instead of full-screen components.
func WithAccessible(accessible bool) Option {
	return func(u *UI) { u.accessible = accessible }
}

// WithColor forces styled output on or off regardless of terminal
// detection.
func WithColor(colored bool) Option {
	return func(u *UI) { u.colored = colored }
}

// New builds a UI over the given streams. Accessible mode defaults to on
// when in is not a terminal (pipes, command substitution) or the ACCESSIBLE
// environment variable is set; colored output defaults to on only when out
// is a terminal and NO_COLOR is unset.
func New(in io.Reader, out io.Writer, opts ...Option) *UI {
	u := &UI{
		in:         in,
		out:        out,
		theme:      ThemeDefault,
		accessible: !isTerminal(in) || os.Getenv("ACCESSIBLE") != "",
		colored:    isTerminal(out) && os.Getenv("NO_COLOR") == "",
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Printf writes unstyled text to the output stream.
func (u *UI) Printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// Println writes unstyled text plus a newline to the output stream.
func (u *UI) Println(args ...any) {
	fmt.Fprintln(u.out, args...)
}

// Titlef writes a bold title line.
func (u *UI) Titlef(format string, args ...any) {
	u.styledLine(titleStyle, format, args...)
}

// Successf writes a success line.
func (u *UI) Successf(format string, args ...any) {
	u.styledLine(successStyle, format, args...)
}

// Infof writes an informational line.
func (u *UI) Infof(format string, args ...any) {
	u.styledLine(infoStyle, format, args...)
}

// Warnf writes a warning line.
func (u *UI) Warnf(format string, args ...any) {
	u.styledLine(warningStyle, format, args...)
}

// Errorf writes an error line.
func (u *UI) Errorf(format string, args ...any) {
	u.styledLine(errorStyle, format, args...)
}

// isTerminal reports whether v is backed by a terminal file descriptor.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// run executes a single-field huh form wired to the UI's streams and
// settings.
func (u *UI) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(u.huhTheme()).
		WithAccessible(u.accessible).
		WithInput(u.in).
		WithOutput(u.out)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCanceled
		}
		return err
	}
	return nil
}

// huhTheme converts the UI theme to a huh.Theme.
func (u *UI) huhTheme() *huh.Theme {
	switch u.theme {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}
