// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - shared hex colors for consistent theming across UI output.
// These colors are designed for dark terminal backgrounds with good contrast.
const (
	// ColorPrimary is purple - used for titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for secondary text and prompt descriptions.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for success states and positive outcomes.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings and attention-needed items.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for informational output and links.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorHighlight)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
)

// styledLine renders one line through style when color is enabled, plain
// otherwise, always ending with a newline.
func (u *UI) styledLine(style lipgloss.Style, format string, args ...any) {
	text := trimTrailingNewline(format, args...)
	if u.colored {
		text = style.Render(text)
	}
	u.Println(text)
}

func trimTrailingNewline(format string, args ...any) string {
	s := fmt.Sprintf(format, args...)
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}
