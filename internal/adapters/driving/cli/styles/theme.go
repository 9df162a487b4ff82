// Package styles provides colours and styling for CLI report output.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for CLI output.
type Theme struct {
	// Primary is used for headings.
	Primary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles bound to one output.
// Colour is dropped automatically when the output is not a terminal.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for failed outcomes.
	Error lipgloss.Style

	// Success style for successful outcomes.
	Success lipgloss.Style

	// Warning style for notices.
	Warning lipgloss.Style
}

// NewStyles creates styles from a theme for output w.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return &Styles{
		theme: theme,

		Title: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Error: r.NewStyle().
			Foreground(theme.Error),

		Success: r.NewStyle().
			Foreground(theme.Success),

		Warning: r.NewStyle().
			Foreground(theme.Warning),
	}
}

// DefaultStyles returns styles with the default theme for output w.
func DefaultStyles(w io.Writer) *Styles {
	return NewStyles(w, DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
