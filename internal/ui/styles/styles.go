// Package styles provides shared lipgloss styles for the picker.
//
// Colours come from the active Theme; call Init once after the config is
// loaded and before any UI is drawn.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
	Info    color.Color = DefaultTheme.Info
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle marks the selected row
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	MutedStyle  = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)
	InfoStyle   = lipgloss.NewStyle().Foreground(Info).Italic(true)

	// HighlightStyle for matched characters
	HighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
)

// Cursor is drawn in front of the selected row.
const Cursor = "❯"
