// Package theme provides color themes and styling for the termfolio desk.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup. If themeName is empty, theming is
// disabled and the built-in fallback colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil when theming is
// disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Window border colors

// BorderFocused is the border color of the focused window.
func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// BorderUnfocused is the border color of unfocused windows.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FAAAAA")
	}
	return t.Red
}

// ButtonFg is the foreground of title-bar buttons, drawn on the border
// color as background.
func ButtonFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Black
}

// Content colors

// PromptColor is the color of the path/branch header line.
func PromptColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// TitleColor is the color of item title lines.
func TitleColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.BrightYellow
}

// LinkColor is the color of repository and work links.
func LinkColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// TextCursor returns the bg/fg of the block cursor glyph.
func TextCursor() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ffff"), lipgloss.Color("#000000")
	}
	return t.BrightCyan, t.Black
}

// SelectedLine returns the bg/fg of the yy-selected row highlight.
func SelectedLine() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd00cd"), lipgloss.Color("#ffffff")
	}
	return t.Purple, t.BrightWhite
}

// Dock colors

// DockAccent is the accent color for dock entries and the open toggle.
func DockAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// DockText is the dock's plain text color.
func DockText() color.Color {
	return lipgloss.Color("#a0a0b0")
}

// Help overlay colors

// HelpTitle is the help overlay title color.
func HelpTitle() color.Color {
	return lipgloss.Color("14")
}

// HelpSection is the help overlay section heading color.
func HelpSection() color.Color {
	return lipgloss.Color("11")
}

// HelpKey is the color of key labels in the help overlay.
func HelpKey() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}
