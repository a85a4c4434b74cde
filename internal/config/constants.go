// Package config provides constants, the user configuration file, and the
// keybind registry for termfolio.
package config

import "charm.land/lipgloss/v2"

const (
	// DefaultWindowWidth is the preset width for portfolio windows.
	DefaultWindowWidth = 52
	// DefaultWindowHeight is the preset height for portfolio windows.
	DefaultWindowHeight = 14
	// MaximizedWindowWidth is the large preset toggled by f/F.
	MaximizedWindowWidth = 100
	// MaximizedWindowHeight is the large preset toggled by f/F.
	MaximizedWindowHeight = 28
	// MinWindowWidth is the smallest width a window may take when the
	// maximize preset is clamped to the screen.
	MinWindowWidth = 24
	// MinWindowHeight is the smallest height a window may take.
	MinWindowHeight = 6

	// DockHeight is the height of the dock strip at the bottom.
	DockHeight = 2

	// NotificationDuration is the default notification lifetime in
	// milliseconds.
	NotificationDuration = 1500
	// MaxLogMessages is the maximum number of log messages kept in memory.
	MaxLogMessages = 100

	// SysinfoUpdateInterval is the CPU/RAM refresh interval in milliseconds.
	SysinfoUpdateInterval = 500

	// NormalFPS is the refresh rate of the tick loop.
	NormalFPS = 30

	// ZIndexHelp is the z-index for the help overlay.
	ZIndexHelp = 1000
	// ZIndexDock is the z-index for the dock.
	ZIndexDock = 1000
)

// Appearance settings applied at startup from the user config. They are
// read on every render, so they live as package state like the rest of the
// render-time configuration.
var (
	// HideWindowButtons removes the close/minimize/maximize pills.
	HideWindowButtons bool
	// ConstrainDrag keeps windows fully inside the desk while dragging.
	ConstrainDrag bool
	// BorderStyle selects the window border charset: "rounded" or "ascii".
	BorderStyle = "rounded"
)

// ApplyAppearance copies appearance settings from a loaded user config
// into the package-level render configuration.
func ApplyAppearance(a AppearanceConfig) {
	HideWindowButtons = a.HideWindowButtons
	ConstrainDrag = a.ConstrainDrag
	if a.BorderStyle != "" {
		BorderStyle = a.BorderStyle
	}
}

// GetBorderForStyle returns the lipgloss border matching BorderStyle.
func GetBorderForStyle() lipgloss.Border {
	if BorderStyle == "ascii" {
		return lipgloss.NormalBorder()
	}
	return lipgloss.RoundedBorder()
}

// Window chrome fragments. ASCII mode swaps the decorative glyphs for
// plain characters so the chrome renders on dumb terminals.

// GetWindowButtonClose returns the close button glyph.
func GetWindowButtonClose() string {
	if BorderStyle == "ascii" {
		return " x "
	}
	return " ✕ "
}

// GetWindowButtonMinimize returns the minimize button glyph.
func GetWindowButtonMinimize() string {
	if BorderStyle == "ascii" {
		return " - "
	}
	return " — "
}

// GetWindowButtonMaximize returns the maximize button glyph.
func GetWindowButtonMaximize() string {
	if BorderStyle == "ascii" {
		return " o "
	}
	return " □ "
}

// GetWindowPillLeft returns the left cap of a title-bar pill.
func GetWindowPillLeft() string {
	if BorderStyle == "ascii" {
		return "("
	}
	return string(rune(0xe0b6))
}

// GetWindowPillRight returns the right cap of a title-bar pill.
func GetWindowPillRight() string {
	if BorderStyle == "ascii" {
		return ")"
	}
	return string(rune(0xe0b4))
}

// GetWindowBorderTop returns the top border rune.
func GetWindowBorderTop() string { return GetBorderForStyle().Top }

// GetWindowBorderTopLeft returns the top-left corner rune.
func GetWindowBorderTopLeft() string { return GetBorderForStyle().TopLeft }

// GetWindowBorderTopRight returns the top-right corner rune.
func GetWindowBorderTopRight() string { return GetBorderForStyle().TopRight }

// GetWindowBorderBottom returns the bottom border rune.
func GetWindowBorderBottom() string { return GetBorderForStyle().Bottom }

// GetWindowBorderBottomLeft returns the bottom-left corner rune.
func GetWindowBorderBottomLeft() string { return GetBorderForStyle().BottomLeft }

// GetWindowBorderBottomRight returns the bottom-right corner rune.
func GetWindowBorderBottomRight() string { return GetBorderForStyle().BottomRight }
