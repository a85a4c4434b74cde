// Package app provides the core termfolio application logic: the desk
// model hosting portfolio windows, their chrome, and the dock.
package app

import (
	"fmt"
	"time"

	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/Gaurav-Gosain/termfolio/internal/content"
	"github.com/google/uuid"
)

// Desk is the main application state: the window manager for the portfolio
// terminal windows.
type Desk struct {
	Windows       []*Window
	FocusedWindow int
	Width         int
	Height        int

	// Open is the shared open/closed flag, injected at construction and
	// shared with the dock toggle.
	Open *OpenState

	// Drag state.
	Dragging           bool
	DragOffsetX        int
	DragOffsetY        int
	DraggedWindowIndex int

	ShowHelp         bool
	HelpScrollOffset int

	Notifications []Notification
	LogMessages   []LogMessage

	KeybindRegistry *config.KeybindRegistry

	// Portfolio source, for hot reload.
	PortfolioPath string
	ReloadChan    <-chan struct{}

	// Cached system info for the dock readout.
	CPUPercent        float64
	RAMPercent        float64
	LastSysinfoUpdate time.Time

	// IsSSHMode marks a desk serving a remote visitor. Host CPU/RAM
	// readouts are suppressed for those sessions.
	IsSSHMode bool
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// NewDesk builds a desk hosting one window per document in the portfolio.
func NewDesk(p *content.Portfolio, open *OpenState, registry *config.KeybindRegistry) *Desk {
	d := &Desk{
		FocusedWindow:      -1,
		DraggedWindowIndex: -1,
		Open:               open,
		KeybindRegistry:    registry,
	}
	d.populate(p)
	return d
}

// populate rebuilds the window list from a portfolio, preserving geometry
// and cursor state of windows whose kind survives the reload.
func (d *Desk) populate(p *content.Portfolio) {
	prev := make(map[content.Kind]*Window, len(d.Windows))
	for _, w := range d.Windows {
		prev[w.Doc.Kind] = w
	}

	docs := p.Documents()
	windows := make([]*Window, 0, len(docs))
	for i, doc := range docs {
		if w, ok := prev[doc.Kind]; ok {
			w.SetDocument(doc)
			windows = append(windows, w)
			continue
		}
		title := p.Display.Header + ": " + string(doc.Kind)
		// Cascade initial positions so windows do not fully overlap.
		windows = append(windows, NewWindow(doc, title, 4+i*6, 2+i*3, i))
	}
	d.Windows = windows

	if d.FocusedWindow >= len(d.Windows) || d.FocusedWindow < 0 {
		d.FocusedWindow = -1
		if len(d.Windows) > 0 {
			d.FocusWindow(0)
		}
	}
}

// Reload swaps in a freshly loaded portfolio.
func (d *Desk) Reload(p *content.Portfolio) {
	d.populate(p)
	d.ShowNotification("Portfolio reloaded", "info", config.NotificationDuration*time.Millisecond)
}

// FocusWindow sets focus to the window at the specified index and raises
// it: the focused window gets the highest Z, the rest keep their order.
func (d *Desk) FocusWindow(i int) {
	if i < 0 || i >= len(d.Windows) {
		return
	}
	d.FocusedWindow = i
	d.Windows[i].Z = len(d.Windows) - 1

	z := 0
	for j := range d.Windows {
		if j != i {
			d.Windows[j].Z = z
			z++
		}
	}
}

// GetFocusedWindow returns the focused window, or nil.
func (d *Desk) GetFocusedWindow() *Window {
	if d.FocusedWindow >= 0 && d.FocusedWindow < len(d.Windows) {
		return d.Windows[d.FocusedWindow]
	}
	return nil
}

// CycleFocus moves focus to the next (or previous) visible window.
func (d *Desk) CycleFocus(backward bool) {
	visible := []int{}
	for i, w := range d.Windows {
		if !w.Minimized {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		return
	}

	pos := -1
	for i, idx := range visible {
		if idx == d.FocusedWindow {
			pos = i
			break
		}
	}

	var next int
	if backward {
		next = (pos - 1 + len(visible)) % len(visible)
	} else {
		next = (pos + 1) % len(visible)
	}
	if pos == -1 {
		next = 0
	}
	d.FocusWindow(visible[next])
}

// MinimizeWindow minimizes the window at the specified index and moves
// focus to the next visible window.
func (d *Desk) MinimizeWindow(i int) {
	if i < 0 || i >= len(d.Windows) || d.Windows[i].Minimized {
		return
	}
	d.Windows[i].Minimized = true
	if i == d.FocusedWindow {
		d.FocusNextVisibleWindow()
	}
}

// RestoreWindow restores a minimized window and focuses it.
func (d *Desk) RestoreWindow(i int) {
	if i < 0 || i >= len(d.Windows) || !d.Windows[i].Minimized {
		return
	}
	d.Windows[i].Minimized = false
	d.FocusWindow(i)
}

// RestoreAll restores every minimized window.
func (d *Desk) RestoreAll() {
	for i := range d.Windows {
		d.Windows[i].Minimized = false
	}
	if d.FocusedWindow == -1 && len(d.Windows) > 0 {
		d.FocusWindow(0)
	}
}

// RestoreMinimizedByIndex restores the nth minimized window, counting in
// window order; dock numbering uses the same walk.
func (d *Desk) RestoreMinimizedByIndex(index int) {
	count := 0
	for i, w := range d.Windows {
		if w.Minimized {
			if count == index {
				d.RestoreWindow(i)
				return
			}
			count++
		}
	}
}

// FocusNextVisibleWindow focuses the first non-minimized window, or clears
// focus when every window is minimized.
func (d *Desk) FocusNextVisibleWindow() {
	for i, w := range d.Windows {
		if !w.Minimized {
			d.FocusWindow(i)
			return
		}
	}
	d.FocusedWindow = -1
}

// HasMinimizedWindows returns true if any window is minimized.
func (d *Desk) HasMinimizedWindows() bool {
	for _, w := range d.Windows {
		if w.Minimized {
			return true
		}
	}
	return false
}

// CloseTerminal flips the shared open flag to false. Window geometry and
// cursor state survive so reopening restores the desk as it was.
func (d *Desk) CloseTerminal() {
	d.Open.Set(false)
}

// GetUsableHeight returns the desk height excluding the dock strip.
func (d *Desk) GetUsableHeight() int {
	return max(d.Height-config.DockHeight, 0)
}

// ClampToDesk constrains a window position so the window cannot enter the
// dock strip, and, when drag constraining is enabled, cannot leave the
// desk at all.
func (d *Desk) ClampToDesk(w *Window, x, y int) (int, int) {
	maxY := d.GetUsableHeight() - w.Height
	if y > maxY {
		y = maxY
	}
	if config.ConstrainDrag {
		if x+w.Width > d.Width {
			x = d.Width - w.Width
		}
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
	}
	return x, y
}

// Log adds a new log message to the log buffer.
func (d *Desk) Log(level, format string, args ...any) {
	d.LogMessages = append(d.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}
}

// LogInfo logs an informational message.
func (d *Desk) LogInfo(format string, args ...any) {
	d.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (d *Desk) LogWarn(format string, args ...any) {
	d.Log("WARN", format, args...)
}

// LogError logs an error message.
func (d *Desk) LogError(format string, args ...any) {
	d.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary notification.
func (d *Desk) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		d.LogError("%s", message)
	case "warning":
		d.LogWarn("%s", message)
	default:
		d.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (d *Desk) CleanupNotifications() {
	now := time.Now()
	active := d.Notifications[:0]
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			active = append(active, n)
		}
	}
	d.Notifications = active
}
