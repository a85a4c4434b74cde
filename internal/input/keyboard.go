// Package input implements keyboard and mouse event handling for the
// termfolio desk.
package input

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termfolio/internal/app"
	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/Gaurav-Gosain/termfolio/internal/content"
	"github.com/Gaurav-Gosain/termfolio/internal/cursor"
)

// HandleInput routes input messages to the keyboard and mouse handlers.
// It is registered with the app package via app.SetInputHandler to break
// the circular dependency between app and input.
func HandleInput(msg tea.Msg, d *app.Desk) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return handleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	}
	return d, nil
}

// engineKey translates a pressed key into the canonical key the cursor
// engine understands, honoring user rebinding. Keys without a navigation
// binding pass through lowercased, so they still break an armed yy chord
// and clear the selection the way any navigation key does.
func engineKey(key, action string) string {
	switch action {
	case "cursor_up":
		return "k"
	case "cursor_down":
		return "j"
	case "cursor_left":
		return "h"
	case "cursor_right":
		return "l"
	case "yank_line":
		return "y"
	case "close_window":
		return "esc"
	}
	return strings.ToLower(key)
}

func handleKeyPress(msg tea.KeyPressMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Help overlay swallows everything until dismissed; j/k scroll it.
	if d.ShowHelp {
		switch key {
		case "esc", "?", "q":
			d.ShowHelp = false
			d.HelpScrollOffset = 0
		case "j", "down":
			d.HelpScrollOffset++
		case "k", "up":
			if d.HelpScrollOffset > 0 {
				d.HelpScrollOffset--
			}
		}
		return d, nil
	}

	action := d.KeybindRegistry.GetAction(key)

	// System actions work whether or not the terminal is open.
	switch action {
	case "quit":
		return d, tea.Quit
	case "toggle_help":
		d.ShowHelp = true
		return d, nil
	case "toggle_open":
		d.Open.Toggle()
		return d, nil
	}

	if !d.Open.IsOpen() {
		return d, nil
	}

	// Number keys restore minimized windows from the dock.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' && d.HasMinimizedWindows() {
		d.RestoreMinimizedByIndex(int(key[0] - '1'))
		return d, nil
	}

	// The focused window's engine sees every remaining key, recognized or
	// not: unrecognized keys are positional no-ops but still break an
	// armed chord and clear the selection.
	w := d.GetFocusedWindow()
	if w != nil && !w.Minimized {
		switch w.Cur.Handle(engineKey(key, action), w.Doc) {
		case cursor.EventClose:
			d.CloseTerminal()
			return d, nil
		case cursor.EventSelect:
			// Header rows highlight without feedback; item rows name
			// the yanked entry by its title line.
			if idx := w.Doc.ItemAt(w.Cur.Selected); idx >= 0 {
				title := strings.TrimSpace(w.Doc.Line(content.HeaderLines + idx*content.Span(w.Doc.Kind)))
				d.ShowNotification("Yanked "+title, "success",
					config.NotificationDuration*time.Millisecond)
			}
		case cursor.EventMoved:
			w.EnsureCursorVisible()
		}
	} else if action == "close_window" {
		d.CloseTerminal()
		return d, nil
	}

	switch action {
	case "minimize_window":
		if w != nil {
			d.MinimizeWindow(d.FocusedWindow)
		}
	case "restore_all":
		d.RestoreAll()
	case "toggle_maximize":
		if w != nil && !w.Minimized {
			w.ToggleMaximize(d.Width, d.GetUsableHeight())
		}
	case "next_window":
		d.CycleFocus(false)
	case "prev_window":
		d.CycleFocus(true)
	}

	return d, nil
}
