package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termfolio/internal/app"
	"github.com/Gaurav-Gosain/termfolio/internal/config"
)

func handleMouseClick(msg tea.MouseClickMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	// The help overlay is modal: while it is up, clicks must not reach
	// the windows underneath it.
	if d.ShowHelp {
		return d, nil
	}

	mouse := msg.Mouse()
	x, y := mouse.X, mouse.Y

	if mouse.Button != tea.MouseLeft {
		return d, nil
	}

	// Dock strip: the open toggle when closed, minimized entries when open.
	if y >= d.Height-config.DockHeight {
		if !d.Open.IsOpen() {
			d.Open.Set(true)
			return d, nil
		}
		if d.HasMinimizedWindows() {
			if idx := findDockItemClicked(x, d); idx != -1 {
				d.RestoreMinimizedByIndex(idx)
			}
		}
		return d, nil
	}

	if !d.Open.IsOpen() {
		return d, nil
	}

	idx := findClickedWindow(x, y, d)
	if idx == -1 {
		return d, nil
	}
	d.FocusWindow(idx)

	w := d.Windows[idx]
	rightEdge := w.X + w.Width

	// Title bar buttons, right-aligned: minimize, maximize, close.
	if y == w.Y && !config.HideWindowButtons {
		switch {
		case x >= rightEdge-5 && x <= rightEdge-3:
			d.CloseTerminal()
			return d, nil
		case x >= rightEdge-8 && x <= rightEdge-6:
			w.ToggleMaximize(d.Width, d.GetUsableHeight())
			return d, nil
		case x >= rightEdge-11 && x <= rightEdge-9:
			d.MinimizeWindow(idx)
			return d, nil
		}
	}

	// Anywhere else on the title bar starts a drag.
	if y == w.Y {
		d.Dragging = true
		d.DraggedWindowIndex = idx
		d.DragOffsetX = x - w.X
		d.DragOffsetY = y - w.Y
	}

	return d, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	if !d.Dragging || d.DraggedWindowIndex < 0 || d.DraggedWindowIndex >= len(d.Windows) {
		return d, nil
	}

	mouse := msg.Mouse()
	w := d.Windows[d.DraggedWindowIndex]
	w.X, w.Y = d.ClampToDesk(w, mouse.X-d.DragOffsetX, mouse.Y-d.DragOffsetY)
	return d, nil
}

func handleMouseRelease(_ tea.MouseReleaseMsg, d *app.Desk) (tea.Model, tea.Cmd) {
	d.Dragging = false
	d.DraggedWindowIndex = -1
	return d, nil
}

// findClickedWindow returns the topmost non-minimized window containing
// the point, or -1.
func findClickedWindow(x, y int, d *app.Desk) int {
	best := -1
	bestZ := -1
	for i, w := range d.Windows {
		if w.Minimized {
			continue
		}
		if x >= w.X && x < w.X+w.Width && y >= w.Y && y < w.Y+w.Height && w.Z > bestZ {
			best = i
			bestZ = w.Z
		}
	}
	return best
}

// findDockItemClicked maps an x position in the dock to the index of the
// minimized entry there, mirroring the dock's render layout: a leading
// space, then "n:kind" entries separated by single spaces.
func findDockItemClicked(x int, d *app.Desk) int {
	pos := 1
	idx := 0
	for _, w := range d.Windows {
		if !w.Minimized {
			continue
		}
		width := 2 + len(string(w.Doc.Kind))
		if x >= pos && x < pos+width {
			return idx
		}
		pos += width + 1
		idx++
	}
	return -1
}
