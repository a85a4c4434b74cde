package app

import (
	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/Gaurav-Gosain/termfolio/internal/content"
	"github.com/Gaurav-Gosain/termfolio/internal/cursor"
	"github.com/google/uuid"
)

// Window is one portfolio terminal window: a document, the cursor engine
// navigating it, and the window's geometry and chrome state.
type Window struct {
	ID     string
	Title  string
	X      int
	Y      int
	Z      int
	Width  int
	Height int

	Doc *content.Document
	Cur *cursor.Engine

	// ScrollTop is the first visible document row.
	ScrollTop int

	Minimized bool
	Maximized bool

	// Geometry before maximizing, restored on unmaximize.
	PreMaximizeX      int
	PreMaximizeY      int
	PreMaximizeWidth  int
	PreMaximizeHeight int
}

// NewWindow creates a window for a document at the given position.
func NewWindow(doc *content.Document, title string, x, y, z int) *Window {
	return &Window{
		ID:     uuid.New().String(),
		Title:  title,
		X:      x,
		Y:      y,
		Z:      z,
		Width:  config.DefaultWindowWidth,
		Height: config.DefaultWindowHeight,
		Doc:    doc,
		Cur:    cursor.New(),
	}
}

// InnerWidth returns the content width inside the border.
func (w *Window) InnerWidth() int {
	return max(w.Width-2, 0)
}

// InnerHeight returns the number of content rows inside the border.
func (w *Window) InnerHeight() int {
	return max(w.Height-2, 0)
}

// EnsureCursorVisible scrolls the viewport so the cursor row is visible.
func (w *Window) EnsureCursorVisible() {
	w.ScrollTop = cursor.EnsureVisible(w.Cur.Pos.Row, w.ScrollTop, w.InnerHeight())
}

// ToggleMaximize switches between the window's preset size and the large
// preset, clamped to the desk. Position and size are restored exactly on
// unmaximize.
func (w *Window) ToggleMaximize(deskWidth, deskHeight int) {
	if w.Maximized {
		w.X = w.PreMaximizeX
		w.Y = w.PreMaximizeY
		w.Width = w.PreMaximizeWidth
		w.Height = w.PreMaximizeHeight
		w.Maximized = false
		w.EnsureCursorVisible()
		return
	}

	w.PreMaximizeX = w.X
	w.PreMaximizeY = w.Y
	w.PreMaximizeWidth = w.Width
	w.PreMaximizeHeight = w.Height

	w.Width = min(config.MaximizedWindowWidth, deskWidth)
	w.Height = min(config.MaximizedWindowHeight, deskHeight)
	w.Width = max(w.Width, config.MinWindowWidth)
	w.Height = max(w.Height, config.MinWindowHeight)
	w.X = (deskWidth - w.Width) / 2
	w.Y = (deskHeight - w.Height) / 2
	if w.X < 0 {
		w.X = 0
	}
	if w.Y < 0 {
		w.Y = 0
	}
	w.Maximized = true
	w.EnsureCursorVisible()
}

// SetDocument swaps in a reloaded document and re-bounds cursor and scroll.
func (w *Window) SetDocument(doc *content.Document) {
	w.Doc = doc
	w.Cur.Clamp(doc)
	maxTop := max(doc.TotalLines()-w.InnerHeight(), 0)
	if w.ScrollTop > maxTop {
		w.ScrollTop = maxTop
	}
	w.EnsureCursorVisible()
}
