// Package cursor implements the keyboard-driven cursor and line-selection
// engine for portfolio windows. It maps vi-style navigation keys to a 2-D
// logical position over a virtual line list and tracks a single selected
// line toggled by a double-y chord.
package cursor

import "strings"

// Lines describes the virtual line list a cursor navigates. Row count and
// per-row widths come from the window's content document.
type Lines interface {
	// TotalLines returns the number of addressable rows.
	TotalLines() int
	// Width returns the addressable width of the given row in cells.
	Width(row int) int
}

// Event describes the outcome of handling a single key press.
type Event int

const (
	// EventNone means the key was consumed without further effect.
	EventNone Event = iota
	// EventClose means the key requests closing the window. The engine
	// does not own the open flag; the caller flips it.
	EventClose
	// EventSelect means a line was selected via the yy chord. The cursor
	// did not move and the viewport must not re-scroll.
	EventSelect
	// EventMoved means navigation was processed. The cursor may have
	// moved and the caller should scroll the new row into view.
	EventMoved
)

// Position is a 2-D logical cursor position over the virtual line list.
type Position struct {
	Row int
	Col int
}

// Engine holds cursor, selection, and chord state for one window.
type Engine struct {
	Pos      Position
	Selected int // selected row index, -1 when nothing is selected
	lastKey  string
}

// New returns an engine with the cursor at the origin and no selection.
func New() *Engine {
	return &Engine{Selected: -1}
}

// HasSelection reports whether a line is currently selected.
func (e *Engine) HasSelection() bool {
	return e.Selected >= 0
}

// Handle processes one key press against the given line list. Keys are
// case-insensitive. Unrecognized keys are no-ops apart from arming or
// breaking the yy chord.
func (e *Engine) Handle(key string, lines Lines) Event {
	key = strings.ToLower(key)

	// Escape short-circuits everything. The armed chord is dropped so a
	// reopened window never selects on its first y.
	if key == "esc" || key == "escape" {
		e.lastKey = ""
		return EventClose
	}

	// Second y of the chord: select the current row and stop. The cursor
	// does not move and the caller must not re-scroll.
	if key == "y" && e.lastKey == "y" {
		e.Selected = e.Pos.Row
		e.lastKey = ""
		return EventSelect
	}
	e.lastKey = key

	total := lines.TotalLines()
	switch key {
	case "up", "k":
		if e.Pos.Row > 0 {
			e.Pos.Row--
		}
	case "down", "j":
		if e.Pos.Row < total-1 {
			e.Pos.Row++
		}
	case "left", "h":
		if e.Pos.Col > 0 {
			e.Pos.Col--
		}
	case "right", "l":
		e.Pos.Col++
	}

	// The column is clamped to the addressed line so the cursor always
	// lands on a renderable cell.
	e.clampCol(lines)

	// Any navigation key clears the highlight, even when the position
	// did not change.
	e.Selected = -1
	return EventMoved
}

func (e *Engine) clampCol(lines Lines) {
	limit := lines.Width(e.Pos.Row) - 1
	if limit < 0 {
		e.Pos.Col = 0
	} else if e.Pos.Col > limit {
		e.Pos.Col = limit
	}
	if e.Pos.Col < 0 {
		e.Pos.Col = 0
	}
}

// Reset moves the cursor to the origin and drops selection and chord state.
func (e *Engine) Reset() {
	e.Pos = Position{}
	e.Selected = -1
	e.lastKey = ""
}

// Clamp re-bounds the cursor after the underlying line list changed, e.g.
// when the portfolio file was reloaded with fewer items.
func (e *Engine) Clamp(lines Lines) {
	if total := lines.TotalLines(); e.Pos.Row > total-1 {
		e.Pos.Row = max(total-1, 0)
	}
	e.clampCol(lines)
	if e.Selected >= lines.TotalLines() {
		e.Selected = -1
	}
}

// EnsureVisible returns the viewport top offset that keeps row visible in a
// viewport of the given height. A row above the top scrolls up to it; a row
// below the bottom scrolls down so the row sits flush with the bottom edge;
// otherwise the offset is unchanged. Line height is one row.
func EnsureVisible(row, top, height int) int {
	if height <= 0 {
		return top
	}
	if row < top {
		return row
	}
	if bottom := top + height - 1; row > bottom {
		return row - height + 1
	}
	return top
}
