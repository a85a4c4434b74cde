package cursor_test

import (
	"testing"

	"github.com/Gaurav-Gosain/termfolio/internal/cursor"
)

// fakeLines is a line list with a fixed width per row.
type fakeLines struct {
	total int
	width int
}

func (f fakeLines) TotalLines() int   { return f.total }
func (f fakeLines) Width(row int) int { return f.width }

// unevenLines has a distinct width per row.
type unevenLines struct {
	widths []int
}

func (u unevenLines) TotalLines() int   { return len(u.widths) }
func (u unevenLines) Width(row int) int { return u.widths[row] }

// =============================================================================
// Navigation Tests
// =============================================================================

func TestCursorDownClampsAtLastRow(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	// Five items means rows 0..4; press j far more times than that.
	for i := 0; i < 20; i++ {
		e.Handle("j", lines)
	}

	if e.Pos.Row != 4 {
		t.Errorf("Expected row 4 after repeated j, got %d", e.Pos.Row)
	}
}

func TestCursorUpClampsAtZero(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("j", lines)
	e.Handle("j", lines)
	for i := 0; i < 10; i++ {
		e.Handle("k", lines)
	}

	if e.Pos.Row != 0 {
		t.Errorf("Expected row 0 after repeated k, got %d", e.Pos.Row)
	}
}

func TestCursorLeftClampsAtZero(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 3, width: 20}

	for i := 0; i < 5; i++ {
		e.Handle("h", lines)
	}

	if e.Pos.Col != 0 {
		t.Errorf("Expected col 0 after repeated h, got %d", e.Pos.Col)
	}
}

func TestCursorRightClampsAtLineWidth(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 3, width: 10}

	for i := 0; i < 30; i++ {
		e.Handle("l", lines)
	}

	if e.Pos.Col != 9 {
		t.Errorf("Expected col clamped to 9 on a width-10 line, got %d", e.Pos.Col)
	}
}

func TestCursorColReboundsOnRowChange(t *testing.T) {
	e := cursor.New()
	lines := unevenLines{widths: []int{30, 5, 30}}

	for i := 0; i < 20; i++ {
		e.Handle("l", lines)
	}
	if e.Pos.Col != 20 {
		t.Fatalf("Expected col 20 on the wide row, got %d", e.Pos.Col)
	}

	// Moving onto the narrow row pulls the column back in bounds.
	e.Handle("j", lines)
	if e.Pos.Col != 4 {
		t.Errorf("Expected col 4 on a width-5 row, got %d", e.Pos.Col)
	}
}

func TestArrowKeyAliases(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("down", lines)
	e.Handle("right", lines)
	if e.Pos.Row != 1 || e.Pos.Col != 1 {
		t.Fatalf("Expected (1,1) after down+right, got (%d,%d)", e.Pos.Row, e.Pos.Col)
	}

	e.Handle("up", lines)
	e.Handle("left", lines)
	if e.Pos.Row != 0 || e.Pos.Col != 0 {
		t.Errorf("Expected (0,0) after up+left, got (%d,%d)", e.Pos.Row, e.Pos.Col)
	}
}

func TestKeysAreCaseInsensitive(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("J", lines)
	if e.Pos.Row != 1 {
		t.Errorf("Expected uppercase J to move down, row = %d", e.Pos.Row)
	}
}

func TestEmptyContentStillHasHeaderRows(t *testing.T) {
	e := cursor.New()
	// A document with no items still renders its two header lines.
	lines := fakeLines{total: 2, width: 20}

	for i := 0; i < 10; i++ {
		e.Handle("j", lines)
	}

	if e.Pos.Row != 1 {
		t.Errorf("Expected row clamped to 1 with two lines, got %d", e.Pos.Row)
	}
}

// =============================================================================
// Selection (yy chord) Tests
// =============================================================================

func TestDoubleYSelectsCurrentRow(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("j", lines)
	e.Handle("j", lines)

	if ev := e.Handle("y", lines); ev != cursor.EventMoved {
		t.Fatalf("Expected first y to report EventMoved, got %v", ev)
	}
	if ev := e.Handle("y", lines); ev != cursor.EventSelect {
		t.Fatalf("Expected second y to report EventSelect, got %v", ev)
	}

	if e.Selected != 2 {
		t.Errorf("Expected row 2 selected, got %d", e.Selected)
	}
	if e.Pos.Row != 2 {
		t.Errorf("Expected cursor to stay on row 2, got %d", e.Pos.Row)
	}
}

func TestInterveningKeyBreaksChord(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("y", lines)
	e.Handle("j", lines)
	e.Handle("y", lines)

	if e.HasSelection() {
		t.Errorf("Expected no selection after y-j-y, got row %d", e.Selected)
	}
}

func TestNavigationClearsSelection(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("y", lines)
	e.Handle("y", lines)
	if !e.HasSelection() {
		t.Fatal("Expected a selection after yy")
	}

	e.Handle("j", lines)
	if e.HasSelection() {
		t.Errorf("Expected navigation to clear the selection, got row %d", e.Selected)
	}
}

func TestClampedNavigationStillClearsSelection(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("y", lines)
	e.Handle("y", lines)

	// k at row 0 does not move, but it still drops the highlight.
	e.Handle("k", lines)
	if e.HasSelection() {
		t.Error("Expected clamped k to clear the selection")
	}
}

func TestChordRearmsAfterSelection(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("y", lines)
	e.Handle("y", lines)

	// The chord state was consumed; the next y starts a fresh chord.
	if ev := e.Handle("y", lines); ev != cursor.EventMoved {
		t.Fatalf("Expected third y to re-arm, got %v", ev)
	}
	if ev := e.Handle("y", lines); ev != cursor.EventSelect {
		t.Errorf("Expected fourth y to complete a new chord, got %v", ev)
	}
}

func TestUnrecognizedKeyBreaksChordAndClearsSelection(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("y", lines)
	if ev := e.Handle("x", lines); ev != cursor.EventMoved {
		t.Fatalf("Expected unrecognized key to report EventMoved, got %v", ev)
	}
	if ev := e.Handle("y", lines); ev != cursor.EventMoved {
		t.Errorf("Expected chord broken by x, got %v", ev)
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestEscapeRequestsClose(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	if ev := e.Handle("esc", lines); ev != cursor.EventClose {
		t.Errorf("Expected esc to report EventClose, got %v", ev)
	}
}

func TestEscapeWinsOverArmedChord(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("y", lines)
	if ev := e.Handle("esc", lines); ev != cursor.EventClose {
		t.Errorf("Expected esc mid-chord to report EventClose, got %v", ev)
	}
}

func TestEscapeDisarmsChord(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	// y, esc, then a single y after reopening: the half-typed chord
	// must not complete across the close.
	e.Handle("y", lines)
	e.Handle("esc", lines)

	if ev := e.Handle("y", lines); ev == cursor.EventSelect {
		t.Error("Expected the chord dropped on esc, got a selection")
	}
	if e.HasSelection() {
		t.Errorf("Expected no selection, got row %d", e.Selected)
	}
}

// =============================================================================
// Reset and Clamp Tests
// =============================================================================

func TestReset(t *testing.T) {
	e := cursor.New()
	lines := fakeLines{total: 5, width: 20}

	e.Handle("j", lines)
	e.Handle("l", lines)
	e.Handle("y", lines)
	e.Handle("y", lines)

	e.Reset()

	if e.Pos.Row != 0 || e.Pos.Col != 0 {
		t.Errorf("Expected origin after reset, got (%d,%d)", e.Pos.Row, e.Pos.Col)
	}
	if e.HasSelection() {
		t.Error("Expected no selection after reset")
	}
	if ev := e.Handle("y", lines); ev != cursor.EventMoved {
		t.Errorf("Expected reset to drop the armed chord, got %v", ev)
	}
}

func TestClampAfterShrink(t *testing.T) {
	e := cursor.New()
	big := fakeLines{total: 10, width: 40}
	for i := 0; i < 9; i++ {
		e.Handle("j", big)
	}
	e.Handle("y", big)
	e.Handle("y", big)

	small := fakeLines{total: 4, width: 10}
	e.Clamp(small)

	if e.Pos.Row != 3 {
		t.Errorf("Expected row clamped to 3, got %d", e.Pos.Row)
	}
	if e.HasSelection() {
		t.Errorf("Expected out-of-range selection dropped, got %d", e.Selected)
	}
}

// =============================================================================
// Viewport Tests
// =============================================================================

func TestEnsureVisible(t *testing.T) {
	tests := []struct {
		name   string
		row    int
		top    int
		height int
		want   int
	}{
		{"row already visible", 5, 3, 10, 3},
		{"row above viewport scrolls up", 1, 3, 10, 1},
		{"row below viewport scrolls down", 20, 3, 10, 11},
		{"row at top edge", 3, 3, 10, 3},
		{"row at bottom edge", 12, 3, 10, 3},
		{"zero height is a no-op", 20, 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cursor.EnsureVisible(tt.row, tt.top, tt.height)
			if got != tt.want {
				t.Errorf("EnsureVisible(%d, %d, %d) = %d, want %d",
					tt.row, tt.top, tt.height, got, tt.want)
			}
		})
	}
}
