package app

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/Gaurav-Gosain/termfolio/internal/content"
	"github.com/Gaurav-Gosain/termfolio/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

func buttonStyleFor(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(c)
}

// View renders the desk.
func (d *Desk) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(d.GetCanvas().Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// GetCanvas composes the desk into layers: windows by z-order, then the
// dock, notifications, and the help overlay.
func (d *Desk) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas()
	layers := make([]*lipgloss.Layer, 0, len(d.Windows)+4)

	if d.Open.IsOpen() {
		box := lipgloss.NewStyle().
			Align(lipgloss.Left).
			AlignVertical(lipgloss.Top).
			Border(config.GetBorderForStyle()).
			BorderTop(false)

		for i, w := range d.Windows {
			if w.Minimized {
				continue
			}

			isFocused := i == d.FocusedWindow
			borderColor := theme.BorderUnfocused()
			if isFocused {
				borderColor = theme.BorderFocused()
			}

			boxContent := addToBorder(
				box.Width(w.Width).
					Height(w.Height-1).
					BorderForeground(borderColor).
					Render(d.renderDocument(w, isFocused)),
				borderColor,
				w,
			)

			clipped, x, y := clipWindowContent(boxContent, w.X, w.Y, d.Width, d.GetUsableHeight())
			if clipped == "" {
				continue
			}
			layers = append(layers, lipgloss.NewLayer(clipped).X(x).Y(y).Z(w.Z).ID(w.ID))
		}
	}

	layers = append(layers, d.renderDock())
	layers = append(layers, d.renderNotifications()...)
	if d.ShowHelp {
		layers = append(layers, d.renderHelp())
	}

	canvas.AddLayers(layers...)
	return canvas
}

// renderDocument renders the visible slice of a window's virtual line list,
// with the cursor glyph and selected-line highlight applied.
func (d *Desk) renderDocument(w *Window, focused bool) string {
	innerWidth := w.InnerWidth()
	innerHeight := w.InnerHeight()
	total := w.Doc.TotalLines()

	lines := make([]string, 0, innerHeight)
	for row := w.ScrollTop; row < w.ScrollTop+innerHeight; row++ {
		if row >= total {
			lines = append(lines, "")
			continue
		}

		cursorCol := -1
		if focused && row == w.Cur.Pos.Row {
			cursorCol = min(w.Cur.Pos.Col, max(innerWidth-1, 0))
		}
		lines = append(lines, renderLine(w.Doc, row, innerWidth, cursorCol, row == w.Cur.Selected))
	}
	return strings.Join(lines, "\n")
}

// renderLine styles one virtual line. Each row carries a single foreground
// style by its role; a selected row swaps to the highlight background and
// the cursor cell is drawn reversed on top.
func renderLine(doc *content.Document, row, width, cursorCol int, selected bool) string {
	text := doc.Line(row)
	if runes := []rune(text); len(runes) > width {
		text = string(runes[:width])
	}

	style := lineStyle(doc, row)
	if selected {
		bg, fg := theme.SelectedLine()
		style = lipgloss.NewStyle().Background(bg).Foreground(fg)
		// Pad so the highlight spans the full row.
		if pad := width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}

	if cursorCol < 0 {
		return style.Render(text)
	}

	// Splice the block cursor into the line. An empty or short line still
	// shows the cursor as a reversed space.
	runes := []rune(text)
	for len(runes) <= cursorCol {
		runes = append(runes, ' ')
	}
	bg, fg := theme.TextCursor()
	cursorStyle := lipgloss.NewStyle().Background(bg).Foreground(fg)

	return style.Render(string(runes[:cursorCol])) +
		cursorStyle.Render(string(runes[cursorCol])) +
		style.Render(string(runes[cursorCol+1:]))
}

// lineStyle returns the base style for a row by its role in the document.
func lineStyle(doc *content.Document, row int) lipgloss.Style {
	switch {
	case row == 0:
		return lipgloss.NewStyle().Foreground(theme.PromptColor())
	case row == 1:
		return lipgloss.NewStyle()
	}

	sub := (row - content.HeaderLines) % content.Span(doc.Kind)
	last := content.Span(doc.Kind) - 1
	switch sub {
	case 0:
		return lipgloss.NewStyle().Foreground(theme.TitleColor()).Bold(true)
	case last:
		return lipgloss.NewStyle().Foreground(theme.LinkColor()).Underline(true)
	default:
		return lipgloss.NewStyle()
	}
}

// RightString returns a right-aligned string flanked by top border runes.
func RightString(str string, width int, c color.Color) string {
	spaces := width - lipgloss.Width(str)
	if spaces < 0 {
		return ""
	}
	fg := lipgloss.NewStyle().Foreground(c)
	return fg.Render(config.GetWindowBorderTopLeft()+strings.Repeat(config.GetWindowBorderTop(), spaces)) +
		str +
		fg.Render(config.GetWindowBorderTopRight())
}

func makeRounded(s string, c color.Color) string {
	render := lipgloss.NewStyle().Foreground(c).Render
	return render(config.GetWindowPillLeft()) + s + render(config.GetWindowPillRight())
}

// addToBorder replaces the plain top and bottom borders with the window
// chrome: minimize/maximize/close buttons up top and a title badge below.
func addToBorder(boxContent string, c color.Color, w *Window) string {
	width := max(lipgloss.Width(boxContent)-2, 0)

	var border string
	if !config.HideWindowButtons {
		buttonStyle := buttonStyleFor(c)
		dash := buttonStyle.Render(config.GetWindowButtonMinimize())
		square := buttonStyle.Render(config.GetWindowButtonMaximize())
		cross := buttonStyle.Render(config.GetWindowButtonClose())
		border = makeRounded(dash+square+cross, c)
	}
	top := RightString(border, width, c)

	bottomStyle := lipgloss.NewStyle().Foreground(c)
	var bottom string
	if w.Title != "" {
		name := w.Title
		if maxLen := width - 6; maxLen > 3 && len(name) > maxLen {
			name = name[:maxLen-3] + "..."
		}
		badge := bottomStyle.Render(config.GetWindowPillLeft()) +
			buttonStyleFor(c).Render(" "+name+" ") +
			bottomStyle.Render(config.GetWindowPillRight())

		padding := width - lipgloss.Width(badge)
		if padding < 0 {
			bottom = bottomStyle.Render(config.GetWindowBorderBottomLeft() +
				strings.Repeat(config.GetWindowBorderBottom(), width) +
				config.GetWindowBorderBottomRight())
		} else {
			left := padding / 2
			right := padding - left
			bottom = bottomStyle.Render(config.GetWindowBorderBottomLeft()+strings.Repeat(config.GetWindowBorderBottom(), left)) +
				badge +
				bottomStyle.Render(strings.Repeat(config.GetWindowBorderBottom(), right)+config.GetWindowBorderBottomRight())
		}
	} else {
		bottom = bottomStyle.Render(config.GetWindowBorderBottomLeft() +
			strings.Repeat(config.GetWindowBorderBottom(), width) +
			config.GetWindowBorderBottomRight())
	}

	lines := strings.Split(boxContent, "\n")
	if len(lines) > 0 {
		lines[len(lines)-1] = bottom
	}
	return top + "\n" + strings.Join(lines, "\n")
}

// clipWindowContent clips a rendered window to the viewport, returning the
// clipped content and its final screen position. Horizontal clipping is
// ANSI-aware so styled lines survive being cut.
func clipWindowContent(boxContent string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(boxContent, "\n")
	windowHeight := len(lines)
	windowWidth := 0
	if len(lines) > 0 {
		windowWidth = ansi.StringWidth(lines[0])
	}

	if x+windowWidth <= 0 || x >= viewportWidth || y+windowHeight <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	clipTop, clipLeft := 0, 0
	finalX, finalY := x, y
	if y < 0 {
		clipTop = -y
		finalY = 0
	}
	if x < 0 {
		clipLeft = -x
		finalX = 0
	}

	if clipTop >= len(lines) {
		return "", finalX, finalY
	}
	visible := lines[clipTop:]
	if maxLines := viewportHeight - finalY; maxLines < len(visible) {
		visible = visible[:maxLines]
	}

	if clipLeft > 0 || finalX+windowWidth > viewportWidth {
		right := clipLeft + (viewportWidth - finalX)
		for i, line := range visible {
			visible[i] = ansi.Cut(line, clipLeft, right)
		}
	}

	return strings.Join(visible, "\n"), finalX, finalY
}

// renderDock renders the dock strip: minimized windows and the open toggle
// on the left, system info and the clock on the right.
func (d *Desk) renderDock() *lipgloss.Layer {
	textStyle := lipgloss.NewStyle().Foreground(theme.DockText())
	accentStyle := lipgloss.NewStyle().Foreground(theme.DockAccent()).Bold(true)

	var left strings.Builder
	if !d.Open.IsOpen() {
		left.WriteString(accentStyle.Render("[o]"))
		left.WriteString(textStyle.Render(" open terminal"))
	} else {
		n := 1
		for _, w := range d.Windows {
			if !w.Minimized {
				continue
			}
			if left.Len() > 0 {
				left.WriteString(" ")
			}
			left.WriteString(accentStyle.Render(fmt.Sprintf("%d:", n)))
			left.WriteString(textStyle.Render(string(w.Doc.Kind)))
			n++
		}
		if left.Len() == 0 {
			left.WriteString(textStyle.Render("? for help"))
		}
	}

	status := time.Now().Format("15:04:05")
	if label := d.SysinfoLabel(); label != "" {
		status = label + "  " + status
	}
	right := textStyle.Render(status)

	gap := d.Width - lipgloss.Width(left.String()) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	bar := " " + left.String() + strings.Repeat(" ", gap) + right

	return lipgloss.NewLayer(bar).
		X(0).
		Y(max(d.Height-config.DockHeight, 0)).
		Z(config.ZIndexDock).
		ID("dock")
}

// renderNotifications renders active notifications stacked in the top
// right corner.
func (d *Desk) renderNotifications() []*lipgloss.Layer {
	if len(d.Notifications) == 0 {
		return nil
	}

	layers := make([]*lipgloss.Layer, 0, len(d.Notifications))
	y := 0
	for i, n := range d.Notifications {
		fg := lipgloss.Color("#ffffff")
		bg := lipgloss.Color("#3b3b5b")
		switch n.Type {
		case "error":
			bg = lipgloss.Color("#cd0000")
		case "warning":
			bg = lipgloss.Color("#cd6600")
		case "success":
			bg = lipgloss.Color("#006600")
		}

		rendered := lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1).
			Render(n.Message)

		x := max(d.Width-lipgloss.Width(rendered)-1, 0)
		layers = append(layers, lipgloss.NewLayer(rendered).
			X(x).Y(y).
			Z(config.ZIndexDock+1+i).
			ID(n.ID))
		y++
	}
	return layers
}

// renderHelp renders the keybinding help overlay centered on the desk.
func (d *Desk) renderHelp() *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(theme.HelpSection()).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKey())

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("termfolio keys"))
	sb.WriteString("\n")

	for _, section := range config.GetKeybindings(d.KeybindRegistry) {
		sb.WriteString("\n")
		sb.WriteString(sectionStyle.Render(section.Title))
		sb.WriteString("\n")
		for _, b := range section.Bindings {
			sb.WriteString(fmt.Sprintf("  %s %s\n",
				keyStyle.Render(fmt.Sprintf("%-24s", b.Key)), b.Description))
		}
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")

	// Scroll when the overlay is taller than the desk. The offset is
	// clamped here because only the render knows the visible height.
	maxVisible := max(d.GetUsableHeight()-2, 1)
	if len(lines) > maxVisible {
		maxOffset := len(lines) - maxVisible
		if d.HelpScrollOffset > maxOffset {
			d.HelpScrollOffset = maxOffset
		}
		lines = lines[d.HelpScrollOffset : d.HelpScrollOffset+maxVisible]
	} else {
		d.HelpScrollOffset = 0
	}

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.HelpTitle()).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	x := max((d.Width-lipgloss.Width(boxed))/2, 0)
	y := max((d.GetUsableHeight()-lipgloss.Height(boxed))/2, 0)
	return lipgloss.NewLayer(boxed).X(x).Y(y).Z(config.ZIndexHelp).ID("help")
}
