// Package content defines the portfolio records a window renders and the
// virtual line list derived from them.
package content

import (
	"fmt"
	"strings"
)

// Kind identifies which record type a document renders. A document renders
// exactly one kind; projects and work experience never share a window.
type Kind string

const (
	// KindProjects renders project records.
	KindProjects Kind = "projects"
	// KindWork renders work-experience records.
	KindWork Kind = "work"
)

// HeaderLines is the number of fixed rows before the first item: the
// working-directory path line and the echo line.
const HeaderLines = 2

// spans maps a content kind to the number of virtual lines each of its
// items contributes. Kinds register their span instead of hardcoding it
// into the line math so new record shapes can be added.
var spans = map[Kind]int{
	KindProjects: 3,
	KindWork:     4,
}

// RegisterSpan registers the per-item line count for a content kind.
func RegisterSpan(kind Kind, lines int) {
	if lines < 1 {
		panic(fmt.Sprintf("content: span for kind %q must be at least 1, got %d", kind, lines))
	}
	spans[kind] = lines
}

// Span returns the per-item line count registered for a kind.
func Span(kind Kind) int {
	return spans[kind]
}

// Project is an immutable project record supplied by the portfolio file.
type Project struct {
	Title        string   `toml:"title"`
	Description  string   `toml:"description"`
	RepoURL      string   `toml:"repo_url"`
	Technologies []string `toml:"technologies,omitempty"`
}

// WorkExperience is an immutable work-experience record supplied by the
// portfolio file.
type WorkExperience struct {
	Title        string   `toml:"title"`
	Company      string   `toml:"company"`
	Duration     string   `toml:"duration"`
	Description  string   `toml:"description"`
	Technologies []string `toml:"technologies,omitempty"`
	Link         string   `toml:"link"`
}

// Display holds the fixed display strings shown in every window header.
type Display struct {
	Header string `toml:"header"`
	Path   string `toml:"path"`
	Branch string `toml:"branch"`
	Info   string `toml:"info"`
}

// Portfolio is the full portfolio file: display strings plus both record
// lists. Each list becomes its own document/window.
type Portfolio struct {
	Display  Display          `toml:"display"`
	Projects []Project        `toml:"projects"`
	Work     []WorkExperience `toml:"work"`
}

// Document is the virtual line list for one window: the two header rows
// followed by a fixed number of rows per item of a single kind.
type Document struct {
	Kind     Kind
	Display  Display
	Projects []Project
	Work     []WorkExperience
}

// Documents splits a portfolio into one document per populated record list.
func (p *Portfolio) Documents() []*Document {
	var docs []*Document
	if len(p.Projects) > 0 {
		docs = append(docs, &Document{Kind: KindProjects, Display: p.Display, Projects: p.Projects})
	}
	if len(p.Work) > 0 {
		docs = append(docs, &Document{Kind: KindWork, Display: p.Display, Work: p.Work})
	}
	return docs
}

// Items returns the number of records in the document.
func (d *Document) Items() int {
	if d.Kind == KindProjects {
		return len(d.Projects)
	}
	return len(d.Work)
}

// TotalLines returns the number of addressable rows: the fixed header rows
// plus span×items.
func (d *Document) TotalLines() int {
	return HeaderLines + Span(d.Kind)*d.Items()
}

// Line returns the raw text of a row. Out-of-range rows return "".
func (d *Document) Line(row int) string {
	switch row {
	case 0:
		return fmt.Sprintf("%s git:(%s)", d.Display.Path, d.Display.Branch)
	case 1:
		return fmt.Sprintf("$ echo %q", d.Display.Info)
	}

	span := Span(d.Kind)
	idx := (row - HeaderLines) / span
	sub := (row - HeaderLines) % span
	if idx < 0 || idx >= d.Items() {
		return ""
	}

	if d.Kind == KindProjects {
		return projectLine(d.Projects[idx], sub)
	}
	return workLine(d.Work[idx], sub)
}

// Width returns the addressable width of a row in runes. This is the upper
// bound for the cursor's column on that row.
func (d *Document) Width(row int) int {
	return len([]rune(d.Line(row)))
}

// ItemAt returns the item index a row belongs to, or -1 for header rows.
func (d *Document) ItemAt(row int) int {
	if row < HeaderLines {
		return -1
	}
	idx := (row - HeaderLines) / Span(d.Kind)
	if idx >= d.Items() {
		return -1
	}
	return idx
}

func projectLine(p Project, sub int) string {
	switch sub {
	case 0:
		return p.Title
	case 1:
		return "  " + p.Description
	default:
		line := "  " + p.RepoURL
		if len(p.Technologies) > 0 {
			line += "  [" + strings.Join(p.Technologies, ", ") + "]"
		}
		return line
	}
}

func workLine(w WorkExperience, sub int) string {
	switch sub {
	case 0:
		return fmt.Sprintf("%s @ %s", w.Title, w.Company)
	case 1:
		return "  " + w.Duration
	case 2:
		return "  " + w.Description
	default:
		line := "  " + w.Link
		if len(w.Technologies) > 0 {
			line += "  [" + strings.Join(w.Technologies, ", ") + "]"
		}
		return line
	}
}
