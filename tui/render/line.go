package render

import (
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text drawn with a single style.
type Span struct {
	Text  string
	Style lg.Style
}

// Line is one row of styled text inside a region. The layout code only
// produces lines, it never talks to a widget toolkit directly, so any
// backend that can paint styled rows can consume the output.
type Line struct {
	Spans []Span
}

func plain(text string, style lg.Style) Line {
	return Line{Spans: []Span{{Text: text, Style: style}}}
}

// Width is the number of terminal cells the line occupies.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

// Text is the line's content with styling stripped.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Render resolves the line to a terminal string.
func (l Line) Render() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Style.Render(s.Text))
	}
	return b.String()
}
