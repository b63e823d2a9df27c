package tui

import (
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/driftchat/drift/tui/render"
)

// View runs one full layout pass: split the screen, render each
// region's lines, then compose the bordered columns row by row.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	ch := m.openChannel()
	hasMembers := ch != nil && len(ch.Members) > 0
	regions := render.SplitScreen(render.Rect{Width: m.width, Height: m.height}, hasMembers)
	th := m.theme.Render()

	listLines, offset := render.ChannelList(m.channels, m.selected, m.offset, regions[0], th)
	m.offset = offset

	chat := render.ChatPane(ch, string(m.input), m.cursor, regions[1], th)

	borderNormal := lg.NewStyle().Foreground(m.theme.Border)
	borderFocus := lg.NewStyle().Foreground(m.theme.Focus)
	sidebarBorder, inputBorder := borderNormal, borderFocus
	if m.focused == FocusSidebar {
		sidebarBorder, inputBorder = borderFocus, borderNormal
	}

	chatColumn := drawBox(chat.MessageRect, chat.Title, chat.Messages, true, borderNormal)
	chatColumn = append(chatColumn, drawBox(chat.InputRect, "Input", m.inputBoxLines(chat, th), false, inputBorder)...)

	columns := [][]string{
		drawBox(regions[0], "Channels", listLines, false, sidebarBorder),
		chatColumn,
	}
	if hasMembers {
		memberLines := render.MemberPane(ch, m.presence, m.names, regions[2], th)
		columns = append(columns, drawBox(regions[2], "", memberLines, false, borderNormal))
	}

	rows := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		var b strings.Builder
		for _, col := range columns {
			if y < len(col) {
				b.WriteString(col[y])
			}
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// inputBoxLines pads the wrapped input up to the cursor row and, when
// the input has focus, paints the cursor cell reverse-video. The
// hosting program has no hardware cursor in the alt screen, so the
// cell the layout picked is honored by styling it instead.
func (m *Model) inputBoxLines(chat render.ChatLayout, th render.Theme) []render.Line {
	lines := append([]render.Line{}, chat.Input...)
	row := chat.Cursor.Y - chat.InputRect.Y - 1
	col := chat.Cursor.X - chat.InputRect.X - 1
	if m.focused != FocusInput || row < 0 || col < 0 {
		return lines
	}
	for len(lines) <= row {
		lines = append(lines, render.Line{})
	}
	lines[row] = overlayCursor(lines[row], col, th)
	return lines
}

func overlayCursor(line render.Line, col int, th render.Theme) render.Line {
	runes := []rune(line.Text())
	before := string(runes[:min(col, len(runes))])
	at := " "
	after := ""
	if col < len(runes) {
		at = string(runes[col])
		after = string(runes[col+1:])
	}
	return render.Line{Spans: []render.Span{
		{Text: before, Style: th.Normal},
		{Text: at, Style: th.Normal.Reverse(true)},
		{Text: after, Style: th.Normal},
	}}
}

// drawBox renders a rounded-border box of exactly r.Height rows, each
// r.Width cells wide. Regions too small for a border degrade to blank
// rows. bottomAnchor pushes the content against the bottom edge.
func drawBox(r render.Rect, title string, content []render.Line, bottomAnchor bool, border lg.Style) []string {
	if r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	blank := strings.Repeat(" ", r.Width)
	if r.Width < 2 || r.Height < 2 {
		rows := make([]string, r.Height)
		for i := range rows {
			rows[i] = blank
		}
		return rows
	}

	interior := r.Width - 2
	avail := r.Height - 2
	if len(content) > avail {
		if bottomAnchor {
			content = content[len(content)-avail:]
		} else {
			content = content[:avail]
		}
	}

	side := border.Render("│")
	emptyRow := side + blank[:interior] + side
	pad := avail - len(content)

	rows := make([]string, 0, r.Height)
	rows = append(rows, border.Render("╭"+fitTitle(title, interior)+"╮"))
	if bottomAnchor {
		for i := 0; i < pad; i++ {
			rows = append(rows, emptyRow)
		}
	}
	for _, line := range content {
		rows = append(rows, side+padLine(line, interior)+side)
	}
	if !bottomAnchor {
		for i := 0; i < pad; i++ {
			rows = append(rows, emptyRow)
		}
	}
	rows = append(rows, border.Render("╰"+strings.Repeat("─", interior)+"╯"))
	return rows
}

// fitTitle embeds a title in the top border, truncated to the interior
// width and filled out with the border rune.
func fitTitle(title string, width int) string {
	title = runewidth.Truncate(title, width, "")
	return title + strings.Repeat("─", max(0, width-runewidth.StringWidth(title)))
}

// padLine renders a line into exactly width cells, truncating any
// overflow span by span.
func padLine(l render.Line, width int) string {
	var b strings.Builder
	used := 0
	for _, s := range l.Spans {
		t := s.Text
		if used+runewidth.StringWidth(t) > width {
			t = runewidth.Truncate(t, width-used, "")
		}
		b.WriteString(s.Style.Render(t))
		used += runewidth.StringWidth(t)
		if used >= width {
			break
		}
	}
	b.WriteString(strings.Repeat(" ", max(0, width-used)))
	return b.String()
}
