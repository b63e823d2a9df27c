package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/driftchat/drift/core"
)

const dividerLabel = "new messages"

// CursorPos is an absolute screen cell.
type CursorPos struct {
	X, Y int
}

// ChatLayout is everything the chat column draws in one frame.
type ChatLayout struct {
	Title       string
	Messages    []Line
	MessageRect Rect
	Input       []Line
	InputRect   Rect
	// Cursor is the absolute cell the terminal cursor belongs in,
	// inside the input box.
	Cursor CursorPos
}

// ChatPane splits the chat column into the message history and the
// input box, sizing the box from the wrapped input and computing the
// cursor cell. ch may be nil when no channel is open.
func ChatPane(ch *core.Channel, input string, cursor int, area Rect, th Theme) ChatLayout {
	// Input is chunked by character count, not display width. Wide
	// glyphs therefore misalign slightly; kept as-is because the
	// cursor arithmetic below depends on it.
	textWidth := max(1, area.Width-2)
	chunks := chunkRunes(input, textWidth)
	numLines := max(1, len(chunks))

	extra := 0
	if cursor > 0 && cursor%textWidth == 0 {
		// Reserve an empty line so the cursor can sit past the end
		// of a full row instead of on the border.
		extra = 1
	}

	boxHeight := numLines + 2 + extra
	if boxHeight > area.Height {
		boxHeight = max(0, area.Height)
	}
	inputRect := Rect{
		X:      area.X,
		Y:      area.Y + area.Height - boxHeight,
		Width:  area.Width,
		Height: boxHeight,
	}
	messageRect := Rect{
		X:      area.X,
		Y:      area.Y,
		Width:  area.Width,
		Height: max(0, area.Height-boxHeight),
	}

	inputLines := make([]Line, len(chunks))
	for i, c := range chunks {
		inputLines[i] = plain(c, th.Normal)
	}

	title, messages := messageHistory(ch, messageRect, th)

	return ChatLayout{
		Title:       title,
		Messages:    messages,
		MessageRect: messageRect,
		Input:       inputLines,
		InputRect:   inputRect,
		Cursor: CursorPos{
			X: inputRect.X + cursor%textWidth + 1,
			Y: inputRect.Y + cursor/textWidth + 1,
		},
	}
}

// chunkRunes splits s into runs of width characters, starting a new
// run at every multiple of width.
func chunkRunes(s string, width int) []string {
	runes := []rune(s)
	var chunks []string
	for start := 0; start < len(runes); start += width {
		chunks = append(chunks, string(runes[start:min(start+width, len(runes))]))
	}
	return chunks
}

// messageHistory renders the open channel's messages newest-first,
// anchored to the bottom edge like a live feed, and returns the pane
// title alongside the visible rows.
func messageHistory(ch *core.Channel, area Rect, th Theme) (string, []Line) {
	title := "Messages"
	var msgs []core.Message
	unread := 0
	if ch != nil {
		msgs = ch.Messages
		unread = ch.Unread
		if ch.Description != "" {
			title = ch.Description
		}
	}

	// The line cap is the full pane height; older messages beyond it
	// are not rendered at all.
	if area.Height <= 0 || len(msgs) == 0 {
		return title, nil
	}
	shown := msgs
	if len(shown) > area.Height {
		shown = shown[len(shown)-area.Height:]
	}

	maxUserWidth := 0
	for _, m := range shown {
		if w := runewidth.StringWidth(firstName(m.From)); w > maxUserWidth {
			maxUserWidth = w
		}
	}

	interior := area.Interior()
	blocks := make([][]Line, 0, len(shown))
	for i := len(shown) - 1; i >= 0; i-- {
		blocks = append(blocks, messageBlock(shown[i], maxUserWidth, interior, th))
	}

	// An unread count of zero, or one at or past the rendered count
	// (stale), leaves the divider out entirely.
	if unread > 0 && unread < len(blocks) {
		blocks = slices.Insert(blocks, unread, []Line{unreadDivider(maxUserWidth, interior, th)})
	}

	return title, stackBottom(blocks, max(0, area.Height-2))
}

// stackBottom lays newest-first blocks out from the bottom of the pane
// upwards, clipping the oldest rows once it is full. The returned rows
// read top to bottom.
func stackBottom(blocks [][]Line, rows int) []Line {
	var out []Line
	for _, block := range blocks {
		out = append(append([]Line{}, block...), out...)
		if len(out) >= rows {
			break
		}
	}
	if len(out) > rows {
		out = out[len(out)-rows:]
	}
	return out
}

// messageBlock formats one message as its prefixed first line plus
// space-indented continuation lines.
func messageBlock(msg core.Message, maxUserWidth, interior int, th Theme) []Line {
	arrived := msg.ArrivedAt.Local()
	clock := fmt.Sprintf("%02d:%02d ", arrived.Hour(), arrived.Minute())

	name := firstName(msg.From)
	padded := strings.Repeat(" ", max(0, maxUserWidth-runewidth.StringWidth(name))) + name

	prefixWidth := runewidth.StringWidth(clock) + runewidth.StringWidth(padded) + len(": ")
	body := wrapWords(msg.Content, interior-prefixWidth)
	indent := strings.Repeat(" ", prefixWidth)

	block := make([]Line, len(body))
	for i, line := range body {
		if i == 0 {
			block[i] = Line{Spans: []Span{
				{Text: clock, Style: th.Time},
				{Text: padded, Style: th.UserStyle(msg.From)},
				{Text: ": ", Style: th.Normal},
				{Text: line, Style: th.Normal},
			}}
		} else {
			block[i] = plain(indent+line, th.Normal)
		}
	}
	return block
}

// unreadDivider is the dashed separator between read and unread
// messages. The label's left padding is pinned to the username column
// so it lines up with message bodies.
func unreadDivider(maxUserWidth, interior int, th Theme) Line {
	k := maxUserWidth + 8
	text := strings.Repeat("-", k) + dividerLabel
	text += strings.Repeat("-", max(0, interior-runewidth.StringWidth(text)))
	return plain(text, th.Divider)
}

// wrapWords wraps text at word boundaries, splitting a word only when
// it is wider than a whole line. Splits always land on rune
// boundaries.
func wrapWords(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	current := ""
	currentWidth := 0
	flush := func() {
		lines = append(lines, current)
		current = ""
		currentWidth = 0
	}

	for _, word := range strings.Fields(text) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+wordWidth > width {
			flush()
		}
		if currentWidth > 0 {
			current += " "
			currentWidth++
		}
		for wordWidth > width {
			head, rest := splitWidth(word, width)
			if rest == "" {
				break
			}
			current += head
			flush()
			word = rest
			wordWidth = runewidth.StringWidth(word)
		}
		current += word
		currentWidth += wordWidth
	}
	if currentWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitWidth cuts s so the head occupies at most w cells, always
// taking at least one rune so progress is guaranteed.
func splitWidth(s string, w int) (string, string) {
	width := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if i > 0 && width+rw > w {
			return s[:i], s[i:]
		}
		width += rw
	}
	return s, ""
}

// firstName is the substring before the first space, or the whole
// string when there is none.
func firstName(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}
