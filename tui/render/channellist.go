package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/driftchat/drift/core"
)

// ChannelList formats one label per channel, fitted to the column's
// interior width, with the selected row highlighted. It returns the
// scroll offset actually used, clamped so the selected row stays
// visible; the caller stores it for the next frame instead of the list
// mutating itself mid-render.
func ChannelList(channels []core.Channel, selected, offset int, area Rect, th Theme) ([]Line, int) {
	rows := max(0, area.Height-2)
	if rows == 0 || len(channels) == 0 {
		return nil, 0
	}

	if selected >= 0 && selected < len(channels) {
		if selected < offset {
			offset = selected
		}
		if selected >= offset+rows {
			offset = selected - rows + 1
		}
	}
	if offset > len(channels)-rows {
		offset = len(channels) - rows
	}
	if offset < 0 {
		offset = 0
	}

	interior := area.Interior()
	end := min(offset+rows, len(channels))
	lines := make([]Line, 0, end-offset)
	for i := offset; i < end; i++ {
		style := th.Normal
		if i == selected {
			style = th.Selected
		}
		lines = append(lines, plain(channelLabel(channels[i], interior), style))
	}
	return lines, offset
}

// channelLabel builds "name (unread)" and, when it overflows the
// column, shortens the name portion only. The unread suffix always
// survives verbatim; a plain name that overflows is passed through and
// clipped by the backend instead.
func channelLabel(ch core.Channel, width int) string {
	suffix := ""
	if ch.Unread != 0 {
		suffix = fmt.Sprintf(" (%d)", ch.Unread)
	}

	label := ch.Name + suffix
	labelWidth := runewidth.StringWidth(label)
	if labelWidth <= width || suffix == "" {
		return label
	}

	keep := runewidth.StringWidth(ch.Name) - (labelWidth - width)
	var b strings.Builder
	w := 0
	for _, r := range ch.Name {
		rw := runewidth.RuneWidth(r)
		if w+rw > keep {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + suffix
}
