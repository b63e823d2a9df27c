package render

import (
	"github.com/driftchat/drift/core"
)

// MemberPane renders the open channel's roster, newest join first,
// capped at the pane height. Presence drives the color: present
// members render in the present style, absent or unknown ones in the
// absent style. Unlike the message pane this stacks top-down.
func MemberPane(ch *core.Channel, presence core.Presence, names core.NameResolver, area Rect, th Theme) []Line {
	if ch == nil || area.Height <= 0 {
		return nil
	}

	rows := max(0, area.Height-2)
	members := ch.Members
	lines := make([]Line, 0, min(len(members), rows))
	for i := len(members) - 1; i >= 0 && len(lines) < rows; i-- {
		m := members[i]

		style := th.Absent
		if presence[m.Hash] {
			style = th.Present
		}

		glyph := "-"
		switch m.Role {
		case core.RoleAdmin:
			glyph = "👑"
		case core.RoleInvited:
			glyph = "⏳"
		}

		name := m.Hash
		if names != nil {
			name = names.DisplayName(m.Hash)
		}

		lines = append(lines, plain(glyph+" "+name, style))
	}
	return lines
}
