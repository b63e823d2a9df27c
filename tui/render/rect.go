package render

// Rect is a rectangle of character cells in absolute screen coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Interior returns the width left inside the borders, never negative.
func (r Rect) Interior() int {
	return max(0, r.Width-2)
}

// SplitScreen partitions the screen into the channel-list and chat
// columns, plus a member column when the open channel has members.
// Ratios are 1:4 / 3:4 without members and 1:4 / 5:8 / 1:8 with them.
// A terminal narrower than the ratios produce zero-width columns rather
// than an error.
func SplitScreen(screen Rect, hasMembers bool) []Rect {
	list := screen.Width / 4

	if !hasMembers {
		return []Rect{
			{X: screen.X, Y: screen.Y, Width: list, Height: screen.Height},
			{X: screen.X + list, Y: screen.Y, Width: max(0, screen.Width-list), Height: screen.Height},
		}
	}

	members := screen.Width / 8
	chat := max(0, screen.Width-list-members)
	return []Rect{
		{X: screen.X, Y: screen.Y, Width: list, Height: screen.Height},
		{X: screen.X + list, Y: screen.Y, Width: chat, Height: screen.Height},
		{X: screen.X + list + chat, Y: screen.Y, Width: members, Height: screen.Height},
	}
}
