package render

import (
	lg "github.com/charmbracelet/lipgloss"
)

// Theme is the immutable style table the renderers draw with. Users is
// the palette usernames are mapped onto; it is fixed for the lifetime
// of the program so message colors never shift between frames.
type Theme struct {
	Normal   lg.Style
	Selected lg.Style
	Title    lg.Style
	Time     lg.Style
	Divider  lg.Style
	Present  lg.Style
	Absent   lg.Style
	Users    []lg.Style
}

// UserColorIndex picks a palette slot for a username: the sum over
// every byte of byte%size, taken mod size. Deterministic so the same
// sender keeps the same color across redraws and runs.
func UserColorIndex(username string, size int) int {
	if size <= 0 {
		return 0
	}
	sum := 0
	for i := 0; i < len(username); i++ {
		sum += int(username[i]) % size
	}
	return sum % size
}

// UserStyle returns the palette style assigned to a username.
func (t Theme) UserStyle(username string) lg.Style {
	if len(t.Users) == 0 {
		return t.Normal
	}
	return t.Users[UserColorIndex(username, len(t.Users))]
}
