package styles

import (
	lg "github.com/charmbracelet/lipgloss"

	"github.com/driftchat/drift/tui/render"
)

// Theme names the colors a drift session draws with. Users is the
// fixed palette usernames are mapped onto.
type Theme struct {
	Text    lg.Color
	Border  lg.Color
	Focus   lg.Color
	Subtle  lg.Color
	Time    lg.Color
	Present lg.Color
	Absent  lg.Color
	Users   [7]lg.Color
}

var Themes = map[string]Theme{
	"Default": {
		Text:    lg.Color("7"),
		Border:  lg.Color("8"),
		Focus:   lg.Color("2"),
		Subtle:  lg.Color("8"),
		Time:    lg.Color("3"),
		Present: lg.Color("7"),
		Absent:  lg.Color("1"),
		Users: [7]lg.Color{
			lg.Color("1"), lg.Color("2"), lg.Color("3"), lg.Color("4"),
			lg.Color("5"), lg.Color("6"), lg.Color("7"),
		},
	},
	"Rose Pine": {
		Text:    lg.Color("#e0def4"),
		Border:  lg.Color("#393552"),
		Focus:   lg.Color("#eb6f92"),
		Subtle:  lg.Color("#6e6a86"),
		Time:    lg.Color("#f6c177"),
		Present: lg.Color("#e0def4"),
		Absent:  lg.Color("#eb6f92"),
		Users: [7]lg.Color{
			lg.Color("#eb6f92"), lg.Color("#31748f"), lg.Color("#f6c177"),
			lg.Color("#9ccfd8"), lg.Color("#c4a7e7"), lg.Color("#ebbcba"),
			lg.Color("#e0def4"),
		},
	},
	"Catppuccin Mocha": {
		Text:    lg.Color("#cdd6f4"),
		Border:  lg.Color("#45475a"),
		Focus:   lg.Color("#cba6f7"),
		Subtle:  lg.Color("#6c7086"),
		Time:    lg.Color("#f9e2af"),
		Present: lg.Color("#cdd6f4"),
		Absent:  lg.Color("#f38ba8"),
		Users: [7]lg.Color{
			lg.Color("#f38ba8"), lg.Color("#a6e3a1"), lg.Color("#f9e2af"),
			lg.Color("#89b4fa"), lg.Color("#f5c2e7"), lg.Color("#94e2d5"),
			lg.Color("#cdd6f4"),
		},
	},
}

// Get returns the named theme, falling back to Default.
func Get(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["Default"]
}

// Render builds the immutable style table the layout code draws with.
func (t Theme) Render() render.Theme {
	users := make([]lg.Style, len(t.Users))
	for i, c := range t.Users {
		users[i] = lg.NewStyle().Foreground(c)
	}
	return render.Theme{
		Normal:   lg.NewStyle().Foreground(t.Text),
		Selected: lg.NewStyle().Foreground(t.Text).Reverse(true),
		Title:    lg.NewStyle().Foreground(t.Text).Bold(true),
		Time:     lg.NewStyle().Foreground(t.Time),
		Divider:  lg.NewStyle().Foreground(t.Subtle),
		Present:  lg.NewStyle().Foreground(t.Present),
		Absent:   lg.NewStyle().Foreground(t.Absent),
		Users:    users,
	}
}
