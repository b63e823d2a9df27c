package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	lg "github.com/charmbracelet/lipgloss"

	"github.com/driftchat/drift/core"
	"github.com/driftchat/drift/tui/styles"
)

func testConfig() Config {
	return Config{
		Channels: []core.Channel{
			{
				ID:   "general",
				Name: "general",
				Members: []core.Member{
					{Hash: "aa", Role: core.RoleAdmin},
					{Hash: "bb", Role: core.RoleMember},
				},
				Messages: []core.Message{
					{From: "Alice Martin", Content: "hello", ArrivedAt: time.Now()},
				},
			},
			{ID: "random", Name: "random"},
		},
		Presence: core.Presence{"aa": true},
		Self:     "You",
		Theme:    styles.Get("Default"),
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewSelectsInitialChannel(t *testing.T) {
	cfg := testConfig()
	cfg.InitialChannel = "random"
	m := New(cfg)
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1", m.selected)
	}

	cfg.InitialChannel = ""
	if m := New(cfg); m.selected != 0 {
		t.Errorf("selected = %d, want first channel", m.selected)
	}

	cfg.Channels = nil
	if m := New(cfg); m.selected != -1 {
		t.Errorf("selected = %d, want -1 with no channels", m.selected)
	}
}

func TestInputEditing(t *testing.T) {
	m := New(testConfig())

	m.Update(keyRunes("hllo"))
	for i := 0; i < 3; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	m.Update(keyRunes("e"))

	if got := string(m.input); got != "hello" {
		t.Errorf("input = %q, want hello", got)
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := string(m.input); got != "hllo" {
		t.Errorf("after backspace input = %q, want hllo", got)
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if m.cursor != 4 {
		t.Errorf("cursor = %d, want 4 after end", m.cursor)
	}
}

func TestCursorNeverExceedsInput(t *testing.T) {
	m := New(testConfig())
	m.Update(keyRunes("abc"))
	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.cursor != len(m.input) {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.input))
	}
	for i := 0; i < 9; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestSendInput(t *testing.T) {
	m := New(testConfig())
	m.Update(keyRunes("ship it"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	ch := m.openChannel()
	last := ch.Messages[len(ch.Messages)-1]
	if last.From != "You" || last.Content != "ship it" {
		t.Errorf("sent message = %+v", last)
	}
	if len(m.input) != 0 || m.cursor != 0 {
		t.Errorf("input not cleared: %q cursor %d", string(m.input), m.cursor)
	}

	// Empty input sends nothing.
	n := len(ch.Messages)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(ch.Messages) != n {
		t.Errorf("empty enter appended a message")
	}
}

func TestNewMessageUnread(t *testing.T) {
	m := New(testConfig())
	m.Update(core.NewMessageMsg{
		ChannelID: "random",
		Message:   core.Message{From: "Bob Kowalski", Content: "ping", ArrivedAt: time.Now()},
	})

	if got := m.channels[1].Unread; got != 1 {
		t.Errorf("unread = %d, want 1", got)
	}
	if got := len(m.channels[1].Messages); got != 1 {
		t.Errorf("messages = %d, want 1", got)
	}

	// Marking the channel read from the sidebar clears the count.
	m.focused = FocusSidebar
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.channels[1].Unread; got != 0 {
		t.Errorf("unread after open = %d, want 0", got)
	}
}

func TestPresenceAndMemberMsgs(t *testing.T) {
	m := New(testConfig())
	m.Update(core.PresenceChangedMsg{Hash: "bb", Present: true})
	if !m.presence["bb"] {
		t.Error("presence change not applied")
	}

	m.Update(core.MemberJoinedMsg{ChannelID: "general", Member: core.Member{Hash: "cc", Role: core.RoleInvited}})
	if got := len(m.channels[0].Members); got != 3 {
		t.Errorf("members = %d, want 3", got)
	}
}

func TestFocusCycle(t *testing.T) {
	m := New(testConfig())
	if m.focused != FocusInput {
		t.Fatalf("initial focus = %v, want input", m.focused)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focused != FocusSidebar {
		t.Errorf("focus = %v, want sidebar", m.focused)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focused != FocusInput {
		t.Errorf("focus = %v, want input", m.focused)
	}
}

func TestViewRegions(t *testing.T) {
	m := New(testConfig())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	rows := strings.Split(view, "\n")
	if len(rows) != 24 {
		t.Fatalf("view has %d rows, want 24", len(rows))
	}
	for y, row := range rows {
		if w := lg.Width(row); w != 80 {
			t.Errorf("row %d is %d cells wide, want 80", y, w)
		}
	}

	// The open channel has members: three bordered columns.
	if got := strings.Count(rows[0], "╭"); got != 3 {
		t.Errorf("top row has %d box corners, want 3", got)
	}

	// Switch to a channel without members: two columns.
	m.selected = 1
	rows = strings.Split(m.View(), "\n")
	if got := strings.Count(rows[0], "╭"); got != 2 {
		t.Errorf("top row has %d box corners, want 2", got)
	}
	for y, row := range rows {
		if w := lg.Width(row); w != 80 {
			t.Errorf("no-members row %d is %d cells wide, want 80", y, w)
		}
	}
}

func TestViewZeroSize(t *testing.T) {
	m := New(testConfig())
	if got := m.View(); got != "" {
		t.Errorf("zero-size view = %q, want empty", got)
	}
}
