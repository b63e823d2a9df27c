package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftchat/drift/core"
	"github.com/driftchat/drift/tui/styles"
)

type FocusState int

const (
	FocusSidebar FocusState = iota
	FocusInput
)

// Config seeds a client session.
type Config struct {
	Channels       []core.Channel
	Names          core.NameResolver
	Presence       core.Presence
	Self           string
	Theme          styles.Theme
	InitialChannel string
}

// Model owns the client state for one session: the channel list with
// its selection and scroll offset, the input buffer with its character
// cursor, and the presence map. Rendering reads all of it; the only
// state written during a frame is the scroll offset, stored from the
// channel list's explicit return value.
type Model struct {
	channels []core.Channel
	selected int // -1 when nothing is open
	offset   int

	input  []rune
	cursor int

	presence core.Presence
	names    core.NameResolver
	self     string

	theme   styles.Theme
	keys    keyMap
	focused FocusState

	width, height int
}

func New(cfg Config) *Model {
	m := &Model{
		channels: cfg.Channels,
		selected: -1,
		presence: cfg.Presence,
		names:    cfg.Names,
		self:     cfg.Self,
		theme:    cfg.Theme,
		keys:     defaultKeyMap(),
		focused:  FocusInput,
	}
	if m.presence == nil {
		m.presence = core.Presence{}
	}
	if len(m.channels) > 0 {
		m.selected = 0
	}
	for i, ch := range m.channels {
		if ch.Name == cfg.InitialChannel || ch.ID == cfg.InitialChannel {
			m.selected = i
			break
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case core.NewMessageMsg:
		for i := range m.channels {
			if m.channels[i].ID == msg.ChannelID {
				m.channels[i].Messages = append(m.channels[i].Messages, msg.Message)
				m.channels[i].Unread++
				break
			}
		}

	case core.PresenceChangedMsg:
		m.presence[msg.Hash] = msg.Present

	case core.MemberJoinedMsg:
		for i := range m.channels {
			if m.channels[i].ID == msg.ChannelID {
				m.channels[i].Members = append(m.channels[i].Members, msg.Member)
				break
			}
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FocusNext), key.Matches(msg, m.keys.FocusPrev):
		if m.focused == FocusSidebar {
			m.focused = FocusInput
		} else {
			m.focused = FocusSidebar
		}
		return m, nil
	}

	if m.focused == FocusSidebar {
		m.handleSidebarKey(msg)
		return m, nil
	}
	m.handleInputKey(msg)
	return m, nil
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.channels)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Open):
		if ch := m.openChannel(); ch != nil {
			ch.Unread = 0
		}
	}
}

func (m *Model) handleInputKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		m.insertRunes(msg.Runes)
	case tea.KeySpace:
		m.insertRunes([]rune{' '})
	case tea.KeyBackspace:
		if m.cursor > 0 {
			m.input = append(m.input[:m.cursor-1], m.input[m.cursor:]...)
			m.cursor--
		}
	case tea.KeyDelete:
		if m.cursor < len(m.input) {
			m.input = append(m.input[:m.cursor], m.input[m.cursor+1:]...)
		}
	case tea.KeyLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyRight:
		if m.cursor < len(m.input) {
			m.cursor++
		}
	case tea.KeyHome:
		m.cursor = 0
	case tea.KeyEnd:
		m.cursor = len(m.input)
	case tea.KeyEnter:
		m.sendInput()
	}
}

func (m *Model) insertRunes(runes []rune) {
	m.input = append(m.input[:m.cursor], append(append([]rune{}, runes...), m.input[m.cursor:]...)...)
	m.cursor += len(runes)
}

// sendInput appends the buffer to the open channel as an outgoing
// message and marks the channel read.
func (m *Model) sendInput() {
	ch := m.openChannel()
	if ch == nil || len(m.input) == 0 {
		return
	}
	ch.Messages = append(ch.Messages, core.Message{
		From:      m.self,
		Content:   string(m.input),
		ArrivedAt: time.Now(),
	})
	ch.Unread = 0
	m.input = nil
	m.cursor = 0
}

func (m *Model) openChannel() *core.Channel {
	if m.selected < 0 || m.selected >= len(m.channels) {
		return nil
	}
	return &m.channels[m.selected]
}
