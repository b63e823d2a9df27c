package core

import (
	"time"
)

// Role is a member's standing within a channel.
type Role int

const (
	RoleAdmin Role = iota
	RoleMember
	RoleInvited
)

type Channel struct {
	ID          string
	Name        string
	Description string
	Messages    []Message
	Members     []Member
	Unread      int
}

type Message struct {
	From      string
	Content   string
	ArrivedAt time.Time
}

type Member struct {
	Hash string
	Role Role
}

// Presence maps a member's identity hash to whether they are online.
// A missing key means unknown and is treated as offline.
type Presence map[string]bool

// NameResolver resolves a member's identity hash to a display name.
type NameResolver interface {
	DisplayName(hash string) string
}

type NewMessageMsg struct {
	ChannelID string
	Message   Message
}

type PresenceChangedMsg struct {
	Hash    string
	Present bool
}

type MemberJoinedMsg struct {
	ChannelID string
	Member    Member
}
