package demo

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftchat/drift/core"
)

// Roster maps identity hashes to display names and stands in for the
// profile subsystem.
type Roster map[string]string

func (r Roster) DisplayName(hash string) string {
	if name, ok := r[hash]; ok {
		return name
	}
	return hash
}

// Seed returns the scripted state a drift session starts from: a few
// channels with history, members and unread counts, plus the roster
// and initial presence.
func Seed() ([]core.Channel, Roster, core.Presence) {
	now := time.Now()
	at := func(minutesAgo int) time.Time {
		return now.Add(-time.Duration(minutesAgo) * time.Minute)
	}

	roster := Roster{
		"a1f0": "Alice Martin",
		"b2e1": "Bob Kowalski",
		"c3d2": "Carol Weiss",
		"d4c3": "Dai Nguyen",
		"e5b4": "Esra Yilmaz",
	}
	presence := core.Presence{
		"a1f0": true,
		"b2e1": false,
		"c3d2": true,
	}

	channels := []core.Channel{
		{
			ID:          "general",
			Name:        "general",
			Description: "Anything and everything",
			Members: []core.Member{
				{Hash: "a1f0", Role: core.RoleAdmin},
				{Hash: "b2e1", Role: core.RoleMember},
				{Hash: "c3d2", Role: core.RoleMember},
				{Hash: "d4c3", Role: core.RoleInvited},
			},
			Messages: []core.Message{
				{From: "Alice Martin", Content: "morning all, the deploy went out clean", ArrivedAt: at(42)},
				{From: "Bob Kowalski", Content: "nice. did the migration finish on the replica too?", ArrivedAt: at(40)},
				{From: "Alice Martin", Content: "yes, lag dropped back under a second around 09:10", ArrivedAt: at(39)},
				{From: "Carol Weiss", Content: "I pushed the dashboard fix, refresh if you still see the gap", ArrivedAt: at(12)},
				{From: "Bob Kowalski", Content: "looks good now, thanks", ArrivedAt: at(8)},
			},
			Unread: 2,
		},
		{
			ID:          "random",
			Name:        "random",
			Description: "",
			Members: []core.Member{
				{Hash: "c3d2", Role: core.RoleAdmin},
				{Hash: "e5b4", Role: core.RoleMember},
			},
			Messages: []core.Message{
				{From: "Esra Yilmaz", Content: "anyone tried the new place on the corner? the long queue at lunch suggests it is either great or very slow", ArrivedAt: at(95)},
				{From: "Carol Weiss", Content: "both, as it turns out", ArrivedAt: at(90)},
			},
		},
		{
			ID:   "announcements-and-planning",
			Name: "announcements-and-planning",
			Messages: []core.Message{
				{From: "Alice Martin", Content: "sprint review moved to Thursday 14:00", ArrivedAt: at(600)},
			},
			Unread: 1,
		},
	}

	return channels, roster, presence
}

// script is the traffic Run replays, round robin.
var script = []core.NewMessageMsg{
	{ChannelID: "general", Message: core.Message{From: "Dai Nguyen", Content: "joining late, catching up on the thread"}},
	{ChannelID: "random", Message: core.Message{From: "Esra Yilmaz", Content: "verdict: great and very slow"}},
	{ChannelID: "general", Message: core.Message{From: "Carol Weiss", Content: "filed the flaky test under build/1482, it only fails on the arm runner"}},
	{ChannelID: "announcements-and-planning", Message: core.Message{From: "Alice Martin", Content: "reminder: demo dry run tomorrow morning"}},
	{ChannelID: "general", Message: core.Message{From: "Bob Kowalski", Content: "can someone review the retry backoff change? it is a small diff but it touches the hot path"}},
}

var presenceScript = []core.PresenceChangedMsg{
	{Hash: "b2e1", Present: true},
	{Hash: "c3d2", Present: false},
	{Hash: "d4c3", Present: true},
	{Hash: "c3d2", Present: true},
}

// Run emits scripted messages and presence flips on ch until done is
// closed, standing in for the network event stream.
func Run(ch chan<- tea.Msg, done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	step := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		msg := script[step%len(script)]
		msg.Message.ArrivedAt = time.Now()
		select {
		case ch <- msg:
		case <-done:
			return
		}

		if step%2 == 1 {
			flip := presenceScript[(step/2)%len(presenceScript)]
			select {
			case ch <- flip:
			case <-done:
				return
			}
		}
		step++
	}
}
