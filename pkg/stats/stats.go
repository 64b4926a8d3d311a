// Package stats computes per-user and per-time-slot statistics over a chat
// export: one aggregation pass, then derived percentage and peak views.
package stats

import "sort"

// UserStat holds the counters for one sender. Counters only grow during the
// aggregation pass and are read-only afterwards.
type UserStat struct {
	Messages      int `json:"messages"`
	Photos        int `json:"photos"`
	VideoMessages int `json:"video_messages"`
	VideoFiles    int `json:"video_files"`
	VoiceMessages int `json:"voice_messages"`
	Stickers      int `json:"stickers"`
}

// Histogram counts messages per weekday (long English name) per hour of day.
// Cells with zero messages are absent, never stored.
type Histogram map[string]map[int]int

// Result is the output of one aggregation pass.
type Result struct {
	Total      int                  `json:"total"`      // all input messages
	Attributed int                  `json:"attributed"` // messages with a sender id
	Users      map[string]*UserStat `json:"users"`
	Names      map[string]string    `json:"names"` // sender id -> last display name seen
	Histogram  Histogram            `json:"histogram"`
}

// Options controls aggregation behavior.
type Options struct {
	// AttributedOnly restricts the time histogram to messages that carry a
	// sender id, mirroring exports analyzed by older tooling. By default
	// every message with a parseable timestamp is counted, senderless
	// service messages included.
	AttributedOnly bool
}

// SortedIDs returns user ids ordered by message count descending, ties by id
// ascending. Report output and user tables iterate in this order.
func SortedIDs(users map[string]*UserStat) []string {
	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := users[ids[i]], users[ids[j]]
		if a.Messages != b.Messages {
			return a.Messages > b.Messages
		}
		return ids[i] < ids[j]
	})
	return ids
}
