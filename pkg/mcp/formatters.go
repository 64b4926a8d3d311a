package mcp

import (
	"fmt"
	"strings"

	"github.com/avelichko/chatstat/pkg/report"
	"github.com/avelichko/chatstat/pkg/stats"
)

// displayName resolves a sender id to its last known name.
func displayName(id string, names map[string]string) string {
	if name := names[id]; name != "" {
		return name
	}
	return report.DefaultUnknownLabel
}

// FormatOverview formats the chat summary and per-user table for text display.
func FormatOverview(chatName string, result *stats.Result, views map[string]stats.PercentageView) string {
	var lines []string

	if chatName != "" {
		lines = append(lines, fmt.Sprintf("Chat: %s", chatName))
	}
	lines = append(lines, fmt.Sprintf("Total messages: %d", result.Total))
	lines = append(lines, fmt.Sprintf("Attributed messages: %d", result.Attributed))
	lines = append(lines, fmt.Sprintf("Participants: %d", len(result.Users)))

	if len(result.Users) > 0 {
		lines = append(lines, "")
		for _, id := range stats.SortedIDs(result.Users) {
			lines = append(lines, fmt.Sprintf("%s (%s): %d messages (%s of chat)",
				displayName(id, result.Names), id,
				result.Users[id].Messages,
				stats.FormatPercent(views[id].TotalShare)))
		}
	}

	return strings.Join(lines, "\n")
}

// FormatUser formats one user's full statistics for text display.
func FormatUser(id string, result *stats.Result, view stats.PercentageView) string {
	stat := result.Users[id]
	if stat == nil {
		return "[User not found]"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s (%s)", displayName(id, result.Names), id))
	lines = append(lines, fmt.Sprintf("Messages: %d (%s of chat)",
		stat.Messages, stats.FormatPercent(view.TotalShare)))

	media := []struct {
		label string
		count int
		share stats.MediaShare
	}{
		{"Photos", stat.Photos, view.Photos},
		{"Video messages", stat.VideoMessages, view.VideoMessages},
		{"Video files", stat.VideoFiles, view.VideoFiles},
		{"Voice messages", stat.VoiceMessages, view.VoiceMessages},
		{"Stickers", stat.Stickers, view.Stickers},
	}
	for _, m := range media {
		lines = append(lines, fmt.Sprintf("%s: %d (%s of user, %s of chat)",
			m.label, m.count,
			stats.FormatPercent(m.share.OfUser),
			stats.FormatPercent(m.share.OfTotal)))
	}

	return strings.Join(lines, "\n")
}

// FormatUsers formats detailed statistics for the busiest users.
func FormatUsers(result *stats.Result, views map[string]stats.PercentageView, limit int) string {
	ids := stats.SortedIDs(result.Users)
	if len(ids) == 0 {
		return "No attributed messages in this export."
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	blocks := make([]string, 0, len(ids))
	for _, id := range ids {
		blocks = append(blocks, FormatUser(id, result, views[id]))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatPeak formats the peak activity window for text display.
func FormatPeak(peak stats.PeakWindow, result *stats.Result) string {
	if peak.Hour < 0 {
		return "No messages with a timestamp in this export."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Busiest window: %s %s", peak.Day, report.HourRange(peak.Hour)))
	lines = append(lines, fmt.Sprintf("Messages in that window: %d", peak.Count))
	lines = append(lines, fmt.Sprintf("Average per active hour on %s: %.2f", peak.Day, peak.AvgPerActiveHour))
	lines = append(lines, fmt.Sprintf("Active hour buckets on %s: %d", peak.Day, len(result.Histogram[peak.Day])))
	return strings.Join(lines, "\n")
}
