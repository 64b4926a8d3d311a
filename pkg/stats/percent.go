package stats

import "fmt"

// MediaShare pairs a media counter's share of its user's messages with its
// share of the grand total.
type MediaShare struct {
	OfUser  float64 `json:"of_user"`
	OfTotal float64 `json:"of_total"`
}

// PercentageView holds the relative shares for one user. Values are plain
// percentages (0-100); FormatPercent renders them for display.
type PercentageView struct {
	TotalShare    float64    `json:"total_share"`
	Photos        MediaShare `json:"photos"`
	VideoMessages MediaShare `json:"video_messages"`
	VideoFiles    MediaShare `json:"video_files"`
	VoiceMessages MediaShare `json:"voice_messages"`
	Stickers      MediaShare `json:"stickers"`
}

// Percentages derives a PercentageView per user from the aggregated counters
// and the grand total. Inputs are not mutated. A zero denominator (a user
// with no messages, or an empty export) yields a share of exactly 0.
func Percentages(users map[string]*UserStat, total int) map[string]PercentageView {
	views := make(map[string]PercentageView, len(users))
	for id, stat := range users {
		views[id] = PercentageView{
			TotalShare:    share(stat.Messages, total),
			Photos:        mediaShare(stat.Photos, stat.Messages, total),
			VideoMessages: mediaShare(stat.VideoMessages, stat.Messages, total),
			VideoFiles:    mediaShare(stat.VideoFiles, stat.Messages, total),
			VoiceMessages: mediaShare(stat.VoiceMessages, stat.Messages, total),
			Stickers:      mediaShare(stat.Stickers, stat.Messages, total),
		}
	}
	return views
}

// FormatPercent renders a share as a fixed two-decimal percentage string.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func mediaShare(count, userTotal, grandTotal int) MediaShare {
	return MediaShare{
		OfUser:  share(count, userTotal),
		OfTotal: share(count, grandTotal),
	}
}

func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
