package stats

import (
	"github.com/avelichko/chatstat/pkg/export"
)

// Aggregate runs the single linear pass over all messages and produces the
// per-user counters, the display-name index and the weekday/hour histogram.
//
// A message without a sender id contributes to Total (and, unless
// Options.AttributedOnly is set, to the histogram) but to no per-user
// structure. A message whose timestamp does not parse contributes to every
// structure except the histogram. No per-message anomaly aborts the pass.
func Aggregate(messages []export.Message, opts Options) *Result {
	res := &Result{
		Users:     make(map[string]*UserStat),
		Names:     make(map[string]string),
		Histogram: make(Histogram),
	}

	for i := range messages {
		msg := &messages[i]
		res.Total++

		if msg.HasSender() {
			res.Attributed++

			stat := res.Users[msg.FromID]
			if stat == nil {
				stat = &UserStat{}
				res.Users[msg.FromID] = stat
			}
			stat.Messages++

			if msg.From != "" {
				res.Names[msg.FromID] = msg.From
			}

			// Independent checks on purpose: a message that somehow
			// carried both a photo and a media tag would bump both
			// counters.
			if msg.HasPhoto() {
				stat.Photos++
			}
			if msg.MediaType == export.MediaVideoMessage {
				stat.VideoMessages++
			}
			if msg.MediaType == export.MediaVideoFile {
				stat.VideoFiles++
			}
			if msg.MediaType == export.MediaVoiceMessage {
				stat.VoiceMessages++
			}
			if msg.MediaType == export.MediaSticker {
				stat.Stickers++
			}
		} else if opts.AttributedOnly {
			continue
		}

		if t, ok := msg.Time(); ok {
			day := t.Weekday().String()
			hours := res.Histogram[day]
			if hours == nil {
				hours = make(map[int]int)
				res.Histogram[day] = hours
			}
			hours[t.Hour()]++
		}
	}

	return res
}
