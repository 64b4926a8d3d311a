// Package report renders aggregated chat statistics as styled text.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/avelichko/chatstat/pkg/stats"
)

// DefaultUnknownLabel names senders that never supplied a display name.
const DefaultUnknownLabel = "Unknown"

// Options controls rendering.
type Options struct {
	Color        bool   // emit ANSI styling
	UnknownLabel string // label for senders without a display name
	TopUsers     int    // 0 = all users
}

// Renderer writes the report for one analyzed export.
type Renderer struct {
	w       io.Writer
	opts    Options
	header  func(a ...interface{}) string
	section func(a ...interface{}) string
	em      func(a ...interface{}) string
}

// New creates a renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	if opts.UnknownLabel == "" {
		opts.UnknownLabel = DefaultUnknownLabel
	}
	r := &Renderer{w: w, opts: opts}
	if opts.Color {
		r.header = color.New(color.FgHiCyan, color.Bold).SprintFunc()
		r.section = color.New(color.FgCyan, color.Bold).SprintFunc()
		r.em = color.New(color.Bold).SprintFunc()
	} else {
		r.header = fmt.Sprint
		r.section = fmt.Sprint
		r.em = fmt.Sprint
	}
	return r
}

// Render writes the full report: grand total, one block per user in
// message-count order, then the peak activity window.
func (r *Renderer) Render(res *stats.Result, views map[string]stats.PercentageView, peak stats.PeakWindow) {
	fmt.Fprintln(r.w, r.header("Chat statistics"))
	fmt.Fprintf(r.w, "Total messages: %s\n\n", r.em(res.Total))

	ids := stats.SortedIDs(res.Users)
	if r.opts.TopUsers > 0 && len(ids) > r.opts.TopUsers {
		ids = ids[:r.opts.TopUsers]
	}

	for _, id := range ids {
		r.renderUser(id, res, views[id])
	}

	r.renderPeak(peak)
}

// DisplayName resolves a sender id against the name index.
func (r *Renderer) DisplayName(id string, names map[string]string) string {
	if name := names[id]; name != "" {
		return name
	}
	return r.opts.UnknownLabel
}

func (r *Renderer) renderUser(id string, res *stats.Result, view stats.PercentageView) {
	stat := res.Users[id]

	fmt.Fprintf(r.w, "%s (%s)\n", r.section(r.DisplayName(id, res.Names)), id)
	fmt.Fprintf(r.w, "  messages: %d (%s of chat)\n",
		stat.Messages, stats.FormatPercent(view.TotalShare))

	r.mediaLine("photos", stat.Photos, view.Photos)
	r.mediaLine("video messages", stat.VideoMessages, view.VideoMessages)
	r.mediaLine("video files", stat.VideoFiles, view.VideoFiles)
	r.mediaLine("voice messages", stat.VoiceMessages, view.VoiceMessages)
	r.mediaLine("stickers", stat.Stickers, view.Stickers)
	fmt.Fprintln(r.w)
}

func (r *Renderer) mediaLine(label string, count int, s stats.MediaShare) {
	fmt.Fprintf(r.w, "  %-15s %d (%s of user, %s of chat)\n",
		label+":", count, stats.FormatPercent(s.OfUser), stats.FormatPercent(s.OfTotal))
}

func (r *Renderer) renderPeak(peak stats.PeakWindow) {
	fmt.Fprintln(r.w, r.section("Peak activity"))
	if peak.Hour < 0 {
		fmt.Fprintln(r.w, "  no messages with a timestamp")
		return
	}
	fmt.Fprintf(r.w, "  %s %s: %s messages\n",
		r.em(peak.Day), HourRange(peak.Hour), r.em(peak.Count))
	fmt.Fprintf(r.w, "  average per active hour that day: %.2f\n", peak.AvgPerActiveHour)
}

// HourRange formats an hour bucket as "HH:00 - HH:00".
func HourRange(hour int) string {
	return fmt.Sprintf("%02d:00 - %02d:00", hour, hour+1)
}
