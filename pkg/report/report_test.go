package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/avelichko/chatstat/pkg/stats"
)

func sampleResult() (*stats.Result, map[string]stats.PercentageView, stats.PeakWindow) {
	res := &stats.Result{
		Total:      4,
		Attributed: 3,
		Users: map[string]*stats.UserStat{
			"u1": {Messages: 2, Photos: 1},
			"u2": {Messages: 1, Stickers: 1},
		},
		Names: map[string]string{"u1": "Ann"},
		Histogram: stats.Histogram{
			"Monday":  {10: 2, 14: 1},
			"Tuesday": {2: 1},
		},
	}
	views := stats.Percentages(res.Users, res.Total)
	peak := stats.Peak(res.Histogram)
	return res, views, peak
}

func TestRender(t *testing.T) {
	t.Parallel()

	res, views, peak := sampleResult()

	var buf bytes.Buffer
	r := New(&buf, Options{})
	r.Render(res, views, peak)

	out := buf.String()
	wantParts := []string{
		"Chat statistics",
		"Total messages: 4",
		"Ann (u1)",
		"messages: 2 (50.00% of chat)",
		"photos:         1 (50.00% of user, 25.00% of chat)",
		"Unknown (u2)",
		"stickers:       1 (100.00% of user, 25.00% of chat)",
		"Peak activity",
		"Monday 10:00 - 11:00: 2 messages",
		"average per active hour that day: 1.00",
	}
	for _, want := range wantParts {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n--- output ---\n%s", want, out)
		}
	}

	// Busiest user first.
	if strings.Index(out, "Ann (u1)") > strings.Index(out, "Unknown (u2)") {
		t.Error("users not ordered by message count")
	}
}

func TestRender_TopUsers(t *testing.T) {
	t.Parallel()

	res, views, peak := sampleResult()

	var buf bytes.Buffer
	r := New(&buf, Options{TopUsers: 1})
	r.Render(res, views, peak)

	out := buf.String()
	if !strings.Contains(out, "(u1)") {
		t.Error("top user missing from capped report")
	}
	if strings.Contains(out, "(u2)") {
		t.Error("capped report should not include the second user")
	}
}

func TestRender_EmptyExport(t *testing.T) {
	t.Parallel()

	res := &stats.Result{
		Users:     map[string]*stats.UserStat{},
		Names:     map[string]string{},
		Histogram: stats.Histogram{},
	}
	views := stats.Percentages(res.Users, res.Total)
	peak := stats.Peak(res.Histogram)

	var buf bytes.Buffer
	New(&buf, Options{}).Render(res, views, peak)

	out := buf.String()
	if !strings.Contains(out, "Total messages: 0") {
		t.Errorf("missing zero total, got %q", out)
	}
	if !strings.Contains(out, "no messages with a timestamp") {
		t.Errorf("missing empty-peak notice, got %q", out)
	}
}

func TestRender_CustomUnknownLabel(t *testing.T) {
	t.Parallel()

	res, views, peak := sampleResult()

	var buf bytes.Buffer
	New(&buf, Options{UnknownLabel: "<anonymous>"}).Render(res, views, peak)

	if !strings.Contains(buf.String(), "<anonymous> (u2)") {
		t.Error("custom unknown label not applied")
	}
}

func TestHourRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want string
	}{
		{0, "00:00 - 01:00"},
		{9, "09:00 - 10:00"},
		{23, "23:00 - 24:00"},
	}
	for _, tt := range tests {
		if got := HourRange(tt.hour); got != tt.want {
			t.Errorf("HourRange(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
