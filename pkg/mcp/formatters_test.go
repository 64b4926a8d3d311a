package mcp

import (
	"strings"
	"testing"

	"github.com/avelichko/chatstat/pkg/stats"
)

func TestFormatOverview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		chatName string
		result   *stats.Result
		contains []string
	}{
		{
			name:     "no users",
			chatName: "",
			result: &stats.Result{
				Total:     2,
				Users:     map[string]*stats.UserStat{},
				Names:     map[string]string{},
				Histogram: stats.Histogram{},
			},
			contains: []string{"Total messages: 2", "Participants: 0"},
		},
		{
			name:     "with chat name and users",
			chatName: "book club",
			result: &stats.Result{
				Total:      4,
				Attributed: 3,
				Users: map[string]*stats.UserStat{
					"u1": {Messages: 2},
					"u2": {Messages: 1},
				},
				Names:     map[string]string{"u1": "Ann"},
				Histogram: stats.Histogram{},
			},
			contains: []string{
				"Chat: book club",
				"Attributed messages: 3",
				"Ann (u1): 2 messages",
				"Unknown (u2): 1 messages",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			views := stats.Percentages(tt.result.Users, tt.result.Total)
			text := FormatOverview(tt.chatName, tt.result, views)
			for _, want := range tt.contains {
				if !strings.Contains(text, want) {
					t.Errorf("overview missing %q\n--- got ---\n%s", want, text)
				}
			}
		})
	}
}

func TestFormatUser_NotFound(t *testing.T) {
	t.Parallel()

	result := &stats.Result{Users: map[string]*stats.UserStat{}}
	if got := FormatUser("ghost", result, stats.PercentageView{}); got != "[User not found]" {
		t.Errorf("FormatUser() = %q, want placeholder", got)
	}
}

func TestFormatUsers_Empty(t *testing.T) {
	t.Parallel()

	result := &stats.Result{Users: map[string]*stats.UserStat{}}
	got := FormatUsers(result, nil, 10)
	if !strings.Contains(got, "No attributed messages") {
		t.Errorf("FormatUsers() = %q, want empty-export notice", got)
	}
}

func TestFormatPeak(t *testing.T) {
	t.Parallel()

	result := &stats.Result{
		Histogram: stats.Histogram{"Monday": {10: 2, 14: 1}},
	}
	peak := stats.Peak(result.Histogram)

	text := FormatPeak(peak, result)
	for _, want := range []string{
		"Busiest window: Monday 10:00 - 11:00",
		"Messages in that window: 2",
		"Average per active hour on Monday: 1.00",
		"Active hour buckets on Monday: 2",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("peak text missing %q\n--- got ---\n%s", want, text)
		}
	}
}

func TestFormatPeak_Empty(t *testing.T) {
	t.Parallel()

	result := &stats.Result{Histogram: stats.Histogram{}}
	peak := stats.Peak(result.Histogram)

	if got := FormatPeak(peak, result); !strings.Contains(got, "No messages with a timestamp") {
		t.Errorf("FormatPeak() = %q, want empty notice", got)
	}
}
