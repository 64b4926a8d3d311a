package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPercentages(t *testing.T) {
	t.Parallel()

	users := map[string]*UserStat{
		"u1": {Messages: 2, Photos: 1},
		"u2": {Messages: 1, Stickers: 1},
	}

	views := Percentages(users, 4)

	if got := views["u1"].TotalShare; !almostEqual(got, 50) {
		t.Errorf("u1 TotalShare = %v, want 50", got)
	}
	if got := views["u1"].Photos; !almostEqual(got.OfUser, 50) || !almostEqual(got.OfTotal, 25) {
		t.Errorf("u1 Photos = %+v, want {50 25}", got)
	}
	if got := views["u2"].Stickers; !almostEqual(got.OfUser, 100) || !almostEqual(got.OfTotal, 25) {
		t.Errorf("u2 Stickers = %+v, want {100 25}", got)
	}
	if got := views["u2"].VideoFiles; !almostEqual(got.OfUser, 0) || !almostEqual(got.OfTotal, 0) {
		t.Errorf("u2 VideoFiles = %+v, want zero shares", got)
	}
}

func TestPercentages_ZeroDenominators(t *testing.T) {
	t.Parallel()

	// Grand total of zero must not produce NaN or Inf anywhere.
	users := map[string]*UserStat{
		"ghost": {},
	}
	views := Percentages(users, 0)

	v := views["ghost"]
	all := []float64{
		v.TotalShare,
		v.Photos.OfUser, v.Photos.OfTotal,
		v.VideoMessages.OfUser, v.VideoMessages.OfTotal,
		v.VideoFiles.OfUser, v.VideoFiles.OfTotal,
		v.VoiceMessages.OfUser, v.VoiceMessages.OfTotal,
		v.Stickers.OfUser, v.Stickers.OfTotal,
	}
	for i, got := range all {
		if got != 0 || math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("share %d = %v, want exactly 0", i, got)
		}
	}
	if got := FormatPercent(v.TotalShare); got != "0.00%" {
		t.Errorf("FormatPercent = %q, want %q", got, "0.00%")
	}
}

func TestPercentages_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	stat := &UserStat{Messages: 3, Photos: 2}
	users := map[string]*UserStat{"u": stat}

	Percentages(users, 10)

	if stat.Messages != 3 || stat.Photos != 2 {
		t.Errorf("input mutated: %+v", stat)
	}
}

func TestPercentages_TotalSharesSumForOneKind(t *testing.T) {
	t.Parallel()

	// Summed over users, one kind's OfTotal equals that kind's share of
	// the grand total.
	users := map[string]*UserStat{
		"a": {Messages: 4, Photos: 2},
		"b": {Messages: 3, Photos: 1},
		"c": {Messages: 1},
	}
	total := 10 // 8 attributed + 2 senderless
	views := Percentages(users, total)

	sum := 0.0
	photos := 0
	for id, stat := range users {
		sum += views[id].Photos.OfTotal
		photos += stat.Photos
	}
	want := float64(photos) / float64(total) * 100
	if !almostEqual(sum, want) {
		t.Errorf("sum of photo OfTotal = %v, want %v", sum, want)
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00%"},
		{50, "50.00%"},
		{33.333333, "33.33%"},
		{66.666666, "66.67%"},
		{100, "100.00%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
