package stats

import "time"

// PeakWindow is the single busiest weekday/hour cell of a histogram.
type PeakWindow struct {
	Day   string `json:"day"`  // "" when the histogram is empty
	Hour  int    `json:"hour"` // -1 when the histogram is empty
	Count int    `json:"count"`
	// AvgPerActiveHour is the peak count divided by the number of distinct
	// hour buckets recorded for the peak day. It measures how much the
	// peak hour stands out within its day, so the denominator is active
	// hours, not 24.
	AvgPerActiveHour float64 `json:"avg_per_active_hour"`
}

// Peak scans the histogram for the cell with the greatest count. The scan
// walks weekdays in time.Weekday order (Sunday first) and hours ascending,
// and only a strictly greater count displaces the current best, so ties
// resolve deterministically to the earliest weekday, then the lowest hour.
func Peak(h Histogram) PeakWindow {
	peak := PeakWindow{Day: "", Hour: -1, Count: 0}

	for d := time.Sunday; d <= time.Saturday; d++ {
		day := d.String()
		hours := h[day]
		if hours == nil {
			continue
		}
		for hour := 0; hour < 24; hour++ {
			if count := hours[hour]; count > peak.Count {
				peak.Day = day
				peak.Hour = hour
				peak.Count = count
			}
		}
	}

	if peak.Day != "" {
		if active := len(h[peak.Day]); active > 0 {
			peak.AvgPerActiveHour = float64(peak.Count) / float64(active)
		}
	}

	return peak
}
