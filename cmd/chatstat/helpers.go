package main

import (
	"github.com/fatih/color"

	"github.com/avelichko/chatstat/pkg/config"
	"github.com/avelichko/chatstat/pkg/export"
	"github.com/avelichko/chatstat/pkg/output"
	"github.com/avelichko/chatstat/pkg/stats"
)

// getOutputPrinter creates an output printer based on global flags
func getOutputPrinter() *output.Printer {
	format := output.FormatHuman
	if flagJSON {
		format = output.FormatJSON
	} else if flagRaw {
		format = output.FormatRaw
	}

	return output.New(format, flagQuiet)
}

// statsOptions resolves aggregation options from flags and config.
func statsOptions() stats.Options {
	return stats.Options{
		AttributedOnly: flagAttributedOnly || config.Get().AttributedHistogram,
	}
}

// colorEnabled resolves the color setting: flag beats config beats terminal
// detection (fatih/color sets color.NoColor when stdout is not a TTY).
func colorEnabled() bool {
	if flagNoColor || flagRaw {
		return false
	}
	switch config.Get().Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

// unknownLabel resolves the placeholder for senders without a display name.
func unknownLabel() string {
	return config.Get().UnknownLabel
}

// topUsers resolves the user block cap from flags and config.
func topUsers() int {
	if flagTop > 0 {
		return flagTop
	}
	return config.Get().TopUsers
}

// analyzeFile runs the full pipeline over one export file.
func analyzeFile(path string) (*export.Export, *stats.Result, map[string]stats.PercentageView, stats.PeakWindow, error) {
	ex, err := export.Load(path)
	if err != nil {
		return nil, nil, nil, stats.PeakWindow{}, err
	}

	result := stats.Aggregate(ex.Messages, statsOptions())
	views := stats.Percentages(result.Users, result.Total)
	peak := stats.Peak(result.Histogram)
	return ex, result, views, peak, nil
}
