package main

import (
	"github.com/spf13/cobra"

	"github.com/avelichko/chatstat/pkg/report"
	"github.com/avelichko/chatstat/pkg/stats"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <export.json>",
	Short: "Produce the full statistics report for an export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

// analysisBundle is the JSON-mode shape of a full analysis.
type analysisBundle struct {
	Chat        string                          `json:"chat,omitempty"`
	Total       int                             `json:"total"`
	Attributed  int                             `json:"attributed"`
	Users       map[string]*stats.UserStat      `json:"users"`
	Names       map[string]string               `json:"names"`
	Percentages map[string]stats.PercentageView `json:"percentages"`
	Histogram   stats.Histogram                 `json:"histogram"`
	Peak        stats.PeakWindow                `json:"peak"`
}

func runAnalyze(path string) error {
	printer := getOutputPrinter()

	ex, result, views, peak, err := analyzeFile(path)
	if err != nil {
		if printer.IsJSON() {
			printer.Error(err)
		}
		return err
	}

	if printer.IsJSON() {
		return printer.Success(analysisBundle{
			Chat:        ex.Name,
			Total:       result.Total,
			Attributed:  result.Attributed,
			Users:       result.Users,
			Names:       result.Names,
			Percentages: views,
			Histogram:   result.Histogram,
			Peak:        peak,
		})
	}

	r := report.New(printer.Writer(), report.Options{
		Color:        colorEnabled(),
		UnknownLabel: unknownLabel(),
		TopUsers:     topUsers(),
	})
	r.Render(result, views, peak)
	return nil
}
