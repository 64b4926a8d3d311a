package main

import (
	"github.com/spf13/cobra"

	"github.com/avelichko/chatstat/pkg/report"
)

func init() {
	rootCmd.AddCommand(peakCmd)
}

var peakCmd = &cobra.Command{
	Use:   "peak <export.json>",
	Short: "Show the busiest weekday/hour window only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := getOutputPrinter()

		_, result, _, peak, err := analyzeFile(args[0])
		if err != nil {
			if printer.IsJSON() {
				printer.Error(err)
			}
			return err
		}

		if printer.IsJSON() {
			return printer.Success(peak)
		}

		if peak.Hour < 0 {
			printer.Println("no messages with a timestamp")
			return nil
		}

		printer.Printf("%s %s: %d messages\n", peak.Day, report.HourRange(peak.Hour), peak.Count)
		printer.Printf("average per active hour that day: %.2f (%d active hours)\n",
			peak.AvgPerActiveHour, len(result.Histogram[peak.Day]))
		return nil
	},
}
