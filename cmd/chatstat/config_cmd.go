package main

import (
	"github.com/spf13/cobra"

	"github.com/avelichko/chatstat/pkg/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := getOutputPrinter()
		cfg := config.Get()

		if printer.IsJSON() {
			return printer.Success(cfg)
		}

		printer.Printf("color: %s\n", cfg.Color)
		printer.Printf("unknown_label: %s\n", cfg.UnknownLabel)
		printer.Printf("top_users: %d\n", cfg.TopUsers)
		printer.Printf("attributed_histogram: %t\n", cfg.AttributedHistogram)
		return nil
	},
}
