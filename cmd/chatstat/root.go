package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avelichko/chatstat/pkg/config"
)

var (
	// Global flags
	flagJSON           bool
	flagRaw            bool
	flagQuiet          bool
	flagNoColor        bool
	flagAttributedOnly bool
	flagTop            int

	// Version metadata (filled by goreleaser)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "chatstat [export.json]",
	Short: "Chat export statistics",
	Long:  "Analyze a chat export JSON file: per-user message and media counts, percentage shares and the busiest weekday/hour window.",
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if _, err := config.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
			os.Exit(1)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runAnalyze(args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagRaw, "raw", false, "Minimal human output (no decoration)")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI styling")
	rootCmd.PersistentFlags().BoolVar(&flagAttributedOnly, "attributed-only", false, "Count only sender-attributed messages in the time histogram")
	rootCmd.PersistentFlags().IntVar(&flagTop, "top", 0, "Max user blocks in the report (0 = all)")
}

func Execute() error {
	return rootCmd.Execute()
}
