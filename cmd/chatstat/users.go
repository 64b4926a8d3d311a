package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avelichko/chatstat/pkg/stats"
)

func init() {
	rootCmd.AddCommand(usersCmd)
}

var usersCmd = &cobra.Command{
	Use:   "users <export.json>",
	Short: "Show the per-user message table only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := getOutputPrinter()

		_, result, views, _, err := analyzeFile(args[0])
		if err != nil {
			if printer.IsJSON() {
				printer.Error(err)
			}
			return err
		}

		if printer.IsJSON() {
			return printer.Success(struct {
				Total       int                             `json:"total"`
				Users       map[string]*stats.UserStat      `json:"users"`
				Names       map[string]string               `json:"names"`
				Percentages map[string]stats.PercentageView `json:"percentages"`
			}{result.Total, result.Users, result.Names, views})
		}

		ids := stats.SortedIDs(result.Users)
		if top := topUsers(); top > 0 && len(ids) > top {
			ids = ids[:top]
		}

		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			name := result.Names[id]
			if name == "" {
				name = unknownLabel()
			}
			rows = append(rows, []string{
				name,
				id,
				strconv.Itoa(result.Users[id].Messages),
				stats.FormatPercent(views[id].TotalShare),
			})
		}

		return printer.Table([]string{"NAME", "ID", "MESSAGES", "SHARE"}, rows)
	},
}
