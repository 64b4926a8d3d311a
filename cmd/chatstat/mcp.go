package main

import (
	"github.com/spf13/cobra"

	"github.com/avelichko/chatstat/pkg/mcp"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run MCP (Model Context Protocol) server",
	Long: `Run an MCP server that exposes chat export statistics to AI assistants.

The server communicates over stdio using the Model Context Protocol.

Available tools:
  chatstat_load       - Load and analyze an export file
  chatstat_overview   - Grand total and per-user message table
  chatstat_users      - Detailed per-user stats with percentage shares
  chatstat_peak       - Busiest weekday/hour window

Environment variables:
  CHATSTAT_EXPORT     - Export file to load at startup (skip chatstat_load)
  CHATSTAT_CONFIG_DIR - Custom config directory

Example MCP configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "chatstat": {
        "command": "chatstat",
        "args": ["mcp"],
        "env": {
          "CHATSTAT_EXPORT": "/path/to/result.json"
        }
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(statsOptions())
		return server.ServeContext(cmd.Context())
	},
}
