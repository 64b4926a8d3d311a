package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolDefinitions returns all tool definitions for the chatstat MCP server.
func ToolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		toolLoad(),
		toolOverview(),
		toolUsers(),
		toolPeak(),
	}
}

func toolLoad() mcp.Tool {
	return mcp.NewTool("chatstat_load",
		mcp.WithDescription("Load and analyze a chat export JSON file. Required before querying statistics."),
		mcp.WithString("path",
			mcp.Description("Path to the export file (Telegram Desktop JSON export)"),
			mcp.Required(),
		),
	)
}

func toolOverview() mcp.Tool {
	return mcp.NewTool("chatstat_overview",
		mcp.WithDescription("Get the grand total, number of participants and a per-user message table for the loaded export."),
	)
}

func toolUsers() mcp.Tool {
	return mcp.NewTool("chatstat_users",
		mcp.WithDescription("Get detailed per-user statistics: message count, media breakdown and percentage shares."),
		mcp.WithString("user",
			mcp.Description("Sender id to show (default: all users)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max users returned, busiest first (default 10)"),
		),
	)
}

func toolPeak() mcp.Tool {
	return mcp.NewTool("chatstat_peak",
		mcp.WithDescription("Get the busiest weekday/hour window of the loaded export."),
	)
}
