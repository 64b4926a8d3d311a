package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains all tool handlers for the chatstat MCP server.
type Handlers struct {
	state *State
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(state *State) *Handlers {
	return &Handlers{state: state}
}

const notLoadedMsg = "No export loaded. Use chatstat_load with a file path first."

// HandleLoad handles the chatstat_load tool.
func (h *Handlers) HandleLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}

	if err := h.state.LoadFile(path); err != nil {
		return mcp.NewToolResultErrorFromErr("Load failed", err), nil
	}

	result, _, _, _ := h.state.Snapshot()
	text := fmt.Sprintf("Loaded %s\nMessages: %d (%d attributed to %d users)",
		path, result.Total, result.Attributed, len(result.Users))
	if name := h.state.ChatName(); name != "" {
		text = fmt.Sprintf("Loaded %q from %s\nMessages: %d (%d attributed to %d users)",
			name, path, result.Total, result.Attributed, len(result.Users))
	}
	return mcp.NewToolResultText(text), nil
}

// HandleOverview handles the chatstat_overview tool.
func (h *Handlers) HandleOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, views, _, ok := h.state.Snapshot()
	if !ok {
		return mcp.NewToolResultText(notLoadedMsg), nil
	}

	text := FormatOverview(h.state.ChatName(), result, views)
	return mcp.NewToolResultText(text), nil
}

// HandleUsers handles the chatstat_users tool.
func (h *Handlers) HandleUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, views, _, ok := h.state.Snapshot()
	if !ok {
		return mcp.NewToolResultText(notLoadedMsg), nil
	}

	if user := req.GetString("user", ""); user != "" {
		if _, exists := result.Users[user]; !exists {
			return mcp.NewToolResultError(fmt.Sprintf("unknown user: %s", user)), nil
		}
		return mcp.NewToolResultText(FormatUser(user, result, views[user])), nil
	}

	limit := req.GetInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	text := FormatUsers(result, views, limit)
	return mcp.NewToolResultText(text), nil
}

// HandlePeak handles the chatstat_peak tool.
func (h *Handlers) HandlePeak(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, _, peak, ok := h.state.Snapshot()
	if !ok {
		return mcp.NewToolResultText(notLoadedMsg), nil
	}

	text := FormatPeak(peak, result)
	return mcp.NewToolResultText(text), nil
}
