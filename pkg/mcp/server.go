package mcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/avelichko/chatstat/pkg/stats"
)

const (
	// ServerName is the name of the MCP server.
	ServerName = "chatstat-mcp"
	// ServerVersion is the version of the MCP server.
	ServerVersion = "0.1.0"
)

// Server wraps the MCP server with chatstat-specific functionality.
type Server struct {
	mcpServer *server.MCPServer
	state     *State
	handlers  *Handlers
}

// NewServer creates a new chatstat MCP server. When CHATSTAT_EXPORT points at
// an export file it is loaded eagerly so clients can query without an
// explicit chatstat_load call.
func NewServer(opts stats.Options) *Server {
	state := NewState(opts)
	handlers := NewHandlers(state)

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcpServer: mcpServer,
		state:     state,
		handlers:  handlers,
	}

	if path := os.Getenv("CHATSTAT_EXPORT"); path != "" {
		// A broken preload is not fatal; chatstat_load still works.
		_ = state.LoadFile(path)
	}

	s.registerTools()

	return s
}

// registerTools registers all chatstat tools with the MCP server.
func (s *Server) registerTools() {
	for _, tool := range ToolDefinitions() {
		switch tool.Name {
		case "chatstat_load":
			s.mcpServer.AddTool(tool, s.handlers.HandleLoad)
		case "chatstat_overview":
			s.mcpServer.AddTool(tool, s.handlers.HandleOverview)
		case "chatstat_users":
			s.mcpServer.AddTool(tool, s.handlers.HandleUsers)
		case "chatstat_peak":
			s.mcpServer.AddTool(tool, s.handlers.HandlePeak)
		}
	}
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeContext starts the MCP server on stdio with a context.
func (s *Server) ServeContext(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer, server.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// GetMCPServer returns the underlying MCP server for testing.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// GetState returns the analysis session for testing.
func (s *Server) GetState() *State {
	return s.state
}
