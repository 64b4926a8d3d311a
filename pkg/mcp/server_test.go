package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avelichko/chatstat/pkg/stats"
)

func TestNewServer(t *testing.T) {
	oldExport := os.Getenv("CHATSTAT_EXPORT")
	defer os.Setenv("CHATSTAT_EXPORT", oldExport)

	t.Run("empty session by default", func(t *testing.T) {
		os.Unsetenv("CHATSTAT_EXPORT")

		server := NewServer(stats.Options{})

		if server == nil {
			t.Fatal("NewServer() returned nil")
		}
		if server.mcpServer == nil {
			t.Error("server.mcpServer is nil")
		}
		if server.handlers == nil {
			t.Error("server.handlers is nil")
		}
		if server.GetState().IsLoaded() {
			t.Error("expected empty session without CHATSTAT_EXPORT")
		}
	})

	t.Run("preloads export from env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.json")
		if err := os.WriteFile(path, []byte(sampleExport), 0600); err != nil {
			t.Fatal(err)
		}
		os.Setenv("CHATSTAT_EXPORT", path)

		server := NewServer(stats.Options{})

		if !server.GetState().IsLoaded() {
			t.Error("expected preloaded session with CHATSTAT_EXPORT set")
		}
		if server.GetState().Path() != path {
			t.Errorf("Path() = %q, want %q", server.GetState().Path(), path)
		}
	})

	t.Run("broken preload is not fatal", func(t *testing.T) {
		os.Setenv("CHATSTAT_EXPORT", "/does/not/exist.json")

		server := NewServer(stats.Options{})

		if server == nil {
			t.Fatal("NewServer() returned nil")
		}
		if server.GetState().IsLoaded() {
			t.Error("broken preload must leave the session empty")
		}
	})
}

func TestServer_GetMCPServer(t *testing.T) {
	oldExport := os.Getenv("CHATSTAT_EXPORT")
	defer os.Setenv("CHATSTAT_EXPORT", oldExport)
	os.Unsetenv("CHATSTAT_EXPORT")

	server := NewServer(stats.Options{})
	if server.GetMCPServer() == nil {
		t.Error("GetMCPServer() returned nil")
	}
}
