// Package mcp provides an MCP server exposing chat export statistics.
package mcp

import (
	"fmt"
	"sync"

	"github.com/avelichko/chatstat/pkg/export"
	"github.com/avelichko/chatstat/pkg/stats"
)

// State holds the in-memory analysis session for the MCP server: one loaded
// export plus the derived statistics. Loading a new export replaces the
// previous one.
type State struct {
	mu     sync.RWMutex
	path   string
	export *export.Export
	result *stats.Result
	views  map[string]stats.PercentageView
	peak   stats.PeakWindow
	opts   stats.Options
}

// NewState creates an empty analysis session.
func NewState(opts stats.Options) *State {
	return &State{opts: opts}
}

// LoadFile parses an export file and runs the full pipeline over it.
func (s *State) LoadFile(path string) error {
	ex, err := export.Load(path)
	if err != nil {
		return err
	}
	s.setExport(path, ex)
	return nil
}

// LoadData parses export content directly. Tests use it to avoid disk.
func (s *State) LoadData(name string, data []byte) error {
	ex, err := export.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	s.setExport(name, ex)
	return nil
}

func (s *State) setExport(path string, ex *export.Export) {
	result := stats.Aggregate(ex.Messages, s.opts)
	views := stats.Percentages(result.Users, result.Total)
	peak := stats.Peak(result.Histogram)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	s.export = ex
	s.result = result
	s.views = views
	s.peak = peak
}

// IsLoaded reports whether an export has been analyzed.
func (s *State) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result != nil
}

// Path returns the source of the loaded export.
func (s *State) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// ChatName returns the chat name from the loaded export, if any.
func (s *State) ChatName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.export == nil {
		return ""
	}
	return s.export.Name
}

// Snapshot returns the derived statistics. ok is false when nothing is
// loaded. The returned structures are shared and must be treated read-only.
func (s *State) Snapshot() (result *stats.Result, views map[string]stats.PercentageView, peak stats.PeakWindow, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil, nil, stats.PeakWindow{Hour: -1}, false
	}
	return s.result, s.views, s.peak, true
}
