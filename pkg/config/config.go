// Package config handles local configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

var (
	mu         sync.RWMutex
	globalCfg  *Config
	configPath string
)

// Config represents the CLI configuration.
type Config struct {
	// Color is one of "auto", "always", "never".
	Color string `json:"color"`
	// UnknownLabel names senders without a display name in reports.
	UnknownLabel string `json:"unknown_label"`
	// TopUsers caps the user blocks in the report; 0 means all.
	TopUsers int `json:"top_users,omitempty"`
	// AttributedHistogram restricts the time histogram to messages that
	// carry a sender id.
	AttributedHistogram bool `json:"attributed_histogram,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Color:        "auto",
		UnknownLabel: "Unknown",
	}
}

// Load reads the configuration from disk, creating defaults if needed.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg != nil {
		return globalCfg, nil
	}

	dir := os.Getenv("CHATSTAT_CONFIG_DIR")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(homeDir, ".chatstat")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	configPath = filepath.Join(dir, "config.json")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		globalCfg = Default()
		if err := save(globalCfg); err != nil {
			return nil, fmt.Errorf("save default config: %w", err)
		}
		return applyEnv(globalCfg), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if cfg.UnknownLabel == "" {
		cfg.UnknownLabel = "Unknown"
	}

	globalCfg = &cfg
	return applyEnv(globalCfg), nil
}

// applyEnv overrides loaded settings from the environment.
func applyEnv(cfg *Config) *Config {
	if c := os.Getenv("CHATSTAT_COLOR"); c != "" {
		cfg.Color = c
	}
	return cfg
}

// save writes the config to disk.
func save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Save persists the current config to disk.
func Save() error {
	mu.Lock()
	defer mu.Unlock()

	if globalCfg == nil {
		return fmt.Errorf("no config loaded")
	}

	return save(globalCfg)
}

// Get returns the loaded config, loading it on first use.
func Get() *Config {
	mu.RLock()
	cfg := globalCfg
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Reset clears the loaded config so the next Load rereads disk. Tests use it
// together with CHATSTAT_CONFIG_DIR.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalCfg = nil
	configPath = ""
}
