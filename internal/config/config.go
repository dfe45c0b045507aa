// Package config loads and saves the nitfix configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultWebAddr      = "127.0.0.1:8722"
	DefaultBaseBranch   = "main"
	DefaultWakeInterval = 10 // seconds between liveness re-checks while parked
)

// Config represents the flat nitfix configuration
type Config struct {
	Version      string `json:"version"`
	GithubUser   string `json:"github_user,omitempty"`   // fork owner used for pull/new links
	WebAddr      string `json:"web_addr,omitempty"`      // operator web form listen address
	BaseBranch   string `json:"base_branch,omitempty"`   // default PR target branch
	WorkspaceDir string `json:"workspace_dir,omitempty"` // where working copies are checked out
	NoteURL      string `json:"note_url,omitempty"`      // provenance note link embedded in bodies
}

// Dir returns the nitfix state directory (~/.nitfix).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".nitfix"), nil
}

// Load reads config.json from the nitfix state directory and fills defaults.
// Returns error if no config found - caller should handle accordingly.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes config.json to the nitfix state directory.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create .nitfix dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.WebAddr == "" {
		c.WebAddr = DefaultWebAddr
	}
	if c.BaseBranch == "" {
		c.BaseBranch = DefaultBaseBranch
	}
}
