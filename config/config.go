package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persisted user preferences. Analysis itself keeps no state
// between sessions; this only remembers UI selections.
type Config struct {
	KeyIndex      int    `json:"keyIndex"`                // selected key signature, catalog index
	PreferredPort string `json:"preferredPort,omitempty"` // MIDI input to prefer when several are present
	Debug         bool   `json:"debug,omitempty"`         // write a debug log file
}

// DefaultConfig returns a config with sensible defaults (C Major).
func DefaultConfig() *Config {
	return &Config{}
}

// Dir returns the config directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "chordscope"), nil
}

// Path returns the full path to config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
