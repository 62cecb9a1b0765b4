// Package config persists the workbench's small settings file:
// {"theme": "light"|"dark"|"system"}. Theme preference is the only state
// that survives a restart.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Settings models the persisted file. Only fields used by this program
// are modeled.
type Settings struct {
	Theme string `json:"theme,omitempty"`
}

// DefaultPath returns the per-user settings location, creating parent
// directories as needed.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join("evalbench", "settings.json"))
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return p, nil
}

// Load reads settings from path. A missing file is not an error; it yields
// zero settings so first runs fall back to defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings JSON: %w", err)
	}
	return &s, nil
}

// Save writes settings to path atomically enough for a single-user file.
func Save(path string, s *Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
