// Package settings persists the single UI preference the application
// keeps: the dark-mode flag. The file is JSON with a fixed key, loaded
// once at startup and written on every change.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// fileData is the on-disk shape of the settings file.
type fileData struct {
	DarkMode bool `json:"darkMode"`
}

// Store holds the settings and their backing file.
type Store struct {
	path string
	data fileData
}

// Load reads settings from path. A missing or corrupt file yields
// defaults; loading never fails the application.
func Load(path string) *Store {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = fileData{}
	}
	return s
}

// DarkMode returns the current dark-mode preference.
func (s *Store) DarkMode() bool {
	return s.data.DarkMode
}

// SetDarkMode updates the preference and persists it immediately.
func (s *Store) SetDarkMode(on bool) error {
	s.data.DarkMode = on
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
