// Package config resolves the shelf data directory and loads the
// user's settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	profileFileName  = "profile.xml"
	metadataFileName = "metadata.db"
)

// Config holds resolved paths for the shelf directory and its files.
type Config struct {
	ShelfDir       string // resolved data directory
	SettingsPath   string // settings.yaml inside the shelf directory
	ProfilePath    string // default profile document location
	MetadataDBPath string // catalog metadata database
	EnvVarSet      bool   // whether SHELF_PATH was used
}

// Resolve returns the current configuration by checking SHELF_PATH
// first, then falling back to $HOME/.shelf.
func Resolve() (*Config, error) {
	var shelfDir string
	var envVarSet bool

	if envPath := os.Getenv("SHELF_PATH"); envPath != "" {
		shelfDir = envPath
		envVarSet = true
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		shelfDir = filepath.Join(home, ".shelf")
	}

	return &Config{
		ShelfDir:       shelfDir,
		SettingsPath:   filepath.Join(shelfDir, settingsFileName),
		ProfilePath:    filepath.Join(shelfDir, profileFileName),
		MetadataDBPath: filepath.Join(shelfDir, metadataFileName),
		EnvVarSet:      envVarSet,
	}, nil
}

// Exists checks whether the shelf directory and profile document both
// exist. It returns an error for non-existence failures (e.g.
// permission errors).
func (c *Config) Exists() (bool, error) {
	if _, err := os.Stat(c.ShelfDir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if _, err := os.Stat(c.ProfilePath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Settings are the user-tunable knobs persisted as YAML in the shelf
// directory. Unknown keys in the file are ignored; missing keys keep
// their defaults.
type Settings struct {
	// ListSource selects the remote fetch method: "xml-preferred",
	// "xml", or "website".
	ListSource string `yaml:"list_source"`

	// BackupCount is how many rotating profile backups to keep.
	BackupCount int `yaml:"backup_count"`

	// SteamPath is the local Steam installation root, used for
	// account discovery. Empty disables discovery.
	SteamPath string `yaml:"steam_path"`

	// WorkerMinimum is the minimum worker count for name resolution.
	WorkerMinimum int `yaml:"worker_minimum"`

	LogLevel  string `yaml:"log_level"`
	LogPretty bool   `yaml:"log_pretty"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		ListSource:    "xml-preferred",
		BackupCount:   3,
		WorkerMinimum: 3,
		LogLevel:      "info",
		LogPretty:     true,
	}
}

// LoadSettings reads the settings file at path. A missing file yields
// the defaults without error; an unreadable or malformed file is an
// error.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Save writes the settings as YAML to path.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
