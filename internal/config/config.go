// Package config handles presentation-layer preferences.
//
// Preferences are optional: the organizer core never reads them, and a
// missing file simply yields defaults. The file covers display language,
// the default separator, and watch-mode tuning.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidTOML     ConfigErrorType = "INVALID_TOML"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during preference loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("preferences file not found: %s", e.Path)
	case InvalidTOML:
		return fmt.Sprintf("invalid TOML in preferences file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("preferences validation error: %s", e.Message)
	default:
		return fmt.Sprintf("preferences error: %s", e.Message)
	}
}

// WatchPreferences tunes watch mode.
type WatchPreferences struct {
	DebounceSeconds int      `toml:"debounce_seconds"`
	IgnorePatterns  []string `toml:"ignore_patterns"`
}

// Preferences holds the presentation-layer settings.
type Preferences struct {
	Language  string           `toml:"language"`
	Separator string           `toml:"separator"`
	Watch     WatchPreferences `toml:"watch"`
}

// Default returns the built-in preferences.
func Default() *Preferences {
	return &Preferences{
		Language:  "", // Empty means detect from the environment
		Separator: "-",
		Watch: WatchPreferences{
			DebounceSeconds: 2,
			IgnorePatterns:  []string{"*.tmp", "*.part", "*.download", ".*"},
		},
	}
}

// Validate checks that the preferences are usable.
func (p *Preferences) Validate() error {
	if p.Separator == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "separator cannot be empty",
		}
	}
	if strings.ContainsAny(p.Separator, "/\\") {
		return &ConfigError{
			Type:    ValidationError,
			Message: "separator cannot contain path separators",
		}
	}
	if p.Watch.DebounceSeconds < 0 {
		return &ConfigError{
			Type:    ValidationError,
			Message: "watch.debounce_seconds cannot be negative",
		}
	}
	return nil
}

// Load reads and parses a preferences file from the given path.
func Load(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Type: FileNotFound, Path: path}
		}
		return nil, &ConfigError{Type: FileNotFound, Path: path, Message: err.Error()}
	}

	prefs := Default()
	if err := toml.Unmarshal(data, prefs); err != nil {
		return nil, &ConfigError{Type: InvalidTOML, Path: path, Message: err.Error()}
	}

	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}

// LoadOrDefault loads preferences if the file exists, or returns defaults
// when it doesn't. Parse and validation failures are still reported.
func LoadOrDefault(path string) (*Preferences, error) {
	prefs, err := Load(path)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) && ce.Type == FileNotFound {
			return Default(), nil
		}
		return nil, err
	}
	return prefs, nil
}
