// Package config persists the one piece of state audiotui keeps between
// runs — the selected theme name — and loads user palette files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sndkit/audiotui/internal/theme"
)

var validate = validator.New()

// Preferences is the on-disk preference file. Only the theme name is stored;
// the theme itself always resolves through the registry at startup.
type Preferences struct {
	Theme string `yaml:"theme" validate:"required"`
}

// DefaultPath returns the preference file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "audiotui", "preferences.yaml"), nil
}

// LoadPreferences reads preferences from path. A missing file is not an
// error: it returns defaults so first runs work without setup.
func LoadPreferences(path string) (Preferences, error) {
	defaults := Preferences{Theme: theme.Default().Look.Name()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("read preferences: %w", err)
	}

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return defaults, fmt.Errorf("parse preferences %s: %w", path, err)
	}
	if err := validate.Struct(prefs); err != nil {
		return defaults, fmt.Errorf("invalid preferences %s: %w", path, err)
	}

	// A stale theme name is a configuration error surfaced here, where the
	// name enters the process.
	if _, err := theme.Get(prefs.Theme); err != nil {
		return defaults, fmt.Errorf("preferences %s: %w", path, err)
	}
	return prefs, nil
}

// SavePreferences writes preferences atomically: temp file, then rename.
func SavePreferences(path string, prefs Preferences) error {
	if err := validate.Struct(prefs); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preference directory: %w", err)
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}
