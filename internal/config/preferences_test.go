package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sndkit/audiotui/internal/theme"
)

func TestLoadPreferencesMissingFile(t *testing.T) {
	prefs, err := LoadPreferences(filepath.Join(t.TempDir(), "preferences.yaml"))

	require.NoError(t, err, "first runs work without setup")
	assert.Equal(t, "audioui", prefs.Theme)
}

func TestPreferencesRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audiotui", "preferences.yaml")

	require.NoError(t, SavePreferences(path, Preferences{Theme: "ocean"}))

	prefs, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, "ocean", prefs.Theme)
}

func TestSavePreferencesCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "preferences.yaml")

	require.NoError(t, SavePreferences(path, Preferences{Theme: "midnight"}))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSavePreferencesRejectsEmptyTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.Error(t, SavePreferences(path, Preferences{}))
}

func TestLoadPreferencesUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: vaporwave\n"), 0o644))

	prefs, err := LoadPreferences(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Equal(t, "audioui", prefs.Theme, "stale names fall back to the default")
}

func TestLoadPreferencesAcceptsAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o644))

	prefs, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs.Theme)
}

func TestLoadPreferencesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [broken\n"), 0o644))

	prefs, err := LoadPreferences(path)
	require.Error(t, err)
	assert.Equal(t, "audioui", prefs.Theme)
}

func TestLoadPreferencesEmptyTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: \"\"\n"), 0o644))

	_, err := LoadPreferences(path)
	require.Error(t, err)
}
