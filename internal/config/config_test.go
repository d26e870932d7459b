package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/designkit/internal/logging"
	"github.com/renato0307/designkit/internal/theme"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvTheme, "")

	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Nil(t, s.MakeTheme())
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvTheme, "")

	tests := []struct {
		name    string
		content string
		want    theme.Preset
		wantErr bool
	}{
		{name: "identifier", content: "theme: editorialGarden\n", want: theme.PresetEditorialGarden},
		{name: "display name", content: "theme: Porcelain Tech\n", want: theme.PresetPorcelainTech},
		{name: "no theme", content: "log:\n  level: debug\n", want: ""},
		{name: "unknown theme", content: "theme: neon\n", wantErr: true},
		{name: "bad format", content: "log:\n  format: xml\n", wantErr: true},
		{name: "bad level", content: "log:\n  level: loud\n", wantErr: true},
		{name: "not yaml", content: "theme: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeFile(t, tt.content))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSettings)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Theme)
		})
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Setenv(EnvTheme, "")

	s, err := Load(writeFile(t, "theme: clean\nlog:\n  file: /tmp/x.log\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.log", s.Log.File)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, defaultMaxSizeMB, s.Log.MaxSizeMB)
	assert.Equal(t, defaultMaxBackups, s.Log.MaxBackups)
}

func TestEnvironmentOverridesTheme(t *testing.T) {
	t.Setenv(EnvTheme, "botanicalLuxe")

	s, err := Load(writeFile(t, "theme: clean\n"))
	require.NoError(t, err)
	assert.Equal(t, theme.PresetBotanicalLuxe, s.Theme)
}

func TestEnvironmentOverrideMustBeKnown(t *testing.T) {
	t.Setenv(EnvTheme, "neon")

	_, err := Load(writeFile(t, "theme: clean\n"))
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.ErrorIs(t, err, theme.ErrUnknownPreset)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv(EnvTheme, "")

	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	s := Default()
	s.Theme = theme.PresetClassicMono
	s.Log.File = "/tmp/designkit.log"
	s.Log.Format = "json"

	require.NoError(t, Save(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: classicMono")
	assert.Contains(t, string(data), "maxSizeMB: 10")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestSaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s := Default()
	s.Theme = "neon"

	assert.ErrorIs(t, Save(path, s), ErrInvalidSettings)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoggingConfig(t *testing.T) {
	s := Default()
	s.Log = LogSettings{File: "/tmp/a.log", Level: "DEBUG", Format: "JSON", MaxSizeMB: 5, MaxBackups: 1}

	cfg := s.LoggingConfig()
	assert.Equal(t, logging.Config{
		FilePath:   "/tmp/a.log",
		Level:      slog.LevelDebug,
		Format:     logging.FormatJSON,
		MaxSizeMB:  5,
		MaxBackups: 1,
	}, cfg)
}

func TestMakeTheme(t *testing.T) {
	s := Settings{Theme: theme.PresetClean}
	assert.IsType(t, theme.CleanTheme{}, s.MakeTheme())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "designkit", filepath.Base(filepath.Dir(path)))
	assert.Equal(t, "config.yaml", filepath.Base(path))
}
