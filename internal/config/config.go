// Package config loads and saves the designkit settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/designkit/internal/logging"
	"github.com/renato0307/designkit/internal/theme"
)

const (
	// EnvTheme overrides the persisted theme preset.
	EnvTheme = "DESIGNKIT_THEME"

	appDir   = "designkit"
	fileName = "config.yaml"

	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// ErrInvalidSettings is wrapped by every validation and parse error.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the on-disk configuration.
type Settings struct {
	// Theme is the preset to configure at startup. Empty means the built-in
	// default theme.
	Theme theme.Preset `json:"theme,omitempty"`
	Log   LogSettings  `json:"log"`
}

// LogSettings configures the log file.
type LogSettings struct {
	File       string `json:"file,omitempty"`
	Level      string `json:"level,omitempty"`
	Format     string `json:"format,omitempty"`
	MaxSizeMB  int    `json:"maxSizeMB,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
}

// Default returns settings with logging disabled and no theme chosen.
func Default() Settings {
	return Settings{
		Log: LogSettings{
			Level:      "info",
			Format:     string(logging.FormatText),
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/designkit/config.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads settings from path on top of Default. A missing file is not an
// error. EnvTheme, when set, replaces the persisted theme.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return s, fmt.Errorf("read settings %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Default(), fmt.Errorf("%w: parse %s: %v", ErrInvalidSettings, path, err)
		}
	}

	if env := strings.TrimSpace(os.Getenv(EnvTheme)); env != "" {
		p, err := theme.ParsePreset(env)
		if err != nil {
			return s, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, EnvTheme, err)
		}
		s.Theme = p
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes s to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

// Validate checks the preset and the log options.
func (s Settings) Validate() error {
	var errs []error

	if s.Theme != "" && !s.Theme.Valid() {
		errs = append(errs, fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, string(s.Theme)))
	}

	switch strings.ToLower(s.Log.Format) {
	case "", string(logging.FormatText), string(logging.FormatJSON):
	default:
		errs = append(errs, fmt.Errorf("%w: unknown log format %q", ErrInvalidSettings, s.Log.Format))
	}

	switch strings.ToLower(s.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: unknown log level %q", ErrInvalidSettings, s.Log.Level))
	}

	if s.Log.MaxSizeMB < 0 || s.Log.MaxBackups < 0 {
		errs = append(errs, fmt.Errorf("%w: log rotation limits must not be negative", ErrInvalidSettings))
	}

	return errors.Join(errs...)
}

// LoggingConfig maps the log settings onto logging.Config.
func (s Settings) LoggingConfig() logging.Config {
	return logging.Config{
		FilePath:   s.Log.File,
		Level:      logging.ParseLevel(strings.ToLower(s.Log.Level)),
		Format:     logging.ParseFormat(strings.ToLower(s.Log.Format)),
		MaxSizeMB:  s.Log.MaxSizeMB,
		MaxBackups: s.Log.MaxBackups,
	}
}

// MakeTheme returns the theme for the configured preset, or nil when none is
// set.
func (s Settings) MakeTheme() theme.Theme {
	if s.Theme == "" {
		return nil
	}
	return s.Theme.MakeTheme()
}
