package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/renato0307/designkit/internal/config"
	"github.com/renato0307/designkit/internal/logging"
	"github.com/renato0307/designkit/internal/registry"
	"github.com/renato0307/designkit/internal/theme"
	"github.com/renato0307/designkit/internal/ui"
)

type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
	theme      string
}

// app is the state shared by every command once settings are loaded.
type app struct {
	flags        rootFlags
	registry     *registry.Registry
	settings     config.Settings
	settingsPath string
}

func newRootCmd(reg *registry.Registry) *cobra.Command {
	a := &app{registry: reg}

	cmd := &cobra.Command{
		Use:           "designkit",
		Short:         "Browse, preview and pick designkit theme presets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.start()
		},
	}

	cmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "Settings file (default: $XDG_CONFIG_HOME/designkit/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.flags.theme, "theme", "", "Theme preset for this run, overriding the settings file")

	cmd.AddCommand(newPresetsCmd(a))
	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newCopyCmd(a))
	cmd.AddCommand(newPickCmd(a))
	cmd.AddCommand(newPreviewCmd(a))

	return cmd
}

// start loads settings, initializes logging and configures the theme. It
// runs once before every command.
func (a *app) start() error {
	timing := logging.Start("cli.start")
	defer logging.End(timing)

	path := a.flags.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	s, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.flags.logFile != "" {
		s.Log.File = a.flags.logFile
	}
	if a.flags.logLevel != "" {
		s.Log.Level = a.flags.logLevel
	}
	if a.flags.theme != "" {
		p, err := theme.ParsePreset(a.flags.theme)
		if err != nil {
			return fmt.Errorf("--theme: %w", err)
		}
		s.Theme = p
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if err := logging.Init(s.LoggingConfig()); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	a.settings = s
	a.settingsPath = path
	a.configureTheme()
	return nil
}

func (a *app) configureTheme() {
	log := logging.Get().With("component", "cli")

	t := a.settings.MakeTheme()
	if t == nil {
		log.Debug("no theme in settings, using default")
		a.registry.ConfigureWithDefaults()
		return
	}
	log.Debug("configuring theme from settings", "preset", string(a.settings.Theme))
	a.registry.Configure(t)
}

// activePreset is the preset behind the configured theme.
func (a *app) activePreset() theme.Preset {
	if a.settings.Theme == "" {
		return theme.PresetClassicMono
	}
	return a.settings.Theme
}

// styles derives component styles from the active theme for output on cmd.
func (a *app) styles(cmd *cobra.Command) (*lipgloss.Renderer, *ui.Styles) {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	return r, ui.New(r, a.registry.Tokens())
}

// presetArg resolves an optional preset argument. Without one it returns the
// active preset and false.
func (a *app) presetArg(args []string) (theme.Preset, bool, error) {
	if len(args) == 0 {
		return a.activePreset(), false, nil
	}
	p, err := theme.ParsePreset(args[0])
	if err != nil {
		return "", false, err
	}
	return p, true, nil
}
