package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/designkit/internal/config"
	"github.com/renato0307/designkit/internal/keyboard"
	"github.com/renato0307/designkit/internal/logging"
	"github.com/renato0307/designkit/internal/messages"
	"github.com/renato0307/designkit/internal/picker"
	"github.com/renato0307/designkit/internal/theme"
)

func newPickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a preset interactively and save it to the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, styles := a.styles(cmd)
			m := picker.New(r, styles, a.activePreset(), keyboard.Default())

			p, ok, err := picker.Run(m,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return messages.WrapError(err, "run picker")
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No theme selected")
				return nil
			}

			if err := persistPreset(a.settingsPath, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s (%s). It applies from the next start.\n", p.DisplayName(), p)
			return nil
		},
	}
}

// persistPreset stores p in the settings file at path, keeping the other
// settings as they are on disk.
func persistPreset(path string, p theme.Preset) error {
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	s.Theme = p
	if err := config.Save(path, s); err != nil {
		return err
	}
	logging.Info("theme preset saved", "preset", string(p), "path", path)
	return nil
}
