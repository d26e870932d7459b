package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/renato0307/designkit/internal/appearance"
	"github.com/renato0307/designkit/internal/types"
	"github.com/renato0307/designkit/internal/ui"
)

const previewWidth = 60

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Render sample chrome and components with the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, styles := a.styles(cmd)
			fmt.Fprintln(cmd.OutOrStdout(), renderPreview(appearance.Current(), styles, a.activePreset().DisplayName()))
			return nil
		},
	}
}

func renderPreview(chrome appearance.Chrome, styles *ui.Styles, name string) string {
	tok := styles.Tokens

	var colors []string
	for _, role := range tok.Colors.Roles() {
		colors = append(colors, styles.Swatch(role.Color, 2)+" "+styles.Muted.Render(role.Name))
	}

	var typography []string
	for _, s := range tok.Typography.Styles() {
		typography = append(typography, fmt.Sprintf("%-16s %s", s.Name,
			styles.Muted.Render(fmt.Sprintf("%gpt %s", s.Style.Size, s.Style.Weight))))
	}

	messages := []string{
		ui.RenderMessage("Theme configured", types.MessageTypeSuccess, styles, "", previewWidth),
		ui.RenderMessage("Something went wrong", types.MessageTypeError, styles, "", previewWidth),
		ui.RenderMessage("Loading presets", types.MessageTypeLoading, styles, "", previewWidth),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		chrome.RenderNavigation("designkit · "+name, previewWidth),
		chrome.RenderTabs([]string{"Colors", "Type", "Surfaces"}, 0),
		"",
		styles.Header.Render("Colors"),
		strings.Join(colors, "\n"),
		"",
		styles.Header.Render("Typography"),
		strings.Join(typography, "\n"),
		"",
		styles.Header.Render("Surfaces"),
		lipgloss.JoinHorizontal(lipgloss.Top,
			styles.Card.Render("Card"),
			" ",
			styles.Glass.Render("Glass"),
			" ",
			styles.StrongGlass().Render("Strong glass"),
		),
		"",
		styles.AppTitle.Render("designkit"),
		styles.StatusBar.Render("status bar"),
		strings.Join(messages, "\n"),
	)
}
