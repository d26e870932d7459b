package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/renato0307/designkit/internal/theme"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets [query]",
		Short: "List theme presets, optionally fuzzy filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runPresets(cmd, a, query)
		},
	}
}

func runPresets(cmd *cobra.Command, a *app, query string) error {
	presets := theme.FindPresets(query)
	if len(presets) == 0 {
		return fmt.Errorf("no preset matches %q", query)
	}

	active := a.activePreset()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME")
	for _, p := range presets {
		marker := " "
		if p == active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\n", marker, p, p.DisplayName())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if query == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "\n* active")
	}
	return nil
}
