package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/designkit/internal/export"
	"github.com/renato0307/designkit/internal/logging"
)

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy [preset]",
		Short: "Copy the tokens of a preset to the clipboard as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, tok, err := a.tokensFor(args)
			if err != nil {
				return err
			}

			data, err := export.YAML(name, tok)
			if err != nil {
				return err
			}

			msg, err := export.CopyToClipboard(string(data))
			if err != nil {
				return err
			}
			logging.Info("tokens copied", "preset", name, "bytes", len(data))
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
