package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/designkit/internal/export"
	"github.com/renato0307/designkit/internal/tokens"
)

type showOptions struct {
	yaml bool
}

func newShowCmd(a *app) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show [preset]",
		Short: "Show the tokens of a preset (default: the active theme)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, a, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "Output as YAML")

	return cmd
}

// tokensFor returns the tokens of the preset named in args, or of the active
// theme read from the registry.
func (a *app) tokensFor(args []string) (string, tokens.DesignTokens, error) {
	p, explicit, err := a.presetArg(args)
	if err != nil {
		return "", tokens.DesignTokens{}, err
	}
	if explicit {
		return string(p), p.MakeTheme().Tokens(), nil
	}
	return string(p), a.registry.Tokens(), nil
}

func runShow(cmd *cobra.Command, a *app, args []string, opts *showOptions) error {
	name, tok, err := a.tokensFor(args)
	if err != nil {
		return err
	}

	if opts.yaml {
		data, err := export.YAML(name, tok)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	_, styles := a.styles(cmd)
	fmt.Fprintln(cmd.OutOrStdout(), styles.Header.Render(name))
	fmt.Fprintln(cmd.OutOrStdout(), export.Table(tok, styles))
	return nil
}
