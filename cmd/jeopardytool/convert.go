package main

import (
	"fmt"

	"jeopardytool/internal/domain"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var opts domain.ConvertOptions
	cmd := &cobra.Command{
		Use:   "convert <category-file>...",
		Short: "Assemble legacy category files into one game",
		Long: `Reads category files in the legacy layout, where each answer is an object
keyed by its variant ("Text", "Image", "Audio" or "Video"), and writes them in
argument order as a single game document.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Inputs = args
			game, err := a.service.Convert(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if opts.Output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s written to %s\n", game.ID, opts.Output)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), game.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Title, "title", "", "game title")
	f.StringVarP(&opts.Output, "out", "o", "", "write the game to this file (.json, .yaml or .yml) instead of the library")
	return cmd
}
