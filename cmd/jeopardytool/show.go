package main

import (
	"fmt"

	"jeopardytool/internal/domain"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		opts domain.ShowOptions
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print and validate the games whose ID or title starts with a prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Rand = seededRand(cmd, seed)
			reports, err := a.service.Show(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printReport(out, r)
				if !r.Valid() {
					invalid++
				}
			}
			if invalid > 0 {
				return domain.NewInvalidGameError(fmt.Sprintf("%d of %d games are invalid", invalid, len(reports)), nil)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Prefix, "prefix", "p", "", "only show games whose ID or title starts with this text")
	f.BoolVar(&opts.DoubleJeopardy, "double-jeopardy", false, "roll a fresh Double Jeopardy assignment before printing")
	f.Uint64Var(&seed, "seed", 0, "seed for the Double Jeopardy draw")
	f.BoolVar(&opts.Strict, "strict", false, "also apply content rules (prompts, answers, media paths)")
	return cmd
}
