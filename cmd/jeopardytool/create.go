package main

import (
	"fmt"

	"jeopardytool/internal/domain"

	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		opts domain.CreateOptions
		kind string
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a 5x5 skeleton game in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := domain.ParseAnswerKind(kind)
			if err != nil {
				return domain.NewInvalidGameError("invalid --kind", err)
			}
			opts.Kind = k
			opts.Rand = seededRand(cmd, seed)

			game, err := a.service.Create(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), game.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Title, "title", "", "game title")
	f.StringArrayVar(&opts.Categories, "category", nil, "category name, repeatable up to 5 times")
	f.StringVar(&kind, "kind", string(domain.AnswerKindText), "answer kind: text, image, audio or video")
	f.BoolVar(&opts.DoubleJeopardy, "double-jeopardy", false, "assign Double Jeopardy answers")
	f.Uint64Var(&seed, "seed", 0, "seed for the Double Jeopardy draw")
	return cmd
}
