package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"c4solver/internal/bench"
	"c4solver/solver"
)

func newSolveCommand() *cobra.Command {
	var ttSize int

	cmd := &cobra.Command{
		Use:   "solve <key>",
		Short: "Print the exact score of the position reached by playing <key>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			pos, err := bench.BuildPosition(0, args[0])
			if err != nil {
				return err
			}

			score, searched := solver.ScoreWithTableSize(pos, ttSize)
			logger.Info().
				Str("key", args[0]).
				Int8("score", score).
				Uint64("positions_searched", searched).
				Msg("solved position")

			fmt.Println(score)
			return nil
		},
	}
	cmd.Flags().IntVar(&ttSize, "tt-size", 0, "transposition table capacity (0 uses the built-in default)")
	return cmd
}
