package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"c4solver/internal/bench"
)

func newBenchCommand() *cobra.Command {
	var path string
	var ttSize int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Score every line of a benchmark file and report accuracy and timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			report := bench.RunFile(logger, path, ttSize)
			if report.Total == 0 {
				return fmt.Errorf("no benchmark cases scored from %q", path)
			}

			fmt.Printf("scored %d/%d (mean %v, mean positions %d)\n",
				report.Correct, report.Total, report.MeanDuration, report.MeanPositionsSearched)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "path to a benchmark file of `<key> <score>` lines")
	cmd.Flags().IntVar(&ttSize, "tt-size", 0, "transposition table capacity (0 uses the built-in default)")
	cmd.MarkFlagRequired("file")

	return cmd
}
