// Command c4solve is the thin external-collaborator harness around
// package solver: it builds a position from a move-sequence key or
// replays a benchmark file, calls solver.Score, and reports the
// result. None of this is part of the solver core -- it only drives
// it.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logLevel string

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer zerolog.ConsoleWriter
	if isatty.IsTerminal(os.Stderr.Fd()) {
		writer = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })
		return zerolog.New(writer).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "c4solve",
		Short: "Exact-score solver for 7x6 Connect Four positions",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCommand())
	root.AddCommand(newBenchCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
