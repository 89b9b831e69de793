package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// defaultSource is the public generator at sugoku.onrender.com, which answers
// GET /board?difficulty= with a 9*9 grid.
const defaultSource = "https://sugoku.onrender.com"

func NewRootCommand() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "sudoku",
		Short:         "Solve, fetch, and serve 9x9 sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.AddCommand(
		NewSolveCommand(),
		NewServeCommand(),
		NewFetchCommand(),
	)
	return cmd
}
