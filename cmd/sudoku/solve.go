package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ninebox/sudoku-solver/sudoku"
)

func NewSolveCommand() *cobra.Command {
	var (
		repeat int
		line   bool
		quiet  bool
		prof   bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Solve puzzles from files or standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repeat < 1 {
				return fmt.Errorf("repeat must be at least 1, got %d", repeat)
			}
			if prof {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, path := range args {
				if err := solveOne(path, repeat, line, quiet); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&repeat, "repeat", 1, "solve each puzzle this many times and report the average")
	cmd.Flags().BoolVar(&line, "line", false, "print solutions as one 81-digit line")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "log statistics only, do not print boards")
	cmd.Flags().BoolVar(&prof, "profile", false, "write a CPU profile to the current directory")
	return cmd
}

func solveOne(path string, repeat int, line, quiet bool) error {
	text, err := readPuzzle(path)
	if err != nil {
		return err
	}
	board, err := sudoku.Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s: %w", displayName(path), err)
	}
	if !sudoku.Consistent(board) {
		return fmt.Errorf("%s: a digit repeats within a row, column, or box", displayName(path))
	}

	start := time.Now()
	var sol *sudoku.Solution
	for i := 0; i < repeat; i++ {
		if sol, err = sudoku.Solve(board); err != nil {
			return fmt.Errorf("solve %s: %w", displayName(path), err)
		}
	}
	elapsed := time.Since(start)

	log.Info().
		Str("puzzle", displayName(path)).
		Int("depth", sol.Depth).
		Int("repeat", repeat).
		Dur("total", elapsed).
		Dur("avg", elapsed/time.Duration(repeat)).
		Msg("solved")

	if quiet {
		return nil
	}
	if line {
		fmt.Println(sudoku.Digits(sol.Board))
	} else {
		fmt.Print(sol.Board)
	}
	return nil
}

func readPuzzle(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read puzzle: %w", err)
	}
	return string(data), nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
