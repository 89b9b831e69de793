package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ninebox/sudoku-solver/service/puzzleservice"
	"github.com/ninebox/sudoku-solver/sudoku"
)

func NewFetchCommand() *cobra.Command {
	var (
		source     string
		difficulty string
		solve      bool
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a fresh puzzle from the puzzle service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := puzzleservice.NewClient(source, nil)
			if err != nil {
				return fmt.Errorf("create puzzle service client: %w", err)
			}
			resp, err := client.Fetch(cmd.Context(), &puzzleservice.FetchRequest{Difficulty: difficulty})
			if err != nil {
				return fmt.Errorf("fetch puzzle: %w", err)
			}
			board, err := resp.Board()
			if err != nil {
				return fmt.Errorf("read fetched puzzle: %w", err)
			}
			fmt.Print(board)

			if !solve {
				return nil
			}
			sol, err := sudoku.Solve(board)
			if err != nil {
				return fmt.Errorf("solve fetched puzzle: %w", err)
			}
			log.Info().Int("depth", sol.Depth).Msg("solved fetched puzzle")
			fmt.Println()
			fmt.Print(sol.Board)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", defaultSource, "puzzle service base URL")
	cmd.Flags().StringVar(&difficulty, "difficulty", "random", "easy, medium, hard, or random")
	cmd.Flags().BoolVar(&solve, "solve", false, "also solve the fetched puzzle")
	return cmd
}
