package puzzleservice

import (
	"context"

	"github.com/ninebox/sudoku-solver/sudoku"
)

// PuzzleService represent the external puzzle generator.
type PuzzleService interface {
	// Fetch a fresh puzzle of the requested difficulty
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResponse, error)
}

type FetchRequest struct {
	// Difficulty is easy, medium, hard, or random. Empty leaves the
	// choice to the service.
	Difficulty string
}

type FetchResponse struct {
	Puzzle [][]int `json:"board"` // the 9*9 puzzle, 0 for empty cells
}

// Board converts the fetched puzzle into a board, rejecting grids that are
// not 9x9 digits.
func (r *FetchResponse) Board() (*sudoku.Board, error) {
	return sudoku.FromGrid(r.Puzzle)
}
