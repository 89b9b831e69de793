package sudoku

import "errors"

// ErrUnsolvable is returned by Solve when the search exhausts every branch
// without completing the board.
var ErrUnsolvable = errors.New("puzzle has no solution")

// Solution is a completed board and the number of digits the search placed
// to reach it. For a solvable puzzle Depth equals the number of cells that
// were empty at the start.
type Solution struct {
	Board *Board
	Depth int
}

// Solve searches for a completion of the board by trying candidates at the
// most constrained empty cell first and backtracking on dead ends. The
// input board is not modified; every placement happens on a branched copy.
// A board that admits no completion returns ErrUnsolvable.
func Solve(b *Board) (*Solution, error) {
	done, depth, ok := solve(b)
	if !ok {
		return nil, ErrUnsolvable
	}
	return &Solution{Board: done, Depth: depth}, nil
}

// solve branches on the spot with the fewest candidates and recurses. It
// reports failure both for dead ends and for exhausted candidate lists;
// the caller cannot tell these apart, and does not need to.
func solve(b *Board) (*Board, int, bool) {
	spots, err := b.OpenSpots()
	if err != nil {
		return nil, 0, false
	}
	if len(spots) == 0 {
		return b, 0, true
	}
	spot := spots[0]
	for _, v := range spot.Values {
		if done, depth, ok := solve(b.Branch(spot.Coord, v)); ok {
			return done, depth + 1, true
		}
	}
	return nil, 0, false
}
