package sudoku

import "errors"

// ErrFilled is returned by Candidates for a cell that already holds a digit.
var ErrFilled = errors.New("cell already filled")

// Candidates returns the digits that can legally go at column x, row y:
// those not yet present in the cell's row, column, or box, in ascending
// order. The slice is empty when the cell is blocked on every digit.
// Asking about a filled cell returns ErrFilled.
func (b *Board) Candidates(x, y int) ([]int, error) {
	cell := b.Locate(x, y)
	if cell.Value != 0 {
		return nil, ErrFilled
	}
	return candidates(cell), nil
}

// candidates computes the legal digits for an empty cell from its group
// snapshots. Used digits are collected into a bitmask; empty cells set
// bit 0, which no digit ever tests.
func candidates(cell Cell) []int {
	var used uint16
	for i := 0; i < 9; i++ {
		used |= 1 << cell.Row[i]
		used |= 1 << cell.Col[i]
		used |= 1 << cell.Box[i]
	}
	var out []int
	for v := 1; v <= 9; v++ {
		if used&(1<<v) == 0 {
			out = append(out, v)
		}
	}
	return out
}
