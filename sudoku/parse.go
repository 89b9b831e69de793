package sudoku

import "fmt"

// Parse reads a board from text. Digits are taken in row-major order and 0
// marks an empty cell; spaces, newlines, pipes and any other non-digit
// characters are skipped, so both bare 81-character lines and formatted
// grids parse. The text must contain exactly 81 digits.
func Parse(text string) (*Board, error) {
	var rows [9][9]int
	n := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}
		if n < 81 {
			rows[n/9][n%9] = int(r - '0')
		}
		n++
	}
	if n != 81 {
		return nil, fmt.Errorf("got %d digits, want 81", n)
	}
	return NewBoard(rows), nil
}

// Grid returns the board as a row-major slice grid, the inverse of
// FromGrid. Handy for JSON payloads, which cannot carry fixed-size arrays.
func Grid(b *Board) [][]int {
	rows := b.Rows()
	grid := make([][]int, 9)
	for y := range rows {
		row := rows[y]
		grid[y] = row[:]
	}
	return grid
}

// FromGrid builds a board from a row-major slice grid, as decoded from
// JSON. The grid must be 9x9 and hold only values 0 through 9.
func FromGrid(grid [][]int) (*Board, error) {
	if len(grid) != 9 {
		return nil, fmt.Errorf("got %d rows, want 9", len(grid))
	}
	var rows [9][9]int
	for y, row := range grid {
		if len(row) != 9 {
			return nil, fmt.Errorf("row %d has %d cells, want 9", y, len(row))
		}
		for x, v := range row {
			if v < 0 || v > 9 {
				return nil, fmt.Errorf("cell (%d,%d) holds %d, want 0 through 9", x, y, v)
			}
			rows[y][x] = v
		}
	}
	return NewBoard(rows), nil
}
