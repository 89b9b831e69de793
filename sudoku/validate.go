package sudoku

// Validate reports whether the board is a completed solution: no empty
// cells, and no digit repeated within any row, column, or box.
func Validate(b *Board) bool {
	var rows, cols, boxes [9][9]bool
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			cell := b.rows[row][col]
			if cell == 0 {
				return false
			}

			digit := cell - 1
			boxIndex := row/3*3 + col/3
			if rows[row][digit] || cols[col][digit] || boxes[boxIndex][digit] {
				return false
			}

			rows[row][digit], cols[col][digit], boxes[boxIndex][digit] = true, true, true
		}
	}
	return true
}

// Consistent reports whether the placed digits are free of conflicts,
// ignoring empty cells. Solve assumes a consistent board; callers should
// reject anything else before searching.
func Consistent(b *Board) bool {
	var rows, cols, boxes [9][9]bool
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			cell := b.rows[row][col]
			if cell == 0 {
				continue
			}

			digit := cell - 1
			boxIndex := row/3*3 + col/3
			if rows[row][digit] || cols[col][digit] || boxes[boxIndex][digit] {
				return false
			}

			rows[row][digit], cols[col][digit], boxes[boxIndex][digit] = true, true, true
		}
	}
	return true
}
