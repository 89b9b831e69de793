package sudoku

import "strings"

// Format renders the board as a grid with lines between the 3x3 boxes.
// Empty cells print as the placeholder rune; passing '0' gives output that
// parses back with Parse.
func Format(b *Board, placeholder rune) string {
	var sb strings.Builder
	for y := 0; y < 9; y++ {
		if y == 3 || y == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for x := 0; x < 9; x++ {
			if x == 3 || x == 6 {
				sb.WriteString("| ")
			}
			if v := b.rows[y][x]; v == 0 {
				sb.WriteRune(placeholder)
			} else {
				sb.WriteByte(byte('0' + v))
			}
			if x < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the board with dots for empty cells.
func (b *Board) String() string {
	return Format(b, '.')
}

// Digits renders the board as one 81-character line of digits in row-major
// order, 0 for empty cells.
func Digits(b *Board) string {
	buf := make([]byte, 0, 81)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			buf = append(buf, byte('0'+b.rows[y][x]))
		}
	}
	return string(buf)
}
