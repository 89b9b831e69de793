package sudoku

// Branch returns a copy of the board with digit v placed at c. The receiver
// is left untouched, so a caller can branch the same board several times
// with different digits and keep them all. The new board's open list is
// the old one minus c.
func (b *Board) Branch(c Coord, v int) *Board {
	next := &Board{
		rows:  b.rows,
		cols:  b.cols,
		boxes: b.boxes,
		open:  make([]Coord, 0, len(b.open)),
	}
	for _, o := range b.open {
		if o != c {
			next.open = append(next.open, o)
		}
	}
	next.set(c.X, c.Y, v)
	return next
}
