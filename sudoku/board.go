package sudoku

// Coord addresses one cell of the grid. X is the column and Y the row,
// both 0-based, counted from the top-left corner.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// boxRef locates a cell inside the box view: which 3x3 box it belongs to
// and its row-major position within that box.
type boxRef struct {
	no  int
	idx int
}

// boxAt maps (y, x) to the cell's place in the box view. Boxes are numbered
// row-major, 0 top-left to 8 bottom-right, and cells are numbered row-major
// within each box. Precomputed once since every cell access needs it.
var boxAt = func() (t [9][9]boxRef) {
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			t[y][x] = boxRef{
				no:  3*(y/3) + x/3,
				idx: 3*(y%3) + x%3,
			}
		}
	}
	return t
}()

// Board is one 9x9 grid stored three times over: by row, by column, and by
// 3x3 box. The redundancy buys O(1) access to all three constraint groups
// of any cell. 0 marks an empty cell, 1 through 9 a placed digit.
//
// Boards are treated as immutable values: Branch returns a modified copy
// and never touches its receiver, so earlier boards stay valid while the
// search explores their descendants.
type Board struct {
	rows  [9][9]int
	cols  [9][9]int
	boxes [9][9]int

	// open lists the still-empty cells in row-major order. It is computed
	// once when the board is built and narrowed by one entry per Branch,
	// never rescanned from the grid.
	open []Coord
}

// NewBoard builds a board from a row-major grid, deriving the column and
// box views and collecting the open-cell list.
func NewBoard(rows [9][9]int) *Board {
	b := &Board{rows: rows}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			v := rows[y][x]
			ref := boxAt[y][x]
			b.cols[x][y] = v
			b.boxes[ref.no][ref.idx] = v
			if v == 0 {
				b.open = append(b.open, Coord{X: x, Y: y})
			}
		}
	}
	return b
}

// Cell is everything known about one position: its current value, the row,
// column and box groups constraining it, and where it sits in the box view.
type Cell struct {
	Value  int
	Row    [9]int
	Col    [9]int
	Box    [9]int
	BoxNo  int
	BoxIdx int
}

// Locate returns the cell at column x, row y together with snapshots of its
// three constraint groups. Both coordinates must be in [0,9); anything else
// is a caller bug and panics.
func (b *Board) Locate(x, y int) Cell {
	ref := boxAt[y][x]
	return Cell{
		Value:  b.rows[y][x],
		Row:    b.rows[y],
		Col:    b.cols[x],
		Box:    b.boxes[ref.no],
		BoxNo:  ref.no,
		BoxIdx: ref.idx,
	}
}

// Value returns the digit at column x, row y, or 0 for an empty cell.
func (b *Board) Value(x, y int) int {
	return b.rows[y][x]
}

// Rows returns the board as a row-major grid.
func (b *Board) Rows() [9][9]int {
	return b.rows
}

// Open returns the coordinates of the cells still empty, in row-major order.
func (b *Board) Open() []Coord {
	out := make([]Coord, len(b.open))
	copy(out, b.open)
	return out
}

// Solved reports whether every cell holds a digit.
func (b *Board) Solved() bool {
	for y := range b.rows {
		for x := range b.rows[y] {
			if b.rows[y][x] == 0 {
				return false
			}
		}
	}
	return true
}

// set writes v into all three views at once. Internal: callers go through
// Branch, which copies first.
func (b *Board) set(x, y, v int) {
	ref := boxAt[y][x]
	b.rows[y][x] = v
	b.cols[x][y] = v
	b.boxes[ref.no][ref.idx] = v
}
