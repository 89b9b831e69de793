package sudoku

import (
	"errors"
	"sort"
)

// ErrDeadEnd is returned by OpenSpots when some empty cell has no legal
// digit left, so the board cannot be completed from here.
var ErrDeadEnd = errors.New("open cell with no candidates")

// Spot is an empty cell together with its legal digits.
type Spot struct {
	Coord  Coord
	Values []int
}

// OpenSpots returns every empty cell with its candidates, most constrained
// first. Cells with equally many candidates keep their row-major order, so
// the result is deterministic for a given board. A full board yields an
// empty slice and no error; a board where some empty cell has run out of
// digits yields ErrDeadEnd. The two cases both end a search, but only the
// first one is success.
func (b *Board) OpenSpots() ([]Spot, error) {
	spots := make([]Spot, 0, len(b.open))
	for _, c := range b.open {
		values := candidates(b.Locate(c.X, c.Y))
		if len(values) == 0 {
			return nil, ErrDeadEnd
		}
		spots = append(spots, Spot{Coord: c, Values: values})
	}
	sort.SliceStable(spots, func(i, j int) bool {
		return len(spots[i].Values) < len(spots[j].Values)
	})
	return spots, nil
}
