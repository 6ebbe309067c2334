package tetrix

// Well is the grid of locked cells. Below the playable rows sits one
// sentinel row that is always solid and acts as the floor.
type Well struct {
	width  int
	height int // playable rows; the sentinel lives at y == height
	grid   [][]bool
}

// NewWell creates an empty well with the given playable dimensions.
func NewWell(width, height int) *Well {
	w := &Well{width: width, height: height}
	w.grid = make([][]bool, height+1)
	for y := range w.grid {
		w.grid[y] = make([]bool, width)
	}
	w.Clear()
	return w
}

// Width returns the number of columns.
func (w *Well) Width() int { return w.width }

// Height returns the number of playable rows (the sentinel is excluded).
func (w *Well) Height() int { return w.height }

func (w *Well) inBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < len(w.grid)
}

// IsSolid reports whether (x, y) is occupied. Coordinates outside the grid
// are not solid; the sentinel row always is. Callers check the side walls
// separately.
func (w *Well) IsSolid(x, y int) bool {
	if !w.inBounds(x, y) {
		return false
	}
	return w.grid[y][x]
}

// SetSolid marks a cell as occupied. Out-of-range coordinates are ignored.
func (w *Well) SetSolid(x, y int) {
	if !w.inBounds(x, y) {
		return
	}
	w.grid[y][x] = true
}

// Clear empties every playable row and re-asserts the sentinel row.
func (w *Well) Clear() {
	for y := 0; y < w.height; y++ {
		clear(w.grid[y])
	}
	for x := 0; x < w.width; x++ {
		w.grid[w.height][x] = true
	}
}

func (w *Well) rowFilled(y int) bool {
	for _, solid := range w.grid[y] {
		if !solid {
			return false
		}
	}
	return true
}

// RemoveFilledLines scans the playable rows top to bottom. Each full row is
// removed on the spot by shifting every row above it down by one and
// emptying the top row. It returns the number of rows removed.
func (w *Well) RemoveFilledLines() int {
	removed := 0
	for yy := 0; yy < w.height; yy++ {
		if !w.rowFilled(yy) {
			continue
		}
		removed++
		for y := yy; y > 0; y-- {
			copy(w.grid[y], w.grid[y-1])
		}
		clear(w.grid[0])
	}
	return removed
}

// Rows returns a copy of the playable rows, top first. The sentinel row is
// never included.
func (w *Well) Rows() [][]bool {
	out := make([][]bool, w.height)
	for y := range out {
		out[y] = make([]bool, w.width)
		copy(out[y], w.grid[y])
	}
	return out
}
