// Package tetrix implements the falling-block puzzle game engine: the shape
// catalog, pieces, the well, and the tick/command state machine, plus the
// registry adapter that lets the arcade platform drive and draw it.
package tetrix

import (
	"fmt"

	"github.com/vovakirdan/tui-tetrix/internal/core"
)

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	KindZ Kind = iota
	KindS
	KindI
	KindT
	KindO
	KindL
	KindJ
)

// KindCount is the number of piece kinds in the catalog.
const KindCount = 7

// MaxGridSize is the largest rotation grid edge (the I piece).
const MaxGridSize = 4

// Grid is one rotation state: a square occupancy mask of Size×Size cells.
type Grid struct {
	Size  int
	cells [MaxGridSize][MaxGridSize]bool
}

// Filled reports whether the grid cell at column x, row y is occupied.
func (g Grid) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Size || y >= g.Size {
		return false
	}
	return g.cells[y][x]
}

// Offsets returns the occupied cells in row-major order.
func (g Grid) Offsets() [NumBlocks]Point {
	var out [NumBlocks]Point
	n := 0
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.cells[y][x] {
				out[n] = Point{X: x, Y: y}
				n++
			}
		}
	}
	return out
}

// String renders the grid in the same X-art it was defined with.
func (g Grid) String() string {
	b := make([]byte, 0, g.Size*(g.Size+1))
	for y := 0; y < g.Size; y++ {
		if y > 0 {
			b = append(b, '\n')
		}
		for x := 0; x < g.Size; x++ {
			if g.cells[y][x] {
				b = append(b, 'X')
			} else {
				b = append(b, ' ')
			}
		}
	}
	return string(b)
}

type shapeDef struct {
	name      string
	rotations []Grid
	color     uint32
}

// shapes holds the canonical piece table. It is built once at package init
// and only ever read through value-returning accessors.
var shapes = [KindCount]shapeDef{
	KindZ: {
		name: "Z",
		rotations: []Grid{
			grid("XX ",
				" XX",
				"   "),
			grid("  X",
				" XX",
				" X "),
			grid("   ",
				"XX ",
				" XX"),
			grid(" X ",
				"XX ",
				"X  "),
		},
		color: 0xCC6666,
	},
	KindS: {
		name: "S",
		rotations: []Grid{
			grid(" XX",
				"XX ",
				"   "),
			grid(" X ",
				" XX",
				"  X"),
			grid("   ",
				" XX",
				"XX "),
			grid("X  ",
				"XX ",
				" X "),
		},
		color: 0x66CC66,
	},
	KindI: {
		name: "I",
		rotations: []Grid{
			grid("    ",
				"XXXX",
				"    ",
				"    "),
			grid(" X  ",
				" X  ",
				" X  ",
				" X  "),
			grid("    ",
				"XXXX",
				"    ",
				"    "),
			grid(" X  ",
				" X  ",
				" X  ",
				" X  "),
		},
		color: 0x6666CC,
	},
	KindT: {
		name: "T",
		rotations: []Grid{
			grid("XXX",
				" X ",
				"   "),
			grid("  X",
				" XX",
				"  X"),
			grid("   ",
				" X ",
				"XXX"),
			grid("X  ",
				"XX ",
				"X  "),
		},
		color: 0xCCCC66,
	},
	KindO: {
		name: "O",
		rotations: []Grid{
			grid("XX",
				"XX"),
		},
		color: 0xCC66CC,
	},
	KindL: {
		name: "L",
		rotations: []Grid{
			grid(" X ",
				" X ",
				" XX"),
			grid("   ",
				"XXX",
				"X  "),
			grid("XX ",
				" X ",
				" X "),
			grid("  X",
				"XXX",
				"   "),
		},
		color: 0x66CCCC,
	},
	KindJ: {
		name: "J",
		rotations: []Grid{
			grid(" X ",
				" X ",
				"XX "),
			grid("X  ",
				"XXX",
				"   "),
			grid(" XX",
				" X ",
				" X "),
			grid("   ",
				"XXX",
				"  X"),
		},
		color: 0xDAAA00,
	},
}

// grid parses square X-art into a Grid. Malformed art is a programming error.
func grid(rows ...string) Grid {
	g := Grid{Size: len(rows)}
	if g.Size == 0 || g.Size > MaxGridSize {
		panic(fmt.Sprintf("tetrix: invalid grid size %d", g.Size))
	}
	filled := 0
	for y, row := range rows {
		if len(row) != g.Size {
			panic(fmt.Sprintf("tetrix: grid row %q is not %d wide", row, g.Size))
		}
		for x := 0; x < len(row); x++ {
			if row[x] == 'X' {
				g.cells[y][x] = true
				filled++
			}
		}
	}
	if filled != NumBlocks {
		panic(fmt.Sprintf("tetrix: grid has %d blocks, want %d", filled, NumBlocks))
	}
	return g
}

func shapeOf(k Kind) *shapeDef {
	if k < 0 || int(k) >= KindCount {
		panic(fmt.Sprintf("tetrix: unknown piece kind %d", int(k)))
	}
	return &shapes[k]
}

// RotationStates returns the ordered rotation grids for a kind.
// The returned slice is a copy; mutating it does not affect the catalog.
func RotationStates(k Kind) []Grid {
	src := shapeOf(k).rotations
	out := make([]Grid, len(src))
	copy(out, src)
	return out
}

// RotationCount returns how many distinct rotation states a kind has.
func RotationCount(k Kind) int {
	return len(shapeOf(k).rotations)
}

// ShapeColor returns the display color of a kind as 0xRRGGBB.
func ShapeColor(k Kind) uint32 {
	return shapeOf(k).color
}

// Color returns the kind's display color as a screen color.
func (k Kind) Color() core.Color {
	return core.RGB(ShapeColor(k))
}

// String returns the conventional single-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return shapes[k].name
}

func rotationGrid(k Kind, rotation int) Grid {
	return shapeOf(k).rotations[rotation]
}
