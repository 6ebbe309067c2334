package tetrix

import "github.com/vovakirdan/tui-tetrix/internal/core"

// NumBlocks is the number of cells every piece occupies.
const NumBlocks = 4

// rotationStates is the rotation modulus for rotatable kinds.
const rotationStates = 4

// Point is a cell coordinate in well space: x grows right, y grows down.
type Point struct {
	X, Y int
}

// Piece is a positioned, rotated instance of a shape kind.
//
// Piece is a value type: assigning or calling Copy yields an independent
// piece, which is how moves are tried before they are committed.
type Piece struct {
	kind     Kind
	x, y     int
	rotation int
	cells    [NumBlocks]Point
}

// Spawn creates a piece of the given kind at rotation 0 with its grid's
// top-left corner at (x, y).
func Spawn(k Kind, x, y int) Piece {
	p := Piece{kind: k, x: x, y: y}
	p.updateCells()
	return p
}

// Kind returns the piece's shape kind.
func (p Piece) Kind() Kind { return p.kind }

// Rotation returns the current rotation index.
func (p Piece) Rotation() int { return p.rotation }

// Origin returns the top-left corner of the piece's rotation grid.
func (p Piece) Origin() Point { return Point{X: p.x, Y: p.y} }

// Color returns the display color of the piece.
func (p Piece) Color() core.Color { return p.kind.Color() }

// Cells returns the four occupied cells.
func (p Piece) Cells() [NumBlocks]Point { return p.cells }

// Copy returns an independent piece with identical origin, rotation and kind.
func (p Piece) Copy() Piece { return p }

// SetPosition moves the origin and recomputes the cells from the table.
func (p *Piece) SetPosition(x, y int) {
	p.x, p.y = x, y
	p.updateCells()
}

// MoveLeft shifts the piece one column left.
func (p *Piece) MoveLeft() { p.translate(-1, 0) }

// MoveRight shifts the piece one column right.
func (p *Piece) MoveRight() { p.translate(1, 0) }

// StepDown shifts the piece one row down.
func (p *Piece) StepDown() { p.translate(0, 1) }

// RotateLeft turns the piece counter-clockwise. Single-state kinds ignore it.
func (p *Piece) RotateLeft() {
	if RotationCount(p.kind) == 1 {
		return
	}
	p.rotation = (p.rotation + rotationStates - 1) % rotationStates
	p.updateCells()
}

// RotateRight turns the piece clockwise. Single-state kinds ignore it.
func (p *Piece) RotateRight() {
	if RotationCount(p.kind) == 1 {
		return
	}
	p.rotation = (p.rotation + 1) % rotationStates
	p.updateCells()
}

// translate shifts the origin and every cell without consulting the table.
func (p *Piece) translate(dx, dy int) {
	p.x += dx
	p.y += dy
	for i := range p.cells {
		p.cells[i].X += dx
		p.cells[i].Y += dy
	}
}

func (p *Piece) updateCells() {
	offsets := rotationGrid(p.kind, p.rotation).Offsets()
	for i, off := range offsets {
		p.cells[i] = Point{X: p.x + off.X, Y: p.y + off.Y}
	}
}
