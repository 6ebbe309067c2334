package tetrix

import (
	"time"

	"github.com/vovakirdan/tui-tetrix/internal/core"
)

// PieceView is the read-only description of a piece for drawing.
type PieceView struct {
	Kind  Kind
	Cells [NumBlocks]Point
	Color core.Color
}

func viewOf(p Piece) PieceView {
	return PieceView{Kind: p.Kind(), Cells: p.Cells(), Color: p.Color()}
}

// Snapshot is a read-only copy of the engine state. Well holds the playable
// rows only, top first, indexed Well[y][x].
type Snapshot struct {
	Well     [][]bool
	Active   PieceView
	Next     PieceView
	Score    int
	Lines    int
	Level    int
	Ticks    uint64 // engine ticks processed this game
	Status   Status
	Interval time.Duration
}

// Snapshot returns the current engine state. It may be called at any time.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Well:     e.well.Rows(),
		Active:   viewOf(e.active),
		Next:     viewOf(e.next),
		Score:    e.score,
		Lines:    e.lines,
		Level:    e.level,
		Ticks:    e.ticks,
		Status:   e.Status(),
		Interval: e.interval,
	}
}
