package tetrix

import (
	"fmt"
	"strings"
	"time"
)

// Game rules. These are fixed and deliberately not configurable.
const (
	WellWidth  = 10
	WellHeight = 20

	// BaseInterval is the tick interval at level 1; level n ticks every
	// BaseInterval/n.
	BaseInterval = 1000 * time.Millisecond
	// ResumeInterval replaces BaseInterval when resuming from pause.
	ResumeInterval = 2000 * time.Millisecond

	// LevelStep sets the level-up threshold: level n ends once the score
	// exceeds n*LevelStep.
	LevelStep = 500

	SpawnX   = 4
	SpawnY   = 0
	PreviewX = 11
	PreviewY = 2
)

// ScoreTable holds the award for clearing 1, 2, 3 or 4 rows in one pass.
var ScoreTable = [NumBlocks]int{300, 500, 700, 1500}

// Status is the externally visible state of the engine.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
)

// String returns the status label shown in the side panel.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAME OVER"
	default:
		return "UNKNOWN"
	}
}

// Command is a discrete player action.
type Command int

const (
	CmdRotateLeft Command = iota
	CmdRotateRight
	CmdMoveLeft
	CmdMoveRight
	CmdHardDrop
	CmdNewGame
	CmdTogglePause
)

var commandNames = [...]string{
	CmdRotateLeft:  "rotate-left",
	CmdRotateRight: "rotate-right",
	CmdMoveLeft:    "move-left",
	CmdMoveRight:   "move-right",
	CmdHardDrop:    "hard-drop",
	CmdNewGame:     "new-game",
	CmdTogglePause: "toggle-pause",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// ParseCommand maps a command name such as "hard-drop" back to a Command.
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("tetrix: unknown command %q", s)
}

// Engine is the game state machine. It owns the well and both pieces and
// mutates them only from OnTick and OnCommand, which must be called from a
// single goroutine.
type Engine struct {
	well   *Well
	active Piece
	next   Piece

	score    int
	lines    int
	level    int
	ticks    uint64
	gameOver bool

	kinds    Randomizer
	ticker   Ticker
	interval time.Duration
}

// NewEngine starts a fresh game. Piece kinds come from kinds and tick
// scheduling is delegated to ticker, which is started immediately.
func NewEngine(kinds Randomizer, ticker Ticker) *Engine {
	e := &Engine{
		well:   NewWell(WellWidth, WellHeight),
		kinds:  kinds,
		ticker: ticker,
	}
	e.newGame()
	return e
}

func (e *Engine) newGame() {
	e.gameOver = false
	e.score = 0
	e.lines = 0
	e.level = 1
	e.ticks = 0
	e.well.Clear()
	e.active = Spawn(e.kinds.Next(), SpawnX, SpawnY)
	e.next = Spawn(e.kinds.Next(), PreviewX, PreviewY)
	e.schedule(BaseInterval)
}

func (e *Engine) schedule(base time.Duration) {
	e.interval = base / time.Duration(e.level)
	e.ticker.Start(e.interval)
}

// Status reports whether the game is playing, paused or over.
func (e *Engine) Status() Status {
	switch {
	case e.gameOver:
		return StatusGameOver
	case !e.ticker.Active():
		return StatusPaused
	default:
		return StatusPlaying
	}
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the number of rows cleared this game.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Interval returns the tick interval most recently handed to the ticker.
func (e *Engine) Interval() time.Duration { return e.interval }

// OnTick advances the game by one scheduled tick: it either locks a landed
// piece and brings in the next one, or drops the active piece one row and
// clears any full rows.
func (e *Engine) OnTick() {
	if e.Status() != StatusPlaying {
		return
	}
	e.ticks++

	if e.touchingGround(e.active) {
		e.lockActive()
		return
	}

	e.active.StepDown()
	removed := e.well.RemoveFilledLines()
	if removed == 0 {
		return
	}
	e.score += ScoreTable[min(removed, len(ScoreTable))-1]
	e.lines += removed
	if e.score > e.level*LevelStep {
		e.level++
		e.schedule(BaseInterval)
	}
}

func (e *Engine) lockActive() {
	for _, c := range e.active.Cells() {
		e.well.SetSolid(c.X, c.Y)
	}
	e.next.SetPosition(SpawnX, SpawnY)
	e.active = e.next
	e.next = Spawn(e.kinds.Next(), PreviewX, PreviewY)

	if e.collides(e.active) {
		e.gameOver = true
		e.ticker.Stop()
	}
}

// OnCommand applies a player command. Movement commands are ignored unless
// the game is playing; a move that would collide is silently rejected.
func (e *Engine) OnCommand(cmd Command) {
	switch cmd {
	case CmdNewGame:
		e.newGame()
		return
	case CmdTogglePause:
		e.togglePause()
		return
	}

	if e.Status() != StatusPlaying {
		return
	}

	switch cmd {
	case CmdRotateLeft:
		e.try((*Piece).RotateLeft)
	case CmdRotateRight:
		e.try((*Piece).RotateRight)
	case CmdMoveLeft:
		e.try((*Piece).MoveLeft)
	case CmdMoveRight:
		e.try((*Piece).MoveRight)
	case CmdHardDrop:
		for !e.touchingGround(e.active) {
			e.active.StepDown()
		}
	}
}

// try applies move to a copy of the active piece and commits it only if
// the copy does not collide.
func (e *Engine) try(move func(*Piece)) {
	trial := e.active.Copy()
	move(&trial)
	if e.collides(trial) {
		return
	}
	move(&e.active)
}

func (e *Engine) togglePause() {
	if e.gameOver {
		return
	}
	if e.ticker.Active() {
		e.ticker.Stop()
		return
	}
	e.schedule(ResumeInterval)
}

// collides reports whether any cell of p is outside the side walls or on a
// solid cell.
func (e *Engine) collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= e.well.Width() {
			return true
		}
		if e.well.IsSolid(c.X, c.Y) {
			return true
		}
	}
	return false
}

// touchingGround reports whether any cell of p rests on a solid cell. Only
// the row below is checked; the side walls are not.
func (e *Engine) touchingGround(p Piece) bool {
	for _, c := range p.Cells() {
		if e.well.IsSolid(c.X, c.Y+1) {
			return true
		}
	}
	return false
}
