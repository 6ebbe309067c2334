package tetrix

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetrix/internal/core"
	"github.com/vovakirdan/tui-tetrix/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "tetrix"

// Game adapts the Engine to the platform's fixed-rate frame loop. Each
// frame it applies the buffered player actions in order, then advances a
// FrameClock and fires every engine tick that has come due.
type Game struct {
	rng    *rand.Rand
	clock  *FrameClock
	engine *Engine

	frame    uint64
	frameDur time.Duration

	screenW int
	screenH int
	style   Style
}

// New creates a game. Reset must be called before the first Step.
func New() *Game {
	return &Game{style: currentStyle()}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetrix" }

// Reset starts a brand new game with a fresh seeded randomizer.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = &FrameClock{}
	g.engine = NewEngine(NewRandRandomizer(g.rng), g.clock)
	g.frame = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frameDur = time.Second / time.Duration(tickRate)
}

// Resize updates the screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	for _, a := range in.Actions {
		if cmd, ok := commandFor(a); ok {
			g.engine.OnCommand(cmd)
		}
	}

	g.clock.Advance(g.frameDur)
	for g.clock.Fire() {
		g.engine.OnTick()
	}

	return core.StepResult{State: g.State()}
}

// commandFor maps a platform action to an engine command.
func commandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionLeft:
		return CmdMoveLeft, true
	case core.ActionRight:
		return CmdMoveRight, true
	case core.ActionRotateLeft:
		return CmdRotateLeft, true
	case core.ActionRotateRight:
		return CmdRotateRight, true
	case core.ActionDrop:
		return CmdHardDrop, true
	case core.ActionNewGame:
		return CmdNewGame, true
	case core.ActionPause:
		return CmdTogglePause, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.engine.Status()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: status == StatusGameOver,
		Paused:   status == StatusPaused,
	}
}

// Snapshot returns the engine snapshot for tests and replays.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Frame returns the number of platform frames stepped since Reset.
func (g *Game) Frame() uint64 { return g.frame }
