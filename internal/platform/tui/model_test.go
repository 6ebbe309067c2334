package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetrix/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  int
	frames  [][]core.Action
	resized [2]int
	state   core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Actions)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func newTestModel(t *testing.T, g *fakeGame, opts Options) Model {
	t.Helper()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, opts)
	require.NotNil(t, m.Init())
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g, Options{})
	assert.Equal(t, 1, g.resets)
}

func TestModelBuffersKeysUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, runeKey("h"))
	m, _ = update(t, m, runeKey("x"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Empty(t, g.frames, "keys alone do not step the game")

	m, cmd := update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick reschedules itself")
	require.Len(t, g.frames, 1)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionRotateLeft, core.ActionRight}, g.frames[0])

	_, _ = update(t, m, TickMsg(time.Now()))
	require.Len(t, g.frames, 2)
	assert.Empty(t, g.frames[1], "input is cleared after each frame")
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, cmd := update(t, m, runeKey("q"))

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, m.View())
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 1, g.resets, "resize does not reset")
	assert.Equal(t, [2]int{100, 30 - helpHeight}, g.resized)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 30-helpHeight, m.screen.Height())
}

func TestModelViewIncludesHelp(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	view := m.View()

	assert.Contains(t, view, "fake game")
	assert.Contains(t, view, "left/h")
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	g := &fakeGame{}
	m := newTestModel(t, g, Options{ScreenshotDir: dir})

	path, err := m.writeScreenshot(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "fake_20240301_123000.txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fake game")
}

func TestModelScreenshotKeyDoesNotReachGame(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(t, g, Options{ScreenshotDir: dir})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, _ = update(t, m, TickMsg(time.Now()))
	assert.Empty(t, g.frames[0])
}

func TestModelLogsGameOverOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := &fakeGame{}
	m := newTestModel(t, g, Options{Logger: logger})

	m, _ = update(t, m, TickMsg(time.Now()))
	g.state = core.GameState{GameOver: true, Score: 800}
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("game over")))
	assert.Contains(t, buf.String(), "score=800")
	assert.True(t, m.State().GameOver)
}
