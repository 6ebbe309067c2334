package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetrix/internal/config"
	"github.com/vovakirdan/tui-tetrix/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// It doubles as the help.KeyMap for the footer.
type KeyMap struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Left        key.Binding
	Right       key.Binding
	Drop        key.Binding
	NewGame     key.Binding
	Pause       key.Binding
	Quit        key.Binding
	Screenshot  key.Binding
}

// NewKeyMap builds the bindings from configuration.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		RotateLeft:  binding(cfg.RotateLeft, "rotate left"),
		RotateRight: binding(cfg.RotateRight, "rotate right"),
		Left:        binding(cfg.MoveLeft, "left"),
		Right:       binding(cfg.MoveRight, "right"),
		Drop:        binding(cfg.Drop, "drop"),
		NewGame:     binding(cfg.NewGame, "new game"),
		Pause:       binding(cfg.Pause, "pause"),
		Quit:        binding(cfg.Quit, "quit"),
		Screenshot:  binding(cfg.Screenshot, "screenshot"),
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(keys), desc),
	)
}

// keyLabel renders key names the way they are shown in help: "up/x".
func keyLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case " ":
			labels = append(labels, "space")
		case "ctrl+c":
			labels = append(labels, "^c")
		case "ctrl+s":
			labels = append(labels, "^s")
		default:
			labels = append(labels, k)
		}
	}
	return strings.Join(labels, "/")
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateLeft, k.Drop, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop},
		{k.RotateLeft, k.RotateRight},
		{k.NewGame, k.Pause, k.Screenshot, k.Quit},
	}
}

// Bindings lists every binding in display order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		k.RotateLeft, k.RotateRight, k.Left, k.Right, k.Drop,
		k.NewGame, k.Pause, k.Quit, k.Screenshot,
	}
}

// MapKey translates a key message to an action. Quit keys yield
// ActionQuit; unbound keys yield ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// MapKeyToFrame appends the key's action to frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	frame.Set(action)
	return false
}
