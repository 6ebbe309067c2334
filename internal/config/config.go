// Package config provides YAML-based configuration loading for the tetrix
// frontends: display style, key bindings, SSH server and logging.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete tetrix configuration.
// Game rules (well size, scoring, speeds) are fixed and not part of it.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Keys    KeysConfig    `yaml:"keys"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls the frame rate and the look of the well.
type DisplayConfig struct {
	FPS         int    `yaml:"fps"`          // platform frames per second
	BlockGlyph  string `yaml:"block_glyph"`  // two-column glyph for solid cells
	EmptyGlyph  string `yaml:"empty_glyph"`  // two-column glyph for empty cells
	LockedColor string `yaml:"locked_color"` // "#RRGGBB"
}

// KeysConfig lists the key names bound to each action, in Bubble Tea's
// key.String() notation ("left", "ctrl+c", " ").
type KeysConfig struct {
	RotateLeft  []string `yaml:"rotate_left"`
	RotateRight []string `yaml:"rotate_right"`
	MoveLeft    []string `yaml:"move_left"`
	MoveRight   []string `yaml:"move_right"`
	Drop        []string `yaml:"drop"`
	NewGame     []string `yaml:"new_game"`
	Pause       []string `yaml:"pause"`
	Quit        []string `yaml:"quit"`
	Screenshot  []string `yaml:"screenshot"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the hardcoded configuration. It matches defaults/tetrix.yaml.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:         60,
			BlockGlyph:  "[]",
			EmptyGlyph:  " .",
			LockedColor: "#A0A0A0",
		},
		Keys: KeysConfig{
			RotateLeft:  []string{"up", "x"},
			RotateRight: []string{"down", "z"},
			MoveLeft:    []string{"left", "h"},
			MoveRight:   []string{"right", "l"},
			Drop:        []string{" "},
			NewGame:     []string{"n"},
			Pause:       []string{"p"},
			Quit:        []string{"q", "ctrl+c"},
			Screenshot:  []string{"ctrl+s"},
		},
		Server: ServerConfig{
			Address:     ":23235",
			HostKey:     ".ssh/tetrix_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values the frontends cannot use.
func (c Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("config: display.fps must be in 1..240, got %d", c.Display.FPS)
	}
	if _, err := ParseHexColor(c.Display.LockedColor); err != nil {
		return fmt.Errorf("config: display.locked_color: %w", err)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("config: server.address is empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if err := c.Keys.validate(); err != nil {
		return fmt.Errorf("config: keys: %w", err)
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Bindings returns the key lists keyed by action name, in display order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{Name: "rotate_left", Keys: k.RotateLeft},
		{Name: "rotate_right", Keys: k.RotateRight},
		{Name: "move_left", Keys: k.MoveLeft},
		{Name: "move_right", Keys: k.MoveRight},
		{Name: "drop", Keys: k.Drop},
		{Name: "new_game", Keys: k.NewGame},
		{Name: "pause", Keys: k.Pause},
		{Name: "quit", Keys: k.Quit},
		{Name: "screenshot", Keys: k.Screenshot},
	}
}

// Binding is one action and the keys that trigger it.
type Binding struct {
	Name string
	Keys []string
}

func (k KeysConfig) validate() error {
	owner := map[string]string{}
	for _, b := range k.Bindings() {
		if len(b.Keys) == 0 && b.Name == "quit" {
			return fmt.Errorf("quit has no keys")
		}
		for _, key := range b.Keys {
			if key == "" {
				return fmt.Errorf("%s has an empty key", b.Name)
			}
			if prev, ok := owner[key]; ok {
				return fmt.Errorf("key %q bound to both %s and %s", key, prev, b.Name)
			}
			owner[key] = b.Name
		}
	}
	return nil
}

// ParseHexColor parses "#RRGGBB" (the leading '#' is optional) into 0xRRGGBB.
func ParseHexColor(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}
