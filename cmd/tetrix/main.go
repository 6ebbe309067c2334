// tetrix is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetrix                 - Play in this terminal
//	tetrix play            - Same as above
//	tetrix serve           - Start SSH server for remote play
//	tetrix keys            - Show the active key bindings
//
// Global flags:
//
//	--config <path>        - Use a specific config file
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetrix/internal/config"
	"github.com/vovakirdan/tui-tetrix/internal/core"
	"github.com/vovakirdan/tui-tetrix/internal/games/tetrix"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetrix",
	Short: "Tetrix - falling blocks in your terminal",
	Long: `Tetrix is a falling-block puzzle game for the terminal.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  keys     - Show the active key bindings

Examples:
  tetrix
  tetrix play --seed 42
  tetrix serve --ssh :2222
  tetrix keys --config ./configs/tetrix.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// applyStyle pushes the display settings into the game renderer.
func applyStyle(cfg config.Config) error {
	locked, err := config.ParseHexColor(cfg.Display.LockedColor)
	if err != nil {
		return fmt.Errorf("display.locked_color: %w", err)
	}
	style := tetrix.DefaultStyle()
	style.Block = cfg.Display.BlockGlyph
	style.Empty = cfg.Display.EmptyGlyph
	style.Locked = core.RGB(locked)
	tetrix.SetStyle(style)
	return nil
}
