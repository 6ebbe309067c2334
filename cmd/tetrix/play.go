package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetrix/internal/config"
	"github.com/vovakirdan/tui-tetrix/internal/core"
	"github.com/vovakirdan/tui-tetrix/internal/games/tetrix"
	"github.com/vovakirdan/tui-tetrix/internal/platform/tui"
	"github.com/vovakirdan/tui-tetrix/internal/registry"
)

var (
	flagFPS  int
	flagSeed int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls (defaults, see 'tetrix keys'):
  Left/H, Right/L  - Move
  Up/X             - Rotate left
  Down/Z           - Rotate right
  Space            - Drop
  N                - New game
  P                - Pause
  Ctrl+S           - Screenshot to ~/.tetrix/screenshots
  Q/Ctrl+C         - Quit

Examples:
  tetrix play
  tetrix play --fps 30
  tetrix play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = config value)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyStyle(cfg); err != nil {
		return err
	}

	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetrix",
		Level:           cfg.LogLevel(),
	})

	game, err := registry.Create(tetrix.GameID)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	fps := cfg.Display.FPS
	if flagFPS > 0 {
		fps = flagFPS
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Keys:   tui.NewKeyMap(cfg.Keys),
		Logger: logger,
	}
	if dir := config.UserDir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	if err := tui.Run(game, rc, opts); err != nil {
		logger.Error("game exited", "error", err)
		return err
	}
	return nil
}

// openLogFile returns ~/.tetrix/tetrix.log for appending. The alt screen
// owns the terminal while playing, so stderr is only the fallback.
func openLogFile() (io.Writer, func()) {
	dir := config.UserDir()
	if dir == "" {
		return os.Stderr, func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tetrix.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() } //nolint:errcheck
}
