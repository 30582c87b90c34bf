package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gensyn-runner/internal/config"
	"github.com/vovakirdan/gensyn-runner/internal/core"
	"github.com/vovakirdan/gensyn-runner/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/Right, A/D  - Switch lane
  Up/W             - Jump (twice with MULTI-THREADING)
  Space/Enter      - Firewall shield (once unlocked)
  Enter            - Start, leave the shop
  1/2/3            - Buy a shop offer
  R                - Reboot after game over or victory
  Q/Ctrl+C         - Quit

Mouse: drag left/right to switch lanes, drag up to jump, click for the shield.

Difficulty options:
  easy   - Start slow, 5 lives
  normal - Start at 30% of the speed ramp
  hard   - Start at 70% of the speed ramp, 2 lives
  fixed  - No speed ramp within a layer

With --watch the tuning file is reloaded when it changes; the new values
apply from the next run.

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./runner.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Preset: preset,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	if flagWatch {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath()
		}
		if path == "" {
			return fmt.Errorf("--watch needs --config or a home directory")
		}
		w, err := config.NewWatcher(path)
		if err != nil {
			return err
		}
		defer w.Close()
		opts.Watcher = w
		logger.Info("watching config", "path", w.Path())
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
