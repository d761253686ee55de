package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls:
  Left/H, Right/L  - Move
  Up/K/X           - Rotate clockwise
  Down/J           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start (0.7s per row at level 1)
  normal - Standard start (0.5s per row)
  hard   - Fast start (0.3s per row)

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close on exit

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Display.TickRate
	rt.Seed = flagSeed

	// Get terminal size for the first frame
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := tui.Run(tui.Options{
		Rules:   cfg.Rules(),
		Palette: cfg.Palette(),
		Runtime: rt,
		Logger:  logger,
	}); err != nil {
		logger.Error("game exited with error", "err", err)
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// loadConfig resolves the configuration from files and flags.
func loadConfig() (config.TetrisConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}

	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	if flagFPS != 0 {
		cfg.Display.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.TetrisConfig{}, "", err
	}
	return cfg, source, nil
}
