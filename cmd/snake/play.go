package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing. The default variant is "snake", whose grid size comes
from the config file; "snake_fit" sizes the grid to the terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  P                 - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a text screenshot

Difficulty options:
  easy   - Slower start, speeds up as you eat
  normal - Speeds up as you eat
  hard   - Fast start, speeds up as you eat
  fixed  - Constant speed

Examples:
  snake play
  snake play snake_fit
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(snake.VariantClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Debug("starting", "variant", gameID, "fps", flagFPS, "seed", flagSeed, "difficulty", preset)
	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("run %s: %w", gameID, err)
	}
	return nil
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
