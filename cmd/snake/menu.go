package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()
	chosen := preset

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		selected, err := tui.RunDifficultySelector(cfg, chosen)
		if err != nil {
			return err
		}
		if selected == nil {
			continue // Back to menu
		}
		chosen = *selected
		snake.SetDifficultyPreset(chosen)

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// Fresh seed per game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Debug("starting from menu", "variant", menuResult.GameID, "difficulty", chosen)
		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("run %s: %w", menuResult.GameID, err)
		}
	}
}
