package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/platform/tui"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, menuResult.GameID, localPlayer(), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		if gameID == "tetris" {
			proceed, updated, prepErr := prepareTetris(cfg, "", true)
			if prepErr != nil {
				logger.Error("level selector failed", "err", prepErr)
				continue
			}
			cfg = updated
			if !proceed {
				continue
			}
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "err", err)
			continue
		}

		// Update seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		quit, err := tui.Run(game, store, cfg, localPlayer())
		if err != nil {
			logger.Error("cannot run game", "game", gameID, "err", err)
		}
		if quit {
			return nil
		}
	}
}
