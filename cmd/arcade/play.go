package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/games/tetris"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/platform/tui"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/registry"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move
  Up, W, X         - Rotate clockwise
  Down, S          - Soft drop
  Space            - Hard drop
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 0, speed rises with cleared lines
  normal - Start at level 3, speed rises with cleared lines
  hard   - Start at level 6, speed rises with cleared lines
  fixed  - No progression, stays at the configured start level

Without --difficulty or --level a mode selector is shown first.

Examples:
  arcade play tetris
  arcade play tetris --difficulty hard
  arcade play tetris --level 5
  arcade play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", -1, fmt.Sprintf("Start level 0-%d (-1 = from config)", tetris.MaxStartLevel))
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Failure is reported and play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// localPlayer names local results after the OS user.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}

// prepareTetris applies launch flags and, when no level was chosen on the
// command line, asks for a mode. It reports false if the player backed out.
func prepareTetris(cfg core.RuntimeConfig, preset config.DifficultyPreset, askMode bool) (bool, core.RuntimeConfig, error) {
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)
	tetris.SetStartLevel(flagLevel)

	if !askMode {
		return true, cfg, nil
	}

	tcfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		// The game reports the problem itself; the selector just needs speeds.
		tcfg = config.DefaultTetrisConfig()
	}

	selection, updated, err := tui.RunLevelSelector(tcfg, cfg)
	if err != nil {
		return false, cfg, err
	}
	if selection == nil {
		return false, updated, nil
	}
	selection.ApplyGlobal()
	return true, updated, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if flagLevel > tetris.MaxStartLevel {
		return fmt.Errorf("level %d out of range 0-%d", flagLevel, tetris.MaxStartLevel)
	}

	cfg := terminalConfig()

	if gameID == "tetris" {
		askMode := preset == "" && flagLevel < 0
		proceed, updated, prepErr := prepareTetris(cfg, preset, askMode)
		if prepErr != nil {
			return prepErr
		}
		if !proceed {
			return nil
		}
		cfg = updated
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg, localPlayer()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
