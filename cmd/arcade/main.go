// arcade is a terminal Tetris arcade, played locally or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db, env ARCADE_DB)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
	// Import games to register them
	_ "github.com/rhapsodic-legacy/Arcade-Arcadia/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger reports CLI warnings and errors on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "arcade",
})

// envDefaults maps flag names to the environment variables that can supply them.
var envDefaults = map[string]string{
	"db":       "ARCADE_DB",
	"ssh":      "ARCADE_SSH_ADDR",
	"host-key": "ARCADE_HOST_KEY",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Arcadia - Tetris in your terminal",
	Long: `Arcade Arcadia is a terminal arcade for playing Tetris locally
or over SSH, with a shared high score table.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play tetris
  arcade play tetris --level 5
  arcade menu
  arcade serve --ssh :2222
  arcade scores tetris`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnvDefaults(cmd.Flags())
	},
}

// applyEnvDefaults loads .env if present and fills unset flags from the environment.
func applyEnvDefaults(flags *pflag.FlagSet) error {
	_ = godotenv.Load()

	for name, env := range envDefaults {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
