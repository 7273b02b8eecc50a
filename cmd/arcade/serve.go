package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/games/tetris"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagVerbose     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard)
and are recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Environment (also read from .env):
  ARCADE_SSH_ADDR, ARCADE_HOST_KEY, ARCADE_DB

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
}

func runServe(_ *cobra.Command, _ []string) error {
	serverLogger := logger.WithPrefix("arcade-ssh")
	serverLogger.SetReportTimestamp(true)
	if flagVerbose {
		serverLogger.SetLevel(log.DebugLevel)
	}

	tcfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	// Every session reads the same file.
	if flagConfig != "" {
		tetris.SetConfigPath(flagConfig)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Tetris = tcfg
	cfg.Logger = serverLogger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
