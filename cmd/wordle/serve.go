package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/logging"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wordle SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own puzzle with a mode picker. Statistics
are stored per-server and attributed to the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordle/host_key

Examples:
  wordle serve                           # Listen on :23235 with auto-generated key
  wordle serve --ssh :2222               # Listen on port 2222
  wordle serve --host-key ./my_host_key  # Use specific host key
  wordle serve --db ./stats.db           # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (e.g. 30m)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.Stderr(cfg.Log, "wordle-ssh")
	if err != nil {
		return err
	}

	scfg := tui.DefaultSSHServerConfig()
	scfg.DBPath = cfg.DBPath
	scfg.WordsDir = cfg.WordsDir
	scfg.DefaultMode = cfg.DefaultMode
	scfg.ShowAnswer = cfg.ShowAnswer
	if cfg.SSH.Address != "" {
		scfg.Address = cfg.SSH.Address
	}
	if cfg.SSH.HostKey != "" {
		scfg.HostKeyPath = cfg.SSH.HostKey
	}
	if cfg.SSH.IdleTimeout > 0 {
		scfg.IdleTimeout = cfg.SSH.IdleTimeout
	}

	// Flags win over the config file
	if flagSSHAddr != "" {
		scfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		scfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		scfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(scfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting wordle SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
