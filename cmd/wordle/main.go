// wordle is a terminal word-guessing puzzle with three difficulty modes.
//
// Usage:
//
//	wordle play              - Play a round (default command)
//	wordle modes             - List difficulty modes
//	wordle stats             - Show statistics
//	wordle check <word>      - Check whether a word is accepted
//	wordle config            - Print the effective configuration
//	wordle serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Path to a YAML config file
//	--mode <name>       - easy, medium or hard
//	--seed <value>      - RNG seed for reproducible targets
//	--db <path>         - Statistics database path (default: ~/.wordle/stats.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagMode     string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - guess the hidden word in your terminal",
	Long: `Wordle is a terminal word-guessing puzzle.

Guess the hidden word within a limited number of attempts. After each
guess every letter is marked: green is in the right place, yellow is in
the word but elsewhere, gray is not in the word.

Modes:
  easy    - 4 letters, 5 attempts
  medium  - 5 letters, 6 attempts
  hard    - 6 letters, 7 attempts

Examples:
  wordle
  wordle play --mode hard
  wordle stats
  wordle check crane
  wordle config --default
  wordle serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Difficulty mode: easy, medium, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to statistics database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the mode from a menu before playing")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the configuration and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagMode != "" {
		mode, err := config.ParseMode(flagMode)
		if err != nil {
			return cfg, err
		}
		cfg.DefaultMode = mode
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}
