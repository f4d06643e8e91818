package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/dictionary"
	"github.com/vovakirdan/tui-wordle/internal/logging"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/puzzle"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

var flagPick bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start a round in the selected mode.

Controls:
  A-Z          - Type a letter
  Backspace    - Delete the last letter
  Enter        - Submit the guess
  1/2/3        - Switch to easy/medium/hard (starts a new round)
  Ctrl+N       - New word
  Tab          - Statistics
  ?            - Toggle help
  Esc/Ctrl+C   - Quit

Examples:
  wordle play
  wordle play --mode easy
  wordle play --pick
  wordle play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the mode from a menu before playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	mode := cfg.DefaultMode
	if flagPick {
		picked, ok, selErr := tui.RunModeSelector(mode, rcfg)
		if selErr != nil {
			return selErr
		}
		// User pressed back or quit
		if !ok {
			return nil
		}
		mode = picked
	}

	logger, closeLog, err := logging.File(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open statistics storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open statistics database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := currentPlayer()

	var listener puzzle.Listener
	if store != nil {
		listener = storage.NewRecorder(store, player, logger)
	}

	engine, err := puzzle.New(dictionary.NewLoader(cfg.WordsDir, logger), puzzle.Options{
		Mode:       mode,
		Seed:       rcfg.Seed,
		Listener:   listener,
		Logger:     logger,
		ShowAnswer: cfg.ShowAnswer,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	return tui.Run(engine, store, player, rcfg)
}

// currentPlayer names the local player after the OS account.
func currentPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
