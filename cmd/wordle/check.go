package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/dictionary"
)

var checkCmd = &cobra.Command{
	Use:   "check <word>",
	Short: "Check whether a word is accepted as a guess",
	Long: `Loads the word list for the word's length and reports whether the
word would be accepted as a guess.

Examples:
  wordle check crane
  wordle check --config ./wordle.yaml zebra`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	word := strings.ToLower(strings.TrimSpace(args[0]))
	n := len(word)

	var mode config.Mode
	for _, m := range config.AllModes() {
		if config.MustLookup(m).WordLength == n {
			mode = m
			break
		}
	}
	if mode == "" {
		return fmt.Errorf("no mode uses %d-letter words", n)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	loader := dictionary.NewLoader(cfg.WordsDir, log.New(io.Discard))
	pool, err := loader.Load(ctx, n).Wait(ctx)
	if err != nil {
		return err
	}

	if pool.Contains(word) {
		fmt.Printf("%q is a valid %s guess (%d words in list)\n", word, mode, pool.Size())
		return nil
	}
	fmt.Printf("%q is not in the %d-letter word list\n", word, n)
	return nil
}
