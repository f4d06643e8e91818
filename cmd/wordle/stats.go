package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

var (
	flagStatsPlayer      string
	flagStatsInteractive bool
	flagStatsReset       bool
	flagStatsRecent      int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics",
	Long: `Display games played, win rate, streaks and the guess distribution
for every mode. Without --player the current OS user is shown; use
--player all to aggregate every player (including SSH users).

Examples:
  wordle stats
  wordle stats --mode hard
  wordle stats --player all
  wordle stats -i
  wordle stats --recent 5
  wordle stats --mode easy --reset`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsPlayer, "player", "", "Player name, or \"all\" (default: current user)")
	statsCmd.Flags().BoolVarP(&flagStatsInteractive, "interactive", "i", false, "Browse statistics in the TUI")
	statsCmd.Flags().BoolVar(&flagStatsReset, "reset", false, "Delete recorded rounds for the player (and --mode, if given)")
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 0, "Also list the last N rounds per mode")
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	player := flagStatsPlayer
	switch player {
	case "":
		player = currentPlayer()
	case "all":
		player = ""
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening statistics database: %w", err)
	}
	defer store.Close()

	if flagStatsReset {
		mode := ""
		if flagMode != "" {
			mode = string(cfg.DefaultMode)
		}
		if err := store.ClearRounds(mode, player); err != nil {
			return err
		}
		fmt.Println("Statistics cleared.")
		return nil
	}

	if flagStatsInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunStats(store, player, cfg.DefaultMode, width, height)
	}

	modes := config.AllModes()
	if flagMode != "" {
		modes = []config.Mode{cfg.DefaultMode}
	}

	all, err := store.AllStats(player)
	if err != nil {
		return err
	}

	who := player
	if who == "" {
		players, err := store.Players()
		if err != nil {
			return err
		}
		who = fmt.Sprintf("all players (%s)", strings.Join(players, ", "))
	}
	fmt.Printf("Statistics - %s\n", who)

	for _, mode := range modes {
		st, ok := all[string(mode)]
		if !ok {
			st = &storage.Stats{Mode: string(mode), Player: player}
		}
		printStats(mode, st)

		if flagStatsRecent > 0 && st.Played > 0 {
			rounds, err := store.RecentRounds(string(mode), player, flagStatsRecent)
			if err != nil {
				return err
			}
			printRounds(rounds, player == "")
		}
	}
	return nil
}

// printStats writes one mode's summary and distribution as plain text.
func printStats(mode config.Mode, st *storage.Stats) {
	spec := config.MustLookup(mode)

	fmt.Println()
	fmt.Printf("%s (%d letters, %d attempts)\n", mode.Title(), spec.WordLength, spec.MaxAttempts)

	if st.Played == 0 {
		fmt.Println("  No rounds played yet.")
		return
	}

	fmt.Printf("  %-8s  %-6s  %-7s  %s\n", "Played", "Win %", "Streak", "Max")
	fmt.Printf("  %-8d  %-6d  %-7d  %d\n", st.Played, st.WinPercent(), st.CurrentStreak, st.MaxStreak)
	fmt.Println()

	most := 0
	for _, n := range st.Distribution {
		most = max(most, n)
	}
	for i, n := range st.Distribution {
		bar := 0
		if most > 0 {
			bar = n * 20 / most
		}
		fmt.Printf("  %d  %s %d\n", i+1, strings.Repeat("#", bar), n)
	}
	fmt.Printf("  Last played %s\n", st.LastPlayed.Format("2006-01-02 15:04"))
}

// printRounds lists rounds newest first with their guesses.
func printRounds(rounds []storage.Round, showPlayer bool) {
	fmt.Println()
	for _, r := range rounds {
		result := fmt.Sprintf("%d/%d", r.Attempts, r.MaxAttempts)
		if !r.Won {
			result = fmt.Sprintf("X/%d", r.MaxAttempts)
		}
		prefix := ""
		if showPlayer {
			prefix = r.Player + " "
		}
		fmt.Printf("  %s  %s%-4s  %s  %s\n",
			r.FinishedAt.Format("2006-01-02 15:04"), prefix, result,
			strings.ToUpper(r.Target), strings.Join(r.Guesses, " "))
	}
}
