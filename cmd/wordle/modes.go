package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List difficulty modes",
	Long:  `Shows every mode with its word length and attempt budget.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	fmt.Println("Available modes:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-8s  %-7s  %s\n", "Mode", "Letters", "Attempts")
	fmt.Printf("  %-8s  %-7s  %s\n", "----", "-------", "--------")

	for _, m := range config.AllModes() {
		spec := config.MustLookup(m)
		marker := ""
		if m == config.DefaultMode {
			marker = " (default)"
		}
		fmt.Printf("  %-8s  %-7d  %d%s\n", m, spec.WordLength, spec.MaxAttempts, marker)
	}

	fmt.Println()
	fmt.Println("Play with: wordle play --mode <mode>")
}
