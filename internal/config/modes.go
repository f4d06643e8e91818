package config

import (
	"fmt"
	"strings"
)

// Mode is a difficulty tier controlling word length and attempt budget.
type Mode string

const (
	ModeEasy   Mode = "easy"
	ModeMedium Mode = "medium"
	ModeHard   Mode = "hard"
)

// DefaultMode is the mode a fresh engine starts in.
const DefaultMode = ModeMedium

// ModeSpec describes the board dimensions for a mode.
type ModeSpec struct {
	WordLength  int // Letters per guess (grid columns)
	MaxAttempts int // Guesses allowed per round (grid rows)
}

// modeTable is the canonical lookup table. It is never mutated.
var modeTable = map[Mode]ModeSpec{
	ModeEasy:   {WordLength: 4, MaxAttempts: 5},
	ModeMedium: {WordLength: 5, MaxAttempts: 6},
	ModeHard:   {WordLength: 6, MaxAttempts: 7},
}

// AllModes returns every mode in ascending difficulty.
func AllModes() []Mode {
	return []Mode{ModeEasy, ModeMedium, ModeHard}
}

// Lookup returns the board dimensions for a mode.
func Lookup(m Mode) (ModeSpec, bool) {
	spec, ok := modeTable[m]
	return spec, ok
}

// MustLookup is Lookup for modes already known to be valid.
// Panics on an unknown mode.
func MustLookup(m Mode) ModeSpec {
	spec, ok := modeTable[m]
	if !ok {
		panic(fmt.Sprintf("config: unknown mode %q", m))
	}
	return spec
}

// ParseMode converts a user-supplied name into a Mode.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modeTable[m]; !ok {
		return "", fmt.Errorf("config: unknown mode %q (want easy, medium or hard)", s)
	}
	return m, nil
}

// Title returns a display name for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeEasy:
		return "Easy"
	case ModeMedium:
		return "Medium"
	case ModeHard:
		return "Hard"
	default:
		return string(m)
	}
}

// Lengths returns the distinct word lengths used by all modes.
func Lengths() []int {
	var out []int
	for _, m := range AllModes() {
		out = append(out, modeTable[m].WordLength)
	}
	return out
}
