package puzzle

import "github.com/vovakirdan/tui-wordle/internal/config"

// Snapshot is a read-only copy of the engine state for rendering.
// It shares no memory with the engine.
type Snapshot struct {
	Mode        config.Mode
	WordLength  int
	MaxAttempts int
	State       State

	Grid     [][]Cell // MaxAttempts x WordLength
	Row      int      // Active row; equals MaxAttempts once attempts run out
	Column   int      // Last typed column in the active row, -1 when empty
	Attempts int      // Submitted rows

	Keyboard [26]Outcome // Best known outcome per letter A-Z
	Answer   string      // Lowercase target, set only once the round has ended
	RoundID  string
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	grid := make([][]Cell, len(e.grid))
	for i, row := range e.grid {
		grid[i] = append([]Cell(nil), row...)
	}

	s := Snapshot{
		Mode:        e.mode,
		WordLength:  e.spec.WordLength,
		MaxAttempts: e.spec.MaxAttempts,
		State:       e.state,
		Grid:        grid,
		Row:         e.row,
		Column:      e.col,
		Attempts:    len(e.guesses),
		Keyboard:    e.keyboard,
		RoundID:     e.roundID,
	}
	if e.state.Terminal() {
		s.Answer = lower(e.target)
	}
	return s
}

// KeyState returns the best known outcome for a letter.
func (s Snapshot) KeyState(r rune) Outcome {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return Unscored
	}
	return s.Keyboard[r-'A']
}

// Terminal reports whether the round in the snapshot has ended.
func (s Snapshot) Terminal() bool {
	return s.State.Terminal()
}

func lower(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
