package puzzle

import "time"

// Outcome is the score of a single letter in a guess.
// Values are ordered: a higher outcome is better information.
type Outcome uint8

const (
	Unscored Outcome = iota // Typed but not submitted, or unknown
	Absent                  // Letter does not occur (any more) in the target
	Present                 // Letter occurs elsewhere in the target
	Exact                   // Letter is in the right position
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Unscored:
		return "unscored"
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// State is the engine's round state.
type State int

const (
	StateAwaitingWord State = iota // Word pool not loaded yet
	StateInProgress                // Accepting letters
	StateWon                       // Target guessed; terminal until a new round
	StateLost                      // Attempts exhausted; terminal until a new round
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAwaitingWord:
		return "awaiting_word"
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Cell is one letter slot in the grid. Letter is 0 for an empty slot.
type Cell struct {
	Letter  byte
	Outcome Outcome
}

// Empty reports whether nothing has been typed into the cell.
func (c Cell) Empty() bool {
	return c.Letter == 0
}

// RoundResult is emitted to the Listener when a round is won or lost.
type RoundResult struct {
	RoundID      string
	Mode         string
	Target       string // lowercase
	AttemptsUsed int
	MaxAttempts  int
	Won          bool
	Guesses      []string // lowercase, in submission order
	FinishedAt   time.Time
}

// Listener receives round results. It is never consulted for decisions.
type Listener interface {
	RoundEnded(RoundResult)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(RoundResult)

// RoundEnded calls f(r).
func (f ListenerFunc) RoundEnded(r RoundResult) {
	f(r)
}
