package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/puzzle"
)

// Recorder persists round results as a puzzle.Listener.
// Failures are logged and never reach the engine.
type Recorder struct {
	store  *Store
	player string
	logger *log.Logger
}

// NewRecorder creates a recorder that attributes rounds to player.
func NewRecorder(store *Store, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, player: player, logger: logger}
}

// RoundEnded implements puzzle.Listener.
func (r *Recorder) RoundEnded(res puzzle.RoundResult) {
	if r.store == nil {
		return
	}

	_, err := r.store.SaveRound(Round{
		ID:          res.RoundID,
		Player:      r.player,
		Mode:        res.Mode,
		Target:      res.Target,
		Attempts:    res.AttemptsUsed,
		MaxAttempts: res.MaxAttempts,
		Won:         res.Won,
		Guesses:     res.Guesses,
		FinishedAt:  res.FinishedAt,
	})
	if err != nil {
		r.logger.Error("failed to save round", "round", res.RoundID, "player", r.player, "error", err)
		return
	}

	r.logger.Info("round recorded", "player", r.player, "mode", res.Mode, "won", res.Won, "attempts", res.AttemptsUsed)
}

var _ puzzle.Listener = (*Recorder)(nil)
