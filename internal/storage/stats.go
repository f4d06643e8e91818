package storage

import (
	"fmt"
	"time"
)

// Stats contains aggregated statistics for one mode.
type Stats struct {
	Mode          string
	Player        string // Empty when aggregated over all players
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	// Distribution[i] counts wins in i+1 attempts.
	Distribution []int
	LastPlayed   time.Time
}

// WinPercent returns the win rate rounded down to a whole percent.
func (s Stats) WinPercent() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}

// Stats computes statistics for a mode in chronological order.
// An empty player aggregates every player.
func (s *Store) Stats(mode, player string) (*Stats, error) {
	rows, err := s.db.Query(
		`SELECT attempts, max_attempts, won, finished_at
		 FROM rounds
		 WHERE mode = ? AND (? = '' OR player = ?)
		 ORDER BY finished_at ASC, rowid ASC`,
		mode, player, player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	st := &Stats{Mode: mode, Player: player}
	streak := 0
	for rows.Next() {
		var attempts, maxAttempts, won int
		var nanos int64
		if err := rows.Scan(&attempts, &maxAttempts, &won, &nanos); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		st.Played++
		st.LastPlayed = time.Unix(0, nanos)

		if won == 0 {
			streak = 0
			continue
		}

		st.Wins++
		streak++
		if streak > st.MaxStreak {
			st.MaxStreak = streak
		}

		if maxAttempts > len(st.Distribution) {
			grown := make([]int, maxAttempts)
			copy(grown, st.Distribution)
			st.Distribution = grown
		}
		if attempts >= 1 && attempts <= len(st.Distribution) {
			st.Distribution[attempts-1]++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	st.CurrentStreak = streak
	return st, nil
}

// AllStats retrieves statistics for every mode that has been played.
func (s *Store) AllStats(player string) (map[string]*Stats, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT mode FROM rounds WHERE ? = '' OR player = ?",
		player, player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query modes: %w", err)
	}

	var modes []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		modes = append(modes, m)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	out := make(map[string]*Stats, len(modes))
	for _, m := range modes {
		st, err := s.Stats(m, player)
		if err != nil {
			return nil, err
		}
		out[m] = st
	}
	return out, nil
}
