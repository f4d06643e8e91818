// Package puzzle implements the word puzzle engine: target selection, guess
// validation, scoring and round progression.
//
// The engine is single-writer. Callers must serialize every method call on
// an Engine; the TUI does this by only touching it from Bubble Tea's Update.
// Word pools arrive asynchronously from a dictionary.Provider and are only
// observed through the provider's completion signal, never waited on.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/dictionary"
)

// Options configures a new Engine.
type Options struct {
	Context    context.Context // Parent for pool loads (default: context.Background())
	Mode       config.Mode     // Starting mode (default: config.DefaultMode)
	Seed       int64           // RNG seed for target selection (0 = time based)
	Listener   Listener        // Receives round results (optional)
	Logger     *log.Logger     // Optional; nil discards
	ShowAnswer bool            // Log the target at debug level when a round starts
}

// Engine is the puzzle state machine.
type Engine struct {
	ctx        context.Context
	provider   dictionary.Provider
	listener   Listener
	logger     *log.Logger
	rng        *rand.Rand
	showAnswer bool

	mode       config.Mode
	spec       config.ModeSpec
	load       *dictionary.Load
	cancelLoad context.CancelFunc
	pool       *dictionary.Pool

	state    State
	roundID  string
	target   []byte   // uppercase
	grid     [][]Cell // spec.MaxAttempts x spec.WordLength
	guess    []byte   // letters typed into the active row
	guesses  []string // submitted rows, lowercase
	row      int      // [0, MaxAttempts]
	col      int      // [-1, WordLength-1]
	keyboard [26]Outcome
}

// New creates an engine and starts loading the pool for its mode.
// The engine starts in StateAwaitingWord; call StartRound once Ready fires.
func New(provider dictionary.Provider, opts Options) (*Engine, error) {
	mode := opts.Mode
	if mode == "" {
		mode = config.DefaultMode
	}
	spec, ok := config.Lookup(mode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		ctx:        ctx,
		provider:   provider,
		listener:   opts.Listener,
		logger:     logger,
		rng:        rand.New(rand.NewSource(seed)),
		showAnswer: opts.ShowAnswer,
		mode:       mode,
		spec:       spec,
		state:      StateAwaitingWord,
	}
	e.resetBoard()
	e.startLoad()
	return e, nil
}

// Mode returns the active mode.
func (e *Engine) Mode() config.Mode {
	return e.mode
}

// Spec returns the active mode's board dimensions.
func (e *Engine) Spec() config.ModeSpec {
	return e.spec
}

// State returns the current round state.
func (e *Engine) State() State {
	return e.state
}

// Ready returns a channel that is closed when the pending pool load
// completes, successfully or not.
func (e *Engine) Ready() <-chan struct{} {
	return e.load.Done()
}

// PoolReady reports, without blocking, whether the pool for the active mode
// is loaded.
func (e *Engine) PoolReady() bool {
	return e.poll() == nil
}

// Reload restarts the pool load for the active mode.
// It is only useful after a load has failed.
func (e *Engine) Reload() {
	e.pool = nil
	e.state = StateAwaitingWord
	e.target = nil
	e.roundID = ""
	e.resetBoard()
	e.startLoad()
}

// Close cancels any pending pool load.
func (e *Engine) Close() {
	if e.cancelLoad != nil {
		e.cancelLoad()
	}
}

// StartRound picks a new random target and clears the board.
// It abandons an unfinished round without reporting a result.
func (e *Engine) StartRound() error {
	if err := e.poll(); err != nil {
		return err
	}
	word := e.pool.Random(e.rng)
	if word == "" {
		return fmt.Errorf("%w: pool is empty", ErrNotReady)
	}
	e.begin(word)
	return nil
}

// StartRoundWith starts a round with a chosen target, which must be in the pool.
func (e *Engine) StartRoundWith(word string) error {
	if err := e.poll(); err != nil {
		return err
	}
	if !e.pool.Contains(word) {
		return fmt.Errorf("%w: %s", ErrInvalidWord, strings.ToLower(word))
	}
	e.begin(strings.ToLower(word))
	return nil
}

// begin resets round state around a validated lowercase target.
func (e *Engine) begin(word string) {
	if len(word) != e.spec.WordLength {
		panic(fmt.Sprintf("puzzle: target %q does not match word length %d", word, e.spec.WordLength))
	}

	e.target = []byte(strings.ToUpper(word))
	e.roundID = uuid.NewString()
	e.resetBoard()
	e.state = StateInProgress

	e.logger.Debug("round started", "round", e.roundID, "mode", e.mode)
	if e.showAnswer {
		e.logger.Debug("target selected", "round", e.roundID, "word", word)
	}
}

// TypeLetter appends a letter to the active row.
// Lowercase input is normalized to uppercase.
func (e *Engine) TypeLetter(c rune) error {
	if err := e.requireInProgress(); err != nil {
		return err
	}
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return ErrInvalidLetter
	}
	if e.col >= e.spec.WordLength-1 {
		return ErrRowFull
	}

	e.col++
	e.guess[e.col] = byte(c)
	e.grid[e.row][e.col] = Cell{Letter: byte(c), Outcome: Unscored}
	return nil
}

// Backspace removes the last letter of the active row.
func (e *Engine) Backspace() error {
	if err := e.requireInProgress(); err != nil {
		return err
	}
	if e.col < 0 {
		return ErrRowEmpty
	}

	e.grid[e.row][e.col] = Cell{}
	e.guess[e.col] = 0
	e.col--
	return nil
}

// SubmitRow scores the fully typed active row.
// A word that is not in the pool is rejected with ErrInvalidWord and the row
// stays editable. On success the scored outcomes are returned.
func (e *Engine) SubmitRow() ([]Outcome, error) {
	if err := e.requireInProgress(); err != nil {
		return nil, err
	}
	if e.col != e.spec.WordLength-1 {
		return nil, ErrRowIncomplete
	}

	word := strings.ToLower(string(e.guess))
	if !e.pool.Contains(word) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWord, word)
	}

	outcomes := Score(string(e.guess), string(e.target))
	for i, o := range outcomes {
		e.grid[e.row][i] = Cell{Letter: e.guess[i], Outcome: o}
		e.markKey(e.guess[i], o)
	}

	e.guesses = append(e.guesses, word)
	e.guess = make([]byte, e.spec.WordLength)
	e.col = -1
	e.row++

	switch {
	case AllExact(outcomes):
		e.finish(StateWon)
	case e.row == e.spec.MaxAttempts:
		e.finish(StateLost)
	}

	return outcomes, nil
}

// SetMode switches difficulty. Switching to the active mode is a no-op.
// Any other switch discards the round and starts loading the new pool;
// StartRound fails with ErrNotReady until that load completes.
func (e *Engine) SetMode(mode config.Mode) error {
	spec, ok := config.Lookup(mode)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if mode == e.mode {
		return nil
	}

	e.logger.Debug("mode changed", "from", e.mode, "to", mode)

	e.mode = mode
	e.spec = spec
	e.pool = nil
	e.target = nil
	e.roundID = ""
	e.state = StateAwaitingWord
	e.resetBoard()
	e.startLoad()
	return nil
}

// finish moves to a terminal state and reports the result.
func (e *Engine) finish(state State) {
	e.state = state

	result := RoundResult{
		RoundID:      e.roundID,
		Mode:         string(e.mode),
		Target:       strings.ToLower(string(e.target)),
		AttemptsUsed: e.row,
		MaxAttempts:  e.spec.MaxAttempts,
		Won:          state == StateWon,
		Guesses:      append([]string(nil), e.guesses...),
		FinishedAt:   time.Now(),
	}

	e.logger.Debug("round ended",
		"round", result.RoundID,
		"mode", result.Mode,
		"won", result.Won,
		"attempts", result.AttemptsUsed,
	)

	if e.listener != nil {
		e.listener.RoundEnded(result)
	}
}

// requireInProgress maps non-playing states to their errors.
func (e *Engine) requireInProgress() error {
	switch e.state {
	case StateInProgress:
		return nil
	case StateAwaitingWord:
		return ErrNotReady
	default:
		return ErrRoundOver
	}
}

// poll installs the pending pool if its load has completed.
func (e *Engine) poll() error {
	if e.pool != nil {
		return nil
	}
	if e.load == nil {
		return ErrNotReady
	}

	pool, err := e.load.Result()
	if errors.Is(err, dictionary.ErrPending) {
		return ErrNotReady
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if pool.Length() != e.spec.WordLength {
		panic(fmt.Sprintf("puzzle: pool length %d does not match word length %d", pool.Length(), e.spec.WordLength))
	}

	e.pool = pool
	return nil
}

// startLoad cancels any superseded load and requests the active mode's pool.
func (e *Engine) startLoad() {
	if e.cancelLoad != nil {
		e.cancelLoad()
	}
	ctx, cancel := context.WithCancel(e.ctx)
	e.cancelLoad = cancel
	e.load = e.provider.Load(ctx, e.spec.WordLength)
}

// resetBoard clears the grid, cursor and guess buffer for the active mode.
func (e *Engine) resetBoard() {
	e.grid = make([][]Cell, e.spec.MaxAttempts)
	for i := range e.grid {
		e.grid[i] = make([]Cell, e.spec.WordLength)
	}
	e.guess = make([]byte, e.spec.WordLength)
	e.guesses = nil
	e.row = 0
	e.col = -1
	e.keyboard = [26]Outcome{}
}

// markKey records the best known outcome for a letter.
func (e *Engine) markKey(letter byte, o Outcome) {
	i := int(letter - 'A')
	if i < 0 || i >= len(e.keyboard) {
		return
	}
	if o > e.keyboard[i] {
		e.keyboard[i] = o
	}
}

// checkInvariants reports the first broken invariant, if any.
func (e *Engine) checkInvariants() error {
	n, rows := e.spec.WordLength, e.spec.MaxAttempts

	if e.col < -1 || e.col > n-1 {
		return fmt.Errorf("column %d out of range", e.col)
	}
	if e.row < 0 || e.row > rows {
		return fmt.Errorf("row %d out of range", e.row)
	}
	if len(e.grid) != rows {
		return fmt.Errorf("grid has %d rows, want %d", len(e.grid), rows)
	}
	if e.target != nil && len(e.target) != n {
		return fmt.Errorf("target length %d, want %d", len(e.target), n)
	}
	if e.pool != nil && e.pool.Length() != n {
		return fmt.Errorf("pool length %d, want %d", e.pool.Length(), n)
	}

	for r, line := range e.grid {
		if len(line) != n {
			return fmt.Errorf("grid row %d has %d cells, want %d", r, len(line), n)
		}
		for c, cell := range line {
			switch {
			case r < e.row && (cell.Empty() || cell.Outcome == Unscored):
				return fmt.Errorf("submitted cell (%d,%d) is not scored", r, c)
			case r == e.row && c <= e.col && (cell.Empty() || cell.Outcome != Unscored):
				return fmt.Errorf("typed cell (%d,%d) is not an unscored letter", r, c)
			case r == e.row && c > e.col && !cell.Empty():
				return fmt.Errorf("cell (%d,%d) past the cursor is not empty", r, c)
			case r > e.row && !cell.Empty():
				return fmt.Errorf("future cell (%d,%d) is not empty", r, c)
			}
		}
	}
	return nil
}
