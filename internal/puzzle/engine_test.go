package puzzle

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/dictionary"
)

// fakeProvider hands out pending loads that tests resolve by hand.
type fakeProvider struct {
	loads    map[int]*dictionary.Load
	resolves map[int]func(*dictionary.Pool, error)
	calls    int
	canceled []context.Context
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		loads:    map[int]*dictionary.Load{},
		resolves: map[int]func(*dictionary.Pool, error){},
	}
}

func (p *fakeProvider) Load(ctx context.Context, length int) *dictionary.Load {
	p.calls++
	p.canceled = append(p.canceled, ctx)
	load, resolve := dictionary.NewPending(length)
	p.loads[length] = load
	p.resolves[length] = resolve
	return load
}

func (p *fakeProvider) resolve(length int, words ...string) {
	p.resolves[length](dictionary.NewPool(length, words), nil)
}

func (p *fakeProvider) fail(length int, err error) {
	p.resolves[length](nil, err)
}

var words5 = []string{"crane", "react", "allot", "lolly", "slate", "trace", "irate", "abide"}

// readyEngine returns a medium engine with a resolved pool and a round on target.
func readyEngine(t *testing.T, target string, listener Listener) (*Engine, *fakeProvider) {
	t.Helper()
	p := newFakeProvider()
	e, err := New(p, Options{Mode: config.ModeMedium, Seed: 1, Listener: listener})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	p.resolve(5, words5...)
	if err := e.StartRoundWith(target); err != nil {
		t.Fatalf("StartRoundWith(%q) failed: %v", target, err)
	}
	return e, p
}

func typeWord(t *testing.T, e *Engine, word string) {
	t.Helper()
	for _, c := range word {
		if err := e.TypeLetter(c); err != nil {
			t.Fatalf("TypeLetter(%c) failed: %v", c, err)
		}
	}
}

func checkInvariants(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.checkInvariants(); err != nil {
		t.Fatalf("invariant broken: %v", err)
	}
}

func TestNewRejectsUnknownMode(t *testing.T) {
	_, err := New(newFakeProvider(), Options{Mode: "impossible"})
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("New() error = %v, want ErrUnknownMode", err)
	}
}

func TestNewDefaultsToMediumMode(t *testing.T) {
	p := newFakeProvider()
	e, err := New(p, Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if e.Mode() != config.DefaultMode {
		t.Errorf("Mode() = %q, want %q", e.Mode(), config.DefaultMode)
	}
	if _, ok := p.loads[5]; !ok {
		t.Error("New() should request the 5 letter pool")
	}
}

func TestNotReadyBeforePoolLoads(t *testing.T) {
	p := newFakeProvider()
	e, err := New(p, Options{Mode: config.ModeMedium})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if e.State() != StateAwaitingWord {
		t.Errorf("State() = %v, want awaiting_word", e.State())
	}
	if e.PoolReady() {
		t.Error("PoolReady() = true before the load resolved")
	}
	if err := e.StartRound(); !errors.Is(err, ErrNotReady) {
		t.Errorf("StartRound() error = %v, want ErrNotReady", err)
	}
	if err := e.TypeLetter('a'); !errors.Is(err, ErrNotReady) {
		t.Errorf("TypeLetter() error = %v, want ErrNotReady", err)
	}
	if _, err := e.SubmitRow(); !errors.Is(err, ErrNotReady) {
		t.Errorf("SubmitRow() error = %v, want ErrNotReady", err)
	}

	select {
	case <-e.Ready():
		t.Fatal("Ready() closed before the load resolved")
	default:
	}

	p.resolve(5, words5...)

	select {
	case <-e.Ready():
	default:
		t.Fatal("Ready() not closed after the load resolved")
	}
	if err := e.StartRound(); err != nil {
		t.Fatalf("StartRound() after load failed: %v", err)
	}
	if e.State() != StateInProgress {
		t.Errorf("State() = %v, want in_progress", e.State())
	}
	checkInvariants(t, e)
}

func TestLoadFailure(t *testing.T) {
	p := newFakeProvider()
	e, _ := New(p, Options{Mode: config.ModeMedium})

	boom := errors.New("disk on fire")
	p.fail(5, boom)

	err := e.StartRound()
	if !errors.Is(err, ErrLoadFailed) {
		t.Errorf("StartRound() error = %v, want ErrLoadFailed", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("StartRound() error = %v, should wrap the load error", err)
	}

	e.Reload()
	if p.calls != 2 {
		t.Errorf("Reload() should request a new load, calls = %d", p.calls)
	}
	p.resolve(5, words5...)
	if err := e.StartRound(); err != nil {
		t.Errorf("StartRound() after Reload failed: %v", err)
	}
}

func TestStartRoundPicksPoolWord(t *testing.T) {
	p := newFakeProvider()
	e, _ := New(p, Options{Mode: config.ModeMedium, Seed: 99})
	p.resolve(5, words5...)

	for i := 0; i < 10; i++ {
		if err := e.StartRound(); err != nil {
			t.Fatalf("StartRound() failed: %v", err)
		}
		if len(e.target) != 5 {
			t.Fatalf("target %q has wrong length", e.target)
		}
		if !e.pool.Contains(string(e.target)) {
			t.Fatalf("target %q is not in the pool", e.target)
		}
		checkInvariants(t, e)
	}
}

func TestStartRoundIsDeterministicForSeed(t *testing.T) {
	targets := func() []string {
		p := newFakeProvider()
		e, _ := New(p, Options{Mode: config.ModeMedium, Seed: 12345})
		p.resolve(5, words5...)
		var out []string
		for i := 0; i < 8; i++ {
			if err := e.StartRound(); err != nil {
				t.Fatalf("StartRound() failed: %v", err)
			}
			out = append(out, string(e.target))
		}
		return out
	}

	a, b := targets(), targets()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("round %d target differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestTypingAndBackspace(t *testing.T) {
	e, _ := readyEngine(t, "crane", nil)

	if err := e.Backspace(); !errors.Is(err, ErrRowEmpty) {
		t.Errorf("Backspace() on empty row error = %v, want ErrRowEmpty", err)
	}

	typeWord(t, e, "rea")
	snap := e.Snapshot()
	if snap.Column != 2 {
		t.Errorf("Column = %d, want 2", snap.Column)
	}
	if snap.Grid[0][0].Letter != 'R' || snap.Grid[0][0].Outcome != Unscored {
		t.Errorf("cell (0,0) = %+v, want unscored R", snap.Grid[0][0])
	}

	if err := e.Backspace(); err != nil {
		t.Fatalf("Backspace() failed: %v", err)
	}
	snap = e.Snapshot()
	if snap.Column != 1 || !snap.Grid[0][2].Empty() {
		t.Errorf("after Backspace column = %d, cell = %+v", snap.Column, snap.Grid[0][2])
	}

	typeWord(t, e, "ct")
	// Row is now "RECT" + one more letter needed
	typeWord(t, e, "s")
	if err := e.TypeLetter('x'); !errors.Is(err, ErrRowFull) {
		t.Errorf("TypeLetter() on full row error = %v, want ErrRowFull", err)
	}
	checkInvariants(t, e)
}

func TestTypeLetterRejectsNonLetters(t *testing.T) {
	e, _ := readyEngine(t, "crane", nil)

	for _, c := range []rune{'1', ' ', '-', 'é', 'Я'} {
		if err := e.TypeLetter(c); !errors.Is(err, ErrInvalidLetter) {
			t.Errorf("TypeLetter(%q) error = %v, want ErrInvalidLetter", c, err)
		}
	}
	if e.Snapshot().Column != -1 {
		t.Error("rejected letters should not move the cursor")
	}
}

func TestSubmitIncompleteRow(t *testing.T) {
	e, _ := readyEngine(t, "crane", nil)

	if _, err := e.SubmitRow(); !errors.Is(err, ErrRowIncomplete) {
		t.Errorf("SubmitRow() on empty row error = %v, want ErrRowIncomplete", err)
	}
	typeWord(t, e, "cra")
	if _, err := e.SubmitRow(); !errors.Is(err, ErrRowIncomplete) {
		t.Errorf("SubmitRow() on partial row error = %v, want ErrRowIncomplete", err)
	}
}

func TestInvalidWordLeavesStateUnchanged(t *testing.T) {
	e, _ := readyEngine(t, "crane", nil)
	typeWord(t, e, "zzzzz")

	before := e.Snapshot()
	for i := 0; i < 3; i++ {
		_, err := e.SubmitRow()
		if !errors.Is(err, ErrInvalidWord) {
			t.Fatalf("SubmitRow() error = %v, want ErrInvalidWord", err)
		}
	}
	after := e.Snapshot()

	if after.Row != before.Row || after.Column != before.Column || after.Attempts != 0 {
		t.Errorf("invalid word changed cursor: before (%d,%d) after (%d,%d)",
			before.Row, before.Column, after.Row, after.Column)
	}
	for c := range after.Grid[0] {
		if after.Grid[0][c] != before.Grid[0][c] {
			t.Errorf("cell (0,%d) changed: %+v -> %+v", c, before.Grid[0][c], after.Grid[0][c])
		}
	}

	// Row stays editable
	if err := e.Backspace(); err != nil {
		t.Errorf("Backspace() after invalid word failed: %v", err)
	}
	checkInvariants(t, e)
}

func TestSubmitScoresRow(t *testing.T) {
	e, _ := readyEngine(t, "react", nil)
	typeWord(t, e, "crane")

	outcomes, err := e.SubmitRow()
	if err != nil {
		t.Fatalf("SubmitRow() failed: %v", err)
	}
	want := []Outcome{Present, Present, Exact, Absent, Present}
	for i := range want {
		if outcomes[i] != want[i] {
			t.Errorf("outcome %d = %v, want %v", i, outcomes[i], want[i])
		}
	}

	snap := e.Snapshot()
	if snap.Row != 1 || snap.Column != -1 || snap.Attempts != 1 {
		t.Errorf("after submit row = %d, column = %d, attempts = %d", snap.Row, snap.Column, snap.Attempts)
	}
	for i, o := range want {
		if snap.Grid[0][i].Outcome != o {
			t.Errorf("grid cell %d outcome = %v, want %v", i, snap.Grid[0][i].Outcome, o)
		}
	}
	if snap.KeyState('a') != Exact || snap.KeyState('N') != Absent || snap.KeyState('c') != Present {
		t.Errorf("keyboard state wrong: a=%v n=%v c=%v", snap.KeyState('a'), snap.KeyState('n'), snap.KeyState('c'))
	}
	if snap.KeyState('z') != Unscored {
		t.Errorf("untouched key = %v, want unscored", snap.KeyState('z'))
	}
	if snap.Answer != "" {
		t.Error("Answer should be hidden while the round is in progress")
	}
	checkInvariants(t, e)
}

func TestKeyboardKeepsBestOutcome(t *testing.T) {
	e, _ := readyEngine(t, "allot", nil)

	// LOLLY marks L exact at index 2; a later absent L must not downgrade it
	typeWord(t, e, "lolly")
	if _, err := e.SubmitRow(); err != nil {
		t.Fatalf("SubmitRow() failed: %v", err)
	}
	if got := e.Snapshot().KeyState('l'); got != Exact {
		t.Errorf("KeyState(l) = %v, want exact", got)
	}
	if got := e.Snapshot().KeyState('y'); got != Absent {
		t.Errorf("KeyState(y) = %v, want absent", got)
	}
}

func TestWinOnFinalAttempt(t *testing.T) {
	var results []RoundResult
	e, _ := readyEngine(t, "crane", ListenerFunc(func(r RoundResult) {
		results = append(results, r)
	}))

	for i := 0; i < e.Spec().MaxAttempts-1; i++ {
		typeWord(t, e, "slate")
		if _, err := e.SubmitRow(); err != nil {
			t.Fatalf("SubmitRow() %d failed: %v", i, err)
		}
		if e.State() != StateInProgress {
			t.Fatalf("State() after attempt %d = %v", i, e.State())
		}
	}

	typeWord(t, e, "crane")
	outcomes, err := e.SubmitRow()
	if err != nil {
		t.Fatalf("final SubmitRow() failed: %v", err)
	}
	if !AllExact(outcomes) {
		t.Errorf("final outcomes = %v, want all exact", outcomes)
	}
	if e.State() != StateWon {
		t.Errorf("State() = %v, want won", e.State())
	}

	if len(results) != 1 {
		t.Fatalf("listener got %d results, want 1", len(results))
	}
	r := results[0]
	if !r.Won || r.AttemptsUsed != e.Spec().MaxAttempts || r.Target != "crane" || r.Mode != "medium" {
		t.Errorf("result = %+v", r)
	}
	if len(r.Guesses) != e.Spec().MaxAttempts || r.Guesses[len(r.Guesses)-1] != "crane" {
		t.Errorf("result guesses = %v", r.Guesses)
	}
	if r.RoundID == "" {
		t.Error("result should carry a round id")
	}
	if e.Snapshot().Answer != "crane" {
		t.Errorf("Answer = %q, want crane", e.Snapshot().Answer)
	}
	checkInvariants(t, e)
}

func TestLossAfterMaxAttempts(t *testing.T) {
	var results []RoundResult
	e, _ := readyEngine(t, "crane", ListenerFunc(func(r RoundResult) {
		results = append(results, r)
	}))

	for i := 0; i < e.Spec().MaxAttempts; i++ {
		typeWord(t, e, "abide")
		if _, err := e.SubmitRow(); err != nil {
			t.Fatalf("SubmitRow() %d failed: %v", i, err)
		}
	}

	if e.State() != StateLost {
		t.Fatalf("State() = %v, want lost", e.State())
	}
	snap := e.Snapshot()
	if snap.Row != snap.MaxAttempts {
		t.Errorf("Row = %d, want %d", snap.Row, snap.MaxAttempts)
	}
	if snap.Answer != "crane" {
		t.Errorf("Answer = %q, want crane", snap.Answer)
	}

	if err := e.TypeLetter('a'); !errors.Is(err, ErrRoundOver) {
		t.Errorf("TypeLetter() after loss error = %v, want ErrRoundOver", err)
	}
	if err := e.Backspace(); !errors.Is(err, ErrRoundOver) {
		t.Errorf("Backspace() after loss error = %v, want ErrRoundOver", err)
	}
	if _, err := e.SubmitRow(); !errors.Is(err, ErrRoundOver) {
		t.Errorf("SubmitRow() after loss error = %v, want ErrRoundOver", err)
	}

	if len(results) != 1 || results[0].Won {
		t.Fatalf("listener results = %+v, want one loss", results)
	}
	checkInvariants(t, e)

	// A new round clears the board
	if err := e.StartRoundWith("react"); err != nil {
		t.Fatalf("StartRoundWith() failed: %v", err)
	}
	snap = e.Snapshot()
	if snap.Row != 0 || snap.Column != -1 || snap.Attempts != 0 || snap.Answer != "" {
		t.Errorf("new round snapshot = %+v", snap)
	}
	if snap.RoundID == results[0].RoundID {
		t.Error("new round should get a new id")
	}
	checkInvariants(t, e)
}

func TestAbandonedRoundEmitsNothing(t *testing.T) {
	calls := 0
	e, _ := readyEngine(t, "crane", ListenerFunc(func(RoundResult) { calls++ }))

	typeWord(t, e, "react")
	if _, err := e.SubmitRow(); err != nil {
		t.Fatalf("SubmitRow() failed: %v", err)
	}
	if err := e.StartRound(); err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("listener called %d times for an abandoned round", calls)
	}
}

func TestSetModeSameIsNoop(t *testing.T) {
	e, p := readyEngine(t, "crane", nil)
	typeWord(t, e, "rea")
	target := string(e.target)
	before := e.Snapshot()

	if err := e.SetMode(config.ModeMedium); err != nil {
		t.Fatalf("SetMode() failed: %v", err)
	}
	if p.calls != 1 {
		t.Errorf("same-mode SetMode() started a load, calls = %d", p.calls)
	}

	after := e.Snapshot()
	if e.State() != StateInProgress || after.Column != 2 || after.Row != before.Row {
		t.Errorf("same-mode SetMode() moved the cursor to row %d col %d", after.Row, after.Column)
	}
	if got := string(e.target); got != target {
		t.Errorf("target = %q after same-mode SetMode(), want %q", got, target)
	}
	if after.RoundID != before.RoundID {
		t.Errorf("RoundID = %q, want %q", after.RoundID, before.RoundID)
	}
	if len(after.Grid) != len(before.Grid) {
		t.Fatalf("grid has %d rows, want %d", len(after.Grid), len(before.Grid))
	}
	for r := range before.Grid {
		for c := range before.Grid[r] {
			if after.Grid[r][c] != before.Grid[r][c] {
				t.Errorf("cell (%d, %d) = %+v, want %+v", r, c, after.Grid[r][c], before.Grid[r][c])
			}
		}
	}
}

func TestSetModeSwitchesPool(t *testing.T) {
	e, p := readyEngine(t, "crane", nil)
	typeWord(t, e, "rea")

	if err := e.SetMode(config.ModeHard); err != nil {
		t.Fatalf("SetMode(hard) failed: %v", err)
	}
	if p.canceled[0].Err() == nil {
		t.Error("switching mode should cancel the previous load context")
	}
	if e.State() != StateAwaitingWord {
		t.Errorf("State() = %v, want awaiting_word", e.State())
	}

	snap := e.Snapshot()
	if snap.WordLength != 6 || snap.MaxAttempts != 7 {
		t.Errorf("hard snapshot dimensions = %dx%d, want 6x7", snap.WordLength, snap.MaxAttempts)
	}
	if len(snap.Grid) != 7 || len(snap.Grid[0]) != 6 {
		t.Errorf("grid = %dx%d, want 7x6", len(snap.Grid), len(snap.Grid[0]))
	}
	if !snap.Grid[0][0].Empty() {
		t.Error("mode switch should clear the grid")
	}
	checkInvariants(t, e)

	if err := e.StartRound(); !errors.Is(err, ErrNotReady) {
		t.Errorf("StartRound() before new pool error = %v, want ErrNotReady", err)
	}

	p.resolve(6, "planet", "garden", "stream")
	if err := e.StartRound(); err != nil {
		t.Fatalf("StartRound() after new pool failed: %v", err)
	}
	if len(e.target) != 6 {
		t.Errorf("target %q should have 6 letters", e.target)
	}
	checkInvariants(t, e)

	if err := e.SetMode("bogus"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("SetMode(bogus) error = %v, want ErrUnknownMode", err)
	}
	if e.Mode() != config.ModeHard {
		t.Error("unknown mode should not change the active mode")
	}
}

func TestStartRoundWithRejectsUnknownWord(t *testing.T) {
	p := newFakeProvider()
	e, _ := New(p, Options{Mode: config.ModeMedium})
	p.resolve(5, words5...)

	if err := e.StartRoundWith("zzzzz"); !errors.Is(err, ErrInvalidWord) {
		t.Errorf("StartRoundWith() error = %v, want ErrInvalidWord", err)
	}
	if e.State() != StateAwaitingWord {
		t.Errorf("State() = %v, want awaiting_word", e.State())
	}
}

func TestPoolLengthMismatchPanics(t *testing.T) {
	p := newFakeProvider()
	e, _ := New(p, Options{Mode: config.ModeMedium})
	p.resolves[5](dictionary.NewPool(4, []string{"word"}), nil)

	defer func() {
		if recover() == nil {
			t.Error("installing a pool of the wrong length should panic")
		}
	}()
	_ = e.StartRound()
}

func TestSnapshotIsIndependent(t *testing.T) {
	e, _ := readyEngine(t, "crane", nil)
	typeWord(t, e, "re")

	snap := e.Snapshot()
	snap.Grid[0][0] = Cell{Letter: 'Z', Outcome: Exact}
	snap.Keyboard[0] = Exact

	fresh := e.Snapshot()
	if fresh.Grid[0][0].Letter != 'R' {
		t.Error("mutating a snapshot grid changed the engine")
	}
	if fresh.Keyboard[0] != Unscored {
		t.Error("mutating a snapshot keyboard changed the engine")
	}
	checkInvariants(t, e)
}

func TestCloseCancelsLoad(t *testing.T) {
	p := newFakeProvider()
	e, _ := New(p, Options{Mode: config.ModeEasy})
	e.Close()

	if p.canceled[0].Err() == nil {
		t.Error("Close() should cancel the pending load context")
	}
}
