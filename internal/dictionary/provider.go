package dictionary

import (
	"context"
	"errors"
	"sync"
)

// ErrPending is returned by Load.Result before the load has completed.
var ErrPending = errors.New("dictionary: load still in progress")

// Provider asynchronously supplies word pools.
// Load must return immediately; the pool arrives when the returned Load is done.
type Provider interface {
	Load(ctx context.Context, length int) *Load
}

// Load is a single in-flight or completed pool load.
// Its result is written once, before Done is closed, and never changes.
type Load struct {
	length int
	done   chan struct{}
	pool   *Pool
	err    error
}

// NewPending creates an unfinished load and the function that completes it.
// Only the first call to resolve has any effect.
func NewPending(length int) (*Load, func(*Pool, error)) {
	l := &Load{
		length: length,
		done:   make(chan struct{}),
	}
	var once sync.Once
	resolve := func(pool *Pool, err error) {
		once.Do(func() {
			l.pool = pool
			l.err = err
			close(l.done)
		})
	}
	return l, resolve
}

// Completed returns a load that is already done.
func Completed(length int, pool *Pool, err error) *Load {
	l, resolve := NewPending(length)
	resolve(pool, err)
	return l
}

// Length returns the requested word length.
func (l *Load) Length() int {
	return l.length
}

// Done returns a channel that is closed once the result is available.
func (l *Load) Done() <-chan struct{} {
	return l.done
}

// Ready reports, without blocking, whether the load has completed.
func (l *Load) Ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Result returns the loaded pool, or ErrPending if the load is not done yet.
func (l *Load) Result() (*Pool, error) {
	if !l.Ready() {
		return nil, ErrPending
	}
	return l.pool, l.err
}

// Wait blocks until the load completes or ctx is done.
// Intended for command-line tools; the interactive engine never waits.
func (l *Load) Wait(ctx context.Context) (*Pool, error) {
	select {
	case <-l.done:
		return l.pool, l.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
