package dictionary

import (
	"bufio"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed words/*.txt
var embeddedWords embed.FS

// ErrNoWords is returned when no usable words exist for a length.
var ErrNoWords = errors.New("dictionary: no words available")

// ctxCheckEvery is how many lines are read between cancellation checks.
const ctxCheckEvery = 256

// Loader is the default Provider. It reads words<N>.txt from an optional
// directory, falling back to the built-in lists, and caches finished pools
// by length. Safe for concurrent use by many engines.
type Loader struct {
	dir    string
	logger *log.Logger

	mu    sync.Mutex
	cache map[int]*Pool
}

// NewLoader creates a loader. dir may be empty to use only the built-in lists.
// A nil logger discards output.
func NewLoader(dir string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		dir:    dir,
		logger: logger,
		cache:  make(map[int]*Pool),
	}
}

// Load starts loading the pool for length and returns immediately.
func (l *Loader) Load(ctx context.Context, length int) *Load {
	load, resolve := NewPending(length)

	l.mu.Lock()
	pool, cached := l.cache[length]
	l.mu.Unlock()
	if cached {
		resolve(pool, nil)
		return load
	}

	go func() {
		start := time.Now()
		pool, source, err := l.read(ctx, length)
		if err != nil {
			l.logger.Warn("dictionary load failed", "length", length, "error", err)
			resolve(nil, err)
			return
		}

		l.mu.Lock()
		l.cache[length] = pool
		l.mu.Unlock()

		l.logger.Info("dictionary loaded",
			"length", length,
			"words", pool.Size(),
			"source", source,
			"elapsed", time.Since(start),
		)
		resolve(pool, nil)
	}()

	return load
}

// read opens the best source for length and parses it into a pool.
func (l *Loader) read(ctx context.Context, length int) (*Pool, string, error) {
	name := FileName(length)

	if l.dir != "" {
		path := filepath.Join(l.dir, name)
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			pool, err := readPool(ctx, f, length)
			if err != nil {
				return nil, path, fmt.Errorf("dictionary: reading %s: %w", path, err)
			}
			return pool, path, nil
		case errors.Is(err, fs.ErrNotExist):
			l.logger.Debug("no word file in words dir, using built-in list", "path", path)
		default:
			return nil, path, fmt.Errorf("dictionary: opening %s: %w", path, err)
		}
	}

	f, err := embeddedWords.Open("words/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("%w for length %d", ErrNoWords, length)
	}
	defer f.Close()

	pool, err := readPool(ctx, f, length)
	if err != nil {
		return nil, "builtin", fmt.Errorf("dictionary: reading built-in %s: %w", name, err)
	}
	return pool, "builtin", nil
}

// readPool parses one word per line. Blank lines and lines starting
// with # are skipped.
func readPool(ctx context.Context, r io.Reader, length int) (*Pool, error) {
	words, err := ReadWords(ctx, r)
	if err != nil {
		return nil, err
	}

	pool := NewPool(length, words)
	if pool.Size() == 0 {
		return nil, fmt.Errorf("%w for length %d", ErrNoWords, length)
	}
	return pool, nil
}

// ReadWords scans r for candidate words, one per line.
// Lines are trimmed; blank lines and # comments are skipped.
func ReadWords(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// FileName returns the word file name for a length, e.g. words5.txt.
func FileName(length int) string {
	return fmt.Sprintf("words%d.txt", length)
}

// Ensure Loader implements Provider
var _ Provider = (*Loader)(nil)
