// Package dictionary supplies the pools of valid words the puzzle draws
// targets from and validates guesses against.
//
// Pools are immutable once built. A Provider hands them out through a Load,
// which is published exactly once by closing its Done channel, so readers
// never observe a partially built pool.
package dictionary

import (
	"math/rand"
	"sort"
	"strings"
)

// Pool is an immutable set of lowercase words that all have the same length.
type Pool struct {
	length int
	words  []string            // sorted, for deterministic random picks
	set    map[string]struct{} // membership
}

// NewPool builds a pool of words of exactly length letters.
// Words are lowercased; anything that is not length ASCII letters is dropped,
// as are duplicates.
func NewPool(length int, words []string) *Pool {
	set := make(map[string]struct{}, len(words))
	list := make([]string, 0, len(words))

	for _, w := range words {
		w = normalize(w)
		if !validWord(w, length) {
			continue
		}
		if _, dup := set[w]; dup {
			continue
		}
		set[w] = struct{}{}
		list = append(list, w)
	}
	sort.Strings(list)

	return &Pool{length: length, words: list, set: set}
}

// Length returns the word length shared by every word in the pool.
func (p *Pool) Length() int {
	return p.length
}

// Size returns the number of words in the pool.
func (p *Pool) Size() int {
	return len(p.words)
}

// Contains reports whether word is in the pool. Matching is case-insensitive.
func (p *Pool) Contains(word string) bool {
	_, ok := p.set[strings.ToLower(word)]
	return ok
}

// Word returns the i-th word in sorted order.
func (p *Pool) Word(i int) string {
	return p.words[i]
}

// Random returns a word chosen uniformly at random.
// Returns an empty string for an empty pool.
func (p *Pool) Random(rng *rand.Rand) string {
	if len(p.words) == 0 {
		return ""
	}
	return p.words[rng.Intn(len(p.words))]
}

// Words returns a copy of the pool's words in sorted order.
func (p *Pool) Words() []string {
	out := make([]string, len(p.words))
	copy(out, p.words)
	return out
}

// normalize trims and lowercases a raw dictionary entry.
func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// validWord reports whether w is exactly length lowercase ASCII letters.
func validWord(w string, length int) bool {
	if len(w) != length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
