package puzzle

import "fmt"

// Score compares a guess against the target letter by letter.
//
// Pass 1 marks exact matches and consumes those target positions.
// Pass 2 walks the remaining guess letters left to right; each one consumes
// the first unconsumed occurrence of the same letter in the target and is
// marked Present, or is marked Absent when none is left.
//
// A repeated letter therefore never scores more Present+Exact outcomes than it
// occurs in the target, and exact matches always win over Present.
// guess and target must have equal length; anything else panics.
func Score(guess, target string) []Outcome {
	if len(guess) != len(target) {
		panic(fmt.Sprintf("puzzle: Score length mismatch: guess %d, target %d", len(guess), len(target)))
	}

	n := len(target)
	out := make([]Outcome, n)
	consumed := make([]bool, n)

	// Pass 1: exact matches
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			out[i] = Exact
			consumed[i] = true
		}
	}

	// Pass 2: present or absent, consuming left to right
	for i := 0; i < n; i++ {
		if out[i] == Exact {
			continue
		}
		out[i] = Absent
		for j := 0; j < n; j++ {
			if !consumed[j] && target[j] == guess[i] {
				out[i] = Present
				consumed[j] = true
				break
			}
		}
	}

	return out
}

// AllExact reports whether every outcome is Exact.
func AllExact(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o != Exact {
			return false
		}
	}
	return len(outcomes) > 0
}
