package puzzle

import "errors"

// Errors returned by engine operations. All of them are recoverable and leave
// the engine state unchanged; match them with errors.Is.
var (
	// ErrNotReady means the word pool for the current mode has not loaded yet.
	ErrNotReady = errors.New("puzzle: word list not ready")

	// ErrLoadFailed means the word pool load finished with an error.
	ErrLoadFailed = errors.New("puzzle: word list failed to load")

	// ErrInvalidWord means the submitted row is not in the word list.
	ErrInvalidWord = errors.New("puzzle: not in word list")

	// ErrRowFull means a letter was typed into a full row.
	ErrRowFull = errors.New("puzzle: row is full")

	// ErrRowEmpty means backspace was pressed on an empty row.
	ErrRowEmpty = errors.New("puzzle: row is empty")

	// ErrRowIncomplete means a row was submitted before all letters were typed.
	ErrRowIncomplete = errors.New("puzzle: not enough letters")

	// ErrRoundOver means input arrived after the round was won or lost.
	ErrRoundOver = errors.New("puzzle: round is over")

	// ErrInvalidLetter means a non A-Z character was typed.
	ErrInvalidLetter = errors.New("puzzle: not a letter")

	// ErrUnknownMode means a mode name is not in the mode table.
	ErrUnknownMode = errors.New("puzzle: unknown mode")
)
