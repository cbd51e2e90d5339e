package poker

import "errors"

// Evaluation failures are ordinary recoverable errors so callers can fall
// back to a safe default action. Match with errors.Is.
var (
	// ErrInvalidInput indicates an out-of-range card id, rank or suit,
	// or a duplicated card.
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse indicates malformed card notation.
	ErrParse = errors.New("parse error")

	// ErrInsufficientCards indicates fewer than two cards were supplied
	// where at least two are required.
	ErrInsufficientCards = errors.New("insufficient cards")
)
