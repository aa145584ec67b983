// Package multistep turns a single-step environment into a macro-step
// one: each Step call consumes a short sequence of actions, drives the
// wrapped environment through that many atomic steps and reports a
// stacked window of the most recent observations together with an
// aggregated reward and a collapsed done flag.
package multistep

import "errors"

var (
	// ErrUnsupportedSpace is returned when a space kind cannot be stacked
	ErrUnsupportedSpace = errors.New("unsupported space")
	// ErrUnsupportedReduction is returned for an unknown reward reduction mode
	ErrUnsupportedReduction = errors.New("unsupported reduction")
	// ErrActionCountMismatch is returned when Step receives the wrong
	// number of actions
	ErrActionCountMismatch = errors.New("action count mismatch")
	// ErrEmptyReduction is returned when reducing over zero rewards
	ErrEmptyReduction = errors.New("reduction over empty input")
	// ErrEmptyHistory is returned when stacking an empty frame history
	ErrEmptyHistory = errors.New("empty frame history")
)
