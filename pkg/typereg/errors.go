package typereg

import "errors"

var (
	// ErrUnknownType indicates a handle that was never registered. It is a
	// registration-order bug in the caller, so it propagates immediately
	// rather than defaulting.
	ErrUnknownType = errors.New("typereg: unknown type handle")

	// ErrEmptyName indicates a registration attempt with an empty name.
	ErrEmptyName = errors.New("typereg: empty type name")

	// ErrSkipSubtree can be returned from a Walk callback to prune the
	// current type's descendants without aborting the traversal.
	ErrSkipSubtree = errors.New("typereg: skip subtree")
)
