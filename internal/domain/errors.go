package domain

import "errors"

var (
	// ErrInvalidSelection indicates a metal that is not a member of the catalog.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidState indicates a transition that needs a selected metal
	// was requested while none is selected.
	ErrInvalidState = errors.New("invalid state")

	// ErrNoTransition indicates the current stage has no successor.
	// It is an expected condition; callers may treat it as a no-op.
	ErrNoTransition = errors.New("no transition")

	// ErrInvalidCatalog indicates catalog data failed load-time validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
