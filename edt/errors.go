package edt

import "errors"

var (
	// ErrNilGrid indicates a nil grid was passed to a transform.
	ErrNilGrid = errors.New("edt: grid is nil")

	// ErrInfinityTooSmall indicates the Infinity sentinel does not dominate
	// every squared distance the grid can produce.
	ErrInfinityTooSmall = errors.New("edt: infinity sentinel too small for grid")

	// ErrUnknownPolicy indicates an unrecognized unreachable-cell policy name.
	ErrUnknownPolicy = errors.New("edt: unknown unreachable policy")
)
