// SPDX-License-Identifier: MIT

package postproc

import "errors"

var (
	// ErrNilGrid indicates a nil *grid.Float argument.
	ErrNilGrid = errors.New("postproc: nil grid")

	// ErrNegativeValue indicates a square root of a negative cell.
	ErrNegativeValue = errors.New("postproc: negative value")

	// ErrNaN indicates a NaN cell where ordering is required.
	ErrNaN = errors.New("postproc: NaN value")
)
