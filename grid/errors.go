// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: ..." so wrapped errors stay greppable.
// Detection sites wrap these sentinels with method and coordinates; callers
// match with errors.Is.
var (
	// ErrInvalidDimensions indicates a negative width or height, or a cell count that overflows int.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrDimensionMismatch indicates a buffer whose length does not fit the grid shape.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrOutOfRange indicates a coordinate or line index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)
