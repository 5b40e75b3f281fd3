// SPDX-License-Identifier: MIT

package postproc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvdist/grid"
)

// Sqrt returns the element-wise square root of g.
// Apply it to a squared distance transform to obtain Euclidean distances.
// +Inf stays +Inf.
//
// Errors: ErrNilGrid, ErrNegativeValue (wrapped with the cell coordinates).
func Sqrt(g *grid.Float) (*grid.Float, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for p, v := range g.All() {
		if v < 0 {
			return nil, fmt.Errorf("postproc.Sqrt(%d,%d): %g: %w", p.X, p.Y, v, ErrNegativeValue)
		}
	}

	return grid.Map(g, func(_, _ int, v float64) float64 { return math.Sqrt(v) }), nil
}

// MinMaxScale maps the finite values of g linearly onto [lo, hi]:
//
//	v' = lo + (v - min) / (max - min) · (hi - lo)
//
// min and max are taken over finite cells only. +Inf maps to hi and -Inf to
// lo. A grid whose finite cells are all equal maps those cells to lo.
// hi < lo is allowed and inverts the ramp.
//
// Errors: ErrNilGrid, ErrNaN.
func MinMaxScale(g *grid.Float, lo, hi float64) (*grid.Float, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	vals := g.Values()
	if floats.HasNaN(vals) {
		return nil, fmt.Errorf("postproc.MinMaxScale: %w", ErrNaN)
	}

	finite := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	var vmin, span float64
	if len(finite) > 0 {
		vmin = floats.Min(finite)
		span = floats.Max(finite) - vmin
	}

	return grid.Map(g, func(_, _ int, v float64) float64 {
		switch {
		case math.IsInf(v, 1):
			return hi
		case math.IsInf(v, -1), span == 0:
			return lo
		}

		return lo + (v-vmin)/span*(hi-lo)
	}), nil
}

// Clip clamps every cell of g into [lo, hi]. Bounds given in the wrong
// order are swapped.
func Clip(g *grid.Float, lo, hi float64) (*grid.Float, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return grid.Map(g, func(_, _ int, v float64) float64 {
		return math.Min(math.Max(v, lo), hi)
	}), nil
}

// ReplaceUnreachable returns a copy of g with every cell >= threshold set to
// val. Pass the transform's Infinity as threshold to catch sentinel cells;
// +Inf cells are caught by any finite threshold.
func ReplaceUnreachable(g *grid.Float, threshold, val float64) (*grid.Float, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return grid.Map(g, func(_, _ int, v float64) float64 {
		if v >= threshold {
			return val
		}

		return v
	}), nil
}
