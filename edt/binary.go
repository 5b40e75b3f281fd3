package edt

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvdist/grid"
)

// CostFromBinary maps a feature grid to transform costs: true → 0 and
// false → Infinity. This is the only place where "feature" and
// "background" enter the transform.
func CostFromBinary(bin *grid.Bool, opts ...Option) (*grid.Float, error) {
	if bin == nil {
		return nil, ErrNilGrid
	}
	o := gatherOptions(opts...)

	return costGrid(bin, o.infinity), nil
}

func costGrid(bin *grid.Bool, inf float64) *grid.Float {
	return grid.Map(bin, func(_, _ int, feature bool) float64 {
		if feature {
			return 0
		}

		return inf
	})
}

// Binary2D returns the squared Euclidean distance from every cell of bin to
// its nearest true cell.
//
// If bin has no true cell, every result cell is unreachable and reported per
// the Policy option (exactly Infinity by default). Use HasFeature to detect
// that case before taking square roots or rescaling.
//
// Errors: ErrNilGrid, ErrInfinityTooSmall.
func Binary2D(bin *grid.Bool, opts ...Option) (*grid.Float, error) {
	return Binary2DContext(context.Background(), bin, opts...)
}

// Binary2DContext is Binary2D with cancellation checked between lines.
func Binary2DContext(ctx context.Context, bin *grid.Bool, opts ...Option) (*grid.Float, error) {
	if bin == nil {
		return nil, ErrNilGrid
	}
	o := gatherOptions(opts...)

	costs := costGrid(bin, o.infinity)
	if err := transformOwned(ctx, costs, o); err != nil {
		return nil, fmt.Errorf("edt.Binary2D: %w", err)
	}

	return costs, nil
}

// Binary1D returns the squared distance from every position of bits to the
// nearest true position. Unreachable positions follow the Policy option.
func Binary1D(bits []bool, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if len(bits) == 0 {
		return []float64{}, nil
	}
	if err := validateInfinity(o.infinity, len(bits), 1); err != nil {
		return nil, fmt.Errorf("edt.Binary1D: %w", err)
	}

	f := make([]float64, len(bits))
	for i, feature := range bits {
		if !feature {
			f[i] = o.infinity
		}
	}
	d := Transform1D(f)

	marker := o.marker(len(bits), 1)
	for i, v := range d {
		if v >= o.infinity {
			d[i] = marker
		}
	}

	return d, nil
}

// HasFeature reports whether bin contains at least one true cell.
// A nil grid has none.
func HasFeature(bin *grid.Bool) bool {
	if bin == nil {
		return false
	}
	for _, feature := range bin.All() {
		if feature {
			return true
		}
	}

	return false
}
