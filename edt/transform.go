package edt

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvdist/grid"
)

// Transform2D computes, for every cell (x,y) of costs,
//
//	min over (x',y') of (x-x')² + (y-y')² + costs(x',y')
//
// Algorithm Outline:
//  1. Clone costs into an owned working grid.
//  2. Column pass: Transform1D along every column, written back in place.
//     Afterwards (x,y) holds min over y' of (y-y')² + cost(x,y').
//  3. Row pass: Transform1D along every row of the intermediate, folding in
//     the (x-x')² term. The per-axis split is exact for squared distance.
//  4. Cells with a value >= Infinity are rewritten per the Policy option.
//
// The caller's grid is never mutated and the result shares no storage with it.
//
// Errors:
//   - ErrNilGrid           — costs is nil.
//   - ErrInfinityTooSmall  — Infinity <= 2·max(W,H)².
//
// A grid with zero width or height is returned as an empty clone.
func Transform2D(costs *grid.Float, opts ...Option) (*grid.Float, error) {
	return Transform2DContext(context.Background(), costs, opts...)
}

// Transform2DContext is Transform2D with cancellation checked between lines.
// On cancellation it returns the context error wrapped; no partial grid is returned.
func Transform2DContext(ctx context.Context, costs *grid.Float, opts ...Option) (*grid.Float, error) {
	if costs == nil {
		return nil, ErrNilGrid
	}
	o := gatherOptions(opts...)

	out := costs.Clone()
	if err := transformOwned(ctx, out, o); err != nil {
		return nil, fmt.Errorf("edt.Transform2D: %w", err)
	}

	return out, nil
}

// transformOwned runs both passes over g in place. g must not be shared
// with the caller.
func transformOwned(ctx context.Context, g *grid.Float, o Options) error {
	if g.Empty() {
		return nil
	}
	w, h := g.Shape()
	if err := validateInfinity(o.infinity, w, h); err != nil {
		return err
	}

	if err := runPass(ctx, g, columnPass, w, h, o.workers); err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	if err := runPass(ctx, g, rowPass, h, w, o.workers); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	markUnreachable(g, o)

	return nil
}

// pass selects the axis a line transform runs along.
type pass int

const (
	columnPass pass = iota
	rowPass
)

// scratch holds the per-worker buffers for one pass.
type scratch struct {
	f, d []float64
	env  *envelope
}

func newScratch(length int) *scratch {
	return &scratch{
		f:   make([]float64, length),
		d:   make([]float64, length),
		env: newEnvelope(length),
	}
}

// transformLine runs the 1D transform over line i of g in place.
func (s *scratch) transformLine(g *grid.Float, p pass, i int) error {
	var err error
	if p == columnPass {
		err = g.Column(i, s.f)
	} else {
		err = g.Row(i, s.f)
	}
	if err != nil {
		return err
	}

	s.env.build(s.f)
	s.env.sample(s.f, s.d)

	if p == columnPass {
		return g.SetColumn(i, s.d)
	}

	return g.SetRow(i, s.d)
}

// runPass transforms lines [0, lines) of g, each of the given length.
// With workers > 1 the lines are split into contiguous bands, one band per
// goroutine; bands are disjoint so no locking is needed. The call returns
// only after every band finished, so the row pass never overlaps the
// column pass.
func runPass(ctx context.Context, g *grid.Float, p pass, lines, length, workers int) error {
	if workers <= 1 || lines < 2 {
		s := newScratch(length)
		for i := 0; i < lines; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.transformLine(g, p, i); err != nil {
				return err
			}
		}

		return nil
	}

	bands := min(workers, lines)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(bands)
	for b := 0; b < bands; b++ {
		lo, hi := bandBounds(lines, bands, b)
		eg.Go(func() error {
			s := newScratch(length)
			for i := lo; i < hi; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				if err := s.transformLine(g, p, i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return eg.Wait()
}

// bandBounds returns the half-open line range [lo, hi) of band b when n lines
// are split into k nearly equal bands. The first n%k bands get one extra line.
func bandBounds(n, k, b int) (lo, hi int) {
	size, extra := n/k, n%k
	lo = b*size + min(b, extra)
	hi = lo + size
	if b < extra {
		hi++
	}

	return lo, hi
}

// markUnreachable rewrites every cell at or above the sentinel with the policy marker.
func markUnreachable(g *grid.Float, o Options) {
	w, h := g.Shape()
	marker := o.marker(w, h)
	g.Update(func(_, _ int, v float64) float64 {
		if v >= o.infinity {
			return marker
		}

		return v
	})
}
