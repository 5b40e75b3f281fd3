package edt_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvdist/edt"
	"github.com/katalvlaran/lvdist/grid"
)

// mustBinary builds a feature grid from strings; '#' marks a feature cell.
func mustBinary(t testing.TB, rows ...string) *grid.Bool {
	t.Helper()
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, r := range row {
			cells[y][x] = r == '#'
		}
	}
	g, err := grid.FromRows(cells)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return g
}

// mustAt reads g(x,y) or fails the test.
func mustAt(t testing.TB, g *grid.Float, x, y int) float64 {
	t.Helper()
	v, err := g.At(x, y)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", x, y, err)
	}

	return v
}

// randomBinary returns a w×h grid where each cell is a feature with probability p.
func randomBinary(t testing.TB, w, h int, p float64, rng *rand.Rand) *grid.Bool {
	t.Helper()
	g, err := grid.New(w, h, false)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	g.Update(func(_, _ int, _ bool) bool { return rng.Float64() < p })

	return g
}

// bruteForce1D evaluates min_p (q-p)² + f[p] directly. O(n²).
func bruteForce1D(f []float64) []float64 {
	d := make([]float64, len(f))
	for q := range f {
		best := math.Inf(1)
		for p := range f {
			dq := float64(q - p)
			best = math.Min(best, dq*dq+f[p])
		}
		d[q] = best
	}

	return d
}

// bruteForce2D evaluates min over (x',y') of (x-x')² + (y-y')² + costs(x',y'). O((W·H)²).
func bruteForce2D(costs *grid.Float) *grid.Float {
	return grid.Map(costs, func(x, y int, _ float64) float64 {
		best := math.Inf(1)
		for p, c := range costs.All() {
			dx, dy := float64(x-p.X), float64(y-p.Y)
			best = math.Min(best, dx*dx+dy*dy+c)
		}

		return best
	})
}

// bruteForceBinary is bruteForce2D over the default binary cost mapping.
func bruteForceBinary(t testing.TB, bin *grid.Bool) *grid.Float {
	t.Helper()
	costs, err := edt.CostFromBinary(bin)
	if err != nil {
		t.Fatalf("CostFromBinary: %v", err)
	}

	return bruteForce2D(costs)
}

// closeTo reports |a-b| <= 1e-9·max(1,|b|).
func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func posInf() float64 { return math.Inf(1) }
func negInf() float64 { return math.Inf(-1) }
func nan() float64    { return math.NaN() }
