// SPDX-License-Identifier: MIT

// Package grid - dense row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula y*width + x.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep construction deterministic: every cell starts from an explicit fill value.
//
// Complexity quicksheet:
//   - New: O(w*h) fill; At/Set: O(1); Clone: O(w*h); Values: O(w*h).

package grid

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxColumn    = "Column"
	ctxSetColumn = "SetColumn"
	ctxRow       = "Row"
	ctxSetRow    = "SetRow"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps err with the method name and the offending coordinates.
func gridErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, x, y, err)
}

// lineErrorf wraps err with the method name and the offending line index.
func lineErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Grid.%s(%d): %w", method, idx, err)
}

// Point is a cell coordinate within a grid.
type Point struct {
	X, Y int
}

// Grid is a dense two-dimensional array of fixed width and height.
//   - w,h hold dimensions (>= 0).
//   - data is a flat buffer of length w*h in row-major order (offset = y*w + x).
type Grid[T any] struct {
	w, h int
	data []T
}

// Bool is a grid of feature flags; true marks a feature (occupied) cell.
type Bool = Grid[bool]

// Float is a grid of real values (costs or squared distances).
type Float = Grid[float64]

// checkedArea returns width*height, rejecting negative sides and products
// that do not fit in an int.
func checkedArea(width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, ErrInvalidDimensions
	}
	if height != 0 && width > math.MaxInt/height {
		return 0, ErrInvalidDimensions
	}

	return width * height, nil
}

// New creates a width×height grid with every cell set to fill.
//
// Behavior highlights:
//   - Zero width or height is legal and produces an empty grid.
//   - Negative dimensions, or a cell count that overflows int, return
//     ErrInvalidDimensions.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New[T any](width, height int, fill T) (*Grid[T], error) {
	area, err := checkedArea(width, height)
	if err != nil {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", width, height, err)
	}
	buf := make([]T, area)
	for i := range buf {
		buf[i] = fill
	}

	return &Grid[T]{w: width, h: height, data: buf}, nil
}

// FromRows builds a grid from rows[y][x], deep-copying the input.
// An empty outer slice yields a 0×0 grid; rows of differing lengths
// return ErrNonRectangular.
// Complexity: O(w*h) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	h := len(rows)
	if h == 0 {
		return &Grid[T]{}, nil
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid.FromRows: row %d has length %d, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	buf := make([]T, 0, w*h)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return &Grid[T]{w: w, h: h, data: buf}, nil
}

// FromSlice builds a width×height grid from a row-major buffer.
// The buffer is copied; later changes to data do not affect the grid.
func FromSlice[T any](width, height int, data []T) (*Grid[T], error) {
	area, err := checkedArea(width, height)
	if err != nil {
		return nil, fmt.Errorf("grid.FromSlice(%d,%d): %w", width, height, err)
	}
	if len(data) != area {
		return nil, fmt.Errorf("grid.FromSlice(%d,%d): len=%d: %w", width, height, len(data), ErrDimensionMismatch)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Grid[T]{w: width, h: height, data: buf}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Shape packs Width() and Height() into a single call.
func (g *Grid[T]) Shape() (width, height int) { return g.w, g.h }

// Len returns the number of cells, Width()*Height().
func (g *Grid[T]) Len() int { return len(g.data) }

// Empty reports whether the grid has no cells.
func (g *Grid[T]) Empty() bool { return len(g.data) == 0 }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// index maps (x,y) to its row-major offset or returns ErrOutOfRange.
func (g *Grid[T]) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, ErrOutOfRange
	}

	return y*g.w + x, nil
}

// Coordinate converts a row-major offset back to (x,y).
// The caller must pass 0 <= idx < Len().
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.w, idx / g.w
}

// At returns the value at (x,y) or a wrapped ErrOutOfRange.
// Never panics and never clamps.
func (g *Grid[T]) At(x, y int) (T, error) {
	off, err := g.index(x, y)
	if err != nil {
		var zero T
		return zero, gridErrorf(ctxAt, x, y, err)
	}

	return g.data[off], nil
}

// Set stores v at (x,y) or returns a wrapped ErrOutOfRange.
func (g *Grid[T]) Set(x, y int, v T) error {
	off, err := g.index(x, y)
	if err != nil {
		return gridErrorf(ctxSet, x, y, err)
	}
	g.data[off] = v

	return nil
}

// Clone returns a deep copy; mutations of either grid do not affect the other.
// Complexity: O(w*h).
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{w: g.w, h: g.h, data: cp}
}

// Values returns a row-major copy of the cells: Values()[y*Width()+x] == At(x,y).
func (g *Grid[T]) Values() []T {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return cp
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(x, y int, v T)) {
	for idx, v := range g.data {
		fn(idx%g.w, idx/g.w, v)
	}
}

// Update replaces every cell with fn's result, visiting cells in row-major order.
func (g *Grid[T]) Update(fn func(x, y int, v T) T) {
	for idx, v := range g.data {
		g.data[idx] = fn(idx%g.w, idx/g.w, v)
	}
}

// All returns an iterator over (Point, value) pairs in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for idx, v := range g.data {
			if !yield(Point{X: idx % g.w, Y: idx / g.w}, v) {
				return
			}
		}
	}
}

// Map builds a new grid of the same shape with out(x,y) = fn(x, y, g(x,y)).
func Map[T, U any](g *Grid[T], fn func(x, y int, v T) U) *Grid[U] {
	buf := make([]U, len(g.data))
	for idx, v := range g.data {
		buf[idx] = fn(idx%g.w, idx/g.w, v)
	}

	return &Grid[U]{w: g.w, h: g.h, data: buf}
}

// String renders one bracketed line per row, for diagnostics.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.WriteString(_fmtRowOpen)
		base := y * g.w
		for x := 0; x < g.w; x++ {
			fmt.Fprintf(&b, "%v", g.data[base+x])
			if x+1 < g.w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
