package grid

// Column copies column x into dst[:Height()].
// dst must hold at least Height() values; a shorter buffer returns
// ErrDimensionMismatch. Complexity: O(h).
func (g *Grid[T]) Column(x int, dst []T) error {
	if x < 0 || x >= g.w {
		return lineErrorf(ctxColumn, x, ErrOutOfRange)
	}
	if len(dst) < g.h {
		return lineErrorf(ctxColumn, x, ErrDimensionMismatch)
	}
	for y, off := 0, x; y < g.h; y, off = y+1, off+g.w {
		dst[y] = g.data[off]
	}

	return nil
}

// SetColumn overwrites column x with src[:Height()].
func (g *Grid[T]) SetColumn(x int, src []T) error {
	if x < 0 || x >= g.w {
		return lineErrorf(ctxSetColumn, x, ErrOutOfRange)
	}
	if len(src) < g.h {
		return lineErrorf(ctxSetColumn, x, ErrDimensionMismatch)
	}
	for y, off := 0, x; y < g.h; y, off = y+1, off+g.w {
		g.data[off] = src[y]
	}

	return nil
}

// Row copies row y into dst[:Width()].
func (g *Grid[T]) Row(y int, dst []T) error {
	if y < 0 || y >= g.h {
		return lineErrorf(ctxRow, y, ErrOutOfRange)
	}
	if len(dst) < g.w {
		return lineErrorf(ctxRow, y, ErrDimensionMismatch)
	}
	copy(dst, g.data[y*g.w:(y+1)*g.w])

	return nil
}

// SetRow overwrites row y with src[:Width()].
func (g *Grid[T]) SetRow(y int, src []T) error {
	if y < 0 || y >= g.h {
		return lineErrorf(ctxSetRow, y, ErrOutOfRange)
	}
	if len(src) < g.w {
		return lineErrorf(ctxSetRow, y, ErrDimensionMismatch)
	}
	copy(g.data[y*g.w:(y+1)*g.w], src[:g.w])

	return nil
}
