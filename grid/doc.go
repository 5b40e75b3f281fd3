// Package grid provides a dense, fixed-size two-dimensional array used as
// the storage abstraction for distance transforms.
//
// What:
//
//   - Grid[T] stores Width×Height values row-major (offset = y*Width + x).
//   - At/Set are bounds-checked and return ErrOutOfRange instead of panicking.
//   - Column/Row copy whole lines in and out, which is what separable
//     algorithms need.
//   - Bool and Float are the two instantiations the edt package works with.
//
// Coordinates:
//
//	x ∈ [0, Width)  is the fast-varying (column) index
//	y ∈ [0, Height) is the row index
//
// Complexity:
//
//   - New/FromRows/FromSlice/Clone: O(W×H) time and memory.
//   - At/Set/InBounds: O(1).
//   - Column/Row/SetColumn/SetRow: O(H) resp. O(W).
//
// Errors:
//
//   - ErrInvalidDimensions: negative width or height.
//   - ErrNonRectangular: FromRows input with rows of differing lengths.
//   - ErrDimensionMismatch: buffer length does not match the grid shape.
//   - ErrOutOfRange: coordinate or line index outside the grid.
//
// A zero width or height is legal and yields an empty grid; algorithms are
// expected to treat it as a no-op rather than an error.
package grid
