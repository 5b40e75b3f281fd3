// Package edt computes the squared Euclidean distance transform of binary
// and real-valued 2D grids.
//
// 🚀 What is the EDT?
//
//	For every cell of a binary grid, the squared distance to the nearest
//	feature (true) cell. Squared distances are exact integers in grid units²
//	and need no rounding; take the square root afterwards if true Euclidean
//	distances are needed (see package postproc).
//
// ✨ How it works:
//   - 1D: the Felzenszwalb–Huttenlocher lower envelope of parabolas,
//     d[q] = min_p (q-p)² + f[p], in O(N) with a bounded monotone stack.
//   - 2D: the 1D transform along every column, then along every row of the
//     intermediate. Squared Euclidean distance splits into per-axis terms,
//     so the two passes give the exact 2D minimum.
//   - Binary input is mapped to costs first: feature → 0, background → Infinity.
//
// ⚙️ Usage:
//
//	bin, _ := grid.FromRows(rows)          // [][]bool, true = feature
//	dist, err := edt.Binary2D(bin,
//		edt.WithWorkers(4),                 // parallel column/row bands
//		edt.WithUnreachable(edt.UnreachableInf),
//	)
//
// Unreachable cells:
//
//	A grid without any feature has no finite answer. The Infinity sentinel
//	(DefaultInfinity = 1e20) stands in for "no feature"; the Policy option
//	decides how such cells are reported: exactly Infinity (default), +Inf,
//	or clamped to the largest squared distance the grid can hold.
//
// Performance:
//
//   - Time:   O(W·H)
//   - Memory: O(W·H) for the owned result plus O(max(W,H)) scratch per worker.
package edt
