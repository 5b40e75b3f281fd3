// Package postproc turns squared distance grids into the values callers
// usually want to look at.
//
// The transforms in package edt return squared distances. Sqrt converts them
// to plain Euclidean distances, MinMaxScale maps them onto a display range,
// Clip bounds them, and ReplaceUnreachable rewrites the cells that no feature
// reached. Every function returns a new grid and leaves its input untouched.
//
// Unreachable cells: with edt.UnreachableInf those cells are +Inf, which
// Sqrt keeps and MinMaxScale maps to the top of the range. With the default
// sentinel policy they are a large finite number; run ReplaceUnreachable
// first, or the sentinel will dominate any rescaling.
package postproc
