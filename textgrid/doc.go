// Package textgrid reads binary feature grids from plain text and writes
// distance grids back out as text or CSV.
//
// Input format, one grid row per line:
//
//	..#..
//	.....
//	#...#
//
// '#', '1', 'x', 'X' and '*' mark features; '.', '0', '-', '_' and space mark
// background. Trailing blank lines and a trailing '\r' are ignored.
package textgrid
