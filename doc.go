// Package lvdist computes squared Euclidean distance transforms of 2D
// binary grids.
//
// 🚀 What is lvdist?
//
//	For every cell of a W×H grid, the squared distance to the nearest
//	feature (true) cell, in O(W·H):
//		• 1D lower envelope of parabolas (Felzenszwalb–Huttenlocher)
//		• Separable 2D transform: every column, then every row
//		• Optional parallel passes over disjoint column and row bands
//		• Post-processing: sqrt, min-max scaling, clipping
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/       — generic dense W×H grid with bounds-checked access
//	edt/        — Transform1D, Transform2D, Binary2D and their options
//	postproc/   — Sqrt, MinMaxScale, Clip, ReplaceUnreachable
//	textgrid/   — plain-text input and text/CSV output
//	cmd/lvdist/ — command-line front end
//
// Quick example:
//
//	..#..        4 1 0 1 4
//	.....   →    5 2 1 2 5
//	.....        8 5 4 5 8
//
//	go get github.com/katalvlaran/lvdist/edt
package lvdist
