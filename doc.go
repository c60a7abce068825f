// Package itranspose transposes dense column-major matrices in place,
// without allocating a second rows×cols buffer.
//
// 🚀 What is in-place-transpose?
//
//	A small, deterministic library built around one routine:
//		• Storage: column-major Dense with bounds-checked At/Set and a
//		  zero-copy Reshape
//		• Square matrices: swap (i,j) with (j,i) above the diagonal
//		• Rectangular matrices: reshape to cols×rows, then follow the
//		  permutation cycles of the flat buffer, one bit of bookkeeping per element
//		• Generic flat slices: the same walk over []T for any numeric T
//
// ✨ Why in place?
//
//   - Memory: a 50k×20k float64 matrix is 8 GB; a copy doubles that
//   - Predictable: single goroutine, no hidden allocation beyond the bitmap
//   - Observable: OnVisit / OnCycle hooks expose the permutation walk
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/    — Matrix interface, column-major Dense, validators, reference Transpose
//	transpose/ — shape classifier, square swapper, cycle permuter, visited bitmap
//
// Quick ASCII example (2×3 stored column-major):
//
//	[1 2 3]          [1 4]
//	[4 5 6]   ──►    [2 5]
//	                 [3 6]
//
//	buffer 1 4 2 5 3 6  ──►  1 2 3 4 5 6
//
// See examples/inplace_transpose.go for a runnable walk-through.
//
//	go get github.com/aldro61/in-place-transpose
package itranspose
