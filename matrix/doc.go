// Package matrix provides the dense storage used by in-place algorithms.
//
// The matrix package provides:
//
//   - Matrix, a small interface over a mutable two-dimensional float64 array
//     with bounds-checked At/Set that return errors instead of panicking.
//   - Dense, a column-major implementation (offset = row + col*rows) whose
//     Reshape reinterprets the flat buffer without copying or reordering it.
//   - Transpose, an out-of-place reference transpose, and AllClose for
//     tolerant element-wise comparison.
//   - FillRandom and FillIndex fixture generators.
//
// Reshape-as-reinterpretation is the contract in-place routines build on:
// after Reshape(r, c) the element at (i, j) is whatever value occupied flat
// position i + j*r before the call.
//
// See package transpose for the in-place transposition built on top of Dense.
package matrix
