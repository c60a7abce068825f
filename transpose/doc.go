// Package transpose transposes dense column-major matrices in place, without
// allocating a second rows×cols buffer.
//
// What
//
//   - InPlace(m) replaces m with its transpose. The shape is swapped as a side
//     effect when m is rectangular and left alone when m is square.
//   - Slice(data, rows, cols) does the same on a raw column-major slice of any
//     integer, float or complex element type.
//   - Two strategies, selected by Classify:
//   - square (rows == cols): swap every (i, j) with (j, i) above the diagonal;
//   - cycle  (rows != cols): reshape to cols×rows, then move every element to
//     its transposed position by following permutation cycles.
//
// Why
//
//   - An out-of-place transpose doubles peak memory. Here the extra state is
//     O(1) scalars plus one visited bit per element.
//   - The permutation walk has poor locality by construction: this is a
//     memory-optimal routine, not a cache-optimal one.
//
// The permutation
//
//	For an m×n matrix stored column-major and reshaped to n×m, the flat
//	position p of the reshaped buffer must receive the element that sat at
//
//	    σ(p) = (p mod m)·n + (p div m)
//
//	The positions [0, m·n) split into disjoint cycles of σ. Each cycle is
//	walked once carrying one displaced value; the visited bitmap guarantees
//	that every position is handled exactly once, so the work is exactly m·n
//	bitmap writes and m·n element moves. The permutation is never materialized.
//
// Storage contract
//
//	InPlace relies on Reshape being a pure reinterpretation of the existing
//	buffer: no reallocation, no reordering, no zeroing. *matrix.Dense honours
//	it. A Reshape that fails to report the swapped shape yields
//	ErrReshapeContract; one that silently reorders data cannot be detected and
//	produces a wrong result.
//
// Concurrency
//
//	A call is synchronous and single-threaded. The caller must own the matrix
//	exclusively for the duration of the call; nothing is locked internally.
//	There is no cancellation: a call that fails mid-cycle (only possible when
//	the storage's At/Set return errors) leaves the matrix partially permuted.
//
// Usage
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	if err := transpose.InPlace(a); err != nil {
//	    // handle ErrNilMatrix, ErrReshapeContract or a storage error
//	}
//	// a is now 3×2: [1 4] [2 5] [3 6]
//
// Options
//
//   - WithScratch(v):  reuse a caller-owned Visited bitmap across calls.
//   - WithOnVisit(fn): hook called for every position marked visited.
//   - WithOnCycle(fn): hook called when a cycle closes, with its start and length.
//
// Complexity (m = rows, n = cols)
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) bits for the rectangular case, O(1) for the square case
package transpose
