package transpose

import (
	"fmt"

	"github.com/aldro61/in-place-transpose/matrix"
)

// cells addresses storage by (row, col) under the shape the walker works on.
type cells[T any] interface {
	load(row, col int) (T, error)
	store(row, col int, v T) error
}

// flatCells reads and writes a column-major slice directly: (r, c) at r + c*rows.
type flatCells[T any] struct {
	data []T
	rows int
}

func (f flatCells[T]) load(row, col int) (T, error) { return f.data[row+col*f.rows], nil }

func (f flatCells[T]) store(row, col int, v T) error {
	f.data[row+col*f.rows] = v
	return nil
}

// matrixCells goes through the bounds-checked Matrix accessors.
type matrixCells struct{ m matrix.Matrix }

func (c matrixCells) load(row, col int) (float64, error) { return c.m.At(row, col) }

func (c matrixCells) store(row, col int, v float64) error { return c.m.Set(row, col, v) }

// walker carries the state of one transposition call.
type walker[T any] struct {
	cells   cells[T]
	opts    Options
	visited *Visited
}

// swapSquare exchanges (i, j) and (j, i) for every i < j of an n×n matrix.
// n <= 1 has nothing off the diagonal.
func (w *walker[T]) swapSquare(n int) error {
	if n <= 1 {
		return nil
	}
	var a, b T
	var err error
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if a, err = w.cells.load(i, j); err != nil {
				return err
			}
			if b, err = w.cells.load(j, i); err != nil {
				return err
			}
			if err = w.cells.store(i, j, b); err != nil {
				return err
			}
			if err = w.cells.store(j, i, a); err != nil {
				return err
			}
		}
	}

	return nil
}

// permuteCycles moves every element of an m×n matrix, already reshaped to
// n×m, to its transposed position. Linear positions are grouped into the
// disjoint cycles of p → (p mod m)·n + (p div m); each cycle is walked once
// carrying a single displaced value, and the bitmap keeps a position from
// being processed twice.
func (w *walker[T]) permuteCycles(m, n int) error {
	w.visited.Reset(m * n)

	var (
		pos, curr, aj, ai, length int
		val, tmp                  T
		err                       error
	)
	for row := 0; row < n; row++ {
		for col := 0; col < m; col++ {
			pos = col*n + row
			if w.visited.Test(pos) {
				continue
			}
			if val, err = w.cells.load(row, col); err != nil {
				return w.abort(pos, err)
			}

			length = 0
			for curr = pos; !w.visited.Test(curr); curr = ai*n + aj {
				w.visited.Mark(curr)
				w.opts.OnVisit(curr)
				length++

				aj, ai = curr/m, curr%m // target row, target column
				if tmp, err = w.cells.load(aj, ai); err != nil {
					return w.abort(pos, err)
				}
				if err = w.cells.store(aj, ai, val); err != nil {
					return w.abort(pos, err)
				}
				val = tmp
			}
			w.opts.OnCycle(pos, length)
		}
	}

	return nil
}

// abort tags a storage failure with the cycle it interrupted.
func (w *walker[T]) abort(start int, err error) error {
	return fmt.Errorf("transpose: cycle at %d interrupted, matrix left partially permuted: %w", start, err)
}
