package transpose

import (
	"fmt"

	"github.com/aldro61/in-place-transpose/matrix"
)

// InPlace replaces m with its transpose, reusing m's storage.
//
// Square matrices keep their shape and have mirrored pairs swapped. For a
// rows×cols matrix with rows != cols, m is reshaped to cols×rows first and the
// elements are then permuted cycle by cycle; extra memory is one bit per element.
//
// *matrix.Dense is permuted directly on its buffer. Any other Matrix is driven
// through At/Set, and its Reshape must reinterpret the flat column-major buffer.
//
// Returns ErrNilMatrix, ErrReshapeContract, or a wrapped storage error. A
// storage error during the permutation leaves m partially permuted.
func InPlace(m Matrix, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%w: %w", ErrNilMatrix, err)
	}
	o := gatherOptions(opts...)

	rows, cols := m.Rows(), m.Cols()
	d, dense := m.(*matrix.Dense)

	if Classify(rows, cols) == StrategySquare {
		if dense {
			w := &walker[float64]{cells: flatCells[float64]{data: d.RawData(), rows: rows}, opts: o}
			return w.swapSquare(rows)
		}
		w := &walker[float64]{cells: matrixCells{m: m}, opts: o}
		if err := w.swapSquare(rows); err != nil {
			return fmt.Errorf("transpose: square swap: %w", err)
		}
		return nil
	}

	if err := m.Reshape(cols, rows); err != nil {
		return fmt.Errorf("transpose: Reshape(%d,%d): %w", cols, rows, err)
	}
	if m.Rows() != cols || m.Cols() != rows {
		return fmt.Errorf("%w: got %dx%d after Reshape(%d,%d)", ErrReshapeContract, m.Rows(), m.Cols(), cols, rows)
	}

	if dense {
		data := d.RawData()
		if len(data) != rows*cols {
			return fmt.Errorf("%w: buffer holds %d elements, want %d", ErrReshapeContract, len(data), rows*cols)
		}
		w := &walker[float64]{cells: flatCells[float64]{data: data, rows: cols}, opts: o, visited: o.bitmap()}
		return w.permuteCycles(rows, cols)
	}
	w := &walker[float64]{cells: matrixCells{m: m}, opts: o, visited: o.bitmap()}

	return w.permuteCycles(rows, cols)
}

// Slice transposes a rows×cols column-major buffer in place. On success data
// holds the cols×rows transpose, also column-major.
//
// Returns ErrBadShape when a dimension is negative, rows*cols overflows int,
// or len(data) != rows*cols.
func Slice[T Number](data []T, rows, cols int, opts ...Option) error {
	if err := matrix.ValidateShape(rows, cols); err != nil {
		return fmt.Errorf("%w: %w", ErrBadShape, err)
	}
	if len(data) != rows*cols {
		return fmt.Errorf("%w: %dx%d over %d elements", ErrBadShape, rows, cols, len(data))
	}
	o := gatherOptions(opts...)

	if Classify(rows, cols) == StrategySquare {
		w := &walker[T]{cells: flatCells[T]{data: data, rows: rows}, opts: o}
		return w.swapSquare(rows)
	}
	// Reshape is implicit: from here on data is addressed with cols rows.
	w := &walker[T]{cells: flatCells[T]{data: data, rows: cols}, opts: o, visited: o.bitmap()}

	return w.permuteCycles(rows, cols)
}

// bitmap returns the caller's scratch bitmap or a fresh one.
func (o Options) bitmap() *Visited {
	if o.Scratch != nil {
		return o.Scratch
	}

	return &Visited{}
}
