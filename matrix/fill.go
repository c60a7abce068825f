// SPDX-License-Identifier: MIT
// Package: matrix (fixture fills)
//
// Purpose:
//   • Provide small, deterministic fixture generators for tests and demos.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix

import (
	"fmt"
	"math/rand"
)

// FillRandom fills m with reproducible pseudorandoms uniform in [0, 1).
// Seed controls determinism; the same seed and shape always give the same matrix.
// Fill order is row by row, so the result does not depend on the storage layout.
// Complexity: O(r*c).
func FillRandom(m Matrix, seed int64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("FillRandom", err)
	}
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var (
		i, j int
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rng.Float64()); err != nil {
				return fmt.Errorf("FillRandom: %w", err)
			}
		}
	}

	return nil
}

// FillIndex writes the column-major linear index i + j*Rows() into every cell.
// Every value is distinct, which makes misplaced elements easy to spot.
// Complexity: O(r*c).
func FillIndex(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("FillIndex", err)
	}
	r, c := m.Rows(), m.Cols()
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if err := m.Set(i, j, float64(i+j*r)); err != nil {
				return fmt.Errorf("FillIndex: %w", err)
			}
		}
	}

	return nil
}
