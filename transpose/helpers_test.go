package transpose_test

import (
	"errors"
	"testing"

	"github.com/aldro61/in-place-transpose/matrix"
	"github.com/aldro61/in-place-transpose/transpose"
	"github.com/stretchr/testify/require"
)

// hide wraps a transpose.Matrix to mask its concrete type, forcing the
// At/Set path instead of the *matrix.Dense fast path.
type hide struct{ transpose.Matrix }

// lazyReshape claims success but never changes the declared shape.
type lazyReshape struct{ transpose.Matrix }

func (lazyReshape) Reshape(int, int) error { return nil }

// refusingReshape rejects every Reshape call.
type refusingReshape struct{ transpose.Matrix }

var errRefused = errors.New("reshape refused")

func (refusingReshape) Reshape(int, int) error { return errRefused }

// flakySet fails once its write budget is spent.
type flakySet struct {
	transpose.Matrix
	budget int
}

var errWriteBudget = errors.New("write budget exhausted")

func (f *flakySet) Set(i, j int, v float64) error {
	if f.budget == 0 {
		return errWriteBudget
	}
	f.budget--

	return f.Matrix.Set(i, j, v)
}

// mustRandom allocates an r×c Dense filled with seeded uniforms in [0,1).
func mustRandom(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.NoError(t, matrix.FillRandom(m, seed))

	return m
}

// mustIndexed allocates an r×c Dense whose cells hold their column-major index.
func mustIndexed(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.NoError(t, matrix.FillIndex(m))

	return m
}

// mustReference returns the out-of-place transpose of m as *matrix.Dense.
func mustReference(t testing.TB, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	ref, err := matrix.Transpose(m)
	require.NoError(t, err)
	d, ok := ref.(*matrix.Dense)
	require.True(t, ok, "Transpose must return *matrix.Dense")

	return d
}
