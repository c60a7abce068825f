// Package transpose provides tunable options, error definitions and the shape
// classifier for in-place transposition.
package transpose

import (
	"errors"

	"github.com/aldro61/in-place-transpose/matrix"
	"golang.org/x/exp/constraints"
)

// Sentinel errors for in-place transposition.
var (
	// ErrNilMatrix is returned if a nil matrix (or typed nil pointer) is passed.
	ErrNilMatrix = errors.New("transpose: matrix is nil")

	// ErrBadShape is returned when dimensions are negative or a flat slice
	// does not hold exactly rows*cols elements.
	ErrBadShape = errors.New("transpose: invalid shape")

	// ErrReshapeContract is returned when, after Reshape(cols, rows), the storage
	// does not report the swapped shape. A storage whose Reshape reorders or
	// reinitializes its buffer cannot be detected here and yields a wrong result.
	ErrReshapeContract = errors.New("transpose: reshape did not reinterpret storage")
)

// Matrix is the storage contract consumed by InPlace: element access plus an
// in-place Reshape that reinterprets the existing flat column-major buffer
// without reordering or reinitializing it. *matrix.Dense satisfies it.
type Matrix interface {
	matrix.Matrix

	// Reshape declares new dimensions over the same buffer.
	// Precondition: rows*cols == Rows()*Cols().
	Reshape(rows, cols int) error
}

// Number is the set of element types accepted by Slice.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Strategy names the algorithm selected for a given shape.
type Strategy int

const (
	// StrategySquare swaps mirrored pairs across the diagonal; shape is unchanged.
	StrategySquare Strategy = iota

	// StrategyCycle reshapes to cols×rows and follows permutation cycles.
	StrategyCycle
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategySquare:
		return "square"
	case StrategyCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Classify selects StrategySquare when rows == cols, StrategyCycle otherwise.
// It has no side effects; 0×0 classifies as square and 0×k as cycle, and both
// strategies treat empty shapes as no-ops.
func Classify(rows, cols int) Strategy {
	if rows == cols {
		return StrategySquare
	}

	return StrategyCycle
}

// Option configures a transposition via functional arguments.
type Option func(*Options)

// Options holds the scratch bitmap and instrumentation hooks.
//
// Hooks observe the walk and cannot stop it. A cycle abandoned half way would
// leave a displaced value with no buffer to restore it from.
type Options struct {
	// Scratch, when non-nil, is reset and reused as the visited bitmap instead
	// of allocating a fresh one. It must not be shared between concurrent calls.
	Scratch *Visited

	// OnVisit is called once for every linear position marked visited by the
	// cycle permuter, in marking order. Not called on the square path.
	OnVisit func(pos int)

	// OnCycle is called when a cycle closes, with the position that opened it
	// and the number of positions it covered (1 for a fixed point).
	OnCycle func(start, length int)
}

// DefaultOptions returns Options with sane defaults:
//   - no scratch bitmap (one is allocated per call)
//   - no-op hooks (OnVisit, OnCycle)
func DefaultOptions() Options {
	return Options{
		Scratch: nil,
		OnVisit: func(int) {},
		OnCycle: func(int, int) {},
	}
}

// WithScratch reuses v as the visited bitmap. A nil v keeps the default.
func WithScratch(v *Visited) Option {
	return func(o *Options) {
		if v != nil {
			o.Scratch = v
		}
	}
}

// WithOnVisit registers a callback run for every position marked visited.
func WithOnVisit(fn func(pos int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnCycle registers a callback run each time a permutation cycle closes.
func WithOnCycle(fn func(start, length int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCycle = fn
		}
	}
}

// gatherOptions applies user setters over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
