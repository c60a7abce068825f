package transpose

import "math/bits"

// Visited is a bitmap with one bit per linear matrix position.
// The zero value is an empty bitmap of length 0; use Reset to size it.
type Visited struct {
	words []uint64
	n     int
}

// NewVisited returns a cleared bitmap covering positions [0, n).
// Negative n is treated as 0.
func NewVisited(n int) *Visited {
	v := &Visited{}
	v.Reset(n)

	return v
}

// Reset resizes the bitmap to n positions and clears every bit.
// Existing storage is reused when it is large enough.
func (v *Visited) Reset(n int) {
	if n < 0 {
		n = 0
	}
	need := (n + 63) / 64
	if cap(v.words) < need {
		v.words = make([]uint64, need)
	} else {
		v.words = v.words[:need]
		clear(v.words)
	}
	v.n = n
}

// Len returns the number of positions covered.
func (v *Visited) Len() int { return v.n }

// Test reports whether position i is marked. i must be in [0, Len()).
func (v *Visited) Test(i int) bool {
	return v.words[i>>6]&(1<<uint(i&63)) != 0
}

// Mark sets position i. i must be in [0, Len()).
func (v *Visited) Mark(i int) {
	v.words[i>>6] |= 1 << uint(i&63)
}

// Count returns the number of marked positions.
func (v *Visited) Count() int {
	var c int
	for _, w := range v.words {
		c += bits.OnesCount64(w)
	}

	return c
}
