package matrix_test

import (
	"fmt"

	"github.com/aldro61/in-place-transpose/matrix"
)

// ExampleDense_Reshape shows that Reshape reinterprets the column-major buffer.
func ExampleDense_Reshape() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	fmt.Println(m.RawData())

	_ = m.Reshape(3, 2)
	fmt.Print(m)
	fmt.Println(m.RawData())

	// Output:
	// [1 4 2 5 3 6]
	// [1, 5]
	// [4, 3]
	// [2, 6]
	// [1 4 2 5 3 6]
}

// ExampleTranspose builds the out-of-place reference transpose.
func ExampleTranspose() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}})
	t, _ := matrix.Transpose(m)
	fmt.Print(t)

	// Output:
	// [1]
	// [2]
	// [3]
}
