package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleDeterminant shows that a row swap in the input flips the sign.
func ExampleDeterminant() {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
	b, _ := matrix.NewDenseFromRows([][]float64{{1, 3}, {4, 1}})

	da, _ := matrix.Determinant(a)
	db, _ := matrix.Determinant(b)
	fmt.Println(da, db)
	// Output:
	// 11 -11
}

// ExampleInverse inverts a diagonal matrix and prints it row by row.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(inv)

	_, err = matrix.Inverse(mustRowsExample([][]float64{{1, 2}, {2, 4}}))
	fmt.Println(err)
	// Output:
	// [0.5, 0]
	// [0, 0.25]
	// Inverse: column 1: matrix: singular matrix
}

// ExamplePseudoInverse fits y = 1 + 2x by ordinary least squares.
func ExamplePseudoInverse() {
	X, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {1, 1}, {1, 2}})
	y, _ := matrix.NewVectorFrom([]float64{1, 3, 5})

	pinv, _ := matrix.PseudoInverse(X, 0)
	beta, _ := matrix.MulVec(pinv, y)
	fmt.Printf("intercept=%.3f slope=%.3f\n", beta.Slice()[0], beta.Slice()[1])
	// Output:
	// intercept=1.000 slope=2.000
}

// ExampleVector demonstrates the value-returning vector arithmetic.
func ExampleVector() {
	v, _ := matrix.NewVectorFrom([]float64{3, 4})
	w, _ := matrix.NewVectorFrom([]float64{1, 1})

	sum, _ := v.Add(w)
	dot, _ := v.Dot(w)
	fmt.Println(sum, v.Neg(), dot, v.Norm())
	// Output:
	// [4, 5] [-3, -4] 7 5
}

func mustRowsExample(rows [][]float64) *matrix.Dense {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}
