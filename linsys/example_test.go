package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/linsys"
	"github.com/katalvlaran/linalg/matrix"
)

// ExampleLinearSystem solves a 2×2 system whose first pivot is zero.
func ExampleLinearSystem() {
	a, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	b, _ := matrix.NewVectorFrom([]float64{2, 3})

	sys, _ := linsys.New(a, b)
	x, err := sys.Solve()
	fmt.Println(x, err)

	strict, _ := linsys.New(a, b, linsys.WithoutPivoting())
	_, err = strict.Solve()
	fmt.Println(err)
	// Output:
	// [3, 2] <nil>
	// LinearSystem.Solve: column 0: matrix: singular matrix
}

// ExamplePosSymLinSystem_SolveCG reports the Conjugate Gradient run.
func ExamplePosSymLinSystem_SolveCG() {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
	b, _ := matrix.NewVectorFrom([]float64{1, 2})

	sys, _ := linsys.NewPosSym(a, b)
	res, _ := sys.SolveCG()
	fmt.Printf("x = [%.4f, %.4f] after %d iterations (converged=%v)\n",
		res.X.Slice()[0], res.X.Slice()[1], res.Iterations, res.Converged)
	// Output:
	// x = [0.0909, 0.6364] after 2 iterations (converged=true)
}
