// Package linalg is a small dense linear-algebra toolkit: vectors and
// matrices, direct and iterative linear-system solvers, and the ordinary
// least-squares regression built on them.
//
// 🚀 What is in linalg?
//
//   - Vectors & matrices: 0-based Vector and row-major Dense with +, -, scaling, products
//   - Determinant, inverse, (ridge) pseudo-inverse, Householder QR
//   - Linear systems: Gaussian elimination with partial pivoting
//   - SPD systems: Conjugate Gradient with convergence reporting
//   - Regression: OLS fit by pseudo-inverse, normal equations or QR; RMSE, R²
//   - Data: CSV ingestion from memory-mapped files
//
// ✨ Conventions
//
//   - Errors, not panics: every shape, index and singularity problem is a
//     sentinel error matched with errors.Is. Panics are reserved for invalid
//     functional-option values.
//   - Values are never shared: constructors and Clone copy, kernels allocate.
//   - Functional options with documented Default* constants.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/        Vector, Dense, arithmetic kernels, Determinant, Inverse, PseudoInverse, QR
//	linsys/        LinearSystem (Gaussian elimination) and PosSymLinSystem (Conjugate Gradient)
//	regression/    Fit, Predict, Split, RMSE, RSquared
//	dataset/       Parse and Load of comma-separated numeric records
//	cmd/olsfit/    command-line OLS fit of the UCI machine.data set
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	b, _ := matrix.NewVectorFrom([]float64{1, 2})
//	sys, _ := linsys.NewPosSym(A, b)
//	x, _ := sys.Solve() // ≈ [0.0909, 0.6364]
package linalg
