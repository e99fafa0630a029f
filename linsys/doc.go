// Package linsys solves square linear systems A·x = b on top of the matrix package.
//
// Two solvers are provided:
//
//   - LinearSystem: Gaussian elimination that scales every pivot row to a unit
//     pivot, eliminates below it and back-substitutes. Partial pivoting is on by
//     default; WithoutPivoting restores natural-order elimination.
//   - PosSymLinSystem: Conjugate Gradient for symmetric positive-definite A.
//     Construction rejects asymmetric matrices; positive-definiteness is
//     detected lazily when a search direction has pᵀAp <= 0.
//
// Both systems copy (A, b) at construction and are immutable afterwards, so a
// system may be solved repeatedly and shared between goroutines.
//
// Conjugate Gradient options:
//
//	– WithTolerance(tol):          stop when ‖r‖ < tol (default 1e-10).
//	– WithMaxIterations(k):        iteration budget (default 2·n).
//	– WithSymmetryTolerance(eps):  symmetry check bound (default 1e-12).
//	– WithStrictConvergence():     fail with ErrNotConverged instead of best-effort.
//	– WithProgress(fn):            observe (iteration, ‖r‖) after every step.
//
// Errors (sentinel):
//
//	– ErrNilSystem               nil matrix or right-hand side.
//	– ErrNotConverged            strict mode, budget exhausted.
//	– ErrNotPositiveDefinite     pᵀAp <= 0 during CG.
//	– matrix.ErrNonSquare, matrix.ErrDimensionMismatch, matrix.ErrSingular,
//	  matrix.ErrAsymmetry are returned wrapped.
//
// Example usage:
//
//	sys, err := linsys.NewPosSym(A, b, linsys.WithStrictConvergence())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := sys.SolveCG()
//	fmt.Println(res.X, res.Iterations, res.Converged)
package linsys
