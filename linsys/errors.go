package linsys

import "errors"

// Sentinel errors returned by the solvers. Shape and numeric failures that the
// matrix package already names (matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
// matrix.ErrSingular, matrix.ErrAsymmetry) are returned wrapped, not redefined.
var (
	// ErrNilSystem indicates that the coefficient matrix or the right-hand side is nil.
	ErrNilSystem = errors.New("linsys: nil matrix or right-hand side")

	// ErrNotConverged is returned in strict mode when Conjugate Gradient
	// exhausts its iteration budget above the residual tolerance.
	ErrNotConverged = errors.New("linsys: conjugate gradient did not converge")

	// ErrNotPositiveDefinite indicates a search direction p with pᵀAp <= 0,
	// which cannot happen for a symmetric positive-definite A.
	ErrNotPositiveDefinite = errors.New("linsys: matrix is not positive-definite")
)
