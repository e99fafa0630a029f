// Package matrix offers dense real-valued vectors and matrices together with
// the linear-algebra kernels that the solvers in linsys build on.
//
// The matrix package provides:
//
//   - Vector: fixed-length column vector with +, -, unary -, scaling, dot and norm.
//   - Dense: row-major r×c matrix implementing the Matrix interface.
//   - Add, Sub, Scale, Mul, MulVec, Transpose for arithmetic.
//   - Determinant and Inverse via elimination with partial pivoting.
//   - PseudoInverse: (AᵀA + λI)⁻¹Aᵀ, the normal-equation least-squares inverse.
//
// Every index is 0-based. Shape mismatches, bad indices and singular pivots
// are reported as sentinel errors (ErrDimensionMismatch, ErrOutOfRange,
// ErrSingular, ...) and are matched with errors.Is; nothing panics on bad input.
//
// Values are never shared: Clone and CopyFrom deep-copy, and every kernel
// allocates a fresh result.
package matrix
