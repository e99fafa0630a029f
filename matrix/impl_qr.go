// SPDX-License-Identifier: MIT
// Package matrix - Householder QR factorisation and triangular back-substitution.
//
// Purpose:
//   - Factor a tall matrix A (rows ≥ cols) as A = Q·R without forming AᵀA,
//     so least-squares fits keep the conditioning of A itself.
//   - Solve the resulting upper-triangular systems.

package matrix

import (
	"fmt"
	"math"
)

const (
	opQR         = "QR"
	opQRSolve    = "QRSolve"
	opSolveUpper = "SolveUpper"
)

// householderQR reduces a copy of m to upper-triangular form in place and
// returns it with the reflectors used: H_k = I - tau[k]·v_k·v_kᵀ, where v_k is
// non-zero only in rows k..rows-1. tau[k] == 0 marks a skipped (zero) column.
func householderQR(m Matrix) (a *Dense, vs [][]float64, tau []float64, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < cols {
		return nil, nil, nil, fmt.Errorf("need rows >= cols, got %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}
	if a, err = denseCopy(m); err != nil {
		return nil, nil, nil, err
	}

	vs = make([][]float64, cols)
	tau = make([]float64, cols)
	var (
		i, j, k     int
		norm, alpha float64
		beta, sum   float64
	)
	for k = 0; k < cols; k++ {
		norm = NormZero
		for i = k; i < rows; i++ {
			norm += a.data[i*cols+k] * a.data[i*cols+k]
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue
		}
		alpha = -math.Copysign(norm, a.data[k*cols+k])

		v := make([]float64, rows)
		for i = k; i < rows; i++ {
			v[i] = a.data[i*cols+k]
		}
		v[k] -= alpha
		beta = NormZero
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		vs[k], tau[k] = v, 2.0/beta

		// A[k:, k:] -= tau·v·(vᵀA[k:, k:])
		for j = k; j < cols; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * a.data[i*cols+j]
			}
			sum *= tau[k]
			for i = k; i < rows; i++ {
				a.data[i*cols+j] -= sum * v[i]
			}
		}
	}

	return a, vs, tau, nil
}

// reflect applies H = I - tau·v·vᵀ to x in place, touching rows k.. only.
func reflect(x, v []float64, tau float64, k int) {
	sum := ZeroSum
	for i := k; i < len(x); i++ {
		sum += v[i] * x[i]
	}
	sum *= tau
	for i := k; i < len(x); i++ {
		x[i] -= sum * v[i]
	}
}

// upperBlock copies the top cols×cols block of a, zeroing below the diagonal.
func upperBlock(a *Dense) (*Dense, error) {
	cols := a.c
	r, err := NewDense(cols, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < cols; i++ {
		for j := i; j < cols; j++ {
			r.data[i*cols+j] = a.data[i*cols+j]
		}
	}

	return r, nil
}

// QR computes the thin QR factorisation of m using Householder reflections.
// MAIN DESCRIPTION:
//   - Returns Q (rows×cols, orthonormal columns) and R (cols×cols, upper
//     triangular) such that m = Q·R.
//
// Implementation:
//   - Stage 1: validate rows ≥ cols; copy m into a working *Dense.
//   - Stage 2: for k = 0..cols-1 build v = x - α·e_k from column k below the
//     diagonal, with α = -sign(x_k)·‖x‖, and apply H = I - (2/vᵀv)·vvᵀ to the
//     working matrix. A column already zero on and below the diagonal is skipped.
//   - Stage 3: Q = H_0·H_1·…·H_{cols-1} applied to the first cols columns of
//     the identity, one column at a time. R is the top cols×cols block.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows < cols).
//
// Complexity:
//   - Time O(rows·cols²), Space O(rows·cols).
//
// Notes:
//   - R may carry negative diagonal entries; the factorisation is unique only
//     up to the signs of R's rows.
//   - A rank-deficient m yields a zero on R's diagonal; SolveUpper reports it
//     as ErrSingular.
//   - For least squares prefer QRSolve, which never materialises Q.
func QR(m Matrix) (q, r *Dense, err error) {
	a, vs, tau, err := householderQR(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	rows, cols := a.r, a.c
	if q, err = NewDense(rows, cols); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := range col {
			col[i] = 0
		}
		col[j] = 1
		for k := cols - 1; k >= 0; k-- {
			if tau[k] != 0 {
				reflect(col, vs[k], tau[k], k)
			}
		}
		for i := 0; i < rows; i++ {
			q.data[i*cols+j] = col[i]
		}
	}
	if r, err = upperBlock(a); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q, r, nil
}

// QRSolve returns the least-squares solution x minimising ‖m·x - b‖ by
// applying the Householder reflectors of m directly to b (Qᵀb) and
// back-substituting R·x = (Qᵀb)[:cols]. Q is never formed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows < cols or b.Len() != rows).
//   - ErrSingular when m is rank deficient.
func QRSolve(m Matrix, b *Vector) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	a, vs, tau, err := householderQR(m)
	if err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	qtb := b.Slice()
	for k := range vs {
		if tau[k] != 0 {
			reflect(qtb, vs[k], tau[k], k)
		}
	}
	r, err := upperBlock(a)
	if err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	x, err := SolveUpper(r, &Vector{data: qtb[:a.c]})
	if err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}

	return x, nil
}

// SolveUpper solves r·x = b for an upper-triangular square r by back-substitution.
// Entries below the diagonal of r are ignored.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//   - ErrSingular when a diagonal entry is exactly zero.
func SolveUpper(r Matrix, b *Vector) (*Vector, error) {
	if err := ValidateSquareNonNil(r); err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}
	n := r.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}
	u, err := denseCopy(r)
	if err != nil {
		return nil, matrixErrorf(opSolveUpper, err)
	}

	x := make([]float64, n)
	var sum, diag float64
	for i := n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j := i + 1; j < n; j++ {
			sum += u.data[i*n+j] * x[j]
		}
		diag = u.data[i*n+i]
		if diag == ZeroPivot {
			return nil, matrixErrorf(opSolveUpper, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		x[i] = (b.data[i] - sum) / diag
	}

	return &Vector{data: x}, nil
}
