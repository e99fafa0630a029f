// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scaling, matrix and matrix-vector
// products, transpose, determinant, inverse and pseudo-inverse. All functions
// perform strict fail-fast validation and return sentinel errors on misuse.
//
// Notes:
//   - *Dense operands unlock flat-slice fast paths; any other Matrix goes through At/Set.
//   - Determinant and Inverse always work on a private *Dense copy, so inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot during elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd             = "Add"
	opSub             = "Sub"
	opMul             = "Mul"
	opTranspose       = "Transpose"
	opScale           = "Scale"
	opMulVec          = "MulVec"
	opDeterminant     = "Determinant"
	opInverse         = "Inverse"
	opPseudoInverse   = "PseudoInverse"
	opNormalEquations = "NormalEquations"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add/Sub; a fresh Dense is allocated and operands are not mutated.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Scalar multiplication commutes, so Scale covers both s*M and M*s.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - Dense product with an inner-dimension check.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: *Dense × *Dense uses i→k→j with row-major strides and skips zero A[i,k];
//     otherwise i→j→k through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed loop orders.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MulVec computes y = m * v.
//
// Contract: m non-nil; v non-nil; v.Len() == m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r) for y.
func MulVec(m Matrix, v *Vector) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var base int
		var acc float64
		for i := 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j := 0; j < cols; j++ {
				acc += d.data[base+j] * v.data[j]
			}
			y[i] = acc
		}

		return &Vector{data: y}, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMulVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * v.data[j]
		}
	}

	return &Vector{data: y}, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// It is a pure permutation of elements, so Transpose(Transpose(m)) equals m exactly.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.validateNaNInf = src.validateNaNInf

	var baseSrc int
	for i := 0; i < rows; i++ {
		baseSrc = i * cols
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[baseSrc+j]
		}
	}

	return res, nil
}

// swapRows exchanges rows p and q of a row-major buffer with the given width.
func swapRows(data []float64, width, p, q int) {
	if p == q {
		return
	}
	rp, rq := p*width, q*width
	for j := 0; j < width; j++ {
		data[rp+j], data[rq+j] = data[rq+j], data[rp+j]
	}
}

// pivotRow returns the row index r ≥ k with the largest |data[r*width+k]|
// among rows k..n-1, and that magnitude. Ties keep the topmost row.
func pivotRow(data []float64, width, n, k int) (int, float64) {
	best, maxVal := k, math.Abs(data[k*width+k])
	var cand float64
	for i := k + 1; i < n; i++ {
		cand = math.Abs(data[i*width+k])
		if cand > maxVal {
			best, maxVal = i, cand
		}
	}

	return best, maxVal
}

// Determinant computes det(m) by Gaussian elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduce a private copy to upper-triangular form; det is the signed product of the pivots.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; copy into a *Dense working buffer.
//   - Stage 2: for each column k pick the row with the largest |A[i,k]|, i ≥ k.
//     An exactly zero maximum means the matrix is singular: return 0.
//     A row swap flips the sign of the running product.
//   - Stage 3: eliminate below the pivot and multiply the pivot into det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Ties in pivot magnitude keep the topmost candidate.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
//
// Notes:
//   - Rank deficiency that survives rounding as a tiny non-zero pivot yields a
//     tiny determinant, not an exact 0.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	w, err := denseCopy(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := w.r
	a := w.data
	det := 1.0

	var (
		i, j, k, p  int
		maxVal, akk float64
		factor      float64
		rowI, rowK  int
	)
	for k = 0; k < n; k++ {
		p, maxVal = pivotRow(a, n, n, k)
		if maxVal == ZeroPivot {
			return 0, nil // singular
		}
		if p != k {
			swapRows(a, n, p, k)
			det = -det
		}
		rowK = k * n
		akk = a[rowK+k]
		det *= akk
		for i = k + 1; i < n; i++ {
			rowI = i * n
			factor = a[rowI+k] / akk
			if factor == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a[rowI+j] -= factor * a[rowK+j]
			}
		}
	}

	return det, nil
}

// Inverse computes A⁻¹ by Gauss–Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduce the augmented n×2n matrix [A | I] to [I | A⁻¹] and return the right half.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil; build [A | I] in one row-major buffer.
//   - Stage 2: for k = 0..n-1 swap in the row with the largest |aug[i,k]| (i ≥ k),
//     scale it to a unit pivot, then eliminate column k from every other row.
//   - Stage 3: copy columns n..2n-1 into the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when the best pivot in some column is exactly zero.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented buffer.
//
// Hints:
//   - To solve A·x = b, prefer linsys over forming A⁻¹.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := src.r
	width := 2 * n
	aug := make([]float64, n*width)
	for i := 0; i < n; i++ {
		copy(aug[i*width:i*width+n], src.data[i*n:(i+1)*n])
		aug[i*width+n+i] = 1.0
	}

	var (
		i, j, k, p int
		maxVal     float64
		pivot      float64
		factor     float64
		rowI, rowK int
	)
	for k = 0; k < n; k++ {
		p, maxVal = pivotRow(aug, width, n, k)
		if maxVal == ZeroPivot {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		swapRows(aug, width, p, k)

		rowK = k * width
		pivot = aug[rowK+k]
		for j = 0; j < width; j++ {
			aug[rowK+j] /= pivot
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			rowI = i * width
			factor = aug[rowI+k]
			if factor == 0 {
				continue
			}
			for j = 0; j < width; j++ {
				aug[rowI+j] -= factor * aug[rowK+j]
			}
		}
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*width+n:(i+1)*width])
	}

	return inv, nil
}

// PseudoInverse computes the (optionally ridge-regularised) Moore–Penrose
// pseudo-inverse through the normal equations: (AᵀA + λI)⁻¹Aᵀ.
// MAIN DESCRIPTION:
//   - For a full-column-rank r×c matrix A and λ = 0 the result is the
//     least-squares generalized inverse; λ > 0 improves conditioning of AᵀA.
//
// Implementation:
//   - Stage 1: validate A and λ (finite, ≥ 0).
//   - Stage 2: Aᵀ, AᵀA, add λ to the diagonal, invert, multiply by Aᵀ.
//
// Returns:
//   - *Dense of shape c×r.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidLambda.
//   - ErrSingular when AᵀA + λI has an exactly zero pivot (rank-deficient A, λ = 0).
//
// Complexity:
//   - Time O(r·c² + c³), Space O(c² + r·c).
//
// Notes:
//   - Forming AᵀA squares the condition number; use a small λ for nearly collinear columns.
func PseudoInverse(m Matrix, lambda float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if isNonFinite(lambda) || lambda < 0 {
		return nil, matrixErrorf(opPseudoInverse, ErrInvalidLambda)
	}
	at, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	ata, err := Mul(at, m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if lambda != 0 {
		n := ata.r
		for i := 0; i < n; i++ {
			ata.data[i*n+i] += lambda
		}
	}
	inv, err := Inverse(ata)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	pinv, err := Mul(inv, at)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	return pinv, nil
}

// NormalEquations returns AᵀA + λI and Aᵀb, the left and right sides of the
// (ridge-regularised) least-squares normal equations.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidLambda, ErrDimensionMismatch (b.Len() != A.Rows()).
func NormalEquations(m Matrix, b *Vector, lambda float64) (*Dense, *Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opNormalEquations, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, nil, matrixErrorf(opNormalEquations, err)
	}
	if isNonFinite(lambda) || lambda < 0 {
		return nil, nil, matrixErrorf(opNormalEquations, ErrInvalidLambda)
	}
	at, err := Transpose(m)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalEquations, err)
	}
	ata, err := Mul(at, m)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalEquations, err)
	}
	n := ata.r
	for i := 0; i < n; i++ {
		ata.data[i*n+i] += lambda
	}
	atb, err := MulVec(at, b)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalEquations, err)
	}

	return ata, atb, nil
}
