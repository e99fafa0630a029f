// SPDX-License-Identifier: MIT

// Package matrix - convenience facades delegating to the canonical kernels.
// Facades keep call sites short; all validation lives in the kernels.
package matrix

// NewZeros returns an r×c zero matrix. Alias for NewDense.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity with the dimension of the square matrix m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// T is a short alias for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Det is a short alias for Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }

// PInv is PseudoInverse without regularisation.
func PInv(m Matrix) (*Dense, error) { return PseudoInverse(m, 0) }

// AllClose reports whether a and b have the same shape and
// |a[i,j] - b[i,j]| <= atol + rtol*|b[i,j]| for every element.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf for bad tolerances.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	da, err := denseCopy(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := denseCopy(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	var diff, ref float64
	for idx := range da.data {
		diff = da.data[idx] - db.data[idx]
		if diff < 0 {
			diff = -diff
		}
		ref = db.data[idx]
		if ref < 0 {
			ref = -ref
		}
		if !(diff <= atol+rtol*ref) {
			return false, nil
		}
	}

	return true, nil
}
