// SPDX-License-Identifier: MIT
// Package: matrix
//
// Validators shared by every kernel: nil, shape, vector length and symmetry
// checks. Each returns a sentinel wrapped with the validator name, so callers
// wrap once more with their own op tag and still match with errors.Is.
// Composite validators run in a fixed order (NotNil before shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil; use ValidateSquareNonNil otherwise.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n elements.
func ValidateVecLen(v *Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if v.Len() != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", v.Len(), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows with non-nil inputs.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSymmetric checks that m is square and that every strict
// upper-triangle pair satisfies |A[i,j] - A[j,i]| < tol.
// An exactly equal pair always passes, so tol = 0 accepts only exact symmetry.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare on structural issues.
//   - ErrNaNInf when tol is NaN/Inf or negative.
//   - ErrAsymmetry on the first violating pair (scanned i→j).
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if isNonFinite(tol) || tol < 0 {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	n := m.Rows()
	if n <= 1 {
		return nil // trivially symmetric
	}

	var (
		i, j     int
		aij, aji float64
		diff     float64
		err      error
	)
	d, fast := m.(*Dense)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if fast {
				aij, aji = d.data[i*n+j], d.data[j*n+i]
			} else {
				if aij, err = m.At(i, j); err != nil {
					return validatorErrorf("ValidateSymmetric", err)
				}
				if aji, err = m.At(j, i); err != nil {
					return validatorErrorf("ValidateSymmetric", err)
				}
			}
			diff = math.Abs(aij - aji)
			if diff != 0 && !(diff < tol) {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("(%d,%d) differs by %g: %w", i, j, diff, ErrAsymmetry))
			}
		}
	}

	return nil
}

// IsSymmetric reports whether ValidateSymmetric(m, tol) passes.
// Structural problems (nil, non-square) report false.
func IsSymmetric(m Matrix, tol float64) bool {
	return ValidateSymmetric(m, tol) == nil
}
