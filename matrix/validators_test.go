// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquareNonNil(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 3, 1)), matrix.ErrNonSquare)
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 1, 1)), matrix.ErrNilMatrix)
}

// TestValidateVecLen checks nil and length mismatches.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen(MustVec(t, 1, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(MustVec(t, 1, 2), 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrNilMatrix)
}

// TestValidateSymmetric covers exact, tolerant and violating inputs on
// both the *Dense fast path and the interface fallback.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustRows(t, [][]float64{{4, 1, 2}, {1, 3, 0}, {2, 0, 5}})
	near := MustRows(t, [][]float64{{1, 2}, {2 + 1e-12, 1}})
	asym := MustRows(t, [][]float64{{1, 2}, {3, 1}})

	tests := []struct {
		name    string
		m       matrix.Matrix
		tol     float64
		wantErr error
	}{
		{"exact, zero tol", sym, 0, nil},
		{"exact, fallback", hide{sym}, 0, nil},
		{"near, zero tol", near, 0, matrix.ErrAsymmetry},
		{"near, loose tol", near, 1e-9, nil},
		{"near, loose tol, fallback", hide{near}, 1e-9, nil},
		{"asymmetric", asym, 1e-9, matrix.ErrAsymmetry},
		{"1x1", MustDense(t, 1, 1), 0, nil},
		{"non-square", MustDense(t, 2, 3), 0, matrix.ErrNonSquare},
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"negative tol", sym, -1, matrix.ErrNaNInf},
		{"NaN tol", sym, math.NaN(), matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(tc.m, tc.tol)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.True(t, matrix.IsSymmetric(tc.m, tc.tol))

				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			require.False(t, matrix.IsSymmetric(tc.m, tc.tol))
		})
	}
}
