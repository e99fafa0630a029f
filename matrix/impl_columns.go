// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Per-column statistics (means, sample standard deviations) and the
//     z-score transform used to precondition least-squares design matrices.
//   - Broadcast kernels (subtract / scale per column) shared by those transforms.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops.
//   - *Dense inputs use the row-major flat buffer; others go through At.

package matrix

import (
	"fmt"
	"math"
)

const (
	opColumnMeans = "ColumnMeans"
	opColumnStds  = "ColumnStds"
	opStandardize = "Standardize"
)

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
// Errors: ErrNilMatrix.
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := denseCopy(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := d.r, d.c
	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// ColumnStds returns the sample standard deviation sqrt(Σ_i (X[i,j]-means[j])² / (r-1))
// of every column, given precomputed means.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when len(means) != cols or r < 2.
func ColumnStds(X Matrix, means []float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(means) != c {
		return nil, matrixErrorf(opColumnStds, fmt.Errorf("%d means for %d columns: %w", len(means), c, ErrDimensionMismatch))
	}
	if r < 2 {
		return nil, matrixErrorf(opColumnStds, fmt.Errorf("need at least 2 rows, got %d: %w", r, ErrDimensionMismatch))
	}
	centered, err := broadcastSubCols(X, means)
	if err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}
	stds := make([]float64, c)
	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = centered.data[base+j]
			stds[j] += v * v
		}
	}
	invDen := 1.0 / float64(r-1)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] * invDen)
	}

	return stds, nil
}

// Standardize returns Z with Z[i,j] = (X[i,j] - mean_j) / std_j, plus the
// means and sample standard deviations used.
// MAIN DESCRIPTION:
//   - Brings every column to zero mean and unit sample variance.
//
// Implementation:
//   - Stage 1: ColumnMeans, ColumnStds.
//   - Stage 2: broadcastSubCols then scaleCols with 1/std.
//
// Behavior highlights:
//   - A constant column (std == 0) becomes all zeros instead of NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r < 2).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Hints:
//   - Keep the returned means/stds to map fitted coefficients back to raw units.
func Standardize(X Matrix) (*Dense, []float64, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	stds, err := ColumnStds(X, means)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	inv := make([]float64, len(stds))
	for j, s := range stds {
		if s != 0 {
			inv[j] = 1 / s
		}
	}
	centered, err := broadcastSubCols(X, means)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	z, err := scaleCols(centered, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}

	return z, means, stds, nil
}

// broadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
func broadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	if len(colMeans) != X.Cols() {
		return nil, ErrDimensionMismatch
	}
	out, err := denseCopy(X)
	if err != nil {
		return nil, err
	}
	c := out.c
	for idx := range out.data {
		out.data[idx] -= colMeans[idx%c]
	}

	return out, nil
}

// scaleCols computes out[i,j] = X[i,j] * scale[j].
func scaleCols(X Matrix, scale []float64) (*Dense, error) {
	if len(scale) != X.Cols() {
		return nil, ErrDimensionMismatch
	}
	out, err := denseCopy(X)
	if err != nil {
		return nil, err
	}
	c := out.c
	for idx := range out.data {
		out.data[idx] *= scale[idx%c]
	}

	return out, nil
}
