// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths in the code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustVec builds a *Vector from literal values or fails the test.
func MustVec(t testing.TB, vals ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVectorFrom(vals)
	if err != nil {
		t.Fatalf("NewVectorFrom: %v", err)
	}

	return v
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// RandomFill fills m with uniform values in [-1, 1) from a seeded source.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// RandomSPD returns MᵀM + n·I for a random n×n M; it is symmetric
// positive-definite and well conditioned.
func RandomSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	RandomFill(t, m, seed)
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	spd, err := matrix.Mul(mt, m)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		MustSet(t, spd, i, i, MustAt(t, spd, i, i)+float64(n))
	}

	return spd
}

// ToGonum copies m into a gonum *mat.Dense used as a reference oracle.
func ToGonum(t testing.TB, m *matrix.Dense) *mat.Dense {
	t.Helper()
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Data())
}

// RequireAllClose asserts shape equality and element-wise closeness.
func RequireAllClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant:\n%v\ngot:\n%v", atol, want, got)
}

// AssertErrorIs checks errors.Is(err, target) with a readable failure.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got %v", target, err)
	}
}
