package linsys_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustVec(t testing.TB, vals ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVectorFrom(vals)
	require.NoError(t, err)

	return v
}

// randomSPD returns MᵀM + n·I for a seeded random n×n M.
func randomSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	spd, err := matrix.Mul(mt, m)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		v, _ := spd.At(i, i)
		require.NoError(t, spd.Set(i, i, v+float64(n)))
	}

	return spd
}

// randomVec returns a seeded random vector of length n.
func randomVec(t testing.TB, n int, seed int64) *matrix.Vector {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}

	return mustVec(t, vals...)
}

// residual returns ‖A·x - b‖.
func residual(t testing.TB, a matrix.Matrix, x, b *matrix.Vector) float64 {
	t.Helper()
	ax, err := matrix.MulVec(a, x)
	require.NoError(t, err)
	d, err := ax.Sub(b)
	require.NoError(t, err)

	return d.Norm()
}
