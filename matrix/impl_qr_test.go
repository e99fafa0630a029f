package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestQR_Reconstructs(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{1, 1}, {3, 3}, {6, 2}, {10, 4}} {
		rows, cols := shape[0], shape[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			t.Parallel()
			A := MustDense(t, rows, cols)
			RandomFill(t, A, int64(rows*31+cols))

			Q, R, err := matrix.QR(A)
			require.NoError(t, err)

			qr, qc := Q.Shape()
			require.Equal(t, rows, qr)
			require.Equal(t, cols, qc)
			rr, rc := R.Shape()
			require.Equal(t, cols, rr)
			require.Equal(t, cols, rc)

			// A = Q·R
			prod, err := matrix.Mul(Q, R)
			require.NoError(t, err)
			RequireAllClose(t, A, prod, 1e-12)

			// QᵀQ = I
			Qt, err := matrix.Transpose(Q)
			require.NoError(t, err)
			QtQ, err := matrix.Mul(Qt, Q)
			require.NoError(t, err)
			I, err := matrix.NewIdentity(cols)
			require.NoError(t, err)
			RequireAllClose(t, I, QtQ, 1e-12)

			// R is upper triangular.
			for i := 0; i < cols; i++ {
				for j := 0; j < i; j++ {
					require.Zero(t, MustAt(t, R, i, j))
				}
			}
		})
	}
}

func TestQR_LeastSquares(t *testing.T) {
	t.Parallel()

	// y = 1 + 2x sampled exactly.
	X := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	y := MustVec(t, 1, 3, 5, 7)

	Q, R, err := matrix.QR(hide{X})
	require.NoError(t, err)
	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	qty, err := matrix.MulVec(Qt, y)
	require.NoError(t, err)
	beta, err := matrix.SolveUpper(R, qty)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2}, beta.Slice(), 1e-12)
}

func TestQRSolve(t *testing.T) {
	t.Parallel()

	// Same line as above, through the fallback path.
	X := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	beta, err := matrix.QRSolve(hide{X}, MustVec(t, 1, 3, 5, 7))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2}, beta.Slice(), 1e-12)

	// Tall random system against gonum's least-squares solve.
	A := MustDense(t, 40, 5)
	RandomFill(t, A, 77)
	b := make([]float64, 40)
	for i := range b {
		b[i] = float64(i%7) - 3
	}
	x, err := matrix.QRSolve(A, MustVec(t, b...))
	require.NoError(t, err)
	var want mat.VecDense
	require.NoError(t, want.SolveVec(ToGonum(t, A), mat.NewVecDense(40, b)))
	require.InDeltaSlice(t, want.RawVector().Data, x.Slice(), 1e-10)

	// b is read, not modified.
	y := MustVec(t, 1, 3, 5, 7)
	_, err = matrix.QRSolve(X, y)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5, 7}, y.Slice())

	_, err = matrix.QRSolve(X, MustVec(t, 1, 2))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.QRSolve(MustDense(t, 2, 3), MustVec(t, 1, 2))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.QRSolve(nil, y)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.QRSolve(MustRows(t, [][]float64{{1, 0}, {2, 0}, {3, 0}}), MustVec(t, 1, 2, 3))
	AssertErrorIs(t, err, matrix.ErrSingular)
}

func TestQR_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.QR(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, err = matrix.QR(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	// A zero column is skipped and surfaces as a zero on R's diagonal.
	_, R, err := matrix.QR(MustRows(t, [][]float64{{1, 0}, {2, 0}, {3, 0}}))
	require.NoError(t, err)
	require.Zero(t, MustAt(t, R, 1, 1))
	require.InDelta(t, math.Sqrt(14), math.Abs(MustAt(t, R, 0, 0)), 1e-12)
}

func TestSolveUpper(t *testing.T) {
	t.Parallel()

	R := MustRows(t, [][]float64{{2, 1, -1}, {0, 4, 2}, {0, 0, 5}})
	x, err := matrix.SolveUpper(R, MustVec(t, 2, 10, 10))
	require.NoError(t, err)
	// x3 = 2, x2 = (10-4)/4 = 1.5, x1 = (2 - 1.5 + 2)/2 = 1.25
	require.Equal(t, []float64{1.25, 1.5, 2}, x.Slice())

	_, err = matrix.SolveUpper(MustRows(t, [][]float64{{1, 1}, {0, 0}}), MustVec(t, 1, 1))
	AssertErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.SolveUpper(R, MustVec(t, 1))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SolveUpper(MustDense(t, 2, 3), MustVec(t, 1, 1))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}
