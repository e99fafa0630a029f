package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNewVector(t *testing.T) {
	v, err := matrix.NewVector(4)
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())
	require.Equal(t, []float64{0, 0, 0, 0}, v.Slice())

	_, err = matrix.NewVector(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewVectorFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestVector_AtSet(t *testing.T) {
	v := MustVec(t, 1, 2, 3)

	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, x)
	require.NoError(t, v.Set(0, -1))
	require.Equal(t, []float64{-1, 2, 3}, v.Slice())

	_, err = v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(3, 0), matrix.ErrOutOfRange)
}

func TestVector_ValueSemantics(t *testing.T) {
	v := MustVec(t, 1, 2)
	c := v.Clone()
	require.NoError(t, c.Set(0, 10))
	require.Equal(t, []float64{1, 2}, v.Slice())

	// CopyFrom resizes the destination when lengths differ.
	dst := MustVec(t, 0)
	require.NoError(t, dst.CopyFrom(MustVec(t, 7, 8, 9)))
	require.Equal(t, 3, dst.Len())
	require.Equal(t, []float64{7, 8, 9}, dst.Slice())

	require.NoError(t, dst.CopyFrom(dst))
	require.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)

	// Slice hands out a copy.
	s := v.Slice()
	s[1] = 100
	require.Equal(t, []float64{1, 2}, v.Slice())
}

func TestVector_Arithmetic(t *testing.T) {
	v := MustVec(t, 1, 2, 3)
	w := MustVec(t, 4, 5, 6)

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.Slice())

	diff, err := v.Sub(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -3, -3}, diff.Slice())

	assert.Equal(t, []float64{-1, -2, -3}, v.Neg().Slice())
	assert.Equal(t, []float64{2, 4, 6}, v.Scale(2).Slice())

	dot, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	assert.InDelta(t, math.Sqrt(14), v.Norm(), 1e-15)

	// Operands are never mutated by the value-returning operations.
	assert.Equal(t, []float64{1, 2, 3}, v.Slice())
	assert.Equal(t, []float64{4, 5, 6}, w.Slice())
}

func TestVector_InPlace(t *testing.T) {
	v := MustVec(t, 1, 1)
	require.NoError(t, v.AddInPlace(MustVec(t, 2, 3)))
	require.Equal(t, []float64{3, 4}, v.Slice())

	require.NoError(t, v.SubInPlace(MustVec(t, 1, 1)))
	require.Equal(t, []float64{2, 3}, v.Slice())

	v.ScaleInPlace(0.5)
	require.Equal(t, []float64{1, 1.5}, v.Slice())

	require.NoError(t, v.AxpyInPlace(2, MustVec(t, 1, -1)))
	require.Equal(t, []float64{3, -0.5}, v.Slice())
}

func TestVector_LengthMismatch(t *testing.T) {
	v := MustVec(t, 1, 2)
	w := MustVec(t, 1, 2, 3)

	_, err := v.Add(w)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = v.Sub(w)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = v.Dot(w)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, v.AddInPlace(w), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, v.SubInPlace(nil), matrix.ErrNilMatrix)

	// A failed in-place operation leaves the receiver untouched.
	require.Equal(t, []float64{1, 2}, v.Slice())
}

func TestVector_String(t *testing.T) {
	require.Equal(t, "[1, 2.5, -3]", MustVec(t, 1, 2.5, -3).String())
	require.Equal(t, "[0]", MustVec(t, 0).String())
	// Six significant digits, shortest form.
	require.Equal(t, "[0.0909091, 123457, 1e-07]", MustVec(t, 1.0/11, 123456.789, 1e-7).String())
}
