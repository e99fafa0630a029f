// SPDX-License-Identifier: MIT

// Package matrix - Vector: fixed-length dense column vector.
//
// Purpose:
//   - Own a contiguous []float64 buffer with value semantics (Clone/CopyFrom deep-copy).
//   - Offer the arithmetic the solvers need: +, -, unary -, scalar *, dot, norm.
//   - Report length mismatches and bad indices as sentinel errors, never panics.
//
// Indexing is 0-based, exactly like Dense.At/Set.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// vector error context tags
const (
	opVecAdd   = "Vector.Add"
	opVecSub   = "Vector.Sub"
	opVecDot   = "Vector.Dot"
	opVecAt    = "Vector.At"
	opVecSet   = "Vector.Set"
	opVecCopy  = "Vector.CopyFrom"
	opVecNewFr = "NewVectorFrom"
)

// Vector is a dense real-valued vector of length n >= 1.
type Vector struct {
	data []float64
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector allocates a zero vector of length n.
// Errors: ErrInvalidDimensions when n < 1.
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float64, n)}, nil
}

// NewVectorFrom copies vals into a new Vector.
// Errors: ErrInvalidDimensions for an empty slice.
func NewVectorFrom(vals []float64) (*Vector, error) {
	if len(vals) == 0 {
		return nil, matrixErrorf(opVecNewFr, ErrInvalidDimensions)
	}
	buf := make([]float64, len(vals))
	copy(buf, vals)

	return &Vector{data: buf}, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i (0-based).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d): %w", opVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set writes element i (0-based).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%s(%d): %w", opVecSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	buf := make([]float64, len(v.data))
	copy(buf, v.data)

	return &Vector{data: buf}
}

// CopyFrom assigns src to v. When the lengths differ v's buffer is released
// and replaced by one of src's length.
func (v *Vector) CopyFrom(src *Vector) error {
	if src == nil {
		return matrixErrorf(opVecCopy, ErrNilMatrix)
	}
	if v == src {
		return nil
	}
	if len(v.data) != len(src.data) {
		v.data = make([]float64, len(src.data))
	}
	copy(v.data, src.data)

	return nil
}

// Slice returns a copy of the elements.
func (v *Vector) Slice() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Add returns v + w.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if err := v.sameLen(w); err != nil {
		return nil, matrixErrorf(opVecAdd, err)
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] + w.data[i]
	}

	return &Vector{data: out}, nil
}

// Sub returns v - w.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if err := v.sameLen(w); err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] - w.data[i]
	}

	return &Vector{data: out}, nil
}

// Neg returns -v.
func (v *Vector) Neg() *Vector { return v.Scale(-1) }

// Scale returns s*v. Scalar multiplication commutes, so this single method
// covers both operand orders.
func (v *Vector) Scale(s float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x * s
	}

	return &Vector{data: out}
}

// AddInPlace performs v += w. v is untouched on error.
func (v *Vector) AddInPlace(w *Vector) error {
	if err := v.sameLen(w); err != nil {
		return matrixErrorf(opVecAdd, err)
	}
	for i := range v.data {
		v.data[i] += w.data[i]
	}

	return nil
}

// SubInPlace performs v -= w. v is untouched on error.
func (v *Vector) SubInPlace(w *Vector) error {
	if err := v.sameLen(w); err != nil {
		return matrixErrorf(opVecSub, err)
	}
	for i := range v.data {
		v.data[i] -= w.data[i]
	}

	return nil
}

// ScaleInPlace performs v *= s.
func (v *Vector) ScaleInPlace(s float64) {
	for i := range v.data {
		v.data[i] *= s
	}
}

// AxpyInPlace performs v += alpha*w without allocating.
// It is the update step of iterative solvers.
func (v *Vector) AxpyInPlace(alpha float64, w *Vector) error {
	if err := v.sameLen(w); err != nil {
		return matrixErrorf(opVecAdd, err)
	}
	for i := range v.data {
		v.data[i] += alpha * w.data[i]
	}

	return nil
}

// Dot returns the sum of element-wise products.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if err := v.sameLen(w); err != nil {
		return 0, matrixErrorf(opVecDot, err)
	}
	sum := ZeroSum
	for i := range v.data {
		sum += v.data[i] * w.data[i]
	}

	return sum, nil
}

// Norm returns the Euclidean norm sqrt(v·v).
func (v *Vector) Norm() float64 {
	sum := NormZero
	for _, x := range v.data {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// String renders v as "[v0, v1, ..., vn-1]" with six significant digits per element.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf(_fmtValue, x))
	}
	b.WriteString("]")

	return b.String()
}

// sameLen is the vector analogue of ValidateSameShape.
func (v *Vector) sameLen(w *Vector) error {
	if w == nil {
		return ErrNilMatrix
	}
	if len(v.data) != len(w.data) {
		return ErrDimensionMismatch
	}

	return nil
}
