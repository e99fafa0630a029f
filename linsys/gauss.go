package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opNew   = "New"
	opSolve = "LinearSystem.Solve"
)

// Solver is implemented by every system in this package.
type Solver interface {
	Solve() (*matrix.Vector, error)
}

var (
	_ Solver = (*LinearSystem)(nil)
	_ Solver = (*PosSymLinSystem)(nil)
)

// LinearSystem is a square system A·x = b solved by Gaussian elimination.
// It owns private copies of A and b and never mutates them.
type LinearSystem struct {
	a    *matrix.Dense
	b    *matrix.Vector
	opts Options
}

// New validates and copies (A, b).
//
// Errors:
//   - ErrNilSystem when A or b is nil.
//   - matrix.ErrNonSquare when A is not square.
//   - matrix.ErrDimensionMismatch when A.Rows() != b.Len().
func New(a matrix.Matrix, b *matrix.Vector, opts ...Option) (*LinearSystem, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opNew, ErrNilSystem)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, fmt.Errorf("%s: A is %dx%d, b has %d: %w", opNew, a.Rows(), a.Cols(), b.Len(), err)
	}
	ad, err := matrix.NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if err = ad.CopyFrom(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return &LinearSystem{a: ad, b: b.Clone(), opts: gatherOptions(opts...)}, nil
}

// A returns a copy of the coefficient matrix.
func (s *LinearSystem) A() *matrix.Dense { return s.a.Clone().(*matrix.Dense) }

// B returns a copy of the right-hand side.
func (s *LinearSystem) B() *matrix.Vector { return s.b.Clone() }

// Size returns n for the n×n system.
func (s *LinearSystem) Size() int { return s.b.Len() }

// Solve computes x with A·x = b.
// MAIN DESCRIPTION:
//   - Forward elimination to a unit upper-triangular system, then back-substitution.
//
// Implementation:
//   - Stage 1: copy A and b into flat working buffers.
//   - Stage 2: for each column k, swap in the row with the largest |A[i,k]| (i ≥ k)
//     unless WithoutPivoting was given; divide the pivot row (and b[k]) by the
//     pivot; subtract multiples of it from every row below.
//   - Stage 3: x[i] = b[i] - Σ_{j>i} A[i,j]·x[j], bottom-up.
//
// Errors:
//   - matrix.ErrSingular when the pivot of some column is exactly zero.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Repeated calls recompute from the stored copies and give identical results.
func (s *LinearSystem) Solve() (*matrix.Vector, error) {
	n := s.Size()
	a := s.a.Data()
	rhs := s.b.Slice()

	var (
		i, j, k, p  int
		maxVal, cur float64
		pivot, f    float64
		rowI, rowK  int
	)
	for k = 0; k < n; k++ {
		if s.opts.pivoting {
			p, maxVal = k, math.Abs(a[k*n+k])
			for i = k + 1; i < n; i++ {
				if cur = math.Abs(a[i*n+k]); cur > maxVal {
					p, maxVal = i, cur
				}
			}
			if p != k {
				for j = 0; j < n; j++ {
					a[p*n+j], a[k*n+j] = a[k*n+j], a[p*n+j]
				}
				rhs[p], rhs[k] = rhs[k], rhs[p]
			}
		}

		rowK = k * n
		pivot = a[rowK+k]
		if pivot == matrix.ZeroPivot {
			return nil, fmt.Errorf("%s: column %d: %w", opSolve, k, matrix.ErrSingular)
		}
		for j = k; j < n; j++ {
			a[rowK+j] /= pivot
		}
		rhs[k] /= pivot

		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = a[rowI+k]
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a[rowI+j] -= f * a[rowK+j]
			}
			rhs[i] -= f * rhs[k]
		}
	}

	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		rowI = i * n
		for j = i + 1; j < n; j++ {
			sum += a[rowI+j] * x[j]
		}
		x[i] = rhs[i] - sum
	}

	return matrix.NewVectorFrom(x)
}
