package regression

import (
	"fmt"

	"github.com/katalvlaran/linalg/linsys"
	"github.com/katalvlaran/linalg/matrix"
)

// Model is a fitted linear model.
type Model struct {
	coef      *matrix.Vector
	intercept bool
	method    Method
	lambda    float64
}

// Fit estimates β for y ≈ X·β.
//
// Implementation:
//   - Stage 1: validate X, y; z-score the columns under WithStandardize;
//     prepend a ones column under WithIntercept.
//   - Stage 2: solve by the selected Method (see package doc).
//   - Stage 3: under WithStandardize, map β back to raw feature units.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (len(y) != rows).
//   - ErrTooFewSamples when rows < coefficients.
//   - ErrRidgeUnsupported for MethodQR with a non-zero ridge.
//   - matrix.ErrSingular for collinear columns without ridge; solver errors
//     from linsys are returned wrapped.
func Fit(x matrix.Matrix, y *matrix.Vector, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("regression: Fit: %w", err)
	}
	if err := matrix.ValidateVecLen(y, x.Rows()); err != nil {
		return nil, fmt.Errorf("regression: Fit: %w", err)
	}
	design, means, stds, err := prepare(x, o)
	if err != nil {
		return nil, fmt.Errorf("regression: Fit: %w", err)
	}
	if design.Rows() < design.Cols() {
		return nil, fmt.Errorf("regression: Fit: %d rows, %d coefficients: %w",
			design.Rows(), design.Cols(), ErrTooFewSamples)
	}

	var beta *matrix.Vector
	switch o.method {
	case MethodPseudoInverse:
		beta, err = fitPseudoInverse(design, y, o.lambda)
	case MethodGaussian:
		beta, err = fitNormal(design, y, o, false)
	case MethodConjugateGradient:
		beta, err = fitNormal(design, y, o, true)
	case MethodQR:
		beta, err = fitQR(design, y, o.lambda)
	default:
		err = fmt.Errorf("%v: %w", o.method, ErrUnknownMethod)
	}
	if err != nil {
		return nil, fmt.Errorf("regression: Fit(%v): %w", o.method, err)
	}
	if o.standard {
		beta = unstandardize(beta, means, stds)
	}

	return &Model{coef: beta, intercept: o.intercept, method: o.method, lambda: o.lambda}, nil
}

func fitPseudoInverse(x *matrix.Dense, y *matrix.Vector, lambda float64) (*matrix.Vector, error) {
	pinv, err := matrix.PseudoInverse(x, lambda)
	if err != nil {
		return nil, err
	}

	return matrix.MulVec(pinv, y)
}

func fitNormal(x *matrix.Dense, y *matrix.Vector, o Options, spd bool) (*matrix.Vector, error) {
	lhs, rhs, err := matrix.NormalEquations(x, y, o.lambda)
	if err != nil {
		return nil, err
	}
	var sys linsys.Solver
	if spd {
		sys, err = linsys.NewPosSym(lhs, rhs, o.solver...)
	} else {
		sys, err = linsys.New(lhs, rhs, o.solver...)
	}
	if err != nil {
		return nil, err
	}

	return sys.Solve()
}

func fitQR(x *matrix.Dense, y *matrix.Vector, lambda float64) (*matrix.Vector, error) {
	if lambda != 0 {
		return nil, ErrRidgeUnsupported
	}

	return matrix.QRSolve(x, y)
}

// prepare builds the design matrix Fit solves on, z-scoring x first under
// WithStandardize and returning the column means and deviations it used.
func prepare(x matrix.Matrix, o Options) (design *matrix.Dense, means, stds []float64, err error) {
	src := x
	if o.standard {
		var z *matrix.Dense
		if z, means, stds, err = matrix.Standardize(x); err != nil {
			return nil, nil, nil, err
		}
		src = z
	}
	if design, err = designMatrix(src, o.intercept); err != nil {
		return nil, nil, nil, err
	}

	return design, means, stds, nil
}

// unstandardize maps γ fitted on [1 | Z] to β for [1 | X]:
// β_j = γ_j / s_j and β_0 = γ_0 - Σ β_j·μ_j. Constant columns get β_j = 0.
func unstandardize(gamma *matrix.Vector, means, stds []float64) *matrix.Vector {
	g := gamma.Slice()
	out := make([]float64, len(g))
	out[0] = g[0]
	for j, s := range stds {
		if s == 0 {
			continue
		}
		out[j+1] = g[j+1] / s
		out[0] -= out[j+1] * means[j]
	}
	beta, _ := matrix.NewVectorFrom(out)

	return beta
}

// designMatrix copies x, prepending a column of ones when intercept is set.
func designMatrix(x matrix.Matrix, intercept bool) (*matrix.Dense, error) {
	rows, cols := x.Rows(), x.Cols()
	off := 0
	if intercept {
		off = 1
	}
	d, err := matrix.NewDense(rows, cols+off)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		if intercept {
			if err = d.Set(i, 0, 1); err != nil {
				return nil, err
			}
		}
		for j := 0; j < cols; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, err
			}
			if err = d.Set(i, j+off, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Predict returns X·β for a matrix with the same feature columns used in Fit
// (without the ones column; it is added back when the model has an intercept).
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func (m *Model) Predict(x matrix.Matrix) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("regression: Predict: %w", err)
	}
	design, err := designMatrix(x, m.intercept)
	if err != nil {
		return nil, fmt.Errorf("regression: Predict: %w", err)
	}
	pred, err := matrix.MulVec(design, m.coef)
	if err != nil {
		return nil, fmt.Errorf("regression: Predict: %w", err)
	}

	return pred, nil
}

// Coefficients returns a copy of β; with an intercept β[0] is the intercept.
func (m *Model) Coefficients() *matrix.Vector { return m.coef.Clone() }

// HasIntercept reports whether the model was fitted WithIntercept.
func (m *Model) HasIntercept() bool { return m.intercept }

// Method returns the method used by Fit.
func (m *Model) Method() Method { return m.method }

// Ridge returns the λ used by Fit.
func (m *Model) Ridge() float64 { return m.lambda }
