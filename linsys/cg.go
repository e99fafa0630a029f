package linsys

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opNewPosSym = "NewPosSym"
	opSolveCG   = "PosSymLinSystem.SolveCG"
)

// PosSymLinSystem is a LinearSystem whose matrix is symmetric and assumed
// positive-definite. Solve uses Conjugate Gradient; the embedded
// LinearSystem.Solve stays available for Gaussian elimination on the same data.
type PosSymLinSystem struct {
	LinearSystem
}

// CGResult reports a Conjugate Gradient run.
type CGResult struct {
	// X is the final iterate.
	X *matrix.Vector
	// Iterations is the number of completed CG steps.
	Iterations int
	// Converged reports ‖r‖ < tolerance at exit.
	Converged bool
	// ResidualNorm is ‖b - A·X‖ as tracked by the recurrence.
	ResidualNorm float64
	// Residuals holds ‖r‖ after every step, starting with ‖b‖.
	Residuals []float64
}

// NewPosSym validates (A, b) like New and additionally requires
// |A[i,j] - A[j,i]| < symmetry tolerance for every i < j.
//
// Errors:
//   - everything New returns.
//   - matrix.ErrAsymmetry when the symmetry check fails.
func NewPosSym(a matrix.Matrix, b *matrix.Vector, opts ...Option) (*PosSymLinSystem, error) {
	ls, err := New(a, b, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewPosSym, err)
	}
	if err = matrix.ValidateSymmetric(ls.a, ls.opts.symTol); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewPosSym, err)
	}

	return &PosSymLinSystem{LinearSystem: *ls}, nil
}

// Solve returns the Conjugate Gradient solution.
// Without WithStrictConvergence the last iterate is returned even when the
// tolerance was not reached.
func (s *PosSymLinSystem) Solve() (*matrix.Vector, error) {
	res, err := s.SolveCG()
	if err != nil {
		return nil, err
	}

	return res.X, nil
}

// SolveCG runs Conjugate Gradient and returns the full run report.
func (s *PosSymLinSystem) SolveCG() (*CGResult, error) {
	return s.SolveCGContext(context.Background())
}

// SolveCGContext runs Conjugate Gradient from x = 0.
// MAIN DESCRIPTION:
//   - r = b, p = r; each step moves x along p by α = (r·r)/(p·Ap), updates r,
//     and stops once ‖r‖ < tolerance. The next direction is p = r + (r'·r')/(r·r)·p.
//
// Implementation:
//   - Stage 1: b = 0 (‖b‖ < tolerance) converges immediately with x = 0.
//   - Stage 2: at most maxIter steps (2n unless WithMaxIterations), checking ctx
//     before each matrix-vector product.
//   - Stage 3: p·Ap <= 0 aborts with ErrNotPositiveDefinite.
//
// Errors:
//   - ErrNotPositiveDefinite (the partial result is returned alongside).
//   - ErrNotConverged in strict mode (the result is returned alongside).
//   - ctx.Err() on cancellation (the result so far is returned alongside).
//
// Complexity:
//   - Time O(k·n²) for k iterations, Space O(n).
func (s *PosSymLinSystem) SolveCGContext(ctx context.Context) (*CGResult, error) {
	n := s.Size()
	maxIter := s.opts.maxIter
	if maxIter == DefaultMaxIterations {
		maxIter = 2 * n
	}
	tol := s.opts.tol

	x, err := matrix.NewVector(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveCG, err)
	}
	r := s.b.Clone()
	p := r.Clone()
	rsold, _ := r.Dot(r)

	res := &CGResult{X: x, ResidualNorm: math.Sqrt(rsold)}
	res.Residuals = append(make([]float64, 0, maxIter+1), res.ResidualNorm)
	if res.ResidualNorm < tol {
		res.Converged = true

		return res, nil
	}

	var (
		ap          *matrix.Vector
		pAp, alpha  float64
		rsnew, beta float64
	)
	for it := 1; it <= maxIter; it++ {
		select {
		case <-ctx.Done():
			return res, fmt.Errorf("%s: iteration %d: %w", opSolveCG, it, ctx.Err())
		default:
		}

		if ap, err = matrix.MulVec(s.a, p); err != nil {
			return res, fmt.Errorf("%s: %w", opSolveCG, err)
		}
		pAp, _ = p.Dot(ap)
		if !(pAp > 0) {
			return res, fmt.Errorf("%s: iteration %d: pᵀAp = %g: %w", opSolveCG, it, pAp, ErrNotPositiveDefinite)
		}
		alpha = rsold / pAp
		_ = x.AxpyInPlace(alpha, p)
		_ = r.AxpyInPlace(-alpha, ap)
		rsnew, _ = r.Dot(r)

		res.Iterations = it
		res.ResidualNorm = math.Sqrt(rsnew)
		res.Residuals = append(res.Residuals, res.ResidualNorm)
		if s.opts.progress != nil {
			s.opts.progress(it, res.ResidualNorm)
		}
		if res.ResidualNorm < tol {
			res.Converged = true

			return res, nil
		}

		beta = rsnew / rsold
		p.ScaleInPlace(beta)
		_ = p.AddInPlace(r)
		rsold = rsnew
	}

	if s.opts.strict {
		return res, fmt.Errorf("%s: %d iterations, ‖r‖ = %g: %w", opSolveCG, res.Iterations, res.ResidualNorm, ErrNotConverged)
	}

	return res, nil
}
