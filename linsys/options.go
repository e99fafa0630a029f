// Package linsys: functional configuration for both solvers.
//
// Options are shared by LinearSystem and PosSymLinSystem; each solver reads
// only the fields it needs. Invalid option values are programmer errors and
// panic at construction time of the Option, never inside Solve.
package linsys

import "math"

// ---------- Defaults ----------

const (
	// DefaultPivoting enables partial pivoting in Gaussian elimination.
	DefaultPivoting = true

	// DefaultTolerance is the Conjugate Gradient stopping threshold on ‖r‖.
	DefaultTolerance = 1e-10

	// DefaultSymmetryTolerance bounds |A[i,j] - A[j,i]| accepted by NewPosSym.
	DefaultSymmetryTolerance = 1e-12

	// DefaultMaxIterations of zero means "2·n" for an n×n system.
	DefaultMaxIterations = 0
)

const (
	panicToleranceInvalid    = "linsys: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid      = "linsys: WithMaxIterations: k must be >= 1"
	panicSymToleranceInvalid = "linsys: WithSymmetryTolerance: eps must be finite and >= 0"
)

// Option mutates solver options.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	pivoting bool
	tol      float64
	maxIter  int
	symTol   float64
	strict   bool
	progress func(iter int, residual float64)
}

// WithoutPivoting makes LinearSystem.Solve eliminate in natural row order.
// A zero on the diagonal then fails with matrix.ErrSingular even when a row
// swap would have rescued the system.
func WithoutPivoting() Option {
	return func(o *Options) { o.pivoting = false }
}

// WithTolerance sets the CG residual threshold. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps CG iterations. Panics when k < 1.
func WithMaxIterations(k int) Option {
	if k < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = k }
}

// WithSymmetryTolerance sets the symmetry check tolerance of NewPosSym.
// Zero accepts only exact symmetry. Panics on negative or non-finite eps.
func WithSymmetryTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicSymToleranceInvalid)
	}

	return func(o *Options) { o.symTol = eps }
}

// WithStrictConvergence makes PosSymLinSystem.Solve fail with ErrNotConverged
// instead of returning the best iterate.
func WithStrictConvergence() Option {
	return func(o *Options) { o.strict = true }
}

// WithProgress registers a callback invoked after every CG iteration with the
// 1-based iteration number and the current residual norm.
// The callback runs on the solving goroutine and must not block.
func WithProgress(fn func(iter int, residual float64)) Option {
	return func(o *Options) { o.progress = fn }
}

func defaultOptions() Options {
	return Options{
		pivoting: DefaultPivoting,
		tol:      DefaultTolerance,
		maxIter:  DefaultMaxIterations,
		symTol:   DefaultSymmetryTolerance,
	}
}

// gatherOptions applies user options in order over the defaults; nil entries are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	return o
}
