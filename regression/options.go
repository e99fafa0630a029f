package regression

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/linsys"
)

// Method selects how Fit solves the least-squares problem.
type Method int

const (
	// MethodPseudoInverse computes β = (XᵀX + λI)⁻¹Xᵀ·y via matrix.PseudoInverse.
	MethodPseudoInverse Method = iota
	// MethodGaussian solves the normal equations with linsys.LinearSystem.
	MethodGaussian
	// MethodConjugateGradient solves the normal equations with linsys.PosSymLinSystem.
	MethodConjugateGradient
	// MethodQR solves R·β = Qᵀy with matrix.QRSolve; it does not support a ridge term.
	MethodQR
)

var methodNames = map[Method]string{
	MethodPseudoInverse:     "pinv",
	MethodGaussian:          "gauss",
	MethodConjugateGradient: "cg",
	MethodQR:                "qr",
}

// String returns the short name accepted by ParseMethod.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "pinv", "gauss", "cg" or "qr" to a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

const (
	// DefaultMethod is the pseudo-inverse fit.
	DefaultMethod = MethodPseudoInverse

	// DefaultRidge disables regularisation.
	DefaultRidge = 0.0
)

const panicRidgeInvalid = "regression: WithRidge: lambda must be finite and >= 0"

// Option configures Fit.
type Option func(*Options)

// Options is the resolved Fit configuration.
type Options struct {
	method    Method
	lambda    float64
	intercept bool
	standard  bool
	solver    []linsys.Option
}

// WithMethod selects the solving method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithRidge adds λ·I to XᵀX. Panics on negative or non-finite lambda.
func WithRidge(lambda float64) Option {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		panic(panicRidgeInvalid)
	}

	return func(o *Options) { o.lambda = lambda }
}

// WithIntercept prepends a constant column of ones; β[0] is then the intercept.
func WithIntercept() Option {
	return func(o *Options) { o.intercept = true }
}

// WithStandardize fits on z-scored feature columns and maps the coefficients
// back to raw units. It implies WithIntercept. A ridge penalty then acts on
// the standardised coefficients.
func WithStandardize() Option {
	return func(o *Options) {
		o.standard = true
		o.intercept = true
	}
}

// WithSolverOptions forwards options to the linsys solvers used by
// MethodGaussian and MethodConjugateGradient.
func WithSolverOptions(opts ...linsys.Option) Option {
	own := append([]linsys.Option(nil), opts...)

	return func(o *Options) { o.solver = append(o.solver, own...) }
}

func gatherOptions(user ...Option) Options {
	o := Options{method: DefaultMethod, lambda: DefaultRidge}
	for _, opt := range user {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	return o
}
