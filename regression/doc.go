// Package regression fits ordinary least-squares linear models on top of the
// matrix and linsys packages.
//
// Fit computes β minimising ‖X·β - y‖² (plus λ‖β‖² with WithRidge) by one of:
//
//   - MethodPseudoInverse (default): β = (XᵀX + λI)⁻¹Xᵀ·y.
//   - MethodGaussian: the normal equations solved by linsys.LinearSystem.
//   - MethodConjugateGradient: the normal equations solved by linsys.PosSymLinSystem.
//   - MethodQR: X = Q·R, then R·β = Qᵀy; XᵀX is never formed. No ridge term.
//
// WithStandardize z-scores the feature columns before solving, which keeps
// XᵀX well conditioned when features differ by orders of magnitude, and
// reports β in the original units.
//
// Split shuffles rows with a seeded generator into train and test partitions,
// and RMSE / RSquared score predictions.
package regression
