package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linalg/matrix"
)

// RMSE returns sqrt(Σ(pred[i]-y[i])² / n).
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func RMSE(pred, y *matrix.Vector) (float64, error) {
	if pred == nil {
		return 0, fmt.Errorf("regression: RMSE: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(y, pred.Len()); err != nil {
		return 0, fmt.Errorf("regression: RMSE: %w", err)
	}

	return floats.Distance(pred.Slice(), y.Slice(), 2) / math.Sqrt(float64(y.Len())), nil
}

// RSquared returns the coefficient of determination of pred against y.
// It is undefined (NaN or -Inf) for a constant y.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func RSquared(pred, y *matrix.Vector) (float64, error) {
	if pred == nil {
		return 0, fmt.Errorf("regression: RSquared: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(y, pred.Len()); err != nil {
		return 0, fmt.Errorf("regression: RSquared: %w", err)
	}

	return stat.RSquaredFrom(pred.Slice(), y.Slice(), nil), nil
}
