// SPDX-License-Identifier: MIT

// Package matrix - in-place (compound assignment) methods on *Dense.
// Each method validates first and mutates the receiver only on success.
package matrix

const (
	opAddInPlace   = "Dense.AddInPlace"
	opSubInPlace   = "Dense.SubInPlace"
	opScaleInPlace = "Dense.ScaleInPlace"
)

// AddInPlace performs m += b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) AddInPlace(b Matrix) error { return m.addSubInPlace(b, +1, opAddInPlace) }

// SubInPlace performs m -= b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) SubInPlace(b Matrix) error { return m.addSubInPlace(b, -1, opSubInPlace) }

// ScaleInPlace performs m *= s.
// Errors: ErrNaNInf when the product overflows and the numeric policy is on;
// elements before the failing one are already scaled.
func (m *Dense) ScaleInPlace(s float64) error {
	if err := m.Apply(func(_, _ int, v float64) float64 { return v * s }); err != nil {
		return matrixErrorf(opScaleInPlace, err)
	}

	return nil
}

func (m *Dense) addSubInPlace(b Matrix, sign float64, tag string) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(tag, err)
	}
	// Materialise b first so that m.AddInPlace(m) and non-Dense operands are safe.
	src, err := denseCopy(b)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	for idx := range m.data {
		m.data[idx] += sign * src.data[idx]
	}

	return nil
}
