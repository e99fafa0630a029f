package regression

import "errors"

var (
	// ErrBadSplit indicates a train fraction that leaves either side empty.
	ErrBadSplit = errors.New("regression: split leaves an empty partition")

	// ErrTooFewSamples indicates fewer rows than coefficients to fit.
	ErrTooFewSamples = errors.New("regression: fewer samples than coefficients")

	// ErrRidgeUnsupported indicates WithRidge combined with MethodQR.
	ErrRidgeUnsupported = errors.New("regression: ridge penalty is not supported by the QR method")

	// ErrUnknownMethod is returned by ParseMethod.
	ErrUnknownMethod = errors.New("regression: unknown method")
)
