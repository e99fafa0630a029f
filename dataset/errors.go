package dataset

import "errors"

var (
	// ErrParse indicates a used cell that is not a finite number, or a record
	// that passed the field-count filter but lacks a configured column.
	ErrParse = errors.New("dataset: malformed record")

	// ErrEmpty indicates that no usable record was found.
	ErrEmpty = errors.New("dataset: no usable records")
)
