package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

// Dataset is a design matrix with one row per accepted record and the
// matching target values.
type Dataset struct {
	Features *matrix.Dense
	Target   *matrix.Vector
	// Skipped counts records dropped for having too few fields.
	Skipped int
}

// Len returns the number of accepted records.
func (d *Dataset) Len() int { return d.Target.Len() }

// Parse reads comma-separated records from r.
//
// Errors:
//   - ErrParse (wrapped with the 1-based line number) for a bad used cell.
//   - ErrEmpty when no record passes the field-count filter.
//   - read errors from r.
func Parse(r io.Reader, opts ...Option) (*Dataset, error) {
	o := gatherOptions(opts...)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		feats   []float64
		target  []float64
		skipped int
		rec     []string
		err     error
		v       float64
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		if len(rec) < o.minFields {
			skipped++
			continue
		}
		line, _ := cr.FieldPos(0)
		for _, c := range o.features {
			if v, err = cell(rec, c); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			feats = append(feats, v)
		}
		if v, err = cell(rec, o.target); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		target = append(target, v)
	}
	if len(target) == 0 {
		return nil, ErrEmpty
	}

	x, err := matrix.NewDenseFrom(len(target), len(o.features), feats)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	y, err := matrix.NewVectorFrom(target)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return &Dataset{Features: x, Target: y, Skipped: skipped}, nil
}

// cell parses rec[c] as a finite float64.
func cell(rec []string, c int) (float64, error) {
	if c >= len(rec) {
		return 0, fmt.Errorf("column %d missing (%d fields): %w", c, len(rec), ErrParse)
	}
	s := strings.TrimSpace(rec[c])
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("column %d: %q: %w", c, s, ErrParse)
	}

	return v, nil
}
