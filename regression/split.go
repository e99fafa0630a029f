package regression

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/linalg/matrix"
)

// Partition holds a train/test split of rows.
type Partition struct {
	TrainX *matrix.Dense
	TrainY *matrix.Vector
	TestX  *matrix.Dense
	TestY  *matrix.Vector
}

// Split shuffles the rows of (x, y) with a generator seeded by seed and puts
// the first ⌊N·trainFraction⌋ of them in the training partition.
// The same seed always yields the same partition.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - ErrBadSplit when either partition would be empty.
func Split(x matrix.Matrix, y *matrix.Vector, trainFraction float64, seed int64) (*Partition, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("regression: Split: %w", err)
	}
	if err := matrix.ValidateVecLen(y, x.Rows()); err != nil {
		return nil, fmt.Errorf("regression: Split: %w", err)
	}
	n := x.Rows()
	if !(trainFraction > 0 && trainFraction < 1) {
		return nil, fmt.Errorf("regression: Split: fraction %g: %w", trainFraction, ErrBadSplit)
	}
	nTrain := int(float64(n) * trainFraction)
	if nTrain == 0 || nTrain == n {
		return nil, fmt.Errorf("regression: Split: %d of %d rows: %w", nTrain, n, ErrBadSplit)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	trainX, trainY, err := gatherRows(x, y, perm[:nTrain])
	if err != nil {
		return nil, fmt.Errorf("regression: Split: %w", err)
	}
	testX, testY, err := gatherRows(x, y, perm[nTrain:])
	if err != nil {
		return nil, fmt.Errorf("regression: Split: %w", err)
	}

	return &Partition{TrainX: trainX, TrainY: trainY, TestX: testX, TestY: testY}, nil
}

// gatherRows copies the listed rows of x and entries of y, in order.
func gatherRows(x matrix.Matrix, y *matrix.Vector, idx []int) (*matrix.Dense, *matrix.Vector, error) {
	cols := x.Cols()
	flat := make([]float64, 0, len(idx)*cols)
	vals := make([]float64, 0, len(idx))
	var v float64
	var err error
	for _, i := range idx {
		for j := 0; j < cols; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, nil, err
			}
			flat = append(flat, v)
		}
		if v, err = y.At(i); err != nil {
			return nil, nil, err
		}
		vals = append(vals, v)
	}
	sx, err := matrix.NewDenseFrom(len(idx), cols, flat)
	if err != nil {
		return nil, nil, err
	}
	sy, err := matrix.NewVectorFrom(vals)
	if err != nil {
		return nil, nil, err
	}

	return sx, sy, nil
}
