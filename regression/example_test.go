package regression_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/regression"
)

// ExampleFit fits y = 1 + 2x with an intercept and scores the fit.
func ExampleFit() {
	x, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {2}, {3}})
	y, _ := matrix.NewVectorFrom([]float64{1, 3, 5, 7})

	model, err := regression.Fit(x, y, regression.WithIntercept(), regression.WithMethod(regression.MethodQR))
	if err != nil {
		fmt.Println(err)
		return
	}
	beta := model.Coefficients().Slice()
	pred, _ := model.Predict(x)
	rmse, _ := regression.RMSE(pred, y)
	fmt.Printf("intercept=%.2f slope=%.2f rmse<1e-9: %v\n", beta[0], beta[1], rmse < 1e-9)
	// Output:
	// intercept=1.00 slope=2.00 rmse<1e-9: true
}
