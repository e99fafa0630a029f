package main

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/linalg/matrix"
)

// savePlot writes a predicted-vs-actual scatter with the y = x reference line.
// The image format follows the file extension (png, svg, pdf, ...).
func savePlot(path string, actual, predicted *matrix.Vector) error {
	a, p := actual.Slice(), predicted.Slice()
	pts := make(plotter.XYs, len(a))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range a {
		pts[i].X, pts[i].Y = a[i], p[i]
		lo = math.Min(lo, math.Min(a[i], p[i]))
		hi = math.Max(hi, math.Max(a[i], p[i]))
	}

	pl := plot.New()
	pl.Title.Text = "Predicted vs actual (test set)"
	pl.X.Label.Text = "actual"
	pl.Y.Label.Text = "predicted"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	ref, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return err
	}
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	pl.Add(sc, ref, plotter.NewGrid())
	pl.Legend.Add("test rows", sc)
	pl.Legend.Add("y = x", ref)

	return pl.Save(5*vg.Inch, 5*vg.Inch, path)
}
