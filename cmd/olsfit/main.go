// Command olsfit fits an ordinary least-squares model to a comma-separated
// data file (by default the UCI machine.data CPU-performance set) and reports
// the coefficients and the train/test RMSE.
//
// Usage:
//
//	olsfit [-data machine.data] [-train 0.8] [-seed 42] [-method pinv|gauss|cg|qr]
//	       [-lambda 0] [-intercept] [-standardize] [-plot pred.png] [-quiet]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/gosuri/uilive"

	"github.com/katalvlaran/linalg/dataset"
	"github.com/katalvlaran/linalg/linsys"
	"github.com/katalvlaran/linalg/regression"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	data      string
	train     float64
	seed      int64
	method    string
	lambda    float64
	intercept bool
	standard  bool
	plot      string
	quiet     bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("olsfit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.data, "data", "machine.data", "comma-separated data file")
	fs.Float64Var(&cfg.train, "train", 0.8, "fraction of rows used for training")
	fs.Int64Var(&cfg.seed, "seed", 42, "shuffle seed")
	fs.StringVar(&cfg.method, "method", "pinv", "solver: pinv, gauss, cg or qr")
	fs.Float64Var(&cfg.lambda, "lambda", 0, "ridge penalty (not with qr)")
	fs.BoolVar(&cfg.intercept, "intercept", false, "fit an intercept term")
	fs.BoolVar(&cfg.standard, "standardize", false, "z-score features before fitting (implies -intercept)")
	fs.StringVar(&cfg.plot, "plot", "", "write a predicted-vs-actual scatter plot to this file")
	fs.BoolVar(&cfg.quiet, "quiet", false, "suppress live progress output")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if math.IsNaN(cfg.lambda) || math.IsInf(cfg.lambda, 0) || cfg.lambda < 0 {
		return cfg, fmt.Errorf("-lambda must be finite and >= 0, got %g", cfg.lambda)
	}

	return cfg, nil
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "olsfit: ", 0)

	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Println(err)
		return 2
	}
	method, err := regression.ParseMethod(cfg.method)
	if err != nil {
		logger.Println(err)
		return 2
	}

	prog := newProgress(stderr, cfg.quiet)
	defer prog.stop()
	fail := func(format string, args ...any) int {
		prog.stop()
		logger.Printf(format, args...)

		return 1
	}

	prog.stage("loading %s", cfg.data)
	ds, err := dataset.Load(cfg.data)
	if err != nil {
		return fail("cannot read data: %v", err)
	}

	prog.stage("splitting %d rows (%d skipped), train fraction %g", ds.Len(), ds.Skipped, cfg.train)
	part, err := regression.Split(ds.Features, ds.Target, cfg.train, cfg.seed)
	if err != nil {
		return fail("%v", err)
	}

	prog.stage("fitting with %v", method)
	opts := []regression.Option{
		regression.WithMethod(method),
		regression.WithRidge(cfg.lambda),
		regression.WithSolverOptions(linsys.WithProgress(prog.iteration)),
	}
	if cfg.intercept {
		opts = append(opts, regression.WithIntercept())
	}
	if cfg.standard {
		opts = append(opts, regression.WithStandardize())
	}
	model, err := regression.Fit(part.TrainX, part.TrainY, opts...)
	if err != nil {
		return fail("%v", err)
	}

	prog.stage("scoring")
	trainPred, err := model.Predict(part.TrainX)
	if err != nil {
		return fail("%v", err)
	}
	testPred, err := model.Predict(part.TestX)
	if err != nil {
		return fail("%v", err)
	}
	trainRMSE, err := regression.RMSE(trainPred, part.TrainY)
	if err != nil {
		return fail("%v", err)
	}
	testRMSE, err := regression.RMSE(testPred, part.TestY)
	if err != nil {
		return fail("%v", err)
	}

	if cfg.plot != "" {
		prog.stage("plotting to %s", cfg.plot)
		if err = savePlot(cfg.plot, part.TestY, testPred); err != nil {
			return fail("cannot write plot: %v", err)
		}
	}
	prog.stop()

	fmt.Fprintf(stdout, "beta = %v\n", model.Coefficients())
	fmt.Fprintf(stdout, "Train RMSE = %g\n", trainRMSE)
	fmt.Fprintf(stdout, "Test RMSE = %g\n", testRMSE)

	return 0
}

// progress renders the current stage and, for CG, the latest iteration on
// two live-updating terminal lines.
type progress struct {
	w       *uilive.Writer
	stageW  io.Writer
	iterW   io.Writer
	stopped bool
}

func newProgress(out io.Writer, quiet bool) *progress {
	if quiet {
		return &progress{stopped: true}
	}
	w := uilive.New()
	w.Out = out
	p := &progress{w: w, stageW: w, iterW: w.Newline()}
	w.Start()

	return p
}

func (p *progress) stage(format string, args ...any) {
	if p.stopped {
		return
	}
	fmt.Fprintf(p.stageW, format+"\n", args...)
}

func (p *progress) iteration(iter int, residual float64) {
	if p.stopped {
		return
	}
	fmt.Fprintf(p.iterW, "cg iteration %d, residual %.3g\n", iter, residual)
}

func (p *progress) stop() {
	if p.stopped {
		return
	}
	p.stopped = true
	p.w.Stop()
}
