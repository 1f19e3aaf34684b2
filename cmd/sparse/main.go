package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/probtools/gpcourse/cluster"
	"github.com/probtools/gpcourse/draw"
	"github.com/probtools/gpcourse/kernel"
	"github.com/probtools/gpcourse/posterior"
	"github.com/probtools/gpcourse/sparse"
	"github.com/probtools/gpcourse/synth"
	"golang.org/x/exp/rand"
)

var (
	N     = 400
	M     = 12
	NOISE = 0.2
	SEED  = int64(1)
	PLOT  = ""
	PATHS = 3
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Sparse Gaussian process regression with inducing points.
The inducing locations are initialized by k-means over the
training inputs and then optimized jointly with the kernel
hyperparameters by maximizing the evidence lower bound.
Invocation:
  %s [OPTIONS] > OUTPUT
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.IntVar(&N, "n", N, "number of synthetic points")
	flag.IntVar(&M, "m", M, "number of inducing points")
	flag.Float64Var(&NOISE, "noise", NOISE, "observation noise std")
	flag.Int64Var(&SEED, "seed", SEED, "random seed")
	flag.StringVar(&PLOT, "plot", PLOT, "write a posterior panel to this file")
	flag.IntVar(&PATHS, "paths", PATHS, "posterior sample paths in the panel")
}

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		panic("usage")
	}
	src := rand.NewSource(uint64(SEED))

	truth := kernel.RBFCov{Var: 1, Scale: 1}
	X := synth.Grid(N, 0, 10)
	y, err := synth.Sample(truth, X, NOISE, src)
	if err != nil {
		panic(err)
	}

	fmt.Fprint(os.Stderr, "initializing...")
	Z, err := cluster.KMeans(X, M, src)
	if err != nil {
		panic(err)
	}
	s, err := sparse.New(X, y, Z)
	if err != nil {
		panic(err)
	}
	s.SetHyper(1, 1, NOISE)
	lb0, err := s.Bound()
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(os.Stderr, "done")

	fmt.Fprint(os.Stderr, "fitting...")
	if err := s.Fit(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to optimize: %v\n", err)
	}
	lb, err := s.Bound()
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(os.Stderr, "done")
	fmt.Fprintf(os.Stderr, "evidence lower bound %.4f => %.4f\n", lb0, lb)

	grid := synth.Grid(200, -1, 11)
	mu, sd, err := s.Predict(grid)
	if err != nil {
		panic(err)
	}

	fmt.Println("x,mean,std")
	for i := range grid {
		fmt.Printf("%f,%f,%f\n", grid[i][0], mu[i], sd[i])
	}

	if PLOT == "" {
		return
	}
	post, err := s.PredictFull(grid, src)
	if err != nil {
		panic(err)
	}
	err = draw.Render(draw.Panel{
		Title:    fmt.Sprintf("sparse GP regression, %d of %d points inducing", M, N),
		X:        flatten(X),
		Y:        y,
		Grid:     flatten(grid),
		Mean:     mu,
		Std:      sd,
		Paths:    posterior.Paths(post, PATHS),
		Inducing: flatten(s.Z),
	}, PLOT)
	if err != nil {
		panic(err)
	}
	fmt.Fprintf(os.Stderr, "panel written to %s\n", PLOT)
}

func flatten(X [][]float64) []float64 {
	x := make([]float64, len(X))
	for i := range X {
		x[i] = X[i][0]
	}
	return x
}
