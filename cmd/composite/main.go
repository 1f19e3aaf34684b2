package main

import (
	"flag"
	"fmt"
	"os"

	"bitbucket.org/dtolpin/gogp/gp"
	"github.com/probtools/gpcourse/draw"
	"github.com/probtools/gpcourse/kernel"
	adkernel "github.com/probtools/gpcourse/kernel/ad"
	"github.com/probtools/gpcourse/model"
	"github.com/probtools/gpcourse/posterior"
	adpriors "github.com/probtools/gpcourse/priors/ad"
	"github.com/probtools/gpcourse/synth"
	"golang.org/x/exp/rand"
)

var (
	N     = 60
	TRAIN = 25
	NOISE = 0.1
	SEED  = int64(1)
	PLOT  = ""
	PATHS = 3
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Gaussian process regression with an additive composite
kernel: squared exponential plus linear. The prediction grid
extends past the data, where the linear component keeps
following the trend instead of reverting to the prior mean.
Invocation:
  %s [OPTIONS] > OUTPUT
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.IntVar(&N, "n", N, "number of synthetic points")
	flag.IntVar(&TRAIN, "train", TRAIN, "training subset size")
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

	// Smooth local variation on top of a random linear trend.
	truth := kernel.Sum{
		kernel.RBFCov{Var: 0.25, Scale: 0.8},
		kernel.LinCov{Var: 0.04},
	}
	X := synth.Grid(N, 0, 6)
	y, err := synth.Sample(truth, X, NOISE, src)
	if err != nil {
		panic(err)
	}
	Xtr, ytr, _, _, err := synth.Split(X, y, TRAIN, src)
	if err != nil {
		panic(err)
	}

	fmt.Fprint(os.Stderr, "fitting...")
	g := &gp.GP{
		NDim:  1,
		Simil: adkernel.Composite,
		Noise: adkernel.Noise,
	}
	g.X, g.Y = Xtr, ytr
	m := &model.Model{
		GP:     g,
		Priors: &adpriors.CompositePriors{},
	}
	theta := make([]float64, g.Simil.NTheta()+g.Noise.NTheta())
	lml0, lml, err := m.Fit(theta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to optimize: %v\n", err)
	}
	fmt.Fprintln(os.Stderr, "done")
	fmt.Fprintf(os.Stderr, "log-likelihood %.4f => %.4f\n", lml0, lml)

	// The grid extrapolates well past the data on both sides.
	grid := synth.Grid(200, -2, 10)
	mu, sigma, err := g.Produce(grid)
	if err != nil {
		panic(fmt.Errorf("produce: %v", err))
	}

	fmt.Println("x,mean,std")
	for i := range grid {
		fmt.Printf("%f,%f,%f\n", grid[i][0], mu[i], sigma[i])
	}

	if PLOT == "" {
		return
	}
	fitted := kernel.FittedComposite(theta)
	noiseStd := kernel.FittedNoise(theta[3])
	post, err := posterior.Joint(fitted, Xtr, ytr, noiseStd, grid, src)
	if err != nil {
		panic(err)
	}
	err = draw.Render(draw.Panel{
		Title: "GP regression, squared exponential + linear kernel",
		X:     flatten(Xtr),
		Y:     ytr,
		Grid:  flatten(grid),
		Mean:  mu,
		Std:   sigma,
		Paths: posterior.Paths(post, PATHS),
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
