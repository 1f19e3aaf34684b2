package main

import (
	"bitbucket.org/dtolpin/gogp/gp"
	"bitbucket.org/dtolpin/gogp/kernel"
	adkernel "bitbucket.org/dtolpin/gogp/kernel/ad"
	"bitbucket.org/dtolpin/infergo/ad"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

var (
	KERNEL = "rbf"
	NOISE  = 0.01
	STEP   = 0.1
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Generate test data. Invocation:
	%s  [OPTIONS] | head -100
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&KERNEL, "kernel", KERNEL, "similarity kernel (rbf or composite)")
	flag.Float64Var(&NOISE, "noise", NOISE, "observation noise std")
	flag.Float64Var(&STEP, "step", STEP, "input grid step")
	rand.Seed(time.Now().UTC().UnixNano())
	ad.MTSafeOn()
}

const (
	yVariance       = 1.
	yLengthScale    = 1.
	yLinearVariance = 0.05
)

type rbfkernel struct{}

var rbfKernel rbfkernel

func (rbfkernel) Observe(x []float64) float64 {
	const (
		xa = iota
		xb
	)

	return yVariance * kernel.Normal.Cov(yLengthScale, x[xa], x[xb])
}

func (rbfkernel) Gradient() []float64 {
	return []float64{1, 1}
}

func (rbfkernel) NTheta() int {
	return 0
}

type compositekernel struct{}

var compositeKernel compositekernel

func (compositekernel) Observe(x []float64) float64 {
	const (
		xa = iota
		xb
	)

	return yVariance*kernel.Normal.Cov(yLengthScale, x[xa], x[xb]) +
		yLinearVariance*x[xa]*x[xb]
}

func (compositekernel) Gradient() []float64 {
	return []float64{1, 1}
}

func (compositekernel) NTheta() int {
	return 0
}

func sample(g *gp.GP, xs <-chan float64, xys chan<- [2]float64) {
	for {
		x := <-xs
		X := [][]float64{{x}}
		Y, Sigma, err := g.Produce(X)
		if err != nil {
			panic(fmt.Errorf("produce: %v", err))
		}
		y := Y[0] + Sigma[0]*rand.NormFloat64()
		xys <- [...]float64{x, y}
		X = append(g.X, X...)
		Y = append(g.Y, y)
		if err := g.Absorb(X, Y); err != nil {
			panic(fmt.Errorf("absorb: %v", err))
		}
	}
}

func main() {
	flag.Parse()

	gy := &gp.GP{
		NDim:  1,
		Noise: adkernel.ConstantNoise(NOISE),
	}
	switch KERNEL {
	case "rbf":
		gy.Simil = rbfKernel
	case "composite":
		gy.Simil = compositeKernel
	default:
		panic("usage")
	}

	xs := make(chan float64, 1)
	xys := make(chan [2]float64, 1)

	// Sampling inputs
	go func() {
		for x := 0.; ; x += STEP {
			xs <- x
		}
	}()

	// Sampling outputs
	go sample(gy, xs, xys)
	for xy := range xys {
		fmt.Printf("%f,%f\n", xy[0], xy[1])
	}
}
