package kernel

import (
	"bitbucket.org/dtolpin/gogp/kernel"
)

// The squared exponential similarity kernel.
type rbf struct{}

var RBF rbf

func (rbf) Observe(x []float64) float64 {
	const (
		c  = iota // output scale
		l         // length scale
		xa        // first point
		xb        // second point
	)

	return x[c]*x[c] * kernel.Normal.Cov(x[l], x[xa], x[xb])
}

func (rbf) NTheta() int { return 2 }

// The linear similarity kernel. Non-stationary: away from the
// data the posterior follows the fitted line instead of falling
// back to the prior mean.
type lin struct{}

var Lin lin

func (lin) Observe(x []float64) float64 {
	const (
		c  = iota // output scale
		xa        // first point
		xb        // second point
	)

	return x[c] * x[c] * x[xa] * x[xb]
}

func (lin) NTheta() int { return 1 }

// The composite similarity kernel: a squared exponential for
// local variation added to a linear component for the trend.
type composite struct{}

var Composite composite

func (composite) Observe(x []float64) float64 {
	const (
		cr = iota // smooth output scale
		lr        // smooth length scale
		cl        // linear output scale
		xa        // first point
		xb        // second point
	)

	return x[cr]*x[cr]*kernel.Normal.Cov(x[lr], x[xa], x[xb]) +
		x[cl]*x[cl]*x[xa]*x[xb]
}

func (composite) NTheta() int { return 3 }

// The autoregressive similarity kernel over lag-embedded inputs.
// Isotropic: a product of per-lag squared exponentials sharing a
// single length scale.
type ART struct {
	Lags int
}

func (k *ART) Observe(x []float64) float64 {
	const (
		c  = iota // output scale
		l         // length scale
		x0        // first lag of the first point
	)

	cov := x[c] * x[c]
	for j := 0; j != k.Lags; j++ {
		cov *= kernel.Normal.Cov(x[l], x[x0+j], x[x0+k.Lags+j])
	}
	return cov
}

func (k *ART) NTheta() int { return 2 }

// The noise kernel. The noise is scaled by 0.01 so that the
// initial value log(s)=0 corresponds to standard deviation of 0.1.
type noise struct{}

var Noise noise

func (noise) Observe(x []float64) float64 {
	return 0.01 * kernel.UniformNoise.Observe(x)
}

func (noise) NTheta() int { return 1 }
