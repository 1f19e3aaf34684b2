package priors

import (
	"bitbucket.org/dtolpin/infergo/model"
	. "bitbucket.org/dtolpin/infergo/dist"
)

type Priors interface {
	model.Model
	NTheta() int
}

// Priors for the squared exponential kernel.

type RBFPriors struct {
}

func (m *RBFPriors) NTheta() int {
	return 0
}

func (m *RBFPriors) Observe(x []float64) float64 {
	const (
		c = iota // output scale
		l        // length scale
		s        // noise variance
	)

	ll := 0.

	// Output scale is mostly less than 1.
	ll += Normal.Logp(-1, 1, x[c])
	// Length scale is around 1, in wide margins.
	ll += Normal.Logp(0, 2, x[l])
	// Noise variance is around 0.01, scaled in the kernel.
	ll += Normal.Logp(0, 1, x[s])

	return ll
}

// Priors for the composite squared exponential plus linear
// kernel.

type CompositePriors struct {
}

func (m *CompositePriors) NTheta() int {
	return 0
}

func (m *CompositePriors) Observe(x []float64) float64 {
	const (
		cr = iota // smooth output scale
		lr        // smooth length scale
		cl        // linear output scale
		s         // noise variance
	)

	ll := 0.

	// Output scales are mostly less than 1.
	ll += Normal.Logp(-1, 1, x[cr])
	ll += Normal.Logp(-1, 1, x[cl])
	// Length scale is around 1, in wide margins.
	ll += Normal.Logp(0, 2, x[lr])
	// Noise variance is around 0.01, scaled in the kernel.
	ll += Normal.Logp(0, 1, x[s])

	return ll
}

// Priors for the autoregressive kernel over lagged inputs.

type ARTPriors struct {
}

func (m *ARTPriors) NTheta() int {
	return 0
}

func (m *ARTPriors) Observe(x []float64) float64 {
	const (
		c = iota // output scale
		l        // length scale
		s        // noise variance
	)

	ll := 0.

	// Output scale is mostly less than 1.
	ll += Normal.Logp(-1, 1, x[c])
	// The lags are on the scale of the outputs, so the length
	// scale is around 1 as well.
	ll += Normal.Logp(0, 2, x[l])
	// Noise variance is around 0.01, scaled in the kernel.
	ll += Normal.Logp(0, 1, x[s])

	return ll
}
