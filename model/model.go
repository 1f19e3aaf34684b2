package model

import (
	"bitbucket.org/dtolpin/gogp/gp"
	"bitbucket.org/dtolpin/infergo/ad"
	"bitbucket.org/dtolpin/infergo/infer"
	"bitbucket.org/dtolpin/infergo/model"
	"github.com/probtools/gpcourse/priors"
	"gonum.org/v1/gonum/optimize"
)

// Model couples a Gaussian process with priors on its
// hyperparameters. The optimization vector x holds the kernel
// and noise parameters; the training inputs and outputs are
// taken from the GP and passed through unchanged.
type Model struct {
	GP     *gp.GP
	Priors priors.Priors
	grad   []float64
}

func (m *Model) Observe(x []float64) float64 {
	xGP := make([]float64,
		m.GP.Simil.NTheta()+m.GP.Noise.NTheta()+
			len(m.GP.X)*(m.GP.NDim+1))

	// Kernel parameters
	ntheta := m.GP.Simil.NTheta() + m.GP.Noise.NTheta()
	copy(xGP, x[:ntheta])

	// Observations
	k := ntheta
	for i := range m.GP.X {
		copy(xGP[k:], m.GP.X[i])
		k += m.GP.NDim
	}
	for i := range m.GP.Y {
		xGP[k] = m.GP.Y[i]
		k++
	}

	llPriors, gPriors := m.Priors.Observe(x), model.Gradient(m.Priors)
	llGP, gGP := m.GP.Observe(xGP), model.Gradient(m.GP)

	m.grad = make([]float64, len(x))
	copy(m.grad, gPriors)
	for i := 0; i != ntheta; i++ {
		m.grad[i] += gGP[i]
	}

	return llPriors + llGP
}

func (m *Model) Gradient() []float64 {
	return m.grad
}

// Fit maximizes the joint log-likelihood of the priors and the
// Gaussian process over the parameters in x, in place. It
// returns the log-likelihood before and after optimization. On
// return the GP is conditioned on the final parameters, ready to
// Produce predictions.
func (m *Model) Fit(x []float64) (lml0, lml float64, err error) {
	Func, Grad := infer.FuncGrad(m)
	p := optimize.Problem{Func: Func, Grad: Grad}

	lml0 = m.Observe(x)
	model.DropGradient(m)

	// For some kernels and data, optimizing the
	// hyperparameters does not make sense with too few points.
	result, err := optimize.Minimize(
		p, x, &optimize.Settings{
			MajorIterations:   0,
			GradientThreshold: 0,
			Concurrent:        0,
		}, nil)
	// We do not need the optimizer to `officially' converge, a
	// few iterations usually bring most of the improvement.
	// However, in pathological cases even a single iteration
	// does not succeed, and we want to report that.
	if err != nil && result.Stats.MajorIterations == 1 {
		lml = m.Observe(x)
		model.DropGradient(m)
		ad.DropAllTapes()
		return lml0, lml, err
	}
	copy(x, result.X)

	lml = m.Observe(x)
	model.DropGradient(m)
	ad.DropAllTapes()

	return lml0, lml, nil
}
