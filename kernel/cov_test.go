package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRBFCov(t *testing.T) {
	k := RBFCov{Var: 2, Scale: 1.5}
	assert.InDelta(t, 2, k.Cov([]float64{1}, []float64{1}), 1e-12,
		"variance at zero distance")
	assert.Equal(t,
		k.Cov([]float64{0}, []float64{1}),
		k.Cov([]float64{1}, []float64{0}),
		"symmetry")
	assert.True(t,
		k.Cov([]float64{0}, []float64{3}) <
			k.Cov([]float64{0}, []float64{1}),
		"decay with distance")

	// multi-dimensional inputs
	assert.Equal(t,
		k.Cov([]float64{0, 0}, []float64{1, 0}),
		k.Cov([]float64{0}, []float64{1}),
		"isotropy")
}

func TestLinCov(t *testing.T) {
	k := LinCov{Var: 0.5}
	assert.InDelta(t, 1, k.Cov([]float64{1}, []float64{2}), 1e-12)
	assert.InDelta(t, 0, k.Cov([]float64{0}, []float64{5}), 1e-12,
		"zero at the origin")
	// Covariance grows away from the origin: no reversion to
	// the prior under extrapolation.
	assert.True(t,
		k.Cov([]float64{10}, []float64{10}) >
			k.Cov([]float64{1}, []float64{1}))
}

func TestSum(t *testing.T) {
	a := RBFCov{Var: 1, Scale: 1}
	b := LinCov{Var: 0.1}
	k := Sum{a, b}
	xa, xb := []float64{0.3}, []float64{1.7}
	assert.InDelta(t,
		a.Cov(xa, xb)+b.Cov(xa, xb), k.Cov(xa, xb), 1e-12)
}

func TestGram(t *testing.T) {
	k := RBFCov{Var: 1, Scale: 1}
	X := [][]float64{{0}, {1}, {2}}
	Y := [][]float64{{0.5}, {1.5}}

	g := Gram(k, X, Y)
	r, c := g.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, k.Cov(X[2], Y[0]), g.At(2, 0))

	s := GramSym(k, X)
	assert.Equal(t, 3, s.Symmetric())
	for i := range X {
		assert.Equal(t, 1., s.At(i, i))
		for j := range X {
			assert.Equal(t, s.At(j, i), s.At(i, j))
		}
	}
}

// The GP restores the optimization vector from the log scale
// before the kernels see it. A Fitted covariance built from the
// same vector must agree with the kernel evaluated at the
// restored parameters.
func TestFitted(t *testing.T) {
	theta := []float64{-0.5, 0.3, -1.2}
	restored := make([]float64, len(theta))
	for i := range theta {
		restored[i] = math.Exp(theta[i])
	}
	xa, xb := 0.4, 1.7

	rbf := FittedRBF(theta)
	assert.InDelta(t,
		RBF.Observe([]float64{restored[0], restored[1], xa, xb}),
		rbf.Cov([]float64{xa}, []float64{xb}),
		1e-12)
	assert.InDelta(t, math.Exp(2*theta[0]), rbf.Var, 1e-12,
		"output variance is the square of the restored scale")

	composite := FittedComposite(theta)
	assert.InDelta(t,
		Composite.Observe([]float64{
			restored[0], restored[1], restored[2], xa, xb}),
		composite.Cov([]float64{xa}, []float64{xb}),
		1e-12)

	// log(s)=0 corresponds to noise std 0.1.
	assert.InDelta(t, 0.1, FittedNoise(0), 1e-12)
	assert.InDelta(t, 0.1*math.E, FittedNoise(1), 1e-12)
}

func TestNTheta(t *testing.T) {
	assert.Equal(t, 2, RBF.NTheta())
	assert.Equal(t, 1, Lin.NTheta())
	assert.Equal(t, 3, Composite.NTheta())
	assert.Equal(t, 2, (&ART{Lags: 3}).NTheta())
	assert.Equal(t, 1, Noise.NTheta())
}
