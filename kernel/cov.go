package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// A Cov computes the covariance between two input points with
// fixed (non-log) parameters. This is the form kernels take
// outside of inference, where Gram matrices are built directly:
// data synthesis, exact conditioning, and the sparse bound.
type Cov interface {
	Cov(xa, xb []float64) float64
}

// RBFCov is the squared exponential covariance with output
// variance Var and length scale Scale.
type RBFCov struct {
	Var, Scale float64
}

func (k RBFCov) Cov(xa, xb []float64) float64 {
	d2 := 0.
	for j := range xa {
		d := xa[j] - xb[j]
		d2 += d * d
	}
	return k.Var * math.Exp(-d2/(2*k.Scale*k.Scale))
}

// LinCov is the linear (dot product) covariance with output
// variance Var.
type LinCov struct {
	Var float64
}

func (k LinCov) Cov(xa, xb []float64) float64 {
	d := 0.
	for j := range xa {
		d += xa[j] * xb[j]
	}
	return k.Var * d
}

// Sum combines covariances additively. A sum of covariance
// functions is a covariance function.
type Sum []Cov

func (k Sum) Cov(xa, xb []float64) float64 {
	c := 0.
	for _, p := range k {
		c += p.Cov(xa, xb)
	}
	return c
}

// The optimization vector holds parameters on the log scale; the
// GP restores them before the kernels see them. The Fitted
// helpers apply the same restoration, so that a covariance built
// from a fitted vector agrees with the fitted GP.

// FittedRBF maps a fitted optimization vector to the squared
// exponential covariance it parameterizes.
func FittedRBF(theta []float64) RBFCov {
	return RBFCov{
		Var:   math.Exp(2 * theta[0]),
		Scale: math.Exp(theta[1]),
	}
}

// FittedComposite maps a fitted optimization vector to the
// composite squared exponential plus linear covariance it
// parameterizes.
func FittedComposite(theta []float64) Sum {
	return Sum{
		RBFCov{
			Var:   math.Exp(2 * theta[0]),
			Scale: math.Exp(theta[1]),
		},
		LinCov{Var: math.Exp(2 * theta[2])},
	}
}

// FittedNoise maps the fitted noise parameter to the observation
// noise standard deviation, undoing the 0.01 variance scaling of
// the noise kernel.
func FittedNoise(theta float64) float64 {
	return 0.1 * math.Exp(theta)
}

// Gram fills a dense matrix of covariances between the rows of X
// and the rows of Y.
func Gram(k Cov, X, Y [][]float64) *mat.Dense {
	g := mat.NewDense(len(X), len(Y), nil)
	for i := range X {
		for j := range Y {
			g.Set(i, j, k.Cov(X[i], Y[j]))
		}
	}
	return g
}

// GramSym fills the symmetric Gram matrix over the rows of X.
func GramSym(k Cov, X [][]float64) *mat.SymDense {
	g := mat.NewSymDense(len(X), nil)
	for i := range X {
		for j := i; j != len(X); j++ {
			g.SetSym(i, j, k.Cov(X[i], X[j]))
		}
	}
	return g
}
