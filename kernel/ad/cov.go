package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type Cov interface {
	Cov(xa, xb []float64) float64
}

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

type Sum []Cov

func (k Sum) Cov(xa, xb []float64) float64 {
	c := 0.
	for _, p := range k {
		c += p.Cov(xa, xb)
	}
	return c
}

func FittedRBF(theta []float64) RBFCov {
	return RBFCov{
		Var:	math.Exp(2 * theta[0]),
		Scale:	math.Exp(theta[1]),
	}
}

func FittedComposite(theta []float64) Sum {
	return Sum{
		RBFCov{
			Var:	math.Exp(2 * theta[0]),
			Scale:	math.Exp(theta[1]),
		},
		LinCov{Var: math.Exp(2 * theta[2])},
	}
}

func FittedNoise(theta float64) float64 {
	return 0.1 * math.Exp(theta)
}

func Gram(k Cov, X, Y [][]float64) *mat.Dense {
	g := mat.NewDense(len(X), len(Y), nil)
	for i := range X {
		for j := range Y {
			g.Set(i, j, k.Cov(X[i], Y[j]))
		}
	}
	return g
}

func GramSym(k Cov, X [][]float64) *mat.SymDense {
	g := mat.NewSymDense(len(X), nil)
	for i := range X {
		for j := i; j != len(X); j++ {
			g.SetSym(i, j, k.Cov(X[i], X[j]))
		}
	}
	return g
}
