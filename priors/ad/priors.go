package priors

import (
	"bitbucket.org/dtolpin/infergo/model"
	"bitbucket.org/dtolpin/infergo/ad"
	. "bitbucket.org/dtolpin/infergo/dist/ad"
)

type Priors interface {
	model.Model
	NTheta() int
}

type RBFPriors struct {
}

func (m *RBFPriors) NTheta() int {
	return 0
}

func (m *RBFPriors) Observe(x []float64) float64 {
	if ad.Called() {
		ad.Enter()
	} else {
		ad.Setup(x)
	}
	const (
		c	= iota
		l
		s
	)
	var ll float64
	ad.Assignment(&ll, ad.Value(0.))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(-1), ad.Value(1), &x[c])))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(0), ad.Value(2), &x[l])))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(0), ad.Value(1), &x[s])))

	return ad.Return(&ll)
}

type CompositePriors struct {
}

func (m *CompositePriors) NTheta() int {
	return 0
}

func (m *CompositePriors) Observe(x []float64) float64 {
	if ad.Called() {
		ad.Enter()
	} else {
		ad.Setup(x)
	}
	const (
		cr	= iota
		lr
		cl
		s
	)
	var ll float64
	ad.Assignment(&ll, ad.Value(0.))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(-1), ad.Value(1), &x[cr])))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(-1), ad.Value(1), &x[cl])))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(0), ad.Value(2), &x[lr])))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(0), ad.Value(1), &x[s])))

	return ad.Return(&ll)
}

type ARTPriors struct {
}

func (m *ARTPriors) NTheta() int {
	return 0
}

func (m *ARTPriors) Observe(x []float64) float64 {
	if ad.Called() {
		ad.Enter()
	} else {
		ad.Setup(x)
	}
	const (
		c	= iota
		l
		s
	)
	var ll float64
	ad.Assignment(&ll, ad.Value(0.))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(-1), ad.Value(1), &x[c])))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(0), ad.Value(2), &x[l])))
	ad.Assignment(&ll, ad.Arithmetic(ad.OpAdd, &ll, ad.Call(func(_ []float64) {
		Normal.Logp(0, 0, 0)
	}, 3, ad.Value(0), ad.Value(1), &x[s])))

	return ad.Return(&ll)
}
