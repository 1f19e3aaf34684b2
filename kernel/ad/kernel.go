package kernel

import (
	"bitbucket.org/dtolpin/gogp/kernel/ad"
	"bitbucket.org/dtolpin/infergo/ad"
)

type rbf struct{}

var RBF rbf

func (rbf) Observe(x []float64) float64 {
	if ad.Called() {
		ad.Enter()
	} else {
		ad.Setup(x)
	}
	const (
		c	= iota
		l
		xa
		xb
	)

	return ad.Return(ad.Arithmetic(ad.OpMul, ad.Arithmetic(ad.OpMul, &x[c], &x[c]), ad.Call(func(_ []float64) {
		kernel.Normal.Cov(0, 0, 0)
	}, 3, &x[l], &x[xa], &x[xb])))
}

func (rbf) NTheta() int	{ return 2 }

type lin struct{}

var Lin lin

func (lin) Observe(x []float64) float64 {
	if ad.Called() {
		ad.Enter()
	} else {
		ad.Setup(x)
	}
	const (
		c	= iota
		xa
		xb
	)

	return ad.Return(ad.Arithmetic(ad.OpMul, ad.Arithmetic(ad.OpMul, ad.Arithmetic(ad.OpMul, &x[c], &x[c]), &x[xa]), &x[xb]))
}

func (lin) NTheta() int	{ return 1 }

type composite struct{}

var Composite composite

func (composite) Observe(x []float64) float64 {
	if ad.Called() {
		ad.Enter()
	} else {
		ad.Setup(x)
	}
	const (
		cr	= iota
		lr
		cl
		xa
		xb
	)

	return ad.Return(ad.Arithmetic(ad.OpAdd, ad.Arithmetic(ad.OpMul, ad.Arithmetic(ad.OpMul, &x[cr], &x[cr]), ad.Call(func(_ []float64) {
		kernel.Normal.Cov(0, 0, 0)
	}, 3, &x[lr], &x[xa], &x[xb])), ad.Arithmetic(ad.OpMul, ad.Arithmetic(ad.OpMul, ad.Arithmetic(ad.OpMul, &x[cl], &x[cl]), &x[xa]), &x[xb])))
}

func (composite) NTheta() int	{ return 3 }

type ART struct {
	Lags int
}

func (k *ART) Observe(x []float64) float64 {
	if ad.Called() {
		ad.Enter()
	} else {
		ad.Setup(x)
	}
	const (
		c	= iota
		l
		x0
	)
	var cov float64
	ad.Assignment(&cov, ad.Arithmetic(ad.OpMul, &x[c], &x[c]))
	for j := 0; j != k.Lags; j = j + 1 {
		ad.Assignment(&cov, ad.Arithmetic(ad.OpMul, &cov, ad.Call(func(_ []float64) {
			kernel.Normal.Cov(0, 0, 0)
		}, 3, &x[l], &x[x0+j], &x[x0+k.Lags+j])))
	}
	return ad.Return(&cov)
}

func (k *ART) NTheta() int	{ return 2 }

type noise struct{}

var Noise noise

func (noise) Observe(x []float64) float64 {
	if ad.Called() {
		ad.Enter()
	} else {
		ad.Setup(x)
	}
	return ad.Return(ad.Arithmetic(ad.OpMul, ad.Value(0.01), ad.Call(func(_ []float64) {
		kernel.UniformNoise.Observe(x)
	}, 0)))
}

func (noise) NTheta() int	{ return 1 }
