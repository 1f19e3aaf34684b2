package model

import (
	"bitbucket.org/dtolpin/gogp/gp"
	"bitbucket.org/dtolpin/infergo/model"
	. "github.com/probtools/gpcourse/kernel/ad"
	. "github.com/probtools/gpcourse/priors/ad"
	"math"
	"testing"
)

const (
	dx  = 1e-8
	eps = 1e-4
)

func TestGradient(t *testing.T) {
	m := &Model{
		GP: &gp.GP{
			NDim:  1,
			Simil: RBF,
			Noise: Noise,
		},
		Priors: &RBFPriors{},
	}

	for i, c := range []struct {
		x []float64
		X [][]float64
		Y []float64
	}{
		{
			x: []float64{0, 0, 0},
			X: [][]float64{{0}, {1}},
			Y: []float64{-0.3, 0.2},
		},
		{
			x: []float64{1, 1, 1},
			X: [][]float64{{0}, {1}},
			Y: []float64{-0.3, 0.3},
		},
		{
			x: []float64{0.5, -0.5, 0.2},
			X: [][]float64{{0}, {1}, {2}},
			Y: []float64{-0.3, 0.2, -0.1},
		},
		{
			x: []float64{1, 0, -1},
			X: [][]float64{{0}, {1}, {2}, {3}},
			Y: []float64{-0.3, 0.2, -0.1, 0},
		},
	} {
		m.GP.X = c.X
		m.GP.Y = c.Y
		ll0 := m.Observe(c.x)
		grad := model.Gradient(m)
		for j := range c.x {
			x0 := c.x[j]
			c.x[j] += dx
			ll := m.Observe(c.x)
			dldx := (ll - ll0) / dx
			c.x[j] = x0
			if math.Abs(grad[j]-dldx) > eps {
				t.Errorf("%d: dl/dx%d mismatch: got %.8f, want %.4f",
					i, j, dldx, grad[j])
			}
		}
	}
}

func TestCompositeGradient(t *testing.T) {
	m := &Model{
		GP: &gp.GP{
			NDim:  1,
			Simil: Composite,
			Noise: Noise,
		},
		Priors: &CompositePriors{},
	}

	m.GP.X = [][]float64{{0}, {1}, {2}}
	m.GP.Y = []float64{0.1, 0.4, 0.9}
	x := []float64{0.5, 0.5, 0.5, 0}
	ll0 := m.Observe(x)
	grad := model.Gradient(m)
	for j := range x {
		x0 := x[j]
		x[j] += dx
		ll := m.Observe(x)
		dldx := (ll - ll0) / dx
		x[j] = x0
		if math.Abs(grad[j]-dldx) > eps {
			t.Errorf("dl/dx%d mismatch: got %.8f, want %.4f",
				j, dldx, grad[j])
		}
	}
}

func TestFit(t *testing.T) {
	m := &Model{
		GP: &gp.GP{
			NDim:  1,
			Simil: RBF,
			Noise: Noise,
		},
		Priors: &RBFPriors{},
	}
	m.GP.X = [][]float64{{0}, {0.5}, {1}, {1.5}, {2}, {2.5}}
	m.GP.Y = []float64{-0.5, -0.2, 0.1, 0.5, 0.6, 0.4}

	x := make([]float64, 3)
	lml0, lml, err := m.Fit(x)
	if err != nil {
		t.Fatalf("failed to fit: %v", err)
	}
	if lml < lml0 {
		t.Errorf("fit decreased the log-likelihood: %.4f => %.4f",
			lml0, lml)
	}
}
