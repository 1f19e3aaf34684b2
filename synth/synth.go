package synth

import (
	"fmt"

	"github.com/probtools/gpcourse/kernel"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
)

// jitter keeps factorizations of smooth kernels over dense grids
// numerically positive definite.
const jitter = 1e-6

// Grid returns n evenly spaced scalar inputs covering [lo, hi],
// one per row.
func Grid(n int, lo, hi float64) [][]float64 {
	X := make([][]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range X {
		X[i] = []float64{lo + float64(i)*step}
	}
	return X
}

// Sample draws one function from the Gaussian process prior with
// covariance k over the inputs X and adds independent Gaussian
// observation noise with standard deviation noiseStd. The latent
// function is a single multivariate normal draw over the full
// Gram matrix.
func Sample(k kernel.Cov, X [][]float64, noiseStd float64, src rand.Source) ([]float64, error) {
	gram := kernel.GramSym(k, X)
	for i := 0; i != len(X); i++ {
		gram.SetSym(i, i, gram.At(i, i)+jitter)
	}
	prior, ok := distmv.NewNormal(make([]float64, len(X)), gram, src)
	if !ok {
		return nil, fmt.Errorf(
			"prior covariance over %d points is not positive definite",
			len(X))
	}
	y := prior.Rand(nil)
	rng := rand.New(src)
	for i := range y {
		y[i] += noiseStd * rng.NormFloat64()
	}
	return y, nil
}

// Split partitions the data into a random training subset of
// size nTrain and the held-out remainder.
func Split(X [][]float64, y []float64, nTrain int, src rand.Source) (
	Xtr [][]float64, ytr []float64,
	Xte [][]float64, yte []float64,
	err error,
) {
	if len(X) != len(y) {
		return nil, nil, nil, nil, fmt.Errorf(
			"%d inputs for %d outputs", len(X), len(y))
	}
	if nTrain > len(X) {
		return nil, nil, nil, nil, fmt.Errorf(
			"training subset of %d out of %d points", nTrain, len(X))
	}

	perm := rand.New(src).Perm(len(X))
	for _, i := range perm[:nTrain] {
		Xtr = append(Xtr, X[i])
		ytr = append(ytr, y[i])
	}
	for _, i := range perm[nTrain:] {
		Xte = append(Xte, X[i])
		yte = append(yte, y[i])
	}
	return Xtr, ytr, Xte, yte, nil
}
