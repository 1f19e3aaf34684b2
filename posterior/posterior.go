// Package posterior computes exact Gaussian process posteriors
// by conditioning one joint Gaussian over the training and test
// inputs. All factorizations happen inside gonum; nothing here
// inverts a matrix.
package posterior

import (
	"fmt"
	"math"

	"github.com/probtools/gpcourse/kernel"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

const jitter = 1e-6

// Joint returns the posterior over the latent function values at
// Xs, conditioned on observing Y at X under independent Gaussian
// noise with standard deviation noiseStd. The returned
// distribution yields the posterior mean, covariance, and sample
// paths.
func Joint(k kernel.Cov, X [][]float64, Y []float64, noiseStd float64,
	Xs [][]float64, src rand.Source) (*distmv.Normal, error) {
	if len(X) != len(Y) {
		return nil, fmt.Errorf("%d inputs for %d outputs", len(X), len(Y))
	}

	all := make([][]float64, 0, len(X)+len(Xs))
	all = append(all, X...)
	all = append(all, Xs...)
	gram := kernel.GramSym(k, all)
	// The noise enters on the training block only; the test
	// block gets jitter to keep the factorization stable.
	for i := 0; i != len(X); i++ {
		gram.SetSym(i, i, gram.At(i, i)+noiseStd*noiseStd)
	}
	for i := len(X); i != len(all); i++ {
		gram.SetSym(i, i, gram.At(i, i)+jitter)
	}

	joint, ok := distmv.NewNormal(make([]float64, len(all)), gram, src)
	if !ok {
		return nil, fmt.Errorf(
			"joint covariance over %d points is not positive definite",
			len(all))
	}

	observed := make([]int, len(X))
	for i := range observed {
		observed[i] = i
	}
	post, ok := joint.ConditionNormal(observed, Y, src)
	if !ok {
		return nil, fmt.Errorf("conditioning on %d observations failed",
			len(X))
	}
	return post, nil
}

// Moments extracts the mean and the per-point standard deviation
// from a posterior.
func Moments(post *distmv.Normal) (mu, sd []float64) {
	mu = post.Mean(nil)
	var cov mat.SymDense
	post.CovarianceMatrix(&cov)
	sd = make([]float64, len(mu))
	for i := range sd {
		sd[i] = math.Sqrt(cov.At(i, i))
	}
	return mu, sd
}

// Paths draws n sample paths from a posterior.
func Paths(post *distmv.Normal, n int) [][]float64 {
	paths := make([][]float64, n)
	for i := range paths {
		paths[i] = post.Rand(nil)
	}
	return paths
}
