package posterior

import (
	"testing"

	"github.com/probtools/gpcourse/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var (
	trainX = [][]float64{{0}, {1}, {2}, {3}}
	trainY = []float64{0.1, 0.8, 0.9, 0.2}
)

func TestJointInterpolates(t *testing.T) {
	k := kernel.RBFCov{Var: 1, Scale: 1}

	// With nearly noiseless observations the posterior mean
	// passes through the training targets.
	post, err := Joint(k, trainX, trainY, 1e-4, trainX, rand.NewSource(1))
	require.NoError(t, err)
	mu, sd := Moments(post)
	for i := range trainY {
		assert.InDelta(t, trainY[i], mu[i], 1e-2)
		assert.True(t, sd[i] >= 0)
	}
}

func TestJointVariance(t *testing.T) {
	k := kernel.RBFCov{Var: 1, Scale: 1}

	post, err := Joint(k, trainX, trainY, 0.1,
		[][]float64{{1.5}, {10}}, rand.NewSource(1))
	require.NoError(t, err)
	_, sd := Moments(post)

	// Far from the data the posterior reverts to the prior
	// scale; near the data it is much tighter.
	assert.True(t, sd[0] < sd[1])
	assert.InDelta(t, 1, sd[1], 0.05)
}

func TestPaths(t *testing.T) {
	k := kernel.RBFCov{Var: 1, Scale: 1}

	grid := [][]float64{{0.5}, {1.5}, {2.5}}
	post, err := Joint(k, trainX, trainY, 0.1, grid, rand.NewSource(1))
	require.NoError(t, err)

	paths := Paths(post, 5)
	require.Len(t, paths, 5)
	mu, sd := Moments(post)
	for _, p := range paths {
		require.Len(t, p, len(grid))
		// Draws stay within a few standard deviations of the
		// mean.
		for i := range p {
			assert.InDelta(t, mu[i], p[i], 6*sd[i])
		}
	}
}

func TestJointMismatch(t *testing.T) {
	k := kernel.RBFCov{Var: 1, Scale: 1}
	_, err := Joint(k, trainX, trainY[:2], 0.1, trainX, rand.NewSource(1))
	assert.Error(t, err)
}
