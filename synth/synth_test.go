package synth

import (
	"testing"

	"github.com/probtools/gpcourse/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGrid(t *testing.T) {
	X := Grid(5, 0, 1)
	require.Len(t, X, 5)
	assert.Equal(t, []float64{0}, X[0])
	assert.Equal(t, []float64{1}, X[4])
	assert.InDelta(t, 0.25, X[1][0], 1e-12)
}

func TestSample(t *testing.T) {
	k := kernel.RBFCov{Var: 1, Scale: 1}
	X := Grid(20, 0, 5)

	y, err := Sample(k, X, 0.1, rand.NewSource(1))
	require.NoError(t, err)
	require.Len(t, y, len(X))

	// Same seed, same draw.
	y2, err := Sample(k, X, 0.1, rand.NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, y, y2)

	// Different seed, different draw.
	y3, err := Sample(k, X, 0.1, rand.NewSource(2))
	require.NoError(t, err)
	assert.NotEqual(t, y, y3)
}

func TestSplit(t *testing.T) {
	X := Grid(10, 0, 9)
	y := make([]float64, 10)
	for i := range y {
		y[i] = float64(i)
	}

	Xtr, ytr, Xte, yte, err := Split(X, y, 4, rand.NewSource(1))
	require.NoError(t, err)
	assert.Len(t, Xtr, 4)
	assert.Len(t, ytr, 4)
	assert.Len(t, Xte, 6)
	assert.Len(t, yte, 6)

	// Targets stay attached to their inputs.
	for i := range Xtr {
		assert.Equal(t, Xtr[i][0], ytr[i])
	}
	for i := range Xte {
		assert.Equal(t, Xte[i][0], yte[i])
	}

	_, _, _, _, err = Split(X, y, 11, rand.NewSource(1))
	assert.Error(t, err)
	_, _, _, _, err = Split(X, y[:5], 3, rand.NewSource(1))
	assert.Error(t, err)
}

func TestEmbed(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}

	X, targets, err := Embed(y, 2)
	require.NoError(t, err)
	require.Len(t, X, 3)
	require.Len(t, targets, 3)
	assert.Equal(t, []float64{1, 2}, X[0])
	assert.Equal(t, 3., targets[0])
	assert.Equal(t, []float64{3, 4}, X[2])
	assert.Equal(t, 5., targets[2])

	_, _, err = Embed(y, 0)
	assert.Error(t, err)
	_, _, err = Embed(y, 5)
	assert.Error(t, err)
}
