package draw

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	dir, err := ioutil.TempDir("", "draw")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	pn := Panel{
		Title:    "panel",
		X:        []float64{0, 1, 2},
		Y:        []float64{0.1, 0.5, 0.2},
		Grid:     []float64{0, 0.5, 1, 1.5, 2},
		Mean:     []float64{0.1, 0.3, 0.5, 0.35, 0.2},
		Std:      []float64{0.2, 0.1, 0.05, 0.1, 0.2},
		Paths:    [][]float64{{0, 0.2, 0.4, 0.3, 0.1}},
		Inducing: []float64{0.5, 1.5},
	}
	path := filepath.Join(dir, "panel.png")
	require.NoError(t, Render(pn, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestRenderMismatch(t *testing.T) {
	err := Render(Panel{
		Grid: []float64{0, 1},
		Mean: []float64{0},
		Std:  []float64{0.1, 0.2},
	}, "unused.png")
	assert.Error(t, err)
}
