// Package cluster provides the unsupervised initialization of
// inducing points: plain Lloyd's k-means over training inputs.
package cluster

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

const (
	// Iteration stops when fewer than this fraction of the
	// points change cluster.
	deltaThreshold = 0.01
	// Upper bound on Lloyd's rounds; initialization does not
	// need tight convergence.
	iterationThreshold = 10
)

// KMeans clusters the rows of data into k centers. The first
// center is seeded from a random row, each following one from
// the row farthest from the centers chosen so far, so that
// separated groups of points get separate seeds.
func KMeans(data [][]float64, k int, src rand.Source) ([][]float64, error) {
	if k < 1 || k > len(data) {
		return nil, fmt.Errorf("kmeans: %d centers for %d points",
			k, len(data))
	}

	rng := rand.New(src)
	dim := len(data[0])
	centers := make([][]float64, k)
	centers[0] = append([]float64(nil), data[rng.Intn(len(data))]...)
	for i := 1; i != k; i++ {
		far, fd := 0, -1.
		for p, point := range data {
			min := math.Inf(1)
			for _, c := range centers[:i] {
				if d := floats.Distance(point, c, 2); d < min {
					min = d
				}
			}
			if min > fd {
				far, fd = p, min
			}
		}
		centers[i] = append([]float64(nil), data[far]...)
	}

	assign := make([]int, len(data))
	for i := range assign {
		assign[i] = -1
	}
	for it := 0; it != iterationThreshold; it++ {
		changes := 0
		for p, point := range data {
			ci := nearest(centers, point)
			if assign[p] != ci {
				assign[p] = ci
				changes++
			}
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for i := range sums {
			sums[i] = make([]float64, dim)
		}
		for p, point := range data {
			floats.Add(sums[assign[p]], point)
			counts[assign[p]]++
		}
		for c := range centers {
			if counts[c] == 0 {
				// Reseed an emptied cluster from a random point.
				copy(centers[c], data[rng.Intn(len(data))])
				continue
			}
			for j := range centers[c] {
				centers[c][j] = sums[c][j] / float64(counts[c])
			}
		}

		if float64(changes)/float64(len(data)) < deltaThreshold {
			break
		}
	}
	return centers, nil
}

func nearest(centers [][]float64, point []float64) int {
	min, mi := math.Inf(1), 0
	for i, c := range centers {
		if d := floats.Distance(point, c, 2); d < min {
			min, mi = d, i
		}
	}
	return mi
}
