package synth

import (
	"fmt"
)

// Embed lag-embeds a scalar series: row i of the returned inputs
// holds the lags observations preceding y[i], the targets are
// the corresponding y values. The first lags elements have
// incomplete history and are dropped, so both returned slices
// have len(y)-lags elements.
func Embed(y []float64, lags int) ([][]float64, []float64, error) {
	if lags < 1 {
		return nil, nil, fmt.Errorf("embedding with %d lags", lags)
	}
	if lags >= len(y) {
		return nil, nil, fmt.Errorf(
			"embedding %d observations with %d lags", len(y), lags)
	}

	X := make([][]float64, 0, len(y)-lags)
	t := make([]float64, 0, len(y)-lags)
	for i := lags; i != len(y); i++ {
		xi := make([]float64, lags)
		copy(xi, y[i-lags:i])
		X = append(X, xi)
		t = append(t, y[i])
	}
	return X, t, nil
}
