package main

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNLPD(t *testing.T) {
	// A standard normal density at its mean.
	assert.InDelta(t, 0.5*math.Log(2*math.Pi), nlpd(0, 0, 1), 1e-12)
	// One standard deviation away adds one half.
	assert.InDelta(t, 0.5*math.Log(2*math.Pi)+0.5, nlpd(1, 0, 1), 1e-12)
	// Scaling the std shifts the density by log(std).
	assert.InDelta(t, nlpd(0, 0, 1)+math.Log(2), nlpd(0, 0, 2), 1e-12)
}

func TestRun(t *testing.T) {
	// Two forecast records: index, actual, mean, std.
	input := "1,0,0,1\n2,1,0,1\n"
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader(input), &out))

	want := (nlpd(0, 0, 1) + nlpd(1, 0, 1)) / 2
	var got float64
	_, err := fmt.Sscanf(out.String(), "%f", &got)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-6)
}

func TestRunEmpty(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(strings.NewReader(""), &out),
		"empty input")

	old := SKIP
	SKIP = 2
	defer func() { SKIP = old }()
	assert.Error(t, run(strings.NewReader("1,0,0,1\n2,1,0,1\n"), &out),
		"all records skipped")
}
