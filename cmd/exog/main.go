package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"bitbucket.org/dtolpin/gogp/gp"
	"github.com/probtools/gpcourse/kernel"
	adkernel "github.com/probtools/gpcourse/kernel/ad"
	"github.com/probtools/gpcourse/model"
	adpriors "github.com/probtools/gpcourse/priors/ad"
	"github.com/probtools/gpcourse/synth"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

var (
	LAGS = 3
	SEED = int64(1)
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Autoregressive forecasting with exogenous features: each
input row holds the preceding observations of the series.
Invocation:
  %s [OPTIONS] < INPUT > OUTPUT
or
  %s [OPTIONS] selfcheck
In 'selfcheck' mode, a synthetic series generated in-process is
used, to demonstrate basic functionality.
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.IntVar(&LAGS, "lags", LAGS, "autoregressive window size")
	flag.Int64Var(&SEED, "seed", SEED, "selfcheck random seed")
}

func main() {
	flag.Parse()

	// Load the data
	var (
		y   []float64
		err error
	)
	fmt.Fprint(os.Stderr, "loading...")
	switch {
	case flag.NArg() == 0:
		y, err = load(os.Stdin)
	case flag.NArg() == 1 && flag.Arg(0) == "selfcheck":
		src := rand.NewSource(uint64(SEED))
		y, err = synth.Sample(
			kernel.RBFCov{Var: 1, Scale: 1.5},
			synth.Grid(60, 0, 12), 0.05, src)
	default:
		panic("usage")
	}
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(os.Stderr, "done")

	// Normalize y
	meany, stdy := stat.MeanStdDev(y, nil)
	for i := range y {
		y[i] = (y[i] - meany) / stdy
	}

	X, t, err := synth.Embed(y, LAGS)
	if err != nil {
		panic(err)
	}

	g := &gp.GP{
		NDim:  LAGS,
		Simil: &adkernel.ART{Lags: LAGS},
		Noise: adkernel.Noise,
	}
	m := &model.Model{
		GP:     g,
		Priors: &adpriors.ARTPriors{},
	}

	// Forecast one step out of sample, iteratively.
	// Output data augmented with predictions.
	fmt.Fprintln(os.Stderr, "Forecasting...")
	for end := 2; end != len(X); end++ {
		g.X = X[:end]
		g.Y = t[:end]
		theta := make([]float64,
			g.Simil.NTheta()+g.Noise.NTheta()+m.Priors.NTheta())

		lml0, lml, err := m.Fit(theta)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to optimize: %v\n", err)
		}

		// Forecast
		Z := X[end : end+1]
		mu, sigma, err := g.Produce(Z)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to forecast: %v\n", err)
			continue
		}

		// Output forecasts
		fmt.Printf("%d,%f,%f,%f,%f,%f",
			end+LAGS, t[end], mu[0], sigma[0], lml0, lml)
		for i := 0; i != len(theta); i++ {
			fmt.Printf(",%f", math.Exp(theta[i]))
		}
		fmt.Println()
	}
	fmt.Fprintln(os.Stderr, "done")
}

// load parses the data from csv and returns the series, taken
// from the last field of each record.
func load(rdr io.Reader) (y []float64, err error) {
	csv := csv.NewReader(rdr)
RECORDS:
	for {
		record, err := csv.Read()
		switch err {
		case nil:
			// record contains the data
			yi, err := strconv.ParseFloat(record[len(record)-1], 64)
			if err != nil {
				// data error
				return y, err
			}
			y = append(y, yi)
		case io.EOF:
			// end of file
			break RECORDS
		default:
			// i/o error
			return y, err
		}
	}

	return y, nil
}
