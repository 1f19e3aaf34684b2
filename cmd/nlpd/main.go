package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
)

var (
	COMMA  = ","
	SKIP   = 0
	NOISE  = false
	JNOISE = -1
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			`Computes average negative log predictive density. Invocation:
	%s  [OPTIONS]
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&COMMA, "comma", COMMA, "field separator")
	flag.IntVar(&SKIP, "s", SKIP, "initial records to skip")
	flag.BoolVar(&NOISE, "noise", NOISE, "add noise to predicted error")
	flag.IntVar(&JNOISE, "j", JNOISE, "index of the noise field")
}

// negative log predictive density
func nlpd(y, mean, std float64) float64 {
	vari := std * std
	d := y - mean
	return 0.5 * (math.Log(2*math.Pi) + math.Log(vari) + d*d/vari)
}

// run averages the negative log predictive density over the
// forecast records.
func run(rdr io.Reader, w io.Writer) error {
	csvr := csv.NewReader(rdr)
	csvr.Comma = rune(COMMA[0])

	sum := 0.
	n := 0
	for ; ; n++ {
		record, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if n < SKIP {
			continue
		}

		y, _ := strconv.ParseFloat(record[1], 64)
		mean, _ := strconv.ParseFloat(record[2], 64)
		std, _ := strconv.ParseFloat(record[3], 64)
		if NOISE {
			jnoise := JNOISE
			if jnoise < 0 {
				jnoise += len(record)
			}
			noise, _ := strconv.ParseFloat(record[jnoise], 64)
			// The noise field holds exp(s); the kernel scales
			// the noise std by 0.1.
			std += 0.1 * noise
		}
		sum += nlpd(y, mean, std)
	}
	if n <= SKIP {
		return fmt.Errorf("no records to evaluate")
	}
	fmt.Fprintf(w, "%f\n", sum/float64(n-SKIP))
	return nil
}

func main() {
	flag.Parse()

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
