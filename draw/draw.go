// Package draw renders posterior panels: training points, the
// posterior mean with a credible band, optional sample paths,
// and inducing-point locations.
package draw

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
)

// A Panel collects everything one figure shows. Grid, Mean, and
// Std must have the same length; Paths, if present, are drawn
// over Grid.
type Panel struct {
	Title    string
	X        []float64 // training inputs
	Y        []float64 // training outputs
	Grid     []float64 // prediction inputs
	Mean     []float64
	Std      []float64
	Paths    [][]float64 // posterior draws over Grid
	Inducing []float64   // inducing locations, optional
}

// Render writes the panel as a PNG (or any format the plot
// library infers from the file name).
func Render(pn Panel, path string) error {
	if len(pn.Grid) != len(pn.Mean) || len(pn.Grid) != len(pn.Std) {
		return fmt.Errorf("panel: %d grid points, %d means, %d stds",
			len(pn.Grid), len(pn.Mean), len(pn.Std))
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = pn.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	// Credible band: mean +- 2 std as a closed polygon.
	band := make(plotter.XYs, 0, 2*len(pn.Grid))
	lo := 0.
	for i := range pn.Grid {
		band = append(band, plotter.XY{
			X: pn.Grid[i], Y: pn.Mean[i] + 2*pn.Std[i]})
	}
	for i := len(pn.Grid) - 1; i >= 0; i-- {
		y := pn.Mean[i] - 2*pn.Std[i]
		if y < lo {
			lo = y
		}
		band = append(band, plotter.XY{X: pn.Grid[i], Y: y})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = color.RGBA{R: 120, G: 160, B: 220, A: 80}
	poly.LineStyle.Color = color.RGBA{A: 0}
	p.Add(poly)

	for _, path := range pn.Paths {
		ln, err := plotter.NewLine(xys(pn.Grid, path))
		if err != nil {
			return err
		}
		ln.Color = color.RGBA{R: 128, G: 128, B: 128, A: 96}
		p.Add(ln)
	}

	mean, err := plotter.NewLine(xys(pn.Grid, pn.Mean))
	if err != nil {
		return err
	}
	mean.Color = color.RGBA{R: 32, G: 64, B: 192, A: 255}
	mean.Width = vg.Points(1.5)
	p.Add(mean)
	p.Legend.Add("mean", mean)

	obs, err := plotter.NewScatter(xys(pn.X, pn.Y))
	if err != nil {
		return err
	}
	obs.GlyphStyle.Shape = vgdraw.CircleGlyph{}
	obs.GlyphStyle.Radius = vg.Points(1.5)
	obs.GlyphStyle.Color = color.RGBA{A: 255}
	p.Add(obs)
	p.Legend.Add("observations", obs)

	if len(pn.Inducing) > 0 {
		at := make([]float64, len(pn.Inducing))
		for i := range at {
			at[i] = lo
		}
		ind, err := plotter.NewScatter(xys(pn.Inducing, at))
		if err != nil {
			return err
		}
		ind.GlyphStyle.Shape = vgdraw.TriangleGlyph{}
		ind.GlyphStyle.Radius = vg.Points(3)
		ind.GlyphStyle.Color = color.RGBA{R: 192, G: 64, B: 32, A: 255}
		p.Add(ind)
		p.Legend.Add("inducing", ind)
	}

	p.Legend.Top = true
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}
