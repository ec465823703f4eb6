// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vis renders exploratory charts: histograms and empirical
// CDFs of observed samples overlaid with fitted theoretical
// distributions, kernel density curves, and categorical frequency
// bars.
//
// The package is presentation glue over gonum/plot. It consumes plain
// samples and fitted families; it never inspects fitted parameters
// beyond handing them back to the family for PDF/CDF evaluation.
package vis // import "github.com/sgrant/go-eda/vis"

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sgrant/go-eda/dataset"
	"github.com/sgrant/go-eda/dist"
	"github.com/sgrant/go-eda/stats"
)

// A Canvas is the figure styling used by Save and the binning
// configuration of HistDensity. The zero value is usable; Default
// supplies the usual figure size.
type Canvas struct {
	// Width and Height are the figure dimensions used by Save.
	Width, Height vg.Length

	// Bins is the number of histogram bins. If zero, a bin count
	// is chosen from the sample size by Sturges' formula.
	Bins int
}

// Default is the default canvas.
var Default = Canvas{Width: 6 * vg.Inch, Height: 4 * vg.Inch}

func (c *Canvas) orDefault() Canvas {
	if c == nil {
		return Default
	}
	return *c
}

// Save renders p to file. The image format is chosen by the file
// extension.
func (c Canvas) Save(p *plot.Plot, file string) error {
	w, h := c.Width, c.Height
	if w == 0 {
		w = Default.Width
	}
	if h == 0 {
		h = Default.Height
	}
	return p.Save(w, h, file)
}

// HistDensity plots a density-normalized histogram of xs overlaid
// with the PDF of family f instantiated with parameters p, the usual
// observed-versus-theoretical comparison chart.
func HistDensity(xs []float64, f dist.Family, p dist.Params, c *Canvas) (*plot.Plot, error) {
	cv := c.orDefault()
	plt := plot.New()
	plt.X.Label.Text = "value"
	plt.Y.Label.Text = "density"

	bins := cv.Bins
	if bins <= 0 {
		bins = defaultBins(len(xs))
	}
	hist, err := plotter.NewHist(plotter.Values(xs), bins)
	if err != nil {
		return nil, err
	}
	hist.Normalize(1)
	plt.Add(hist)

	fn := plotter.NewFunction(func(x float64) float64 { return f.Prob(p, x) })
	fn.Samples = 256
	fn.Color = plotutil.Color(1)
	fn.Width = vg.Points(1.5)
	plt.Add(fn)
	plt.Legend.Add(f.Name(), fn)
	plt.Legend.Top = true
	return plt, nil
}

// defaultBins is Sturges' formula: one more than the base-2 log of
// the sample size.
func defaultBins(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// CDFPlot plots the empirical CDF of xs as a step line overlaid with
// the CDF of family f instantiated with parameters p.
func CDFPlot(xs []float64, f dist.Family, p dist.Params) (*plot.Plot, error) {
	plt := plot.New()
	plt.X.Label.Text = "value"
	plt.Y.Label.Text = "cumulative probability"

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	pts := make(plotter.XYs, len(sorted))
	for i, x := range sorted {
		pts[i].X = x
		pts[i].Y = float64(i+1) / float64(len(sorted))
	}
	ecdf, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	ecdf.StepStyle = plotter.PostStep
	plt.Add(ecdf)
	plt.Legend.Add("observed", ecdf)

	fn := plotter.NewFunction(func(x float64) float64 { return f.CDF(p, x) })
	fn.Samples = 256
	fn.Color = plotutil.Color(1)
	plt.Add(fn)
	plt.Legend.Add(f.Name(), fn)
	plt.Y.Min, plt.Y.Max = 0, 1
	return plt, nil
}

// Density plots the kernel density estimate of xs.
func Density(xs []float64) (*plot.Plot, error) {
	plt := plot.New()
	plt.X.Label.Text = "value"
	plt.Y.Label.Text = "density"

	kde := stats.KDE{Sample: stats.Sample{Xs: xs}}
	lo, hi := kde.Bounds()
	const samples = 200
	pts := make(plotter.XYs, samples+1)
	for i := range pts {
		x := lo + (hi-lo)*float64(i)/samples
		pts[i].X = x
		pts[i].Y = kde.PDF(x)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(0)
	plt.Add(line)
	return plt, nil
}

// FrequencyBar plots the frequency distribution of a categorical
// column as a bar chart. Long category labels are wrapped at spaces.
func FrequencyBar(t *dataset.Table, col string) (*plot.Plot, error) {
	rows, err := t.Frequency(col, false)
	if err != nil {
		return nil, err
	}
	counts := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		counts[i] = float64(r.Count)
		labels[i] = r.Value
	}

	plt := plot.New()
	plt.Y.Label.Text = "count"
	bars, err := plotter.NewBarChart(counts, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = plotutil.Color(0)
	plt.Add(bars)
	plt.NominalX(wrapTicks(labels)...)
	plt.Title.Text = "Distribution of " + col
	return plt, nil
}

// wrapTicks wraps long tick labels onto multiple lines at spaces so
// neighboring labels do not collide.
func wrapTicks(labels []string) []string {
	wrapped := make([]string, len(labels))
	for i, l := range labels {
		wrapped[i] = strings.ReplaceAll(l, " ", "\n")
	}
	return wrapped
}
