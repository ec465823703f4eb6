// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgrant/go-eda/dataset"
	"github.com/sgrant/go-eda/dist"
)

func fitted(t *testing.T, name string, xs []float64) (dist.Family, dist.Params) {
	t.Helper()
	f, err := dist.Resolve(name)
	require.NoError(t, err)
	p, err := f.Fit(xs)
	require.NoError(t, err)
	return f, p
}

func TestHistDensity(t *testing.T) {
	xs := []float64{1, 2, 1.5, 2.5, 1, 3, 2.2, 1.8, 2.6, 1.1}
	f, p := fitted(t, "normal", xs)

	// The nil canvas has no bin count; HistDensity must pick one
	// itself rather than hand zero to the histogram plotter.
	plt, err := HistDensity(xs, f, p, nil)
	require.NoError(t, err)
	require.NotNil(t, plt)

	// Render to verify the plot is drawable end to end.
	path := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, Default.Save(plt, path))

	plt, err = HistDensity(xs, f, p, &Canvas{Bins: 5})
	require.NoError(t, err)
	require.NotNil(t, plt)
}

func TestDefaultBins(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 10: 5, 100: 8} {
		if got := defaultBins(n); got != want {
			t.Errorf("defaultBins(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestCDFPlot(t *testing.T) {
	xs := []float64{1, 2, 1.5, 2.5, 1, 3}
	f, p := fitted(t, "uniform", xs)

	plt, err := CDFPlot(xs, f, p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, plt.Y.Min)
	assert.Equal(t, 1.0, plt.Y.Max)
}

func TestDensity(t *testing.T) {
	xs := []float64{1, 2, 1.5, 2.5, 1, 3}
	plt, err := Density(xs)
	require.NoError(t, err)
	require.NotNil(t, plt)
}

func TestFrequencyBar(t *testing.T) {
	tbl, err := dataset.New(dataset.StringColumn("kind", []string{
		"red panda", "red panda", "snow leopard", "takin",
	}))
	require.NoError(t, err)

	plt, err := FrequencyBar(tbl, "kind")
	require.NoError(t, err)
	assert.Equal(t, "Distribution of kind", plt.Title.Text)

	_, err = FrequencyBar(tbl, "nope")
	assert.Error(t, err)
}

func TestWrapTicks(t *testing.T) {
	got := wrapTicks([]string{"red panda", "takin"})
	assert.Equal(t, []string{"red\npanda", "takin"}, got)
}
