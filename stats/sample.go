// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points. It is a
// read-only view of the underlying slices: no method mutates Xs or
// Weights except Sort, which sorts in place.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights is the weight of each sample value. If Weights is
	// nil, all values have weight 1. Otherwise it must have the
	// same length as Xs.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Weight returns the total weight of the sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Sum returns the weighted sum of the sample values.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	var sum float64
	for i, x := range s.Xs {
		sum += x * s.Weights[i]
	}
	return sum
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// GeoMean returns the geometric mean of the sample. It returns NaN if
// any value is non-positive.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.GeometricMean(s.Xs, s.Weights)
}

// Variance returns the unbiased sample variance.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the unbiased sample standard deviation.
func (s Sample) StdDev() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.StdDev(s.Xs, s.Weights)
}

// Skewness returns the sample skewness.
func (s Sample) Skewness() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Skew(s.Xs, s.Weights)
}

// ExKurtosis returns the sample excess kurtosis, which is 0 for
// normally distributed data.
func (s Sample) ExKurtosis() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.ExKurtosis(s.Xs, s.Weights)
}

// Bounds returns the minimum and maximum values of the sample, or
// NaNs if the sample is empty.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Quantile returns the sample value at quantile q. q is clamped to
// [0, 1]. It returns NaN if the sample is empty.
//
// Unweighted samples use linear interpolation between order
// statistics (the R-7 estimator, matching the common dataframe
// describe() convention). Weighted samples linearly interpolate the
// weighted empirical CDF.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	q = math.Max(0, math.Min(1, q))
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	if s.Weights != nil {
		return stat.Quantile(q, stat.LinInterp, s.Xs, s.Weights)
	}
	h := q * float64(len(s.Xs)-1)
	i := int(h)
	if i == len(s.Xs)-1 {
		return s.Xs[i]
	}
	return s.Xs[i] + (h-float64(i))*(s.Xs[i+1]-s.Xs[i])
}

// Percentile returns the sample value at percentile p*100. It is
// shorthand for Quantile(p).
func (s Sample) Percentile(p float64) float64 {
	return s.Quantile(p)
}

// IQR returns the interquartile range of the sample.
func (s Sample) IQR() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return s.Quantile(0.75) - s.Quantile(0.25)
}

// Copy returns a copy of the sample whose slices share no storage
// with the original.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	n := Sample{Xs: xs, Sorted: s.Sorted}
	if s.Weights != nil {
		n.Weights = make([]float64, len(s.Weights))
		copy(n.Weights, s.Weights)
	}
	return &n
}

// Sort sorts the sample in place by value and returns it for method
// chaining.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		if s.Weights == nil {
			sort.Float64s(s.Xs)
		} else {
			stat.SortWeighted(s.Xs, s.Weights)
		}
	}
	s.Sorted = true
	return s
}

// A Summary is the descriptive-statistics row of a sample: the count,
// moments and five-number summary.
type Summary struct {
	N                        int
	Mean, StdDev             float64
	Min, Q1, Median, Q3, Max float64
	Skewness, ExKurtosis     float64
}

// Summary computes the descriptive summary of the sample.
func (s Sample) Summary() Summary {
	sorted := *s.Copy().Sort()
	min, max := sorted.Bounds()
	return Summary{
		N:          len(s.Xs),
		Mean:       sorted.Mean(),
		StdDev:     sorted.StdDev(),
		Min:        min,
		Q1:         sorted.Quantile(0.25),
		Median:     sorted.Quantile(0.5),
		Q3:         sorted.Quantile(0.75),
		Max:        max,
		Skewness:   sorted.Skewness(),
		ExKurtosis: sorted.ExKurtosis(),
	}
}
