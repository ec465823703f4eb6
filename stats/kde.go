// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// KDE is a Gaussian kernel density estimate of the distribution
// underlying a sample. It implements Dist.
//
// The zero value of every option is a reasonable default.
type KDE struct {
	// Sample is the sample the density is estimated from.
	Sample Sample

	// Bandwidth is the kernel bandwidth. If zero, it is computed
	// from the sample with BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax) bound the support of the
	// estimate; density outside the bounds is reflected back in.
	// If both are 0 they are treated as +/-inf and no correction
	// is performed. For a half-bounded support, set the other
	// bound to an infinity.
	BoundaryMin, BoundaryMax float64
}

// BandwidthScott estimates a kernel bandwidth for s implementing
// Scott's Rule: the minimum of the sample's standard deviation and
// IQR/1.349 (a robust estimator of a Gaussian's standard deviation),
// scaled by 1.06*n^(-1/5).
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(s Sample) float64 {
	hScale := 1.06 * math.Pow(s.Weight(), -1.0/5)
	stdDev := s.StdDev()
	if robust := s.IQR() / 1.349; robust < stdDev && robust > 0 {
		stdDev = robust
	}
	return hScale * stdDev
}

func (k KDE) bandwidth() float64 {
	if k.Bandwidth > 0 {
		return k.Bandwidth
	}
	return BandwidthScott(k.Sample)
}

func (k KDE) bounded() bool {
	return !(k.BoundaryMin == 0 && k.BoundaryMax == 0)
}

// PDF returns the estimated probability density at x.
func (k KDE) PDF(x float64) float64 {
	if len(k.Sample.Xs) == 0 {
		return nan
	}
	if k.bounded() && (x < k.BoundaryMin || x >= k.BoundaryMax) {
		return 0
	}
	h := k.bandwidth()
	y := k.sumKernel(x, h)
	if k.bounded() {
		// Reflect the out-of-support density back in.
		y += k.sumKernel(2*k.BoundaryMin-x, h)
		y += k.sumKernel(2*k.BoundaryMax-x, h)
	}
	return y / k.Sample.Weight()
}

func (k KDE) sumKernel(x, h float64) float64 {
	var sum float64
	for i, xi := range k.Sample.Xs {
		z := (x - xi) / h
		y := math.Exp(-z*z/2) / (h * math.Sqrt(2*math.Pi))
		if k.Sample.Weights != nil {
			y *= k.Sample.Weights[i]
		}
		sum += y
	}
	return sum
}

// CDF returns the estimated cumulative distribution at x.
func (k KDE) CDF(x float64) float64 {
	if len(k.Sample.Xs) == 0 {
		return nan
	}
	if k.bounded() {
		if x < k.BoundaryMin {
			return 0
		}
		if x >= k.BoundaryMax {
			return 1
		}
	}
	h := k.bandwidth()
	y := k.sumCDF(x, h)
	if k.bounded() {
		// The mass below the lower boundary is reflected to
		// [min, 2*min-x) and the mass above the upper boundary
		// to (2*max-x, max].
		y -= k.sumCDF(2*k.BoundaryMin-x, h)
		y += k.Sample.Weight() - k.sumCDF(2*k.BoundaryMax-x, h)
	}
	return y / k.Sample.Weight()
}

func (k KDE) sumCDF(x, h float64) float64 {
	var sum float64
	for i, xi := range k.Sample.Xs {
		y := 0.5 * (1 + math.Erf((x-xi)/(h*math.Sqrt2)))
		if k.Sample.Weights != nil {
			y *= k.Sample.Weights[i]
		}
		sum += y
	}
	return sum
}

// Bounds returns the bounds of the estimate: the boundary values if
// set, and otherwise the sample bounds padded by three bandwidths.
func (k KDE) Bounds() (low, high float64) {
	if k.bounded() {
		return k.BoundaryMin, k.BoundaryMax
	}
	min, max := k.Sample.Bounds()
	h := k.bandwidth()
	return min - 3*h, max + 3*h
}
