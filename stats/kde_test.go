// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

// integrate computes the trapezoid integral of f over [lo, hi].
func integrate(f func(float64) float64, lo, hi float64) float64 {
	const steps = 2000
	dx := (hi - lo) / steps
	sum := (f(lo) + f(hi)) / 2
	for i := 1; i < steps; i++ {
		sum += f(lo + float64(i)*dx)
	}
	return sum * dx
}

func TestKDEIntegratesToOne(t *testing.T) {
	k := KDE{Sample: Sample{Xs: []float64{1, 2, 1.5, 2.5, 1, 3}}}
	lo, hi := k.Bounds()
	if got := integrate(k.PDF, lo, hi); math.Abs(got-1) > 0.01 {
		t.Errorf("PDF integrates to %v, want 1", got)
	}
}

func TestKDECDF(t *testing.T) {
	k := KDE{Sample: Sample{Xs: []float64{1, 2, 1.5, 2.5, 1, 3}}}
	lo, hi := k.Bounds()
	if got := k.CDF(lo); math.Abs(got) > 0.01 {
		t.Errorf("CDF(lo) = %v, want ~0", got)
	}
	if got := k.CDF(hi); math.Abs(got-1) > 0.01 {
		t.Errorf("CDF(hi) = %v, want ~1", got)
	}
	// CDF must be non-decreasing and agree with the PDF integral.
	mid := (lo + hi) / 2
	want := integrate(k.PDF, lo, mid)
	if got := k.CDF(mid) - k.CDF(lo); math.Abs(got-want) > 0.01 {
		t.Errorf("CDF increment %v, PDF integral %v", got, want)
	}
}

func TestKDEBounded(t *testing.T) {
	k := KDE{
		Sample:      Sample{Xs: []float64{0.1, 0.3, 0.5, 1.2, 2.0}},
		BoundaryMin: 0,
		BoundaryMax: math.Inf(1),
	}
	if got := k.PDF(-1); got != 0 {
		t.Errorf("PDF(-1) = %v, want 0 with bounded support", got)
	}
	if got := k.CDF(-1); got != 0 {
		t.Errorf("CDF(-1) = %v, want 0 with bounded support", got)
	}
	if got := integrate(k.PDF, 0, 20); math.Abs(got-1) > 0.01 {
		t.Errorf("bounded PDF integrates to %v, want 1", got)
	}
}

func TestBandwidthScott(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 1.5, 2.5, 1, 3}}
	h := BandwidthScott(s)
	if h <= 0 {
		t.Errorf("want positive bandwidth, got %v", h)
	}
	k := KDE{Sample: s, Bandwidth: 0.5}
	if got := k.bandwidth(); got != 0.5 {
		t.Errorf("explicit bandwidth ignored: got %v", got)
	}
}