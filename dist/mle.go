// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat"
)

const (
	mleTol     = 1e-10
	mleMaxIter = 200
)

// gammaShape solves the gamma profile score equation
//
//	log(shape) - digamma(shape) = s
//
// for the shape parameter, where s = log(mean(x)) - mean(log x). By
// Jensen's inequality s > 0 for any non-constant positive sample, and
// the left side is strictly decreasing, so the root is unique.
func gammaShape(s float64) (float64, error) {
	// Minka's closed-form approximation as the starting point.
	a := (3 - s + math.Sqrt((s-3)*(s-3)+24*s)) / (12 * s)
	for i := 0; i < mleMaxIter; i++ {
		g := math.Log(a) - mathext.Digamma(a) - s
		d := 1/a - trigamma(a)
		step := g / d
		for a-step <= 0 {
			step /= 2
		}
		a -= step
		if math.Abs(step) <= mleTol*(1+a) {
			return a, nil
		}
	}
	return 0, ErrNoConverge
}

// chi2DF solves digamma(df/2) = mean(log x) - log 2 for the degrees
// of freedom. The sample mean seeds the iteration since E[chi2(df)] =
// df.
func chi2DF(meanlog, mean float64) (float64, error) {
	target := meanlog - math.Ln2
	df := mean
	if df <= 0 {
		df = 1
	}
	for i := 0; i < mleMaxIter; i++ {
		g := mathext.Digamma(df/2) - target
		d := trigamma(df/2) / 2
		step := g / d
		for df-step <= 0 {
			step /= 2
		}
		df -= step
		if math.Abs(step) <= mleTol*(1+df) {
			return df, nil
		}
	}
	return 0, ErrNoConverge
}

// logisticMLE estimates the location and scale of a logistic
// distribution by alternating a Newton step on the location score
// with a fixed-point update of the scale score. Both updates keep the
// scale strictly positive for any non-constant sample.
func logisticMLE(xs []float64) (mu, s float64, err error) {
	n := float64(len(xs))
	mu = stat.Mean(xs, nil)
	// Method-of-moments starting point: sd = s*pi/sqrt(3).
	s = math.Sqrt(stat.MomentAbout(2, xs, mu, nil)) * math.Sqrt(3) / math.Pi
	for i := 0; i < mleMaxIter; i++ {
		var score, info float64
		for _, x := range xs {
			p := 1 / (1 + math.Exp(-(x-mu)/s))
			score += 2*p - 1
			info += p * (1 - p)
		}
		dmu := score / (2 * info / s)
		mu += dmu

		var snew float64
		for _, x := range xs {
			p := 1 / (1 + math.Exp(-(x-mu)/s))
			snew += (x - mu) * (2*p - 1)
		}
		snew /= n
		ds := snew - s
		s = snew

		if math.Abs(dmu) <= mleTol*(1+math.Abs(mu)) && math.Abs(ds) <= mleTol*(1+s) {
			return mu, s, nil
		}
	}
	return 0, 0, ErrNoConverge
}

// trigamma approximates the derivative of the digamma function by a
// central difference. The MLE tolerances here are far looser than the
// truncation error.
func trigamma(x float64) float64 {
	h := 1e-4 * x
	return (mathext.Digamma(x+h) - mathext.Digamma(x-h)) / (2 * h)
}
