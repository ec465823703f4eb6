// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// The maximum-likelihood estimates below are closed form for the
// location-scale families and Newton iterations on the score
// equations for the families with a shape parameter (gamma, chi2) and
// for the logistic scale. Positive-support families fix the location
// at zero; see Family.Fit for the support policy.

var normalFamily = &family{
	name:   "normal",
	params: []string{"loc", "scale"},
	fit: func(xs []float64) (Params, error) {
		mu := stat.Mean(xs, nil)
		// MLE uses the biased (1/N) variance.
		sigma := math.Sqrt(stat.MomentAbout(2, xs, mu, nil))
		return Params{mu, sigma}, nil
	},
	dist: func(p Params, src rand.Source) dister {
		return distuv.Normal{Mu: p[0], Sigma: p[1], Src: src}
	},
}

var chi2Family = &family{
	name:     "chi2",
	params:   []string{"df"},
	positive: true,
	fit: func(xs []float64) (Params, error) {
		// A chi-squared distribution is a gamma distribution
		// with shape df/2 and scale 2, so the profile score
		// reduces to digamma(df/2) = mean(log x) - log 2.
		df, err := chi2DF(meanLog(xs), stat.Mean(xs, nil))
		if err != nil {
			return nil, err
		}
		return Params{df}, nil
	},
	dist: func(p Params, src rand.Source) dister {
		return distuv.ChiSquared{K: p[0], Src: src}
	},
}

var exponentialFamily = &family{
	name:   "exponential",
	params: []string{"loc", "scale"},
	fit: func(xs []float64) (Params, error) {
		loc := floats.Min(xs)
		return Params{loc, stat.Mean(xs, nil) - loc}, nil
	},
	dist: func(p Params, src rand.Source) dister {
		return shifted{p[0], distuv.Exponential{Rate: 1 / p[1], Src: src}}
	},
}

var gammaFamily = &family{
	name:     "gamma",
	params:   []string{"shape", "scale"},
	positive: true,
	fit: func(xs []float64) (Params, error) {
		mean := stat.Mean(xs, nil)
		shape, err := gammaShape(math.Log(mean) - meanLog(xs))
		if err != nil {
			return nil, err
		}
		return Params{shape, mean / shape}, nil
	},
	dist: func(p Params, src rand.Source) dister {
		return distuv.Gamma{Alpha: p[0], Beta: 1 / p[1], Src: src}
	},
}

var logisticFamily = &family{
	name:   "logistic",
	params: []string{"loc", "scale"},
	fit: func(xs []float64) (Params, error) {
		mu, s, err := logisticMLE(xs)
		if err != nil {
			return nil, err
		}
		return Params{mu, s}, nil
	},
	dist: func(p Params, src rand.Source) dister {
		d := logisticDist{mu: p[0], s: p[1]}
		if src != nil {
			d.rnd = rand.New(src)
		}
		return d
	},
}

var uniformFamily = &family{
	name:   "uniform",
	params: []string{"loc", "scale"},
	fit: func(xs []float64) (Params, error) {
		lo, hi := floats.Min(xs), floats.Max(xs)
		return Params{lo, hi - lo}, nil
	},
	dist: func(p Params, src rand.Source) dister {
		return distuv.Uniform{Min: p[0], Max: p[0] + p[1], Src: src}
	},
}

var lognormFamily = &family{
	name:     "lognorm",
	params:   []string{"mu", "sigma"},
	positive: true,
	fit: func(xs []float64) (Params, error) {
		// The log of a log-normal variate is normal, so fit a
		// normal to the logs.
		mu := meanLog(xs)
		var ss float64
		for _, x := range xs {
			d := math.Log(x) - mu
			ss += d * d
		}
		return Params{mu, math.Sqrt(ss / float64(len(xs)))}, nil
	},
	dist: func(p Params, src rand.Source) dister {
		return distuv.LogNormal{Mu: p[0], Sigma: p[1], Src: src}
	},
}

var paretoFamily = &family{
	name:     "pareto",
	params:   []string{"xm", "alpha"},
	positive: true,
	fit: func(xs []float64) (Params, error) {
		xm := floats.Min(xs)
		var sum float64
		for _, x := range xs {
			sum += math.Log(x / xm)
		}
		return Params{xm, float64(len(xs)) / sum}, nil
	},
	dist: func(p Params, src rand.Source) dister {
		return distuv.Pareto{Xm: p[0], Alpha: p[1], Src: src}
	},
}

// shifted relocates a distribution with support starting at zero.
type shifted struct {
	loc float64
	d   dister
}

func (s shifted) Rand() float64 { return s.loc + s.d.Rand() }

func (s shifted) Prob(x float64) float64 { return s.d.Prob(x - s.loc) }

func (s shifted) CDF(x float64) float64 { return s.d.CDF(x - s.loc) }

// logisticDist is a logistic distribution with location mu and scale
// s. Variates are drawn by inverting the CDF.
type logisticDist struct {
	mu, s float64
	rnd   *rand.Rand
}

func (l logisticDist) Rand() float64 {
	var u float64
	for u == 0 {
		if l.rnd != nil {
			u = l.rnd.Float64()
		} else {
			u = rand.Float64()
		}
	}
	return l.mu + l.s*math.Log(u/(1-u))
}

func (l logisticDist) Prob(x float64) float64 {
	e := math.Exp(-math.Abs(x-l.mu) / l.s)
	return e / (l.s * (1 + e) * (1 + e))
}

func (l logisticDist) CDF(x float64) float64 {
	return 1 / (1 + math.Exp(-(x-l.mu)/l.s))
}

func meanLog(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += math.Log(x)
	}
	return sum / float64(len(xs))
}
