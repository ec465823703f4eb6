// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"sort"

	"golang.org/x/exp/rand"
)

// Params is an ordered tuple of distribution parameters, as returned
// by Family.Fit. The meaning and order of the values is fixed per
// family and given by Family.ParamNames.
type Params []float64

// A Family is a parametric family of probability distributions. A
// Family value is stateless and shared; all methods are safe for
// concurrent use as long as concurrent Rand calls use distinct
// sources.
type Family interface {
	// Name returns the name under which this family is registered.
	Name() string

	// ParamNames returns the names of the family's parameters in
	// the order Fit returns them.
	ParamNames() []string

	// Fit estimates the family's parameters from xs by maximum
	// likelihood.
	//
	// Fit fails with a *FitError if xs is empty, if all values of
	// xs are identical, or if xs contains values outside the
	// family's support. Positive-support families (chi2, gamma,
	// lognorm, pareto) require every value to be strictly
	// positive; out-of-support samples are rejected up front
	// rather than passed through to produce meaningless
	// parameters.
	Fit(xs []float64) (Params, error)

	// Rand draws n independent variates from the family
	// instantiated with parameters p. If src is nil, variates come
	// from the shared process-wide random source.
	//
	// Rand panics if p was not produced by this family's Fit.
	Rand(p Params, n int, src rand.Source) []float64

	// Prob returns the probability density at x of the family
	// instantiated with parameters p.
	Prob(p Params, x float64) float64

	// CDF returns the cumulative distribution function at x of the
	// family instantiated with parameters p.
	CDF(p Params, x float64) float64
}

// dister is the subset of a gonum distuv distribution used here.
type dister interface {
	Rand() float64
	Prob(x float64) float64
	CDF(x float64) float64
}

// family implements Family. Each instance binds a maximum-likelihood
// estimator to a constructor for the corresponding sampling
// distribution, so a registered name can never have a fit without a
// generator or vice versa.
type family struct {
	name     string
	params   []string
	positive bool // support is (0, inf); reject other samples
	fit      func(xs []float64) (Params, error)
	dist     func(p Params, src rand.Source) dister
}

func (f *family) Name() string { return f.name }

func (f *family) ParamNames() []string {
	names := make([]string, len(f.params))
	copy(names, f.params)
	return names
}

func (f *family) Fit(xs []float64) (Params, error) {
	if len(xs) == 0 {
		return nil, &FitError{f.name, ErrEmptySample}
	}
	if f.positive {
		for _, x := range xs {
			if x <= 0 {
				return nil, &FitError{f.name, ErrSupport}
			}
		}
	}
	if allEqual(xs) {
		return nil, &FitError{f.name, ErrDegenerate}
	}
	p, err := f.fit(xs)
	if err != nil {
		return nil, &FitError{f.name, err}
	}
	return p, nil
}

func (f *family) Rand(p Params, n int, src rand.Source) []float64 {
	f.check(p)
	d := f.dist(p, src)
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

func (f *family) Prob(p Params, x float64) float64 {
	f.check(p)
	return f.dist(p, nil).Prob(x)
}

func (f *family) CDF(p Params, x float64) float64 {
	f.check(p)
	return f.dist(p, nil).CDF(x)
}

func (f *family) check(p Params) {
	if len(p) != len(f.params) {
		panic("dist: wrong parameter count for " + f.name)
	}
}

func allEqual(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// families maps each supported distribution name to its family. The
// map is constructed once and never mutated.
var families = map[string]*family{
	"normal":      normalFamily,
	"chi2":        chi2Family,
	"exponential": exponentialFamily,
	"gamma":       gammaFamily,
	"logistic":    logisticFamily,
	"uniform":     uniformFamily,
	"lognorm":     lognormFamily,
	"pareto":      paretoFamily,
}

// Resolve returns the distribution family registered under name. It
// fails with an *UnsupportedError if name is not a supported
// distribution.
func Resolve(name string) (Family, error) {
	f, ok := families[name]
	if !ok {
		return nil, &UnsupportedError{Name: name}
	}
	return f, nil
}

// Names returns the names of all supported distribution families in
// sorted order.
func Names() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
