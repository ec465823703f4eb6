// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist fits probability distributions to sample data and
// draws random variates from the fitted distribution.
//
// The package supports a fixed set of parametric families, each
// identified by a string name: "normal", "chi2", "exponential",
// "gamma", "logistic", "uniform", "lognorm" and "pareto". A family is
// resolved by name with Resolve, fit to a sample by maximum
// likelihood with Family.Fit, and sampled from with Family.Rand.
//
// Fit returns parameters in a fixed per-family order, also reported
// at runtime by Family.ParamNames:
//
//	normal       loc, scale
//	chi2         df
//	exponential  loc, scale
//	gamma        shape, scale
//	logistic     loc, scale
//	uniform      loc, scale
//	lognorm      mu, sigma
//	pareto       xm, alpha
//
// The positive-support families (chi2, gamma, lognorm, pareto) fix
// their location at zero, so they carry no loc parameter.
//
// Generate combines the three steps: it fits the named family to a
// sample and returns a synthetic sample of the same length drawn from
// the fitted distribution. This is the usual entry point for overlay
// plots that compare observed data against a theoretical
// distribution.
//
// Variates are drawn from the process-wide random source unless an
// explicit rand.Source is supplied, either to Family.Rand or via the
// Src field of Generator. Callers that need reproducible or
// concurrency-isolated output must supply their own source; the
// shared default advances global state on every call.
package dist // import "github.com/sgrant/go-eda/dist"
