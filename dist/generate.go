// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "golang.org/x/exp/rand"

// A Generator produces synthetic samples that follow the distribution
// of observed data.
//
// The zero value is ready to use and draws variates from the shared
// process-wide random source. Set Src for reproducible output or to
// isolate concurrent callers from each other.
type Generator struct {
	// Src is the random source variates are drawn from. If nil,
	// the shared global source is used.
	Src rand.Source
}

// Generate fits the named distribution family to xs by maximum
// likelihood and returns len(xs) random variates drawn from the
// fitted distribution.
//
// Parameters are refit on every call; nothing is cached between
// calls. Generate fails with an *UnsupportedError if name is not a
// supported distribution and with a *FitError if the family cannot be
// fit to xs. On failure the returned sample is nil, never a partial
// or zero-filled array.
func (g Generator) Generate(xs []float64, name string) ([]float64, error) {
	f, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	p, err := f.Fit(xs)
	if err != nil {
		return nil, err
	}
	return f.Rand(p, len(xs), g.Src), nil
}

// Generate is shorthand for Generator{}.Generate: it fits name to xs
// and samples from the shared global random source.
func Generate(xs []float64, name string) ([]float64, error) {
	return Generator{}.Generate(xs, name)
}
