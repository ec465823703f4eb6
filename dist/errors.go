// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by FitError. Test for them with errors.Is.
var (
	// ErrEmptySample indicates a fit was requested on an empty
	// sample.
	ErrEmptySample = errors.New("dist: empty sample")

	// ErrDegenerate indicates the sample has zero variance (all
	// values identical), for which no family in this package has a
	// defined maximum-likelihood fit.
	ErrDegenerate = errors.New("dist: degenerate sample: all values identical")

	// ErrSupport indicates the sample contains values outside the
	// family's support, such as non-positive values for a
	// positive-support family.
	ErrSupport = errors.New("dist: sample contains values outside the distribution's support")

	// ErrNoConverge indicates an iterative parameter estimate
	// failed to converge.
	ErrNoConverge = errors.New("dist: parameter estimation did not converge")
)

// An UnsupportedError indicates the requested distribution name is
// not in the registry.
type UnsupportedError struct {
	// Name is the unrecognized distribution name.
	Name string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("dist: unsupported distribution %q", e.Name)
}

// A FitError indicates a family's maximum-likelihood fit could not be
// computed for the given sample. It wraps the underlying cause, which
// is one of the sentinel errors above.
type FitError struct {
	// Dist is the name of the distribution family being fit.
	Dist string

	// Err is the underlying cause.
	Err error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("dist: fitting %s: %v", e.Dist, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }
