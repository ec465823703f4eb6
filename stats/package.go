// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides descriptive statistics and kernel density
// estimates over numeric samples.
package stats // import "github.com/sgrant/go-eda/stats"

import "math"

var nan = math.NaN()
