// SPDX-License-Identifier: MIT

package analysis

import (
	"math"
	"runtime"
)

const (
	// DefaultMin is the lower end of the default search interval.
	DefaultMin = -1000.0

	// DefaultMax is the upper end of the default search interval.
	DefaultMax = 1000.0

	// DefaultPrecision is the default grid step.
	DefaultPrecision = 1e-4
)

const (
	panicRangeInvalid     = "analysis: WithRange: bounds must be finite with min < max"
	panicPrecisionInvalid = "analysis: WithPrecision: precision must be finite and > 0"
	panicWorkersInvalid   = "analysis: WithWorkers: workers must be >= 1"
)

// Option mutates sampler options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective sampler configuration.
type Options struct {
	min, max  float64
	precision float64
	workers   int
}

// WithRange sets the interval searched by Roots.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic(panicRangeInvalid)
	}

	return func(o *Options) { o.min, o.max = lo, hi }
}

// WithPrecision sets the grid step. Roots match where |f(x)| ≤ precision/10.
func WithPrecision(p float64) Option {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		min:       DefaultMin,
		max:       DefaultMax,
		precision: DefaultPrecision,
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
