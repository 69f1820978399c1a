// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// ErrSampleCount is returned by Samples when fewer than two points are requested.
var ErrSampleCount = errors.New("analysis: sample count must be >= 2")

// cancelCheckEvery is how many grid points a worker evaluates between context checks.
const cancelCheckEvery = 4096

// Func is a real function of one real variable.
type Func func(x float64) float64

// Point is one evaluated grid point.
type Point struct {
	X, Y float64
}

// String renders the point as "(x=…, y=…)".
func (p Point) String() string {
	return fmt.Sprintf("(x=%g, y=%g)", p.X, p.Y)
}

// Polynomial returns the Horner-evaluated polynomial with coefficients from
// the highest degree down to the constant: Polynomial(1, 1, 0) is x² + x.
func Polynomial(coefs ...float64) Func {
	cs := append([]float64(nil), coefs...)

	return func(x float64) float64 {
		var acc float64
		for _, c := range cs {
			acc = acc*x + c
		}
		return acc
	}
}

// Sampler evaluates a Func on the grid x = k·precision.
type Sampler struct {
	f    Func
	opts Options
}

// NewSampler binds f to the resolved options.
func NewSampler(f Func, opts ...Option) *Sampler {
	return &Sampler{f: f, opts: gatherOptions(opts...)}
}

// span is an inclusive range of grid indices.
type span struct{ lo, hi int64 }

// chunks splits [lo, hi] into at most workers contiguous, non-empty spans in
// ascending order.
func chunks(lo, hi int64, workers int) []span {
	total := hi - lo + 1
	if total <= 0 {
		return nil
	}
	w := int64(workers)
	if w > total {
		w = total
	}
	size := (total + w - 1) / w

	out := make([]span, 0, w)
	for start := lo; start <= hi; start += size {
		end := start + size - 1
		if end > hi {
			end = hi
		}
		out = append(out, span{lo: start, hi: end})
	}

	return out
}

// gridIndex maps x to the nearest grid index.
func (s *Sampler) gridIndex(x float64) int64 {
	return int64(math.Round(x / s.opts.precision))
}

// Roots returns every grid point of the configured range where
// |f(x)| ≤ precision/10, in ascending order.
// MAIN DESCRIPTION:
//   - Each worker scans one contiguous span and keeps its hits locally; the
//     spans are concatenated in order, so no sort is needed.
//
// Errors:
//   - ctx.Err() when the context is cancelled.
//
// Complexity:
//   - Time O((max−min)/precision / workers) wall clock, Space O(roots).
func (s *Sampler) Roots(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := s.opts.precision
	tol := p / 10
	parts := chunks(s.gridIndex(s.opts.min), s.gridIndex(s.opts.max), s.opts.workers)
	found := make([][]float64, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	for w, sp := range parts {
		w, sp := w, sp
		g.Go(func() error {
			var local []float64
			for k := sp.lo; k <= sp.hi; k++ {
				if (k-sp.lo)%cancelCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				x := float64(k) * p
				if math.Abs(s.f(x)) <= tol {
					local = append(local, x)
				}
			}
			found[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var roots []float64
	for _, part := range found {
		roots = append(roots, part...)
	}

	return roots, nil
}

// partial is one worker's extrema candidate.
type partial struct {
	min, max Point
	ok       bool
}

// Extrema returns the global minimum (lo) and maximum (hi) of f over the grid points in
// [from, to] (bounds are swapped when from > to). NaN samples are skipped;
// ok is false when every sample was NaN. Ties keep the smaller x.
// Implementation:
//   - Stage 1: partition the grid; each worker reduces its span to a partial.
//   - Stage 2: partials fan in over a buffered channel; the caller reduces them.
//
// Errors:
//   - ctx.Err() when the context is cancelled.
func (s *Sampler) Extrema(ctx context.Context, from, to float64) (lo, hi Point, ok bool, err error) {
	if err = ctx.Err(); err != nil {
		return lo, hi, false, err
	}
	if from > to {
		from, to = to, from
	}
	p := s.opts.precision
	parts := chunks(s.gridIndex(from), s.gridIndex(to), s.opts.workers)
	results := make(chan partial, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	for _, sp := range parts {
		sp := sp
		g.Go(func() error {
			var acc partial
			for k := sp.lo; k <= sp.hi; k++ {
				if (k-sp.lo)%cancelCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				x := float64(k) * p
				y := s.f(x)
				if math.IsNaN(y) {
					continue
				}
				pt := Point{X: x, Y: y}
				if !acc.ok {
					acc = partial{min: pt, max: pt, ok: true}
					continue
				}
				if y < acc.min.Y {
					acc.min = pt
				}
				if y > acc.max.Y {
					acc.max = pt
				}
			}
			results <- acc
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return lo, hi, false, err
	}
	close(results)

	for r := range results {
		if !r.ok {
			continue
		}
		if !ok {
			lo, hi, ok = r.min, r.max, true
			continue
		}
		if r.min.Y < lo.Y || (r.min.Y == lo.Y && r.min.X < lo.X) {
			lo = r.min
		}
		if r.max.Y > hi.Y || (r.max.Y == hi.Y && r.max.X < hi.X) {
			hi = r.max
		}
	}

	return lo, hi, ok, nil
}

// Samples evaluates f at n evenly spaced points from from to to inclusive.
// Errors: ErrSampleCount when n < 2; ctx.Err() on cancellation.
func (s *Sampler) Samples(ctx context.Context, from, to float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("Samples(n=%d): %w", n, ErrSampleCount)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	step := (to - from) / float64(n-1)
	out := make([]Point, n)

	g, gctx := errgroup.WithContext(ctx)
	for _, sp := range chunks(0, int64(n-1), s.opts.workers) {
		sp := sp
		g.Go(func() error {
			for k := sp.lo; k <= sp.hi; k++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				x := from + float64(k)*step
				if k == int64(n-1) {
					x = to
				}
				out[k] = Point{X: x, Y: s.f(x)}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
