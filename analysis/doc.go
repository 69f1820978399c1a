// Package analysis scans a real function on a fixed grid to locate its roots
// and extrema, and samples it for plotting.
//
// The grid is x = k·precision for integer k. A Sampler splits the grid into
// contiguous chunks, one per worker, and runs them concurrently under an
// errgroup; cancelling the context stops every worker.
//
// Options (functional, validated):
//   - WithRange(min, max)   search interval for Roots (default −1000..1000)
//   - WithPrecision(p)      grid step (default 1e−4)
//   - WithWorkers(n)        worker count (default GOMAXPROCS)
//
// Example:
//
//	s := analysis.NewSampler(analysis.Polynomial(1, 1, 0), analysis.WithRange(-5, 5))
//	roots, _ := s.Roots(ctx)          // [-1 0]
//	lo, hi, ok, _ := s.Extrema(ctx, -5, 1)
package analysis
