// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/xmath/algebra"
	"github.com/katalvlaran/xmath/analysis"
	"github.com/katalvlaran/xmath/im"
)

// errUnknownOp is returned by calc for an operator outside + - * / ^ ^i.
var errUnknownOp = errors.New("unknown operator")

// binaryOps maps calc operators to im operators. "x" is an alias of "*"
// for shells that glob the asterisk.
var binaryOps = map[string]func(a, b im.Number) im.Number{
	"+":  im.Add,
	"-":  im.Sub,
	"*":  im.Mul,
	"x":  im.Mul,
	"/":  im.Div,
	"^":  im.Pow,
	"^i": im.PowI,
}

// evaluate lifts both operands with im.Parse and applies op.
func evaluate(lhs, op, rhs string) (im.Number, error) {
	f, ok := binaryOps[op]
	if !ok {
		return nil, fmt.Errorf("calc: %q: %w", op, errUnknownOp)
	}
	a, err := im.Parse(lhs)
	if err != nil {
		return nil, err
	}
	b, err := im.Parse(rhs)
	if err != nil {
		return nil, err
	}

	return f(a, b), nil
}

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "complex arithmetic: op is one of + - * / ^ ^i (use -- before negative operands)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := evaluate(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			a.log.Debug("calc", "lhs", args[0], "op", args[1], "rhs", args[2], "shape", n.Shape())
			printResult(cmd.OutOrStdout(), strings.Join(args, " "), n)
			return nil
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for k, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", k+1, err)
		}
		out[k] = v
	}

	return out, nil
}

func (a *app) quadraticCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quadratic <a> <b> <c>",
		Short: "roots of a·x² + b·x + c = 0, complex when the discriminant is negative",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFloats(args)
			if err != nil {
				return err
			}
			roots, err := algebra.QuadraticComplex(c[0], c[1], c[2])
			if err != nil {
				return err
			}
			a.log.Debug("quadratic", "discriminant", algebra.Discriminant(c[0], c[1], c[2]))
			printResult(cmd.OutOrStdout(), "roots", unknowns(numberStrings(roots[:])))
			return nil
		},
	}
}

func (a *app) rootsCmd() *cobra.Command {
	var coefs []float64
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "grid search for roots of a polynomial over the configured range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(coefs) == 0 {
				return errors.New("roots: --coef is required")
			}
			s, err := a.sampler(coefs)
			if err != nil {
				return err
			}
			roots, err := s.Roots(cmd.Context())
			if err != nil {
				return err
			}
			a.log.Debug("roots", "coef", coefs, "found", len(roots))
			if len(roots) == 0 {
				printNote(cmd.OutOrStdout(), "no roots in range")
				return nil
			}
			vals := make([]string, len(roots))
			for k, r := range roots {
				vals[k] = strconv.FormatFloat(r, 'f', -1, 64)
			}
			printResult(cmd.OutOrStdout(), "roots", unknowns(vals))
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&coefs, "coef", nil, "polynomial coefficients, highest degree first")

	return cmd
}

func (a *app) extremaCmd() *cobra.Command {
	var (
		coefs    []float64
		from, to float64
		noPlot   bool
	)
	cmd := &cobra.Command{
		Use:   "extrema",
		Short: "minimum and maximum of a polynomial on [from, to], with a terminal plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(coefs) == 0 {
				return errors.New("extrema: --coef is required")
			}
			ctx := cmd.Context()
			s, err := a.sampler(coefs)
			if err != nil {
				return err
			}
			lo, hi, ok, err := s.Extrema(ctx, from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				printNote(out, "function is undefined on the whole interval")
				return nil
			}
			printResult(out, "extrema", text(fmt.Sprintf("min %s\nmax %s", lo, hi)))
			if noPlot {
				return nil
			}
			plot, err := a.plot(ctx, s, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, plot)
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&coefs, "coef", nil, "polynomial coefficients, highest degree first")
	cmd.Flags().Float64Var(&from, "from", -1, "interval start")
	cmd.Flags().Float64Var(&to, "to", 1, "interval end")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")

	return cmd
}

// sampler builds a polynomial sampler with the configured options.
func (a *app) sampler(coefs []float64) (*analysis.Sampler, error) {
	opts, err := a.cfg.SamplerOptions()
	if err != nil {
		return nil, err
	}

	return analysis.NewSampler(analysis.Polynomial(coefs...), opts...), nil
}

// plot samples the sampler's function on [from, to] and renders it with asciigraph.
func (a *app) plot(ctx context.Context, s *analysis.Sampler, from, to float64) (string, error) {
	n := a.cfg.Plot.Samples
	if n < 2 {
		n = 2
	}
	pts, err := s.Samples(ctx, from, to, n)
	if err != nil {
		return "", err
	}
	ys := make([]float64, len(pts))
	for k, p := range pts {
		ys[k] = p.Y
	}

	return asciigraph.Plot(ys,
		asciigraph.Height(a.cfg.Plot.Height),
		asciigraph.Width(a.cfg.Plot.Width),
		asciigraph.Caption(fmt.Sprintf("x ∈ [%g, %g]", from, to)),
	), nil
}
