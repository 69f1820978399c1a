// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/xmath/im"
	"github.com/katalvlaran/xmath/internal/matrixio"
	"github.com/katalvlaran/xmath/matrix"
)

const floatUsage = "use float64 kernels (documents with real entries only)"

func (a *app) matrixCommands() []*cobra.Command {
	detCmd := &cobra.Command{
		Use:   "det <file>",
		Short: "determinant of a matrix document",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDet,
	}
	detCmd.Flags().BoolVar(&a.useFloat, "float", false, floatUsage)

	inverseCmd := &cobra.Command{
		Use:   "inverse <file>",
		Short: "inverse of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runInverse,
	}
	inverseCmd.Flags().BoolVar(&a.useFloat, "float", false, floatUsage)

	cofactorCmd := &cobra.Command{
		Use:   "cofactor <file>",
		Short: "cofactor matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runCofactor,
	}

	transposeCmd := &cobra.Command{
		Use:   "transpose <file>",
		Short: "transpose",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTranspose,
	}

	powerCmd := &cobra.Command{
		Use:   "power <file> <n>",
		Short: "integer power (0 yields the zero matrix)",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runPower,
	}

	solveCmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "solve body·x = rhs by Cramer's rule",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSolve,
	}
	solveCmd.Flags().BoolVar(&a.useFloat, "float", false, floatUsage)

	multiplyCmd := &cobra.Command{
		Use:   "multiply <a> <b>",
		Short: "matrix product a·b",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runMultiply,
	}

	return []*cobra.Command{detCmd, inverseCmd, cofactorCmd, transposeCmd, powerCmd, solveCmd, multiplyCmd}
}

func (a *app) loadComplex(path string) (*matrix.Complex, *matrixio.Document, error) {
	doc, err := matrixio.Load(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := doc.Complex()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("matrix loaded", "path", path, "rows", m.Rows(), "cols", m.Cols())

	return m, doc, nil
}

func (a *app) loadDense(path string) (*matrix.Dense, *matrixio.Document, []matrix.Option, error) {
	opts, err := a.cfg.MatrixOptions()
	if err != nil {
		return nil, nil, nil, err
	}
	doc, err := matrixio.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	d, err := doc.Dense(opts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, doc, opts, nil
}

func (a *app) runDet(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if a.useFloat {
		d, _, _, err := a.loadDense(args[0])
		if err != nil {
			return err
		}
		det, err := matrix.Determinant(d)
		if err != nil {
			return err
		}
		printResult(out, "det", text(strconv.FormatFloat(det, 'g', -1, 64)))
		return nil
	}

	m, _, err := a.loadComplex(args[0])
	if err != nil {
		return err
	}
	printResult(out, "det", m.Determinant())

	return nil
}

func (a *app) runInverse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if a.useFloat {
		d, _, opts, err := a.loadDense(args[0])
		if err != nil {
			return err
		}
		inv, err := matrix.Inverse(d, opts...)
		if err != nil {
			return err
		}
		printResult(out, "inverse", text(fmt.Sprint(inv)))
		return nil
	}

	m, _, err := a.loadComplex(args[0])
	if err != nil {
		return err
	}
	inv, ok := m.Inverse()
	if !ok {
		printNote(out, "no inverse: matrix is singular or not square")
		return nil
	}
	printResult(out, "inverse", inv)

	return nil
}

func (a *app) runCofactor(cmd *cobra.Command, args []string) error {
	m, _, err := a.loadComplex(args[0])
	if err != nil {
		return err
	}
	cof, ok := m.Cofactor()
	if !ok {
		printNote(cmd.OutOrStdout(), "no cofactor matrix: matrix is not square")
		return nil
	}
	printResult(cmd.OutOrStdout(), "cofactor", cof)

	return nil
}

func (a *app) runTranspose(cmd *cobra.Command, args []string) error {
	m, _, err := a.loadComplex(args[0])
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), "transpose", m.Transpose())

	return nil
}

func (a *app) runPower(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("power: exponent %q: %w", args[1], err)
	}
	m, _, err := a.loadComplex(args[0])
	if err != nil {
		return err
	}
	p, err := m.Pow(n)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), fmt.Sprintf("power %d", n), p)

	return nil
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if a.useFloat {
		d, doc, opts, err := a.loadDense(args[0])
		if err != nil {
			return err
		}
		rhs, err := doc.RealRHS()
		if err != nil {
			return err
		}
		x, err := matrix.Solve(d, rhs, opts...)
		if err != nil {
			return err
		}
		vals := make([]string, len(x))
		for k, v := range x {
			vals[k] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		printResult(out, "solution", unknowns(vals))
		return nil
	}

	m, doc, err := a.loadComplex(args[0])
	if err != nil {
		return err
	}
	rhs, err := doc.ComplexRHS()
	if err != nil {
		return err
	}
	x, ok, err := m.Solve(rhs)
	if err != nil {
		return err
	}
	if !ok {
		printNote(out, "no unique solution: matrix is singular or not square")
		return nil
	}
	printResult(out, "solution", unknowns(numberStrings(x)))

	return nil
}

func (a *app) runMultiply(cmd *cobra.Command, args []string) error {
	left, _, err := a.loadComplex(args[0])
	if err != nil {
		return err
	}
	right, _, err := a.loadComplex(args[1])
	if err != nil {
		return err
	}
	p, err := left.Mul(right)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), "product", p)

	return nil
}

func numberStrings(xs []im.Number) []string {
	out := make([]string, len(xs))
	for k, x := range xs {
		out[k] = x.String()
	}

	return out
}

// unknowns renders values as "x1 = …" lines.
func unknowns(vals []string) text {
	lines := make([]string, len(vals))
	for k, v := range vals {
		lines[k] = fmt.Sprintf("x%d = %s", k+1, v)
	}

	return text(strings.Join(lines, "\n"))
}
