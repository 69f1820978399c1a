// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xmath/internal/config"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const m1Doc = `
rows: 2
cols: 2
body:
  - {re: -1, im: -3}
  - {re: 4, im: 2}
  - {re: 1, im: 1}
  - {re: -2, im: 1}
rhs:
  - {re: -1, im: -3}
  - {re: 1, im: 1}
`

const systemDoc = `
rows = 3
cols = 3
body = [
  {re = 1}, {re = 4}, {re = 2},
  {re = 2}, {re = -6}, {re = -2},
  {re = 1}, {re = 5}, {re = 2},
]
rhs = [{re = 1}, {re = 3}, {re = 2}]
`

func TestEvaluate(t *testing.T) {
	tests := []struct {
		lhs, op, rhs string
		want         string
	}{
		{"3i", "*", "2", "6i"},
		{"3i", "x", "2", "6i"},
		{"2", "+", "-i", "(2-i)"},
		{"i", "^", "2", "-1"},
		{"1", "/", "0", "undefined"},
		{"5", "-", "5", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.lhs+tc.op+tc.rhs, func(t *testing.T) {
			n, err := evaluate(tc.lhs, tc.op, tc.rhs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.String())
		})
	}

	_, err := evaluate("1", "%", "2")
	require.ErrorIs(t, err, errUnknownOp)
	_, err = evaluate("one", "+", "2")
	require.Error(t, err)
}

func TestMatrixCommands(t *testing.T) {
	m1 := writeFile(t, "m1.yaml", m1Doc)

	out, err := run(t, "det", m1)
	require.NoError(t, err)
	assert.Contains(t, out, "(3-i)")

	out, err = run(t, "transpose", m1)
	require.NoError(t, err)
	assert.Contains(t, out, "[(-1-3i), (1+i)]")

	out, err = run(t, "cofactor", m1)
	require.NoError(t, err)
	assert.Contains(t, out, "[(-2+i), (-1-i)]")

	out, err = run(t, "power", m1, "0")
	require.NoError(t, err)
	assert.Contains(t, out, "[0, 0]")

	out, err = run(t, "solve", m1)
	require.NoError(t, err)
	assert.Contains(t, out, "x1 = 1")
	assert.Contains(t, out, "x2 = 0")

	out, err = run(t, "multiply", m1, m1)
	require.NoError(t, err)
	assert.Contains(t, out, "product")

	_, err = run(t, "power", m1, "two")
	require.Error(t, err)

	_, err = run(t, "det", m1, "--float")
	require.Error(t, err) // imaginary entries
}

func TestFloatCommands(t *testing.T) {
	sys := writeFile(t, "sys.toml", systemDoc)

	out, err := run(t, "solve", "--float", sys)
	require.NoError(t, err)
	assert.Contains(t, out, "x1 = 2")
	assert.Contains(t, out, "x3 = -2.5")

	out, err = run(t, "det", "--float", sys)
	require.NoError(t, err)
	assert.Contains(t, out, "6")
}

func TestSingularInverse(t *testing.T) {
	singular := writeFile(t, "s.yaml", "rows: 2\ncols: 2\nbody: [{re: 1}, {re: 2}, {re: 2}, {re: 4}]\n")

	out, err := run(t, "inverse", singular)
	require.NoError(t, err)
	assert.Contains(t, out, "no inverse")

	_, err = run(t, "inverse", "--float", singular)
	require.Error(t, err)
}

func TestCalcAndQuadratic(t *testing.T) {
	out, err := run(t, "calc", "--", "-1", "^", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "i")

	out, err = run(t, "quadratic", "--", "1", "2", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "x1 = (-1+2i)")
	assert.Contains(t, out, "x2 = (-1-2i)")

	_, err = run(t, "quadratic", "0", "1", "1")
	require.Error(t, err)
}

func TestAnalysisCommands(t *testing.T) {
	cfg := writeFile(t, "xmath.yaml", "sampler:\n  min: -5\n  max: 5\n  precision: 0.001\nplot:\n  samples: 20\n  height: 4\n  width: 30\n")

	out, err := run(t, "roots", "--config", cfg, "--coef", "1,1,0")
	require.NoError(t, err)
	assert.Contains(t, out, "x1 = -1")
	assert.Contains(t, out, "x2 = 0")

	out, err = run(t, "extrema", "--config", cfg, "--coef", "1,1,0", "--from", "-5", "--to", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "min (x=-0.5, y=-0.25)")
	assert.Contains(t, out, "max (x=-5, y=20)")
	assert.Contains(t, out, "x ∈ [-5, 1]")

	_, err = run(t, "roots")
	require.Error(t, err)
}

func TestNonFiniteConfig(t *testing.T) {
	sampler := writeFile(t, "xmath.yaml", "sampler:\n  precision: .nan\n")
	_, err := run(t, "roots", "--config", sampler, "--coef", "1,0")
	require.ErrorIs(t, err, config.ErrValue)

	eps := writeFile(t, "eps.yaml", "matrix:\n  epsilon: .inf\n")
	sys := writeFile(t, "sys.toml", systemDoc)
	_, err = run(t, "solve", "--float", "--config", eps, sys)
	require.ErrorIs(t, err, config.ErrValue)
}
