// SPDX-License-Identifier: MIT
package matrixio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/xmath/internal/config"
	"github.com/katalvlaran/xmath/internal/matrixio"
	"github.com/katalvlaran/xmath/matrix"
	"github.com/stretchr/testify/require"
)

const m1YAML = `
rows: 2
cols: 2
body:
  - {re: -1, im: -3}
  - {re: 4, im: 2}
  - {re: 1, im: 1}
  - {re: -2, im: 1}
`

const realTOML = `
rows = 3
cols = 3
body = [
  {re = 1}, {re = 4}, {re = 2},
  {re = 2}, {re = -6}, {re = -2},
  {re = 1}, {re = 5}, {re = 2},
]
rhs = [{re = 1}, {re = 3}, {re = 2}]
`

func TestDecodeYAML(t *testing.T) {
	doc, err := matrixio.Decode([]byte(m1YAML), config.FormatYAML)
	require.NoError(t, err)

	m, err := doc.Complex()
	require.NoError(t, err)
	require.Equal(t, "(3-i)", m.Determinant().String())

	_, err = doc.Dense()
	require.ErrorIs(t, err, matrixio.ErrNotReal)
	_, err = doc.ComplexRHS()
	require.ErrorIs(t, err, matrixio.ErrNoRHS)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.toml")
	require.NoError(t, os.WriteFile(path, []byte(realTOML), 0o600))

	doc, err := matrixio.Load(path)
	require.NoError(t, err)

	d, err := doc.Dense()
	require.NoError(t, err)
	rhs, err := doc.RealRHS()
	require.NoError(t, err)
	x, err := matrix.Solve(d, rhs)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 1, -2.5}, x, 1e-12)

	crhs, err := doc.ComplexRHS()
	require.NoError(t, err)
	require.Len(t, crhs, 3)
}

func TestBadShape(t *testing.T) {
	doc, err := matrixio.Decode([]byte("rows: 2\ncols: 2\nbody: [{re: 1}]\n"), config.FormatYAML)
	require.NoError(t, err)
	_, err = doc.Complex()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
