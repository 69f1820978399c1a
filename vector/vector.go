// SPDX-License-Identifier: MIT

// Package vector provides three-dimensional vector algebra: dot and cross
// products, the Euclidean norm and the cosine of the angle between vectors.
package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroVector is returned by CosAngle when either operand has zero length.
var ErrZeroVector = errors.New("vector: zero-length vector")

// Vector3D is a vector in ℝ³.
type Vector3D struct {
	X, Y, Z float64
}

// Dot returns a·b.
func Dot(a, b Vector3D) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the vector product a×b.
func Cross(a, b Vector3D) Vector3D {
	return Vector3D{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Norm returns |v|.
func Norm(v Vector3D) float64 {
	return math.Sqrt(Dot(v, v))
}

// CosAngle returns cos θ = a·b / (|a|·|b|).
// Errors: ErrZeroVector.
func CosAngle(a, b Vector3D) (float64, error) {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0, fmt.Errorf("CosAngle: %w", ErrZeroVector)
	}

	return Dot(a, b) / (na * nb), nil
}

// String renders the vector as "(x, y, z)".
func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
