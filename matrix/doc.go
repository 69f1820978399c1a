// Package matrix provides two row-major matrix types and the linear-algebra
// kernels built on them.
//
//   - Dense is a mutable float64 matrix behind the Matrix interface, with
//     Add, Sub, Mul, Transpose, Scale, MatVec, Determinant, Cofactor,
//     Adjugate, Inverse (Gauss–Jordan), Pow and Solve (Cramer's rule).
//   - Complex is an immutable matrix of symbolic im.Number values whose
//     kernels are expressed purely through the im operators, so results
//     stay exact and canonical.
//
// Both types share the shape validators and the cofactor expansion kernel.
// Structural failures are reported as wrapped sentinels (match them with
// errors.Is); undefined answers of the symbolic matrix come back as ok == false.
//
// Example:
//
//	m1, _ := matrix.NewComplex(2, 2, []im.Number{
//		im.Complex(-1, -3), im.Complex(4, 2),
//		im.Complex(1, 1), im.Complex(-2, 1),
//	})
//	fmt.Println(m1.Determinant()) // (3-i)
package matrix
