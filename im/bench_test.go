package im_test

import (
	"testing"

	"github.com/katalvlaran/xmath/im"
)

func BenchmarkMulSums(b *testing.B) {
	x := im.Complex(-1, -3)
	y := im.Complex(4, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = im.Mul(x, y)
	}
}

func BenchmarkPowSum(b *testing.B) {
	x := im.Complex(1, 2)
	e := im.RealInt(16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = im.Pow(x, e)
	}
}
