package math

import "testing"

var benchSink Mat4

func BenchmarkDecompose(b *testing.B) {
	mt := trs(NewVec3(1, 2, 3), NewQuatFromEuler(10, 20, 30).ToMat4(), NewVec3(1, 2, 3))
	var c TransformComponents
	for i := 0; i < b.N; i++ {
		c = Decompose(mt)
	}
	benchSink = c.Mat4()
}

func BenchmarkRecompose(b *testing.B) {
	q := NewQuatFromEuler(10, 20, 30)
	for i := 0; i < b.N; i++ {
		benchSink = Recompose(NewVec3(1, 2, 3), q, NewVec3(1, 2, 3))
	}
}

func BenchmarkInterpolate(b *testing.B) {
	start, end := scenarioEndpoints()
	for i := 0; i < b.N; i++ {
		benchSink = Interpolate(start, end, float32(i%100)/100, MaskAll)
	}
}

func BenchmarkDeterminant(b *testing.B) {
	mt := trs(NewVec3(1, 2, 3), NewMat4EulerX(0.3), NewVec3(1, 2, 3))
	var d float32
	for i := 0; i < b.N; i++ {
		d = Determinant(mt)
	}
	benchSink.Data[0] = d
}
