package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

const tolerance float32 = 1e-4

func newRand(seed uint64) *rand.Rand {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return rand.New(src)
}

func randomRotation(rng *rand.Rand) Quaternion {
	q := Quaternion{
		float32(rng.NormFloat64()),
		float32(rng.NormFloat64()),
		float32(rng.NormFloat64()),
		float32(rng.NormFloat64()),
	}
	return q.Normalize()
}

func randomVec3(rng *rand.Rand, low, high float32) Vec3 {
	span := high - low
	return Vec3{
		low + rng.Float32()*span,
		low + rng.Float32()*span,
		low + rng.Float32()*span,
	}
}

// trs builds translate * rotate * scale the long way, by multiplying the
// individual matrices.
func trs(t Vec3, rotation Mat4, s Vec3) Mat4 {
	return NewMat4Translation(t).Mul(rotation).Mul(NewMat4Scale(s))
}

func toMgl(mt Mat4) mgl32.Mat4 {
	return mgl32.Mat4(mt.Data)
}

func fromMglQuat(q mgl32.Quat) Quaternion {
	return Quaternion{q.V.X(), q.V.Y(), q.V.Z(), q.W}
}

func assertMat4(t *testing.T, expected, actual Mat4, msgAndArgs ...interface{}) {
	t.Helper()
	if !expected.Compare(actual, tolerance) {
		assert.Fail(t, "matrices differ", "expected:\n%s\nactual:\n%s\n%v", expected, actual, msgAndArgs)
	}
}

// assertSameRotation accepts q and -q.
func assertSameRotation(t *testing.T, expected, actual Quaternion, msgAndArgs ...interface{}) {
	t.Helper()
	if !expected.Compare(actual, tolerance) && !expected.Compare(actual.Negate(), tolerance) {
		assert.Fail(t, "rotations differ", "expected %s, actual %s %v", expected, actual, msgAndArgs)
	}
}
