package math

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func angleBetween(a, b Quaternion) float32 {
	d := kabs(a.Normalize().Dot(b.Normalize()))
	return 2 * float32(m.Acos(float64(Clamp(d, 0, 1))))
}

func scenarioEndpoints() (Mat4, Mat4) {
	a := NewMat4Identity()
	b := trs(NewVec3(1, 0, 0), NewMat4EulerY(K_HALF_PI), NewVec3(2, 1, 1))
	return a, b
}

func TestLerp(t *testing.T) {
	a, b := NewVec3(0, 10, -2), NewVec3(4, 0, 2)
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, NewVec3(1, 7.5, -1), Lerp(a, b, 0.25))
}

func TestInterpolateHalfway(t *testing.T) {
	a, b := scenarioEndpoints()
	c := Decompose(Interpolate(a, b, 0.5, MaskAll))

	s, co := float32(m.Sin(m.Pi/8)), float32(m.Cos(m.Pi/8))
	assert.True(t, c.Translation.Compare(NewVec3(0.5, 0, 0), tolerance), "translation %s", c.Translation)
	assert.True(t, c.Scale.Compare(NewVec3(1.5, 1, 1), tolerance), "scale %s", c.Scale)
	assert.True(t, c.Rotation.Compare(Quaternion{0, s, 0, co}, tolerance), "rotation %s", c.Rotation)
}

func TestInterpolateBoundaries(t *testing.T) {
	pairs := [][2]Mat4{}
	a, b := scenarioEndpoints()
	pairs = append(pairs, [2]Mat4{a, b})
	pairs = append(pairs, [2]Mat4{
		trs(NewVec3(-2, 3, 1), NewMat4EulerX(DegToRad(30)), NewVec3(1, 2, 3)),
		trs(NewVec3(5, 5, 5), NewMat4EulerZ(DegToRad(-150)).Mul(NewMat4EulerX(1)), NewVec3(0.5, 0.5, 4)),
	})

	rng := newRand(9)
	for i := 0; i < 50; i++ {
		pairs = append(pairs, [2]Mat4{
			trs(randomVec3(rng, -5, 5), randomRotation(rng).ToMat4(), randomVec3(rng, 0.2, 3)),
			trs(randomVec3(rng, -5, 5), randomRotation(rng).ToMat4(), randomVec3(rng, 0.2, 3)),
		})
	}

	for i, p := range pairs {
		assertMat4(t, p[0], Interpolate(p[0], p[1], 0, MaskAll), "pair %d at t=0", i)
		assertMat4(t, p[1], Interpolate(p[0], p[1], 1, MaskAll), "pair %d at t=1", i)
	}
}

func TestSlerpMonotonic(t *testing.T) {
	tests := []struct {
		name  string
		start Quaternion
		end   Quaternion
	}{
		{"identity to 170 about Y", NewQuatIdentity(), NewQuatFromAxisAngle(NewVec3Up(), DegToRad(170), false)},
		{"arbitrary", NewQuatFromEuler(10, 20, 30), NewQuatFromEuler(-80, 140, 5)},
		{"small", NewQuatIdentity(), NewQuatFromAxisAngle(NewVec3Right(), DegToRad(10), false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := float32(-1)
			for step := 0; step <= 20; step++ {
				ft := float32(step) / 20
				angle := angleBetween(tt.start, Slerp(tt.start, tt.end, ft))
				require.Greater(t, angle, prev, "t=%v", ft)
				prev = angle
			}
		})
	}
}

func TestSlerpConstantSpeed(t *testing.T) {
	end := NewQuatFromAxisAngle(NewVec3(0, 1, 1).Normalize(), DegToRad(120), false)
	for step := 1; step <= 10; step++ {
		ft := float32(step) / 10
		angle := angleBetween(NewQuatIdentity(), Slerp(NewQuatIdentity(), end, ft))
		assert.InDelta(t, 120*ft, RadToDeg(angle), 1e-2, "t=%v", ft)
	}
}

func TestSlerpShortestArc(t *testing.T) {
	start := NewQuatIdentity()
	// 60 degrees about Z, stored with the opposite sign.
	end := NewQuatFromAxisAngle(NewVec3Forward(), DegToRad(60), false).Negate()
	require.Less(t, start.Dot(end), float32(0))

	prev := start
	for step := 0; step <= 20; step++ {
		ft := float32(step) / 20
		q := Slerp(start, end, ft)
		assert.GreaterOrEqual(t, start.Dot(q), float32(0), "t=%v", ft)
		assert.Greater(t, prev.Dot(q), float32(0.99), "jump at t=%v", ft)
		prev = q
	}

	mid := Slerp(start, end, 0.5)
	assert.InDelta(t, 30, RadToDeg(angleBetween(start, mid)), 1e-2)
	assertSameRotation(t, NewQuatFromAxisAngle(NewVec3Forward(), DegToRad(30), false), mid)
}

func TestSlerpNegatesAllComponents(t *testing.T) {
	start := NewQuatFromEuler(0, 10, 0)
	end := NewQuatFromEuler(0, 100, 0)
	assertSameRotation(t, Slerp(start, end, 0.3), Slerp(start, end.Negate(), 0.3))
}

func TestSlerpNearParallelIsLinear(t *testing.T) {
	start := NewQuatIdentity()
	end := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(0.5), false)
	require.Greater(t, start.Dot(end), SlerpLinearThreshold)

	q := Slerp(start, end, 0.25)
	expected := Quaternion{
		0.75*start.X + 0.25*end.X,
		0.75*start.Y + 0.25*end.Y,
		0.75*start.Z + 0.25*end.Z,
		0.75*start.W + 0.25*end.W,
	}
	assert.True(t, q.Compare(expected, 1e-7), "got %s", q)

	// identical rotations stay put
	assert.True(t, Slerp(end, end, 0.7).Compare(end, 1e-6))
}

func TestSlerpMatchesMathgl(t *testing.T) {
	rng := newRand(21)
	for i := 0; i < 100; i++ {
		a, b := randomRotation(rng), randomRotation(rng)
		ft := rng.Float32()
		ma := mgl32.Quat{W: a.W, V: mgl32.Vec3{a.X, a.Y, a.Z}}
		mb := mgl32.Quat{W: b.W, V: mgl32.Vec3{b.X, b.Y, b.Z}}
		if a.Dot(b) < 0 {
			mb = mgl32.Quat{W: -b.W, V: mgl32.Vec3{-b.X, -b.Y, -b.Z}}
		}
		expected := fromMglQuat(mgl32.QuatSlerp(ma, mb, ft))
		assertSameRotation(t, expected.Normalize(), Slerp(a, b, ft).Normalize(), "case %d", i)
	}
}

func TestInterpolateMask(t *testing.T) {
	a, b := scenarioEndpoints()
	a = trs(NewVec3(0, 2, 0), NewMat4EulerX(0.3), NewVec3(3, 3, 3))
	ca, cb := Decompose(a), Decompose(b)

	for step := 0; step <= 10; step++ {
		ft := float32(step) / 10

		c := Decompose(Interpolate(a, b, ft, InterpolationMask{Translate: true, Rotate: false, Scale: true}))
		assertSameRotation(t, ca.Rotation, c.Rotation, "rotation frozen at t=%v", ft)
		assert.True(t, c.Translation.Compare(Lerp(ca.Translation, cb.Translation, ft), tolerance))

		c = Decompose(Interpolate(a, b, ft, InterpolationMask{Translate: false, Rotate: true, Scale: true}))
		assert.True(t, c.Translation.Compare(ca.Translation, tolerance), "translation frozen at t=%v", ft)

		c = Decompose(Interpolate(a, b, ft, InterpolationMask{Translate: true, Rotate: true, Scale: false}))
		assert.True(t, c.Scale.Compare(ca.Scale, tolerance), "scale frozen at t=%v", ft)
	}

	// nothing enabled gives A back
	assertMat4(t, a, Interpolate(a, b, 0.6, InterpolationMask{}))
}

func TestInterpolateScaleIsLinear(t *testing.T) {
	a := NewMat4Scale(NewVec3(1, 1, 1))
	b := NewMat4Scale(NewVec3(100, 1, 1))
	c := Decompose(Interpolate(a, b, 0.5, MaskAll))
	assert.InDelta(t, 50.5, c.Scale.X, 1e-3)
}

func TestInterpolateExtrapolates(t *testing.T) {
	a := NewMat4Translation(NewVec3(0, 0, 0))
	b := NewMat4Translation(NewVec3(2, 0, 0))
	c := Interpolate(a, b, 1.5, MaskAll)
	assert.True(t, ExtractTranslation(c).Compare(NewVec3(3, 0, 0), tolerance))
}
