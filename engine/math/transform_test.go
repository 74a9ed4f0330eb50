package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformCreate(t *testing.T) {
	tr := TransformCreate()
	assert.True(t, tr.IsDirty)
	assertMat4(t, NewMat4Identity(), tr.GetLocal())
	assert.False(t, tr.IsDirty)
}

func TestTransformCachesLocal(t *testing.T) {
	tr := TransformFromPosition(NewVec3(1, 2, 3))
	first := tr.GetLocal()
	assert.Equal(t, NewVec3(1, 2, 3), ExtractTranslation(first))

	tr.Local.Set(0, 0, 42)
	assert.Equal(t, float32(42), tr.GetLocal().At(0, 0), "clean transform should not recompose")

	tr.Translate(NewVec3(1, 0, 0))
	assert.True(t, tr.IsDirty)
	assert.Equal(t, NewVec3(2, 2, 3), ExtractTranslation(tr.GetLocal()))
	assert.Equal(t, float32(1), tr.GetLocal().At(0, 0))
}

func TestTransformRotate(t *testing.T) {
	tr := TransformFromRotation(NewQuatFromAxisAngle(NewVec3Up(), DegToRad(30), false))
	tr.Rotate(NewQuatFromAxisAngle(NewVec3Up(), DegToRad(60), false))
	assertMat4(t, NewMat4EulerY(K_HALF_PI), tr.GetLocal())
}

func TestTransformFromMat4(t *testing.T) {
	mt := trs(NewVec3(-1, 0, 4), NewMat4EulerZ(0.7), NewVec3(1, 2, 3))
	tr := TransformFromMat4(mt)
	assertMat4(t, mt, tr.GetLocal())

	c := tr.Components()
	assert.True(t, c.Scale.Compare(NewVec3(1, 2, 3), tolerance))
}

func TestTransformComponentsNormalize(t *testing.T) {
	tr := TransformCreate()
	tr.SetRotation(Quaternion{0, 0, 0, 2})
	tr.SetScale(NewVec3(-2, 1, 1))
	c := tr.Components()
	assert.Equal(t, NewQuatIdentity(), c.Rotation)
	assert.Equal(t, NewVec3(2, 1, 1), c.Scale)
}

func TestTransformNilLocal(t *testing.T) {
	var tr *Transform
	assert.Equal(t, NewMat4Identity(), tr.GetLocal())
}
