package math

import "fmt"

// RotateVec3 rotates v by the quaternion using the sandwich product
// q * (v, 0) * q^-1. The quaternion must be unit length, in which case the
// inverse is the conjugate.
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	p := Quaternion{v.X, v.Y, v.Z, 0}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3{r.X, r.Y, r.Z}
}

// Recompose builds an affine matrix that scales, then rotates, then
// translates. The rotation is normalized first, so slightly denormalized
// quaternions are accepted. Scale is taken by absolute value: mirroring
// cannot be carried by the components.
func Recompose(translation Vec3, rotation Quaternion, scale Vec3) Mat4 {
	r := rotation.Normalize()
	s := scale.Abs()

	out_matrix := NewMat4Identity()
	out_matrix.SetColumn(0, r.RotateVec3(NewVec3Right()).MulScalar(s.X))
	out_matrix.SetColumn(1, r.RotateVec3(NewVec3Up()).MulScalar(s.Y))
	out_matrix.SetColumn(2, r.RotateVec3(NewVec3Forward()).MulScalar(s.Z))
	out_matrix.SetColumn(3, translation)
	return out_matrix
}

// Mat4 recomposes the components into a matrix.
func (c TransformComponents) Mat4() Mat4 {
	return Recompose(c.Translation, c.Rotation, c.Scale)
}

// Compare checks every channel against tolerance. Rotations q and -q are
// treated as equal.
func (c TransformComponents) Compare(other TransformComponents, tolerance float32) bool {
	if !c.Translation.Compare(other.Translation, tolerance) || !c.Scale.Compare(other.Scale, tolerance) {
		return false
	}
	return c.Rotation.Compare(other.Rotation, tolerance) ||
		c.Rotation.Compare(other.Rotation.Negate(), tolerance)
}

func (c TransformComponents) String() string {
	axis, angle := c.Rotation.AxisAngle()
	return fmt.Sprintf("translation=%s rotation=%s (%.2f deg about %s) scale=%s",
		c.Translation, c.Rotation, RadToDeg(angle), axis, c.Scale)
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 */
func (q Quaternion) ToMat4() Mat4 {
	return Recompose(NewVec3Zero(), q, NewVec3One())
}
