package math

// ExtractTranslation returns the fourth column of the matrix.
func ExtractTranslation(mt Mat4) Vec3 {
	return mt.Column(3)
}

// SetTranslation overwrites the fourth column of the matrix.
func SetTranslation(mt *Mat4, translation Vec3) {
	mt.SetColumn(3, translation)
}

// ExtractScale returns the length of each basis axis. Columns are assumed to
// be orthogonal; with skew present the result is an approximation.
func ExtractScale(mt Mat4) Vec3 {
	return Vec3{
		mt.Column(0).Length(),
		mt.Column(1).Length(),
		mt.Column(2).Length(),
	}
}

// ExtractRotation returns the rotation of the matrix as a unit quaternion
// with a non-negative w.
//
// The magnitude of every component follows from the diagonal of the
// normalized basis, e.g. |qx| = sqrt(1 + x.x - y.y - z.z) / 2, with the
// radicand clamped at zero. The square root amplifies rounding for small
// components, so only the largest one (at least 0.5, since the radicands
// always sum to 4) is taken from it. The others come from the off-diagonal
// entries:
//
//	y.z - z.y = 4 w qx    x.y + y.x = 4 qx qy
//	z.x - x.z = 4 w qy    z.x + x.z = 4 qx qz
//	x.y - y.x = 4 w qz    y.z + z.y = 4 qy qz
//
// which carries the sign of each axis component relative to w.
func ExtractRotation(mt Mat4) Quaternion {
	x := unitAxis(mt.Column(0))
	y := unitAxis(mt.Column(1))
	z := unitAxis(mt.Column(2))

	w := ksqrt(max(0, 1+x.X+y.Y+z.Z)) / 2
	qx := ksqrt(max(0, 1+x.X-y.Y-z.Z)) / 2
	qy := ksqrt(max(0, 1-x.X+y.Y-z.Z)) / 2
	qz := ksqrt(max(0, 1-x.X-y.Y+z.Z)) / 2

	var q Quaternion
	switch {
	case w >= qx && w >= qy && w >= qz:
		f := 1 / (4 * w)
		q = Quaternion{(y.Z - z.Y) * f, (z.X - x.Z) * f, (x.Y - y.X) * f, w}
	case qx >= qy && qx >= qz:
		f := 1 / (4 * qx)
		q = Quaternion{qx, (x.Y + y.X) * f, (z.X + x.Z) * f, (y.Z - z.Y) * f}
	case qy >= qz:
		f := 1 / (4 * qy)
		q = Quaternion{(x.Y + y.X) * f, qy, (y.Z + z.Y) * f, (z.X - x.Z) * f}
	default:
		f := 1 / (4 * qz)
		q = Quaternion{(z.X + x.Z) * f, (y.Z + z.Y) * f, qz, (x.Y - y.X) * f}
	}

	if q.W < 0 {
		q = q.Negate()
	}
	return q.Normalize()
}

// unitAxis normalizes a basis axis. A collapsed axis is left as is, which
// keeps its entries out of the trace instead of turning them into NaN.
func unitAxis(v Vec3) Vec3 {
	if v.LengthSquared() == 0 {
		return v
	}
	return v.Normalize()
}

// Decompose splits an affine matrix into translation, rotation and scale.
// Skew and negative scale are not representable and are discarded, and the
// bottom row is ignored.
func Decompose(mt Mat4) TransformComponents {
	return TransformComponents{
		Translation: ExtractTranslation(mt),
		Rotation:    ExtractRotation(mt),
		Scale:       ExtractScale(mt),
	}
}
