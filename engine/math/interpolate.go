package math

// Above this cosine the two rotations are close enough that sin(theta) is
// numerically unreliable and slerp falls back to linear weights.
const SlerpLinearThreshold float32 = 0.9999

// Lerp linearly interpolates the vectors: (1-t)*start + t*end.
func Lerp(start, end Vec3, t float32) Vec3 {
	return Vec3{
		LerpScalar(start.X, end.X, t),
		LerpScalar(start.Y, end.Y, t),
		LerpScalar(start.Z, end.Z, t),
	}
}

/**
 * @brief Calculates spherical linear interpolation between two quaternions
 * along the shorter arc.
 *
 * @param start The rotation at t = 0.
 * @param end The rotation at t = 1.
 * @param t The interpolation parameter, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion. It is not renormalized.
 */
func Slerp(start, end Quaternion, t float32) Quaternion {
	cos := start.Dot(end)

	// q and -q are the same rotation; flipping the whole of end keeps the
	// rotation and takes the short way around.
	if cos < 0 {
		end = end.Negate()
		cos = -cos
	}

	var kStart, kEnd float32
	if cos > SlerpLinearThreshold {
		kStart = 1 - t
		kEnd = t
	} else {
		sin := ksqrt(1 - cos*cos)
		angle := katan2(sin, cos)
		kStart = ksin((1-t)*angle) / sin
		kEnd = ksin(t*angle) / sin
	}

	return Quaternion{
		start.X*kStart + end.X*kEnd,
		start.Y*kStart + end.Y*kEnd,
		start.Z*kStart + end.Z*kEnd,
		start.W*kStart + end.W*kEnd,
	}
}

// Slerp is a method form of Slerp.
func (q Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	return Slerp(q, other, t)
}

// InterpolateComponents blends two decomposed transforms. Channels disabled
// in the mask keep the start value. t is not clamped; outside [0, 1]
// translation and scale extrapolate.
func InterpolateComponents(start, end TransformComponents, t float32, mask InterpolationMask) TransformComponents {
	out := start
	if mask.Translate {
		out.Translation = Lerp(start.Translation, end.Translation, t)
	}
	if mask.Rotate {
		out.Rotation = Slerp(start.Rotation, end.Rotation, t)
	}
	if mask.Scale {
		out.Scale = Lerp(start.Scale, end.Scale, t)
	}
	return out
}

// Interpolate decomposes both matrices, interpolates each channel and
// recomposes the result.
func Interpolate(start, end Mat4, t float32, mask InterpolationMask) Mat4 {
	c := InterpolateComponents(Decompose(start), Decompose(end), t, mask)
	return c.Mat4()
}
