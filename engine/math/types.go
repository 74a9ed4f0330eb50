package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are stored column-major: Data[col*4+row]. Columns 0, 1 and 2 are
 * the transformed X, Y and Z basis axes, column 3 holds the translation.
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief The decomposed form of an affine matrix. Scale is never negative;
 * skew and mirroring cannot be expressed and are lost on decomposition.
 */
type TransformComponents struct {
	/** @brief The translation, read from the fourth column. */
	Translation Vec3
	/** @brief The rotation as a unit quaternion. */
	Rotation Quaternion
	/** @brief The length of each basis axis. */
	Scale Vec3
}

// InterpolationMask selects which channels follow the interpolation parameter.
// A disabled channel is frozen to the start transform's value.
type InterpolationMask struct {
	Translate bool `toml:"translate"`
	Rotate    bool `toml:"rotate"`
	Scale     bool `toml:"scale"`
}

// MaskAll interpolates every channel.
var MaskAll = InterpolationMask{Translate: true, Rotate: true, Scale: true}

// Segment is a line between two points in 3D space.
type Segment struct {
	From Vec3
	To   Vec3
}

/**
 * @brief Represents the transform of an object in the world. The properties
 * of this should not be edited directly, but done via the functions in
 * transform.go to ensure proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Mat4
}
