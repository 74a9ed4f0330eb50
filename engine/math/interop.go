package math

import "golang.org/x/image/math/f32"

// ToF32 returns the matrix in the row-major layout of f32.Mat4.
func (mt Mat4) ToF32() f32.Mat4 {
	var out f32.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[4*row+col] = mt.At(row, col)
		}
	}
	return out
}

// NewMat4FromF32 converts a row-major f32.Mat4.
func NewMat4FromF32(in f32.Mat4) Mat4 {
	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out_matrix.Set(row, col, in[4*row+col])
		}
	}
	return out_matrix
}

func (v Vec3) ToF32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func NewVec3FromF32(in f32.Vec3) Vec3 {
	return Vec3{in[0], in[1], in[2]}
}

func (q Quaternion) ToF32() f32.Vec4 {
	return f32.Vec4{q.X, q.Y, q.Z, q.W}
}

func NewQuatFromF32(in f32.Vec4) Quaternion {
	return Quaternion{in[0], in[1], in[2], in[3]}
}
