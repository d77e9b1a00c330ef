package glmath

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to the math types of other Go graphics packages.
//
// mgl32 shares the column-major layout and converts without reordering.
// f32.Mat4 is row major, so matrix conversions transpose.
// r3 is double precision and meant for analysis code, not for upload.

// F32 converts the vector to an f32.Vec3.
func (v Vector3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Vector3FromF32 converts an f32.Vec3 to a Vector3.
func Vector3FromF32(v f32.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Mgl32 converts the vector to an mgl32.Vec3.
func (v Vector3) Mgl32() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Vector3FromMgl32 converts an mgl32.Vec3 to a Vector3.
func Vector3FromMgl32(v mgl32.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// R3 converts the vector to a double precision r3.Vec.
func (v Vector3) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Vector3FromR3 converts an r3.Vec to a Vector3, rounding to float32.
func Vector3FromR3(v r3.Vec) Vector3 {
	return Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Mgl32 converts the quaternion to an mgl32.Quat.
func (q Quaternion) Mgl32() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// QuaternionFromMgl32 converts an mgl32.Quat to a Quaternion.
func QuaternionFromMgl32(q mgl32.Quat) Quaternion {
	return Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// Mgl32 converts the matrix to an mgl32.Mat4.
func (m Matrix4x4) Mgl32() mgl32.Mat4 {
	return mgl32.Mat4(m.v)
}

// Matrix4x4FromMgl32 converts an mgl32.Mat4 to a Matrix4x4.
func Matrix4x4FromMgl32(m mgl32.Mat4) Matrix4x4 {
	return Matrix4x4{v: [16]float32(m)}
}

// F32 converts the matrix to a row-major f32.Mat4.
func (m Matrix4x4) F32() f32.Mat4 {
	return f32.Mat4(m.Transpose().v)
}

// Matrix4x4FromF32 converts a row-major f32.Mat4 to a Matrix4x4.
func Matrix4x4FromF32(m f32.Mat4) Matrix4x4 {
	return Matrix4x4FromRows([16]float32(m))
}
