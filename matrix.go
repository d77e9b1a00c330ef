package glmath

import "github.com/chewxy/math32"

// Matrix4x4 represents a 4x4 transformation matrix of float32 values.
//
// Values are stored in column-major order, the layout expected by
// uniformMatrix4fv and WGSL mat4x4<f32>:
//
//	| 0  4  8 12 |
//	| 1  5  9 13 |
//	| 2  6 10 14 |
//	| 3  7 11 15 |
//
// Element (row, col) is stored at index col*4+row, so the translation of an
// affine transform lives at indices 12, 13 and 14.
//
// Matrix4x4 is an immutable value. The backing array is unexported and every
// operation returns a new matrix, so values can be shared between fluent
// chains without aliasing.
//
// Products follow the column-vector convention: m.MulByMatrix4x4(n) is the
// mathematical product m·n, which applies n first and m second.
type Matrix4x4 struct {
	v [16]float32
}

// Identity returns the identity matrix.
func Identity() Matrix4x4 {
	return Matrix4x4{v: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Matrix4x4FromValues creates a matrix from 16 values in column-major order.
func Matrix4x4FromValues(values [16]float32) Matrix4x4 {
	return Matrix4x4{v: values}
}

// Matrix4x4FromRows creates a matrix from 16 values listed row by row,
// which reads like the matrix written on paper.
func Matrix4x4FromRows(rows [16]float32) Matrix4x4 {
	return Matrix4x4{v: rows}.Transpose()
}

// Translation creates a translation matrix.
func Translation(tx, ty, tz float32) Matrix4x4 {
	return Matrix4x4{v: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		tx, ty, tz, 1,
	}}
}

// Scaling creates a scaling matrix.
func Scaling(sx, sy, sz float32) Matrix4x4 {
	return Matrix4x4{v: [16]float32{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}}
}

// RotationX creates a rotation around the x-axis (angle in radians).
// Positive angles rotate y towards z.
func RotationX(radian float32) Matrix4x4 {
	sin, cos := math32.Sin(radian), math32.Cos(radian)
	return Matrix4x4{v: [16]float32{
		1, 0, 0, 0,
		0, cos, sin, 0,
		0, -sin, cos, 0,
		0, 0, 0, 1,
	}}
}

// RotationY creates a rotation around the y-axis (angle in radians).
// Positive angles rotate z towards x.
func RotationY(radian float32) Matrix4x4 {
	sin, cos := math32.Sin(radian), math32.Cos(radian)
	return Matrix4x4{v: [16]float32{
		cos, 0, -sin, 0,
		0, 1, 0, 0,
		sin, 0, cos, 0,
		0, 0, 0, 1,
	}}
}

// RotationZ creates a rotation around the z-axis (angle in radians).
// Positive angles rotate x towards y.
func RotationZ(radian float32) Matrix4x4 {
	sin, cos := math32.Sin(radian), math32.Cos(radian)
	return Matrix4x4{v: [16]float32{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// RotationAround creates a rotation of radian around axis.
// The axis must be normalized; see QuaternionRotationAround.
func RotationAround(axis Vector3, radian float32) Matrix4x4 {
	return QuaternionRotationAround(axis, radian).ToRotationMatrix4()
}

// LookAt creates a view matrix for a camera at eye looking at target.
//
// The camera basis is built as z = normalize(eye - target),
// x = normalize(up × z), y = z × x, so the camera looks down its -z axis.
// If up is parallel to the view direction, x is the zero vector and the
// resulting matrix is singular.
func LookAt(eye, target, up Vector3) Matrix4x4 {
	z := eye.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Matrix4x4{v: [16]float32{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-eye.Dot(x), -eye.Dot(y), -eye.Dot(z), 1,
	}}
}

// MulByMatrix4x4 returns the product m·other. The receiver and argument are
// not modified.
func (m Matrix4x4) MulByMatrix4x4(other Matrix4x4) Matrix4x4 {
	var r Matrix4x4
	for col := range 4 {
		for row := range 4 {
			var sum float32
			for k := range 4 {
				sum += m.v[k*4+row] * other.v[col*4+k]
			}
			r.v[col*4+row] = sum
		}
	}
	return r
}

// Translate returns m·Translation(tx, ty, tz).
func (m Matrix4x4) Translate(tx, ty, tz float32) Matrix4x4 {
	return m.MulByMatrix4x4(Translation(tx, ty, tz))
}

// Scale returns m·Scaling(sx, sy, sz).
func (m Matrix4x4) Scale(sx, sy, sz float32) Matrix4x4 {
	return m.MulByMatrix4x4(Scaling(sx, sy, sz))
}

// RotateX returns m·RotationX(radian).
func (m Matrix4x4) RotateX(radian float32) Matrix4x4 {
	return m.MulByMatrix4x4(RotationX(radian))
}

// RotateY returns m·RotationY(radian).
func (m Matrix4x4) RotateY(radian float32) Matrix4x4 {
	return m.MulByMatrix4x4(RotationY(radian))
}

// RotateZ returns m·RotationZ(radian).
func (m Matrix4x4) RotateZ(radian float32) Matrix4x4 {
	return m.MulByMatrix4x4(RotationZ(radian))
}

// RotateAround returns m·RotationAround(axis, radian).
// The axis must be normalized.
func (m Matrix4x4) RotateAround(axis Vector3, radian float32) Matrix4x4 {
	return m.MulByMatrix4x4(RotationAround(axis, radian))
}

// Transpose returns the transposed matrix.
func (m Matrix4x4) Transpose() Matrix4x4 {
	v := m.v
	return Matrix4x4{v: [16]float32{
		v[0], v[4], v[8], v[12],
		v[1], v[5], v[9], v[13],
		v[2], v[6], v[10], v[14],
		v[3], v[7], v[11], v[15],
	}}
}

// minors holds the 2x2 sub-determinants shared by Determinant and Inverse.
// s* span rows 0-1, c* span rows 2-3.
type minors struct {
	s0, s1, s2, s3, s4, s5 float32
	c0, c1, c2, c3, c4, c5 float32
}

func (m Matrix4x4) minors() minors {
	v := m.v
	return minors{
		s0: v[0]*v[5] - v[1]*v[4],
		s1: v[0]*v[9] - v[1]*v[8],
		s2: v[0]*v[13] - v[1]*v[12],
		s3: v[4]*v[9] - v[5]*v[8],
		s4: v[4]*v[13] - v[5]*v[12],
		s5: v[8]*v[13] - v[9]*v[12],

		c5: v[10]*v[15] - v[11]*v[14],
		c4: v[6]*v[15] - v[7]*v[14],
		c3: v[6]*v[11] - v[7]*v[10],
		c2: v[2]*v[15] - v[3]*v[14],
		c1: v[2]*v[11] - v[3]*v[10],
		c0: v[2]*v[7] - v[3]*v[6],
	}
}

func (n minors) determinant() float32 {
	return n.s0*n.c5 - n.s1*n.c4 + n.s2*n.c3 + n.s3*n.c2 - n.s4*n.c1 + n.s5*n.c0
}

// Determinant returns the determinant of the matrix.
func (m Matrix4x4) Determinant() float32 {
	return m.minors().determinant()
}

// Inverse returns the inverse matrix, computed from the adjugate.
//
// There is no singularity check: a singular matrix divides by a zero
// determinant and yields Inf or NaN entries.
func (m Matrix4x4) Inverse() Matrix4x4 {
	v := m.v
	n := m.minors()
	inv := 1 / n.determinant()

	// a<row><col> naming for readability; v is column-major.
	a00, a10, a20, a30 := v[0], v[1], v[2], v[3]
	a01, a11, a21, a31 := v[4], v[5], v[6], v[7]
	a02, a12, a22, a32 := v[8], v[9], v[10], v[11]
	a03, a13, a23, a33 := v[12], v[13], v[14], v[15]

	return Matrix4x4FromRows([16]float32{
		(a11*n.c5 - a12*n.c4 + a13*n.c3) * inv,
		(-a01*n.c5 + a02*n.c4 - a03*n.c3) * inv,
		(a31*n.s5 - a32*n.s4 + a33*n.s3) * inv,
		(-a21*n.s5 + a22*n.s4 - a23*n.s3) * inv,

		(-a10*n.c5 + a12*n.c2 - a13*n.c1) * inv,
		(a00*n.c5 - a02*n.c2 + a03*n.c1) * inv,
		(-a30*n.s5 + a32*n.s2 - a33*n.s1) * inv,
		(a20*n.s5 - a22*n.s2 + a23*n.s1) * inv,

		(a10*n.c4 - a11*n.c2 + a13*n.c0) * inv,
		(-a00*n.c4 + a01*n.c2 - a03*n.c0) * inv,
		(a30*n.s4 - a31*n.s2 + a33*n.s0) * inv,
		(-a20*n.s4 + a21*n.s2 - a23*n.s0) * inv,

		(-a10*n.c3 + a11*n.c1 - a12*n.c0) * inv,
		(a00*n.c3 - a01*n.c1 + a02*n.c0) * inv,
		(-a30*n.s3 + a31*n.s1 - a32*n.s0) * inv,
		(a20*n.s3 - a21*n.s1 + a22*n.s0) * inv,
	})
}

// Normal returns the normal matrix, the inverse transpose of the upper 3x3
// block, in column-major order for a mat3 uniform.
func (m Matrix4x4) Normal() [9]float32 {
	inv := m.Inverse().v
	var n [9]float32
	for col := range 3 {
		for row := range 3 {
			// transpose: element (row, col) of the result is inv(col, row)
			n[col*3+row] = inv[row*4+col]
		}
	}
	return n
}

// TransformPoint applies the matrix to a point (w=1).
// When the resulting w is neither 0 nor 1 the result is divided by w.
func (m Matrix4x4) TransformPoint(p Vector3) Vector3 {
	x, y, z, w := m.TransformHomogeneous(p.X, p.Y, p.Z, 1)
	if w != 0 && w != 1 {
		return Vector3{X: x / w, Y: y / w, Z: z / w}
	}
	return Vector3{X: x, Y: y, Z: z}
}

// TransformVector applies the matrix to a direction (w=0, no translation).
func (m Matrix4x4) TransformVector(d Vector3) Vector3 {
	x, y, z, _ := m.TransformHomogeneous(d.X, d.Y, d.Z, 0)
	return Vector3{X: x, Y: y, Z: z}
}

// TransformHomogeneous applies the matrix to the homogeneous point (x, y, z, w)
// and returns all four components without a perspective divide.
func (m Matrix4x4) TransformHomogeneous(x, y, z, w float32) (float32, float32, float32, float32) {
	v := m.v
	return v[0]*x + v[4]*y + v[8]*z + v[12]*w,
		v[1]*x + v[5]*y + v[9]*z + v[13]*w,
		v[2]*x + v[6]*y + v[10]*z + v[14]*w,
		v[3]*x + v[7]*y + v[11]*z + v[15]*w
}

// At returns the element at (row, col).
func (m Matrix4x4) At(row, col int) float32 {
	return m.v[col*4+row]
}

// Values returns a copy of the 16 values in column-major order.
// This is the layout uploaded as a mat4 uniform.
func (m Matrix4x4) Values() [16]float32 {
	return m.v
}

// Float64 returns the values widened to float64, in column-major order.
func (m Matrix4x4) Float64() [16]float64 {
	var r [16]float64
	for i, f := range m.v {
		r[i] = float64(f)
	}
	return r
}

// Approx returns true if all elements of m and other differ by less than epsilon.
func (m Matrix4x4) Approx(other Matrix4x4, epsilon float32) bool {
	for i := range m.v {
		if math32.Abs(m.v[i]-other.v[i]) >= epsilon {
			return false
		}
	}
	return true
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix4x4) IsIdentity() bool {
	return m == Identity()
}

// String returns the column-major values formatted as "Matrix4x4(v0, ..., v15)".
func (m Matrix4x4) String() string {
	return formatValues("Matrix4x4", m.v[:]...)
}
