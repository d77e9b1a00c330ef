package glmath

import "github.com/chewxy/math32"

// slerpThreshold is the cosine above which Slerp falls back to normalized
// linear interpolation; sin(θ) is too close to zero to divide by.
const slerpThreshold = 0.9995

// Quaternion represents a rotation as X*i + Y*j + Z*k + W.
//
// Rotation quaternions are expected to have unit magnitude. The type does not
// enforce this; operations on non-unit quaternions produce defined but
// geometrically meaningless results.
type Quaternion struct {
	X, Y, Z, W float32
}

// IdentityQuaternion returns the quaternion representing no rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionRotationAround returns the rotation of radian around axis.
//
// The axis must already be normalized. It is used as given: a non-unit axis
// yields a non-unit quaternion and a skewed rotation, not an error.
func QuaternionRotationAround(axis Vector3, radian float32) Quaternion {
	half := radian * 0.5
	s := math32.Sin(half)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math32.Cos(half),
	}
}

// Mul returns the Hamilton product q * r.
// Rotating by the result applies r first, then q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the quaternion with the vector part negated.
// For a unit quaternion this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse, conjugate / |q|².
// The zero quaternion has no inverse and produces NaN components.
func (q Quaternion) Inverse() Quaternion {
	n := q.Dot(q)
	return Quaternion{X: -q.X / n, Y: -q.Y / n, Z: -q.Z / n, W: q.W / n}
}

// Negate returns -q, which represents the same rotation as q.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Dot returns the four-dimensional dot product of two quaternions.
func (q Quaternion) Dot(r Quaternion) float32 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Magnitude returns the norm of the quaternion.
func (q Quaternion) Magnitude() float32 {
	return math32.Sqrt(q.Dot(q))
}

// Normalize returns the quaternion scaled to unit magnitude.
// The zero quaternion normalizes to the identity rotation.
func (q Quaternion) Normalize() Quaternion {
	m := q.Magnitude()
	if m == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{X: q.X / m, Y: q.Y / m, Z: q.Z / m, W: q.W / m}
}

// ToRotationMatrix4 returns the rotation as a 4x4 matrix with no translation.
func (q Quaternion) ToRotationMatrix4() Matrix4x4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return Matrix4x4{v: [16]float32{
		1 - (yy + zz), xy + wz, xz - wy, 0,
		xy - wz, 1 - (xx + zz), yz + wx, 0,
		xz + wy, yz - wx, 1 - (xx + yy), 0,
		0, 0, 0, 1,
	}}
}

// ToRotatedVector3 rotates the point (x, y, z) by q, computing q * p * q⁻¹.
// q is assumed to be a unit quaternion, so its conjugate stands in for the
// inverse; the result matches ToRotationMatrix4().TransformPoint.
func (q Quaternion) ToRotatedVector3(x, y, z float32) Vector3 {
	p := Quaternion{X: x, Y: y, Z: z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// Rotate rotates v by q. It is ToRotatedVector3 for a Vector3 argument.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	return q.ToRotatedVector3(v.X, v.Y, v.Z)
}

// Slerp performs spherical linear interpolation from q to other.
// t=0 returns q, t=1 returns other (or -other, the same rotation, when the
// two lie on opposite hemispheres).
//
// Interpolation always follows the shorter arc: when the dot product is
// negative, other is negated first. Nearly parallel inputs are blended
// linearly and renormalized.
func (q Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	cos := q.Dot(other)
	if cos < 0 {
		other = other.Negate()
		cos = -cos
	}

	if cos > slerpThreshold {
		return Quaternion{
			X: q.X + (other.X-q.X)*t,
			Y: q.Y + (other.Y-q.Y)*t,
			Z: q.Z + (other.Z-q.Z)*t,
			W: q.W + (other.W-q.W)*t,
		}.Normalize()
	}

	theta := math32.Acos(cos)
	sin := math32.Sin(theta)
	a := math32.Sin((1-t)*theta) / sin
	b := math32.Sin(t*theta) / sin

	return Quaternion{
		X: q.X*a + other.X*b,
		Y: q.Y*a + other.Y*b,
		Z: q.Z*a + other.Z*b,
		W: q.W*a + other.W*b,
	}
}

// Approx returns true if every component of q and r differs by less than epsilon.
func (q Quaternion) Approx(r Quaternion, epsilon float32) bool {
	return math32.Abs(q.X-r.X) < epsilon &&
		math32.Abs(q.Y-r.Y) < epsilon &&
		math32.Abs(q.Z-r.Z) < epsilon &&
		math32.Abs(q.W-r.W) < epsilon
}

// SameRotation reports whether q and r describe the same rotation within
// epsilon, treating q and -q as equal.
func (q Quaternion) SameRotation(r Quaternion, epsilon float32) bool {
	return q.Approx(r, epsilon) || q.Approx(r.Negate(), epsilon)
}

// Values returns the components in X, Y, Z, W order.
func (q Quaternion) Values() [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

// String returns the quaternion formatted as "Quaternion(x, y, z, w)".
func (q Quaternion) String() string {
	return formatValues("Quaternion", q.X, q.Y, q.Z, q.W)
}
