package glmath

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Vector3 represents a 3D point or direction in single precision.
//
// Vector3 is an immutable value: every method returns a new Vector3 and
// never modifies the receiver.
type Vector3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vector3.
func V3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two vectors.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the component-wise difference v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Negate returns the vector pointing in the opposite direction.
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(w Vector3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// MagnitudeSq returns the squared length of the vector.
// This is cheaper than Magnitude when only comparing lengths.
func (v Vector3) MagnitudeSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// A vector whose magnitude is exactly zero is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return Vector3{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vector3) Lerp(w Vector3, t float32) Vector3 {
	return Vector3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Distance returns the distance between two points.
func (v Vector3) Distance(w Vector3) float32 {
	return v.Sub(w).Magnitude()
}

// IsZero returns true if all components are zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Approx returns true if every component of v and w differs by less than epsilon.
func (v Vector3) Approx(w Vector3, epsilon float32) bool {
	return math32.Abs(v.X-w.X) < epsilon &&
		math32.Abs(v.Y-w.Y) < epsilon &&
		math32.Abs(v.Z-w.Z) < epsilon
}

// Values returns the components as an array, ready for a vec3 uniform upload.
func (v Vector3) Values() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// String returns the vector formatted as "Vector3(x, y, z)".
func (v Vector3) String() string {
	return formatValues("Vector3", v.X, v.Y, v.Z)
}

func formatValues(name string, values ...float32) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, f := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	sb.WriteByte(')')
	return sb.String()
}
