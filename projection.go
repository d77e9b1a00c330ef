package glmath

import "github.com/chewxy/math32"

// FrustumBounds describes a view volume for Orthographic and Frustum.
//
// Left, Right, Bottom and Top are measured on the near plane. Near and Far
// are positive distances along the camera's -z axis.
type FrustumBounds struct {
	Top, Bottom float32
	Left, Right float32
	Near, Far   float32
}

// PerspectiveParams describes a symmetric perspective projection.
type PerspectiveParams struct {
	// FovYRadian is the vertical field of view in radians.
	FovYRadian float32
	// AspectRatio is viewport width divided by height.
	AspectRatio float32
	Near, Far   float32
}

// Projection matrices below use the OpenGL clip convention: points on the
// near plane map to z_ndc = -1 and points on the far plane to z_ndc = +1.

// Orthographic creates an orthographic projection matrix.
func Orthographic(b FrustumBounds) Matrix4x4 {
	rml := b.Right - b.Left
	tmb := b.Top - b.Bottom
	fmn := b.Far - b.Near

	return Matrix4x4{v: [16]float32{
		2 / rml, 0, 0, 0,
		0, 2 / tmb, 0, 0,
		0, 0, -2 / fmn, 0,
		-(b.Right + b.Left) / rml, -(b.Top + b.Bottom) / tmb, -(b.Far + b.Near) / fmn, 1,
	}}
}

// Frustum creates an off-center perspective projection matrix.
func Frustum(b FrustumBounds) Matrix4x4 {
	rml := b.Right - b.Left
	tmb := b.Top - b.Bottom
	fmn := b.Far - b.Near

	return Matrix4x4{v: [16]float32{
		2 * b.Near / rml, 0, 0, 0,
		0, 2 * b.Near / tmb, 0, 0,
		(b.Right + b.Left) / rml, (b.Top + b.Bottom) / tmb, -(b.Far + b.Near) / fmn, -1,
		0, 0, -2 * b.Far * b.Near / fmn, 0,
	}}
}

// Bounds returns the symmetric near-plane bounds of the perspective volume.
func (p PerspectiveParams) Bounds() FrustumBounds {
	top := p.Near * math32.Tan(p.FovYRadian*0.5)
	right := top * p.AspectRatio
	return FrustumBounds{
		Top:    top,
		Bottom: -top,
		Left:   -right,
		Right:  right,
		Near:   p.Near,
		Far:    p.Far,
	}
}

// Perspective creates a symmetric perspective projection matrix.
// It derives the frustum bounds from the field of view and aspect ratio and
// delegates to Frustum.
func Perspective(p PerspectiveParams) Matrix4x4 {
	return Frustum(p.Bounds())
}
