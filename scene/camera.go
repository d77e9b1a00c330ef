package scene

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/glmath"
)

// Camera is a look-at camera with a perspective projection.
type Camera struct {
	Eye, Target, Up glmath.Vector3
	Projection      glmath.PerspectiveParams
}

// DefaultProjection returns the projection shared by the demo scenes:
// 45° vertical field of view, clip planes at 0.1 and 100.
func DefaultProjection(aspectRatio float32) glmath.PerspectiveParams {
	return glmath.PerspectiveParams{
		FovYRadian:  math32.Pi / 4,
		AspectRatio: aspectRatio,
		Near:        0.1,
		Far:         100,
	}
}

// View returns the world-to-camera matrix.
func (c Camera) View() glmath.Matrix4x4 {
	return glmath.LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the camera-to-clip matrix.
func (c Camera) ProjectionMatrix() glmath.Matrix4x4 {
	return glmath.Perspective(c.Projection)
}

// ViewProjection returns P·V.
func (c Camera) ViewProjection() glmath.Matrix4x4 {
	return c.ProjectionMatrix().MulByMatrix4x4(c.View())
}

// FrameRadian maps a frame counter to an angle so that one full turn takes
// period frames. A non-positive period yields 0.
func FrameRadian(count, period int) float32 {
	if period <= 0 {
		return 0
	}
	return float32(count%period) * math32.Pi / (float32(period) / 2)
}

// MouseRotation returns the drag rotation for a pointer at (x, y) on a
// width×height canvas.
//
// The pointer is taken relative to the canvas centre. The rotation axis is
// (y, x, 0) and the angle grows linearly with the pointer's distance from the
// centre, reaching 2π at the length of the canvas diagonal. A pointer at the
// centre yields the identity.
func MouseRotation(x, y, width, height float32) glmath.Matrix4x4 {
	diagonal := math32.Sqrt(width*width + height*height)
	if diagonal == 0 {
		return glmath.Identity()
	}

	x -= width * 0.5
	y -= height * 0.5
	angle := math32.Sqrt(x*x+y*y) * 2 * math32.Pi / diagonal
	axis := glmath.V3(y, x, 0).Normalize()
	return glmath.QuaternionRotationAround(axis, angle).ToRotationMatrix4()
}

// OrbitCamera rotates the eye position and up vector of base around axis,
// which passes through the origin. The target is kept.
func OrbitCamera(base Camera, axis glmath.Vector3, radian float32) Camera {
	q := glmath.QuaternionRotationAround(axis.Normalize(), radian)
	c := base
	c.Eye = q.ToRotatedVector3(base.Eye.X, base.Eye.Y, base.Eye.Z)
	c.Up = q.ToRotatedVector3(base.Up.X, base.Up.Y, base.Up.Z)
	return c
}

// BillboardMatrix returns the rotation that keeps a quad aligned with the
// view plane of a camera at eye looking at target.
//
// It is the inverse of a look-at from target towards eye. Composed with the
// camera's view matrix the result has no rotation left apart from a fixed
// half turn around y, regardless of where the camera stands.
func BillboardMatrix(eye, target, up glmath.Vector3) glmath.Matrix4x4 {
	return glmath.LookAt(target, eye, up).Inverse()
}
