package scene

import (
	"math"

	"github.com/gogpu/glmath"
)

// Names of the built-in scenes.
const (
	TorusRotation    = "torus-rotation"
	QuaternionCamera = "quaternion-camera"
	QuaternionSlerp  = "quaternion-slerp"
	Billboard        = "billboard"
	MouseRotate      = "mouse-rotation"
)

func init() {
	Register(TorusRotation, NewTorusRotation)
	Register(QuaternionCamera, NewQuaternionCamera)
	Register(QuaternionSlerp, NewQuaternionSlerp)
	Register(Billboard, NewBillboard)
	Register(MouseRotate, NewMouseRotation)
}

// torusRotation spins a lit torus around the (0, 1, 1) axis, one turn per
// 360 frames.
type torusRotation struct {
	camera Camera
	axis   glmath.Vector3
}

// NewTorusRotation creates the torus-rotation scene.
func NewTorusRotation(opts ...Option) Scene {
	o := newOptions(opts)
	return &torusRotation{
		camera: Camera{
			Eye:        glmath.V3(0, 0, 20),
			Up:         glmath.V3(0, 1, 0),
			Projection: DefaultProjection(o.aspectRatio),
		},
		axis: glmath.V3(0, 1, 1).Normalize(),
	}
}

func (s *torusRotation) Name() string { return TorusRotation }

func (s *torusRotation) Frame(count int) Frame {
	rad := FrameRadian(count, 360)
	model := glmath.Identity().RotateAround(s.axis, rad)
	// directional light
	light := glmath.V3(-0.5, 0.5, 0.5)

	glmath.Logger().Debug("scene: frame", "scene", TorusRotation, "count", count, "radian", rad)
	return Frame{
		Count: count,
		Objects: []Object{
			newObject("torus", s.camera.ViewProjection(), model, light, s.camera.Eye, ambientColor),
		},
	}
}

// quaternionCamera orbits the camera around the x axis while the torus
// turns around y.
type quaternionCamera struct {
	base       Camera
	orbitAxis  glmath.Vector3
	projection glmath.Matrix4x4
}

// NewQuaternionCamera creates the quaternion-camera scene.
func NewQuaternionCamera(opts ...Option) Scene {
	o := newOptions(opts)
	base := Camera{
		Eye:        glmath.V3(0, 0, 10),
		Up:         glmath.V3(0, 1, 0),
		Projection: DefaultProjection(o.aspectRatio),
	}
	return &quaternionCamera{
		base:       base,
		orbitAxis:  glmath.V3(1, 0, 0),
		projection: base.ProjectionMatrix(),
	}
}

func (s *quaternionCamera) Name() string { return QuaternionCamera }

func (s *quaternionCamera) Frame(count int) Frame {
	rad := FrameRadian(count, 180)
	orbit := FrameRadian(count, 720)

	cam := OrbitCamera(s.base, s.orbitAxis, orbit)
	vp := s.projection.MulByMatrix4x4(cam.View())
	model := glmath.Identity().RotateY(rad)

	glmath.Logger().Debug("scene: frame", "scene", QuaternionCamera, "count", count, "eye", cam.Eye)
	return Frame{
		Count: count,
		Objects: []Object{
			newObject("torus", vp, model, pointLight, cam.Eye, ambientColor),
		},
	}
}

// quaternionSlerp draws three tori: one turned around x, one around y, and
// one at the spherical interpolation between them.
type quaternionSlerp struct {
	camera Camera
	t      float32
}

// NewQuaternionSlerp creates the quaternion-slerp scene.
// WithSlerpT selects the interpolation parameter.
func NewQuaternionSlerp(opts ...Option) Scene {
	o := newOptions(opts)
	return &quaternionSlerp{
		camera: Camera{
			Eye:        glmath.V3(0, 0, 20),
			Up:         glmath.V3(0, 1, 0),
			Projection: DefaultProjection(o.aspectRatio),
		},
		t: o.slerpT,
	}
}

func (s *quaternionSlerp) Name() string { return QuaternionSlerp }

func (s *quaternionSlerp) Frame(count int) Frame {
	rad := FrameRadian(count, 360)
	q1 := glmath.QuaternionRotationAround(glmath.V3(1, 0, 0), rad)
	q2 := glmath.QuaternionRotationAround(glmath.V3(0, 1, 0), rad)
	q3 := q1.Slerp(q2, s.t)

	vp := s.camera.ViewProjection()
	torus := func(name string, q glmath.Quaternion, ambient [4]float32) Object {
		model := glmath.Identity().
			MulByMatrix4x4(q.ToRotationMatrix4()).
			Translate(0, 0, -5)
		return newObject(name, vp, model, pointLight, s.camera.Eye, ambient)
	}

	glmath.Logger().Debug("scene: frame", "scene", QuaternionSlerp, "count", count, "t", s.t)
	return Frame{
		Count: count,
		Objects: []Object{
			torus("torus-x", q1, [4]float32{0.5, 0, 0, 1}),
			torus("torus-y", q2, [4]float32{0, 0.5, 0, 1}),
			torus("torus-slerp", q3, [4]float32{0, 0, 0.5, 1}),
		},
	}
}

// billboard draws a floor and a quad that always faces the camera.
// The mouse rotates the whole view.
type billboard struct {
	camera Camera
	mouse  glmath.Matrix4x4
}

// NewBillboard creates the billboard scene.
func NewBillboard(opts ...Option) Scene {
	o := newOptions(opts)
	return &billboard{
		camera: Camera{
			Eye:        glmath.V3(0, 5, 10),
			Up:         glmath.V3(0, 1, 0),
			Projection: DefaultProjection(o.aspectRatio),
		},
		mouse: MouseRotation(o.mouseX, o.mouseY, o.width, o.height),
	}
}

func (s *billboard) Name() string { return Billboard }

// Frame ignores count: the scene only moves with the mouse.
func (s *billboard) Frame(count int) Frame {
	c := s.camera
	view := c.View().MulByMatrix4x4(s.mouse)
	vp := c.ProjectionMatrix().MulByMatrix4x4(view)

	// (L·R)⁻¹ = R⁻¹·L⁻¹ and R is a pure rotation.
	face := s.mouse.Transpose().MulByMatrix4x4(BillboardMatrix(c.Eye, c.Target, c.Up))

	floor := glmath.Identity().RotateX(math.Pi/2).Scale(3, 3, 1)
	quad := glmath.Identity().Translate(0, 1, 0).MulByMatrix4x4(face)

	unlit := [4]float32{1, 1, 1, 1}
	glmath.Logger().Debug("scene: frame", "scene", Billboard, "count", count)
	return Frame{
		Count: count,
		Objects: []Object{
			newObject("floor", vp, floor, glmath.Vector3{}, c.Eye, unlit),
			newObject("billboard", vp, quad, glmath.Vector3{}, c.Eye, unlit),
		},
	}
}

// mouseRotation turns a lit torus with the mouse on top of a steady spin
// around y.
type mouseRotation struct {
	camera Camera
	mouse  glmath.Matrix4x4
}

// NewMouseRotation creates the mouse-rotation scene.
func NewMouseRotation(opts ...Option) Scene {
	o := newOptions(opts)
	return &mouseRotation{
		camera: Camera{
			Eye:        glmath.V3(0, 0, 10),
			Up:         glmath.V3(0, 1, 0),
			Projection: DefaultProjection(o.aspectRatio),
		},
		mouse: MouseRotation(o.mouseX, o.mouseY, o.width, o.height),
	}
}

func (s *mouseRotation) Name() string { return MouseRotate }

func (s *mouseRotation) Frame(count int) Frame {
	rad := FrameRadian(count, 180)
	model := glmath.Identity().MulByMatrix4x4(s.mouse).RotateY(rad)

	glmath.Logger().Debug("scene: frame", "scene", MouseRotate, "count", count, "radian", rad)
	return Frame{
		Count: count,
		Objects: []Object{
			newObject("torus", s.camera.ViewProjection(), model, pointLight, s.camera.Eye, ambientColor),
		},
	}
}
