package scene

import (
	"github.com/gogpu/glmath"
	"github.com/gogpu/glmath/internal/batch"
	"github.com/gogpu/glmath/uniform"
)

// Scene produces the transforms of one demo for any frame.
// Frame must be deterministic: the same count always yields the same Frame.
type Scene interface {
	Name() string
	Frame(count int) Frame
}

// Frame is the set of draw calls of one rendered frame.
type Frame struct {
	Count   int
	Objects []Object
}

// Object is one draw call and its uniforms.
type Object struct {
	Name     string
	Uniforms uniform.Block
}

// Frames computes count consecutive frames of s starting at start.
// The frames are computed on up to workers goroutines; zero or negative
// workers use GOMAXPROCS. The result is ordered by frame counter.
func Frames(s Scene, start, count, workers int) []Frame {
	if count <= 0 {
		return nil
	}

	pool := batch.NewPool(min(workers, count))
	defer pool.Close()

	frames := make([]Frame, count)
	pool.Run(count, func(i int) {
		frames[i] = s.Frame(start + i)
	})
	glmath.Logger().Debug("scene: frames", "scene", s.Name(), "start", start, "count", count, "workers", pool.Workers())
	return frames
}

// Lighting constants shared by the lit torus scenes.
var (
	pointLight   = glmath.V3(15, 10, 15)
	ambientColor = [4]float32{0.1, 0.1, 0.1, 1}
)

// newObject fills the block for a model drawn with the given view-projection.
func newObject(name string, vp, model glmath.Matrix4x4, light, eye glmath.Vector3, ambient [4]float32) Object {
	return Object{
		Name: name,
		Uniforms: uniform.Block{
			MVP:           vp.MulByMatrix4x4(model),
			Model:         model,
			ModelInverse:  model.Inverse(),
			LightPosition: light,
			EyeDirection:  eye,
			AmbientColor:  ambient,
		},
	}
}
