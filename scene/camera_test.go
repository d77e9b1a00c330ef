package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/glmath"
)

const epsilon = 1e-5

func TestFrameRadian(t *testing.T) {
	tests := []struct {
		name          string
		count, period int
		want          float32
	}{
		{"start", 0, 360, 0},
		{"quarter", 90, 360, math32.Pi / 2},
		{"full turn wraps", 360, 360, 0},
		{"second lap", 450, 360, math32.Pi / 2},
		{"half period is pi", 90, 180, math32.Pi},
		{"slow orbit", 180, 720, math32.Pi / 2},
		{"zero period", 10, 0, 0},
		{"negative period", 10, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameRadian(tt.count, tt.period); math32.Abs(got-tt.want) > epsilon {
				t.Errorf("FrameRadian(%d, %d) = %v, want %v", tt.count, tt.period, got, tt.want)
			}
		})
	}
}

func TestMouseRotation_CenterIsIdentity(t *testing.T) {
	if got := MouseRotation(250, 150, 500, 300); !got.Approx(glmath.Identity(), epsilon) {
		t.Errorf("MouseRotation(centre) = %v, want identity", got)
	}
	if got := MouseRotation(0, 0, 0, 0); !got.IsIdentity() {
		t.Errorf("MouseRotation on empty canvas = %v, want identity", got)
	}
}

func TestMouseRotation_HorizontalDragTurnsAroundY(t *testing.T) {
	const w, h = 300, 400 // diagonal 500
	got := MouseRotation(w/2+125, h/2, w, h)

	// 125 px of a 500 px diagonal is a quarter of 2π
	want := glmath.RotationY(math32.Pi / 2)
	if !got.Approx(want, epsilon) {
		t.Errorf("MouseRotation = %v, want %v", got, want)
	}
}

func TestMouseRotation_VerticalDragTurnsAroundX(t *testing.T) {
	const w, h = 300, 400
	got := MouseRotation(w/2, h/2+250, w, h)

	want := glmath.RotationX(math32.Pi)
	if !got.Approx(want, epsilon) {
		t.Errorf("MouseRotation = %v, want %v", got, want)
	}
}

func TestOrbitCamera(t *testing.T) {
	base := Camera{Eye: glmath.V3(0, 0, 10), Up: glmath.V3(0, 1, 0), Projection: DefaultProjection(1)}

	got := OrbitCamera(base, glmath.V3(1, 0, 0), math32.Pi/2)
	if !got.Eye.Approx(glmath.V3(0, -10, 0), 1e-4) {
		t.Errorf("Eye = %v, want (0, -10, 0)", got.Eye)
	}
	if !got.Up.Approx(glmath.V3(0, 0, 1), epsilon) {
		t.Errorf("Up = %v, want (0, 0, 1)", got.Up)
	}
	if got.Target != base.Target || got.Projection != base.Projection {
		t.Errorf("OrbitCamera changed target or projection: %+v", got)
	}
	if base.Eye != glmath.V3(0, 0, 10) {
		t.Errorf("base camera mutated: %v", base.Eye)
	}
}

func TestOrbitCamera_KeepsDistanceAndUp(t *testing.T) {
	base := Camera{Eye: glmath.V3(0, 0, 10), Up: glmath.V3(0, 1, 0)}

	for i := 0; i < 720; i += 37 {
		c := OrbitCamera(base, glmath.V3(1, 0, 0), FrameRadian(i, 720))
		if d := c.Eye.Magnitude(); math32.Abs(d-10) > 1e-4 {
			t.Errorf("frame %d: distance %v, want 10", i, d)
		}
		// up stays perpendicular to the line of sight
		if dot := c.Up.Dot(c.Eye); math32.Abs(dot) > 1e-4 {
			t.Errorf("frame %d: up·eye = %v, want 0", i, dot)
		}
	}
}

func TestCamera_ViewProjection(t *testing.T) {
	c := Camera{
		Eye:        glmath.V3(1, 2, 3),
		Target:     glmath.V3(0, 0.5, 0),
		Up:         glmath.V3(0, 1, 0),
		Projection: DefaultProjection(16.0 / 9.0),
	}

	want := glmath.Perspective(c.Projection).MulByMatrix4x4(glmath.LookAt(c.Eye, c.Target, c.Up))
	if got := c.ViewProjection(); !got.Approx(want, epsilon) {
		t.Errorf("ViewProjection = %v, want %v", got, want)
	}
}

func TestBillboardMatrix_StaysViewAligned(t *testing.T) {
	target := glmath.V3(0, 0, 0)
	up := glmath.V3(0, 1, 0)
	eyes := []glmath.Vector3{
		glmath.V3(0, 5, 10),
		glmath.V3(3, 2, -4),
		glmath.V3(-6, 1, 2),
		glmath.V3(0.5, -3, 7),
	}

	for _, eye := range eyes {
		m := glmath.LookAt(eye, target, up).MulByMatrix4x4(BillboardMatrix(eye, target, up))

		axes := []struct{ in, want glmath.Vector3 }{
			{glmath.V3(1, 0, 0), glmath.V3(-1, 0, 0)},
			{glmath.V3(0, 1, 0), glmath.V3(0, 1, 0)},
			{glmath.V3(0, 0, 1), glmath.V3(0, 0, -1)},
		}
		for _, a := range axes {
			if got := m.TransformVector(a.in); !got.Approx(a.want, 1e-4) {
				t.Errorf("eye %v: axis %v -> %v, want %v", eye, a.in, got, a.want)
			}
		}
	}
}
