package glmath

import (
	"testing"

	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestConvert_Vector3RoundTrip(t *testing.T) {
	v := V3(1.5, -2, 0.25)

	if got := Vector3FromF32(v.F32()); got != v {
		t.Errorf("f32 round trip = %v, want %v", got, v)
	}
	if got := Vector3FromMgl32(v.Mgl32()); got != v {
		t.Errorf("mgl32 round trip = %v, want %v", got, v)
	}
	if got := Vector3FromR3(v.R3()); got != v {
		t.Errorf("r3 round trip = %v, want %v", got, v)
	}
	if got := v.R3(); got != (r3.Vec{X: 1.5, Y: -2, Z: 0.25}) {
		t.Errorf("R3() = %v", got)
	}
}

func TestConvert_QuaternionRoundTrip(t *testing.T) {
	q := Quaternion{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}

	m := q.Mgl32()
	if m.W != q.W || m.V[0] != q.X || m.V[1] != q.Y || m.V[2] != q.Z {
		t.Errorf("Mgl32() = %v, want W=%v V=(%v,%v,%v)", m, q.W, q.X, q.Y, q.Z)
	}
	if got := QuaternionFromMgl32(m); got != q {
		t.Errorf("round trip = %v, want %v", got, q)
	}
}

func TestConvert_Matrix4x4Mgl32SharesLayout(t *testing.T) {
	m := Translation(1, 2, 3).MulByMatrix4x4(RotationY(0.4))

	if got := [16]float32(m.Mgl32()); got != m.Values() {
		t.Errorf("Mgl32() = %v, want %v", got, m.Values())
	}
	if got := Matrix4x4FromMgl32(m.Mgl32()); got != m {
		t.Errorf("round trip = %v, want %v", got, m)
	}
}

func TestConvert_Matrix4x4F32IsRowMajor(t *testing.T) {
	m := Translation(1, 2, 3)
	f := m.F32()

	// row-major: translation sits at the end of the first three rows
	want := f32.Mat4{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	}
	if f != want {
		t.Errorf("F32() = %v, want %v", f, want)
	}
	if got := Matrix4x4FromF32(f); got != m {
		t.Errorf("round trip = %v, want %v", got, m)
	}
}
