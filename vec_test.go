package glmath

import (
	"testing"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

const epsilon = 1e-5

func TestVector3_Creation(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"zero", 0, 0, 0},
		{"positive", 1, 2, 3},
		{"negative", -1, -2, -3},
		{"fractional", 0.5, 1.25, -2.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V3(tt.x, tt.y, tt.z)
			if v.X != tt.x || v.Y != tt.y || v.Z != tt.z {
				t.Errorf("V3(%v, %v, %v) = %v", tt.x, tt.y, tt.z, v)
			}
		})
	}
}

func TestVector3_Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	tests := []struct {
		name string
		got  Vector3
		want Vector3
	}{
		{"add", a.Add(b), V3(5, -3, 9)},
		{"sub", a.Sub(b), V3(-3, 7, -3)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"scale zero", a.Scale(0), V3(0, 0, 0)},
		{"negate", a.Negate(), V3(-1, -2, -3)},
		{"lerp 0", a.Lerp(b, 0), a},
		{"lerp 1", a.Lerp(b, 1), b},
		{"lerp half", a.Lerp(b, 0.5), V3(2.5, -1.5, 4.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, epsilon) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVector3_Immutable(t *testing.T) {
	a := V3(1, 2, 3)
	orig := a

	_ = a.Add(V3(1, 1, 1))
	_ = a.Scale(10)
	_ = a.Normalize()
	_ = a.Cross(V3(0, 0, 1))

	if a != orig {
		t.Errorf("receiver mutated: %v, want %v", a, orig)
	}
}

func TestVector3_Dot(t *testing.T) {
	tests := []struct {
		name string
		v, w Vector3
		want float32
	}{
		{"orthogonal", V3(1, 0, 0), V3(0, 1, 0), 0},
		{"parallel", V3(2, 0, 0), V3(3, 0, 0), 6},
		{"opposite", V3(1, 0, 0), V3(-1, 0, 0), -1},
		{"general", V3(1, 2, 3), V3(4, -5, 6), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Dot(tt.w); math32.Abs(got-tt.want) > epsilon {
				t.Errorf("%v.Dot(%v) = %v, want %v", tt.v, tt.w, got, tt.want)
			}
		})
	}
}

func TestVector3_Cross(t *testing.T) {
	tests := []struct {
		name string
		v, w Vector3
		want Vector3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"y cross x", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"parallel", V3(1, 2, 3), V3(2, 4, 6), V3(0, 0, 0)},
		{"general", V3(1, 2, 3), V3(4, 5, 6), V3(-3, 6, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); !got.Approx(tt.want, epsilon) {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, got, tt.want)
			}
		})
	}
}

func TestVector3_CrossOrthogonal(t *testing.T) {
	pairs := [][2]Vector3{
		{V3(1, 2, 3), V3(4, 5, 6)},
		{V3(-1, 0.5, 2), V3(3, -2, 1)},
		{V3(0.1, 0.2, 0.3), V3(-0.3, 0.2, -0.1)},
		{V3(10, 0, 0), V3(0, 0, 10)},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		c := a.Cross(b)
		if d := c.Dot(a); math32.Abs(d) > 1e-4 {
			t.Errorf("cross(%v, %v)·a = %v, want 0", a, b, d)
		}
		if d := c.Dot(b); math32.Abs(d) > 1e-4 {
			t.Errorf("cross(%v, %v)·b = %v, want 0", a, b, d)
		}
	}
}

func TestVector3_CrossMatchesR3(t *testing.T) {
	a := V3(1.5, -2, 0.25)
	b := V3(-0.5, 3, 4)

	want := Vector3FromR3(r3.Cross(a.R3(), b.R3()))
	if got := a.Cross(b); !got.Approx(want, epsilon) {
		t.Errorf("Cross = %v, r3.Cross = %v", got, want)
	}
}

func TestVector3_Magnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want float32
	}{
		{"zero", V3(0, 0, 0), 0},
		{"unit x", V3(1, 0, 0), 1},
		{"3-4-0", V3(3, 4, 0), 5},
		{"2-3-6", V3(2, 3, 6), 7},
		{"negative", V3(-2, -3, -6), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Magnitude(); math32.Abs(got-tt.want) > epsilon {
				t.Errorf("%v.Magnitude() = %v, want %v", tt.v, got, tt.want)
			}
			if got := tt.v.MagnitudeSq(); math32.Abs(got-tt.want*tt.want) > epsilon {
				t.Errorf("%v.MagnitudeSq() = %v, want %v", tt.v, got, tt.want*tt.want)
			}
		})
	}
}

func TestVector3_Normalize(t *testing.T) {
	vectors := []Vector3{
		V3(3, 4, 0),
		V3(1, 1, 1),
		V3(-2, 0.5, 7),
		V3(1e-3, 0, 0),
		V3(100, -200, 300),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if m := n.Magnitude(); math32.Abs(m-1) > epsilon {
			t.Errorf("%v.Normalize().Magnitude() = %v, want 1", v, m)
		}
		if nn := n.Normalize(); !nn.Approx(n, epsilon) {
			t.Errorf("normalize not idempotent: %v -> %v", n, nn)
		}
		// direction preserved
		if d := n.Dot(v); d <= 0 {
			t.Errorf("%v.Normalize() = %v flips direction", v, n)
		}
	}
}

func TestVector3_NormalizeZero(t *testing.T) {
	z := Vector3{}
	n := z.Normalize()
	if n != z {
		t.Errorf("zero.Normalize() = %v, want zero vector", n)
	}
	if !n.IsZero() {
		t.Error("zero.Normalize().IsZero() = false")
	}
}

func TestVector3_Distance(t *testing.T) {
	if got := V3(1, 2, 3).Distance(V3(4, 6, 3)); math32.Abs(got-5) > epsilon {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVector3_Values(t *testing.T) {
	v := V3(1, 2, 3)
	if got := v.Values(); got != [3]float32{1, 2, 3} {
		t.Errorf("Values() = %v", got)
	}
}

func TestVector3_String(t *testing.T) {
	tests := []struct {
		v    Vector3
		want string
	}{
		{V3(0, 0, 0), "Vector3(0, 0, 0)"},
		{V3(1, -2.5, 3), "Vector3(1, -2.5, 3)"},
		{V3(0.1, 0, 0), "Vector3(0.1, 0, 0)"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
