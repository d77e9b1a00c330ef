package glmath

import "testing"

var (
	benchMatrix Matrix4x4
	benchQuat   Quaternion
	benchVec    Vector3
)

func BenchmarkMatrix4x4_Mul(b *testing.B) {
	m1 := Perspective(PerspectiveParams{FovYRadian: pi / 4, AspectRatio: 16.0 / 9.0, Near: 0.1, Far: 100})
	m2 := LookAt(V3(0, 0, 10), V3(0, 0, 0), V3(0, 1, 0))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchMatrix = m1.MulByMatrix4x4(m2)
	}
}

func BenchmarkMatrix4x4_Inverse(b *testing.B) {
	m := Translation(1, 2, 3).MulByMatrix4x4(RotationAround(V3(0, 1, 1).Normalize(), 0.7)).Scale(2, 2, 2)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchMatrix = m.Inverse()
	}
}

func BenchmarkMatrix4x4_TransformPoint(b *testing.B) {
	m := RotationZ(0.3).Translate(1, 2, 3)
	p := V3(4, 5, 6)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchVec = m.TransformPoint(p)
	}
}

func BenchmarkQuaternion_Slerp(b *testing.B) {
	q1 := QuaternionRotationAround(V3(1, 0, 0), 0.4)
	q2 := QuaternionRotationAround(V3(0, 1, 0), 2.1)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchQuat = q1.Slerp(q2, 0.35)
	}
}

func BenchmarkQuaternion_ToRotationMatrix4(b *testing.B) {
	q := QuaternionRotationAround(V3(0, 0, 1), 1.1)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchMatrix = q.ToRotationMatrix4()
	}
}
