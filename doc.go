// Package glmath provides single-precision 3D math for real-time rendering.
//
// # Overview
//
// glmath is a small Pure Go linear-algebra library built for code that feeds
// a GPU every frame: a 3-component [Vector3], a rotation [Quaternion] and a
// column-major [Matrix4x4] whose values can be uploaded directly as a mat4
// uniform.
//
// # Quick Start
//
//	import "github.com/gogpu/glmath"
//
//	view := glmath.LookAt(glmath.V3(0, 0, 10), glmath.V3(0, 0, 0), glmath.V3(0, 1, 0))
//	proj := glmath.Perspective(glmath.PerspectiveParams{
//	    FovYRadian:  math.Pi / 4,
//	    AspectRatio: 16.0 / 9.0,
//	    Near:        0.1,
//	    Far:         100,
//	})
//	model := glmath.Identity().Translate(0, 1, 0).RotateY(angle)
//	mvp := proj.MulByMatrix4x4(view).MulByMatrix4x4(model)
//
//	values := mvp.Values() // [16]float32, column-major
//
// # Conventions
//
//   - Right-handed coordinates; cameras look down -z.
//   - Column vectors: a.MulByMatrix4x4(b) is a·b and applies b first, so a
//     fluent chain reads from parent to child.
//   - Projections use the OpenGL clip range, z_ndc in [-1, 1].
//   - Angles are in radians.
//
// # Values and failure modes
//
// Every type is an immutable value and every function is total. There are no
// error returns. Preconditions are documented instead of checked:
//   - Normalize of a zero vector returns the zero vector.
//   - Rotation axes must be unit length.
//   - Inverse of a singular matrix produces Inf/NaN entries.
//   - LookAt with up parallel to the view direction produces a singular matrix.
//
// # Related packages
//
//   - uniform: byte packing of matrices and vectors for GPU upload.
//   - scene: per-frame camera and model transforms for common demo scenes.
package glmath
