// Package uniform packs glmath values into GPU uniform buffer bytes.
//
// All writers emit little-endian float32 data, the upload format shared by
// WebGL and WebGPU. [Block] follows std140 alignment: mat4 occupies 64 bytes
// and vec3 is padded to 16.
package uniform

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glmath"
	"github.com/gogpu/gputypes"
)

// Sizes of the packed types in bytes.
const (
	Matrix4Size = 64
	Vec3Size    = 12
	Vec4Size    = 16

	// vec3Stride is the std140 slot taken by a vec3.
	vec3Stride = 16
)

// Block field offsets in bytes.
const (
	OffsetMVP           = 0
	OffsetModel         = OffsetMVP + Matrix4Size
	OffsetModelInverse  = OffsetModel + Matrix4Size
	OffsetLightPosition = OffsetModelInverse + Matrix4Size
	OffsetEyeDirection  = OffsetLightPosition + vec3Stride
	OffsetAmbientColor  = OffsetEyeDirection + vec3Stride
)

// BlockSize is the byte size of a packed Block.
const BlockSize = OffsetAmbientColor + Vec4Size

// Matrix4 writes m column by column into buf and returns the number of
// bytes written. It panics if buf is shorter than Matrix4Size.
func Matrix4(buf []byte, m glmath.Matrix4x4) int {
	_ = buf[Matrix4Size-1]
	off := 0
	for _, v := range m.Values() {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	return off
}

// Vec3 writes v into buf and returns the number of bytes written.
func Vec3(buf []byte, v glmath.Vector3) int {
	_ = buf[Vec3Size-1]
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Z))
	return Vec3Size
}

// Vec4 writes four floats into buf and returns the number of bytes written.
func Vec4(buf []byte, x, y, z, w float32) int {
	_ = buf[Vec4Size-1]
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(z))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(w))
	return Vec4Size
}

// Block is the uniform set of a lit object.
// Its layout is the Uniforms struct declared in [WGSL].
type Block struct {
	MVP          glmath.Matrix4x4
	Model        glmath.Matrix4x4
	ModelInverse glmath.Matrix4x4

	LightPosition glmath.Vector3
	EyeDirection  glmath.Vector3
	AmbientColor  [4]float32
}

// Put writes the block into buf using std140 layout and returns BlockSize.
// Padding bytes are zeroed.
func (b Block) Put(buf []byte) int {
	_ = buf[BlockSize-1]
	clear(buf[:BlockSize])

	Matrix4(buf[OffsetMVP:], b.MVP)
	Matrix4(buf[OffsetModel:], b.Model)
	Matrix4(buf[OffsetModelInverse:], b.ModelInverse)
	Vec3(buf[OffsetLightPosition:], b.LightPosition)
	Vec3(buf[OffsetEyeDirection:], b.EyeDirection)
	c := b.AmbientColor
	Vec4(buf[OffsetAmbientColor:], c[0], c[1], c[2], c[3])
	return BlockSize
}

// Bytes returns the block packed into a new BlockSize buffer.
func (b Block) Bytes() []byte {
	buf := make([]byte, BlockSize)
	b.Put(buf)
	return buf
}

// LayoutEntry returns the bind group layout entry for a Block bound at
// binding, visible to the vertex and fragment stages.
func LayoutEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	glmath.Logger().Debug("uniform: layout entry", "binding", binding, "size", BlockSize)
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: BlockSize,
		},
	}
}
