// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package driver defines a set of interfaces encompassing
// the GPU functionality that the composer needs.
// It is designed to allow a graphics API binding to be
// implemented in a mostly straightforward manner, and to
// let higher layers be exercised without a live context.
package driver

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoContext means that no graphics context is current
// on the calling thread.
var ErrNoContext = errors.New("driver: no current graphics context")

// PixelFmt identifies the layout of texel data handed to
// GPU.NewTexture.
type PixelFmt int

// Pixel formats.
const (
	// 8-bit RGBA, tightly packed.
	RGBA8 PixelFmt = iota
	// 8-bit RGB, tightly packed.
	RGB8
)

// Size returns the number of bytes per texel.
func (f PixelFmt) Size() int {
	switch f {
	case RGBA8:
		return 4
	case RGB8:
		return 3
	}
	panic("undefined pixel format")
}

// TexParam describes a texture to be created.
// Pixels holds the first mip level only, row-major from
// the bottom row up, tightly packed per Format.
type TexParam struct {
	Width  int
	Height int
	Format PixelFmt
	Pixels []byte
	// Whether to generate the remaining mip levels.
	Mipmap bool
}

// Destroyer is the interface that wraps the Destroy
// method. Destroy releases the resource. The receiver
// must not be used afterwards.
type Destroyer interface {
	Destroy()
}

// Texture is a GPU texture image.
type Texture interface {
	Destroyer

	// Bind makes the texture current on the given
	// texture unit.
	Bind(unit int)
}

// Mesh is a GPU vertex/index buffer pair plus layout.
type Mesh interface {
	Destroyer

	// Draw issues one indexed draw call covering the
	// whole mesh.
	Draw()
}

// Program is a linked shader program exposing uniform
// state by name.
// Setting a name that the program does not define is a
// no-op (fixed-function-style composition pokes uniforms
// unconditionally).
type Program interface {
	Destroyer

	// Use makes the program current.
	Use()

	SetMat4(name string, m mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, x float32)
	SetInt(name string, x int32)
	SetBool(name string, b bool)

	// SetSampler assigns a texture unit to a sampler
	// uniform. Negative units are forwarded as-is,
	// matching the not-found sentinel of slot lookups.
	SetSampler(name string, unit int)
}

// Limits describes implementation limits of a GPU.
type Limits struct {
	// Number of texture units available to a single
	// program stage. Texture slots index this range.
	MaxTexUnits int
}

// GPU is the interface that provides creation of GPU
// resources and global render state.
type GPU interface {
	// NewTexture creates a texture from CPU data.
	NewTexture(param *TexParam) (Texture, error)

	// NewMesh creates an indexed triangle mesh.
	// verts holds interleaved attributes, 8 floats per
	// vertex: position (3), normal (3), texcoord (2).
	NewMesh(verts []float32, indices []uint32) (Mesh, error)

	// NewProgram compiles and links a shader program
	// from vertex/fragment sources.
	NewProgram(vertexSrc, fragmentSrc string) (Program, error)

	// Limits returns the implementation limits.
	Limits() Limits

	// SetBlend toggles alpha blending
	// (src-alpha, one-minus-src-alpha).
	SetBlend(enable bool)
}
