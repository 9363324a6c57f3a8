// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gviegas/tabletop/driver"
)

const meshPrefix = "gl: mesh: "

// Floats per vertex: position (3), normal (3), texcoord (2).
const vertFloats = 8

// mesh implements driver.Mesh as a VAO with one
// interleaved vertex buffer and one index buffer.
type mesh struct {
	vao     uint32
	vbo     uint32
	ebo     uint32
	indices int32
}

// NewMesh creates an indexed triangle mesh.
func (g *GPU) NewMesh(verts []float32, indices []uint32) (driver.Mesh, error) {
	var reason string
	switch {
	case len(verts) == 0, len(verts)%vertFloats != 0:
		reason = "invalid vertex data"
	case len(indices) == 0, len(indices)%3 != 0:
		reason = "invalid index data"
	default:
		goto validParam
	}
	return nil, errors.New(meshPrefix + reason)
validParam:
	nvert := uint32(len(verts) / vertFloats)
	for _, i := range indices {
		if i >= nvert {
			return nil, errors.New(meshPrefix + "index out of bounds")
		}
	}

	var m mesh
	m.indices = int32(len(indices))
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(vertFloats * 4)
	// Attribute locations 0/1/2 are fixed by the
	// program's vertex-shader contract.
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return &m, nil
}

// Draw issues one indexed draw call covering the mesh.
func (m *mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indices, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy deletes the buffers and the vertex array.
func (m *mesh) Destroy() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = mesh{}
}
