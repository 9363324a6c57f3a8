// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package mesh implements the library of pre-loaded
// meshes that draw calls reference by name.
// Meshes are sourced from glTF documents; only one
// instance of a given mesh is kept in GPU memory no
// matter how many times it is drawn.
package mesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"math"

	"gviegas/tabletop/driver"
	"gviegas/tabletop/gltf"
	"gviegas/tabletop/internal/logx"
)

const prefix = "mesh: "

func newErr(reason string) error { return errors.New(prefix + reason) }

// Library maps mesh names to GPU meshes.
// The zero value is not valid; use NewLibrary.
type Library struct {
	gpu    driver.GPU
	meshes map[string]driver.Mesh
}

// NewLibrary creates an empty library.
func NewLibrary(gpu driver.GPU) *Library {
	return &Library{gpu, make(map[string]driver.Mesh)}
}

// Load registers every named mesh of a glTF asset.
// data may hold either the JSON form or a GLB blob.
// External buffer URIs are resolved relative to fsys,
// which may be nil when the asset is self-contained.
func (l *Library) Load(data []byte, fsys fs.FS) error {
	doc := data
	var bin []byte
	if gltf.IsGLB(data) {
		var err error
		if doc, bin, err = gltf.SplitGLB(data); err != nil {
			return err
		}
	}
	asset, err := gltf.Decode(bytes.NewReader(doc))
	if err != nil {
		return err
	}

	bufData := make([][]byte, len(asset.Buffers))
	for i := range asset.Buffers {
		if bufData[i], err = asset.Buffers[i].Resolve(bin, fsys); err != nil {
			return err
		}
	}

	for i := range asset.Meshes {
		name := asset.Meshes[i].Name
		if name == "" {
			return newErr("unnamed mesh")
		}
		if _, ok := l.meshes[name]; ok {
			return newErr("mesh already loaded: " + name)
		}
		verts, indices, err := assemble(asset, bufData, &asset.Meshes[i])
		if err != nil {
			return err
		}
		m, err := l.gpu.NewMesh(verts, indices)
		if err != nil {
			return err
		}
		l.meshes[name] = m
		logx.Logger().Info("mesh loaded",
			"name", name,
			"vertices", len(verts)/8,
			"indices", len(indices))
	}
	return nil
}

// LoadFile reads name from fsys and calls Load, resolving
// external buffers relative to fsys as well.
func (l *Library) LoadFile(fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	return l.Load(data, fsys)
}

// Draw issues one draw call for the named mesh.
func (l *Library) Draw(name string) error {
	m, ok := l.meshes[name]
	if !ok {
		return newErr("no such mesh: " + name)
	}
	m.Draw()
	return nil
}

// Has returns whether the named mesh is loaded.
func (l *Library) Has(name string) bool {
	_, ok := l.meshes[name]
	return ok
}

// Len returns the number of loaded meshes.
func (l *Library) Len() int { return len(l.meshes) }

// Free destroys every mesh and clears the library.
// The library may be reused afterwards.
func (l *Library) Free() {
	for _, m := range l.meshes {
		m.Destroy()
	}
	clear(l.meshes)
}

// assemble merges the primitives of a glTF mesh into one
// interleaved vertex slice (position/normal/texcoord) and
// one index slice.
func assemble(asset *gltf.GLTF, bufData [][]byte, m *gltf.Mesh) (verts []float32, indices []uint32, err error) {
	if len(m.Primitives) == 0 {
		err = newErr("mesh has no primitives")
		return
	}
	for i := range m.Primitives {
		prim := &m.Primitives[i]
		if prim.Mode != nil && *prim.Mode != gltf.TRIANGLES {
			err = newErr("unsupported primitive mode")
			return
		}
		base := uint32(len(verts) / 8)

		pos, err2 := attrFloats(asset, bufData, prim, gltf.POSITION, 3)
		if err2 != nil {
			err = err2
			return
		}
		if pos == nil {
			err = newErr("primitive has no POSITION attribute")
			return
		}
		nvert := len(pos) / 3
		norm, err2 := attrFloats(asset, bufData, prim, gltf.NORMAL, 3)
		if err2 != nil {
			err = err2
			return
		}
		uv, err2 := attrFloats(asset, bufData, prim, gltf.TEXCOORD_0, 2)
		if err2 != nil {
			err = err2
			return
		}
		if norm != nil && len(norm)/3 != nvert || uv != nil && len(uv)/2 != nvert {
			err = newErr("attribute counts differ")
			return
		}

		for v := 0; v < nvert; v++ {
			verts = append(verts, pos[v*3], pos[v*3+1], pos[v*3+2])
			if norm != nil {
				verts = append(verts, norm[v*3], norm[v*3+1], norm[v*3+2])
			} else {
				verts = append(verts, 0, 0, 0)
			}
			if uv != nil {
				verts = append(verts, uv[v*2], uv[v*2+1])
			} else {
				verts = append(verts, 0, 0)
			}
		}

		if prim.Indices != nil {
			idx, err2 := accIndices(asset, bufData, *prim.Indices)
			if err2 != nil {
				err = err2
				return
			}
			for _, x := range idx {
				indices = append(indices, base+x)
			}
		} else {
			for v := 0; v < nvert; v++ {
				indices = append(indices, base+uint32(v))
			}
		}
	}
	return
}

// attrFloats reads a float vector attribute of a
// primitive. It returns nil with no error when the
// primitive lacks the attribute.
func attrFloats(asset *gltf.GLTF, bufData [][]byte, prim *gltf.Primitive, attr string, comps int) ([]float32, error) {
	ai, ok := prim.Attributes[attr]
	if !ok {
		return nil, nil
	}
	acc, data, stride, err := accData(asset, bufData, ai, comps*4)
	if err != nil {
		return nil, err
	}
	if acc.ComponentType != gltf.FLOAT {
		return nil, newErr("attribute is not float: " + attr)
	}
	var want string
	switch comps {
	case 2:
		want = gltf.VEC2
	case 3:
		want = gltf.VEC3
	}
	if acc.Type != want {
		return nil, newErr("unexpected accessor type for " + attr)
	}
	out := make([]float32, 0, int(acc.Count)*comps)
	for i := 0; i < int(acc.Count); i++ {
		el := data[i*stride:]
		for c := 0; c < comps; c++ {
			bits := binary.LittleEndian.Uint32(el[c*4:])
			out = append(out, math.Float32frombits(bits))
		}
	}
	return out, nil
}

// accIndices reads an index accessor, widening to uint32.
func accIndices(asset *gltf.GLTF, bufData [][]byte, ai int64) ([]uint32, error) {
	if ai < 0 || int(ai) >= len(asset.Accessors) {
		return nil, newErr("accessor index out of bounds")
	}
	var esz int
	switch asset.Accessors[ai].ComponentType {
	case gltf.UNSIGNED_BYTE:
		esz = 1
	case gltf.UNSIGNED_SHORT:
		esz = 2
	case gltf.UNSIGNED_INT:
		esz = 4
	default:
		return nil, newErr("unsupported index component type")
	}
	acc, data, stride, err := accData(asset, bufData, ai, esz)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.SCALAR {
		return nil, newErr("index accessor is not SCALAR")
	}
	out := make([]uint32, 0, acc.Count)
	for i := 0; i < int(acc.Count); i++ {
		el := data[i*stride:]
		switch esz {
		case 1:
			out = append(out, uint32(el[0]))
		case 2:
			out = append(out, uint32(binary.LittleEndian.Uint16(el)))
		case 4:
			out = append(out, binary.LittleEndian.Uint32(el))
		}
	}
	return out, nil
}

// accData locates and bounds-checks the data that an
// accessor refers to. esz is the element size in bytes;
// the returned stride is also in bytes.
func accData(asset *gltf.GLTF, bufData [][]byte, ai int64, esz int) (*gltf.Accessor, []byte, int, error) {
	if ai < 0 || int(ai) >= len(asset.Accessors) {
		return nil, nil, 0, newErr("accessor index out of bounds")
	}
	acc := &asset.Accessors[ai]
	if acc.BufferView == nil {
		return nil, nil, 0, newErr("accessor has no bufferView")
	}
	vi := *acc.BufferView
	if vi < 0 || int(vi) >= len(asset.BufferViews) {
		return nil, nil, 0, newErr("bufferView index out of bounds")
	}
	view := &asset.BufferViews[vi]
	if view.Buffer < 0 || int(view.Buffer) >= len(bufData) {
		return nil, nil, 0, newErr("buffer index out of bounds")
	}
	data := bufData[view.Buffer]
	off := view.ByteOffset + acc.ByteOffset
	if off < 0 || off > int64(len(data)) {
		return nil, nil, 0, newErr("accessor offset out of bounds")
	}
	stride := int(view.ByteStride)
	if stride == 0 {
		stride = esz
	}
	need := off + int64(stride)*(acc.Count-1) + int64(esz)
	if acc.Count < 1 || need > int64(len(data)) {
		return nil, nil, 0, newErr("accessor data out of bounds")
	}
	return acc, data[off:], stride, nil
}
