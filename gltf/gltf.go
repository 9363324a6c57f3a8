// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package gltf implements the subset of glTF 2.0
// deserialization needed to source static meshes.
package gltf

import (
	"encoding/json"
	"errors"
	"io"
)

func newErr(reason string) error { return errors.New("gltf: " + reason) }

// Root glTF object.
type GLTF struct {
	Asset struct {
		Version    string `json:"version"`
		Generator  string `json:"generator,omitempty"`
		MinVersion string `json:"minVersion,omitempty"`
	} `json:"asset"`
	Accessors   []Accessor   `json:"accessors,omitempty"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`
	Meshes      []Mesh       `json:"meshes,omitempty"`
}

// glTF.accessors' element.
type Accessor struct {
	BufferView    *int64 `json:"bufferView,omitempty"`
	ByteOffset    int64  `json:"byteOffset,omitempty"` // Default is 0.
	ComponentType int64  `json:"componentType"`
	Normalized    bool   `json:"normalized,omitempty"`
	Count         int64  `json:"count"`
	Type          string `json:"type"`
	Name          string `json:"name,omitempty"`
}

// accessor.componentType values.
const (
	BYTE           = 5120
	UNSIGNED_BYTE  = 5121
	SHORT          = 5122
	UNSIGNED_SHORT = 5123
	UNSIGNED_INT   = 5125
	FLOAT          = 5126
)

// accessor.type values.
const (
	SCALAR = "SCALAR"
	VEC2   = "VEC2"
	VEC3   = "VEC3"
	VEC4   = "VEC4"
)

// glTF.buffers' element.
type Buffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int64  `json:"byteLength"`
	Name       string `json:"name,omitempty"`
}

// glTF.bufferViews' element.
type BufferView struct {
	Buffer     int64 `json:"buffer"`
	ByteOffset int64 `json:"byteOffset,omitempty"` // Default is 0.
	ByteLength int64 `json:"byteLength"`
	ByteStride int64 `json:"byteStride,omitempty"` // 0 for tightly packed.
	Target     int64 `json:"target,omitempty"`     // 0 for no hint.
}

// bufferView.target values.
const (
	ARRAY_BUFFER = iota + 34962
	ELEMENT_ARRAY_BUFFER
)

// glTF.meshes' element.
type Mesh struct {
	Primitives []Primitive `json:"primitives"`
	Name       string      `json:"name,omitempty"`
}

// mesh.primitives' element.
type Primitive struct {
	Attributes map[string]int64 `json:"attributes"`
	Indices    *int64           `json:"indices,omitempty"`
	Mode       *int64           `json:"mode,omitempty"` // Default is TRIANGLES.
}

// primitive.attributes keys used here.
const (
	POSITION   = "POSITION"
	NORMAL     = "NORMAL"
	TEXCOORD_0 = "TEXCOORD_0"
)

// primitive.mode values.
const (
	POINTS = iota
	LINES
	LINE_LOOP
	LINE_STRIP
	TRIANGLES
	TRIANGLE_STRIP
	TRIANGLE_FAN
)

// Decode decodes r into a new GLTF instance.
// r must refer to the JSON form; use SplitGLB first for
// binary glTF.
func Decode(r io.Reader) (*GLTF, error) {
	var gltf GLTF
	if err := json.NewDecoder(r).Decode(&gltf); err != nil {
		return nil, err
	}
	if gltf.Asset.Version == "" {
		return nil, newErr("missing asset.version")
	}
	return &gltf, nil
}
