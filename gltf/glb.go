// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"encoding/binary"
)

// GLB header/chunk field offsets, in bytes.
const (
	headerMagic   = 0
	headerVersion = 4
	headerLength  = 8
	headerSize    = 12
	chunkSize     = 8
)

const (
	magic = 0x46546c67

	typeJSON = 0x4e4f534a
	typeBIN  = 0x004e4942
)

// IsGLB returns whether b holds a binary glTF (version 2).
func IsGLB(b []byte) bool {
	if len(b) < headerSize {
		return false
	}
	le := binary.LittleEndian
	return le.Uint32(b[headerMagic:]) == magic && le.Uint32(b[headerVersion:]) == 2
}

// SplitGLB splits a GLB blob into its JSON document and
// its (possibly absent) BIN chunk payload.
// The returned slices alias b.
func SplitGLB(b []byte) (doc, bin []byte, err error) {
	if !IsGLB(b) {
		err = newErr("not a GLB blob")
		return
	}
	le := binary.LittleEndian
	if n := int64(le.Uint32(b[headerLength:])); n > int64(len(b)) {
		err = newErr("truncated GLB blob")
		return
	}
	off := headerSize
	for off+chunkSize <= len(b) {
		n := int(le.Uint32(b[off:]))
		typ := le.Uint32(b[off+4:])
		off += chunkSize
		if n < 0 || off+n > len(b) {
			err = newErr("invalid GLB chunk")
			return
		}
		switch typ {
		case typeJSON:
			doc = b[off : off+n]
		case typeBIN:
			bin = b[off : off+n]
		}
		// Chunks are 4-byte aligned.
		off += n + (4-n&3)&3
	}
	if doc == nil {
		err = newErr("GLB blob has no JSON chunk")
	}
	return
}
