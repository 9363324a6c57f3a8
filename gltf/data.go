// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"encoding/base64"
	"io"
	"io/fs"
	"strings"
)

// Data-URI prefixes that buffers may use.
var dataPrefixes = [...]string{
	"data:application/octet-stream;base64,",
	"data:application/gltf-buffer;base64,",
}

// Resolve returns the payload of buffer b.
// bin is the BIN chunk of the enclosing GLB blob, if any;
// a buffer with no URI refers to it. Buffers with data
// URIs are decoded in place. Any other URI is opened
// relative to fsys.
func (b *Buffer) Resolve(bin []byte, fsys fs.FS) ([]byte, error) {
	var data []byte
	switch {
	case b.URI == "":
		if bin == nil {
			return nil, newErr("buffer has no URI and no BIN chunk")
		}
		data = bin
	case strings.HasPrefix(b.URI, "data:"):
		var enc string
		for _, p := range dataPrefixes {
			if strings.HasPrefix(b.URI, p) {
				enc = b.URI[len(p):]
				break
			}
		}
		if enc == "" {
			return nil, newErr("unsupported data URI")
		}
		var err error
		data, err = base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return nil, err
		}
	default:
		if fsys == nil {
			return nil, newErr("external buffer URI with no file system")
		}
		f, err := fsys.Open(b.URI)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			return nil, err
		}
	}
	if int64(len(data)) < b.ByteLength {
		return nil, newErr("buffer payload shorter than byteLength")
	}
	return data[:b.ByteLength], nil
}
