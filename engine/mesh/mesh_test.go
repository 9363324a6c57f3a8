// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package mesh

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"testing"

	"gviegas/tabletop/internal/drivertest"
)

var (
	quadPos  = []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}
	quadNorm = []float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1}
	quadUV   = []float32{0, 0, 1, 0, 1, 1, 0, 1}
	quadIdx  = []uint16{0, 1, 2, 2, 3, 0}
)

// assetBuffer packs the quad attributes and indices into
// a single buffer: positions, normals, uvs, indices.
func assetBuffer() []byte {
	le := binary.LittleEndian
	var b []byte
	for _, s := range [][]float32{quadPos, quadNorm, quadUV} {
		for _, f := range s {
			b = le.AppendUint32(b, math.Float32bits(f))
		}
	}
	for _, i := range quadIdx {
		b = le.AppendUint16(b, i)
	}
	return b
}

// assetJSON builds the glTF document. bufferField selects
// between a data URI and a GLB BIN reference.
func assetJSON(bufferField string) string {
	return fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"buffers": [{%s"byteLength": 140}],
		"bufferViews": [
			{"buffer": 0, "byteOffset": 0, "byteLength": 48},
			{"buffer": 0, "byteOffset": 48, "byteLength": 48},
			{"buffer": 0, "byteOffset": 96, "byteLength": 32},
			{"buffer": 0, "byteOffset": 128, "byteLength": 12}
		],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 4, "type": "VEC3"},
			{"bufferView": 1, "componentType": 5126, "count": 4, "type": "VEC3"},
			{"bufferView": 2, "componentType": 5126, "count": 4, "type": "VEC2"},
			{"bufferView": 3, "componentType": 5123, "count": 6, "type": "SCALAR"},
			{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}
		],
		"meshes": [
			{"name": "quad", "primitives": [{
				"attributes": {"POSITION": 0, "NORMAL": 1, "TEXCOORD_0": 2},
				"indices": 3
			}]},
			{"name": "tri", "primitives": [{
				"attributes": {"POSITION": 4}
			}]}
		]
	}`, bufferField)
}

func dataURIAsset() []byte {
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(assetBuffer())
	return []byte(assetJSON(`"uri": "` + uri + `", `))
}

func glbAsset() []byte {
	doc := []byte(assetJSON(""))
	for len(doc)&3 != 0 {
		doc = append(doc, ' ')
	}
	bin := assetBuffer()
	for len(bin)&3 != 0 {
		bin = append(bin, 0)
	}
	le := binary.LittleEndian
	var b []byte
	b = le.AppendUint32(b, 0x46546c67) // magic
	b = le.AppendUint32(b, 2)
	b = le.AppendUint32(b, uint32(12+8+len(doc)+8+len(bin)))
	b = le.AppendUint32(b, uint32(len(doc)))
	b = le.AppendUint32(b, 0x4e4f534a) // JSON
	b = append(b, doc...)
	b = le.AppendUint32(b, uint32(len(bin)))
	b = le.AppendUint32(b, 0x004e4942) // BIN
	b = append(b, bin...)
	return b
}

func checkAsset(t *testing.T, gpu *drivertest.GPU, lib *Library) {
	t.Helper()
	if n := lib.Len(); n != 2 {
		t.Fatalf("Library.Len:\nhave %d\nwant 2", n)
	}
	for _, name := range [...]string{"quad", "tri"} {
		if !lib.Has(name) {
			t.Fatalf("Library.Has(%q):\nhave false\nwant true", name)
		}
	}
	if n := len(gpu.Meshes); n != 2 {
		t.Fatalf("len(gpu.Meshes):\nhave %d\nwant 2", n)
	}

	quad := gpu.Meshes[0]
	if n := len(quad.Verts); n != 4*8 {
		t.Fatalf("quad vertex floats:\nhave %d\nwant 32", n)
	}
	for v := 0; v < 4; v++ {
		have := quad.Verts[v*8 : v*8+8]
		want := [8]float32{
			quadPos[v*3], quadPos[v*3+1], quadPos[v*3+2],
			quadNorm[v*3], quadNorm[v*3+1], quadNorm[v*3+2],
			quadUV[v*2], quadUV[v*2+1],
		}
		for c := range want {
			if have[c] != want[c] {
				t.Fatalf("quad vertex %d:\nhave %v\nwant %v", v, have, want)
			}
		}
	}
	if n := len(quad.Indices); n != 6 {
		t.Fatalf("quad indices:\nhave %d\nwant 6", n)
	}
	for i, x := range quadIdx {
		if quad.Indices[i] != uint32(x) {
			t.Fatalf("quad index %d:\nhave %d\nwant %d", i, quad.Indices[i], x)
		}
	}

	tri := gpu.Meshes[1]
	if n := len(tri.Verts); n != 3*8 {
		t.Fatalf("tri vertex floats:\nhave %d\nwant 24", n)
	}
	// Missing attributes must be zero-filled, missing
	// indices generated in order.
	for v := 0; v < 3; v++ {
		for c := 3; c < 8; c++ {
			if x := tri.Verts[v*8+c]; x != 0 {
				t.Fatalf("tri vertex %d, float %d:\nhave %v\nwant 0", v, c, x)
			}
		}
	}
	for i, x := range tri.Indices {
		if x != uint32(i) {
			t.Fatalf("tri index %d:\nhave %d\nwant %d", i, x, i)
		}
	}
}

func TestLoad(t *testing.T) {
	gpu := drivertest.New(16)
	lib := NewLibrary(gpu)
	if err := lib.Load(dataURIAsset(), nil); err != nil {
		t.Fatalf("Library.Load failed:\n%#v", err)
	}
	checkAsset(t, gpu, lib)
}

func TestLoadGLB(t *testing.T) {
	gpu := drivertest.New(16)
	lib := NewLibrary(gpu)
	if err := lib.Load(glbAsset(), nil); err != nil {
		t.Fatalf("Library.Load failed:\n%#v", err)
	}
	checkAsset(t, gpu, lib)
}

func TestLoadAgain(t *testing.T) {
	lib := NewLibrary(drivertest.New(16))
	if err := lib.Load(dataURIAsset(), nil); err != nil {
		t.Fatalf("Library.Load failed:\n%#v", err)
	}
	err := lib.Load(dataURIAsset(), nil)
	if err == nil {
		t.Fatal("Library.Load:\nhave nil error\nwant duplicate-mesh failure")
	}
	if !strings.Contains(err.Error(), "already loaded") {
		t.Fatalf("Library.Load: error:\nhave %q\nwant name clash", err)
	}
}

func TestDraw(t *testing.T) {
	gpu := drivertest.New(16)
	lib := NewLibrary(gpu)
	if err := lib.Load(dataURIAsset(), nil); err != nil {
		t.Fatalf("Library.Load failed:\n%#v", err)
	}
	for i := 0; i < 3; i++ {
		if err := lib.Draw("quad"); err != nil {
			t.Fatalf("Library.Draw failed:\n%#v", err)
		}
	}
	if n := gpu.Meshes[0].Draws; n != 3 {
		t.Fatalf("quad draws:\nhave %d\nwant 3", n)
	}
	if n := gpu.Meshes[1].Draws; n != 0 {
		t.Fatalf("tri draws:\nhave %d\nwant 0", n)
	}
	if err := lib.Draw("cube"); err == nil {
		t.Fatal("Library.Draw(\"cube\"):\nhave nil error\nwant non-nil")
	}
}

func TestFree(t *testing.T) {
	gpu := drivertest.New(16)
	lib := NewLibrary(gpu)
	if err := lib.Load(dataURIAsset(), nil); err != nil {
		t.Fatalf("Library.Load failed:\n%#v", err)
	}
	lib.Free()
	if n := lib.Len(); n != 0 {
		t.Fatalf("Library.Len:\nhave %d\nwant 0", n)
	}
	for i, m := range gpu.Meshes {
		if !m.Destroyed {
			t.Fatalf("gpu.Meshes[%d]: not destroyed", i)
		}
	}
	if err := lib.Load(dataURIAsset(), nil); err != nil {
		t.Fatalf("Library.Load after Free failed:\n%#v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, x := range [...]struct {
		name string
		doc  string
	}{
		{"unnamedMesh", `{
			"asset": {"version": "2.0"},
			"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}]
		}`},
		{"noPrimitives", `{
			"asset": {"version": "2.0"},
			"meshes": [{"name": "empty", "primitives": []}]
		}`},
		{"noPosition", `{
			"asset": {"version": "2.0"},
			"meshes": [{"name": "m", "primitives": [{"attributes": {}}]}]
		}`},
		{"badAccessor", `{
			"asset": {"version": "2.0"},
			"meshes": [{"name": "m", "primitives": [{"attributes": {"POSITION": 7}}]}]
		}`},
		{"badMode", `{
			"asset": {"version": "2.0"},
			"meshes": [{"name": "m", "primitives": [{"attributes": {"POSITION": 0}, "mode": 0}]}]
		}`},
	} {
		lib := NewLibrary(drivertest.New(16))
		if err := lib.Load([]byte(x.doc), nil); err == nil {
			t.Fatalf("Library.Load(%s):\nhave nil error\nwant non-nil", x.name)
		}
	}
}
