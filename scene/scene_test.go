// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"

	"gviegas/tabletop/internal/drivertest"
)

// primitivesAsset builds a glTF document defining every
// primitive shape as the same single triangle (positions
// only, base64 data URI).
func primitivesAsset() []byte {
	var prims []string
	for _, name := range meshNames {
		prims = append(prims, fmt.Sprintf(`{"name": %q, "primitives": [{
			"attributes": {"POSITION": 0},
			"indices": 1
		}]}`, name))
	}
	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"buffers": [{
			"uri": "data:application/octet-stream;base64,AACAPwAAAAAAAAAAAAAAAAAAgD8AAAAAAAAAAAAAAAAAAIA/AAABAAIAAAA=",
			"byteLength": 44
		}],
		"bufferViews": [
			{"buffer": 0, "byteOffset": 0, "byteLength": 36},
			{"buffer": 0, "byteOffset": 36, "byteLength": 6}
		],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"},
			{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
		],
		"meshes": [%s]
	}`, strings.Join(prims, ","))
	return []byte(doc)
}

// assetFS builds the asset file system the still life
// expects: one image per texture file plus the mesh asset.
// The image decoder sniffs content, so PNG data under the
// .jpg names is fine here.
func assetFS(t *testing.T) fstest.MapFS {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("png.Encode failed:\n%#v", err)
	}
	fsys := fstest.MapFS{
		MeshFile: &fstest.MapFile{Data: primitivesAsset()},
	}
	for _, x := range textureFiles {
		fsys[x.file] = &fstest.MapFile{Data: buf.Bytes()}
	}
	return fsys
}

func newStillLife(t *testing.T) (*StillLife, *drivertest.GPU) {
	t.Helper()
	gpu := drivertest.New(16)
	s, err := New(gpu)
	if err != nil {
		t.Fatalf("scene.New failed:\n%#v", err)
	}
	return s, gpu
}

func TestPrepare(t *testing.T) {
	s, gpu := newStillLife(t)
	if err := s.Prepare(assetFS(t)); err != nil {
		t.Fatalf("StillLife.Prepare failed:\n%#v", err)
	}

	if !gpu.Blend {
		t.Fatal("blending:\nhave disabled\nwant enabled")
	}
	if n := s.Composer().Textures().Len(); n != len(textureFiles) {
		t.Fatalf("textures registered:\nhave %d\nwant %d", n, len(textureFiles))
	}
	if n := s.Composer().Materials().Len(); n != len(materials) {
		t.Fatalf("materials defined:\nhave %d\nwant %d", n, len(materials))
	}
	for _, name := range meshNames {
		if !s.Composer().Meshes().Has(name) {
			t.Fatalf("StillLife.Prepare: primitive %q not loaded", name)
		}
	}
	for i, tex := range gpu.Textures {
		if len(tex.Bound) == 0 {
			t.Fatalf("gpu.Textures[%d]: never bound", i)
		}
	}

	prog := gpu.Programs[0]
	if !prog.InUse {
		t.Fatal("program: not in use")
	}
	for _, name := range [...]string{
		"bUseLighting",
		"directionalLight.bActive",
		"pointLights[0].bActive",
		"pointLights[1].bActive",
	} {
		if !prog.Bools[name] {
			t.Fatalf("%s uniform:\nhave false\nwant true", name)
		}
	}
	want := mgl32.Vec3{-1, -0.2, 0}
	if have := prog.Vec3s["directionalLight.direction"]; have != want {
		t.Fatalf("directionalLight.direction uniform:\nhave %v\nwant %v", have, want)
	}
	want = mgl32.Vec3{4, 8, 0}
	if have := prog.Vec3s["pointLights[1].position"]; have != want {
		t.Fatalf("pointLights[1].position uniform:\nhave %v\nwant %v", have, want)
	}
}

func TestPrepareMissingTexture(t *testing.T) {
	s, _ := newStillLife(t)
	fsys := assetFS(t)
	delete(fsys, "textures/orange.jpg")
	if err := s.Prepare(fsys); err != nil {
		t.Fatalf("StillLife.Prepare failed:\n%#v", err)
	}
	if n := s.Composer().Textures().Len(); n != len(textureFiles)-1 {
		t.Fatalf("textures registered:\nhave %d\nwant %d", n, len(textureFiles)-1)
	}
	if slot := s.Composer().Textures().Slot("orange"); slot != -1 {
		t.Fatalf("Slot(\"orange\"):\nhave %d\nwant -1", slot)
	}
}

func TestPrepareMissingMeshes(t *testing.T) {
	s, _ := newStillLife(t)
	fsys := assetFS(t)
	delete(fsys, MeshFile)
	if err := s.Prepare(fsys); err == nil {
		t.Fatal("StillLife.Prepare:\nhave nil error\nwant non-nil")
	}
}

func TestRender(t *testing.T) {
	s, gpu := newStillLife(t)
	if err := s.Prepare(assetFS(t)); err != nil {
		t.Fatalf("StillLife.Prepare failed:\n%#v", err)
	}
	if err := s.Render(); err != nil {
		t.Fatalf("StillLife.Render failed:\n%#v", err)
	}

	// Shape index in gpu.Meshes follows meshNames order.
	draws := make(map[string]int)
	for i, name := range meshNames {
		draws[name] = gpu.Meshes[i].Draws
	}
	for _, x := range [...]struct {
		name string
		want int
	}{
		{"plane", 2},
		{"sphere", 2},
		{"box", 3},
		{"cylinder", 7},
		{"torus", 1},
		{"taperedcylinder", 1},
		{"cone", 0},
		{"prism", 0},
		{"pyramid4", 0},
	} {
		if draws[x.name] != x.want {
			t.Fatalf("%s draws:\nhave %d\nwant %d", x.name, draws[x.name], x.want)
		}
	}

	var total int
	for _, n := range draws {
		total += n
	}
	if total != 16 {
		t.Fatalf("total draws:\nhave %d\nwant 16", total)
	}
}

func TestSetCamera(t *testing.T) {
	s, gpu := newStillLife(t)
	view := mgl32.LookAtV(mgl32.Vec3{0, 5, 12}, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9, 0.1, 100)
	s.SetCamera(view, proj, mgl32.Vec3{0, 5, 12})

	prog := gpu.Programs[0]
	if have := prog.Mat4s["view"]; have != view {
		t.Fatalf("view uniform:\nhave %v\nwant %v", have, view)
	}
	if have := prog.Mat4s["projection"]; have != proj {
		t.Fatalf("projection uniform:\nhave %v\nwant %v", have, proj)
	}
	want := mgl32.Vec3{0, 5, 12}
	if have := prog.Vec3s["viewPosition"]; have != want {
		t.Fatalf("viewPosition uniform:\nhave %v\nwant %v", have, want)
	}
}

func TestFree(t *testing.T) {
	s, gpu := newStillLife(t)
	if err := s.Prepare(assetFS(t)); err != nil {
		t.Fatalf("StillLife.Prepare failed:\n%#v", err)
	}
	s.Free()
	for i, x := range gpu.Textures {
		if !x.Destroyed {
			t.Fatalf("gpu.Textures[%d]: not destroyed", i)
		}
	}
	for i, m := range gpu.Meshes {
		if !m.Destroyed {
			t.Fatalf("gpu.Meshes[%d]: not destroyed", i)
		}
	}
	if !gpu.Programs[0].Destroyed {
		t.Fatal("program: not destroyed")
	}
}
