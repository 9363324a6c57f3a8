// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package scene implements the tabletop still life: a
// wooden floor and backdrop, an orange with leaf, stem and
// sticker, a lime-green lighter, a ceramic cup and a water
// bottle, lit by one distant and two point lights.
package scene

import (
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"

	"gviegas/tabletop/driver"
	"gviegas/tabletop/engine"
	"gviegas/tabletop/engine/light"
	"gviegas/tabletop/engine/material"
	"gviegas/tabletop/engine/mesh"
	"gviegas/tabletop/engine/texture"
	"gviegas/tabletop/internal/logx"
)

// MeshFile is the glTF asset holding the primitive shapes,
// relative to the asset file system.
const MeshFile = "meshes/primitives.glb"

// The primitive shapes that MeshFile must define.
var meshNames = [...]string{
	"box",
	"plane",
	"cylinder",
	"cone",
	"prism",
	"pyramid4",
	"sphere",
	"taperedcylinder",
	"torus",
}

// Texture image files and the tags they bind to.
var textureFiles = [...]struct{ file, tag string }{
	{"textures/floor.jpg", "floor"},
	{"textures/background.jpg", "background"},
	{"textures/orange.jpg", "orange"},
	{"textures/stem.jpg", "stem"},
	{"textures/leaf.jpg", "leaf"},
	{"textures/orangesticker.jpg", "orangesticker"},
	{"textures/lighter.jpg", "lighter"},
	{"textures/cup.jpg", "cup"},
	{"textures/waterbottle.jpg", "waterbottle"},
	{"textures/white.jpg", "white"},
	{"textures/waterbottlecap.jpg", "thecap"},
	{"textures/waterbottlelabel.jpg", "thelabel"},
	{"textures/cuplabel.jpg", "cuplabel"},
	{"textures/lightertop.jpg", "lightertop"},
}

// The material palette of the still life.
var materials = [...]material.Material{
	{
		Tag:       "floors",
		Diffuse:   mgl32.Vec4{0.6, 0.4, 0.2, 1},
		Specular:  mgl32.Vec3{0.2, 0.1, 0},
		Shininess: 20,
	},
	{
		Tag:             "wall",
		Ambient:         mgl32.Vec3{1, 1, 1},
		AmbientStrength: 0.5,
		Diffuse:         mgl32.Vec4{1, 1, 1, 1},
		Specular:        mgl32.Vec3{1, 1, 1},
		Shininess:       64,
	},
	{
		Tag:     "oranges2",
		Diffuse: mgl32.Vec4{1, 0.65, 0, 0.8},
	},
	{
		Tag:       "leafs",
		Diffuse:   mgl32.Vec4{0, 0.6, 0, 0.9},
		Specular:  mgl32.Vec3{0, 0.2, 0},
		Shininess: 10,
	},
	{
		Tag:       "stems",
		Diffuse:   mgl32.Vec4{0.3, 0.2, 0.1, 1},
		Specular:  mgl32.Vec3{0.1, 0.1, 0},
		Shininess: 10,
	},
	{
		Tag:     "stickers",
		Diffuse: mgl32.Vec4{1, 1, 1, 0.6},
	},
	{
		Tag:       "lighters",
		Diffuse:   mgl32.Vec4{0, 1, 0, 0.8},
		Specular:  mgl32.Vec3{0.8, 0.8, 0.8},
		Shininess: 50,
	},
	{
		Tag:       "cups",
		Diffuse:   mgl32.Vec4{0, 0.8, 0, 1},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 30,
	},
	{
		Tag:       "plastic",
		Diffuse:   mgl32.Vec4{1, 1, 1, 0.9},
		Specular:  mgl32.Vec3{1, 1, 1},
		Shininess: 200,
	},
	{
		Tag:             "wood",
		Ambient:         mgl32.Vec3{0.4, 0.3, 0.1},
		AmbientStrength: 0.2,
		Diffuse:         mgl32.Vec4{0.3, 0.2, 0.1, 1},
		Specular:        mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       0.3,
	},
	{
		Tag:             "red",
		Ambient:         mgl32.Vec3{1, 0, 0},
		AmbientStrength: 0.8,
		Diffuse:         mgl32.Vec4{1, 0.1, 0.1, 1},
		Specular:        mgl32.Vec3{1, 0, 0},
		Shininess:       0.05,
	},
}

// StillLife owns the program and resources of the scene.
// Create with New, then Prepare once, then Render each
// frame between the caller's clear and buffer swap.
type StillLife struct {
	gpu  driver.GPU
	comp *engine.Composer
}

// New compiles the scene's shader program and sets up the
// empty registries.
func New(gpu driver.GPU) (*StillLife, error) {
	prog, err := gpu.NewProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	var pal material.Palette
	comp := engine.New(prog, texture.NewRegistry(gpu), &pal, mesh.NewLibrary(gpu))
	return &StillLife{gpu, comp}, nil
}

// Composer returns the scene's composer.
func (s *StillLife) Composer() *engine.Composer { return s.comp }

// Prepare loads textures, defines the material palette,
// configures the lights and loads the primitive meshes
// from fsys. It must be called once before Render.
// A texture that fails to load is logged and its tag left
// unbound; the scene still renders, untextured there.
func (s *StillLife) Prepare(fsys fs.FS) error {
	s.gpu.SetBlend(true)

	for _, t := range textureFiles {
		if err := s.comp.Textures().LoadFile(fsys, t.file, t.tag); err != nil {
			logx.Logger().Warn("texture unavailable",
				"file", t.file,
				"tag", t.tag,
				"err", err)
		}
	}
	s.comp.Textures().BindAll()

	for i := range materials {
		if err := s.comp.Materials().Define(materials[i]); err != nil {
			return err
		}
	}

	s.setupLights()

	if err := s.comp.Meshes().LoadFile(fsys, MeshFile); err != nil {
		return err
	}
	for _, name := range meshNames {
		if !s.comp.Meshes().Has(name) {
			logx.Logger().Warn("primitive missing from mesh asset", "name", name)
		}
	}

	prog := s.comp.Program()
	prog.Use()
	s.comp.SetUVScale(1, 1)
	return nil
}

func (s *StillLife) setupLights() {
	prog := s.comp.Program()
	prog.SetBool("bUseLighting", true)

	sun := light.Distant{
		Direction: mgl32.Vec3{-1, -0.2, 0},
		Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
	}
	sun.Apply(prog)

	left := light.Point{
		Position: mgl32.Vec3{-4, 8, 0},
		Ambient:  mgl32.Vec3{0.1, 0.1, 0.1},
		Diffuse:  mgl32.Vec3{0.6, 0.6, 0.6},
		Specular: mgl32.Vec3{0.3, 0.3, 0.3},
	}
	left.Apply(prog, 0)

	right := light.Point{
		Position: mgl32.Vec3{4, 8, 0},
		Ambient:  mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:  mgl32.Vec3{1, 1, 1},
		Specular: mgl32.Vec3{0.5, 0.5, 0.5},
	}
	right.Apply(prog, 1)
}

// SetCamera uploads the per-frame view state.
func (s *StillLife) SetCamera(view, projection mgl32.Mat4, position mgl32.Vec3) {
	prog := s.comp.Program()
	prog.SetMat4("view", view)
	prog.SetMat4("projection", projection)
	prog.SetVec3("viewPosition", position)
}

// Render issues the draw sequence of the still life.
// The composition is fixed; only the camera varies between
// frames.
func (s *StillLife) Render() error {
	c := s.comp
	white := mgl32.Vec3{1, 1, 1}

	// Floor.
	c.SetTransform(engine.Transform{
		Scale: mgl32.Vec3{20, 1, 10},
	})
	c.SetMaterial("wood")
	c.SetTexture("floor")
	c.SetMaterialOverride(white, white, white, 32)
	if err := c.Draw("plane"); err != nil {
		return err
	}

	// Backdrop.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{20, 1, 10},
		RotX:     90,
		Position: mgl32.Vec3{0, 9, -10},
	})
	c.SetTexture("background")
	c.SetMaterial("wood")
	c.SetMaterialOverride(white, white, white, 32)
	if err := c.Draw("plane"); err != nil {
		return err
	}

	// Orange.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{2, 2, 2},
		Position: mgl32.Vec3{5, 1.75, -3},
	})
	c.SetTexture("orange")
	c.SetMaterial("oranges2")
	c.SetMaterialOverride(
		mgl32.Vec3{0.9, 0.4, 0},
		mgl32.Vec3{0.9, 0.4, 0},
		mgl32.Vec3{0.2, 0.2, 0.2}, 16)
	if err := c.Draw("sphere"); err != nil {
		return err
	}

	// Leaf on the orange.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.2, 0.2, 0.6},
		RotX:     45,
		Position: mgl32.Vec3{5, 4.25, -3},
	})
	c.SetTexture("leaf")
	c.SetMaterial("leafs")
	c.SetMaterialOverride(
		mgl32.Vec3{0, 0.5, 0},
		mgl32.Vec3{0, 0.8, 0},
		mgl32.Vec3{0.1, 0.1, 0.1}, 16)
	if err := c.Draw("box"); err != nil {
		return err
	}

	// Stem on the orange.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.1, 0.5, 0.2},
		Position: mgl32.Vec3{5, 3.75, -3},
	})
	c.SetTexture("stem")
	c.SetMaterial("stems")
	c.SetMaterialOverride(
		mgl32.Vec3{0.3, 0.2, 0.1},
		mgl32.Vec3{0.4, 0.3, 0.2},
		mgl32.Vec3{0.1, 0.1, 0.1}, 16)
	if err := c.Draw("cylinder"); err != nil {
		return err
	}

	// Sticker on the orange. The "sticker" tag is never
	// loaded; the sampler gets the not-found sentinel and
	// the sticker renders untextured.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.5, 0.5, 0.01},
		Position: mgl32.Vec3{5, 2.01, -3},
	})
	c.SetTexture("sticker")
	c.SetMaterial("stickers")
	c.SetMaterialOverride(white, white, mgl32.Vec3{0.1, 0.1, 0.1}, 16)
	if err := c.Draw("cylinder"); err != nil {
		return err
	}

	// Lighter body, lying on its side.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.5, 0.5, 1.5},
		RotZ:     90,
		Position: mgl32.Vec3{10, 0.28, -3},
	})
	c.SetTexture("lighter")
	c.SetMaterial("lighters")
	c.SetMaterialOverride(
		mgl32.Vec3{0.7, 1, 0.7},
		mgl32.Vec3{0.8, 1, 0.8},
		mgl32.Vec3{0.9, 0.9, 0.9}, 128)
	if err := c.Draw("cylinder"); err != nil {
		return err
	}

	// Lighter bottom piece.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.5, 0.5, 0.4},
		RotZ:     90,
		Position: mgl32.Vec3{10, 0.2, -2},
	})
	c.SetTexture("white")
	if err := c.Draw("cylinder"); err != nil {
		return err
	}

	// Lighter top.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.4, 0.5, 0.7},
		Position: mgl32.Vec3{9.65, 0.38, -3.9},
	})
	c.SetTexture("lightertop")
	c.SetMaterial("red")
	if err := c.Draw("box"); err != nil {
		return err
	}

	// Ceramic cup.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{2, 3.75, 1},
		Position: mgl32.Vec3{-9, -1, -3},
	})
	c.SetTexture("cup")
	c.SetMaterial("cups")
	c.SetMaterialOverride(
		mgl32.Vec3{0, 0.5, 0},
		mgl32.Vec3{0.1, 0.8, 0.1},
		mgl32.Vec3{0.6, 0.6, 0.6}, 128)
	if err := c.Draw("cylinder"); err != nil {
		return err
	}

	// Cup handle.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.8, 1.2, 0.2},
		RotZ:     90,
		Position: mgl32.Vec3{-10.5, 1.5, -2.25},
	})
	c.SetMaterialOverride(
		mgl32.Vec3{0.3, 0.6, 0.3},
		mgl32.Vec3{0.4, 0.8, 0.4},
		mgl32.Vec3{0.6, 0.9, 0.6}, 64)
	if err := c.Draw("torus"); err != nil {
		return err
	}

	// Cup label.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.8, 0.5, 1},
		RotX:     90,
		Position: mgl32.Vec3{-8.25, 1.25, -1.5},
	})
	c.SetTexture("cuplabel")
	c.SetMaterialOverride(white, white, white, 32)
	if err := c.Draw("taperedcylinder"); err != nil {
		return err
	}

	// Water bottle.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{1, 6, 0.5},
		Position: mgl32.Vec3{-2, -1.25, -3},
	})
	c.SetTexture("waterbottle")
	c.SetMaterial("plastic")
	if err := c.Draw("cylinder"); err != nil {
		return err
	}

	// Domed bottle top.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{1, 0.75, 0.5},
		Position: mgl32.Vec3{-2, 4.75, -3},
	})
	c.SetMaterialOverride(white, white, white, 32)
	if err := c.Draw("sphere"); err != nil {
		return err
	}

	// Bottle cap.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{0.4, 0.4, 0.05},
		Position: mgl32.Vec3{-2, 5.5, -3},
	})
	c.SetTexture("thecap")
	c.SetMaterial("plastic")
	c.SetMaterialOverride(white, white, white, 32)
	if err := c.Draw("cylinder"); err != nil {
		return err
	}

	// Bottle label.
	c.SetTransform(engine.Transform{
		Scale:    mgl32.Vec3{2, 1.6, 0.1},
		Position: mgl32.Vec3{-1.8, 2.75, -2.5},
	})
	c.SetTexture("thelabel")
	c.SetMaterialOverride(white, white, white, 32)
	if err := c.Draw("box"); err != nil {
		return err
	}

	return nil
}

// Free releases every GPU resource of the scene.
// The StillLife must not be used afterwards.
func (s *StillLife) Free() {
	s.comp.Textures().Free()
	s.comp.Meshes().Free()
	s.comp.Program().Destroy()
}
