// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"gviegas/tabletop/driver"
	"gviegas/tabletop/engine/material"
	"gviegas/tabletop/engine/mesh"
	"gviegas/tabletop/engine/texture"
	"gviegas/tabletop/internal/logx"
)

// Composer drives a shader program through the per-draw
// state sequence of a fixed-function-style scene: set the
// model transform, pick a color or a texture, pick a
// material, then draw a named mesh.
// It owns no GPU resources itself; the registries do.
type Composer struct {
	prog driver.Program
	tex  *texture.Registry
	mat  *material.Palette
	mesh *mesh.Library
}

// New creates a composer over prog and the given
// registries.
func New(prog driver.Program, tex *texture.Registry, mat *material.Palette, msh *mesh.Library) *Composer {
	return &Composer{prog, tex, mat, msh}
}

// Program returns the composed program, for uniforms the
// composer does not manage (camera, lights).
func (c *Composer) Program() driver.Program { return c.prog }

// Textures returns the texture registry.
func (c *Composer) Textures() *texture.Registry { return c.tex }

// Materials returns the material palette.
func (c *Composer) Materials() *material.Palette { return c.mat }

// Meshes returns the mesh library.
func (c *Composer) Meshes() *mesh.Library { return c.mesh }

// SetTransform uploads t as the model matrix.
func (c *Composer) SetTransform(t Transform) {
	c.prog.SetMat4("model", t.Matrix())
}

// SetColor disables texturing and sets the flat object
// color for subsequent draws.
func (c *Composer) SetColor(r, g, b, a float32) {
	c.prog.SetBool("bUseTexture", false)
	c.prog.SetVec4("objectColor", mgl32.Vec4{r, g, b, a})
}

// SetTexture enables texturing and points the object
// sampler at the unit holding the tagged texture.
// An unregistered tag forwards the not-found sentinel to
// the sampler and the draw proceeds untextured in effect;
// it is logged but not an error.
func (c *Composer) SetTexture(tag string) {
	slot := c.tex.Slot(tag)
	if slot < 0 {
		logx.Logger().Info("texture tag not bound", "tag", tag)
	}
	c.prog.SetBool("bUseTexture", true)
	c.prog.SetSampler("objectTexture", slot)
}

// SetUVScale sets the texture coordinate scaling of
// subsequent draws.
func (c *Composer) SetUVScale(u, v float32) {
	c.prog.SetVec2("UVscale", mgl32.Vec2{u, v})
}

// SetMaterial uploads the tagged material descriptor.
// An undefined tag leaves the material uniforms at their
// previous values.
func (c *Composer) SetMaterial(tag string) {
	m, ok := c.mat.Lookup(tag)
	if !ok {
		logx.Logger().Info("material tag not defined", "tag", tag)
		return
	}
	c.prog.SetVec3("material.diffuseColor", mgl32.Vec3{m.Diffuse[0], m.Diffuse[1], m.Diffuse[2]})
	c.prog.SetVec3("material.specularColor", m.Specular)
	c.prog.SetFloat("material.shininess", m.Shininess)
}

// SetMaterialOverride uploads ad-hoc reflectance values in
// place of a palette entry, for objects whose look is tuned
// directly at draw time.
func (c *Composer) SetMaterialOverride(ambient, diffuse, specular mgl32.Vec3, shininess float32) {
	c.prog.SetVec3("material.ambient", ambient)
	c.prog.SetVec3("material.diffuse", diffuse)
	c.prog.SetVec3("material.specular", specular)
	c.prog.SetFloat("material.shininess", shininess)
}

// Draw draws the named mesh with the currently set state.
func (c *Composer) Draw(name string) error {
	return c.mesh.Draw(name)
}
