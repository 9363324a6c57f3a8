// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package material implements the tagged palette of
// material descriptors used by the composer.
package material

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

const prefix = "material: "

func newErr(reason string) error { return errors.New(prefix + reason) }

// Material is a named bundle of lighting-response color
// coefficients and a shininess exponent.
// Diffuse carries an alpha component for translucent
// surfaces; Ambient is scaled by AmbientStrength before
// use.
type Material struct {
	Tag             string
	Ambient         mgl32.Vec3
	AmbientStrength float32
	Diffuse         mgl32.Vec4
	Specular        mgl32.Vec3
	Shininess       float32
}

// Palette is a growable list of material descriptors.
// It is populated once during scene setup and read-only
// thereafter. Tags are unique within a palette.
// The zero value is an empty palette ready for use.
type Palette struct {
	mats []Material
}

// Define appends m to the palette.
// It fails if m.Tag is empty or already defined.
func (p *Palette) Define(m Material) error {
	if m.Tag == "" {
		return newErr("empty tag")
	}
	if _, ok := p.Lookup(m.Tag); ok {
		return newErr("tag already defined: " + m.Tag)
	}
	p.mats = append(p.mats, m)
	return nil
}

// Lookup returns the material defined under tag.
// ok is false if the tag is absent.
func (p *Palette) Lookup(tag string) (m Material, ok bool) {
	for i := range p.mats {
		if p.mats[i].Tag == tag {
			return p.mats[i], true
		}
	}
	return
}

// Len returns the number of defined materials.
func (p *Palette) Len() int { return len(p.mats) }
