// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package light defines the static light sources of a
// scene and their mapping onto program uniforms.
package light

import (
	"errors"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"gviegas/tabletop/driver"
)

const prefix = "light: "

// MaxPoint is the number of point-light uniform blocks the
// program defines.
const MaxPoint = 4

// Distant is a directional light. It behaves as if located
// infinitely far away, emitting in Direction.
type Distant struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// Apply writes the directionalLight uniform block of prog
// and marks it active.
func (l *Distant) Apply(prog driver.Program) {
	prog.SetVec3("directionalLight.direction", l.Direction)
	prog.SetVec3("directionalLight.ambient", l.Ambient)
	prog.SetVec3("directionalLight.diffuse", l.Diffuse)
	prog.SetVec3("directionalLight.specular", l.Specular)
	prog.SetBool("directionalLight.bActive", true)
}

// Point is an omnidirectional, positional light emitting
// in all directions from Position.
type Point struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Apply writes the index-th pointLights uniform block of
// prog and marks it active.
// index must be in [0, MaxPoint).
func (l *Point) Apply(prog driver.Program, index int) error {
	if index < 0 || index >= MaxPoint {
		return errors.New(prefix + "point light index out of range")
	}
	name := "pointLights[" + strconv.Itoa(index) + "]"
	prog.SetVec3(name+".position", l.Position)
	prog.SetVec3(name+".ambient", l.Ambient)
	prog.SetVec3(name+".diffuse", l.Diffuse)
	prog.SetVec3(name+".specular", l.Specular)
	prog.SetBool(name+".bActive", true)
	return nil
}
