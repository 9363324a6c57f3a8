// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package engine implements the scene composer that drives
// the shader program and the texture/material/mesh registries.
package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform describes the placement of one drawn object.
// Rotation angles are given in degrees.
type Transform struct {
	Scale    mgl32.Vec3
	RotX     float32
	RotY     float32
	RotZ     float32
	Position mgl32.Vec3
}

// Matrix composes the model matrix as
//
//	translation * rotationZ * rotationY * rotationX * scale
//
// so scaling applies first and translation last.
func (t *Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotZ)))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotY)))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotX)))
	m = m.Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
	return m
}
