// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package gl implements the driver interfaces on top of
// OpenGL 4.1 core.
// New must be called from the thread on which the OpenGL
// context is current, and every method of every resource
// it creates must be called from that same thread.
package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"gviegas/tabletop/driver"
)

// GPU implements driver.GPU on an OpenGL 4.1 core context.
type GPU struct {
	limits driver.Limits
}

// New loads the OpenGL function pointers of the current
// context and queries its limits.
// It fails if no context is current on the calling thread.
func New() (*GPU, error) {
	if err := gl.Init(); err != nil {
		return nil, driver.ErrNoContext
	}
	var units int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &units)
	return &GPU{
		limits: driver.Limits{MaxTexUnits: int(units)},
	}, nil
}

// Limits returns the implementation limits.
func (g *GPU) Limits() driver.Limits { return g.limits }

// SetBlend toggles alpha blending.
func (g *GPU) SetBlend(enable bool) {
	if enable {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}
