// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gviegas/tabletop/driver"
)

const texPrefix = "gl: texture: "

// texture implements driver.Texture.
type texture struct {
	id uint32
}

// NewTexture creates a 2D texture from CPU data, with
// repeat wrapping and linear filtering.
func (g *GPU) NewTexture(param *driver.TexParam) (driver.Texture, error) {
	var reason string
	switch {
	case param == nil:
		reason = "nil param"
	case param.Width < 1, param.Height < 1:
		reason = "invalid size"
	case len(param.Pixels) < param.Width*param.Height*param.Format.Size():
		reason = "insufficient pixel data"
	default:
		goto validParam
	}
	return nil, errors.New(texPrefix + reason)
validParam:
	var ifmt int32
	var fmt uint32
	switch param.Format {
	case driver.RGBA8:
		ifmt, fmt = gl.RGBA8, gl.RGBA
	case driver.RGB8:
		ifmt, fmt = gl.RGB8, gl.RGB
	default:
		return nil, errors.New(texPrefix + "undefined pixel format")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	if param.Mipmap {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// RGB8 rows are not 4-byte aligned in general.
	if param.Format == driver.RGB8 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		defer gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, ifmt,
		int32(param.Width), int32(param.Height), 0,
		fmt, gl.UNSIGNED_BYTE, gl.Ptr(param.Pixels))
	if param.Mipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &texture{id}, nil
}

// Bind makes the texture current on the given unit.
func (t *texture) Bind(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Destroy deletes the texture object.
func (t *texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
	}
	*t = texture{}
}
