// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package texture implements the tagged texture registry.
// Image files are decoded, flipped to bottom-up row order
// and uploaded to the GPU; each loaded texture is assigned
// a texture slot, which doubles as the texture unit it
// binds to.
package texture

import (
	"errors"
	"image"
	"io"
	"io/fs"

	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"gviegas/tabletop/driver"
	"gviegas/tabletop/internal/bitvec"
	"gviegas/tabletop/internal/logx"
)

const prefix = "texture: "

func newErr(reason string) error { return errors.New(prefix + reason) }

type entry struct {
	tag  string
	tex  driver.Texture
	slot int
}

// Registry maps string tags to loaded textures and their
// slots. Its capacity is the texture unit budget of the
// GPU; loading past it fails.
// The zero value is not valid; use NewRegistry.
type Registry struct {
	gpu     driver.GPU
	entries []entry
	units   *bitvec.V[uint16]
}

// NewRegistry creates an empty registry whose capacity is
// gpu.Limits().MaxTexUnits.
func NewRegistry(gpu driver.GPU) *Registry {
	return &Registry{
		gpu:   gpu,
		units: bitvec.New[uint16](gpu.Limits().MaxTexUnits),
	}
}

// Load decodes the image data in rd, uploads it as a
// mipmapped 2D texture and registers it under tag.
// Tags must be unique within the registry.
// The image is flipped vertically during upload, matching
// the bottom-up coordinate convention of the UV data.
func (r *Registry) Load(rd io.Reader, tag string) error {
	if _, ok := r.Lookup(tag); ok {
		return newErr("tag already registered: " + tag)
	}
	slot, ok := r.units.Search()
	if !ok {
		return newErr("no texture slot available")
	}

	img, format, err := image.Decode(rd)
	if err != nil {
		return errors.New(prefix + err.Error())
	}
	pix, fmt := pixels(img)
	tex, err := r.gpu.NewTexture(&driver.TexParam{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Format: fmt,
		Pixels: pix,
		Mipmap: true,
	})
	if err != nil {
		return err
	}

	r.units.Set(slot)
	r.entries = append(r.entries, entry{tag, tex, slot})
	logx.Logger().Info("texture loaded",
		"tag", tag,
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
		"slot", slot)
	return nil
}

// LoadFile opens name in fsys and calls Load.
func (r *Registry) LoadFile(fsys fs.FS, name, tag string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Load(f, tag)
}

// Lookup returns the texture registered under tag.
// ok is false if the tag is absent.
func (r *Registry) Lookup(tag string) (tex driver.Texture, ok bool) {
	for i := range r.entries {
		if r.entries[i].tag == tag {
			return r.entries[i].tex, true
		}
	}
	return
}

// Slot returns the texture slot of the texture registered
// under tag, or -1 if the tag is absent.
// The slot is also the texture unit that BindAll uses for
// the texture, so it may be fed to a sampler uniform
// directly.
func (r *Registry) Slot(tag string) int {
	for i := range r.entries {
		if r.entries[i].tag == tag {
			return r.entries[i].slot
		}
	}
	return -1
}

// Len returns the number of registered textures.
func (r *Registry) Len() int { return len(r.entries) }

// BindAll binds every registered texture to its slot's
// texture unit.
func (r *Registry) BindAll() {
	for i := range r.entries {
		r.entries[i].tex.Bind(r.entries[i].slot)
	}
}

// Free destroys every registered texture and clears the
// registry. The registry may be reused afterwards.
func (r *Registry) Free() {
	for i := range r.entries {
		r.entries[i].tex.Destroy()
	}
	r.entries = nil
	r.units.Clear()
}

// pixels converts img to tightly packed texel data in
// bottom-up row order. Opaque images yield RGB8 data,
// anything else RGBA8.
func pixels(img image.Image) ([]byte, driver.PixelFmt) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)

	opaque := nrgba.Opaque()
	n := 4
	fmt := driver.RGBA8
	if opaque {
		n = 3
		fmt = driver.RGB8
	}
	pix := make([]byte, w*h*n)
	for y := 0; y < h; y++ {
		src := nrgba.Pix[(h-1-y)*nrgba.Stride:]
		dst := pix[y*w*n:]
		if opaque {
			for x := 0; x < w; x++ {
				copy(dst[x*3:x*3+3], src[x*4:])
			}
		} else {
			copy(dst[:w*4], src)
		}
	}
	return pix, fmt
}
