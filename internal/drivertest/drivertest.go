// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package drivertest provides a fake driver.GPU for
// exercising the composer layers without a live graphics
// context. Every resource records the calls made on it.
package drivertest

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"gviegas/tabletop/driver"
)

// GPU implements driver.GPU.
// The zero value is not valid; use New.
type GPU struct {
	MaxTexUnits int
	Textures    []*Texture
	Meshes      []*Mesh
	Programs    []*Program
	Blend       bool

	// When non-nil, the corresponding New* call fails
	// with this error instead.
	TexErr  error
	MeshErr error
	ProgErr error
}

// New creates a fake GPU with the given texture unit
// budget.
func New(maxTexUnits int) *GPU { return &GPU{MaxTexUnits: maxTexUnits} }

// Texture implements driver.Texture.
type Texture struct {
	Param     driver.TexParam
	Bound     []int
	Destroyed bool
}

// Mesh implements driver.Mesh.
type Mesh struct {
	Verts     []float32
	Indices   []uint32
	Draws     int
	Destroyed bool
}

// Program implements driver.Program.
type Program struct {
	VertexSrc   string
	FragmentSrc string
	InUse       bool
	Destroyed   bool

	Mat4s    map[string]mgl32.Mat4
	Vec2s    map[string]mgl32.Vec2
	Vec3s    map[string]mgl32.Vec3
	Vec4s    map[string]mgl32.Vec4
	Floats   map[string]float32
	Ints     map[string]int32
	Bools    map[string]bool
	Samplers map[string]int
}

func (g *GPU) NewTexture(param *driver.TexParam) (driver.Texture, error) {
	if g.TexErr != nil {
		return nil, g.TexErr
	}
	if param == nil {
		return nil, errors.New("drivertest: nil param")
	}
	t := &Texture{Param: *param}
	g.Textures = append(g.Textures, t)
	return t, nil
}

func (g *GPU) NewMesh(verts []float32, indices []uint32) (driver.Mesh, error) {
	if g.MeshErr != nil {
		return nil, g.MeshErr
	}
	if len(verts) == 0 || len(verts)%8 != 0 || len(indices) == 0 {
		return nil, errors.New("drivertest: invalid mesh data")
	}
	m := &Mesh{Verts: verts, Indices: indices}
	g.Meshes = append(g.Meshes, m)
	return m, nil
}

func (g *GPU) NewProgram(vertexSrc, fragmentSrc string) (driver.Program, error) {
	if g.ProgErr != nil {
		return nil, g.ProgErr
	}
	p := &Program{
		VertexSrc:   vertexSrc,
		FragmentSrc: fragmentSrc,
		Mat4s:       make(map[string]mgl32.Mat4),
		Vec2s:       make(map[string]mgl32.Vec2),
		Vec3s:       make(map[string]mgl32.Vec3),
		Vec4s:       make(map[string]mgl32.Vec4),
		Floats:      make(map[string]float32),
		Ints:        make(map[string]int32),
		Bools:       make(map[string]bool),
		Samplers:    make(map[string]int),
	}
	g.Programs = append(g.Programs, p)
	return p, nil
}

func (g *GPU) Limits() driver.Limits { return driver.Limits{MaxTexUnits: g.MaxTexUnits} }

func (g *GPU) SetBlend(enable bool) { g.Blend = enable }

func (t *Texture) Bind(unit int) { t.Bound = append(t.Bound, unit) }
func (t *Texture) Destroy()      { t.Destroyed = true }

func (m *Mesh) Draw()    { m.Draws++ }
func (m *Mesh) Destroy() { m.Destroyed = true }

func (p *Program) Use()     { p.InUse = true }
func (p *Program) Destroy() { p.Destroyed = true }

func (p *Program) SetMat4(name string, m mgl32.Mat4) { p.Mat4s[name] = m }
func (p *Program) SetVec2(name string, v mgl32.Vec2) { p.Vec2s[name] = v }
func (p *Program) SetVec3(name string, v mgl32.Vec3) { p.Vec3s[name] = v }
func (p *Program) SetVec4(name string, v mgl32.Vec4) { p.Vec4s[name] = v }
func (p *Program) SetFloat(name string, x float32)   { p.Floats[name] = x }
func (p *Program) SetInt(name string, x int32)       { p.Ints[name] = x }
func (p *Program) SetBool(name string, b bool)       { p.Bools[name] = b }
func (p *Program) SetSampler(name string, unit int)  { p.Samplers[name] = unit }
