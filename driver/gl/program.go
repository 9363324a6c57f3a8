// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package gl

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"gviegas/tabletop/driver"
)

const progPrefix = "gl: program: "

// program implements driver.Program.
// Uniform locations are resolved once and cached; names
// the program does not define cache as -1, which OpenGL
// ignores on assignment.
type program struct {
	id  uint32
	loc map[string]int32
}

// NewProgram compiles and links a shader program.
func (g *GPU) NewProgram(vertexSrc, fragmentSrc string) (driver.Program, error) {
	vs, err := compile(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fs, err := compile(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(id)
		return nil, errors.New(progPrefix + "link failed: " + infoLog(id, true))
	}
	return &program{id, make(map[string]int32)}, nil
}

func compile(src string, typ uint32) (uint32, error) {
	shader := gl.CreateShader(typ)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteShader(shader)
		return 0, errors.New(progPrefix + "compile failed: " + infoLog(shader, false))
	}
	return shader, nil
}

func infoLog(id uint32, isProgram bool) string {
	var n int32
	if isProgram {
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
	} else {
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
	}
	if n <= 0 {
		return "(no info log)"
	}
	log := strings.Repeat("\x00", int(n+1))
	if isProgram {
		gl.GetProgramInfoLog(id, n, nil, gl.Str(log))
	} else {
		gl.GetShaderInfoLog(id, n, nil, gl.Str(log))
	}
	return strings.TrimRight(log, "\x00")
}

// Use makes the program current.
func (p *program) Use() { gl.UseProgram(p.id) }

func (p *program) location(name string) int32 {
	if loc, ok := p.loc[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.loc[name] = loc
	return loc
}

func (p *program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.location(name), v[0], v[1])
}

func (p *program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

func (p *program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.location(name), v[0], v[1], v[2], v[3])
}

func (p *program) SetFloat(name string, x float32) {
	gl.Uniform1f(p.location(name), x)
}

func (p *program) SetInt(name string, x int32) {
	gl.Uniform1i(p.location(name), x)
}

func (p *program) SetBool(name string, b bool) {
	var x int32
	if b {
		x = 1
	}
	gl.Uniform1i(p.location(name), x)
}

func (p *program) SetSampler(name string, unit int) {
	gl.Uniform1i(p.location(name), int32(unit))
}

// Destroy deletes the program object.
func (p *program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
	}
	*p = program{}
}
