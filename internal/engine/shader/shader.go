// Package shader links GLSL stages into programs and caches their uniforms.
package shader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage is one GLSL source of a program.
type Stage struct {
	Name   string // used in error messages
	Type   uint32 // gl.VERTEX_SHADER, gl.FRAGMENT_SHADER, ...
	Source string
}

// Vertex and Fragment build the two stages every program here has.
func Vertex(src string) Stage   { return Stage{Name: "vertex", Type: gl.VERTEX_SHADER, Source: src} }
func Fragment(src string) Stage { return Stage{Name: "fragment", Type: gl.FRAGMENT_SHADER, Source: src} }

// Program is a linked GL program with resolved uniform locations.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// Link compiles every stage and links them. uniforms lists the uniforms the
// caller will set; each must be active in the linked program.
func Link(stages []Stage, uniforms ...string) (*Program, error) {
	ids := make([]uint32, 0, len(stages))
	defer func() {
		for _, id := range ids {
			gl.DeleteShader(id)
		}
	}()

	for _, st := range stages {
		id, err := compile(st)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	prog := gl.CreateProgram()
	for _, id := range ids {
		gl.AttachShader(prog, id)
	}
	gl.LinkProgram(prog)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetProgramInfoLog(prog, n, nil, &buf[0])
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("link: %s", infoLog(buf))
	}

	p := &Program{ID: prog, uniforms: make(map[string]int32, len(uniforms))}
	for _, name := range uniforms {
		loc := gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
		if loc < 0 {
			gl.DeleteProgram(prog)
			return nil, fmt.Errorf("uniform %q is not active in program %d", name, prog)
		}
		p.uniforms[name] = loc
	}
	return p, nil
}

func compile(st Stage) (uint32, error) {
	id := gl.CreateShader(st.Type)
	src, free := gl.Strs(st.Source + "\x00")
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetShaderInfoLog(id, n, nil, &buf[0])
		gl.DeleteShader(id)
		return 0, fmt.Errorf("%s shader: %s", st.Name, infoLog(buf))
	}
	return id, nil
}

// infoLog turns a NUL-terminated driver log into a single trimmed string.
func infoLog(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.TrimSpace(string(buf))
}

// Uniform returns the location of a uniform passed to Link, or -1.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete frees the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
