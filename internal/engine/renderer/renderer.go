// Package renderer draws indexed line lists with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/frustumviz/internal/engine/renderer/shaders"
	"github.com/Faultbox/frustumviz/internal/engine/shader"
	"github.com/Faultbox/frustumviz/internal/engine/wireframe"
	"github.com/Faultbox/frustumviz/internal/logger"
	"github.com/Faultbox/frustumviz/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	LineColor   [4]float32
	Multisample bool
}

// DefaultConfig returns black lines with multisampling enabled.
func DefaultConfig() Config {
	return Config{
		LineColor:   [4]float32{0, 0, 0, 1},
		Multisample: true,
	}
}

var uniformNames = []string{
	"uMVP",
	"uViewport",
	"uColor",
	"uStipple",
	"uStippleFactor",
	"uStipplePattern",
}

// Renderer handles all OpenGL line drawing.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	vao uint32
	vbo uint32
	ebo uint32

	// scratch buffers reused across draws
	vertices []float32
	indices  []uint16

	widthRange [2]float32
	state      wireframe.DrawState
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is current!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		state:  wireframe.ThinSolid,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.program, err = shader.Link([]shader.Stage{
		shader.Vertex(shaders.LineVertexShader),
		shader.Fragment(shaders.LineFragmentShader),
	}, uniformNames...)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.createBuffers()

	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &r.widthRange[0])
	r.log.Debug("line width range",
		zap.Float32("min", r.widthRange[0]),
		zap.Float32("max", r.widthRange[1]),
	)

	gl.Disable(gl.DEPTH_TEST)
	// the stipple origin is the first vertex of each segment
	gl.ProvokingVertex(gl.FIRST_VERTEX_CONVENTION)
	if cfg.Multisample {
		gl.Enable(gl.MULTISAMPLE)
	}

	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("line buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Uint32("ebo", r.ebo),
	)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Clear sets the viewport to width x height and fills it with color.
func (r *Renderer) Clear(width, height int, color [4]float32) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetDrawState selects the line width and stipple for subsequent draws.
func (r *Renderer) SetDrawState(state wireframe.DrawState) {
	r.state = state
}

// DrawLines uploads mesh and draws it as GL_LINES transformed by mvp.
func (r *Renderer) DrawLines(mvp math.Mat4, mesh wireframe.Mesh) {
	if mesh.EdgeCount() == 0 {
		return
	}

	r.vertices = r.vertices[:0]
	for _, p := range mesh.Positions {
		v := p.Float32()
		r.vertices = append(r.vertices, v[0], v[1], v[2])
	}
	r.indices = r.indices[:0]
	for _, e := range mesh.Edges {
		r.indices = append(r.indices, e[0], e[1])
	}

	var viewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &viewport[0])

	r.program.Use()
	m := mvp.Float32()
	gl.UniformMatrix4fv(r.program.Uniform("uMVP"), 1, false, &m[0])
	gl.Uniform2f(r.program.Uniform("uViewport"), float32(viewport[2]), float32(viewport[3]))
	c := r.config.LineColor
	gl.Uniform4f(r.program.Uniform("uColor"), c[0], c[1], c[2], c[3])
	r.applyStipple()
	gl.LineWidth(r.clampWidth(r.state.Width))

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, unsafe.Pointer(&r.vertices[0]), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.indices)*2, unsafe.Pointer(&r.indices[0]), gl.STREAM_DRAW)

	gl.DrawElements(gl.LINES, int32(len(r.indices)), gl.UNSIGNED_SHORT, nil)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) applyStipple() {
	s := r.state.Stipple
	if !s.Enabled {
		gl.Uniform1i(r.program.Uniform("uStipple"), 0)
		return
	}
	factor := s.Factor
	if factor < 1 {
		factor = 1
	}
	gl.Uniform1i(r.program.Uniform("uStipple"), 1)
	gl.Uniform1i(r.program.Uniform("uStippleFactor"), int32(factor))
	gl.Uniform1i(r.program.Uniform("uStipplePattern"), int32(s.Pattern))
}

// clampWidth keeps w inside the range the driver reports. Core profiles
// commonly support only 1.0.
func (r *Renderer) clampWidth(w float32) float32 {
	if r.widthRange[1] == 0 {
		return 1
	}
	if w < r.widthRange[0] {
		return r.widthRange[0]
	}
	if w > r.widthRange[1] {
		return r.widthRange[1]
	}
	return w
}

// ReadPixels returns the RGBA contents of the current framebuffer, bottom
// row first.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
