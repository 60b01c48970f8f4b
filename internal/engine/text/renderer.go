package text

import (
	"fmt"

	"github.com/Faultbox/frustumviz/internal/engine/camera"
	"github.com/Faultbox/frustumviz/internal/engine/wireframe"
	"github.com/Faultbox/frustumviz/pkg/math"
)

// LineDrawer is the part of the line rasterizer the text renderer needs.
type LineDrawer interface {
	SetDrawState(state wireframe.DrawState)
	DrawLines(mvp math.Mat4, mesh wireframe.Mesh)
}

// Renderer draws stroke text through a LineDrawer.
type Renderer struct {
	lines LineDrawer
	state wireframe.DrawState
	fonts map[string]*StrokeFont
}

// NewRenderer creates a text renderer drawing thin solid strokes.
func NewRenderer(lines LineDrawer) *Renderer {
	return &Renderer{
		lines: lines,
		state: wireframe.ThinSolid,
		fonts: make(map[string]*StrokeFont),
	}
}

// Metrics returns the measuring interface for a face.
func (r *Renderer) Metrics(face string) (wireframe.TextMetrics, error) {
	f, err := r.font(face)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// DrawString draws s at placement. size is the label height in placement
// units; the font is scaled so its ascent matches it.
func (r *Renderer) DrawString(vc camera.ViewContext, face string, size float64, s string, placement math.Mat4) error {
	f, err := r.font(face)
	if err != nil {
		return err
	}
	mesh, err := f.Strokes(s)
	if err != nil {
		return err
	}
	if mesh.EdgeCount() == 0 {
		return nil
	}

	scale := size / f.EmHeight()
	model := placement.Mul(math.Scale(scale, scale, scale))

	r.lines.SetDrawState(r.state)
	r.lines.DrawLines(vc.MVP(model), mesh)
	return nil
}

func (r *Renderer) font(face string) (*StrokeFont, error) {
	if f, ok := r.fonts[face]; ok {
		return f, nil
	}
	f, err := Lookup(face)
	if err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}
	r.fonts[face] = f
	return f, nil
}
