package wireframe

import (
	"errors"
	"fmt"

	"github.com/Faultbox/frustumviz/pkg/math"
)

// Arrowhead wings sit 30 degrees off the shaft.
const (
	wingCos = 0.866
	wingSin = 0.5
)

// LabelLift raises a label's baseline off the shaft, as a fraction of the
// label size.
const LabelLift = 0.1

// TextMetrics measures strings in a stroke font's native units.
type TextMetrics interface {
	// StringWidth returns the advance width of s.
	StringWidth(s string) float64
	// EmHeight returns the native height that corresponds to size 1.
	EmHeight() float64
}

// ArrowSpec describes one annotated arrow.
type ArrowSpec struct {
	Start, End math.Vec3
	// StartHead and EndHead are wing lengths. Zero suppresses that head.
	StartHead, EndHead float64
	Label              string
	LabelSize          float64
}

// Label is a string placed in 3D. Transform maps the text's local plane
// (baseline along +X, up along +Y) into the arrow's coordinate space.
type Label struct {
	Text      string
	Size      float64
	Width     float64
	Transform math.Mat4
}

// Arrow is the generated geometry for one ArrowSpec.
type Arrow struct {
	Mesh Mesh
	// Frame is only meaningful when Oriented is true.
	Frame Frame
	// Oriented is false when the arrow points along the view axis; its
	// wings are collapsed and it carries no label.
	Oriented bool
	Label    *Label
}

var arrowEdges = []Edge{
	{0, 1},
	{0, 2}, {0, 3},
	{1, 4}, {1, 5},
}

// BuildArrow generates the shaft, the two wing pairs and the label
// placement for spec. metrics may be nil when spec has no label.
//
// A zero-length arrow fails with math.ErrDegenerateVector. An arrow parallel
// to viewAxis is not an error: it comes back with Oriented unset.
func BuildArrow(spec ArrowSpec, viewAxis math.Vec3, metrics TextMetrics) (Arrow, error) {
	dir := spec.End.Sub(spec.Start)
	frame, err := NewFrame(dir, viewAxis)
	switch {
	case errors.Is(err, ErrDegenerateFrame):
		return shaftOnly(spec), nil
	case err != nil:
		return Arrow{}, fmt.Errorf("arrow %q: %w", spec.Label, err)
	}

	d, b := frame.D, frame.B
	a := Arrow{
		Mesh: Mesh{
			Positions: []math.Vec3{
				spec.Start,
				spec.End,
				spec.Start.Add(d.Scale(wingCos).Add(b.Scale(wingSin)).Scale(spec.StartHead)),
				spec.Start.Add(d.Scale(wingCos).Sub(b.Scale(wingSin)).Scale(spec.StartHead)),
				spec.End.Add(d.Scale(-wingCos).Add(b.Scale(wingSin)).Scale(spec.EndHead)),
				spec.End.Add(d.Scale(-wingCos).Sub(b.Scale(wingSin)).Scale(spec.EndHead)),
			},
			Edges: append([]Edge(nil), arrowEdges...),
		},
		Frame:    frame,
		Oriented: true,
	}

	if spec.Label != "" && metrics != nil {
		a.Label = placeLabel(spec, frame, metrics)
	}
	return a, nil
}

// shaftOnly collapses every wing onto its endpoint.
func shaftOnly(spec ArrowSpec) Arrow {
	return Arrow{
		Mesh: Mesh{
			Positions: []math.Vec3{
				spec.Start, spec.End,
				spec.Start, spec.Start,
				spec.End, spec.End,
			},
			Edges: append([]Edge(nil), arrowEdges...),
		},
	}
}

// placeLabel centres the label on the shaft midpoint, baseline along D and
// up along B.
func placeLabel(spec ArrowSpec, f Frame, metrics TextMetrics) *Label {
	em := metrics.EmHeight()
	if em <= 0 {
		return nil
	}
	w := metrics.StringWidth(spec.Label) * spec.LabelSize / em
	origin := spec.Start.Lerp(spec.End, 0.5).Sub(f.D.Scale(w / 2))

	xf := math.TranslateVec(origin).
		Mul(f.Matrix()).
		Mul(math.Translate(0, spec.LabelSize*LabelLift, 0))

	return &Label{
		Text:      spec.Label,
		Size:      spec.LabelSize,
		Width:     w,
		Transform: xf,
	}
}
