// Package text renders labels as line strokes so they can share the
// wireframe line pipeline. Glyph strokes are traced from bitmap font masks:
// every horizontal run of set pixels becomes one segment.
package text

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/frustumviz/internal/engine/wireframe"
	"github.com/Faultbox/frustumviz/pkg/math"
)

// DefaultFace is the face used when none is configured.
const DefaultFace = "basic7x13"

// ErrUnknownFace is returned for a face name that is not registered.
var ErrUnknownFace = errors.New("unknown font face")

var faces = map[string]font.Face{
	DefaultFace: basicfont.Face7x13,
}

// Faces returns the registered face names, sorted.
func Faces() []string {
	names := make([]string, 0, len(faces))
	for name := range faces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StrokeFont measures and traces strings in a face's pixel units.
// Native coordinates put the baseline on Y=0 with +Y up.
type StrokeFont struct {
	name string
	face font.Face
}

// Lookup returns the stroke font registered under name.
func Lookup(name string) (*StrokeFont, error) {
	face, ok := faces[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFace, name)
	}
	return NewStrokeFont(name, face), nil
}

// NewStrokeFont wraps an arbitrary bitmap face.
func NewStrokeFont(name string, face font.Face) *StrokeFont {
	return &StrokeFont{name: name, face: face}
}

// Name returns the face name.
func (f *StrokeFont) Name() string {
	return f.name
}

// StringWidth returns the advance width of s in pixels.
func (f *StrokeFont) StringWidth(s string) float64 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

// EmHeight returns the ascent in pixels. A label of size 1 is scaled so its
// ascent measures one unit.
func (f *StrokeFont) EmHeight() float64 {
	return fixedToFloat(f.face.Metrics().Ascent)
}

// Strokes traces s into line segments in native units. Strings too long
// for one mesh return wireframe.ErrMeshTooLarge.
func (f *StrokeFont) Strokes(s string) (wireframe.Mesh, error) {
	var mesh wireframe.Mesh
	dot := fixed.Point26_6{}
	prev := rune(-1)

	for _, r := range s {
		if prev >= 0 {
			dot.X += f.face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := f.face.Glyph(dot, r)
		if ok {
			if err := mesh.Append(traceMask(dr, mask, maskp)); err != nil {
				return wireframe.Mesh{}, fmt.Errorf("tracing %q: %w", s, err)
			}
		}
		dot.X += advance
		prev = r
	}
	return mesh, nil
}

// traceMask emits one segment per horizontal run of opaque pixels in the
// glyph rectangle dr. Segments sit on pixel-row centres.
func traceMask(dr image.Rectangle, mask image.Image, maskp image.Point) wireframe.Mesh {
	var mesh wireframe.Mesh
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		runStart := -1
		for x := dr.Min.X; x <= dr.Max.X; x++ {
			set := false
			if x < dr.Max.X {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				set = a >= 0x8000
			}
			switch {
			case set && runStart < 0:
				runStart = x
			case !set && runStart >= 0:
				row := -(float64(y) + 0.5)
				i := uint16(len(mesh.Positions))
				mesh.Positions = append(mesh.Positions,
					math.Vec3{X: float64(runStart), Y: row},
					math.Vec3{X: float64(x), Y: row},
				)
				mesh.Edges = append(mesh.Edges, wireframe.Edge{i, i + 1})
				runStart = -1
			}
		}
	}
	return mesh
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
