package wireframe

import (
	"errors"
	"fmt"

	"github.com/Faultbox/frustumviz/pkg/math"
)

// ErrDegenerateFrame is returned when a direction is parallel to the view
// axis, so no camera-facing binormal exists.
var ErrDegenerateFrame = errors.New("degenerate frame: direction parallel to view axis")

// DegenerateTolerance is the smallest residual, relative to the view axis
// length, that still yields a usable frame.
const DegenerateTolerance = 1e-9

// Frame is an orthonormal tangent/binormal/normal triple with B = N x D.
type Frame struct {
	D math.Vec3 // tangent, along the arrow
	B math.Vec3 // binormal, in the screen plane
	N math.Vec3 // normal, towards the viewer
}

// NewFrame orients a frame along dir so that N faces along viewAxis.
//
// viewAxis is the camera's depth axis expressed in the geometry's
// coordinate space. It is projected onto the plane orthogonal to dir
// (Gram-Schmidt) to obtain N.
func NewFrame(dir, viewAxis math.Vec3) (Frame, error) {
	d, err := dir.Normalize()
	if err != nil {
		return Frame{}, fmt.Errorf("frame direction: %w", err)
	}

	scale := viewAxis.Length()
	if scale == 0 {
		return Frame{}, fmt.Errorf("zero view axis: %w", ErrDegenerateFrame)
	}

	residual := viewAxis.Sub(d.Scale(viewAxis.Dot(d)))
	if residual.Length() < DegenerateTolerance*scale {
		return Frame{}, ErrDegenerateFrame
	}
	n, err := residual.Normalize()
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrDegenerateFrame, err)
	}

	return Frame{D: d, B: n.Cross(d), N: n}, nil
}

// Matrix returns the rotation whose columns are D, B and N.
func (f Frame) Matrix() math.Mat4 {
	return math.Basis(f.D, f.B, f.N)
}
