// Package camera builds the observer's projection and view transforms.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/frustumviz/pkg/math"
)

// ProjectionMode selects the observer projection. It is fixed at startup.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

// ParseProjectionMode converts a config string to a ProjectionMode.
func ParseProjectionMode(s string) (ProjectionMode, error) {
	switch s {
	case "perspective", "":
		return Perspective, nil
	case "ortho", "orthographic":
		return Orthographic, nil
	default:
		return Perspective, fmt.Errorf("unknown projection mode %q", s)
	}
}

// String returns the config spelling of the mode.
func (m ProjectionMode) String() string {
	if m == Orthographic {
		return "ortho"
	}
	return "perspective"
}

// Projection holds the parameters for both projection modes.
type Projection struct {
	Mode ProjectionMode

	// Perspective
	FovY      float64 // degrees
	Near, Far float64

	// Orthographic: the view volume spans +-OrthoHalfHeight vertically and
	// +-OrthoHalfHeight*aspect horizontally.
	OrthoHalfHeight     float64
	OrthoNear, OrthoFar float64
}

// DefaultProjection returns the observer projection of the demo scene.
func DefaultProjection() Projection {
	return Projection{
		Mode:            Perspective,
		FovY:            35,
		Near:            1,
		Far:             50,
		OrthoHalfHeight: 10,
		OrthoNear:       0,
		OrthoFar:        100,
	}
}

// Matrix returns the projection matrix for the given aspect ratio.
func (p Projection) Matrix(aspect float64) math.Mat4 {
	if p.Mode == Orthographic {
		h := p.OrthoHalfHeight
		return math.Ortho(-h*aspect, h*aspect, -h, h, p.OrthoNear, p.OrthoFar)
	}
	return math.Perspective(math.Radians(p.FovY), aspect, p.Near, p.Far)
}

// Rig produces a view matrix for the current orbit angle.
type Rig interface {
	ViewMatrix(angle float64) (math.Mat4, error)
}

// OrbitRig pulls back from the origin, tilts down and yaws around +Y, then
// pushes forward so the orbit centre sits inside the frustum.
type OrbitRig struct {
	PullBack    float64
	Tilt        float64 // degrees around +X
	PushForward float64
}

// DefaultOrbitRig returns the demo orbit.
func DefaultOrbitRig() OrbitRig {
	return OrbitRig{PullBack: 5, Tilt: 30, PushForward: 2.5}
}

// ViewMatrix returns T(0,0,-PullBack) * Rx(Tilt) * Ry(angle) * T(0,0,PushForward).
// angle is in degrees.
func (r OrbitRig) ViewMatrix(angle float64) (math.Mat4, error) {
	return math.Translate(0, 0, -r.PullBack).
		Mul(math.RotateX(math.Radians(r.Tilt))).
		Mul(math.RotateY(math.Radians(angle))).
		Mul(math.Translate(0, 0, r.PushForward)), nil
}

// LookAtRig is a fixed viewpoint; it ignores the orbit angle.
type LookAtRig struct {
	Eye, Center, Up math.Vec3
}

// DefaultLookAtRig returns the fixed demo viewpoint.
func DefaultLookAtRig() LookAtRig {
	return LookAtRig{
		Eye:    math.Vec3{X: 3, Y: 1, Z: -5},
		Center: math.Vec3{X: 0, Y: 0, Z: -2.5},
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

// ViewMatrix returns the look-at transform.
func (r LookAtRig) ViewMatrix(float64) (math.Mat4, error) {
	m, err := math.LookAt(r.Eye, r.Center, r.Up)
	if err != nil {
		return math.Mat4{}, fmt.Errorf("look-at rig: %w", err)
	}
	return m, nil
}

// ViewContext carries the transforms of the frame being drawn.
type ViewContext struct {
	Projection math.Mat4
	View       math.Mat4
	Width      int
	Height     int
}

// NewViewContext builds the projection for a width x height viewport and
// takes the view from rig at angle.
func NewViewContext(p Projection, rig Rig, angle float64, width, height int) (ViewContext, error) {
	view, err := rig.ViewMatrix(angle)
	if err != nil {
		return ViewContext{}, err
	}
	vc := ViewContext{View: view, Width: width, Height: height}
	vc.Projection = p.Matrix(vc.Aspect())
	return vc, nil
}

// Aspect returns width/height, or 1 for an empty viewport.
func (vc ViewContext) Aspect() float64 {
	if vc.Width <= 0 || vc.Height <= 0 {
		return 1
	}
	return float64(vc.Width) / float64(vc.Height)
}

// ViewAxis returns the eye-space +Z axis expressed in model coordinates:
// the direction from the scene towards the viewer. The view's rotation is
// assumed orthonormal (possibly isotropically scaled), so this is the third
// row of its upper 3x3.
func (vc ViewContext) ViewAxis() math.Vec3 {
	return vc.View.Row(2)
}

// MVP returns Projection * View * model.
func (vc ViewContext) MVP(model math.Mat4) math.Mat4 {
	return vc.Projection.Mul(vc.View).Mul(model)
}

// WrapAngle folds deg into [0, 360).
func WrapAngle(deg float64) float64 {
	a := gomath.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// tiny negative inputs round up to exactly 360
	if a >= 360 {
		a = 0
	}
	return a
}
