// Package scene composes one observer frame: the frustum wireframe plus the
// five labeled extent arrows, seen from an orbiting viewpoint.
package scene

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/frustumviz/internal/engine/camera"
	"github.com/Faultbox/frustumviz/internal/engine/text"
	"github.com/Faultbox/frustumviz/internal/engine/wireframe"
	"github.com/Faultbox/frustumviz/internal/logger"
	"github.com/Faultbox/frustumviz/pkg/math"
)

// Renderer rasterizes indexed line lists.
type Renderer interface {
	Clear(width, height int, color [4]float32)
	SetDrawState(state wireframe.DrawState)
	DrawLines(mvp math.Mat4, mesh wireframe.Mesh)
}

// TextStrokeRenderer measures and draws stroke-font labels.
type TextStrokeRenderer interface {
	Metrics(face string) (wireframe.TextMetrics, error)
	DrawString(vc camera.ViewContext, face string, size float64, s string, placement math.Mat4) error
}

// State is the animation state threaded from one frame to the next.
type State struct {
	OrbitAngle float64 // degrees, in [0, 360)
	Frame      uint64
}

// Config holds everything a Composer needs. All fields are fixed for the
// composer's lifetime.
type Config struct {
	Projection camera.Projection
	Rig        camera.Rig
	// Increment is the orbit advance per frame, in degrees.
	Increment float64

	Frustum    wireframe.FrustumSpec
	HeadRadius float64
	LabelSize  float64
	Face       string

	Background [4]float32
}

// DefaultConfig returns the demo scene.
func DefaultConfig() Config {
	return Config{
		Projection: camera.DefaultProjection(),
		Rig:        camera.DefaultOrbitRig(),
		Increment:  0.1,
		Frustum: wireframe.FrustumSpec{
			Left: -0.5, Right: 0.5,
			Bottom: -0.5, Top: 0.5,
			Near: 1, Far: 4,
		},
		HeadRadius: 0.1,
		LabelSize:  0.075,
		Face:       text.DefaultFace,
		Background: [4]float32{1, 1, 1, 1},
	}
}

// Composer draws observer frames.
type Composer struct {
	cfg Config
	log *zap.Logger
}

// New validates cfg and returns a Composer.
func New(cfg Config) (*Composer, error) {
	if err := cfg.Frustum.Validate(); err != nil {
		return nil, err
	}
	if cfg.Rig == nil {
		return nil, errors.New("scene: no view rig configured")
	}
	if cfg.HeadRadius < 0 || cfg.LabelSize < 0 {
		return nil, fmt.Errorf("scene: head radius %g and label size %g must not be negative", cfg.HeadRadius, cfg.LabelSize)
	}
	if gomath.IsNaN(cfg.Increment) || gomath.IsInf(cfg.Increment, 0) {
		return nil, fmt.Errorf("scene: orbit increment %g is not finite", cfg.Increment)
	}
	return &Composer{cfg: cfg, log: logger.Named("scene")}, nil
}

// FramePlan is everything decided for a frame before any drawing happens.
type FramePlan struct {
	View    camera.ViewContext
	Frustum wireframe.Frustum
	Arrows  []wireframe.ArrowSpec
	Next    State
}

// Plan computes the view, geometry and arrow specs for state without
// touching a renderer.
func (c *Composer) Plan(state State, width, height int) (FramePlan, error) {
	vc, err := camera.NewViewContext(c.cfg.Projection, c.cfg.Rig, state.OrbitAngle, width, height)
	if err != nil {
		return FramePlan{}, fmt.Errorf("view: %w", err)
	}
	frustum, err := wireframe.BuildFrustum(c.cfg.Frustum)
	if err != nil {
		return FramePlan{}, err
	}
	return FramePlan{
		View:    vc,
		Frustum: frustum,
		Arrows:  ExtentArrows(c.cfg.Frustum, c.cfg.HeadRadius, c.cfg.LabelSize),
		Next: State{
			OrbitAngle: camera.WrapAngle(state.OrbitAngle + c.cfg.Increment),
			Frame:      state.Frame + 1,
		},
	}, nil
}

// Frame draws one observer frame into a width x height viewport and returns
// the state for the next frame. Arrows that cannot be built are skipped; an
// invalid frustum or a text backend failure aborts the frame.
func (c *Composer) Frame(state State, width, height int, r Renderer, labels TextStrokeRenderer) (State, error) {
	plan, err := c.Plan(state, width, height)
	if err != nil {
		return state, err
	}

	r.Clear(width, height, c.cfg.Background)

	mvp := plan.View.MVP(math.Identity())
	for _, b := range plan.Frustum.Batches() {
		r.SetDrawState(b.State)
		r.DrawLines(mvp, b.Mesh)
	}

	metrics, err := labels.Metrics(c.cfg.Face)
	if err != nil {
		return state, fmt.Errorf("label metrics: %w", err)
	}

	axis := plan.View.ViewAxis()
	for _, spec := range plan.Arrows {
		arrow, err := wireframe.BuildArrow(spec, axis, metrics)
		if err != nil {
			c.log.Warn("skipping arrow", zap.String("label", spec.Label), zap.Error(err))
			continue
		}
		if !arrow.Oriented {
			c.log.Debug("arrow faces the viewer, drawing shaft only",
				zap.String("label", spec.Label),
				zap.Float64("orbit", state.OrbitAngle),
			)
		}

		r.SetDrawState(wireframe.ThinSolid)
		r.DrawLines(mvp, arrow.Mesh)

		if arrow.Label == nil {
			continue
		}
		if err := labels.DrawString(plan.View, c.cfg.Face, arrow.Label.Size, arrow.Label.Text, arrow.Label.Transform); err != nil {
			return state, fmt.Errorf("label %q: %w", arrow.Label.Text, err)
		}
	}

	return plan.Next, nil
}

// ExtentArrows returns the near-distance arrow and the four side-extent
// arrows. The near arrow runs from the apex to the centre of the near
// rectangle. Each side arrow lies in the near plane between that centre and
// the midpoint of its side, with the head on the side. Right and top run
// outwards so their labels read left to right and bottom to top.
func ExtentArrows(f wireframe.FrustumSpec, head, labelSize float64) []wireframe.ArrowSpec {
	centre := f.NearCenter()
	at := func(x, y float64) math.Vec3 { return math.Vec3{X: x, Y: y, Z: -f.Near} }

	return []wireframe.ArrowSpec{
		{Start: math.Vec3{}, End: centre, StartHead: head, EndHead: head, Label: "near", LabelSize: labelSize},
		{Start: at(f.Left, centre.Y), End: centre, StartHead: head, Label: "left", LabelSize: labelSize},
		{Start: centre, End: at(f.Right, centre.Y), EndHead: head, Label: "right", LabelSize: labelSize},
		{Start: at(centre.X, f.Bottom), End: centre, StartHead: head, Label: "bottom", LabelSize: labelSize},
		{Start: centre, End: at(centre.X, f.Top), EndHead: head, Label: "top", LabelSize: labelSize},
	}
}
