package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/frustumviz/internal/engine/camera"
	"github.com/Faultbox/frustumviz/internal/engine/text"
	"github.com/Faultbox/frustumviz/internal/engine/wireframe"
	"github.com/Faultbox/frustumviz/internal/scene"
	"github.com/Faultbox/frustumviz/pkg/math"
)

// Rig names accepted in view.rig.
const (
	RigOrbit  = "orbit"
	RigLookAt = "look_at"
)

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Multisample < 0 {
		errs = append(errs, fmt.Errorf("window: multisample %d must not be negative", c.Window.Multisample))
	}

	if _, err := camera.ParseProjectionMode(c.Projection.Mode); err != nil {
		errs = append(errs, fmt.Errorf("projection: %w", err))
	}
	if c.Projection.FovY <= 0 || c.Projection.FovY >= 180 {
		errs = append(errs, fmt.Errorf("projection: fov_y %g must be in (0, 180)", c.Projection.FovY))
	}
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		errs = append(errs, fmt.Errorf("projection: need 0 < near < far, got near=%g far=%g", c.Projection.Near, c.Projection.Far))
	}
	if c.Projection.OrthoHalfHeight <= 0 || c.Projection.OrthoFar <= c.Projection.OrthoNear {
		errs = append(errs, fmt.Errorf("projection: invalid ortho volume half_height=%g near=%g far=%g",
			c.Projection.OrthoHalfHeight, c.Projection.OrthoNear, c.Projection.OrthoFar))
	}

	switch c.View.Rig {
	case RigOrbit, "":
	case RigLookAt:
		if toVec(c.View.Eye) == toVec(c.View.Center) {
			errs = append(errs, errors.New("view: look_at eye and center coincide"))
		}
	default:
		errs = append(errs, fmt.Errorf("view: unknown rig %q", c.View.Rig))
	}

	if err := c.frustumSpec().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("frustum: %w", err))
	}

	if c.Annotations.HeadRadius < 0 || c.Annotations.LabelSize < 0 {
		errs = append(errs, fmt.Errorf("annotations: head_radius %g and label_size %g must not be negative",
			c.Annotations.HeadRadius, c.Annotations.LabelSize))
	}
	if _, err := text.Lookup(c.Annotations.Face); err != nil {
		errs = append(errs, fmt.Errorf("annotations: %w (available: %s)", err, strings.Join(text.Faces(), ", ")))
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

// Scene converts the config into the composer's configuration.
func (c *Config) Scene() (scene.Config, error) {
	mode, err := camera.ParseProjectionMode(c.Projection.Mode)
	if err != nil {
		return scene.Config{}, err
	}

	sc := scene.DefaultConfig()
	sc.Projection = camera.Projection{
		Mode:            mode,
		FovY:            c.Projection.FovY,
		Near:            c.Projection.Near,
		Far:             c.Projection.Far,
		OrthoHalfHeight: c.Projection.OrthoHalfHeight,
		OrthoNear:       c.Projection.OrthoNear,
		OrthoFar:        c.Projection.OrthoFar,
	}

	switch c.View.Rig {
	case RigLookAt:
		rig := camera.DefaultLookAtRig()
		rig.Eye = toVec(c.View.Eye)
		rig.Center = toVec(c.View.Center)
		sc.Rig = rig
	case RigOrbit, "":
		sc.Rig = camera.OrbitRig{
			PullBack:    c.View.PullBack,
			Tilt:        c.View.Tilt,
			PushForward: c.View.PushForward,
		}
	default:
		return scene.Config{}, fmt.Errorf("unknown rig %q", c.View.Rig)
	}
	sc.Increment = c.View.Increment

	sc.Frustum = c.frustumSpec()
	sc.HeadRadius = c.Annotations.HeadRadius
	sc.LabelSize = c.Annotations.LabelSize
	sc.Face = c.Annotations.Face
	return sc, nil
}

func (c *Config) frustumSpec() wireframe.FrustumSpec {
	f := c.Frustum
	return wireframe.FrustumSpec{
		Left: f.Left, Right: f.Right,
		Bottom: f.Bottom, Top: f.Top,
		Near: f.Near, Far: f.Far,
	}
}

func toVec(v [3]float64) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
