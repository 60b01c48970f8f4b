// Package config handles viewer configuration loading and management.
package config

import "github.com/Faultbox/frustumviz/internal/engine/text"

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Projection  ProjectionConfig  `yaml:"projection"`
	View        ViewConfig        `yaml:"view"`
	Frustum     FrustumConfig     `yaml:"frustum"`
	Annotations AnnotationsConfig `yaml:"annotations"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
	Logging     LoggingConfig     `yaml:"logging"`
	Run         RunConfig         `yaml:"run"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Fullscreen  bool `yaml:"fullscreen"`
	VSync       bool `yaml:"vsync"`
	Multisample int  `yaml:"multisample"` // samples per pixel, 0 = off
	// FrustumViewWindow opens the second, empty "Frustum View" window.
	FrustumViewWindow bool `yaml:"frustum_view_window"`
}

// ProjectionConfig holds the observer projection.
type ProjectionConfig struct {
	Mode            string  `yaml:"mode"` // perspective | ortho
	FovY            float64 `yaml:"fov_y"`
	Near            float64 `yaml:"near"`
	Far             float64 `yaml:"far"`
	OrthoHalfHeight float64 `yaml:"ortho_half_height"`
	OrthoNear       float64 `yaml:"ortho_near"`
	OrthoFar        float64 `yaml:"ortho_far"`
}

// ViewConfig holds the observer viewpoint.
type ViewConfig struct {
	Rig         string     `yaml:"rig"` // orbit | look_at
	PullBack    float64    `yaml:"pull_back"`
	Tilt        float64    `yaml:"tilt"`
	PushForward float64    `yaml:"push_forward"`
	Increment   float64    `yaml:"increment"` // degrees per frame
	Eye         [3]float64 `yaml:"eye"`
	Center      [3]float64 `yaml:"center"`
}

// FrustumConfig holds the extents of the visualized frustum.
type FrustumConfig struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`
}

// AnnotationsConfig holds arrow and label settings.
type AnnotationsConfig struct {
	HeadRadius float64 `yaml:"head_radius"`
	LabelSize  float64 `yaml:"label_size"`
	Face       string  `yaml:"face"`
}

// ScreenshotsConfig holds screenshot output settings.
type ScreenshotsConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// RunConfig holds loop settings.
type RunConfig struct {
	MaxFrames uint64 `yaml:"max_frames"` // 0 = run until closed
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:             800,
			Height:            600,
			VSync:             true,
			Multisample:       4,
			FrustumViewWindow: true,
		},
		Projection: ProjectionConfig{
			Mode:            "perspective",
			FovY:            35,
			Near:            1,
			Far:             50,
			OrthoHalfHeight: 10,
			OrthoNear:       0,
			OrthoFar:        100,
		},
		View: ViewConfig{
			Rig:         "orbit",
			PullBack:    5,
			Tilt:        30,
			PushForward: 2.5,
			Increment:   0.1,
			Eye:         [3]float64{3, 1, -5},
			Center:      [3]float64{0, 0, -2.5},
		},
		Frustum: FrustumConfig{
			Left: -0.5, Right: 0.5,
			Bottom: -0.5, Top: 0.5,
			Near: 1, Far: 4,
		},
		Annotations: AnnotationsConfig{
			HeadRadius: 0.1,
			LabelSize:  0.075,
			Face:       text.DefaultFace,
		},
		Screenshots: ScreenshotsConfig{
			Dir:    "screenshots",
			Prefix: "frustum",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
