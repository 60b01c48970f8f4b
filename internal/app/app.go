// Package app hosts the viewer: it owns the windows and the GL renderer and
// drives the observer scene one frame at a time.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/frustumviz/internal/config"
	"github.com/Faultbox/frustumviz/internal/engine/input"
	"github.com/Faultbox/frustumviz/internal/engine/renderer"
	"github.com/Faultbox/frustumviz/internal/engine/screenshot"
	"github.com/Faultbox/frustumviz/internal/engine/text"
	"github.com/Faultbox/frustumviz/internal/engine/window"
	"github.com/Faultbox/frustumviz/internal/logger"
	"github.com/Faultbox/frustumviz/internal/scene"
)

// Window titles.
const (
	ObserverTitle    = "Frustum Observer"
	FrustumViewTitle = "Frustum View"
)

// FrustumViewBackground is the clear color of the frustum view window.
var FrustumViewBackground = [4]float32{0.3, 0.3, 0.6, 1}

// App is the running viewer.
type App struct {
	cfg *config.Config
	log *zap.Logger

	observer    *window.Window
	frustumView *window.Window

	renderer *renderer.Renderer
	labels   *text.Renderer
	composer *scene.Composer
	input    *input.Input
	capture  *screenshot.Capture

	state scene.State
}

// New opens the windows and prepares the renderer and scene.
func New(cfg *config.Config) (*App, error) {
	sceneCfg, err := cfg.Scene()
	if err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	composer, err := scene.New(sceneCfg)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	a := &App{
		cfg:      cfg,
		log:      logger.Named("app"),
		composer: composer,
		input:    input.New(),
		capture:  screenshot.New(cfg.Screenshots.Dir, cfg.Screenshots.Prefix),
	}

	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("projection", sceneCfg.Projection.Mode.String()),
		zap.String("rig", cfg.View.Rig),
	)

	if err := window.Init(cfg.Window.Multisample); err != nil {
		return nil, err
	}

	a.observer, err = window.New(a.windowConfig(ObserverTitle), nil)
	if err != nil {
		window.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	rcfg := renderer.DefaultConfig()
	rcfg.Multisample = cfg.Window.Multisample > 0
	a.renderer, err = renderer.New(rcfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.labels = text.NewRenderer(a.renderer)

	if cfg.Window.FrustumViewWindow {
		a.frustumView, err = window.New(a.windowConfig(FrustumViewTitle), a.observer)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create %s window: %w", FrustumViewTitle, err)
		}
	}

	a.log.Info("viewer initialized successfully",
		zap.String("screenshot_dir", a.capture.OutputDir()),
	)
	return a, nil
}

func (a *App) windowConfig(title string) window.Config {
	w := a.cfg.Window
	return window.Config{
		Title:      title,
		Width:      w.Width,
		Height:     w.Height,
		Fullscreen: w.Fullscreen,
		VSync:      w.VSync,
		Samples:    w.Multisample,
	}
}

// Run redraws every window until the viewer is closed, the frame limit is
// reached, or a frame fails.
func (a *App) Run() error {
	limit := frameLimit{max: a.cfg.Run.MaxFrames}
	fps := newFPSCounter(time.Now())

	a.log.Info("starting render loop", zap.Uint64("max_frames", limit.max))

	for !limit.done() {
		if a.input.Update() {
			a.log.Info("quit requested")
			break
		}
		a.handleEvents()

		if err := a.drawObserver(); err != nil {
			return fmt.Errorf("frame %d: %w", a.state.Frame, err)
		}
		if err := a.drawFrustumView(); err != nil {
			return err
		}

		limit.tick()
		if n, elapsed, ok := fps.tick(time.Now()); ok {
			a.log.Debug("fps",
				zap.Int("count", n),
				zap.Duration("elapsed", elapsed),
				zap.Float64("orbit", a.state.OrbitAngle),
			)
			a.observer.SetTitle(observerTitle(n, elapsed))
		}
	}

	a.log.Info("render loop finished", zap.Uint64("frames", a.state.Frame))
	return nil
}

// handleEvents logs window resizes. Sizes are re-read every frame, so no
// state needs updating here.
func (a *App) handleEvents() {
	for _, e := range a.input.Events() {
		if e.Type != input.EventWindowResize {
			continue
		}
		a.log.Debug("window resized",
			zap.String("window", a.windowTitle(e.WindowID)),
			zap.Int("width", e.Width),
			zap.Int("height", e.Height),
		)
	}
}

func (a *App) windowTitle(id uint32) string {
	switch {
	case a.observer != nil && a.observer.ID() == id:
		return ObserverTitle
	case a.frustumView != nil && a.frustumView.ID() == id:
		return FrustumViewTitle
	}
	return "unknown"
}

func (a *App) drawObserver() error {
	if err := a.observer.MakeCurrent(); err != nil {
		return err
	}
	width, height := a.observer.GetSize()
	if width <= 0 || height <= 0 {
		// minimized
		return nil
	}

	next, err := a.composer.Frame(a.state, width, height, a.renderer, a.labels)
	if err != nil {
		return err
	}
	a.state = next

	if a.input.ScreenshotRequested() {
		a.screenshot(width, height)
	}

	a.observer.SwapBuffers()
	return nil
}

func (a *App) drawFrustumView() error {
	if a.frustumView == nil {
		return nil
	}
	if err := a.frustumView.MakeCurrent(); err != nil {
		return err
	}
	width, height := a.frustumView.GetSize()
	a.renderer.Clear(width, height, FrustumViewBackground)
	a.frustumView.SwapBuffers()
	return nil
}

// screenshot saves the observer back buffer. Failures are logged, not fatal.
func (a *App) screenshot(width, height int) {
	pixels := a.renderer.ReadPixels(width, height)
	path, err := a.capture.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL resources, windows and SDL.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.frustumView != nil {
		a.frustumView.Close()
		a.frustumView = nil
	}
	if a.observer != nil {
		a.observer.Close()
		a.observer = nil
	}
	window.Quit()
}
