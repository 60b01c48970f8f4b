// Package window handles SDL2 windows and the OpenGL context they share.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/frustumviz/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	// Samples is the multisample count; 0 disables multisampling.
	Samples int
}

// Window wraps an SDL2 window. The first window created owns the OpenGL
// context; later windows share it.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	ownsCtx   bool
	log       *zap.Logger
}

// Init initializes SDL2 video and sets the OpenGL attributes every window
// will be created with. Call it once before New.
func Init(samples int) error {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 1)

	if samples > 0 {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, samples)
	}
	return nil
}

// Quit shuts SDL2 down. Close every window first.
func Quit() {
	sdl.Quit()
}

// New creates a window. If share is nil the window gets a fresh OpenGL
// context, otherwise it renders with share's context.
func New(cfg Config, share *Window) (*Window, error) {
	w := &Window{
		config: cfg,
		log:    logger.Named("window").With(zap.String("title", cfg.Title)),
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	if share != nil {
		w.glContext = share.glContext
		if err := w.MakeCurrent(); err != nil {
			w.sdlWindow.Destroy()
			return nil, err
		}
	} else {
		w.glContext, err = w.sdlWindow.GLCreateContext()
		if err != nil {
			w.sdlWindow.Destroy()
			return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
		}
		w.ownsCtx = true
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			w.log.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		_ = sdl.GLSetSwapInterval(0)
	}

	w.log.Info("window created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("samples", cfg.Samples),
		zap.Bool("shared_context", share != nil),
	)

	return w, nil
}

// Close destroys the window, and its OpenGL context if it owns one.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.ownsCtx && w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
}

// ID returns the SDL window id carried by window events.
func (w *Window) ID() uint32 {
	id, err := w.sdlWindow.GetID()
	if err != nil {
		return 0
	}
	return id
}

// MakeCurrent directs subsequent OpenGL calls at this window.
func (w *Window) MakeCurrent() error {
	if err := w.sdlWindow.GLMakeCurrent(w.glContext); err != nil {
		return fmt.Errorf("SDL_GL_MakeCurrent %q: %w", w.config.Title, err)
	}
	return nil
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// GetSize returns the drawable size in pixels, which differs from the
// window size on high-DPI displays.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
