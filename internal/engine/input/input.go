// Package input turns SDL2 events into viewer commands.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowClose
	EventWindowResize
	EventKeyDown
)

// Event represents a processed input event.
type Event struct {
	Type     EventType
	WindowID uint32
	Key      sdl.Scancode
	Width    int
	Height   int
}

// Key bindings.
const (
	KeyQuit       = sdl.SCANCODE_ESCAPE
	KeyScreenshot = sdl.SCANCODE_F12
)

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL event queue. It returns true if the viewer should
// quit: the application was asked to quit, a window was closed, or the
// quit key was pressed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.Push(event)
	}
	return i.QuitRequested()
}

// Push translates one SDL event and records it.
func (i *Input) Push(event sdl.Event) {
	if e, ok := Translate(event); ok {
		i.events = append(i.events, e)
	}
}

// Translate converts an SDL event into an Event. Events the viewer does not
// react to report false.
func Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return Event{Type: EventWindowClose, WindowID: e.WindowID}, true
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{
				Type:     EventWindowResize,
				WindowID: e.WindowID,
				Width:    int(e.Data1),
				Height:   int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{
				Type:     EventKeyDown,
				WindowID: e.WindowID,
				Key:      e.Keysym.Scancode,
			}, true
		}
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// QuitRequested reports whether this frame's events ask the viewer to stop.
func (i *Input) QuitRequested() bool {
	for _, e := range i.events {
		if e.Type == EventQuit || e.Type == EventWindowClose {
			return true
		}
	}
	return i.IsKeyPressed(KeyQuit)
}

// ScreenshotRequested reports whether the screenshot key was pressed.
func (i *Input) ScreenshotRequested() bool {
	return i.IsKeyPressed(KeyScreenshot)
}
