// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType enumerates the events the viewer reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventDimensionSelect
	EventToggleShading
	EventToggleFaces
	EventScreenshot
)

// Event represents a processed input event. Dimension is only set for
// EventDimensionSelect and is always one of 2, 3, 4: other number keys
// never produce a selection event, so malformed dimensions cannot reach
// the scene.
type Event struct {
	Type      EventType
	Key       sdl.Scancode
	Width     int
	Height    int
	Dimension int
}

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

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			i.events = append(i.events, mapKey(e.Keysym.Scancode))
		}
	}

	return false
}

// mapKey translates a pressed key into a viewer event.
func mapKey(code sdl.Scancode) Event {
	switch code {
	case sdl.SCANCODE_2, sdl.SCANCODE_KP_2:
		return Event{Type: EventDimensionSelect, Dimension: 2}
	case sdl.SCANCODE_3, sdl.SCANCODE_KP_3:
		return Event{Type: EventDimensionSelect, Dimension: 3}
	case sdl.SCANCODE_4, sdl.SCANCODE_KP_4:
		return Event{Type: EventDimensionSelect, Dimension: 4}
	case sdl.SCANCODE_E:
		return Event{Type: EventToggleShading}
	case sdl.SCANCODE_F:
		return Event{Type: EventToggleFaces}
	case sdl.SCANCODE_F12:
		return Event{Type: EventScreenshot}
	default:
		return Event{Type: EventKeyDown, Key: code}
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
