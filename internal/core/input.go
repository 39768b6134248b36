package core

// Key identifies one of the physical controls the games understand.
// The platform maps terminal keys onto this fixed set.
type Key int

const (
	KeyNone   Key = iota
	KeyUp         // W, Up arrow - thrust
	KeyDown       // S, Down arrow - unused by the simulation
	KeyLeft       // A, Left arrow - rotate counter-clockwise
	KeyRight      // D, Right arrow - rotate clockwise
	KeySpace      // Space - fire
	KeyEscape     // Escape - leave the game
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// EventKind discriminates the input events delivered to a game.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
)

// Event is one discrete input event. Key is meaningful only for key events.
type Event struct {
	Kind EventKind
	Key  Key
}

// QuitEvent returns a quit event.
func QuitEvent() Event { return Event{Kind: EventQuit} }

// Press returns a key press event.
func Press(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// Release returns a key release event.
func Release(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// IsQuit reports whether the event ends the game loop (Quit or Escape pressed).
func (e Event) IsQuit() bool {
	return e.Kind == EventQuit || (e.Kind == EventKeyDown && e.Key == KeyEscape)
}

// InputFrame holds the ordered input events collected during one tick.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]Event, 0, 8)}
}

// Push appends an event, preserving arrival order.
func (f *InputFrame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// WantsQuit returns true if any event in the frame requests termination.
func (f InputFrame) WantsQuit() bool {
	for _, e := range f.Events {
		if e.IsQuit() {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]Event, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
