package sim

import "github.com/vovakirdan/space-defender/internal/core"

// Controls is the player's steering intent. It is a value: applying an
// event yields a new Controls rather than mutating the ship.
type Controls struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
}

// Apply returns the controls after one input event. Presses set a flag and
// releases clear it; each flag is independent of the others.
func (c Controls) Apply(e core.Event) Controls {
	var on bool
	switch e.Kind {
	case core.EventKeyDown:
		on = true
	case core.EventKeyUp:
		on = false
	default:
		return c
	}

	switch e.Key {
	case core.KeyUp:
		c.Thrust = on
	case core.KeyLeft:
		c.RotateLeft = on
	case core.KeyRight:
		c.RotateRight = on
	}
	return c
}

// Input is everything the player asked for during one tick.
type Input struct {
	Controls Controls
	Fire     int  // lasers requested this tick
	Quit     bool // Quit or Escape seen
}

// ReadInput folds the tick's events, in order, over the previous controls.
func ReadInput(prev Controls, events []core.Event) Input {
	in := Input{Controls: prev}
	for _, e := range events {
		if e.IsQuit() {
			in.Quit = true
			continue
		}
		if e.Kind == core.EventKeyDown && e.Key == core.KeySpace {
			in.Fire++
			continue
		}
		in.Controls = in.Controls.Apply(e)
	}
	return in
}
