package tui

import (
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
)

// DefaultHoldTimeout is slightly longer than the usual terminal
// auto-repeat delay, so a held key keeps repeating before it expires.
const DefaultHoldTimeout = 550 * time.Millisecond

// heldKeys are the keys that behave as "held" controls. Everything else
// produces a single press per key message.
var heldKeys = [...]core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight}

// HoldTracker turns the terminal's stream of key presses and auto-repeats
// into press/release pairs. Terminals never report a release, so a held key
// is considered released once it has not repeated for the hold timeout.
type HoldTracker struct {
	holdTicks int
	remaining [core.KeyEscape + 1]int
}

// minHoldTicks keeps a key held through at least one step after its press,
// since the press and the first expiry share a frame.
const minHoldTicks = 2

// NewHoldTracker converts timeout into whole ticks at tickRate.
func NewHoldTracker(timeout time.Duration, tickRate int) HoldTracker {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	tickLen := time.Second / time.Duration(tickRate)
	ticks := int((timeout + tickLen - 1) / tickLen)
	return HoldTracker{holdTicks: max(ticks, minHoldTicks)}
}

// Press records a key message and pushes the resulting events onto frame.
// A held key only produces KeyDown on its first press; repeats just keep it alive.
// Pressing one turn direction releases the other immediately.
func (h *HoldTracker) Press(k core.Key, frame *core.InputFrame) {
	if !isHeld(k) {
		frame.Push(core.Press(k))
		return
	}

	if opp := opposite(k); opp != core.KeyNone && h.remaining[opp] > 0 {
		h.remaining[opp] = 0
		frame.Push(core.Release(opp))
	}

	if h.remaining[k] == 0 {
		frame.Push(core.Press(k))
	}
	h.remaining[k] = h.holdTicks
}

// Expire ages every held key by one tick and pushes KeyUp for those that
// ran out. Call it once per tick before stepping the game.
func (h *HoldTracker) Expire(frame *core.InputFrame) {
	for _, k := range heldKeys {
		if h.remaining[k] == 0 {
			continue
		}
		h.remaining[k]--
		if h.remaining[k] == 0 {
			frame.Push(core.Release(k))
		}
	}
}

// Held reports whether k is currently considered down.
func (h *HoldTracker) Held(k core.Key) bool {
	return isHeld(k) && h.remaining[k] > 0
}

func isHeld(k core.Key) bool {
	for _, hk := range heldKeys {
		if hk == k {
			return true
		}
	}
	return false
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	}
	return core.KeyNone
}
