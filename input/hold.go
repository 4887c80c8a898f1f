package input

import (
	"time"

	"github.com/lixenwraith/glowgrid/core"
)

// HoldTracker turns press events into held state
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until window passes without another press
type HoldTracker struct {
	window time.Duration
	last   [actionCount]time.Time
}

// NewHoldTracker creates a tracker with the given hold window
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a press of a movement action
// Opposing actions cancel each other so reversing direction is immediate
func (h *HoldTracker) Press(a Action, now time.Time) {
	if !a.IsMovement() {
		return
	}
	h.last[a] = now
	switch a {
	case ActionForward:
		h.last[ActionBackward] = time.Time{}
	case ActionBackward:
		h.last[ActionForward] = time.Time{}
	case ActionTurnLeft:
		h.last[ActionTurnRight] = time.Time{}
	case ActionTurnRight:
		h.last[ActionTurnLeft] = time.Time{}
	}
}

// Reset forgets every press
func (h *HoldTracker) Reset() {
	h.last = [actionCount]time.Time{}
}

// Held reports whether a was pressed within the window
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	if a >= actionCount {
		return false
	}
	t := h.last[a]
	return !t.IsZero() && now.Sub(t) < h.window
}

// Intent returns the intent for the frame at now
func (h *HoldTracker) Intent(now time.Time) core.Intent {
	return core.Intent{
		Forward:   h.Held(ActionForward, now),
		Backward:  h.Held(ActionBackward, now),
		TurnLeft:  h.Held(ActionTurnLeft, now),
		TurnRight: h.Held(ActionTurnRight, now),
	}
}
