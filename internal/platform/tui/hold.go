package tui

import (
	"time"

	"github.com/vovakirdan/kiro-arcade/internal/core"
)

// HoldTracker emulates held keys on terminals that only report presses.
//
// Keyboard auto-repeat starts after an initial delay of a few hundred
// milliseconds and then repeats every 30-50ms. A first press therefore keeps
// its action down for delay, and each repeat after that extends it by the
// shorter window, so releasing a key stops motion promptly.
type HoldTracker struct {
	delay   time.Duration
	window  time.Duration
	tracked map[core.Action]bool
	until   map[core.Action]time.Time
}

// NewHoldTracker tracks the given actions. A zero window disables holding.
// A delay shorter than window is raised to window.
func NewHoldTracker(delay, window time.Duration, actions ...core.Action) *HoldTracker {
	h := &HoldTracker{
		delay:   max(delay, window),
		window:  window,
		tracked: make(map[core.Action]bool, len(actions)),
		until:   make(map[core.Action]time.Time, len(actions)),
	}
	for _, a := range actions {
		h.tracked[a] = true
	}
	return h
}

// Press records a key event for a. Untracked actions are ignored.
// Returns whether a is tracked.
func (h *HoldTracker) Press(a core.Action, at time.Time) bool {
	if h == nil || !h.tracked[a] {
		return false
	}
	if h.Held(a, at) {
		h.until[a] = at.Add(h.window)
	} else {
		h.until[a] = at.Add(h.delay)
	}
	return true
}

// Held reports whether a is still down at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	if h == nil || h.window <= 0 {
		return false
	}
	until, ok := h.until[a]
	return ok && !now.After(until)
}

// Apply sets every held action on frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	if h == nil {
		return
	}
	for a := range h.until {
		if h.Held(a, now) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release drops all held actions, e.g. on pause or restart.
func (h *HoldTracker) Release() {
	if h == nil {
		return
	}
	clear(h.until)
}
