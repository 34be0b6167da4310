package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - forward / menu up
	ActionDown           // S, Down arrow - backward / menu down
	ActionLeft           // A, Left arrow - turn left
	ActionRight          // D, Right arrow - turn right
	ActionJump           // Space - primary action (flap, fire)
	ActionFire           // F - fire
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer carries mouse activity observed during a frame, in screen cells.
type Pointer struct {
	X, Y    int
	Moved   bool // Pointer moved at least once this frame
	Pressed bool // A button was pressed this frame
}

// Active reports whether any pointer event happened this frame.
func (p Pointer) Active() bool {
	return p.Moved || p.Pressed
}

// InputFrame is the input for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds the latest pointer position and whether it moved or
	// pressed since the previous frame.
	Pointer Pointer

	// At is the wall-clock time of the tick. Zero means "derive from the
	// tick count" (see FrameClock).
	At time.Time
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// HasAny reports whether any of the given actions was triggered.
func (f InputFrame) HasAny(actions ...Action) bool {
	for _, a := range actions {
		if f.Actions[a] {
			return true
		}
	}
	return false
}

// MovePointer records a pointer motion to (x, y).
func (f *InputFrame) MovePointer(x, y int) {
	f.Pointer.X, f.Pointer.Y = x, y
	f.Pointer.Moved = true
}

// PressPointer records a pointer press at (x, y).
func (f *InputFrame) PressPointer(x, y int) {
	f.Pointer.X, f.Pointer.Y = x, y
	f.Pointer.Pressed = true
}

// Clear resets all actions and pointer flags for the next frame.
// The last pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Moved = false
	f.Pointer.Pressed = false
	f.At = time.Time{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.At = f.At
	return clone
}
