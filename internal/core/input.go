package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the simulation to work with high-level intents
// rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // W, Up arrow - move goalie up
	ActionDown                 // S, Down arrow - move goalie down
	ActionLeft                 // A, Left arrow - move goalie toward the goal
	ActionRight                // D, Right arrow - move goalie out of the crease
	ActionStickUp              // Raise the stick (glove side)
	ActionStickStraight        // Neutral stick position
	ActionStickDown            // Drop the stick (butterfly)
	ActionConfirm              // Enter - restart from the match-over prompt
	ActionBack                 // B, Escape - leave the match
	ActionRestart              // R key - restart after the match ends
	ActionQuit                 // Q, Ctrl+C - exit
	ActionPause                // P - pause/unpause
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
	case ActionStickUp:
		return "StickUp"
	case ActionStickStraight:
		return "StickStraight"
	case ActionStickDown:
		return "StickDown"
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

// Pointer carries the drag state for one frame. While Dragging is true the
// pointer position fully overrides keyboard movement, and its vertical zone
// selects the stick position (top third up, bottom third down).
type Pointer struct {
	Dragging bool
	X, Y     int // Screen cell coordinates; the game maps them to field units
}

// InputFrame represents the input state for a single simulation tick: the
// set of actions triggered this frame plus the pointer drag snapshot.
// Input handlers only write into the frame; they never touch physics state
// directly, so the frame is the single hand-off point between event
// callbacks and the tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	Pointer Pointer
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
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records the pointer drag position for this frame.
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = Pointer{Dragging: true, X: x, Y: y}
}

// ReleasePointer ends the drag. Keyboard movement takes over next frame.
func (f *InputFrame) ReleasePointer() {
	f.Pointer.Dragging = false
}

// Clear resets all actions for the next frame. The pointer drag state is
// sticky: a drag stays active across frames until released.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
