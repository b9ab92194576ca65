package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A - shift piece left
	ActionRight           // Right arrow, D - shift piece right
	ActionRotate          // Up arrow, W - rotate piece clockwise
	ActionSoftDrop        // Down arrow, S - one row down (locks on contact)
	ActionHardDrop        // Space - drop to rest and lock
	ActionPause           // P, Escape - pause/unpause
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
)

// allActions lists every real action in declaration order.
var allActions = []Action{
	ActionLeft,
	ActionRight,
	ActionRotate,
	ActionSoftDrop,
	ActionHardDrop,
	ActionPause,
	ActionRestart,
	ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of Action.String. Unknown names yield ActionNone.
func ParseAction(name string) Action {
	for _, a := range allActions {
		if a.String() == name {
			return a
		}
	}
	return ActionNone
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
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

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// List returns the triggered actions in a stable order.
// Games iterate this instead of the map so that replays are deterministic.
func (f InputFrame) List() []Action {
	var out []Action
	for _, a := range allActions {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Script is recorded input keyed by the tick it was applied on.
type Script map[uint64]InputFrame

// Frame returns the input for tick, or an empty frame.
func (s Script) Frame(tick uint64) InputFrame {
	if f, ok := s[tick]; ok {
		return f
	}
	return NewInputFrame()
}
