package core

// Action is a semantic game command, decoupled from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow, swipe up
	ActionDown            // S, Down arrow, swipe down
	ActionLeft            // A, Left arrow, swipe left
	ActionRight           // D, Right arrow, swipe right
	ActionUndo            // U, Ctrl+Z
	ActionContinue        // C - keep playing after a win
	ActionNewGame         // N, R - start over
	ActionQuit            // Q, Ctrl+C
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
	case ActionUndo:
		return "Undo"
	case ActionContinue:
		return "Continue"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered by one input event.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		if a != ActionNone {
			f.Set(a)
		}
	}
	return f
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next event.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// DefaultSwipeThreshold is the minimum drag distance, in pixels, that counts
// as a swipe on pointer-based hosts.
const DefaultSwipeThreshold = 20

// ResolveSwipe turns a drag of (dx, dy) into a move along the axis of larger
// displacement. Positive dy points down. Drags shorter than threshold on both
// axes return ActionNone; a tie goes to the vertical axis.
func ResolveSwipe(dx, dy, threshold int) Action {
	ax, ay := Abs(dx), Abs(dy)
	if max(ax, ay) < threshold {
		return ActionNone
	}
	if ax > ay {
		if dx > 0 {
			return ActionRight
		}
		return ActionLeft
	}
	if dy > 0 {
		return ActionDown
	}
	return ActionUp
}
