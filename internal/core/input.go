package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game loop to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, h - shift piece left
	ActionRight             // Right arrow, l - shift piece right
	ActionSoftDrop          // Down arrow, j - move piece one row down
	ActionRotate            // Up arrow, k, x - rotate clockwise
	ActionHardDrop          // Space - drop and lock
	ActionPause             // P, Escape - pause/unpause game
	ActionRestart           // R - start a fresh game
	ActionScreenshot        // Ctrl+S - save the screen to a file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions received during one simulation tick.
// Input is edge-triggered: every key press is one entry, and entries keep
// their arrival order so two presses in one frame apply twice.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 8),
	}
}

// Set records an action for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
