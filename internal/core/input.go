package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games see intents ("rotate clockwise"), never keys.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, W - menu up; rotates clockwise in game
	ActionDown              // Down arrow, S - menu down; soft drop in game
	ActionLeft              // Left arrow, A - move piece left
	ActionRight             // Right arrow, D - move piece right
	ActionRotateCW          // X - rotate clockwise
	ActionRotateCCW         // Z - rotate counter-clockwise
	ActionHardDrop          // Space - drop piece to its landing row
	ActionConfirm           // Enter - confirm selection / start game
	ActionBack              // B - go back to menu
	ActionRestart           // R - restart game
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P, Escape - pause/unpause game
	ActionToggleGhost       // G - toggle landing preview
	ActionVolumeUp          // + / = - raise sound volume
	ActionVolumeDown        // - - lower sound volume
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionRotateCW:    "RotateCW",
	ActionRotateCCW:   "RotateCCW",
	ActionHardDrop:    "HardDrop",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
	ActionToggleGhost: "ToggleGhost",
	ActionVolumeUp:    "VolumeUp",
	ActionVolumeDown:  "VolumeDown",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state for a single player during one simulation tick.
// Actions are kept in arrival order so that "left, rotate" within one frame
// is applied in the order the keys were pressed.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
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
