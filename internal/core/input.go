package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - menu navigation
	ActionDown             // S, Down arrow - menu navigation
	ActionLeft             // A, Left arrow - move left, decrease value
	ActionRight            // D, Right arrow - move right, increase value
	ActionJump             // Space
	ActionDuck             // S, Down arrow while playing - crouch or fast fall
	ActionFire             // R, F, left mouse button
	ActionConfirm          // Enter
	ActionBack             // Escape - leave the current screen, skip name entry
	ActionPause            // P, Escape while playing
	ActionMenu             // M - abandon a paused run
	ActionBackspace        // Backspace in name entry
	ActionSelect1          // 1 - direct menu pick
	ActionSelect2          // 2
	ActionSelect3          // 3
	ActionCopy             // C - copy the score table
	ActionQuit             // Q, Ctrl+C - close the game
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionJump:      "Jump",
	ActionDuck:      "Duck",
	ActionFire:      "Fire",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionPause:     "Pause",
	ActionMenu:      "Menu",
	ActionBackspace: "Backspace",
	ActionSelect1:   "Select1",
	ActionSelect2:   "Select2",
	ActionSelect3:   "Select3",
	ActionCopy:      "Copy",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is everything the input source reported for one frame.
// Pressed holds discrete key presses, Held holds keys that are currently
// down, and Text holds runes typed since the previous frame.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
	Text    []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press records a discrete press of an action.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold records that an action is currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Type appends a typed rune.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Has reports whether the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Holding reports whether the action is down, either held or pressed this frame.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Text = f.Text[:0]
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Text = append([]rune(nil), f.Text...)
	return clone
}
