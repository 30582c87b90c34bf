package core

// Action represents a semantic intent, abstracted from physical key presses and gestures.
// The simulation only ever sees actions; the platform owns the bindings.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, swipe left - move one lane left
	ActionRight          // Right arrow, swipe right - move one lane right
	ActionJump           // Up arrow, W, swipe up - jump / double jump
	ActionShield         // Space, Enter, tap - activate the firewall shield
	ActionConfirm        // Enter - start from the menu, leave the shop
	ActionRestart        // R - restart after game over or victory
	ActionBuy1           // 1 - buy the first shop offer
	ActionBuy2           // 2 - buy the second shop offer
	ActionBuy3           // 3 - buy the third shop offer
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionJump:
		return "Jump"
	case ActionShield:
		return "Shield"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBuy1:
		return "Buy1"
	case ActionBuy2:
		return "Buy2"
	case ActionBuy3:
		return "Buy3"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// BuySlot returns the zero-based shop slot for a buy action, or -1.
func (a Action) BuySlot() int {
	switch a {
	case ActionBuy1:
		return 0
	case ActionBuy2:
		return 1
	case ActionBuy3:
		return 2
	default:
		return -1
	}
}

// InputFrame holds the intents queued between two simulation ticks.
// Each action type is a single latest-wins flag; repeated presses within one
// frame collapse into one intent.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// Left and Right share one lane-change slot: the later one replaces the earlier.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	switch a {
	case ActionLeft:
		delete(f.Actions, ActionRight)
	case ActionRight:
		delete(f.Actions, ActionLeft)
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

// LaneDelta returns -1, 0 or +1 for the queued lane change.
func (f InputFrame) LaneDelta() int {
	switch {
	case f.Has(ActionLeft):
		return -1
	case f.Has(ActionRight):
		return 1
	default:
		return 0
	}
}

// Empty reports whether no action is queued.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
