package runner

// Status is the top-level state of a run.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusShop
	StatusGameOver
	StatusVictory
)

// String returns the status name shown in logs and the HUD.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "MENU"
	case StatusPlaying:
		return "PLAYING"
	case StatusShop:
		return "SHOP"
	case StatusGameOver:
		return "GAME_OVER"
	case StatusVictory:
		return "VICTORY"
	default:
		return "UNKNOWN"
	}
}

// Simulates reports whether the world moves forward in this status.
// Every other status freezes distance, spawning and collisions.
func (s Status) Simulates() bool {
	return s == StatusPlaying
}

// Finished reports whether the run is over and only a restart leaves it.
func (s Status) Finished() bool {
	return s == StatusGameOver || s == StatusVictory
}

// Trigger is an event that may move the status machine.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerEnterShop
	TriggerCloseShop
	TriggerLivesDepleted
	TriggerLevelsCleared
	TriggerRestart
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerEnterShop:
		return "enter_shop"
	case TriggerCloseShop:
		return "close_shop"
	case TriggerLivesDepleted:
		return "lives_depleted"
	case TriggerLevelsCleared:
		return "levels_cleared"
	case TriggerRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// transitions is the complete table; any (status, trigger) pair not listed is rejected.
var transitions = map[Status]map[Trigger]Status{
	StatusMenu: {
		TriggerStart: StatusPlaying,
	},
	StatusPlaying: {
		TriggerEnterShop:     StatusShop,
		TriggerLivesDepleted: StatusGameOver,
		TriggerLevelsCleared: StatusVictory,
	},
	StatusShop: {
		TriggerCloseShop: StatusPlaying,
	},
	StatusGameOver: {
		TriggerRestart: StatusPlaying,
	},
	StatusVictory: {
		TriggerRestart: StatusPlaying,
	},
}

// NextStatus returns the status reached from s on trigger t, and whether the
// transition is allowed.
func NextStatus(s Status, t Trigger) (Status, bool) {
	next, ok := transitions[s][t]
	if !ok {
		return s, false
	}
	return next, true
}
