package core

import "math"

// Gesture thresholds, in screen pixels.
const (
	SwipeThreshold = 30.0 // Minimum displacement along the dominant axis for a swipe
	TapThreshold   = 10.0 // Maximum displacement on both axes for a tap
)

// ClassifyGesture maps a pointer/touch displacement (end minus start, y grows
// downward) to an action. Horizontal swipes change lanes, an upward swipe jumps,
// a tap raises the shield. Anything else, including downward swipes, is ActionNone.
func ClassifyGesture(dx, dy float64) Action {
	ax, ay := math.Abs(dx), math.Abs(dy)

	if ax > ay && ax > SwipeThreshold {
		if dx > 0 {
			return ActionRight
		}
		return ActionLeft
	}
	if ay > ax && dy < -SwipeThreshold {
		return ActionJump
	}
	if ax < TapThreshold && ay < TapThreshold {
		return ActionShield
	}
	return ActionNone
}
