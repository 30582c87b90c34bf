// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Rect represents an axis-aligned rectangle on the character screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec3 is a point in track space: X across lanes, Y up from the ground,
// Z along the track (negative is ahead of the player).
type Vec3 struct {
	X, Y, Z float64
}

// Box is an axis-aligned bounding box in track space used for overlap tests.
type Box struct {
	Min, Max Vec3
}

// NewBox builds a box from its center on the X/Z plane, its ground-relative
// vertical extent and its width/depth.
func NewBox(centerX, centerZ, bottom, top, width, depth float64) Box {
	return Box{
		Min: Vec3{X: centerX - width/2, Y: bottom, Z: centerZ - depth/2},
		Max: Vec3{X: centerX + width/2, Y: top, Z: centerZ + depth/2},
	}
}

// Intersects returns true if the two boxes overlap on all three axes.
// Touching faces do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	if b.Min.X >= other.Max.X || other.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= other.Max.Y || other.Min.Y >= b.Max.Y {
		return false
	}
	if b.Min.Z >= other.Max.Z || other.Min.Z >= b.Max.Z {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp moves a toward b by fraction t, with t clamped to [0, 1] so large frame
// deltas never overshoot the target.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*ClampF(t, 0, 1)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
