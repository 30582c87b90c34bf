package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/gensyn-runner/internal/config"
	"github.com/vovakirdan/gensyn-runner/internal/core"
)

// spinRate is the double-jump somersault speed in radians per second.
const spinRate = 15.0

// Player owns the runner's kinematics. Nothing outside the Game mutates it.
type Player struct {
	physics config.PhysicsConfig
	timers  config.TimersConfig

	lane      int // Authoritative lane, snaps instantly on intent
	laneCount int

	x        float64 // Rendered horizontal position, eases toward the lane
	y        float64 // Height above ground
	vy       float64 // Vertical velocity, positive is up
	airborne bool
	jumps    int
	spin     float64

	hit   bool          // A hit has been registered this run
	hitAt time.Duration // Frame clock at the last registered hit
}

// NewPlayer creates a grounded player in the center lane.
func NewPlayer(physics config.PhysicsConfig, timers config.TimersConfig, laneCount int) *Player {
	p := &Player{physics: physics, timers: timers}
	p.Reset(laneCount)
	return p
}

// Reset puts the player back on the ground in the center lane and forgets
// any grace window.
func (p *Player) Reset(laneCount int) {
	p.laneCount = laneCount
	p.lane = 0
	p.x = 0
	p.y = 0
	p.vy = 0
	p.airborne = false
	p.jumps = 0
	p.spin = 0
	p.hit = false
	p.hitAt = 0
}

// MaxLane returns the outermost lane index for a lane count.
func MaxLane(laneCount int) int {
	return laneCount / 2
}

// SetLaneCount changes the track width and re-clamps the current lane.
func (p *Player) SetLaneCount(laneCount int) {
	p.laneCount = laneCount
	m := MaxLane(laneCount)
	p.lane = core.Clamp(p.lane, -m, m)
}

// MoveLane shifts the lane by delta, clamped to the track edges.
func (p *Player) MoveLane(delta int) {
	m := MaxLane(p.laneCount)
	p.lane = core.Clamp(p.lane+delta, -m, m)
}

// Jump starts a jump from the ground, or a mid-air jump while jumps remain.
// Returns false when the intent is ignored.
func (p *Player) Jump(maxJumps int) bool {
	if !p.airborne {
		p.airborne = true
		p.jumps = 1
		p.vy = p.physics.JumpForce
		return true
	}
	if p.jumps < maxJumps {
		p.jumps++
		p.vy = p.physics.JumpForce
		p.spin = 0
		return true
	}
	return false
}

// Update integrates the vertical motion over dt seconds.
// Landing clamps to the ground and clears the jump count.
func (p *Player) Update(dt float64) {
	if !p.airborne {
		return
	}

	p.vy -= p.physics.Gravity * dt
	p.y += p.vy * dt

	if p.y <= 0 {
		p.y = 0
		p.vy = 0
		p.airborne = false
		p.jumps = 0
		p.spin = 0
		return
	}

	if p.jumps == 2 {
		p.spin = math.Max(p.spin-spinRate*dt, -2*math.Pi)
	}
}

// UpdateVisual eases the rendered position toward the lane center.
func (p *Player) UpdateVisual(dt float64) {
	p.x = core.Lerp(p.x, p.TargetX(), dt*p.physics.LaneLerp)
}

// TargetX is the horizontal center of the authoritative lane.
func (p *Player) TargetX() float64 {
	return float64(p.lane) * p.physics.LaneWidth
}

// MarkHit starts the post-hit grace window.
func (p *Player) MarkHit(now time.Duration) {
	p.hit = true
	p.hitAt = now
}

// Invincible reports whether the player is inside the post-hit grace window.
func (p *Player) Invincible(now time.Duration) bool {
	return p.hit && now-p.hitAt < p.timers.Invincibility()
}

// Visible returns the blink state while invincible. The shield keeps the
// player solid.
func (p *Player) Visible(now time.Duration, shielded bool) bool {
	if shielded || !p.Invincible(now) {
		return true
	}
	blink := p.timers.Blink()
	if blink <= 0 {
		return true
	}
	return (now/blink)%2 == 0
}

// Box returns the collision volume at the authoritative lane.
func (p *Player) Box() core.Box {
	return core.NewBox(p.TargetX(), 0, p.y, p.y+p.physics.PlayerHeight,
		p.physics.PlayerWidth, p.physics.PlayerDepth)
}

// Lane returns the authoritative lane.
func (p *Player) Lane() int { return p.lane }

// X returns the rendered horizontal position.
func (p *Player) X() float64 { return p.x }

// Y returns the height above ground.
func (p *Player) Y() float64 { return p.y }

// VelocityY returns the vertical velocity.
func (p *Player) VelocityY() float64 { return p.vy }

// Airborne reports whether the player is off the ground.
func (p *Player) Airborne() bool { return p.airborne }

// JumpsPerformed returns the jumps used since last touching the ground.
func (p *Player) JumpsPerformed() int { return p.jumps }

// Spin returns the double-jump somersault angle in radians.
func (p *Player) Spin() float64 { return p.spin }

// Tilt returns the lean into a lane change, proportional to the remaining offset.
func (p *Player) Tilt() float64 { return -(p.TargetX() - p.x) * 0.2 }
