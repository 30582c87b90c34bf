package runner

import "time"

// PlayerView is the render pose of the player.
type PlayerView struct {
	Lane     int
	X        float64 // Eased horizontal position
	Y        float64
	Airborne bool
	Jumps    int
	Spin     float64
	Tilt     float64
	Visible  bool // False on the off phase of the post-hit blink
	Shielded bool
}

// Snapshot is a read-only view of a run for the HUD and the renderer.
// It holds copies only; mutating it does not affect the game.
type Snapshot struct {
	Status       string
	Score        int
	Lives        int
	MaxLives     int
	Level        int
	MaxLevel     int
	LaneCount    int
	LaneWidth    float64
	Speed        float64
	SpeedPercent int // Speed relative to the base run speed
	Distance     float64
	Gems         int
	Letters      [WordLength]bool
	DoubleJump   bool
	Immortality  bool
	ShieldLeft   time.Duration
	Offers       []ShopItem
	Player       PlayerView
	Objects      []TrackObject
	Now          time.Duration
}

// Snapshot returns the current read model.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	shielded := s.ShieldActive(g.now)

	pct := 0
	if g.cfg.Track.BaseSpeed > 0 {
		pct = int(s.Speed()/g.cfg.Track.BaseSpeed*100 + 0.5)
	}

	return Snapshot{
		Status:       s.Status().String(),
		Score:        s.Score(),
		Lives:        s.Lives(),
		MaxLives:     s.MaxLives(),
		Level:        s.Level(),
		MaxLevel:     g.cfg.Track.MaxLevel,
		LaneCount:    s.LaneCount(),
		LaneWidth:    g.cfg.Physics.LaneWidth,
		Speed:        s.Speed(),
		SpeedPercent: pct,
		Distance:     s.Distance(),
		Gems:         s.Gems(),
		Letters:      s.Letters(),
		DoubleJump:   s.HasDoubleJump(),
		Immortality:  s.HasImmortality(),
		ShieldLeft:   s.ShieldRemaining(g.now),
		Offers:       s.Offers(),
		Player: PlayerView{
			Lane:     g.player.Lane(),
			X:        g.player.X(),
			Y:        g.player.Y(),
			Airborne: g.player.Airborne(),
			Jumps:    g.player.JumpsPerformed(),
			Spin:     g.player.Spin(),
			Tilt:     g.player.Tilt(),
			Visible:  g.player.Visible(g.now, shielded),
			Shielded: shielded,
		},
		Objects: g.spawner.Objects(),
		Now:     g.now,
	}
}
