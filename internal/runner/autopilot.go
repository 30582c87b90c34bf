package runner

import (
	"math/rand"

	"github.com/vovakirdan/gensyn-runner/internal/core"
)

// lookAhead is how far ahead the autopilot reacts to objects.
const lookAhead = 30.0

// Autopilot plays the game headlessly: it starts and restarts runs, buys
// the first affordable offer in the shop, dodges hazards and steers toward
// letters and gems. It only reads the snapshot, the same way a player would.
type Autopilot struct {
	rng *rand.Rand
}

// NewAutopilot creates a seeded autopilot.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed))}
}

// Decide returns the intents for the next frame.
func (a *Autopilot) Decide(s Snapshot) core.InputFrame {
	in := core.NewInputFrame()

	switch s.Status {
	case StatusMenu.String():
		in.Set(core.ActionConfirm)
	case StatusGameOver.String(), StatusVictory.String():
		in.Set(core.ActionRestart)
	case StatusShop.String():
		for i, item := range s.Offers {
			if item.Cost <= s.Score && i < 3 {
				in.Set([]core.Action{core.ActionBuy1, core.ActionBuy2, core.ActionBuy3}[i])
				return in
			}
		}
		in.Set(core.ActionConfirm)
	case StatusPlaying.String():
		a.steer(s, &in)
	}
	return in
}

func (a *Autopilot) steer(s Snapshot, in *core.InputFrame) {
	m := MaxLane(s.LaneCount)
	danger := make(map[int]float64)
	want := make(map[int]float64)

	for _, o := range s.Objects {
		if !o.Active || o.Z > 1 || o.Z < -lookAhead {
			continue
		}
		switch o.Type {
		case ObjectObstacle, ObjectMissile:
			danger[o.Lane] = max(danger[o.Lane], lookAhead+o.Z)
		case ObjectLetter:
			want[o.Lane] += 3
		case ObjectGem:
			want[o.Lane]++
		}
	}

	lane := s.Player.Lane
	if d, ok := danger[lane]; ok {
		best, bestScore := lane, -1e9
		for l := -m; l <= m; l++ {
			score := want[l] - danger[l] - float64(core.Abs(l-lane))
			if score > bestScore {
				best, bestScore = l, score
			}
		}
		switch {
		case best < lane:
			in.Set(core.ActionLeft)
		case best > lane:
			in.Set(core.ActionRight)
		case d > lookAhead-8 && !s.Player.Airborne:
			in.Set(core.ActionJump)
		}
		if s.Immortality && s.ShieldLeft == 0 && d > lookAhead-4 {
			in.Set(core.ActionShield)
		}
		return
	}

	for _, l := range []int{lane - 1, lane + 1} {
		if l < -m || l > m {
			continue
		}
		if want[l] > want[lane] && danger[l] == 0 {
			if l < lane {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			return
		}
	}

	// Occasional hop keeps runs from looking scripted.
	if !s.Player.Airborne && a.rng.Intn(200) == 0 {
		in.Set(core.ActionJump)
	}
}
