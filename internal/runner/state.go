package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gensyn-runner/internal/config"
)

// TargetWord is the word whose letters are collected on each layer.
const TargetWord = "GENSYN"

// WordLength is the number of letters in TargetWord.
const WordLength = len(TargetWord)

// State is the single authoritative store of a run. Every operation is a
// complete update or a silent no-op; none of them fail. Operations that a
// caller may want to react to report whether they changed anything.
type State struct {
	cfg config.RunnerConfig
	log *log.Logger

	status Status

	score    int
	lives    int
	maxLives int
	level    int
	lanes    int

	speed         float64
	distance      float64
	levelDistance float64 // Distance covered on the current level

	letters [WordLength]bool
	gems    int

	hasDoubleJump  bool
	hasImmortality bool
	shieldActive   bool
	shieldUntil    time.Duration

	owned  map[ItemID]bool
	offers []ShopItem
}

// NewState creates a store in MENU with a fresh loadout.
// A nil logger discards output.
func NewState(cfg config.RunnerConfig, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &State{cfg: cfg, log: logger, status: StatusMenu}
	s.resetUpgrades()
	s.resetRun()
	return s
}

func (s *State) resetUpgrades() {
	s.maxLives = s.cfg.Player.BaseLives
	s.hasDoubleJump = false
	s.hasImmortality = false
	s.owned = make(map[ItemID]bool)
}

func (s *State) resetRun() {
	s.score = 0
	s.lives = s.maxLives
	s.level = 1
	s.lanes = s.cfg.Track.LaneCount(1)
	s.speed = s.cfg.Track.BaseSpeed
	s.distance = 0
	s.levelDistance = 0
	s.letters = [WordLength]bool{}
	s.gems = 0
	s.shieldActive = false
	s.shieldUntil = 0
	s.offers = nil
}

// transition moves the status machine, logging the change.
func (s *State) transition(t Trigger) bool {
	next, ok := NextStatus(s.status, t)
	if !ok {
		return false
	}
	s.log.Info("status", "from", s.status, "to", next, "trigger", t)
	s.status = next
	return true
}

// StartGame begins a fresh run from the menu.
func (s *State) StartGame() bool {
	if s.status != StatusMenu {
		return false
	}
	s.resetUpgrades()
	s.resetRun()
	return s.transition(TriggerStart)
}

// RestartGame begins a new run after game over or victory. Per-run counters
// reset; permanent upgrades (max lives, unlocked abilities) survive when the
// config keeps them.
func (s *State) RestartGame() bool {
	if !s.status.Finished() {
		return false
	}
	if !s.cfg.Player.KeepUpgradesOnRestart {
		s.resetUpgrades()
	}
	s.resetRun()
	return s.transition(TriggerRestart)
}

// TakeDamage removes one life unless the shield is up. Losing the last life
// ends the run. The post-hit grace window is the player's concern and is
// checked before this is called.
func (s *State) TakeDamage(now time.Duration) bool {
	if s.status != StatusPlaying || s.ShieldActive(now) {
		return false
	}
	s.lives--
	if s.lives < 0 {
		s.lives = 0
	}
	s.log.Debug("damage", "lives", s.lives)
	if s.lives == 0 {
		s.transition(TriggerLivesDepleted)
	}
	return true
}

// CollectLetter marks a letter of the target word as collected and awards
// points. Out-of-range or repeated indices are ignored.
func (s *State) CollectLetter(index int) bool {
	if s.status != StatusPlaying || index < 0 || index >= WordLength || s.HasLetter(index) {
		return false
	}
	s.letters[index] = true
	s.score += s.cfg.Scoring.LetterPoints
	s.log.Debug("letter", "letter", string(TargetWord[index]), "complete", s.WordComplete())
	return true
}

// CollectGem adds points and counts the gem.
func (s *State) CollectGem(points int) bool {
	if s.status != StatusPlaying {
		return false
	}
	if points > 0 {
		s.score += points
	}
	s.gems++
	s.log.Debug("gem", "points", points, "score", s.score)
	return true
}

// EnterShop pauses the run at a shop portal with the given offers.
func (s *State) EnterShop(offers []ShopItem) bool {
	if !s.transition(TriggerEnterShop) {
		return false
	}
	s.offers = append(s.offers[:0], offers...)
	return true
}

// BuyItem spends cost to apply the item's effect. It does nothing outside the
// shop, when the score cannot cover the cost, for unknown items, or for a
// one-time item already owned.
func (s *State) BuyItem(id ItemID, cost int) bool {
	if s.status != StatusShop || cost < 0 || s.score < cost {
		return false
	}
	item, ok := LookupItem(id)
	if !ok || (item.OneTime && s.owned[id]) {
		return false
	}

	s.score -= cost
	switch item.Effect {
	case EffectDoubleJump:
		s.hasDoubleJump = true
	case EffectMaxLife:
		s.maxLives++
		s.lives++
	case EffectHeal:
		s.lives = min(s.lives+1, s.maxLives)
	case EffectImmortality:
		s.hasImmortality = true
	}
	if item.OneTime {
		s.owned[id] = true
		s.removeOffer(id)
	}
	s.log.Info("purchase", "item", id, "cost", cost, "score", s.score)
	return true
}

func (s *State) removeOffer(id ItemID) {
	kept := s.offers[:0]
	for _, o := range s.offers {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.offers = kept
}

// CloseShop resumes the run.
func (s *State) CloseShop() bool {
	if !s.transition(TriggerCloseShop) {
		return false
	}
	s.offers = nil
	return true
}

// ActivateImmortality raises the shield for the configured duration if the
// ability is unlocked and not already running.
func (s *State) ActivateImmortality(now time.Duration) bool {
	if s.status != StatusPlaying || !s.hasImmortality || s.ShieldActive(now) {
		return false
	}
	s.shieldActive = true
	s.shieldUntil = now + s.cfg.Timers.Shield()
	s.log.Debug("shield up", "until", s.shieldUntil)
	return true
}

// Tick expires timed flags. It is polled once per frame.
func (s *State) Tick(now time.Duration) {
	if s.shieldActive && now >= s.shieldUntil {
		s.shieldActive = false
		s.log.Debug("shield down")
	}
}

// AdvanceLevel moves to the next layer, or to VICTORY past the last one.
// The next layer starts with no letters collected and a wider track.
func (s *State) AdvanceLevel() bool {
	if s.status != StatusPlaying {
		return false
	}
	if s.level >= s.cfg.Track.MaxLevel {
		return s.transition(TriggerLevelsCleared)
	}
	s.level++
	s.lanes = s.cfg.Track.LaneCount(s.level)
	s.letters = [WordLength]bool{}
	s.levelDistance = 0
	s.log.Info("level", "level", s.level, "lanes", s.lanes)
	return true
}

// Advance adds forward travel. Only a playing run moves.
func (s *State) Advance(dist float64) {
	if s.status != StatusPlaying || dist <= 0 {
		return
	}
	s.distance += dist
	s.levelDistance += dist
}

// SetSpeed records the current forward speed.
func (s *State) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	s.speed = speed
}

// Status returns the current status.
func (s *State) Status() Status { return s.status }

// Score returns the spendable score.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// MaxLives returns the life cap.
func (s *State) MaxLives() int { return s.maxLives }

// Level returns the 1-based layer.
func (s *State) Level() int { return s.level }

// LaneCount returns the track width in lanes.
func (s *State) LaneCount() int { return s.lanes }

// Speed returns the forward speed.
func (s *State) Speed() float64 { return s.speed }

// Distance returns the total distance of the run.
func (s *State) Distance() float64 { return s.distance }

// LevelDistance returns the distance covered on the current layer.
func (s *State) LevelDistance() float64 { return s.levelDistance }

// Gems returns the number of gems collected this run.
func (s *State) Gems() int { return s.gems }

// HasDoubleJump reports whether the double jump is unlocked.
func (s *State) HasDoubleJump() bool { return s.hasDoubleJump }

// HasImmortality reports whether the shield ability is unlocked.
func (s *State) HasImmortality() bool { return s.hasImmortality }

// MaxJumps returns the jump budget between landings.
func (s *State) MaxJumps() int {
	if s.hasDoubleJump {
		return 2
	}
	return 1
}

// ShieldActive reports whether the shield is up at time now.
func (s *State) ShieldActive(now time.Duration) bool {
	return s.shieldActive && now < s.shieldUntil
}

// ShieldRemaining returns the time left on the shield.
func (s *State) ShieldRemaining(now time.Duration) time.Duration {
	if !s.ShieldActive(now) {
		return 0
	}
	return s.shieldUntil - now
}

// HasLetter reports whether the letter at index was collected on this layer.
func (s *State) HasLetter(index int) bool {
	return index >= 0 && index < WordLength && s.letters[index]
}

// Letters returns the collected flags for the target word.
func (s *State) Letters() [WordLength]bool { return s.letters }

// CollectedLetters returns the collected indices in ascending order.
func (s *State) CollectedLetters() []int {
	var out []int
	for i, ok := range s.letters {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// WordComplete reports whether every letter of the layer was collected.
func (s *State) WordComplete() bool {
	for _, ok := range s.letters {
		if !ok {
			return false
		}
	}
	return true
}

// Owned reports whether a one-time item was bought this run.
func (s *State) Owned(id ItemID) bool { return s.owned[id] }

// Offers returns the items on sale during the current shop visit.
func (s *State) Offers() []ShopItem {
	out := make([]ShopItem, len(s.offers))
	copy(out, s.offers)
	return out
}
