// Package runner implements GENSYN RUNNER: a three-dimensional endless runner
// where the player switches lanes, jumps and shields through layers of a
// neural network, collecting the letters of GENSYN to break through to the
// next layer.
package runner

import (
	"cmp"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gensyn-runner/internal/config"
	"github.com/vovakirdan/gensyn-runner/internal/core"
)

// maxStep caps a single frame delta so a stalled host cannot teleport the run.
const maxStep = 100 * time.Millisecond

// StepResult is returned by Step.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event // Events applied this frame, in order
}

// Game owns one run: the store, the player's kinematics and the track.
// It is driven by a single caller; nothing in it is safe for concurrent use.
type Game struct {
	cfg     config.RunnerConfig
	pending *config.RunnerConfig // Applied on the next start or restart
	runtime core.RuntimeConfig
	log     *log.Logger

	state      *State
	player     *Player
	spawner    *Spawner
	difficulty *config.DifficultyManager
	queue      EventQueue
	offerRNG   RandomSource

	now     time.Duration // Frame clock, advances every frame in every status
	elapsed time.Duration // Time spent PLAYING on the current layer
	runs    int64         // Started runs, varies the track seed between runs
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithOfferSource replaces the random source used to sample shop offers.
func WithOfferSource(rng RandomSource) Option {
	return func(g *Game) {
		if rng != nil {
			g.offerRNG = rng
		}
	}
}

// New creates a game in MENU.
func New(cfg config.RunnerConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		runtime: runtime,
		log:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.state = NewState(cfg, g.log)
	g.player = NewPlayer(cfg.Physics, cfg.Timers, g.state.LaneCount())
	g.spawner = NewSpawner(cfg, runtime.Seed)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if g.offerRNG == nil {
		g.offerRNG = newOfferSource(runtime.Seed)
	}
	return g
}

// SetConfig stages new tuning. A run in progress keeps its tuning; the new
// one takes effect when the next run starts.
func (g *Game) SetConfig(cfg config.RunnerConfig) {
	g.pending = &cfg
	g.log.Info("config staged")
}

func (g *Game) applyPending() {
	if g.pending == nil {
		return
	}
	g.cfg = *g.pending
	g.pending = nil
	g.state.cfg = g.cfg
	g.player.physics = g.cfg.Physics
	g.player.timers = g.cfg.Timers
	g.spawner.UpdateConfig(g.cfg)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.log.Info("config applied")
}

// State exposes the store for read access.
func (g *Game) State() *State { return g.state }

// Player exposes the kinematics for read access.
func (g *Game) Player() *Player { return g.player }

// Now returns the frame clock.
func (g *Game) Now() time.Duration { return g.now }

// Objects returns the objects on the track.
func (g *Game) Objects() []TrackObject { return g.spawner.Objects() }

// Config returns the tuning of the current run.
func (g *Game) Config() config.RunnerConfig { return g.cfg }

// Step advances the game by dt and applies the intents queued since the last
// frame. Intents that do not apply to the current status are dropped.
func (g *Game) Step(dt time.Duration, in core.InputFrame) StepResult {
	if dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}
	g.now += dt
	secs := dt.Seconds()

	g.applyIntents(in)

	g.state.Tick(g.now)

	var applied []Event
	if g.state.Status().Simulates() {
		applied = g.simulate(dt, secs)
	}

	if st := g.state.Status(); st == StatusPlaying || st == StatusShop {
		g.player.UpdateVisual(secs)
	}

	return StepResult{Snapshot: g.Snapshot(), Events: applied}
}

// applyIntents routes the frame's intents by status.
func (g *Game) applyIntents(in core.InputFrame) {
	switch g.state.Status() {
	case StatusMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionShield) {
			g.start()
		}

	case StatusGameOver, StatusVictory:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}

	case StatusShop:
		offers := g.state.Offers()
		for _, a := range []core.Action{core.ActionBuy1, core.ActionBuy2, core.ActionBuy3} {
			slot := a.BuySlot()
			if in.Has(a) && slot < len(offers) {
				g.state.BuyItem(offers[slot].ID, offers[slot].Cost)
			}
		}
		if in.Has(core.ActionConfirm) {
			g.state.CloseShop()
		}

	case StatusPlaying:
		if d := in.LaneDelta(); d != 0 {
			g.player.MoveLane(d)
		}
		if in.Has(core.ActionJump) {
			g.player.Jump(g.state.MaxJumps())
		}
		if in.Has(core.ActionShield) {
			g.state.ActivateImmortality(g.now)
		}
	}
}

func (g *Game) start() {
	g.applyPending()
	if g.state.StartGame() {
		g.resetRun()
	}
}

func (g *Game) restart() {
	g.applyPending()
	if g.state.RestartGame() {
		g.resetRun()
	}
}

// resetRun puts the kinematics and the track back to the start of a run.
func (g *Game) resetRun() {
	g.runs++
	g.player.Reset(g.state.LaneCount())
	g.spawner.Reset(g.runtime.Seed + g.runs - 1)
	g.difficulty.SetInitialLevel(g.cfg.Difficulty.InitialLevel)
	g.queue.Drain()
	g.elapsed = 0
}

// simulate runs one PLAYING frame: kinematics, speed, track, overlap and
// event application, in that order.
func (g *Game) simulate(dt time.Duration, secs float64) []Event {
	g.elapsed += dt
	g.player.Update(secs)

	speed := g.speed()
	g.state.SetSpeed(speed)
	g.state.Advance(speed * secs)

	g.spawner.Update(secs, speed, SpawnContext{
		Level:     g.state.Level(),
		LaneCount: g.state.LaneCount(),
		Letters:   g.state.Letters(),
	})

	g.spawner.Collide(g.player.Box(), g.cfg.Physics.LaneWidth, g.state.LaneCount(), &g.queue)

	events := g.queue.Drain()
	slices.SortStableFunc(events, func(a, b Event) int {
		return cmp.Compare(a.Kind.order(), b.Kind.order())
	})

	var applied []Event
	for _, ev := range events {
		if !g.state.Status().Simulates() {
			// The run paused or ended mid-frame; the object stays live for later.
			g.spawner.Release(ev.ObjectID)
			continue
		}
		g.apply(ev)
		applied = append(applied, ev)
	}
	return applied
}

// speed is the base speed for the layer plus the in-layer progression.
func (g *Game) speed() float64 {
	base := g.cfg.Track.BaseSpeed * (1 + g.cfg.Track.LevelSpeedBonus*float64(g.state.Level()-1))
	return g.difficulty.Speed(base, g.state.LevelDistance(), g.elapsed)
}

// apply routes one event to the store.
func (g *Game) apply(ev Event) {
	switch ev.Kind {
	case EventDamage:
		if g.player.Invincible(g.now) {
			return
		}
		if g.state.TakeDamage(g.now) {
			g.player.MarkHit(g.now)
		}

	case EventGem:
		g.state.CollectGem(ev.Points)

	case EventLetter:
		g.state.CollectLetter(ev.LetterIndex)

	case EventShopPortal:
		offers := SampleOffers(g.offerRNG, g.cfg.Shop.OfferCount, g.state.Owned)
		g.state.EnterShop(offers)

	case EventLayerGate:
		if !g.state.WordComplete() {
			return
		}
		if g.state.AdvanceLevel() && g.state.Status() == StatusPlaying {
			g.player.SetLaneCount(g.state.LaneCount())
			g.elapsed = 0
		}
	}
}
