package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gensyn-runner/internal/config"
	"github.com/vovakirdan/gensyn-runner/internal/core"
)

// ObjectType is the kind of a spawned track object.
type ObjectType int

const (
	ObjectObstacle ObjectType = iota
	ObjectGem
	ObjectLetter
	ObjectShopPortal
	ObjectAlien
	ObjectMissile
	ObjectLayerGate
)

// String returns the object type name.
func (t ObjectType) String() string {
	switch t {
	case ObjectObstacle:
		return "OBSTACLE"
	case ObjectGem:
		return "GEM"
	case ObjectLetter:
		return "LETTER"
	case ObjectShopPortal:
		return "SHOP_PORTAL"
	case ObjectAlien:
		return "ALIEN"
	case ObjectMissile:
		return "MISSILE"
	case ObjectLayerGate:
		return "LAYER_GATE"
	default:
		return "UNKNOWN"
	}
}

// SpansTrack reports whether the object covers every lane.
func (t ObjectType) SpansTrack() bool {
	return t == ObjectShopPortal || t == ObjectLayerGate
}

// extent is the collision size of an object type: vertical range above the
// ground, width across the track (as a fraction of lane width) and depth.
type extent struct {
	bottom, top float64
	widthLanes  float64
	depth       float64
}

var extents = map[ObjectType]extent{
	ObjectObstacle:   {bottom: 0, top: 1.2, widthLanes: 0.7, depth: 1.0},
	ObjectGem:        {bottom: 0.4, top: 1.4, widthLanes: 0.4, depth: 0.8},
	ObjectLetter:     {bottom: 0.4, top: 1.6, widthLanes: 0.45, depth: 0.8},
	ObjectAlien:      {bottom: 1.9, top: 3.0, widthLanes: 0.6, depth: 1.2},
	ObjectMissile:    {bottom: 0.3, top: 1.1, widthLanes: 0.25, depth: 1.6},
	ObjectShopPortal: {bottom: 0, top: 12, depth: 1.0},
	ObjectLayerGate:  {bottom: 0, top: 12, depth: 1.0},
}

// TrackObject is one spawned instance. Active is the consumed flag: once an
// object has raised its event it is inactive and never raises another.
type TrackObject struct {
	ID          uint64
	Type        ObjectType
	Lane        int
	Z           float64 // Negative is ahead of the player
	PrevZ       float64 // Z at the start of the last update
	Active      bool
	LetterIndex int
	Points      int
	HasFired    bool // Aliens fire one missile
}

// Box returns the volume the object swept during its last update, so fast
// objects cannot tunnel through the player between frames.
func (o TrackObject) Box(laneWidth float64, laneCount int) core.Box {
	e := extents[o.Type]
	width := e.widthLanes * laneWidth
	x := float64(o.Lane) * laneWidth
	if o.Type.SpansTrack() {
		width = float64(laneCount) * laneWidth
		x = 0
	}
	near, far := math.Max(o.Z, o.PrevZ), math.Min(o.Z, o.PrevZ)
	return core.Box{
		Min: core.Vec3{X: x - width/2, Y: e.bottom, Z: far - e.depth/2},
		Max: core.Vec3{X: x + width/2, Y: e.top, Z: near + e.depth/2},
	}
}

// SpawnContext is what the spawner needs to know about the run.
type SpawnContext struct {
	Level     int
	LaneCount int
	Letters   [WordLength]bool
}

func (c SpawnContext) wordComplete() bool {
	for _, ok := range c.Letters {
		if !ok {
			return false
		}
	}
	return true
}

// Spawner handles spawning, movement and removal of track objects.
type Spawner struct {
	objects   []TrackObject
	rng       *rand.Rand
	cfg       config.RunnerConfig
	nextID    uint64
	sinceRow  float64 // Distance since the last spawn row
	sinceShop float64 // Distance since the last shop portal
}

// NewSpawner creates a new spawner with the given RNG seed.
func NewSpawner(cfg config.RunnerConfig, seed int64) *Spawner {
	s := &Spawner{
		objects: make([]TrackObject, 0, 32),
		cfg:     cfg,
	}
	s.Reset(seed)
	return s
}

// UpdateConfig swaps the tuning; takes effect on the next spawn.
func (s *Spawner) UpdateConfig(cfg config.RunnerConfig) {
	s.cfg = cfg
}

// Reset clears the track and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.Clear()
	s.sinceShop = 0
}

// Clear removes every object, e.g. when a new layer starts.
func (s *Spawner) Clear() {
	s.objects = s.objects[:0]
	s.sinceRow = 0
}

// Update moves objects toward the player by speed*dt, fires alien missiles,
// drops passed or consumed objects and spawns new ones.
func (s *Spawner) Update(dt, speed float64, ctx SpawnContext) {
	step := speed * dt

	for i := range s.objects {
		o := &s.objects[i]
		o.PrevZ = o.Z
		o.Z += step
		if o.Type == ObjectMissile {
			o.Z += s.cfg.Spawn.MissileSpeed * dt
		}
	}

	s.fireMissiles()

	kept := s.objects[:0]
	for _, o := range s.objects {
		if o.Active && o.Z <= s.cfg.Track.RemoveDistance {
			kept = append(kept, o)
		}
	}
	s.objects = kept

	s.sinceRow += step
	s.sinceShop += step

	if ctx.wordComplete() && !s.has(ObjectLayerGate) {
		s.spawn(ObjectLayerGate, 0)
		s.sinceRow = -s.cfg.Spawn.Spacing // Keep the gate's row clear
	}

	if s.cfg.Spawn.ShopEvery > 0 && s.sinceShop >= s.cfg.Spawn.ShopEvery {
		s.sinceShop = 0
		s.spawn(ObjectShopPortal, 0)
		s.sinceRow = -s.cfg.Spawn.Spacing
	}

	for s.sinceRow >= s.cfg.Spawn.Spacing {
		s.sinceRow -= s.cfg.Spawn.Spacing
		s.spawnRow(ctx)
	}
}

// fireMissiles launches one missile from each alien that came within range.
func (s *Spawner) fireMissiles() {
	n := len(s.objects)
	for i := 0; i < n; i++ {
		o := &s.objects[i]
		if o.Type != ObjectAlien || !o.Active || o.HasFired {
			continue
		}
		if o.Z < -s.cfg.Spawn.AlienFireRange {
			continue
		}
		o.HasFired = true
		m := s.newObject(ObjectMissile, o.Lane)
		m.Z = o.Z + 1
		m.PrevZ = m.Z
		s.objects = append(s.objects, m)
	}
}

// spawnRow places one object in a random lane, and sometimes a gem beside it.
func (s *Spawner) spawnRow(ctx SpawnContext) {
	m := MaxLane(ctx.LaneCount)
	lane := s.rng.Intn(2*m+1) - m

	kind := s.pickType(ctx)
	o := s.spawn(kind, lane)
	if kind == ObjectLetter {
		o.LetterIndex = s.pickLetter(ctx)
		if o.LetterIndex < 0 {
			o.Type = ObjectGem
			o.Points = s.cfg.Scoring.GemPoints
		}
		s.objects[len(s.objects)-1] = *o
	}

	if ctx.LaneCount > 1 && s.rng.Intn(4) == 0 {
		other := s.rng.Intn(2*m+1) - m
		if other != lane {
			s.spawn(ObjectGem, other)
		}
	}
}

func (s *Spawner) pickType(ctx SpawnContext) ObjectType {
	w := s.cfg.Spawn.Weights
	alien := w.Alien
	if ctx.Level < s.cfg.Spawn.AlienMinLevel {
		alien = 0
	}
	letter := w.Letter
	if ctx.wordComplete() {
		letter = 0
	}

	total := w.Obstacle + w.Gem + alien + letter
	if total <= 0 {
		return ObjectObstacle
	}
	r := s.rng.Intn(total)
	switch {
	case r < w.Obstacle:
		return ObjectObstacle
	case r < w.Obstacle+w.Gem:
		return ObjectGem
	case r < w.Obstacle+w.Gem+alien:
		return ObjectAlien
	default:
		return ObjectLetter
	}
}

// pickLetter chooses an uncollected letter that is not already on the track,
// or -1 when none is left.
func (s *Spawner) pickLetter(ctx SpawnContext) int {
	onTrack := [WordLength]bool{}
	for _, o := range s.objects {
		if o.Type == ObjectLetter && o.Active && o.LetterIndex >= 0 && o.LetterIndex < WordLength {
			onTrack[o.LetterIndex] = true
		}
	}
	candidates := make([]int, 0, WordLength)
	for i := 0; i < WordLength; i++ {
		if !ctx.Letters[i] && !onTrack[i] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[s.rng.Intn(len(candidates))]
}

func (s *Spawner) newObject(kind ObjectType, lane int) TrackObject {
	s.nextID++
	o := TrackObject{
		ID:          s.nextID,
		Type:        kind,
		Lane:        lane,
		Z:           -s.cfg.Track.SpawnDistance,
		PrevZ:       -s.cfg.Track.SpawnDistance,
		Active:      true,
		LetterIndex: -1,
	}
	if kind == ObjectGem {
		o.Points = s.cfg.Scoring.GemPoints
	}
	return o
}

// spawn appends a new object at the spawn distance and returns a copy of it.
func (s *Spawner) spawn(kind ObjectType, lane int) *TrackObject {
	o := s.newObject(kind, lane)
	s.objects = append(s.objects, o)
	return &o
}

func (s *Spawner) has(kind ObjectType) bool {
	for _, o := range s.objects {
		if o.Type == kind && o.Active {
			return true
		}
	}
	return false
}

// Place adds an object at an explicit position. Used for scripted tracks.
func (s *Spawner) Place(kind ObjectType, lane int, z float64) TrackObject {
	o := s.newObject(kind, lane)
	o.Z, o.PrevZ = z, z
	s.objects = append(s.objects, o)
	return o
}

// Collide raises one event for every active object overlapping the player
// and marks each of those objects consumed. Returns the number of events raised.
func (s *Spawner) Collide(player core.Box, laneWidth float64, laneCount int, q *EventQueue) int {
	n := 0
	for i := range s.objects {
		o := &s.objects[i]
		if !o.Active {
			continue
		}
		if !player.Intersects(o.Box(laneWidth, laneCount)) {
			continue
		}
		o.Active = false
		q.Push(EventFor(*o))
		n++
	}
	return n
}

// Release puts a consumed object back in play so a hit that was never
// applied can fire again on a later frame.
func (s *Spawner) Release(id uint64) {
	for i := range s.objects {
		if s.objects[i].ID == id {
			s.objects[i].Active = true
			return
		}
	}
}

// Objects returns a copy of the objects currently on the track.
func (s *Spawner) Objects() []TrackObject {
	out := make([]TrackObject, len(s.objects))
	copy(out, s.objects)
	return out
}
