package runner

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/gensyn-runner/internal/config"
	"github.com/vovakirdan/gensyn-runner/internal/core"
)

const laneW = 2.2

func groundBox(lane int, y float64) core.Box {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg.Physics, cfg.Timers, 7)
	p.MoveLane(lane)
	p.y = y
	return p.Box()
}

func TestCollideFiresOncePerObject(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), 1)
	gem := sp.Place(ObjectGem, 0, 0)

	var q EventQueue
	if n := sp.Collide(groundBox(0, 0), laneW, 3, &q); n != 1 {
		t.Fatalf("first overlap raised %d events, expected 1", n)
	}
	if n := sp.Collide(groundBox(0, 0), laneW, 3, &q); n != 0 {
		t.Errorf("second overlap raised %d events, expected 0", n)
	}

	events := q.Drain()
	if len(events) != 1 || events[0].Kind != EventGem || events[0].ObjectID != gem.ID {
		t.Errorf("events = %+v", events)
	}
	if events[0].Points != 50 {
		t.Errorf("gem points = %d, expected 50", events[0].Points)
	}
}

func TestReleaseRearmsObject(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), 1)
	gem := sp.Place(ObjectGem, 0, 0)

	var q EventQueue
	sp.Collide(groundBox(0, 0), laneW, 3, &q)
	sp.Release(gem.ID)
	if n := sp.Collide(groundBox(0, 0), laneW, 3, &q); n != 1 {
		t.Errorf("released object raised %d events, expected 1", n)
	}
}

func TestCollideGeometry(t *testing.T) {
	tests := []struct {
		name    string
		kind    ObjectType
		objLane int
		lane    int
		y       float64
		hit     bool
	}{
		{"obstacle same lane", ObjectObstacle, 0, 0, 0, true},
		{"obstacle next lane", ObjectObstacle, 1, 0, 0, false},
		{"obstacle jumped over", ObjectObstacle, 0, 0, 1.5, false},
		{"alien over grounded player", ObjectAlien, 0, 0, 0, false},
		{"alien hit mid-jump", ObjectAlien, 0, 0, 1.0, true},
		{"missile same lane", ObjectMissile, -1, -1, 0, true},
		{"letter same lane", ObjectLetter, 1, 1, 0, true},
		{"portal spans lanes", ObjectShopPortal, 0, 1, 0, true},
		{"gate spans lanes", ObjectLayerGate, 0, -1, 2.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := NewSpawner(config.DefaultRunnerConfig(), 1)
			sp.Place(tt.kind, tt.objLane, 0)

			var q EventQueue
			got := sp.Collide(groundBox(tt.lane, tt.y), laneW, 3, &q) == 1
			if got != tt.hit {
				t.Errorf("hit = %v, expected %v", got, tt.hit)
			}
		})
	}
}

func TestCollideSweptNoTunneling(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), 1)
	sp.Place(ObjectObstacle, 0, 0)
	// One slow frame carried the obstacle from well ahead to well behind.
	sp.objects[0].PrevZ = -6
	sp.objects[0].Z = 6

	var q EventQueue
	if sp.Collide(groundBox(0, 0), laneW, 3, &q) != 1 {
		t.Error("object passing through the player between frames was missed")
	}
}

func TestSpawnerRemovesPassedObjects(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), 1)
	sp.Place(ObjectObstacle, 0, 19)
	sp.Place(ObjectGem, 0, -50)

	sp.Update(0.5, 4, SpawnContext{Level: 1, LaneCount: 3})

	objs := sp.Objects()
	if len(objs) != 1 || objs[0].Type != ObjectGem {
		t.Fatalf("objects = %+v, expected only the gem", objs)
	}
	if objs[0].Z != -48 {
		t.Errorf("gem z = %v, expected -48", objs[0].Z)
	}
}

func TestSpawnerDropsConsumedObjects(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), 1)
	sp.Place(ObjectGem, 0, 0)
	var q EventQueue
	sp.Collide(groundBox(0, 0), laneW, 3, &q)

	sp.Update(0.01, 0, SpawnContext{Level: 1, LaneCount: 3})
	if n := len(sp.Objects()); n != 0 {
		t.Errorf("%d objects left, expected consumed gem removed", n)
	}
}

func TestAlienFiresOnce(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), 1)
	sp.Place(ObjectAlien, 1, -100)
	ctx := SpawnContext{Level: 2, LaneCount: 3}

	sp.Update(0.01, 0, ctx)
	if countType(sp.Objects(), ObjectMissile) != 0 {
		t.Fatal("alien fired out of range")
	}

	sp.objects[0].Z = -50
	for i := 0; i < 10; i++ {
		sp.Update(0.01, 0, ctx)
	}
	objs := sp.Objects()
	if n := countType(objs, ObjectMissile); n != 1 {
		t.Fatalf("%d missiles, expected 1", n)
	}
	for _, o := range objs {
		if o.Type == ObjectMissile && o.Lane != 1 {
			t.Errorf("missile in lane %d, expected the alien's lane", o.Lane)
		}
	}
}

func TestSpawnerLettersOnlyUncollected(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.Weights = config.SpawnWeights{Obstacle: 1, Letter: 3}
	sp := NewSpawner(cfg, 3)

	ctx := SpawnContext{Level: 1, LaneCount: 3, Letters: [WordLength]bool{true, true, true, false, true, true}}
	sawLetter := false
	for i := 0; i < 2000; i++ {
		sp.Update(1.0/60, 22.5, ctx)
		onTrack := 0
		for _, o := range sp.Objects() {
			if o.Type != ObjectLetter {
				continue
			}
			sawLetter = true
			onTrack++
			if o.LetterIndex != 3 {
				t.Fatalf("spawned collected letter %d", o.LetterIndex)
			}
		}
		if onTrack > 1 {
			t.Fatalf("frame %d: %d copies of the same letter on track", i, onTrack)
		}
	}
	if !sawLetter {
		t.Error("missing letter never spawned")
	}
}

func TestSpawnerNoAliensOnFirstLayer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.Weights = config.SpawnWeights{Obstacle: 1, Alien: 10}
	sp := NewSpawner(cfg, 5)

	for i := 0; i < 1000; i++ {
		sp.Update(1.0/60, 22.5, SpawnContext{Level: 1, LaneCount: 3})
		if n := countType(sp.Objects(), ObjectAlien); n != 0 {
			t.Fatalf("alien spawned on layer 1")
		}
	}

	for i := 0; i < 1000; i++ {
		sp.Update(1.0/60, 22.5, SpawnContext{Level: 2, LaneCount: 5})
	}
	if countType(sp.Objects(), ObjectAlien) == 0 {
		t.Error("no alien spawned on layer 2")
	}
}

func TestSpawnerGateAfterWord(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), 1)

	sp.Update(1.0/60, 22.5, SpawnContext{Level: 1, LaneCount: 3})
	if countType(sp.Objects(), ObjectLayerGate) != 0 {
		t.Fatal("gate spawned before the word was complete")
	}

	done := SpawnContext{Level: 1, LaneCount: 3, Letters: [WordLength]bool{true, true, true, true, true, true}}
	for i := 0; i < 60; i++ {
		sp.Update(1.0/60, 22.5, done)
	}
	if n := countType(sp.Objects(), ObjectLayerGate); n != 1 {
		t.Errorf("%d gates on track, expected 1", n)
	}
	if countType(sp.Objects(), ObjectLetter) != 0 {
		t.Error("letters spawned after the word was complete")
	}
}

func TestSpawnerShopPortal(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.ShopEvery = 100
	sp := NewSpawner(cfg, 1)

	for i := 0; i < 300; i++ {
		sp.Update(1.0/60, 22.5, SpawnContext{Level: 1, LaneCount: 3})
	}
	// 112.5 units travelled: exactly one portal.
	if n := countType(sp.Objects(), ObjectShopPortal); n != 1 {
		t.Errorf("%d portals, expected 1", n)
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	run := func() []TrackObject {
		sp := NewSpawner(config.DefaultRunnerConfig(), 99)
		for i := 0; i < 500; i++ {
			sp.Update(1.0/60, 30, SpawnContext{Level: 2, LaneCount: 5})
		}
		return sp.Objects()
	}
	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different tracks")
	}
}

func TestSpawnerLanesInRange(t *testing.T) {
	sp := NewSpawner(config.DefaultRunnerConfig(), 11)
	for i := 0; i < 2000; i++ {
		sp.Update(1.0/60, 22.5, SpawnContext{Level: 1, LaneCount: 3})
		for _, o := range sp.Objects() {
			if o.Lane < -1 || o.Lane > 1 {
				t.Fatalf("object in lane %d with 3 lanes", o.Lane)
			}
		}
	}
}

func countType(objs []TrackObject, kind ObjectType) int {
	n := 0
	for _, o := range objs {
		if o.Type == kind && o.Active {
			n++
		}
	}
	return n
}
