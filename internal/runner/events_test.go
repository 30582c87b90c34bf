package runner

import "testing"

func TestEventFor(t *testing.T) {
	tests := []struct {
		kind ObjectType
		want EventKind
	}{
		{ObjectObstacle, EventDamage},
		{ObjectAlien, EventDamage},
		{ObjectMissile, EventDamage},
		{ObjectGem, EventGem},
		{ObjectLetter, EventLetter},
		{ObjectShopPortal, EventShopPortal},
		{ObjectLayerGate, EventLayerGate},
	}

	for _, tt := range tests {
		ev := EventFor(TrackObject{ID: 7, Type: tt.kind, LetterIndex: 2, Points: 50})
		if ev.Kind != tt.want {
			t.Errorf("%v -> %v, expected %v", tt.kind, ev.Kind, tt.want)
		}
		if ev.ObjectID != 7 {
			t.Errorf("%v: object id = %d", tt.kind, ev.ObjectID)
		}
	}

	if ev := EventFor(TrackObject{Type: ObjectLetter, LetterIndex: 4}); ev.LetterIndex != 4 {
		t.Errorf("letter index = %d, expected 4", ev.LetterIndex)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	if q.Drain() != nil {
		t.Error("empty queue should drain to nil")
	}

	q.Push(Event{Kind: EventGem, ObjectID: 1})
	q.Push(Event{Kind: EventDamage, ObjectID: 2})
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 || got[0].ObjectID != 1 || got[1].ObjectID != 2 {
		t.Errorf("drain order = %+v", got)
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after drain: %d", q.Len())
	}
}

func TestEventOrderPutsStatusChangesLast(t *testing.T) {
	tests := []struct {
		first, second EventKind
	}{
		{EventGem, EventDamage},
		{EventLetter, EventShopPortal},
		{EventDamage, EventLayerGate},
		{EventLayerGate, EventShopPortal},
	}
	for _, tt := range tests {
		if tt.first.order() >= tt.second.order() {
			t.Errorf("%s should apply before %s", tt.first, tt.second)
		}
	}
}
