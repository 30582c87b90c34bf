package runner

// EventKind is the semantic meaning of a collision.
type EventKind int

const (
	EventDamage EventKind = iota
	EventGem
	EventLetter
	EventShopPortal
	EventLayerGate
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventDamage:
		return "damage"
	case EventGem:
		return "gem"
	case EventLetter:
		return "letter"
	case EventShopPortal:
		return "shop_portal"
	case EventLayerGate:
		return "layer_gate"
	default:
		return "unknown"
	}
}

// order ranks kinds for application within one frame. Pickups land before
// damage, and the status-changing kinds go last so nothing raised alongside
// them is lost to the status change.
func (k EventKind) order() int {
	switch k {
	case EventGem, EventLetter:
		return 0
	case EventDamage:
		return 1
	case EventLayerGate:
		return 2
	case EventShopPortal:
		return 3
	default:
		return 4
	}
}

// Event is one discrete hit raised by an overlap, waiting to be applied to the store.
type Event struct {
	Kind        EventKind
	ObjectID    uint64
	Source      ObjectType
	LetterIndex int // EventLetter only
	Points      int // EventGem only
}

// EventFor maps a track object to the single event it raises.
func EventFor(o TrackObject) Event {
	ev := Event{ObjectID: o.ID, Source: o.Type}
	switch o.Type {
	case ObjectObstacle, ObjectAlien, ObjectMissile:
		ev.Kind = EventDamage
	case ObjectGem:
		ev.Kind = EventGem
		ev.Points = o.Points
	case ObjectLetter:
		ev.Kind = EventLetter
		ev.LetterIndex = o.LetterIndex
	case ObjectShopPortal:
		ev.Kind = EventShopPortal
	case ObjectLayerGate:
		ev.Kind = EventLayerGate
	}
	return ev
}

// EventQueue buffers events raised during a frame until the store drains them.
// It is owned by the frame update; nothing else touches it.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
