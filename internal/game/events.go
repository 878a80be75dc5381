package game

type EventType int

const (
	EventRunStart EventType = iota
	EventPickup
	EventCapture
	EventSuspended
)

// Event carries the position and score context of a session event so
// subscribers (audio, particles, telemetry) never touch the World directly.
type Event struct {
	Type   EventType
	Pos    Vec2
	Score  int // floored score at emit time
	Cheese int // cheese eaten this run
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
