package game

type EventType int

const (
	EventStarted EventType = iota
	EventFruitEaten
	EventSpeedUp
	EventGameOver
	EventReset
)

type Event struct {
	Type  EventType
	Cell  GridCell // head cell for movement-related events
	Score int
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the caller's goroutine.
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
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
