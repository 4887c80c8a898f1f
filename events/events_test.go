package events

import (
	"testing"

	"github.com/lixenwraith/glowgrid/constants"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventFixtureActivated, Frame: 1})
	q.Push(GameEvent{Type: EventCollision, Frame: 2})

	if q.Pending() != 2 {
		t.Errorf("Expected 2 pending, got %d", q.Pending())
	}

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	if got[0].Frame != 1 || got[1].Frame != 2 {
		t.Errorf("Expected FIFO order, got frames %d, %d", got[0].Frame, got[1].Frame)
	}

	if again := q.Consume(); again != nil {
		t.Errorf("Expected empty queue after consume, got %d events", len(again))
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constants.EventQueueSize, len(got))
	}
	if got[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", got[0].Frame)
	}
	if got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, got[len(got)-1].Frame)
	}
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*[]EventType](q)

	r.Register(HandlerFunc[*[]EventType]{
		Types: []EventType{EventFixtureActivated, EventCollision},
		Fn: func(seen *[]EventType, ev GameEvent) {
			*seen = append(*seen, ev.Type)
		},
	})

	q.Push(GameEvent{Type: EventFixtureActivated})
	q.Push(GameEvent{Type: EventDiagnostic})
	q.Push(GameEvent{Type: EventCollision})

	var seen []EventType
	if n := r.DispatchAll(&seen); n != 3 {
		t.Errorf("Expected 3 events consumed, got %d", n)
	}
	if len(seen) != 2 || seen[0] != EventFixtureActivated || seen[1] != EventCollision {
		t.Errorf("Expected [activated collision], got %v", seen)
	}
	if r.HandlerCount(EventDiagnostic) != 0 {
		t.Error("Expected no diagnostic handler")
	}
}
