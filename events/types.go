package events

import "time"

// EventType represents the type of simulation event
type EventType int

const (
	// EventFixtureActivated marks an Idle to Active edge
	// Trigger: LightingSystem applying a proximity edge
	// Consumer: audio chime, debug log | Payload: *FixturePayload
	EventFixtureActivated EventType = iota

	// EventFixtureDeactivated marks the timer reaching the deactivation threshold
	// Trigger: LightingSystem | Payload: *FixturePayload
	EventFixtureDeactivated

	// EventCollision marks avatar contact with one or more fixtures
	// Trigger: MovementSystem applying a force update
	// Consumer: audio bump | Payload: *CollisionPayload
	EventCollision

	// EventDiagnostic carries a recoverable configuration problem
	// Trigger: any pass that had to skip work | Payload: *DiagnosticPayload
	EventDiagnostic
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventFixtureActivated:
		return "fixture_activated"
	case EventFixtureDeactivated:
		return "fixture_deactivated"
	case EventCollision:
		return "collision"
	case EventDiagnostic:
		return "diagnostic"
	default:
		return "unknown"
	}
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
