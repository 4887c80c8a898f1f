package events

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/core"
)

// FixturePayload identifies the fixture whose state changed
type FixturePayload struct {
	Entity   core.Entity
	Position mgl32.Vec3
}

// CollisionPayload carries the force handed to the avatar and the fixtures touched
type CollisionPayload struct {
	Force    mgl32.Vec3
	Contacts []core.Entity
}

// DiagnosticPayload describes work a pass skipped
type DiagnosticPayload struct {
	Pass   string
	Entity core.Entity
	Err    error
}
