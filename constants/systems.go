package constants

// System priorities, lower runs first
// Detection and collision observe positions from the end of the previous frame
// Lighting runs after detection so a same-frame edge shows in that frame's brightness
const (
	PriorityProximity = 10
	PriorityCollision = 20
	PriorityMovement  = 30
	PriorityLighting  = 40
	PriorityFeedback  = 50
)

// Event Queue
const (
	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
