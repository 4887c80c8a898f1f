package constants

import "time"

// Fixture Lighting
const (
	// Lit is the emissive level at the instant a fixture activates
	Lit float32 = 4.0

	// Dimmed is the emissive level of an idle fixture
	Dimmed float32 = 0.1

	// DeactivationTime is how long a fixture stays lit after its activation edge
	DeactivationTime = 10 * time.Second

	// DetectionRadius is the default distance below which an idle fixture activates
	DetectionRadius float32 = 2.0
)
