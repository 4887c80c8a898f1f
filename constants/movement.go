package constants

// Avatar Movement
const (
	// SpeedDecayRate is the passive forward speed loss per second while moving forward
	SpeedDecayRate float32 = 0.05

	// ForceDecayRate is the fraction of opposing force relaxed per second
	ForceDecayRate float32 = 0.25

	// TurnRateFloor is the minimum speed factor for turning and collision push
	// Lets a stationary avatar pivot and still get pushed out of a fixture
	TurnRateFloor float32 = 1.0

	// CollisionRadiusFactor scales fixture width into the horizontal contact radius
	CollisionRadiusFactor float32 = 1.25
)

// CollisionRadius is the default horizontal contact distance between avatar and fixture
const CollisionRadius = BoxWidth * CollisionRadiusFactor
