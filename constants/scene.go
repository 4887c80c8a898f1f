package constants

// Fixture Geometry
const (
	BoxHeight float32 = 1.25
	BoxWidth  float32 = 0.5

	// Spacing is centre-to-centre distance between neighbouring fixtures
	Spacing float32 = 2.0

	GridRows = 5
	GridCols = 5
)

// Avatar Geometry
const (
	AvatarRadius float32 = 0.25
	AvatarHeight float32 = 1.8

	// AvatarSpawnY puts the capsule base on the ground plane
	AvatarSpawnY = (AvatarHeight + AvatarRadius*2) / 2
)
