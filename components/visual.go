package components

// MaterialHandle identifies an emissive material owned by the render side
// Zero means no material was attached
type MaterialHandle uint32

// VisualComponent links a fixture to the material its brightness is written into
type VisualComponent struct {
	Material MaterialHandle
}
