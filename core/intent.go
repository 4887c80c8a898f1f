package core

// Intent is the player's steering input for one frame
// Forward and Backward are not required to be exclusive; both apply when set
type Intent struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Any reports whether any steering flag is set
func (i Intent) Any() bool {
	return i.Forward || i.Backward || i.TurnLeft || i.TurnRight
}
