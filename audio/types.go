package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundChime SoundType = iota // Fixture activation
	SoundBump                   // Avatar contact with a fixture
	soundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundChime:
		return "chime"
	case SoundBump:
		return "bump"
	default:
		return "unknown"
	}
}
