package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same sound
	// Contact lasts many frames; one bump per gap is enough
	MinSoundGap = 120 * time.Millisecond
)

// Chime Sound Timing
const (
	ChimeSoundDuration           = 600 * time.Millisecond
	ChimeSoundAttack             = 5 * time.Millisecond
	ChimeSoundFundamentalRelease = 550 * time.Millisecond
	ChimeSoundOvertoneRelease    = 200 * time.Millisecond
)

// Bump Sound Timing
const (
	BumpSoundDuration = 90 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 60 * time.Millisecond
)
