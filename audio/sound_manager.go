package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/glowgrid/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays feedback cues through a single speaker mixer
// Every method is safe to call before Initialize or after a failed init; playback is skipped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	volume      float64

	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager with linear volume vol (1 is unchanged)
func NewSoundManager(vol float64) *SoundManager {
	if vol <= 0 {
		vol = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: vol,
		now:    time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; clearing the mixer leaves it silent
	sm.initialized = false
}

// SetMuted turns playback off or on
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted returns the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// PlayChime plays the activation ding
func (sm *SoundManager) PlayChime() {
	sm.Play(SoundChime)
}

// PlayBump plays the collision thud
func (sm *SoundManager) PlayBump() {
	sm.Play(SoundBump)
}

// Play queues a sound unless muted, uninitialized, or played within MinSoundGap
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.accept(st) || !sm.initialized {
		return
	}

	streamer := GetSoundEffect(st, sampleRate, sm.volume)
	if streamer == nil {
		log.Printf("audio: unknown sound %d", st)
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// accept applies mute and rate limiting; caller holds mu
func (sm *SoundManager) accept(st SoundType) bool {
	if st < 0 || st >= soundTypeCount || sm.muted.Load() {
		return false
	}
	now := sm.now()
	if last := sm.lastPlayed[st]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}
