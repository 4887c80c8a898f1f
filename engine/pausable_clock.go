package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock turns wall-clock readings into per-frame simulated deltas
// While paused Tick returns 0 and pause time is never fed into the simulation
type PausableClock struct {
	mu sync.Mutex

	provider TimeProvider
	lastTick time.Time
	maxDelta time.Duration

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock reading from provider
// maxDelta caps a single frame's delta after stalls; 0 disables the cap
func NewPausableClock(provider TimeProvider, maxDelta time.Duration) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider: provider,
		lastTick: provider.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns the simulated time elapsed since the previous tick
func (pc *PausableClock) Tick() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	if pc.isPaused.Load() {
		pc.lastTick = now
		return 0
	}

	dt := now.Sub(pc.lastTick)
	pc.lastTick = now
	if dt < 0 {
		return 0
	}
	if pc.maxDelta > 0 && dt > pc.maxDelta {
		dt = pc.maxDelta
	}
	return dt
}

// Pause stops simulated time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.provider.Now()
	}
}

// Resume continues simulated time advancement from the resume point
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		now := pc.provider.Now()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += now.Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
		pc.lastTick = now
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.isPaused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
