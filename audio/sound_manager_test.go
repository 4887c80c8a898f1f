package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/glowgrid/events"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(1)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayChime()
	sm.PlayBump()
	sm.Play(soundTypeCount)
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(1)

	if sm.IsMuted() {
		t.Fatal("Expected unmuted by default")
	}
	if muted := sm.ToggleMute(); !muted {
		t.Error("Expected toggle to mute")
	}
	if sm.accept(SoundChime) {
		t.Error("Expected muted manager to reject sounds")
	}
	sm.SetMuted(false)
	if !sm.accept(SoundChime) {
		t.Error("Expected unmuted manager to accept sounds")
	}
}

func TestSoundManagerRateLimit(t *testing.T) {
	sm := NewSoundManager(1)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return now }

	if !sm.accept(SoundBump) {
		t.Fatal("Expected first bump accepted")
	}
	if sm.accept(SoundBump) {
		t.Error("Expected repeated bump within gap rejected")
	}
	if !sm.accept(SoundChime) {
		t.Error("Expected chime to have its own gap")
	}

	now = now.Add(time.Second)
	if !sm.accept(SoundBump) {
		t.Error("Expected bump accepted after gap")
	}
}

type countingPlayer struct {
	chimes, bumps int
}

func (p *countingPlayer) PlayChime() { p.chimes++ }
func (p *countingPlayer) PlayBump()  { p.bumps++ }

func TestEventHandlerRoutesCues(t *testing.T) {
	q := events.NewEventQueue()
	r := events.NewRouter[struct{}](q)
	p := &countingPlayer{}
	r.Register(NewEventHandler[struct{}](p))

	q.Push(events.GameEvent{Type: events.EventFixtureActivated})
	q.Push(events.GameEvent{Type: events.EventFixtureActivated})
	q.Push(events.GameEvent{Type: events.EventCollision})
	q.Push(events.GameEvent{Type: events.EventDiagnostic})

	if n := r.DispatchAll(struct{}{}); n != 4 {
		t.Errorf("Expected 4 events consumed, got %d", n)
	}
	if p.chimes != 2 || p.bumps != 1 {
		t.Errorf("Expected 2 chimes and 1 bump, got %d and %d", p.chimes, p.bumps)
	}
}
