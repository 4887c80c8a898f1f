package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, mock.Now())
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := start.Add(45 * time.Minute)
	if !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after advances, got %v", expected, mock.Now())
	}
}

func TestPausableClockTick(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock, 0)

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Tick(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", dt)
	}

	// No time passed between ticks
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected 0 on immediate re-tick, got %v", dt)
	}
}

func TestPausableClockCapsStalls(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock, 250*time.Millisecond)

	mock.Advance(3 * time.Second)
	if dt := clock.Tick(); dt != 250*time.Millisecond {
		t.Errorf("Expected capped delta 250ms, got %v", dt)
	}
}

func TestPausableClockPauseYieldsZero(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock, 0)

	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}

	mock.Advance(2 * time.Second)
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected 0 while paused, got %v", dt)
	}

	mock.Advance(time.Second)
	clock.Resume()
	mock.Advance(100 * time.Millisecond)

	// Only the time after resume reaches the simulation
	if dt := clock.Tick(); dt != 100*time.Millisecond {
		t.Errorf("Expected 100ms after resume, got %v", dt)
	}

	if total := clock.TotalPauseDuration(); total != 3*time.Second {
		t.Errorf("Expected 3s total pause, got %v", total)
	}
}

func TestPausableClockToggle(t *testing.T) {
	clock := NewPausableClock(NewMockTimeProvider(time.Unix(0, 0)), 0)

	if paused := clock.Toggle(); !paused {
		t.Error("Expected first toggle to pause")
	}
	if paused := clock.Toggle(); paused {
		t.Error("Expected second toggle to resume")
	}
}
