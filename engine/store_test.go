package engine

import (
	"testing"

	"github.com/lixenwraith/glowgrid/core"
)

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	s.Set(5, 50)
	s.Set(2, 20)
	s.Set(9, 90)
	s.Set(2, 21) // update keeps position

	want := []core.Entity{5, 2, 9}
	got := s.Entities()
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index %d: expected entity %d, got %d", i, want[i], got[i])
		}
	}

	if v, _ := s.Get(2); v != 21 {
		t.Errorf("Expected updated value 21, got %d", v)
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore[string]()
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(3, "c")

	s.Remove(2)
	s.Remove(42) // absent, no-op

	if s.Has(2) {
		t.Error("Expected entity 2 to be removed")
	}
	if s.Count() != 2 {
		t.Errorf("Expected count 2, got %d", s.Count())
	}
	got := s.Entities()
	if got[0] != 1 || got[1] != 3 {
		t.Errorf("Expected order [1 3], got %v", got)
	}
}

func TestStoreEntitiesIsCopy(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 1)

	list := s.Entities()
	list[0] = 99

	if !s.Has(1) || s.Entities()[0] != 1 {
		t.Error("Mutating the returned slice must not affect the store")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 1)
	s.Set(2, 2)
	s.Clear()

	if s.Count() != 0 || s.Has(1) {
		t.Errorf("Expected empty store after Clear, got count %d", s.Count())
	}
}
