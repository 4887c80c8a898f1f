// Package material is the render-side store of emissive materials that fixture brightness is written into
package material

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/glowgrid/components"
)

// ErrUnknownHandle is returned when a handle was never created or was released
var ErrUnknownHandle = errors.New("unknown material handle")

// Emissive is a linear RGB glow; values above 1 bloom in HDR hosts
type Emissive struct {
	R, G, B float32
}

// Gray returns an emissive with the same value on every channel
func Gray(v float32) Emissive {
	return Emissive{R: v, G: v, B: v}
}

// Store owns emissive materials by handle
// Not safe for concurrent use; the frame loop owns it
type Store struct {
	next      components.MaterialHandle
	materials map[components.MaterialHandle]Emissive
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		next:      1,
		materials: make(map[components.MaterialHandle]Emissive),
	}
}

// Create registers a material and returns its handle
func (s *Store) Create(initial Emissive) components.MaterialHandle {
	h := s.next
	s.next++
	s.materials[h] = initial
	return h
}

// Release drops a material; later writes to the handle fail
func (s *Store) Release(h components.MaterialHandle) {
	delete(s.materials, h)
}

// SetEmissive overwrites a material's glow
func (s *Store) SetEmissive(h components.MaterialHandle, e Emissive) error {
	if _, ok := s.materials[h]; !ok {
		return fmt.Errorf("set emissive on %d: %w", h, ErrUnknownHandle)
	}
	s.materials[h] = e
	return nil
}

// Emissive reads a material's glow
func (s *Store) Emissive(h components.MaterialHandle) (Emissive, bool) {
	e, ok := s.materials[h]
	return e, ok
}

// Count returns the number of live materials
func (s *Store) Count() int {
	return len(s.materials)
}
