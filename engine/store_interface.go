package engine

import (
	"github.com/lixenwraith/glowgrid/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to destroy entities without knowing each concrete type
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
