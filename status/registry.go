package status

import "sync/atomic"

// Metric keys written by the simulation passes
const (
	KeyMissingControlled  = "diag.missing_controlled"
	KeyMultipleControlled = "diag.multiple_controlled"
	KeyOtherDiagnostic    = "diag.other"
	KeyVisualMissing      = "diag.visual_missing"
	KeyActivations        = "fixture.activations"
	KeyDeactivations      = "fixture.deactivations"
	KeyActiveFixtures     = "fixture.active"
	KeyCollisions         = "avatar.collisions"
	KeyFrames             = "sim.frames"
	KeyAvatarSpeed        = "avatar.speed"
	KeyPaused             = "sim.paused"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every metric into a plain map, for status lines and traces
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	return out
}
