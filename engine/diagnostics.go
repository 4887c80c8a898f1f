package engine

import (
	"errors"
	"log"

	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/status"
)

// diagLogEvery throttles repeated diagnostics in the debug log
const diagLogEvery = 600

// Report records a recoverable problem a pass ran into
// Counts it in the status registry, publishes EventDiagnostic and logs the first occurrence
func (w *World) Report(pass string, entity core.Entity, err error) {
	key := diagnosticKey(err)
	n := w.Resource.Status.Ints.Get(key).Add(1)

	if errors.Is(err, ErrNoControlledEntity) || errors.Is(err, ErrMultipleControlledEntities) {
		w.Resource.Frame.SkippedPasses = append(w.Resource.Frame.SkippedPasses, pass)
	}

	w.Emit(events.EventDiagnostic, &events.DiagnosticPayload{
		Pass:   pass,
		Entity: entity,
		Err:    err,
	})

	if n == 1 || n%diagLogEvery == 0 {
		if entity != core.NoEntity {
			log.Printf("[%s] entity %d: %v (seen %d times)", pass, entity, err, n)
		} else {
			log.Printf("[%s] %v (seen %d times)", pass, err, n)
		}
	}
}

func diagnosticKey(err error) string {
	switch {
	case errors.Is(err, ErrNoControlledEntity):
		return status.KeyMissingControlled
	case errors.Is(err, ErrMultipleControlledEntities):
		return status.KeyMultipleControlled
	case errors.Is(err, ErrVisualHandleMissing):
		return status.KeyVisualMissing
	default:
		return status.KeyOtherDiagnostic
	}
}
