package systems

import (
	"time"

	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/physics"
)

// fixtureSnapshots copies fixture state into buf, reusing its capacity
func fixtureSnapshots(w *engine.World, buf []physics.FixtureSnapshot) []physics.FixtureSnapshot {
	buf = buf[:0]
	for _, e := range w.Fixtures.Entities() {
		f, ok := w.Fixtures.Get(e)
		if !ok {
			continue
		}
		buf = append(buf, physics.FixtureSnapshot{
			Entity:          e,
			Position:        f.Position,
			DetectionRadius: f.DetectionRadius,
			IsActivated:     f.IsActivated,
		})
	}
	return buf
}

func seconds(dt time.Duration) float32 {
	return float32(dt.Seconds())
}
