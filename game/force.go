package game

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp/v2"
)

const (
	// forceScale converts an engine force unit into a pixel-space impulse.
	forceScale = 16000.0

	// forceArc is the half-angle of the cone the nudge direction is drawn
	// from, centered on straight up.
	forceArc = math.Pi / 8
)

// ForceDispatcher applies the pump nudge to every ring still in play
type ForceDispatcher struct {
	world *World
	rng   *rand.Rand
}

// NewForceDispatcher creates a dispatcher over the world's rings.
func NewForceDispatcher(world *World, rng *rand.Rand) *ForceDispatcher {
	return &ForceDispatcher{world: world, rng: rng}
}

// Dispatch applies one randomized upward impulse to all non-settled rings.
// The direction is drawn once per call, not once per ring; settled rings
// are skipped entirely.
func (f *ForceDispatcher) Dispatch() {
	angle := -math.Pi/2 + (f.rng.Float64()*2-1)*forceArc
	magnitude := f.world.Config.ForceMagnitude * forceScale
	impulse := cp.Vector{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}

	for _, ring := range f.world.Rings {
		if ring.Settled {
			continue
		}
		ring.Body.ApplyImpulseAtWorldPoint(impulse, ring.Body.Position())
	}
}
