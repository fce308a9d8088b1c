package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp/v2"
)

func TestDispatchNudgesAllMovingRings(t *testing.T) {
	w := NewWorld(DefaultConfig())
	f := NewForceDispatcher(w, rand.New(rand.NewSource(1)))

	f.Dispatch()

	first := w.Rings[0].Body.Velocity()
	if first.X == 0 && first.Y == 0 {
		t.Fatal("ring velocity unchanged after dispatch")
	}
	// One direction draw per invocation: every ring gets the same vector
	for i, ring := range w.Rings[1:] {
		v := ring.Body.Velocity()
		if !approx(v.X, first.X) || !approx(v.Y, first.Y) {
			t.Errorf("ring %d velocity (%f, %f) differs from ring 0 (%f, %f)", i+1, v.X, v.Y, first.X, first.Y)
		}
	}
}

func TestDispatchSkipsSettledRings(t *testing.T) {
	w := NewWorld(DefaultConfig())
	j := NewCollisionJudge(w, nil)
	f := NewForceDispatcher(w, rand.New(rand.NewSource(1)))

	j.settle(w.Rings[0])
	j.settle(w.Rings[1])
	j.settle(w.Rings[2])

	f.Dispatch()

	for i := 0; i < 3; i++ {
		if v := w.Rings[i].Body.Velocity(); v.X != 0 || v.Y != 0 {
			t.Errorf("settled ring %d velocity = (%f, %f), want zero", i, v.X, v.Y)
		}
	}
	for i := 3; i < 5; i++ {
		if v := w.Rings[i].Body.Velocity(); v.X == 0 && v.Y == 0 {
			t.Errorf("moving ring %d got no impulse", i)
		}
	}
}

func TestDispatchDirectionAndMagnitude(t *testing.T) {
	config := DefaultConfig()
	w := NewWorld(config)
	f := NewForceDispatcher(w, rand.New(rand.NewSource(42)))

	mass := config.RingDensity * math.Pi * config.RingRadius * config.RingRadius
	wantSpeed := config.ForceMagnitude * forceScale / mass

	for i := 0; i < 50; i++ {
		ring := w.Rings[0]
		ring.Body.SetVelocityVector(cp.Vector{})
		f.Dispatch()

		v := ring.Body.Velocity()
		if v.Y >= 0 {
			t.Fatalf("draw %d: nudge points downward (vy = %f)", i, v.Y)
		}

		angle := math.Atan2(v.Y, v.X)
		if angle < -math.Pi/2-forceArc-1e-9 || angle > -math.Pi/2+forceArc+1e-9 {
			t.Fatalf("draw %d: angle %f outside the +/- 22.5 degree arc", i, angle)
		}

		speed := math.Hypot(v.X, v.Y)
		if math.Abs(speed-wantSpeed) > 1e-6 {
			t.Fatalf("draw %d: speed = %f, want %f", i, speed, wantSpeed)
		}
	}
}
