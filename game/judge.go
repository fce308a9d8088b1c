package game

import (
	"github.com/jakecoffman/cp/v2"
)

// CollisionJudge watches the space's ring/goal contact stream and freezes
// rings that land inside a goal's capture zone
type CollisionJudge struct {
	world     *World
	onSettled func()
}

// NewCollisionJudge subscribes the judge to newly touching ring/goal
// pairs. onSettled runs after every individual freeze.
func NewCollisionJudge(world *World, onSettled func()) *CollisionJudge {
	j := &CollisionJudge{world: world, onSettled: onSettled}

	handler := world.Space.NewCollisionHandler(collisionTypeRing, collisionTypeGoal)
	handler.BeginFunc = j.handleContact
	return j
}

// handleContact runs once per newly touching ring/goal pair per step.
// Always returns true so a ring that merely grazes a peg still bounces
// off it.
func (j *CollisionJudge) handleContact(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	ring, goal := classify(a, b)
	if ring == nil || goal == nil || ring.Settled {
		return true
	}

	pos := ring.Body.Position()
	if !goal.Contains(pos.X, pos.Y) {
		return true
	}

	// Body type changes are not allowed while the space is stepping;
	// the callback key dedupes a ring touching two goals in one step.
	space.AddPostStepCallback(func(*cp.Space, interface{}, interface{}) {
		j.settle(ring)
	}, ring, nil)
	return true
}

// classify picks the ring and the goal out of a collision pair,
// whichever order the engine reports them in.
func classify(a, b *cp.Body) (*Ring, *Goal) {
	ring, _ := a.UserData.(*Ring)
	goal, _ := b.UserData.(*Goal)
	if ring == nil || goal == nil {
		ring, _ = b.UserData.(*Ring)
		goal, _ = a.UserData.(*Goal)
	}
	return ring, goal
}

// settle freezes a ring in place and recolors it. The transition is
// one-way: a settled ring never rejoins the simulation.
func (j *CollisionJudge) settle(ring *Ring) {
	if ring.Settled {
		return
	}
	ring.Settled = true
	ring.Body.SetVelocityVector(cp.Vector{})
	ring.Body.SetAngularVelocity(0)
	ring.Body.SetType(cp.BODY_STATIC)
	ring.Style = settledRingStyle

	if j.onSettled != nil {
		j.onSettled()
	}
}
