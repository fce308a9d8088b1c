package game

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// gravityScale converts a gravity unit into pixels per second squared.
const gravityScale = 1000.0

// World owns the physics space and every body in the play area
type World struct {
	Space  *cp.Space
	Rings  []*Ring
	Goals  []*Goal
	Config Config
}

// NewWorld builds the play area from the viewport size: four boundary
// walls just outside the edges, evenly spaced goal pegs anchored near the
// bottom, and a row of rings around the horizontal midpoint at mid-height.
// A zero-size viewport collapses the layout toward the origin but builds
// a valid world.
func NewWorld(config Config) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: config.Gravity * gravityScale})

	w := &World{
		Space:  space,
		Rings:  make([]*Ring, 0, config.NumRings),
		Goals:  make([]*Goal, 0, config.NumGoals),
		Config: config,
	}

	width := float64(config.ScreenWidth)
	height := float64(config.ScreenHeight)
	t := config.WallThickness

	// Walls sit just outside each edge so their interior faces touch the
	// viewport boundary. The horizontal walls overhang the corners.
	w.addWall(width/2, -t/2, width+2*t, t)        // Top
	w.addWall(width/2, height+t/2, width+2*t, t)  // Bottom
	w.addWall(-t/2, height/2, t, height)          // Left
	w.addWall(width+t/2, height/2, t, height)     // Right

	for i := 0; i < config.NumGoals; i++ {
		x := width / float64(config.NumGoals+1) * float64(i+1)
		w.addGoal(x, height-config.GoalBottomOffset)
	}

	mid := float64(config.NumRings-1) / 2
	for i := 0; i < config.NumRings; i++ {
		x := width/2 + (float64(i)-mid)*config.RingSpacing
		w.addRing(x, height/2)
	}

	return w
}

// addWall registers a static boundary box. Walls take no further part in
// game logic after creation.
func (w *World) addWall(x, y, width, height float64) {
	body := w.Space.AddBody(cp.NewStaticBody())
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := w.Space.AddShape(cp.NewBox(body, width, height, 0))
	shape.SetElasticity(0.4)
	shape.SetFriction(0.5)
	shape.SetCollisionType(collisionTypeWall)
}

// addGoal registers a static goal peg centered at (x, y).
func (w *World) addGoal(x, y float64) {
	body := w.Space.AddBody(cp.NewStaticBody())
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := w.Space.AddShape(cp.NewBox(body, w.Config.GoalWidth, w.Config.GoalHeight, 0))
	shape.SetElasticity(0.3)
	shape.SetFriction(0.6)
	shape.SetCollisionType(collisionTypeGoal)

	goal := &Goal{
		Body:   body,
		Shape:  shape,
		Left:   x - w.Config.GoalWidth/2,
		Right:  x + w.Config.GoalWidth/2,
		Top:    y - w.Config.GoalHeight/2,
		Width:  w.Config.GoalWidth,
		Height: w.Config.GoalHeight,
		Style:  goalStyle,
	}
	body.UserData = goal
	w.Goals = append(w.Goals, goal)
}

// addRing registers a dynamic ring centered at (x, y).
func (w *World) addRing(x, y float64) {
	radius := w.Config.RingRadius
	mass := w.Config.RingDensity * math.Pi * radius * radius

	body := w.Space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := w.Space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetElasticity(w.Config.RingElasticity)
	shape.SetFriction(w.Config.RingFriction)
	shape.SetCollisionType(collisionTypeRing)

	ring := &Ring{
		Body:   body,
		Shape:  shape,
		Radius: radius,
		Style:  ringStyle,
	}
	body.UserData = ring
	w.Rings = append(w.Rings, ring)
}
