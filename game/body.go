package game

import (
	"image/color"

	"github.com/jakecoffman/cp/v2"
)

// Body labels
const (
	LabelWall = "wall"
	LabelRing = "ring"
	LabelGoal = "goal"
)

// Collision types route ring/goal contacts to the collision judge
const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeRing
	collisionTypeGoal
)

// Style is the visual appearance of a body
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float32
}

// Color schemes
var (
	ringStyle = Style{
		Fill:        color.RGBA{250, 250, 250, 210}, // Translucent white
		Stroke:      color.RGBA{220, 60, 80, 255},   // Crimson
		StrokeWidth: 4,
	}
	settledRingStyle = Style{
		Fill:        color.RGBA{255, 215, 80, 255}, // Gold
		Stroke:      color.RGBA{205, 130, 10, 255}, // Amber
		StrokeWidth: 6,
	}
	goalStyle = Style{
		Fill:        color.RGBA{25, 95, 125, 255}, // Deep teal
		Stroke:      color.RGBA{15, 55, 75, 255},
		StrokeWidth: 2,
	}
)

// Ring is a movable circular piece. It starts dynamic and is frozen in
// place by the collision judge once it lands inside a goal.
type Ring struct {
	Body    *cp.Body
	Shape   *cp.Shape
	Radius  float64
	Style   Style
	Settled bool
}

// Label returns the ring's body label.
func (r *Ring) Label() string { return LabelRing }

// Goal is a fixed target peg. Its capture zone is the horizontal span of
// the peg below its top edge. Immutable after creation.
type Goal struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Left   float64 // left bound of the capture span
	Right  float64 // right bound of the capture span
	Top    float64 // a contained ring's center sits below this (y grows downward)
	Width  float64
	Height float64
	Style  Style
}

// Label returns the goal's body label.
func (g *Goal) Label() string { return LabelGoal }

// Contains reports whether a point lies inside the goal's capture zone.
// Bounds are strict on the horizontal span.
func (g *Goal) Contains(x, y float64) bool {
	return x > g.Left && x < g.Right && y > g.Top
}
