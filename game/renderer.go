package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// UI colors
var (
	colorWater      = color.RGBA{150, 205, 235, 255} // Pale water blue
	colorFloor      = color.RGBA{110, 160, 190, 255}
	colorButton     = color.RGBA{235, 242, 246, 255}
	colorButtonDead = color.RGBA{178, 184, 188, 255} // Greyed out once won
	colorButtonEdge = color.RGBA{60, 72, 84, 255}
	colorBanner     = color.RGBA{200, 40, 60, 255}
)

// Renderer draws the tank, the bodies, the pump button and the banner
type Renderer struct {
	button image.Rectangle
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		button: image.Rect(10, 10, 114, 42),
	}
}

// ButtonRect is the screen-space hit box of the pump button.
func (r *Renderer) ButtonRect() image.Rectangle { return r.button }

// Render draws one frame: background, goals, rings, button, banner.
// UI chrome follows the live screen size; body positions keep their
// build-time coordinates. Walls sit outside the viewport and are never
// drawn.
func (r *Renderer) Render(screen *ebiten.Image, world *World, message string, won bool) {
	screen.Fill(colorWater)

	bounds := screen.Bounds()

	// Thin floor strip so the goal pegs read as anchored
	floorY := float32(bounds.Dy()) - 6
	vector.DrawFilledRect(screen, 0, floorY, float32(bounds.Dx()), 6, colorFloor, true)

	for _, goal := range world.Goals {
		r.renderGoal(screen, goal)
	}
	for _, ring := range world.Rings {
		r.renderRing(screen, ring)
	}

	r.renderButton(screen, won)
	if message != "" {
		x, y := bannerPos(bounds.Dx(), bounds.Dy(), message)
		text.Draw(screen, message, basicfont.Face7x13, x, y, colorBanner)
	}
}

// renderGoal draws a goal peg at its fixed position.
func (r *Renderer) renderGoal(screen *ebiten.Image, goal *Goal) {
	pos := goal.Body.Position()
	x := float32(pos.X - goal.Width/2)
	y := float32(pos.Y - goal.Height/2)
	w := float32(goal.Width)
	h := float32(goal.Height)

	vector.DrawFilledRect(screen, x, y, w, h, goal.Style.Fill, true)
	vector.StrokeRect(screen, x, y, w, h, goal.Style.StrokeWidth, goal.Style.Stroke, true)
}

// renderRing draws a ring at its current body position with its current
// style, so settled rings show the success scheme.
func (r *Renderer) renderRing(screen *ebiten.Image, ring *Ring) {
	pos := ring.Body.Position()
	cx := float32(pos.X)
	cy := float32(pos.Y)
	radius := float32(ring.Radius)

	vector.DrawFilledCircle(screen, cx, cy, radius, ring.Style.Fill, true)
	vector.StrokeCircle(screen, cx, cy, radius, ring.Style.StrokeWidth, ring.Style.Stroke, true)
}

// renderButton draws the pump control, greyed out once the session is won.
func (r *Renderer) renderButton(screen *ebiten.Image, won bool) {
	fill := colorButton
	if won {
		fill = colorButtonDead
	}

	b := r.button
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), fill, true)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 2, colorButtonEdge, true)
	ebitenutil.DebugPrintAt(screen, "PUMP [Space]", b.Min.X+10, b.Min.Y+8)
}

// bannerPos centers the banner text in the current viewport.
func bannerPos(viewWidth, viewHeight int, message string) (int, int) {
	x := viewWidth/2 - len(message)*basicfont.Face7x13.Advance/2
	y := viewHeight / 2
	return x, y
}
