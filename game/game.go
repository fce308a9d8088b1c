package game

import (
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// winMessage is shown once every ring has settled.
const winMessage = "YOU WIN!"

// stepDT is the fixed simulation step; ebiten ticks at 60 TPS.
const stepDT = 1.0 / 60.0

// Game is one puzzle session: the world, its subsystems, and the
// interactive state around them. A fresh session requires a new Game.
type Game struct {
	world      *World
	dispatcher *ForceDispatcher
	judge      *CollisionJudge
	renderer   *Renderer
	config     Config

	message string
	won     bool

	// Viewport size as last reported by the host. Resizing only updates
	// these; existing bodies keep their coordinates.
	viewWidth  int
	viewHeight int
}

// NewGame creates a new game session
func NewGame(config Config) *Game {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := NewWorld(config)
	g := &Game{
		world:      world,
		renderer:   NewRenderer(),
		config:     config,
		viewWidth:  config.ScreenWidth,
		viewHeight: config.ScreenHeight,
	}
	g.dispatcher = NewForceDispatcher(world, rand.New(rand.NewSource(seed)))
	g.judge = NewCollisionJudge(world, g.evaluateWin)
	return g
}

// World returns the session's world.
func (g *Game) World() *World { return g.world }

// Won reports whether the session has reached its terminal state.
func (g *Game) Won() bool { return g.won }

// Message returns the text shown in the banner region; empty while playing.
func (g *Game) Message() string { return g.message }

// evaluateWin flips the session to won once every ring has settled.
// Runs after every individual freeze; a partial board does nothing.
func (g *Game) evaluateWin() {
	for _, ring := range g.world.Rings {
		if !ring.Settled {
			return
		}
	}
	g.won = true
	g.message = winMessage
}

// pump fires the force dispatcher. Non-functional once the session is won.
func (g *Game) pump() {
	if g.won {
		return
	}
	g.dispatcher.Dispatch()
}

// Update advances the simulation one fixed step and polls the pump
// controls (Space key or a click on the on-screen button).
func (g *Game) Update() error {
	if !g.won {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.pump()
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if image.Pt(x, y).In(g.renderer.ButtonRect()) {
				g.pump()
			}
		}
	}

	g.world.Space.Step(stepDT)
	return nil
}

// Draw renders the session
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world, g.message, g.won)
}

// Layout follows the outside size and records it. Bodies are not
// reflowed on resize; they keep their original coordinates.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.viewWidth = outsideWidth
		g.viewHeight = outsideHeight
	}
	return g.viewWidth, g.viewHeight
}
