package game

import "testing"

func newTestGame() *Game {
	config := DefaultConfig()
	config.Seed = 1
	return NewGame(config)
}

func TestWinRequiresEveryRing(t *testing.T) {
	g := newTestGame()

	// Four of five settled: still playing, banner empty
	for _, ring := range g.world.Rings[:4] {
		g.judge.settle(ring)
	}
	if g.Won() {
		t.Fatal("game won with an unsettled ring")
	}
	if g.Message() != "" {
		t.Fatalf("message = %q before winning, want empty", g.Message())
	}

	g.judge.settle(g.world.Rings[4])
	if !g.Won() {
		t.Fatal("game not won with all rings settled")
	}
	if g.Message() != winMessage {
		t.Fatalf("message = %q, want %q", g.Message(), winMessage)
	}
}

func TestWinIsTerminal(t *testing.T) {
	g := newTestGame()
	for _, ring := range g.world.Rings {
		g.judge.settle(ring)
	}
	if !g.Won() {
		t.Fatal("game not won")
	}

	// The evaluator is safe to rerun and the state stays won
	g.evaluateWin()
	if !g.Won() || g.Message() != winMessage {
		t.Error("won state did not persist")
	}
}

func TestPumpDisabledOnceWon(t *testing.T) {
	g := newTestGame()
	g.won = true

	g.pump()

	for i, ring := range g.world.Rings {
		if v := ring.Body.Velocity(); v.X != 0 || v.Y != 0 {
			t.Errorf("ring %d velocity = (%f, %f) after pump on a won game, want zero", i, v.X, v.Y)
		}
	}
}

func TestPumpPerturbsOnlyMovingRings(t *testing.T) {
	g := newTestGame()
	g.judge.settle(g.world.Rings[0])
	g.judge.settle(g.world.Rings[1])
	g.judge.settle(g.world.Rings[2])

	g.pump()

	for i := 0; i < 3; i++ {
		if v := g.world.Rings[i].Body.Velocity(); v.X != 0 || v.Y != 0 {
			t.Errorf("settled ring %d perturbed by pump", i)
		}
	}
	for i := 3; i < 5; i++ {
		if v := g.world.Rings[i].Body.Velocity(); v.X == 0 && v.Y == 0 {
			t.Errorf("moving ring %d not perturbed by pump", i)
		}
	}
}

func TestLayoutRecordsViewportOnly(t *testing.T) {
	g := newTestGame()

	before := g.world.Rings[0].Body.Position()
	w, h := g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Errorf("Layout = (%d, %d), want (800, 600)", w, h)
	}
	if after := g.world.Rings[0].Body.Position(); after != before {
		t.Error("resize moved a body")
	}

	// A zero-size report keeps the last recorded viewport
	w, h = g.Layout(0, 0)
	if w != 800 || h != 600 {
		t.Errorf("Layout after zero-size report = (%d, %d), want (800, 600)", w, h)
	}
}
