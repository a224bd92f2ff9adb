package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("dodge not registered")
	}

	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.Title() != "Dodge" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%50 < 25 {
			inputs[i].Set(core.ActionLeft)
		} else {
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() (*Game, core.GameState) {
		g := New()
		g.Reset(testRuntime(777))
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		return g, st
	}

	g1, s1 := run()
	g2, s2 := run()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if g1.world.Ticks != g2.world.Ticks {
		t.Errorf("ticks differ: %d vs %d", g1.world.Ticks, g2.world.Ticks)
	}
}

func TestGameMovementAndPause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startX := g.world.Player.X

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)
	if g.world.Player.X != startX-g.sim.Params().PlayerStep {
		t.Errorf("x = %v after left, want %v", g.world.Player.X, startX-5)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if st := g.Step(pause).State; !st.Paused {
		t.Fatal("expected paused")
	}

	ticks := g.world.Ticks
	g.Step(left)
	if g.world.Ticks != ticks {
		t.Error("paused game advanced")
	}

	if st := g.Step(pause).State; st.Paused {
		t.Error("expected resume")
	}
}

func TestGameOverStopsStepping(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	g.world.Obstacles = []Obstacle{{Box: core.NewBox(g.world.Player.X, g.world.Player.Y-10, 20, 20), Speed: 5}}
	st := g.Step(core.NewInputFrame()).State
	if !st.GameOver {
		t.Fatal("expected game over")
	}

	ticks := g.world.Ticks
	g.Step(core.NewInputFrame())
	if g.world.Ticks != ticks {
		t.Error("game advanced after game over")
	}

	g.Reset(testRuntime(5))
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("Reset() left state %+v", g.State())
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Score: 0") {
		t.Error("render missing score")
	}

	g.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("render missing game over box")
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Errorf("small render = %q", small.String())
	}
}
