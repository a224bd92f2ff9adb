package dodge

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/termfolio/internal/config"
	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "dodge"

// epoch anchors the tick-derived clock used by Game.
var epoch = time.Unix(0, 0)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the Dodge config honouring the CLI path and preset.
// Falls back to the built-in defaults when the file cannot be used.
func LoadConfig() config.DodgeConfig {
	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		cfg = config.DefaultDodgeConfig()
	}
	config.ApplyDodgePreset(&cfg, difficultyPreset)
	return cfg
}

// Game adapts the simulation to the registry.Game interface so Dodge can be
// played directly, outside the portfolio. Time is derived from the tick
// count, which keeps seeded runs reproducible.
type Game struct {
	sim      *Sim
	world    World
	runtime  core.RuntimeConfig
	cfg      config.DodgeConfig
	gameOver bool
	paused   bool
}

// New creates a new Dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()

	diff := config.NewDifficultyManager(g.cfg.Difficulty)
	g.sim = NewSim(ParamsFromConfig(g.cfg), diff, rand.New(rand.NewSource(runtime.Seed)))
	g.world = g.sim.NewWorld()
	g.gameOver = false
	g.paused = false
}

// now is the simulated wall clock for the next tick.
func (g *Game) now() time.Time {
	return epoch.Add(time.Duration(g.world.Ticks+1) * g.runtime.TickInterval())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	input := Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}

	var out Outcome
	g.world, out = g.sim.Step(g.world, input, g.now())
	if out.Collided {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	surface, err := NewScreenSurface(dst, g.sim.Params().FieldW, g.sim.Params().FieldH)
	if err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small for Dodge")
		return
	}
	Draw(g.world, g.sim.Params(), surface)

	if g.paused {
		DrawMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R: restart  Q: quit", g.world.Score))
	}
}

// DrawMessage draws a message box in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
