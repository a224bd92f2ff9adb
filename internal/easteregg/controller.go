package easteregg

import (
	"errors"
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termfolio/internal/config"
	"github.com/vovakirdan/termfolio/internal/games/dodge"
)

// ErrNoSurface is returned by Activate when no drawing surface is attached.
var ErrNoSurface = errors.New("easteregg: no drawing surface")

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Code       string                    // Secret code, DefaultCode if empty
	Params     *dodge.Params             // Simulation constants, dodge.DefaultParams if nil
	Difficulty *config.DifficultyManager // Fixed difficulty if nil
	Rand       dodge.Rand                // Time-seeded if nil
	Frames     FrameSource               // A fresh FrameQueue if nil
	Logger     *log.Logger               // Discarding logger if nil
	OnGameOver func(score int)           // Called once per finished round
}

// Snapshot is a read-only view of the controller for overlays.
type Snapshot struct {
	Phase Phase
	Score int
	World dodge.World
}

// Controller owns the hidden game's lifecycle. All methods must be called
// from the host's single event loop; frames are delivered through the same
// loop by the FrameSource.
type Controller struct {
	detector   *Detector
	sim        *dodge.Sim
	frames     FrameSource
	logger     *log.Logger
	onGameOver func(int)

	surface dodge.Surface
	held    HeldKeys
	phase   Phase
	world   dodge.World
	pending FrameID
}

// NewController creates an inactive controller.
func NewController(opts Options) *Controller {
	params := dodge.DefaultParams()
	if opts.Params != nil {
		params = *opts.Params
	}

	frames := opts.Frames
	if frames == nil {
		frames = NewFrameQueue()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		detector:   NewDetector(opts.Code),
		sim:        dodge.NewSim(params, opts.Difficulty, opts.Rand),
		frames:     frames,
		logger:     logger,
		onGameOver: opts.OnGameOver,
	}
}

// Params returns the simulation constants.
func (c *Controller) Params() dodge.Params {
	return c.sim.Params()
}

// Frames returns the frame source driving the tick loop.
func (c *Controller) Frames() FrameSource {
	return c.frames
}

// SetSurface attaches the drawing target. A nil surface detaches it; an
// already running game keeps stepping but stops drawing.
func (c *Controller) SetSurface(s dodge.Surface) {
	c.surface = s
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Visible reports whether the game overlay should be shown.
func (c *Controller) Visible() bool {
	return c.phase.Active()
}

// Snapshot returns the current state for display.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase: c.phase,
		Score: c.world.Score,
		World: c.world,
	}
}

// HandleKeyDown routes a key press. While inactive, single printable
// characters feed the detector; once active, keys go to the held set.
// It reports whether the key activated the game.
func (c *Controller) HandleKeyDown(key string) bool {
	if c.phase.Active() {
		c.held.Press(key)
		return false
	}

	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return false
	}
	if !c.detector.Feed(r) {
		return false
	}
	return c.Activate() == nil
}

// HandleKeyUp routes a key release. Ignored while inactive.
func (c *Controller) HandleKeyUp(key string) {
	if c.phase.Active() {
		c.held.Release(key)
	}
}

// Activate shows the game and starts the tick loop with a fresh world.
// Activating an active game does nothing.
func (c *Controller) Activate() error {
	if c.phase.Active() {
		return nil
	}
	if c.surface == nil {
		c.logger.Error("cannot start game", "error", ErrNoSurface)
		return ErrNoSurface
	}

	c.detector.Reset()
	c.held.Clear()
	c.world = c.sim.NewWorld()
	c.phase = PhaseRunning
	c.schedule()

	c.logger.Debug("game activated")
	return nil
}

// Restart starts a new round after game over. The player keeps its
// horizontal position. Does nothing in other phases.
func (c *Controller) Restart() {
	if c.phase != PhaseGameOver {
		return
	}
	c.world = c.world.Restarted()
	c.phase = PhaseRunning
	c.schedule()
}

// Close hides the game, cancels any pending frame and discards all state.
// Safe to call in any phase, any number of times.
func (c *Controller) Close() {
	if c.pending != 0 {
		c.frames.CancelFrame(c.pending)
		c.pending = 0
	}
	if c.phase.Active() {
		c.logger.Debug("game closed", "score", c.world.Score)
	}

	c.phase = PhaseInactive
	c.world = dodge.World{}
	c.held.Clear()
	c.detector.Reset()
}

func (c *Controller) schedule() {
	c.pending = c.frames.RequestFrame(c.tick)
}

// tick runs one simulation step and draws the result. The next frame is
// requested only while the round continues.
func (c *Controller) tick(now time.Time) {
	c.pending = 0
	if c.phase != PhaseRunning {
		return
	}

	var out dodge.Outcome
	c.world, out = c.sim.Step(c.world, c.held.Input(), now)
	if c.surface != nil {
		dodge.Draw(c.world, c.sim.Params(), c.surface)
	}

	if out.Collided {
		c.phase = PhaseGameOver
		c.logger.Info("game over", "score", c.world.Score, "ticks", c.world.Ticks)
		if c.onGameOver != nil {
			c.onGameOver(c.world.Score)
		}
		return
	}

	c.schedule()
}
