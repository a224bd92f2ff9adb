package easteregg

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/games/dodge"
)

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	c       *Controller
	frames  *FrameQueue
	surface *dodge.RecordingSurface
	scores  []int
	now     time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		frames:  NewFrameQueue(),
		surface: &dodge.RecordingSurface{},
		now:     t0,
	}
	h.c = NewController(Options{
		Rand:       constRand(0),
		Frames:     h.frames,
		OnGameOver: func(score int) { h.scores = append(h.scores, score) },
	})
	h.c.SetSurface(h.surface)
	return h
}

func (h *harness) typeKeys(s string) bool {
	activated := false
	for _, r := range s {
		if h.c.HandleKeyDown(string(r)) {
			activated = true
		}
	}
	return activated
}

// fire advances the fake clock by one 60Hz frame and fires it.
func (h *harness) fire() bool {
	h.now = h.now.Add(time.Second / 60)
	return h.frames.Fire(h.now)
}

func TestActivationBySecretCode(t *testing.T) {
	h := newHarness(t)

	if h.typeKeys("GAM") || h.c.Visible() {
		t.Fatal("activated before code complete")
	}
	if !h.typeKeys("E") {
		t.Fatal("code did not activate")
	}
	if h.c.Phase() != PhaseRunning || !h.c.Visible() {
		t.Errorf("phase = %v, want running", h.c.Phase())
	}
	if !h.frames.Pending() {
		t.Error("activation did not schedule a frame")
	}

	snap := h.c.Snapshot()
	if snap.Score != 0 || len(snap.World.Obstacles) != 0 || snap.World.Player.X != 185 {
		t.Errorf("activation world = %+v", snap.World)
	}
}

func TestActivationIgnoresInterruptedCode(t *testing.T) {
	h := newHarness(t)

	if h.typeKeys("GAMXE") {
		t.Fatal("GAMXE activated")
	}
	if !h.typeKeys("game") {
		t.Fatal("lowercase code after noise did not activate")
	}
}

func TestActivationIgnoresNamedKeys(t *testing.T) {
	h := newHarness(t)

	h.typeKeys("GA")
	h.c.HandleKeyDown("shift")
	h.c.HandleKeyDown("left")
	if !h.typeKeys("ME") {
		t.Error("multi-character key names should not enter the buffer")
	}
}

func TestActivateWithoutSurface(t *testing.T) {
	var buf bytes.Buffer
	c := NewController(Options{
		Rand:   constRand(0),
		Logger: log.New(&buf),
	})

	for _, r := range "GAME" {
		if c.HandleKeyDown(string(r)) {
			t.Fatal("activated without a surface")
		}
	}
	if c.Visible() {
		t.Error("game visible without a surface")
	}
	if err := c.Activate(); !errors.Is(err, ErrNoSurface) {
		t.Errorf("Activate() = %v, want ErrNoSurface", err)
	}
	if !strings.Contains(buf.String(), "cannot start game") {
		t.Errorf("missing log line, got %q", buf.String())
	}
}

func TestTickStepsAndDraws(t *testing.T) {
	h := newHarness(t)
	h.typeKeys("GAME")

	if !h.fire() {
		t.Fatal("no frame fired")
	}
	if len(h.surface.Calls) == 0 {
		t.Fatal("tick did not draw")
	}
	if h.surface.Calls[0].Op != dodge.OpClear {
		t.Errorf("first draw op = %v, want clear", h.surface.Calls[0].Op)
	}
	if got := len(h.c.Snapshot().World.Obstacles); got != 1 {
		t.Errorf("obstacles after first tick = %d, want 1", got)
	}
	if !h.frames.Pending() {
		t.Error("running game did not schedule the next frame")
	}
}

func TestHeldKeysDriveThePlayer(t *testing.T) {
	h := newHarness(t)
	h.typeKeys("GAME")

	h.fire()
	x := h.c.Snapshot().World.Player.X

	h.c.HandleKeyDown(KeyLeft)
	h.fire()
	h.fire()
	if got := h.c.Snapshot().World.Player.X; got != x-10 {
		t.Errorf("x = %v after two held ticks, want %v", got, x-10)
	}

	h.c.HandleKeyUp(KeyLeft)
	h.fire()
	if got := h.c.Snapshot().World.Player.X; got != x-10 {
		t.Errorf("x moved after release: %v", got)
	}

	h.c.HandleKeyDown("q")
	h.fire()
	if got := h.c.Snapshot().World.Player.X; got != x-10 {
		t.Errorf("unknown key moved the player: %v", got)
	}
}

// crash puts an obstacle right above the player and stops spawning.
func crash(h *harness) {
	w := h.c.world
	w.LastSpawn = h.now.Add(time.Hour)
	w.Obstacles = []dodge.Obstacle{{
		Box:   core.NewBox(w.Player.X, w.Player.Y-15, 20, 20),
		Speed: 5,
	}}
	h.c.world = w
}

func TestGameOverStopsScheduling(t *testing.T) {
	h := newHarness(t)
	h.typeKeys("GAME")
	h.fire()
	h.c.world.Score = 4
	crash(h)

	h.fire()
	if h.c.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", h.c.Phase())
	}
	if !h.c.Visible() {
		t.Error("game over should stay visible")
	}
	if h.frames.Pending() {
		t.Error("frame scheduled after game over")
	}
	if len(h.scores) != 1 || h.scores[0] != 4 {
		t.Errorf("OnGameOver scores = %v, want [4]", h.scores)
	}

	before := h.c.Snapshot()
	if h.fire() {
		t.Error("frame fired after game over")
	}
	if h.c.Snapshot().World.Ticks != before.World.Ticks {
		t.Error("state changed after game over")
	}
}

func TestRestart(t *testing.T) {
	h := newHarness(t)
	h.typeKeys("GAME")
	h.c.HandleKeyDown(KeyRight)
	h.fire()
	h.fire()
	h.c.world.Score = 9
	crash(h)
	h.fire()

	x := h.c.Snapshot().World.Player.X
	h.c.Restart()

	snap := h.c.Snapshot()
	if snap.Phase != PhaseRunning {
		t.Errorf("phase = %v, want running", snap.Phase)
	}
	if snap.Score != 0 || len(snap.World.Obstacles) != 0 {
		t.Errorf("restart kept score %d and %d obstacles", snap.Score, len(snap.World.Obstacles))
	}
	if snap.World.Player.X != x {
		t.Errorf("restart moved player: %v -> %v", x, snap.World.Player.X)
	}
	if !h.frames.Pending() {
		t.Error("restart did not resume the tick loop")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	h := newHarness(t)
	h.c.Restart()
	if h.c.Visible() {
		t.Error("restart activated an inactive game")
	}

	h.typeKeys("GAME")
	h.fire()
	h.c.world.Score = 2
	h.c.Restart()
	if h.c.Snapshot().Score != 2 {
		t.Error("restart reset a running game")
	}
}

func TestCloseCancelsPendingFrame(t *testing.T) {
	h := newHarness(t)
	h.typeKeys("GAME")
	h.fire()

	h.c.Close()
	if h.c.Phase() != PhaseInactive || h.c.Visible() {
		t.Errorf("phase = %v after close", h.c.Phase())
	}

	calls := len(h.surface.Calls)
	for i := 0; i < 10; i++ {
		if h.fire() {
			t.Fatal("frame fired after close")
		}
	}
	if len(h.surface.Calls) != calls {
		t.Error("drawing continued after close")
	}
	if snap := h.c.Snapshot(); snap.World.Ticks != 0 || snap.Score != 0 {
		t.Errorf("close kept state: %+v", snap)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.c.Close()
	h.typeKeys("GAME")
	h.c.Close()
	h.c.Close()

	if h.c.Visible() || h.frames.Pending() {
		t.Error("second close left the game running")
	}
}

func TestCloseFromGameOverAndReactivate(t *testing.T) {
	h := newHarness(t)
	h.typeKeys("GAME")
	h.c.HandleKeyDown(KeyLeft)
	h.fire()
	crash(h)
	h.fire()
	h.c.Close()

	if h.c.HandleKeyDown(KeyLeft) {
		t.Fatal("arrow key activated the game")
	}
	if !h.typeKeys("GAME") {
		t.Fatal("reactivation failed")
	}

	snap := h.c.Snapshot()
	if snap.World.Player.X != 185 || snap.Score != 0 {
		t.Errorf("reactivation did not start fresh: %+v", snap.World.Player)
	}
	h.fire()
	if h.c.Snapshot().World.Player.X != 185 {
		t.Error("held keys survived close")
	}
}

func TestKeyUpIgnoredWhileInactive(t *testing.T) {
	h := newHarness(t)
	h.c.HandleKeyUp(KeyLeft)
	if h.c.held.Held(KeyLeft) || h.c.Visible() {
		t.Error("key up changed an inactive controller")
	}
}
