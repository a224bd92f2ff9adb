package easteregg

import "github.com/vovakirdan/termfolio/internal/games/dodge"

// Key names understood by HeldKeys. They match Bubble Tea's key strings.
const (
	KeyLeft  = "left"
	KeyRight = "right"
)

// HeldKeys is the set of directional keys currently held down.
// Key handlers write it; the tick loop reads it once per tick.
type HeldKeys struct {
	left  bool
	right bool
}

// Press marks key as held. Unknown keys are ignored.
func (h *HeldKeys) Press(key string) {
	h.set(key, true)
}

// Release marks key as released. Unknown keys are ignored.
func (h *HeldKeys) Release(key string) {
	h.set(key, false)
}

// Held reports whether key is held.
func (h *HeldKeys) Held(key string) bool {
	switch key {
	case KeyLeft:
		return h.left
	case KeyRight:
		return h.right
	}
	return false
}

// Clear releases every key.
func (h *HeldKeys) Clear() {
	*h = HeldKeys{}
}

// Input returns the per-tick input snapshot.
func (h *HeldKeys) Input() dodge.Input {
	return dodge.Input{Left: h.left, Right: h.right}
}

func (h *HeldKeys) set(key string, down bool) {
	switch key {
	case KeyLeft:
		h.left = down
	case KeyRight:
		h.right = down
	}
}
