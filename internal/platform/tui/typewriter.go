package tui

import "time"

// Hero rotator timing.
const (
	typeDelay = 50 * time.Millisecond
	typePause = 2 * time.Second
)

// Typewriter types out a list of lines one character at a time, holds the
// finished line, then clears it and starts the next one. It is driven by
// the caller's clock so it can share the shell's tick loop.
type Typewriter struct {
	lines     []string
	charDelay time.Duration
	pause     time.Duration

	line  int
	shown int
	next  time.Time // Zero until the first Advance
}

// NewTypewriter creates a typewriter over lines.
func NewTypewriter(lines []string, charDelay, pause time.Duration) *Typewriter {
	return &Typewriter{
		lines:     lines,
		charDelay: charDelay,
		pause:     pause,
	}
}

// Advance applies every step due at or before now.
func (t *Typewriter) Advance(now time.Time) {
	if len(t.lines) == 0 {
		return
	}
	if t.next.IsZero() {
		t.next = now.Add(t.charDelay)
		return
	}

	for !now.Before(t.next) {
		if t.shown < len([]rune(t.lines[t.line])) {
			t.shown++
			if t.shown == len([]rune(t.lines[t.line])) {
				t.next = t.next.Add(t.pause)
			} else {
				t.next = t.next.Add(t.charDelay)
			}
			continue
		}
		t.shown = 0
		t.line = (t.line + 1) % len(t.lines)
		t.next = t.next.Add(t.charDelay)
	}
}

// Text returns the currently visible part of the current line.
func (t *Typewriter) Text() string {
	if len(t.lines) == 0 {
		return ""
	}
	return string([]rune(t.lines[t.line])[:t.shown])
}

// Line returns the index of the current line.
func (t *Typewriter) Line() int {
	return t.line
}

// Complete reports whether the current line is fully typed.
func (t *Typewriter) Complete() bool {
	return len(t.lines) > 0 && t.shown == len([]rune(t.lines[t.line]))
}
