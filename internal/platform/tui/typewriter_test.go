package tui

import (
	"testing"
	"time"
)

func TestTypewriterTypesPausesAndWraps(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tw := NewTypewriter([]string{"ab", "xyz"}, 50*time.Millisecond, 2*time.Second)

	steps := []struct {
		at       time.Duration
		wantText string
		wantLine int
	}{
		{0, "", 0},
		{49 * time.Millisecond, "", 0},
		{50 * time.Millisecond, "a", 0},
		{100 * time.Millisecond, "ab", 0},
		{2099 * time.Millisecond, "ab", 0},
		{2100 * time.Millisecond, "", 1},
		{2150 * time.Millisecond, "x", 1},
		{2250 * time.Millisecond, "xyz", 1}, // Catches up on a late tick
		{4249 * time.Millisecond, "xyz", 1},
		{4250 * time.Millisecond, "", 0},
	}

	for _, s := range steps {
		tw.Advance(t0.Add(s.at))
		if got := tw.Text(); got != s.wantText {
			t.Errorf("at %v: Text() = %q, want %q", s.at, got, s.wantText)
		}
		if got := tw.Line(); got != s.wantLine {
			t.Errorf("at %v: Line() = %d, want %d", s.at, got, s.wantLine)
		}
	}
}

func TestTypewriterComplete(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tw := NewTypewriter([]string{"ok"}, 50*time.Millisecond, 2*time.Second)

	tw.Advance(t0)
	if tw.Complete() {
		t.Error("empty line should not be complete")
	}
	tw.Advance(t0.Add(100 * time.Millisecond))
	if !tw.Complete() {
		t.Errorf("line should be complete, text %q", tw.Text())
	}
}

func TestTypewriterMultibyte(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tw := NewTypewriter([]string{"héllo"}, 50*time.Millisecond, 2*time.Second)

	tw.Advance(t0)
	tw.Advance(t0.Add(100 * time.Millisecond))
	if got := tw.Text(); got != "hé" {
		t.Errorf("Text() = %q, want %q", got, "hé")
	}
}

func TestTypewriterEmpty(t *testing.T) {
	tw := NewTypewriter(nil, 50*time.Millisecond, 2*time.Second)
	tw.Advance(time.Now())
	if tw.Text() != "" || tw.Complete() {
		t.Error("empty typewriter should show nothing")
	}
}
