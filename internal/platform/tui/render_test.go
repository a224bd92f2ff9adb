package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/termfolio/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(1, 1, "tui")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenColorRuns(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorBrightGreen)
	s.DrawTextColored(2, 0, "cd", core.ColorBrightRed)
	s.SetColored(7, 1, 'x', core.ColorNavy)

	got := RenderScreen(s)
	if plain := ansi.Strip(got); plain != s.String() {
		t.Errorf("stripped output = %q, want %q", plain, s.String())
	}
	if lines := strings.Count(got, "\n"); lines != 1 {
		t.Errorf("output has %d newlines, want 1", lines)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain text", got)
	}
}
