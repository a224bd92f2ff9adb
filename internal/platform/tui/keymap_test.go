package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/easteregg"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"q", runeKey('q'), core.ActionQuit},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"c", runeKey('c'), core.ActionClose},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)

	if !frame.Has(core.ActionLeft) {
		t.Error("left should be set")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not add ActionNone")
	}
}

func TestHeldKey(t *testing.T) {
	km := NewKeyMapper()

	if k, ok := km.HeldKey(tea.KeyMsg{Type: tea.KeyLeft}); !ok || k != easteregg.KeyLeft {
		t.Errorf("left arrow = %q, %v", k, ok)
	}
	if k, ok := km.HeldKey(tea.KeyMsg{Type: tea.KeyRight}); !ok || k != easteregg.KeyRight {
		t.Errorf("right arrow = %q, %v", k, ok)
	}
	if _, ok := km.HeldKey(runeKey('a')); ok {
		t.Error("letters should not steer the hidden game")
	}
}

func TestRune(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   string
		wantOK bool
	}{
		{"letter", runeKey('g'), "g", true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, " ", true},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, "", false},
		{"alt", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}, Alt: true}, "", false},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("game")}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Rune(tt.msg)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Rune() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
