package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/easteregg"
)

// KeyMapper translates terminal key events to semantic actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"ctrl+c": core.ActionQuit,
			"q":      core.ActionQuit,

			"left": core.ActionLeft,
			"a":    core.ActionLeft,
			"h":    core.ActionLeft,

			"right": core.ActionRight,
			"d":     core.ActionRight,
			"l":     core.ActionRight,

			"up":   core.ActionUp,
			"k":    core.ActionUp,
			"down": core.ActionDown,
			"j":    core.ActionDown,

			"enter": core.ActionConfirm,
			"esc":   core.ActionBack,
			"b":     core.ActionBack,
			"p":     core.ActionPause,
			"r":     core.ActionRestart,
			"c":     core.ActionClose,
		},
	}
}

// MapKey returns the action bound to a key, or ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	if a, ok := km.bindings[msg.String()]; ok {
		return a
	}
	return core.ActionNone
}

// MapKeyToFrame adds the key's action to an input frame.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	if a := km.MapKey(msg); a != core.ActionNone {
		frame.Set(a)
	}
}

// HeldKey returns the easter egg's held-key name for a directional key.
// Only the arrows steer the hidden game so letters stay free for typing.
func (km *KeyMapper) HeldKey(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return easteregg.KeyLeft, true
	case tea.KeyRight:
		return easteregg.KeyRight, true
	}
	return "", false
}

// Rune returns the typed character for single-rune key events.
// Named keys (arrows, enter, ctrl combos) return false.
func Rune(msg tea.KeyMsg) (string, bool) {
	if msg.Type == tea.KeySpace {
		return " ", true
	}
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return "", false
	}
	return string(msg.Runes[0]), true
}
