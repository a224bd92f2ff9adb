// Package easteregg hides the dodge game behind a secret keystroke sequence
// and drives its tick loop: activation, per-frame stepping and drawing,
// restart after game over, and close.
package easteregg

import (
	"strings"
	"unicode"
)

// DefaultCode is the secret sequence that activates the game.
const DefaultCode = "GAME"

// Detector watches a stream of typed characters for the secret code.
// It keeps a trailing window exactly as long as the code and compares
// case-insensitively.
type Detector struct {
	code []rune
	buf  []rune
}

// NewDetector creates a detector for code. An empty code falls back to
// DefaultCode.
func NewDetector(code string) *Detector {
	if code == "" {
		code = DefaultCode
	}
	c := []rune(strings.ToUpper(code))
	return &Detector{
		code: c,
		buf:  make([]rune, 0, len(c)),
	}
}

// Code returns the upper-cased secret code.
func (d *Detector) Code() string {
	return string(d.code)
}

// Feed appends one character and reports whether the window now matches.
// Non-printable runes are ignored.
func (d *Detector) Feed(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}

	d.buf = append(d.buf, unicode.ToUpper(r))
	if len(d.buf) > len(d.code) {
		d.buf = append(d.buf[:0], d.buf[len(d.buf)-len(d.code):]...)
	}
	return d.matches()
}

// Reset empties the window.
func (d *Detector) Reset() {
	d.buf = d.buf[:0]
}

func (d *Detector) matches() bool {
	if len(d.buf) != len(d.code) {
		return false
	}
	for i := range d.code {
		if d.buf[i] != d.code[i] {
			return false
		}
	}
	return true
}
