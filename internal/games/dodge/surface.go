package dodge

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/termfolio/internal/core"
)

// Colors used when drawing the field.
const (
	BackgroundColor = core.ColorNavy
	PlayerColor     = core.ColorBrightGreen
	ObstacleColor   = core.ColorBrightRed
	TextColor       = core.ColorBrightWhite
)

// Surface is the write-only drawing target for one frame.
// Coordinates are logical field units.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c core.Color)
	FillText(text string, x, y float64, c core.Color)
}

// Draw renders the world: background, player, live obstacles and the score.
func Draw(w World, p Params, s Surface) {
	s.ClearRect(0, 0, p.FieldW, p.FieldH)
	s.FillRect(0, 0, p.FieldW, p.FieldH, BackgroundColor)

	pl := w.Player
	s.FillRect(pl.X, pl.Y, pl.W, pl.H, PlayerColor)

	for _, o := range w.Obstacles {
		s.FillRect(o.X, o.Y, o.W, o.H, ObstacleColor)
	}

	s.FillText(fmt.Sprintf("Score: %d", w.Score), 10, 30, TextColor)
}

// ErrSurfaceTooSmall is returned when a screen cannot hold a visible field.
var ErrSurfaceTooSmall = errors.New("dodge: screen too small for play field")

// Minimum field size in cells, border excluded.
const (
	minFieldCellsW = 10
	minFieldCellsH = 6
)

// Glyphs used by ScreenSurface.
const (
	fillGlyph       = '█'
	backgroundGlyph = ' '
)

// ScreenSurface draws the logical field onto a region of a core.Screen,
// scaled to fit and centred. Terminal cells are roughly twice as tall as
// they are wide, so the horizontal scale is doubled to keep proportions.
type ScreenSurface struct {
	screen *core.Screen
	area   core.Rect // Field area in cells, inside the border
	fieldW float64
	fieldH float64
}

// NewScreenSurface fits a fieldW x fieldH field onto the screen.
func NewScreenSurface(screen *core.Screen, fieldW, fieldH float64) (*ScreenSurface, error) {
	if screen == nil {
		return nil, ErrSurfaceTooSmall
	}

	// Leave one row for the border on each side
	availW := screen.Width() - 2
	availH := screen.Height() - 2

	cellsH := availH
	cellsW := int(float64(cellsH) * fieldW / fieldH * 2)
	if cellsW > availW {
		cellsW = availW
		cellsH = int(float64(cellsW) * fieldH / fieldW / 2)
	}
	if cellsW < minFieldCellsW || cellsH < minFieldCellsH {
		return nil, fmt.Errorf("%w: need %dx%d cells, have %dx%d",
			ErrSurfaceTooSmall, minFieldCellsW+2, minFieldCellsH+2, screen.Width(), screen.Height())
	}

	area := core.NewRect((screen.Width()-cellsW)/2, (screen.Height()-cellsH)/2, cellsW, cellsH)
	return &ScreenSurface{
		screen: screen,
		area:   area,
		fieldW: fieldW,
		fieldH: fieldH,
	}, nil
}

// Area returns the field region in screen cells.
func (s *ScreenSurface) Area() core.Rect {
	return s.area
}

// ClearRect blanks the region and redraws the field border.
func (s *ScreenSurface) ClearRect(x, y, w, h float64) {
	s.screen.DrawRect(s.cellRect(x, y, w, h), backgroundGlyph)
	s.screen.DrawBox(core.NewRect(s.area.X-1, s.area.Y-1, s.area.W+2, s.area.H+2))
}

// FillRect paints the region. Background fills use spaces so the field stays
// readable on terminals without colour.
func (s *ScreenSurface) FillRect(x, y, w, h float64, c core.Color) {
	glyph := fillGlyph
	if c == BackgroundColor {
		glyph = backgroundGlyph
	}
	s.screen.DrawRectColored(s.cellRect(x, y, w, h), glyph, c)
}

// FillText writes text with its baseline at (x, y), clipped to the field.
func (s *ScreenSurface) FillText(text string, x, y float64, c core.Color) {
	cx, cy := s.cellPoint(x, y)
	cy-- // Baseline sits below the glyphs
	if cy < s.area.Y {
		cy = s.area.Y
	}

	i := 0
	for _, r := range text {
		px := cx + i
		if px >= s.area.Right() {
			break
		}
		s.screen.SetColored(px, cy, r, c)
		i++
	}
}

// cellPoint maps a logical point to a screen cell.
func (s *ScreenSurface) cellPoint(x, y float64) (int, int) {
	cx := s.area.X + int(math.Floor(x*float64(s.area.W)/s.fieldW))
	cy := s.area.Y + int(math.Floor(y*float64(s.area.H)/s.fieldH))
	return cx, cy
}

// cellRect maps a logical rectangle to cells, clipped to the field area.
// Non-empty rectangles always cover at least one cell.
func (s *ScreenSurface) cellRect(x, y, w, h float64) core.Rect {
	x0, y0 := s.cellPoint(x, y)
	x1 := s.area.X + int(math.Ceil((x+w)*float64(s.area.W)/s.fieldW))
	y1 := s.area.Y + int(math.Ceil((y+h)*float64(s.area.H)/s.fieldH))
	if w > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if h > 0 && y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Clamp(x0, s.area.X, s.area.Right())
	x1 = core.Clamp(x1, s.area.X, s.area.Right())
	y0 = core.Clamp(y0, s.area.Y, s.area.Bottom())
	y1 = core.Clamp(y1, s.area.Y, s.area.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawOp identifies a recorded Surface call.
type DrawOp int

const (
	OpClear DrawOp = iota
	OpFill
	OpText
)

// DrawCall is one recorded Surface call.
type DrawCall struct {
	Op         DrawOp
	X, Y, W, H float64
	Text       string
	Color      core.Color
}

// RecordingSurface is a Surface that remembers every call.
// Used in tests and for headless runs.
type RecordingSurface struct {
	Calls []DrawCall
}

// ClearRect records a clear.
func (r *RecordingSurface) ClearRect(x, y, w, h float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpClear, X: x, Y: y, W: w, H: h})
}

// FillRect records a fill.
func (r *RecordingSurface) FillRect(x, y, w, h float64, c core.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFill, X: x, Y: y, W: w, H: h, Color: c})
}

// FillText records a text draw.
func (r *RecordingSurface) FillText(text string, x, y float64, c core.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: OpText, X: x, Y: y, Text: text, Color: c})
}

// Reset forgets recorded calls.
func (r *RecordingSurface) Reset() {
	r.Calls = r.Calls[:0]
}

// Fills returns the recorded fills with the given color.
func (r *RecordingSurface) Fills(c core.Color) []DrawCall {
	var out []DrawCall
	for _, call := range r.Calls {
		if call.Op == OpFill && call.Color == c {
			out = append(out, call)
		}
	}
	return out
}

// LastText returns the text of the most recent text draw.
func (r *RecordingSurface) LastText() string {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Op == OpText {
			return r.Calls[i].Text
		}
	}
	return ""
}
