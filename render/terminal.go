package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/regolith/core"
)

// TerminalRenderer draws resources as glyph-filled cell rectangles
// One world unit maps to one cell after camera scaling
type TerminalRenderer struct {
	screen  tcell.Screen
	palette *Palette
	bg      tcell.Style
}

func NewTerminalRenderer(screen tcell.Screen, palette *Palette) *TerminalRenderer {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &TerminalRenderer{
		screen:  screen,
		palette: palette,
		bg:      tcell.StyleDefault.Background(tcell.NewRGBColor(12, 12, 20)),
	}
}

func (r *TerminalRenderer) Clear() {
	r.screen.SetStyle(r.bg)
	r.screen.Clear()
}

// Blit fills the destination cells clipped to the screen
// Rotation has no meaning on a cell grid and is ignored
func (r *TerminalRenderer) Blit(resource string, dst core.Rect, _ float64) {
	g, _ := r.palette.Lookup(resource)
	w, h := r.screen.Size()

	x0 := max(int(math.Floor(dst.X)), 0)
	y0 := max(int(math.Floor(dst.Y)), 0)
	x1 := min(int(math.Ceil(dst.X+dst.W)), w)
	y1 := min(int(math.Ceil(dst.Y+dst.H)), h)

	// Sub-cell sized resources still occupy their origin cell
	if x1 <= x0 && x0 < w && dst.X >= 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && y0 < h && dst.Y >= 0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, g.Rune, nil, g.Style)
		}
	}
}

func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// Text writes a status line starting at x, y
func (r *TerminalRenderer) Text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
