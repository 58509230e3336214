package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestTerminalBlitClipsToScreen(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	p := NewPalette(Glyph{Rune: '?'})
	p.Set("wall", Glyph{Rune: '#'})
	r := NewTerminalRenderer(s, p)

	r.Clear()
	r.Blit("wall", core.Rect{X: 8, Y: 3, W: 4, H: 4}, 0)
	r.Show()

	for _, c := range [][2]int{{8, 3}, {9, 3}, {8, 4}, {9, 4}} {
		ch, _, _, _ := s.GetContent(c[0], c[1])
		assert.Equal(t, '#', ch, "cell %v", c)
	}
	ch, _, _, _ := s.GetContent(7, 3)
	assert.NotEqual(t, '#', ch)
}

func TestTerminalBlitUnknownUsesFallback(t *testing.T) {
	s := newSimScreen(t, 4, 4)
	r := NewTerminalRenderer(s, NewPalette(Glyph{Rune: '?'}))
	r.Blit("mystery", core.Rect{X: 1, Y: 1, W: 0.5, H: 0.5}, 0)

	ch, _, _, _ := s.GetContent(1, 1)
	assert.Equal(t, '?', ch)
}

func TestPaletteLookup(t *testing.T) {
	p := DefaultPalette()
	g, ok := p.Lookup("player")
	assert.True(t, ok)
	assert.Equal(t, '@', g.Rune)

	_, ok = p.Lookup("nothing")
	assert.False(t, ok)
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Blit("a", core.Rect{W: 1, H: 1}, 0)
	r.Blit("b", core.Rect{X: 1, W: 1, H: 1}, 0.5)
	r.Show()
	assert.Equal(t, []string{"a", "b"}, r.Resources())
	assert.Equal(t, 1, r.Frames)

	r.Clear()
	assert.Empty(t, r.Blits)
}

func TestPaletteConfigure(t *testing.T) {
	p := NewPalette(Glyph{Rune: '?'})
	require.NoError(t, p.Configure(map[string]config.GlyphSpec{
		"lava": {Rune: "~", Fg: "red", Bg: "#202020", Bold: true},
	}))
	g, ok := p.Lookup("lava")
	require.True(t, ok)
	assert.Equal(t, '~', g.Rune)
	fg, bg, attrs := g.Style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
	assert.Equal(t, tcell.NewRGBColor(0x20, 0x20, 0x20), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	err := p.Configure(map[string]config.GlyphSpec{
		"ok":  {Rune: "o"},
		"bad": {Rune: "x", Fg: "not-a-color"},
	})
	require.ErrorIs(t, err, core.ErrInvalidDocument)
	_, ok = p.Lookup("ok")
	assert.False(t, ok, "nothing applied from a rejected palette")
}
