package render

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
)

// Glyph is how a resource appears in a terminal cell
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Palette resolves resource names to glyphs
type Palette struct {
	mu       sync.RWMutex
	glyphs   map[string]Glyph
	fallback Glyph
}

// NewPalette creates a palette whose unknown resources draw as fallback
func NewPalette(fallback Glyph) *Palette {
	return &Palette{glyphs: make(map[string]Glyph), fallback: fallback}
}

// DefaultPalette covers the resources used by the built-in objects
func DefaultPalette() *Palette {
	p := NewPalette(Glyph{Rune: '?', Style: tcell.StyleDefault.Foreground(tcell.ColorFuchsia)})
	base := tcell.StyleDefault.Background(tcell.ColorReset)
	p.Set("player", Glyph{'@', base.Foreground(tcell.NewRGBColor(120, 220, 255)).Bold(true)})
	p.Set("block", Glyph{'█', base.Foreground(tcell.ColorGray)})
	p.Set("wall", Glyph{'▓', base.Foreground(tcell.NewRGBColor(110, 90, 70))})
	p.Set("ball", Glyph{'o', base.Foreground(tcell.ColorYellow)})
	p.Set("hazard", Glyph{'^', base.Foreground(tcell.ColorRed)})
	p.Set("coin", Glyph{'$', base.Foreground(tcell.ColorGold)})
	p.Set("star", Glyph{'.', base.Foreground(tcell.ColorSilver).Dim(true)})
	p.Set("button", Glyph{'▒', base.Foreground(tcell.ColorTeal)})
	p.Set("button.focused", Glyph{'▒', base.Foreground(tcell.ColorAqua).Bold(true)})
	p.Set("button.down", Glyph{'█', base.Foreground(tcell.ColorAqua)})
	p.Set("button.inactive", Glyph{'░', base.Foreground(tcell.ColorDimGray)})
	return p
}

// Set defines or replaces the glyph for a resource
func (p *Palette) Set(resource string, g Glyph) {
	p.mu.Lock()
	p.glyphs[resource] = g
	p.mu.Unlock()
}

// Lookup returns the glyph for resource and whether it was defined
func (p *Palette) Lookup(resource string) (Glyph, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	g, ok := p.glyphs[resource]
	if !ok {
		return p.fallback, false
	}
	return g, true
}

// Configure overrides glyphs from the engine document
// Colors are resolved by tcell; unknown names are configuration errors
func (p *Palette) Configure(specs map[string]config.GlyphSpec) error {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	glyphs := make(map[string]Glyph, len(specs))
	for _, name := range names {
		g, err := glyphOf(name, specs[name])
		if err != nil {
			return err
		}
		glyphs[name] = g
	}
	for name, g := range glyphs {
		p.Set(name, g)
	}
	return nil
}

func glyphOf(resource string, spec config.GlyphSpec) (Glyph, error) {
	runes := []rune(spec.Rune)
	if len(runes) != 1 {
		return Glyph{}, core.ConfigError("Palette.Configure", "glyph must be a single rune", core.ErrInvalidDocument).
			With("Resource", resource).With("Rune", spec.Rune)
	}
	style := tcell.StyleDefault
	for _, c := range []struct {
		field string
		name  string
		apply func(tcell.Color)
	}{
		{"fg", spec.Fg, func(col tcell.Color) { style = style.Foreground(col) }},
		{"bg", spec.Bg, func(col tcell.Color) { style = style.Background(col) }},
	} {
		if c.name == "" {
			continue
		}
		col := tcell.GetColor(c.name)
		if col == tcell.ColorDefault {
			return Glyph{}, core.ConfigError("Palette.Configure", "unknown color", core.ErrInvalidDocument).
				With("Resource", resource).With(c.field, c.name)
		}
		c.apply(col)
	}
	if spec.Bold {
		style = style.Bold(true)
	}
	return Glyph{Rune: runes[0], Style: style}, nil
}
