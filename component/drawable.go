package component

import (
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

// Drawable references a renderable resource by name
type Drawable struct {
	Resource string
	Clip     core.Rect // sub-rectangle of the resource, empty means whole
	Visible  bool
}

func NewDrawable(resource string) *Drawable {
	return &Drawable{Resource: resource, Visible: true}
}

// Destination returns the world-space rectangle the resource covers
func (d *Drawable) Destination(pos vmath.Vec2, w, h float64) core.Rect {
	return core.RectAt(pos, w, h)
}

func (d *Drawable) Clone() *Drawable {
	c := *d
	return &c
}

func (d *Drawable) Configure(spec *config.TextureSpec) {
	if spec == nil {
		return
	}
	if spec.Resource != "" {
		d.Resource = spec.Resource
	}
	if spec.Clip != nil {
		c := *spec.Clip
		d.Clip = core.Rect{X: c[0], Y: c[1], W: c[2], H: c[3]}
	}
	if spec.Visible != nil {
		d.Visible = *spec.Visible
	}
}
