package engine

import (
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

// CameraMode selects how the camera moves each frame
type CameraMode uint8

const (
	CameraFixed CameraMode = iota
	CameraFollowing
	CameraFlying
)

// Camera maps a layer region onto the screen
// Position is kept inside the layer limits so the view never leaves the layer
type Camera struct {
	Width         float64 // viewport size in world units
	Height        float64
	RenderScale   vmath.Vec2
	MovementScale vmath.Vec2
	Velocity      vmath.Vec2 // used in flying mode

	limits   core.Rect
	position vmath.Vec2
	mode     CameraMode
	target   core.Entity
	offset   vmath.Vec2
}

// NewCamera creates a fixed camera of viewport size w, h over limits
func NewCamera(w, h float64, limits core.Rect) *Camera {
	return &Camera{
		Width:         w,
		Height:        h,
		RenderScale:   vmath.V2(1, 1),
		MovementScale: vmath.V2(1, 1),
		limits:        limits,
		position:      limits.Min(),
	}
}

func (c *Camera) Position() vmath.Vec2 { return c.position }
func (c *Camera) Mode() CameraMode     { return c.mode }
func (c *Camera) Target() core.Entity  { return c.target }
func (c *Camera) Limits() core.Rect    { return c.limits }

// SetLimits changes the region the camera may show
func (c *Camera) SetLimits(r core.Rect) {
	c.limits = r
	c.SetPosition(c.position)
}

// SetPosition moves the camera, clamped to [limits.min, limits.max - viewport]
func (c *Camera) SetPosition(p vmath.Vec2) {
	c.position = vmath.V2(
		vmath.Clamp(p.X, c.limits.X, c.limits.X+c.limits.W-c.Width),
		vmath.Clamp(p.Y, c.limits.Y, c.limits.Y+c.limits.H-c.Height),
	)
}

// Follow tracks o, keeping it centred in the viewport
func (c *Camera) Follow(o *Object) {
	c.target = o.Handle()
	c.offset = vmath.V2(c.Width/2-o.Width/2, c.Height/2-o.Height/2)
	c.mode = CameraFollowing
	c.SetPosition(o.Position.Sub(c.offset))
}

// Unfollow stops tracking and leaves the camera where it is
func (c *Camera) Unfollow() {
	c.target = core.NilEntity
	c.mode = CameraFixed
}

// Fly moves the camera at a constant velocity each update
func (c *Camera) Fly(v vmath.Vec2) {
	c.Unfollow()
	c.Velocity = v
	c.mode = CameraFlying
}

// Update advances following and flying cameras
// A target that is gone or destroyed releases the camera
func (c *Camera) Update(pool *Pool, dt float64) {
	switch c.mode {
	case CameraFollowing:
		o, ok := pool.Get(c.target)
		if !ok || o.IsDestroyed() {
			c.Unfollow()
			return
		}
		c.SetPosition(o.Position.Sub(c.offset))
	case CameraFlying:
		c.SetPosition(c.position.Add(c.Velocity.Scale(dt)))
	}
}

// Track follows a lead camera position scaled by the movement scale
func (c *Camera) Track(lead vmath.Vec2) {
	c.SetPosition(lead.Mul(c.MovementScale))
}

// Place converts a world rectangle into screen space: (rect - position) * renderScale
func (c *Camera) Place(r core.Rect) core.Rect {
	return core.Rect{
		X: (r.X - c.position.X) * c.RenderScale.X,
		Y: (r.Y - c.position.Y) * c.RenderScale.Y,
		W: r.W * c.RenderScale.X,
		H: r.H * c.RenderScale.Y,
	}
}

// ToWorld converts a screen point back into world space
func (c *Camera) ToWorld(p vmath.Vec2) vmath.Vec2 {
	sx, sy := c.RenderScale.X, c.RenderScale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return vmath.V2(p.X/sx+c.position.X, p.Y/sy+c.position.Y)
}
