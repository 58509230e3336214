package physics

import (
	"math"

	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

// Body is a shape placed in world space
type Body struct {
	Kind   component.ShapeKind
	Center vmath.Vec2
	Half   vmath.Vec2 // box half-extents
	Radius float64    // circle radius
}

// BodyOf places shape at an entity position with the entity size
func BodyOf(shape component.Shape, pos vmath.Vec2, w, h float64) Body {
	r := shape.Bounds(pos, w, h)
	b := Body{Kind: shape.Kind, Center: r.Center(), Half: vmath.V2(r.W/2, r.H/2)}
	if shape.Kind == component.ShapeCircle {
		b.Radius = shape.Radius
	}
	return b
}

// Bounds returns the axis-aligned bounding rectangle
func (b Body) Bounds() core.Rect {
	if b.Kind == component.ShapeCircle {
		return core.Rect{X: b.Center.X - b.Radius, Y: b.Center.Y - b.Radius, W: 2 * b.Radius, H: 2 * b.Radius}
	}
	return core.Rect{X: b.Center.X - b.Half.X, Y: b.Center.Y - b.Half.Y, W: 2 * b.Half.X, H: 2 * b.Half.Y}
}

// Contact describes an overlap as seen from the first body
// Normal is a unit vector from A towards B, Overlap = Normal * Depth
type Contact struct {
	Normal  vmath.Vec2
	Depth   float64
	Overlap vmath.Vec2
}

func newContact(normal vmath.Vec2, depth float64) Contact {
	return Contact{Normal: normal, Depth: depth, Overlap: normal.Scale(depth)}
}

// Invert returns the contact as seen from the second body
func (c Contact) Invert() Contact {
	return Contact{Normal: c.Normal.Neg(), Depth: c.Depth, Overlap: c.Overlap.Neg()}
}

// Collide tests two bodies for overlap
// Touching without penetration is not a contact
func Collide(a, b Body) (Contact, bool) {
	switch {
	case a.Kind == component.ShapeBox && b.Kind == component.ShapeBox:
		return boxBox(a, b)
	case a.Kind == component.ShapeCircle && b.Kind == component.ShapeCircle:
		return circleCircle(a, b)
	case a.Kind == component.ShapeBox:
		return boxCircle(a, b)
	default:
		c, ok := boxCircle(b, a)
		return c.Invert(), ok
	}
}

// boxBox resolves along the axis of minimum penetration
func boxBox(a, b Body) (Contact, bool) {
	d := b.Center.Sub(a.Center)
	px := a.Half.X + b.Half.X - math.Abs(d.X)
	if px <= 0 {
		return Contact{}, false
	}
	py := a.Half.Y + b.Half.Y - math.Abs(d.Y)
	if py <= 0 {
		return Contact{}, false
	}
	if px < py {
		return newContact(vmath.V2(sign(d.X), 0), px), true
	}
	return newContact(vmath.V2(0, sign(d.Y)), py), true
}

func circleCircle(a, b Body) (Contact, bool) {
	d := b.Center.Sub(a.Center)
	r := a.Radius + b.Radius
	distSq := d.MagSq()
	if distSq >= r*r {
		return Contact{}, false
	}
	dist := math.Sqrt(distSq)
	if dist < vmath.Epsilon {
		return newContact(vmath.V2(1, 0), r), true
	}
	return newContact(d.Scale(1/dist), r-dist), true
}

// boxCircle treats a as the box and b as the circle
func boxCircle(box, circle Body) (Contact, bool) {
	d := circle.Center.Sub(box.Center)
	closest := vmath.V2(
		vmath.Clamp(d.X, -box.Half.X, box.Half.X),
		vmath.Clamp(d.Y, -box.Half.Y, box.Half.Y),
	)

	if closest == d {
		// Circle center inside the box: push out through the nearest face
		fx := box.Half.X - math.Abs(d.X)
		fy := box.Half.Y - math.Abs(d.Y)
		if fx < fy {
			return newContact(vmath.V2(sign(d.X), 0), fx+circle.Radius), true
		}
		return newContact(vmath.V2(0, sign(d.Y)), fy+circle.Radius), true
	}

	gap := d.Sub(closest)
	distSq := gap.MagSq()
	if distSq >= circle.Radius*circle.Radius {
		return Contact{}, false
	}
	dist := math.Sqrt(distSq)
	return newContact(gap.Scale(1/dist), circle.Radius-dist), true
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
