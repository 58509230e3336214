package physics

import (
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

// Contains reports whether inner lies entirely within outer, edges inclusive
func Contains(outer, inner core.Rect) bool {
	return outer.Contains(inner)
}

// Exceeds reports how far inner pokes out of outer
// Overlap points outward per axis; Normal is its direction, Depth its length
func Exceeds(outer, inner core.Rect) (Contact, bool) {
	var out vmath.Vec2
	out.X = excess(inner.X, inner.X+inner.W, outer.X, outer.X+outer.W)
	out.Y = excess(inner.Y, inner.Y+inner.H, outer.Y, outer.Y+outer.H)
	if out.IsZero() {
		return Contact{}, false
	}
	depth := out.Mag()
	return Contact{Normal: out.Scale(1 / depth), Depth: depth, Overlap: out}, true
}

// excess returns the signed distance [lo, hi] leaves [min, max]
// Negative when leaving the low edge, positive past the high edge
func excess(lo, hi, min, max float64) float64 {
	switch {
	case lo < min:
		return lo - min
	case hi > max:
		return hi - max
	default:
		return 0
	}
}

// ClampInside returns the position that keeps a rectangle of size inside outer
// A rectangle larger than outer is aligned with the outer minimum
func ClampInside(pos, size vmath.Vec2, outer core.Rect) vmath.Vec2 {
	return vmath.V2(
		vmath.Clamp(pos.X, outer.X, outer.X+outer.W-size.X),
		vmath.Clamp(pos.Y, outer.Y, outer.Y+outer.H-size.Y),
	)
}

// StopOutward zeroes the velocity components that move along an outward overlap
func StopOutward(vel, overlap vmath.Vec2) vmath.Vec2 {
	if overlap.X*vel.X > 0 {
		vel.X = 0
	}
	if overlap.Y*vel.Y > 0 {
		vel.Y = 0
	}
	return vel
}
