package core

import "github.com/lixenwraith/regolith/vmath"

// Rect is an axis-aligned rectangle, X/Y is the top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAt builds a rectangle from a position and a size
func RectAt(pos vmath.Vec2, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

func (r Rect) Min() vmath.Vec2 {
	return vmath.Vec2{X: r.X, Y: r.Y}
}

func (r Rect) Max() vmath.Vec2 {
	return vmath.Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Center returns the center point of the rectangle
func (r Rect) Center() vmath.Vec2 {
	return vmath.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Size returns width and height as a vector
func (r Rect) Size() vmath.Vec2 {
	return vmath.Vec2{X: r.W, Y: r.H}
}

// Translate returns the rectangle moved by d
func (r Rect) Translate(d vmath.Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains reports whether inner lies entirely within r (edges inclusive)
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.X+inner.W <= r.X+r.W && inner.Y+inner.H <= r.Y+r.H
}

// ContainsPoint reports whether p lies within r, right/bottom edges exclusive
func (r Rect) ContainsPoint(p vmath.Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether the rectangles overlap with positive area
// Touching edges do not intersect
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
