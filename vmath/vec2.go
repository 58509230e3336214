package vmath

import "math"

// Epsilon is the threshold below which lengths and masses are treated as zero
const Epsilon = 1e-6

// Vec2 is a float64 2D vector for positions, velocities and forces
// Zero value is the origin
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies component-wise (used for per-axis render and parallax scales)
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Mag()
	if mag < Epsilon {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// IsZero reports whether both components are within Epsilon of zero
func (v Vec2) IsZero() bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon
}

// Reflect returns velocity reflected off a surface with the given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(vel, normal Vec2) Vec2 {
	return vel.Sub(normal.Scale(2 * vel.Dot(normal)))
}

// Perpendicular returns the vector rotated 90° counter-clockwise
func Perpendicular(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// ClampMagnitude limits the vector to maxMag while preserving direction
func ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := v.Mag()
	if mag <= maxMag || mag < Epsilon {
		return v
	}
	return v.Scale(maxMag / mag)
}

// Rotate rotates the vector by angle radians
func Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Lerp interpolates between a and b, t in [0, 1]
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// Clamp limits x to [lo, hi]; hi < lo collapses to lo
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}
