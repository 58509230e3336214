package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	assert.Equal(t, V2(4, 2), a.Add(b))
	assert.Equal(t, V2(2, 6), a.Sub(b))
	assert.Equal(t, V2(6, 8), a.Scale(2))
	assert.Equal(t, V2(3, -8), a.Mul(b))
	assert.Equal(t, V2(-3, -4), a.Neg())
	assert.InDelta(t, -5.0, a.Dot(b), 1e-12)
	assert.InDelta(t, -10.0, a.Cross(b), 1e-12)
	assert.InDelta(t, 5.0, a.Mag(), 1e-12)
}

func TestNormalizeZeroSafe(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())

	n := V2(0, 10).Normalize()
	assert.InDelta(t, 0.0, n.X, 1e-12)
	assert.InDelta(t, 1.0, n.Y, 1e-12)
}

func TestReflect(t *testing.T) {
	// Ball moving down-right hits a floor with normal pointing up
	r := Reflect(V2(1, 1), V2(0, -1))
	assert.InDelta(t, 1.0, r.X, 1e-12)
	assert.InDelta(t, -1.0, r.Y, 1e-12)
}

func TestClampMagnitude(t *testing.T) {
	v := ClampMagnitude(V2(30, 40), 5)
	assert.InDelta(t, 5.0, v.Mag(), 1e-9)
	assert.InDelta(t, 3.0, v.X, 1e-9)

	short := V2(1, 1)
	assert.Equal(t, short, ClampMagnitude(short, 5))
}

func TestRotate(t *testing.T) {
	r := Rotate(V2(1, 0), math.Pi/2)
	assert.InDelta(t, 0.0, r.X, 1e-12)
	assert.InDelta(t, 1.0, r.Y, 1e-12)
	assert.Equal(t, V2(-2, 1), Perpendicular(V2(1, 2)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
	assert.Equal(t, 2.0, Clamp(5, 2, 1))
}
