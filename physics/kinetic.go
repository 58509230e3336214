package physics

import (
	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/vmath"
)

// Env holds the persistent forces every movable entity is subject to
type Env struct {
	Gravity vmath.Vec2
	Drag    float64 // velocity-proportional damping coefficient
}

// Integrate advances one semi-implicit Euler step and returns the new position
// v += (forces + input) * invMass * dt; p += v * dt
// Forces are then reset to mass*gravity - drag*v for the next step
// Immovable bodies keep their position and have their forces cleared
func Integrate(pos vmath.Vec2, m *component.Movable, env Env, dt float64) vmath.Vec2 {
	if m.Immovable() {
		m.Forces = vmath.Vec2{}
		return pos
	}

	accel := m.Forces.Add(m.InputForce).Scale(m.InverseMass())
	m.Velocity = m.Velocity.Add(accel.Scale(dt))
	pos = pos.Add(m.Velocity.Scale(dt))

	m.Forces = persistent(m, env)
	return pos
}

// Prime replaces the accumulated forces with the environment's persistent ones
// so a body entering the world feels gravity on its first step
func Prime(m *component.Movable, env Env) {
	if m.Immovable() {
		m.Forces = vmath.Vec2{}
		return
	}
	m.Forces = persistent(m, env)
}

func persistent(m *component.Movable, env Env) vmath.Vec2 {
	return env.Gravity.Scale(m.Mass()).Sub(m.Velocity.Scale(env.Drag))
}

// ApplyImpulse adds a velocity change scaled by inverse mass
func ApplyImpulse(m *component.Movable, impulse vmath.Vec2) {
	m.Velocity = m.Velocity.Add(impulse.Scale(m.InverseMass()))
}

// Bounce reflects the velocity component moving along normal, scaled by elasticity
// Velocity already moving away from the surface is returned unchanged
func Bounce(vel, normal vmath.Vec2, elasticity float64) vmath.Vec2 {
	along := vel.Dot(normal)
	if along <= 0 {
		return vel
	}
	return vel.Sub(normal.Scale((1 + elasticity) * along))
}

// CapSpeed limits velocity magnitude, returns true if capped
func CapSpeed(m *component.Movable, maxSpeed float64) bool {
	if m.Velocity.MagSq() <= maxSpeed*maxSpeed {
		return false
	}
	m.Velocity = vmath.ClampMagnitude(m.Velocity, maxSpeed)
	return true
}
