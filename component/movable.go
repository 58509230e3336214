package component

import (
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/vmath"
)

// Movable carries mass and motion state integrated by physics.Integrate
// Inverse mass is cached and always matches the last mass set
type Movable struct {
	mass    float64
	invMass float64

	Velocity   vmath.Vec2
	Forces     vmath.Vec2 // accumulated for the next step
	InputForce vmath.Vec2 // persistent controller force, kept across steps
}

// NewMovable creates a movable trait with the given mass
func NewMovable(mass float64) *Movable {
	m := &Movable{}
	m.SetMass(mass)
	return m
}

// SetMass updates mass and its cached inverse
// Mass at or below vmath.Epsilon makes the entity immovable
func (m *Movable) SetMass(mass float64) {
	m.mass = mass
	if mass <= vmath.Epsilon {
		m.invMass = 0
		return
	}
	m.invMass = 1 / mass
}

func (m *Movable) Mass() float64        { return m.mass }
func (m *Movable) InverseMass() float64 { return m.invMass }

// Immovable reports zero inverse mass
func (m *Movable) Immovable() bool {
	return m.invMass == 0
}

// ApplyForce adds to the forces consumed by the next step
func (m *Movable) ApplyForce(f vmath.Vec2) {
	m.Forces = m.Forces.Add(f)
}

// Clone returns an independent copy
func (m *Movable) Clone() *Movable {
	c := *m
	return &c
}

// Configure applies mass and velocity from the document
func (m *Movable) Configure(spec *config.ObjectSpec) {
	if spec.Mass != nil {
		m.SetMass(*spec.Mass)
	}
	if spec.Velocity != nil {
		m.Velocity = spec.Velocity.Vec()
	}
}
