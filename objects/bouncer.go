package objects

import (
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/physics"
)

const soundBounce = "bounce"

// Bouncer reflects off whatever it hits and off the inside of its container
type Bouncer struct {
	Bounces int
}

func (b *Bouncer) Clone() engine.Behavior {
	return &Bouncer{}
}

// Configure defaults elasticity to a perfect bounce
func (b *Bouncer) Configure(self *engine.Object, spec *config.ObjectSpec, _ *engine.Env) error {
	if self.Collidable != nil && (spec.Collision == nil || spec.Collision.Elasticity == 0) {
		self.Collidable.Elasticity = 1
	}
	return nil
}

func (b *Bouncer) bounce(self *engine.Object, c physics.Contact) {
	self.Position = self.Position.Sub(c.Overlap)
	if self.Movable == nil {
		return
	}
	e := 1.0
	if self.Collidable != nil {
		e = self.Collidable.Elasticity
	}
	before := self.Movable.Velocity
	self.Movable.Velocity = physics.Bounce(before, c.Normal, e)
	if self.Movable.Velocity != before {
		b.Bounces++
		self.PlaySound(soundBounce)
	}
}

func (b *Bouncer) OnCollision(self, _ *engine.Object, c physics.Contact) {
	b.bounce(self, c)
}

// OnContainment treats the container edge as a wall facing inward
func (b *Bouncer) OnContainment(self, _ *engine.Object, c physics.Contact) {
	b.bounce(self, c)
}
