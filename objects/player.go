package objects

import (
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/input"
	"github.com/lixenwraith/regolith/physics"
	"github.com/lixenwraith/regolith/vmath"
)

const (
	defaultPlayerSpeed    = 12.0
	defaultPlayerJump     = 18.0
	defaultPlayerMaxSpeed = 40.0
	defaultPlayerFriction = 6.0
	soundJump             = "jump"
	soundLand             = "land"
)

// Player is the input-driven character
// Move actions set velocity per axis, jump needs ground contact from the previous frame
type Player struct {
	Speed    float64
	Jump     float64
	MaxSpeed float64
	Friction float64 // horizontal velocity decay per second

	solid    core.CollisionType // 0: any immovable collidable counts as solid
	grounded bool
	wasDown  bool
}

func NewPlayer() *Player {
	return &Player{
		Speed:    defaultPlayerSpeed,
		Jump:     defaultPlayerJump,
		MaxSpeed: defaultPlayerMaxSpeed,
		Friction: defaultPlayerFriction,
	}
}

func (p *Player) Clone() engine.Behavior {
	cp := *p
	return &cp
}

// Grounded reports whether the player stood on a solid surface last frame
func (p *Player) Grounded() bool { return p.grounded }

func (p *Player) Configure(self *engine.Object, spec *config.ObjectSpec, env *engine.Env) error {
	p.Speed = spec.FloatParam("speed", p.Speed)
	p.Jump = spec.FloatParam("jump", p.Jump)
	p.MaxSpeed = spec.FloatParam("max_speed", p.MaxSpeed)
	p.Friction = spec.FloatParam("friction", p.Friction)

	if name := spec.StringParam("solid", ""); name != "" {
		var id core.CollisionType
		ok := false
		if env != nil {
			id, ok = env.Tables.Types.Lookup(name)
		}
		if !ok {
			return core.ConfigError("Player.Configure", "unknown solid collision type", core.ErrUnknownType).
				With("CollisionType", name)
		}
		p.solid = id
	}
	if len(self.Actions) == 0 {
		self.Actions = []string{input.ActionMove, input.ActionJump}
	}
	return nil
}

func (p *Player) OnAction(self *engine.Object, a input.Action) {
	if !a.Pressed || self.Movable == nil {
		return
	}
	v := &self.Movable.Velocity
	switch a.Name {
	case input.ActionMove:
		if a.Vector.X != 0 {
			v.X = a.Vector.X * p.Speed
		}
		if a.Vector.Y != 0 {
			v.Y = a.Vector.Y * p.Speed
		}
	case input.ActionJump:
		if p.grounded {
			v.Y = -p.Jump
			p.grounded = false
			self.PlaySound(soundJump)
		}
	}
}

func (p *Player) Update(self *engine.Object, dt float64, _ *engine.Env) {
	p.wasDown = p.grounded
	p.grounded = false
	if self.Movable == nil {
		return
	}
	decay := 1 - p.Friction*dt
	if decay < 0 {
		decay = 0
	}
	self.Movable.Velocity.X *= decay
	physics.CapSpeed(self.Movable, p.MaxSpeed)
}

func (p *Player) isSolid(other *engine.Object) bool {
	if p.solid != 0 {
		return other.Collidable.Type == p.solid
	}
	return other.Movable == nil || other.Movable.Immovable()
}

// OnCollision pushes the player out of solid contacts and stops motion into them
func (p *Player) OnCollision(self, other *engine.Object, c physics.Contact) {
	if !p.isSolid(other) {
		return
	}
	self.Position = self.Position.Sub(c.Overlap)
	if self.Movable != nil && self.Movable.Velocity.Dot(c.Normal) > 0 {
		self.Movable.Velocity = self.Movable.Velocity.Sub(c.Normal.Scale(self.Movable.Velocity.Dot(c.Normal)))
	}
	if c.Normal.Y > 1-vmath.Epsilon {
		if !p.wasDown && !p.grounded {
			self.PlaySound(soundLand)
		}
		p.grounded = true
	}
}
