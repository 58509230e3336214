package component

import (
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

// ShapeKind selects the overlap primitive
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Shape is a collision primitive relative to the entity position
// A box with zero width or height takes the entity size for that axis
type Shape struct {
	Kind   ShapeKind
	Offset vmath.Vec2
	Width  float64
	Height float64
	Radius float64
}

// Bounds returns the world-space bounding rectangle of the shape
func (s Shape) Bounds(pos vmath.Vec2, w, h float64) core.Rect {
	origin := pos.Add(s.Offset)
	if s.Kind == ShapeCircle {
		return core.Rect{X: origin.X - s.Radius, Y: origin.Y - s.Radius, W: 2 * s.Radius, H: 2 * s.Radius}
	}
	bw, bh := s.Width, s.Height
	if bw == 0 {
		bw = w
	}
	if bh == 0 {
		bh = h
	}
	return core.Rect{X: origin.X, Y: origin.Y, W: bw, H: bh}
}

// Tables resolves document names into team and collision-type ids
type Tables struct {
	Teams *core.NameTable[core.Team]
	Types *core.NameTable[core.CollisionType]
}

// Collidable makes an entity take part in team-partitioned collision
type Collidable struct {
	Shape      Shape
	Active     bool
	Type       core.CollisionType
	Elasticity float64

	team    core.Team
	hasTeam bool
}

// NewCollidable creates an active box collidable without a team
func NewCollidable() *Collidable {
	return &Collidable{Active: true}
}

func (c *Collidable) SetTeam(t core.Team) {
	c.team = t
	c.hasTeam = true
}

func (c *Collidable) Team() core.Team { return c.team }

// HasTeam reports whether a team was set; required before team placement
func (c *Collidable) HasTeam() bool { return c.hasTeam }

func (c *Collidable) Clone() *Collidable {
	cp := *c
	return &cp
}

// Configure applies the collision section, resolving names through tables
func (c *Collidable) Configure(spec *config.CollisionSpec, tables Tables) error {
	if spec == nil {
		return nil
	}
	if spec.Team != "" {
		team, ok := tables.Teams.Lookup(spec.Team)
		if !ok {
			return core.ConfigError("Collidable.Configure", "unknown team", core.ErrUnknownTeam).
				With("Team", spec.Team)
		}
		c.SetTeam(team)
	}
	if spec.Type != "" {
		typ, ok := tables.Types.Lookup(spec.Type)
		if !ok {
			return core.ConfigError("Collidable.Configure", "unknown collision type", core.ErrUnknownType).
				With("CollisionType", spec.Type)
		}
		c.Type = typ
	}
	if spec.Active != nil {
		c.Active = *spec.Active
	}
	if spec.Elasticity != 0 {
		c.Elasticity = spec.Elasticity
	}
	if s := spec.Shape; s != nil {
		switch s.Kind {
		case "", "box":
			c.Shape = Shape{Kind: ShapeBox, Width: s.Width, Height: s.Height}
		case "circle":
			c.Shape = Shape{Kind: ShapeCircle, Radius: s.Radius}
		default:
			return core.ConfigError("Collidable.Configure", "unknown shape", core.ErrInvalidDocument).
				With("Shape", s.Kind)
		}
		if s.Offset != nil {
			c.Shape.Offset = s.Offset.Vec()
		}
	}
	return nil
}
