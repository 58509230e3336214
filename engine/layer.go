package engine

import (
	"slices"

	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/render"
	"github.com/lixenwraith/regolith/vmath"
)

// container bits record which working sets hold a handle
type container uint8

const (
	inDrawables container = 1 << iota
	inMovables
	inTeam
	inClickables
)

// ContextLayer holds the working sets of one region of a scene
// Containers store pool handles; render order is insertion order
// A handle appears at most once in each container
type ContextLayer struct {
	Position      vmath.Vec2 // world offset applied when rendering
	MovementScale vmath.Vec2 // parallax factor relative to the lead camera

	name      string
	bounds    core.Rect
	camera    *Camera
	pool      *Pool
	drawables []core.Entity
	movables  []core.Entity
	teams     map[core.Team][]core.Entity
	teamOrder []core.Team

	clickables []core.Entity
	focused    core.Entity
	placed     map[core.Entity]container
}

// NewContextLayer creates a layer of size w, h whose camera shows the whole layer
func NewContextLayer(name string, w, h float64, pool *Pool) *ContextLayer {
	bounds := core.Rect{W: w, H: h}
	return &ContextLayer{
		MovementScale: vmath.V2(1, 1),
		name:          name,
		bounds:        bounds,
		camera:        NewCamera(w, h, bounds),
		pool:          pool,
		teams:         make(map[core.Team][]core.Entity),
		placed:        make(map[core.Entity]container),
	}
}

func (l *ContextLayer) Name() string      { return l.name }
func (l *ContextLayer) Bounds() core.Rect { return l.bounds }
func (l *ContextLayer) Camera() *Camera   { return l.camera }

func (l *ContextLayer) requireLive(op string, o *Object) error {
	if _, ok := l.pool.Get(o.Handle()); !ok {
		return core.LookupError(op, "object is not in the context pool", core.ErrStaleEntity).
			With("TypeID", o.TypeName())
	}
	return nil
}

// claim marks o as held by c, rejecting a second add to the same container
func (l *ContextLayer) claim(op string, c container, o *Object) error {
	h := o.Handle()
	if l.placed[h]&c != 0 {
		return core.ConfigError(op, "object already in container", core.ErrDuplicateEntity).
			With("TypeID", o.TypeName()).With("Layer", l.name)
	}
	l.placed[h] |= c
	return nil
}

// AddDrawable appends a drawable object to the render list
func (l *ContextLayer) AddDrawable(o *Object) error {
	if !o.HasTexture() {
		return core.ConfigError("ContextLayer.AddDrawable", "object has no drawable trait", core.ErrMissingTrait).
			With("TypeID", o.TypeName())
	}
	if err := l.requireLive("ContextLayer.AddDrawable", o); err != nil {
		return err
	}
	if err := l.claim("ContextLayer.AddDrawable", inDrawables, o); err != nil {
		return err
	}
	l.drawables = append(l.drawables, o.Handle())
	return nil
}

// AddMovable appends a movable object to the integration list
func (l *ContextLayer) AddMovable(o *Object) error {
	if !o.HasMovement() {
		return core.ConfigError("ContextLayer.AddMovable", "object has no movable trait", core.ErrMissingTrait).
			With("TypeID", o.TypeName())
	}
	if err := l.requireLive("ContextLayer.AddMovable", o); err != nil {
		return err
	}
	if err := l.claim("ContextLayer.AddMovable", inMovables, o); err != nil {
		return err
	}
	l.movables = append(l.movables, o.Handle())
	return nil
}

// AddToTeam appends a collidable to a team list; its team must already be team
func (l *ContextLayer) AddToTeam(team core.Team, o *Object) error {
	if !o.HasCollision() {
		return core.ConfigError("ContextLayer.AddToTeam", "object has no collidable trait", core.ErrMissingTrait).
			With("TypeID", o.TypeName())
	}
	if !o.Collidable.HasTeam() || o.Collidable.Team() != team {
		return core.ConfigError("ContextLayer.AddToTeam", "collidable team not set to target team", core.ErrMissingTeam).
			With("TypeID", o.TypeName()).With("Team", team)
	}
	if err := l.requireLive("ContextLayer.AddToTeam", o); err != nil {
		return err
	}
	if err := l.claim("ContextLayer.AddToTeam", inTeam, o); err != nil {
		return err
	}
	l.ensureTeam(team)
	l.teams[team] = append(l.teams[team], o.Handle())
	return nil
}

// AddClickable appends a clickable to the focus order
func (l *ContextLayer) AddClickable(o *Object) error {
	if !o.HasClick() {
		return core.ConfigError("ContextLayer.AddClickable", "object has no clickable trait", core.ErrMissingTrait).
			With("TypeID", o.TypeName())
	}
	if err := l.requireLive("ContextLayer.AddClickable", o); err != nil {
		return err
	}
	if err := l.claim("ContextLayer.AddClickable", inClickables, o); err != nil {
		return err
	}
	l.clickables = append(l.clickables, o.Handle())
	return nil
}

func (l *ContextLayer) ensureTeam(team core.Team) {
	if _, ok := l.teams[team]; ok {
		return
	}
	l.teams[team] = nil
	l.teamOrder = append(l.teamOrder, team)
}

// Place adds o to every container its traits qualify for
func (l *ContextLayer) Place(o *Object) error {
	if o.HasCollision() {
		if !o.Collidable.HasTeam() {
			return core.ConfigError("ContextLayer.Place", "collidable has no team", core.ErrMissingTeam).
				With("TypeID", o.TypeName())
		}
		if err := l.AddToTeam(o.Collidable.Team(), o); err != nil {
			return err
		}
	}
	if o.HasTexture() {
		if err := l.AddDrawable(o); err != nil {
			return err
		}
	}
	if o.HasMovement() {
		if err := l.AddMovable(o); err != nil {
			return err
		}
	}
	if o.HasClick() {
		if err := l.AddClickable(o); err != nil {
			return err
		}
	}
	o.layer = l
	return nil
}

// CameraFollow makes the layer camera track o
func (l *ContextLayer) CameraFollow(o *Object) {
	l.camera.Follow(o)
}

func (l *ContextLayer) Drawables() []core.Entity { return slices.Clone(l.drawables) }
func (l *ContextLayer) Movables() []core.Entity  { return slices.Clone(l.movables) }

// Clickables returns the focus order
func (l *ContextLayer) Clickables() []core.Entity { return slices.Clone(l.clickables) }

// Team returns the handles of a team in insertion order
func (l *ContextLayer) Team(t core.Team) []core.Entity { return slices.Clone(l.teams[t]) }

// Teams returns the teams with a bucket, in the order buckets were created
func (l *ContextLayer) Teams() []core.Team { return slices.Clone(l.teamOrder) }

// members resolves a team list to live objects
func (l *ContextLayer) members(t core.Team) []*Object {
	hs := l.teams[t]
	out := make([]*Object, 0, len(hs))
	for _, h := range hs {
		if o, ok := l.pool.Get(h); ok {
			out = append(out, o)
		}
	}
	return out
}

// Step integrates every movable not yet destroyed
func (l *ContextLayer) Step(dt float64, env *Env) {
	for _, h := range l.movables {
		o, ok := l.pool.Get(h)
		if !ok || o.IsDestroyed() {
			continue
		}
		o.Step(dt, env)
	}
}

// Render hands visible drawables to r in insertion order, placed through the camera
func (l *ContextLayer) Render(r render.Renderer) {
	for _, h := range l.drawables {
		o, ok := l.pool.Get(h)
		if !ok || o.IsDestroyed() || !o.Drawable.Visible {
			continue
		}
		world := o.Drawable.Destination(o.Position, o.Width, o.Height).Translate(l.Position)
		r.Blit(o.Drawable.Resource, l.camera.Place(world), o.Rotation)
	}
}

// Sweep drops destroyed and stale handles from all containers at once
// Returns the destroyed handles, each once, in first-seen order
func (l *ContextLayer) Sweep() []core.Entity {
	var removed []core.Entity
	seen := make(map[core.Entity]struct{})
	dead := func(h core.Entity) bool {
		o, ok := l.pool.Get(h)
		if ok && !o.IsDestroyed() {
			return false
		}
		delete(l.placed, h)
		if h == l.focused {
			l.focused = core.NilEntity
		}
		if ok {
			if _, dup := seen[h]; !dup {
				seen[h] = struct{}{}
				removed = append(removed, h)
			}
		}
		return true
	}

	l.drawables = compact(l.drawables, dead)
	l.movables = compact(l.movables, dead)
	for _, t := range l.teamOrder {
		l.teams[t] = compact(l.teams[t], dead)
	}
	l.clickables = compact(l.clickables, dead)
	return removed
}

// compact removes handles matching dead in a single order-preserving pass
func compact(hs []core.Entity, dead func(core.Entity) bool) []core.Entity {
	w := 0
	for _, h := range hs {
		if !dead(h) {
			hs[w] = h
			w++
		}
	}
	clear(hs[w:])
	return hs[:w]
}

// Clear drops every container; the objects stay in the pool
func (l *ContextLayer) Clear() {
	l.drawables = nil
	l.movables = nil
	l.clickables = nil
	l.focused = core.NilEntity
	for t := range l.teams {
		l.teams[t] = nil
	}
	clear(l.placed)
}
