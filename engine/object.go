package engine

import (
	"slices"

	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/event"
	"github.com/lixenwraith/regolith/input"
	"github.com/lixenwraith/regolith/physics"
	"github.com/lixenwraith/regolith/vmath"
)

// Object is an entity composed of optional traits
// A nil trait pointer means the capability is absent
type Object struct {
	Position vmath.Vec2
	Width    float64
	Height   float64
	Rotation float64
	Name     string
	Actions  []string // input actions the object listens to once spawned

	Movable      *component.Movable
	Collidable   *component.Collidable
	Drawable     *component.Drawable
	Interactable *component.Interactable
	Audio        *component.AudioEmitter
	Clickable    *component.Clickable

	Behavior Behavior

	typeName  string
	handle    core.Entity
	destroyed bool
	env       *Env
	layer     *ContextLayer
}

// NewObject creates a trait-less object of the given type name
func NewObject(typeName string) *Object {
	return &Object{typeName: typeName}
}

func (o *Object) TypeName() string { return o.typeName }

// Handle returns the pool handle, nil until inserted
func (o *Object) Handle() core.Entity { return o.handle }

// Layer returns the layer the object was spawned into
func (o *Object) Layer() *ContextLayer { return o.layer }

func (o *Object) HasMovement() bool    { return o.Movable != nil }
func (o *Object) HasCollision() bool   { return o.Collidable != nil }
func (o *Object) HasTexture() bool     { return o.Drawable != nil }
func (o *Object) HasAudio() bool       { return o.Audio != nil }
func (o *Object) HasInteraction() bool { return o.Interactable != nil }
func (o *Object) HasClick() bool       { return o.Clickable != nil }

// Destroy flags the object for removal at the next sweep
func (o *Object) Destroy() { o.destroyed = true }

func (o *Object) IsDestroyed() bool { return o.destroyed }

// CollisionActive reports whether the object takes part in collision tests
func (o *Object) CollisionActive() bool {
	return o.Collidable != nil && o.Collidable.Active && !o.destroyed
}

// Rect returns the object's position and size as a rectangle
func (o *Object) Rect() core.Rect {
	return core.RectAt(o.Position, o.Width, o.Height)
}

// Bounds returns the collision shape bounds, or Rect without a collidable
func (o *Object) Bounds() core.Rect {
	if o.Collidable == nil {
		return o.Rect()
	}
	return o.Collidable.Shape.Bounds(o.Position, o.Width, o.Height)
}

// Body returns the collision shape placed in world space
func (o *Object) Body() physics.Body {
	var shape component.Shape
	if o.Collidable != nil {
		shape = o.Collidable.Shape
	}
	return physics.BodyOf(shape, o.Position, o.Width, o.Height)
}

// Step runs the behaviour update and integrates movement
func (o *Object) Step(dt float64, env *Env) {
	if u, ok := As[Updater](o.Behavior); ok {
		u.Update(o, dt, env)
	}
	if o.Movable == nil || o.destroyed {
		return
	}
	var penv physics.Env
	if env != nil {
		penv = env.Physics
	}
	o.Position = physics.Integrate(o.Position, o.Movable, penv, dt)
}

// Clone deep-copies traits and behaviour at a new position
// The copy is not destroyed, has no handle and belongs to no layer
func (o *Object) Clone(pos vmath.Vec2) *Object {
	c := *o
	c.Position = pos
	c.handle = core.NilEntity
	c.destroyed = false
	c.layer = nil
	c.Actions = slices.Clone(o.Actions)

	if o.Movable != nil {
		c.Movable = o.Movable.Clone()
	}
	if o.Collidable != nil {
		c.Collidable = o.Collidable.Clone()
	}
	if o.Drawable != nil {
		c.Drawable = o.Drawable.Clone()
	}
	if o.Interactable != nil {
		c.Interactable = o.Interactable.Clone()
	}
	if o.Audio != nil {
		c.Audio = o.Audio.Clone()
	}
	if o.Clickable != nil {
		c.Clickable = o.Clickable.Clone()
	}
	if o.Behavior != nil {
		c.Behavior = o.Behavior.Clone()
	}
	return &c
}

// Configure applies base fields, then each attached trait's section, then the behaviour
func (o *Object) Configure(spec *config.ObjectSpec, env *Env) error {
	if spec == nil {
		return nil
	}
	o.env = env

	if spec.Name != "" {
		o.Name = spec.Name
	}
	if spec.Position != nil {
		o.Position = spec.Position.Vec()
	}
	if spec.Width != 0 {
		o.Width = spec.Width
	}
	if spec.Height != 0 {
		o.Height = spec.Height
	}
	if spec.Rotation != 0 {
		o.Rotation = spec.Rotation
	}
	if len(spec.Actions) > 0 {
		o.Actions = slices.Clone(spec.Actions)
	}

	if o.Movable != nil {
		o.Movable.Configure(spec)
	}
	if o.Collidable != nil {
		var tables component.Tables
		if env != nil {
			tables = env.Tables
		}
		if err := o.Collidable.Configure(spec.Collision, tables); err != nil {
			return o.annotate(err)
		}
	}
	if o.Drawable != nil {
		o.Drawable.Configure(spec.Texture)
	}
	if o.Interactable != nil {
		o.Interactable.Configure(spec)
	}
	if o.Audio != nil {
		o.Audio.Configure(spec.Sounds)
		if env != nil && env.Audio != nil {
			o.Audio.Attach(env.Audio)
		}
	}
	if o.Clickable != nil {
		if err := o.Clickable.Configure(spec.ClickableState); err != nil {
			return o.annotate(err)
		}
	}

	if cfg, ok := As[Configurer](o.Behavior); ok {
		if err := cfg.Configure(o, spec, env); err != nil {
			return o.annotate(err)
		}
	}
	return nil
}

func (o *Object) annotate(err error) error {
	if e, ok := core.AsError(err); ok {
		e.With("TypeID", o.typeName)
		if o.Name != "" {
			e.With("Object", o.Name)
		}
	}
	return err
}

// Trigger fires the interactable, pushing its signals onto the context queue
// Returns false when the object has no interactable or it is exhausted
func (o *Object) Trigger() bool {
	if o.Interactable == nil || o.destroyed {
		return false
	}
	return o.Interactable.Trigger(o.emit)
}

func (o *Object) emit(s component.Signal) {
	if o.env == nil || o.env.Events == nil {
		return
	}
	o.env.Events.Push(event.Event{
		Kind:     s.Kind,
		Source:   o.handle,
		Target:   s.Target,
		Position: o.Position,
		Params:   s.Params,
		Frame:    o.env.Frame,
	})
}

// PlaySound plays a sound registered on the audio trait
func (o *Object) PlaySound(name string) bool {
	if o.Audio == nil {
		return false
	}
	return o.Audio.Play(name)
}

// OnAction implements input.Listener
// Pointer and click actions drive the clickable state machine before the behaviour sees them
func (o *Object) OnAction(a input.Action) {
	if o.destroyed {
		return
	}
	if o.Clickable != nil {
		o.handleClick(a)
	}
	if h, ok := As[ActionHandler](o.Behavior); ok {
		h.OnAction(o, a)
	}
}

func (o *Object) handleClick(a input.Action) {
	inside := o.hit(a.Vector)

	var t component.Transition
	switch a.Name {
	case input.ActionPointer:
		if inside {
			t = o.Clickable.GiveFocus()
		} else {
			t = o.Clickable.TakeFocus()
		}
	case input.ActionClick:
		switch {
		case a.Pressed && inside:
			t = o.Clickable.Down()
		case !a.Pressed && inside:
			t = o.Clickable.Up()
		case !a.Pressed:
			t = o.Clickable.TakeFocus()
		default:
			return
		}
	default:
		return
	}
	if t.To == component.ClickFocused && o.layer != nil {
		o.layer.focused = o.handle
	}
	o.notify(t)
}

// notify hands a clickable transition to the behaviour hooks
func (o *Object) notify(t component.Transition) {
	if t.Changed() {
		if h, ok := As[StateHandler](o.Behavior); ok {
			h.OnStateChange(o, t)
		}
	}
	if t.Clicked {
		if h, ok := As[ClickHandler](o.Behavior); ok {
			h.OnClick(o)
		}
	}
}

// hit tests a screen point against the object, through its layer camera
func (o *Object) hit(screen vmath.Vec2) bool {
	p := screen
	if o.layer != nil {
		p = o.layer.Camera().ToWorld(screen).Sub(o.layer.Position)
	}
	return o.Rect().ContainsPoint(p)
}
