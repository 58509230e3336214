package engine

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/regolith/audio"
	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/event"
	"github.com/lixenwraith/regolith/input"
	"github.com/lixenwraith/regolith/physics"
	"github.com/lixenwraith/regolith/render"
	"github.com/lixenwraith/regolith/status"
	"github.com/lixenwraith/regolith/vmath"
)

// maxSignalPasses bounds signal chains where handlers emit further signals
const maxSignalPasses = 4

// Deps are the collaborators a context is built with
// Nil fields get silent or empty defaults
type Deps struct {
	Sounds  *audio.Library
	Output  audio.Output
	Mapping *input.Mapping
	Physics physics.Env
	Metrics *status.Registry
	Log     *zap.Logger
}

type frameMetrics struct {
	count     *atomic.Int64
	pairs     *atomic.Int64
	contacts  *atomic.Int64
	contains  *atomic.Int64
	removed   *atomic.Int64
	live      *atomic.Int64
	signals   *atomic.Int64
	frameTime *status.AtomicFloat
	framePeak *status.AtomicFloat
}

// Context is one scene: its pool, layers, tables and routers
// Frames run single-threaded in the fixed phase order of Frame
type Context struct {
	ID   uuid.UUID
	Name string

	Teams     *core.NameTable[core.Team]
	Types     *core.NameTable[core.CollisionType]
	Collision *CollisionHandler
	Input     *input.Router
	Audio     *audio.Router
	Events    *event.Queue

	pool       *Pool
	layers     []*ContextLayer
	byName     map[string]*ContextLayer
	lead       *ContextLayer
	signals    *event.Dispatcher
	prototypes map[string]*Object
	named      map[string]core.Entity
	env        *Env
	metrics    *status.Registry
	m          frameMetrics
	log        *zap.Logger
	frame      int64
	blurred    bool
}

// NewContext creates an empty context with the built-in signal handlers
func NewContext(name string, deps Deps) *Context {
	id := uuid.New()
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("scene", name), zap.String("context", id.String()))

	metrics := deps.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	sounds := deps.Sounds
	if sounds == nil {
		sounds = audio.NewLibrary(audio.DefaultSampleRate)
	}

	c := &Context{
		ID:         id,
		Name:       name,
		Teams:      core.NewNameTable[core.Team](),
		Types:      core.NewNameTable[core.CollisionType](),
		Input:      input.NewRouter(deps.Mapping, log.Named("input")),
		Audio:      audio.NewRouter(sounds, deps.Output, log.Named("audio")),
		Events:     event.NewQueue(),
		pool:       NewPool(),
		byName:     make(map[string]*ContextLayer),
		signals:    event.NewDispatcher(),
		prototypes: make(map[string]*Object),
		named:      make(map[string]core.Entity),
		metrics:    metrics,
		log:        log,
	}
	c.Collision = NewCollisionHandler(c.Teams, log.Named("collision"))
	c.env = &Env{
		Tables:  component.Tables{Teams: c.Teams, Types: c.Types},
		Physics: deps.Physics,
		Audio:   c.Audio,
		Events:  c.Events,
		Log:     log,
	}
	c.m = frameMetrics{
		count:     metrics.Ints.Get(status.FrameCount),
		pairs:     metrics.Ints.Get(status.CollisionPairs),
		contacts:  metrics.Ints.Get(status.CollisionContacts),
		contains:  metrics.Ints.Get(status.CollisionContains),
		removed:   metrics.Ints.Get(status.SweepRemoved),
		live:      metrics.Ints.Get(status.EntitiesLive),
		signals:   metrics.Ints.Get(status.SignalsHandled),
		frameTime: metrics.Floats.Get(status.FrameDelta),
		framePeak: metrics.Floats.Get(status.FrameDeltaPeak),
	}
	c.registerBuiltinSignals()
	focus := focusDriver{c: c}
	for _, a := range []string{input.ActionFocusNext, input.ActionFocusPrevious, input.ActionSelect} {
		c.Input.Register(a, focus)
	}
	return c
}

func (c *Context) Env() *Env                 { return c.env }
func (c *Context) Pool() *Pool               { return c.pool }
func (c *Context) Metrics() *status.Registry { return c.metrics }
func (c *Context) Log() *zap.Logger          { return c.log }
func (c *Context) FrameNumber() int64        { return c.frame }

// AddLayer appends a layer of size w, h; layer names are unique
func (c *Context) AddLayer(name string, w, h float64) (*ContextLayer, error) {
	if _, ok := c.byName[name]; ok {
		return nil, core.ConfigError("Context.AddLayer", "layer already exists", core.ErrDuplicateLayer).
			With("Layer", name)
	}
	l := NewContextLayer(name, w, h, c.pool)
	c.Collision.PrepareLayer(l)
	c.layers = append(c.layers, l)
	c.byName[name] = l
	if c.lead == nil {
		c.lead = l
	}
	return l, nil
}

// Layer looks up a layer by name
func (c *Context) Layer(name string) (*ContextLayer, error) {
	l, ok := c.byName[name]
	if !ok {
		return nil, core.LookupError("Context.Layer", "no such layer", core.ErrUnknownLayer).
			With("Layer", name)
	}
	return l, nil
}

// Layers returns the layers in creation order
func (c *Context) Layers() []*ContextLayer {
	out := make([]*ContextLayer, len(c.layers))
	copy(out, c.layers)
	return out
}

// SetLead selects the layer whose camera drives parallax layers
func (c *Context) SetLead(l *ContextLayer) { c.lead = l }

func (c *Context) Lead() *ContextLayer { return c.lead }

// Spawn takes ownership of o, inserts it into the pool and places it in a layer
// On failure o is released and the error returned
func (c *Context) Spawn(layer string, o *Object) (core.Entity, error) {
	l, err := c.Layer(layer)
	if err != nil {
		return core.NilEntity, err
	}
	o.env = c.env
	if o.Audio != nil && o.Audio.Router() != c.Audio {
		o.Audio.Attach(c.Audio)
	}
	h := c.pool.Insert(o)
	if err := l.Place(o); err != nil {
		c.pool.Release(h)
		return core.NilEntity, err
	}
	if o.Movable != nil {
		physics.Prime(o.Movable, c.env.Physics)
	}
	for _, a := range o.Actions {
		c.Input.Register(a, o)
	}
	if o.Name != "" {
		// the first live holder keeps the name; clones stay reachable by handle
		if _, taken := c.Find(o.Name); !taken {
			c.named[o.Name] = h
		}
	}
	c.log.Debug("spawned",
		zap.String("type", o.TypeName()),
		zap.String("name", o.Name),
		zap.Stringer("entity", h),
		zap.String("layer", layer))
	return h, nil
}

// SpawnClone copies a live object to pos and spawns the copy into layer
func (c *Context) SpawnClone(layer string, h core.Entity, pos vmath.Vec2) (core.Entity, error) {
	o, ok := c.pool.Get(h)
	if !ok {
		return core.NilEntity, core.LookupError("Context.SpawnClone", "no live object for handle", core.ErrStaleEntity).
			With("Entity", h.String())
	}
	return c.Spawn(layer, o.Clone(pos))
}

// Get resolves a handle
func (c *Context) Get(h core.Entity) (*Object, bool) {
	return c.pool.Get(h)
}

// Find resolves an object by its document name
func (c *Context) Find(name string) (*Object, bool) {
	h, ok := c.named[name]
	if !ok {
		return nil, false
	}
	return c.pool.Get(h)
}

// AddPrototype keeps an unspawned object that spawn signals clone
func (c *Context) AddPrototype(name string, o *Object) {
	o.env = c.env
	c.prototypes[name] = o
}

func (c *Context) Prototype(name string) (*Object, bool) {
	o, ok := c.prototypes[name]
	return o, ok
}

// HandleEvent queues a terminal event for the next frame's input phase
func (c *Context) HandleEvent(ev tcell.Event) {
	c.Input.Queue(ev)
}

// OnSignal adds a handler for a signal kind after the built-in ones
func (c *Context) OnSignal(kind string, h event.Handler) {
	c.signals.On(kind, h)
}

// Frame runs one frame: input, physics, collision, signals, cameras, render, sweep
// A nil renderer skips the render phase
func (c *Context) Frame(dt float64, r render.Renderer) Stats {
	c.frame++
	c.env.Frame = c.frame

	c.Input.Flush()

	for _, l := range c.layers {
		l.Step(dt, c.env)
	}

	var st Stats
	for _, l := range c.layers {
		st.add(c.Collision.Resolve(l))
	}

	handled := c.drainSignals()

	c.updateCameras(dt)

	if r != nil {
		r.Clear()
		for _, l := range c.layers {
			l.Render(r)
		}
		r.Show()
	}

	removed := c.sweep()

	c.m.count.Add(1)
	c.m.pairs.Store(int64(st.PairsTested))
	c.m.contacts.Store(int64(st.Contacts))
	c.m.contains.Store(int64(st.Containments))
	c.m.removed.Store(int64(removed))
	c.m.live.Store(int64(c.pool.Len()))
	c.m.signals.Store(int64(handled))
	c.m.frameTime.Set(dt)
	c.m.framePeak.Max(dt)
	return st
}

func (c *Context) drainSignals() int {
	handled := 0
	for pass := 0; pass < maxSignalPasses; pass++ {
		evs := c.Events.Consume()
		if len(evs) == 0 {
			return handled
		}
		for _, ev := range evs {
			if c.signals.Dispatch(ev) == 0 {
				c.log.Debug("unhandled signal", zap.String("kind", ev.Kind))
				continue
			}
			handled++
		}
	}
	if n := c.Events.Len(); n > 0 {
		c.log.Warn("signal chain deferred to next frame", zap.Int("pending", n))
	}
	return handled
}

func (c *Context) updateCameras(dt float64) {
	for _, l := range c.layers {
		l.camera.Update(c.pool, dt)
	}
	if c.lead == nil {
		return
	}
	lead := c.lead.camera.Position()
	for _, l := range c.layers {
		if l == c.lead || l.camera.Mode() != CameraFixed {
			continue
		}
		l.camera.MovementScale = l.MovementScale
		l.camera.Track(lead)
	}
}

// sweep drops destroyed objects from the layers, then releases them
// Objects held by no container are found through the pool
func (c *Context) sweep() int {
	n := 0
	for _, l := range c.layers {
		for _, h := range l.Sweep() {
			if c.release(h) {
				n++
			}
		}
	}
	var loose []core.Entity
	c.pool.Each(func(o *Object) bool {
		if o.IsDestroyed() {
			loose = append(loose, o.Handle())
		}
		return true
	})
	for _, h := range loose {
		if c.release(h) {
			n++
		}
	}
	return n
}

func (c *Context) release(h core.Entity) bool {
	o, ok := c.pool.Get(h)
	if !ok {
		return false
	}
	c.Input.Unregister(o)
	if o.Name != "" && c.named[o.Name] == h {
		delete(c.named, o.Name)
	}
	return c.pool.Release(h)
}

// Blur pauses the context's sounds when it loses focus
func (c *Context) Blur() {
	if c.blurred {
		return
	}
	c.blurred = true
	c.Audio.Pause()
}

// Focus resumes sounds paused by Blur
func (c *Context) Focus() {
	if !c.blurred {
		return
	}
	c.blurred = false
	c.Audio.Resume()
}

// Close stops audio, clears layers and releases every object
func (c *Context) Close() {
	c.Audio.Stop()
	c.pool.Each(func(o *Object) bool {
		c.Input.Unregister(o)
		return true
	})
	for _, l := range c.layers {
		l.Clear()
	}
	c.pool.Clear()
	clear(c.named)
	c.log.Info("context closed", zap.Int64("frames", c.frame))
}
