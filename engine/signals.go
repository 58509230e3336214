package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/regolith/audio"
	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/event"
	"github.com/lixenwraith/regolith/vmath"
)

func (c *Context) registerBuiltinSignals() {
	c.signals.On(event.KindDestroy, c.onDestroy)
	c.signals.On(event.KindPlaySound, c.onPlaySound)
	c.signals.On(event.KindSpawn, c.onSpawn)
	c.signals.On(event.KindActivate, func(ev event.Event) { c.setActive(ev, true) })
	c.signals.On(event.KindDeactivate, func(ev event.Event) { c.setActive(ev, false) })
}

// target resolves the object a signal acts on: the named target or the source
func (c *Context) target(ev event.Event) (*Object, bool) {
	if ev.Target != "" {
		return c.Find(ev.Target)
	}
	return c.pool.Get(ev.Source)
}

func (c *Context) onDestroy(ev event.Event) {
	if o, ok := c.target(ev); ok {
		o.Destroy()
	}
}

// onPlaySound plays through the target's emitter, else straight from the context router
func (c *Context) onPlaySound(ev event.Event) {
	name := ev.String("sound", "")
	if name == "" {
		return
	}
	if o, ok := c.target(ev); ok && o.Audio != nil && o.Audio.Has(name) {
		o.PlaySound(name)
		return
	}
	if !c.Audio.Play(audio.IDFor(name)) {
		c.log.Debug("sound not played", zap.String("sound", name))
	}
}

func (c *Context) onSpawn(ev event.Event) {
	name := ev.String("prototype", "")
	proto, ok := c.prototypes[name]
	if !ok {
		c.log.Warn("spawn of unknown prototype", zap.String("prototype", name))
		return
	}

	layer := ev.String("layer", "")
	if layer == "" {
		if src, ok := c.pool.Get(ev.Source); ok && src.layer != nil {
			layer = src.layer.name
		} else if c.lead != nil {
			layer = c.lead.name
		}
	}

	pos := ev.Position.Add(vmath.V2(floatParam(ev.Params, "dx"), floatParam(ev.Params, "dy")))
	if _, err := c.Spawn(layer, proto.Clone(pos)); err != nil {
		c.log.Warn("spawn signal failed", zap.String("prototype", name), zap.Error(err))
	}
}

func (c *Context) setActive(ev event.Event, active bool) {
	o, ok := c.target(ev)
	if !ok {
		return
	}
	if o.Collidable != nil {
		o.Collidable.Active = active
	}
	if o.Clickable == nil {
		return
	}
	var t component.Transition
	if active {
		t = o.Clickable.Activate()
	} else {
		t = o.Clickable.Deactivate()
	}
	if t.Changed() {
		if h, ok := As[StateHandler](o.Behavior); ok {
			h.OnStateChange(o, t)
		}
	}
}

// floatParam reads a number from document params, which yaml decodes as int or float64
func floatParam(params map[string]any, key string) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
