package scene

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/event"
	"github.com/lixenwraith/regolith/input"
	"github.com/lixenwraith/regolith/render"
)

type listenerBinding struct {
	action string
	l      input.Listener
}

// stackOp is a push (scene set) or pop requested by a signal during a frame
type stackOp struct {
	scene string
	pop   bool
}

// Director owns a stack of scene contexts
// Only the top context receives events and frames; contexts below it are blurred
// Push and pop signals are applied after the frame that raised them
type Director struct {
	docs      map[string]*config.Scene
	deps      Deps
	stack     []*engine.Context
	pending   []stackOp
	listeners []listenerBinding
	log       *zap.Logger
}

// NewDirector indexes scene documents by name
func NewDirector(docs []*config.Scene, deps Deps) *Director {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	d := &Director{
		docs: make(map[string]*config.Scene, len(docs)),
		deps: deps,
		log:  deps.Log.Named("director"),
	}
	for _, doc := range docs {
		d.docs[doc.Name] = doc
	}
	return d
}

// Listen registers l for action on the top context and on every context pushed later
func (d *Director) Listen(action string, l input.Listener) {
	d.listeners = append(d.listeners, listenerBinding{action: action, l: l})
	if top, ok := d.Top(); ok {
		top.Input.Register(action, l)
	}
}

// Push loads the named scene and makes it the top context
// The previous top is blurred and kept
func (d *Director) Push(name string) error {
	doc, ok := d.docs[name]
	if !ok {
		return core.LookupError("Director.Push", "scene not found", core.ErrInvalidDocument).With("Scene", name)
	}
	ctx, err := Load(doc, d.deps)
	if err != nil {
		return err
	}
	ctx.OnSignal(event.KindPushScene, func(ev event.Event) {
		d.pending = append(d.pending, stackOp{scene: ev.String("scene", "")})
	})
	ctx.OnSignal(event.KindPopScene, func(event.Event) {
		d.pending = append(d.pending, stackOp{pop: true})
	})
	for _, b := range d.listeners {
		ctx.Input.Register(b.action, b.l)
	}

	if top, ok := d.Top(); ok {
		top.Blur()
	}
	d.stack = append(d.stack, ctx)
	d.log.Info("scene pushed", zap.String("scene", name), zap.Int("depth", len(d.stack)))
	return nil
}

// Pop closes the top context and focuses the one below
// Returns false when the stack was already empty
func (d *Director) Pop() bool {
	n := len(d.stack)
	if n == 0 {
		return false
	}
	top := d.stack[n-1]
	d.stack[n-1] = nil
	d.stack = d.stack[:n-1]
	top.Close()
	if next, ok := d.Top(); ok {
		next.Focus()
	}
	d.log.Info("scene popped", zap.String("scene", top.Name), zap.Int("depth", len(d.stack)))
	return true
}

// Top returns the running context
func (d *Director) Top() (*engine.Context, bool) {
	if len(d.stack) == 0 {
		return nil, false
	}
	return d.stack[len(d.stack)-1], true
}

// Len returns the stack depth
func (d *Director) Len() int { return len(d.stack) }

// HandleEvent queues ev on the top context
func (d *Director) HandleEvent(ev tcell.Event) {
	if top, ok := d.Top(); ok {
		top.HandleEvent(ev)
	}
}

// Frame runs one frame of the top context, then applies requested stack changes
// A scene that fails to load recoverably is skipped with a warning
func (d *Director) Frame(dt float64, r render.Renderer) error {
	top, ok := d.Top()
	if !ok {
		return nil
	}
	top.Frame(dt, r)

	ops := d.pending
	d.pending = nil
	for _, op := range ops {
		if op.pop {
			d.Pop()
			continue
		}
		if err := d.Push(op.scene); err != nil {
			if !core.IsRecoverable(err) {
				return err
			}
			d.log.Warn("scene push skipped", zap.String("scene", op.scene), zap.Error(err))
		}
	}
	return nil
}

// Close pops every context
func (d *Director) Close() {
	for d.Pop() {
	}
}
