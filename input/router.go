package input

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Listener receives actions it registered for
type Listener interface {
	OnAction(a Action)
}

// Router multicasts actions to the listeners of one context
// Listeners are called in registration order
type Router struct {
	mapping   *Mapping
	listeners map[string][]Listener
	pending   []tcell.Event
	log       *zap.Logger
}

func NewRouter(mapping *Mapping, log *zap.Logger) *Router {
	if mapping == nil {
		mapping = DefaultMapping()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		mapping:   mapping,
		listeners: make(map[string][]Listener),
		log:       log,
	}
}

func (r *Router) Mapping() *Mapping { return r.mapping }

// Register subscribes l to action; repeated registration is a no-op
func (r *Router) Register(action string, l Listener) {
	if slices.Contains(r.listeners[action], l) {
		return
	}
	r.listeners[action] = append(r.listeners[action], l)
}

// Unregister removes l from every action
func (r *Router) Unregister(l Listener) {
	for action, ls := range r.listeners {
		ls = slices.DeleteFunc(ls, func(x Listener) bool { return x == l })
		if len(ls) == 0 {
			delete(r.listeners, action)
			continue
		}
		r.listeners[action] = ls
	}
}

// Listeners returns the number of listeners for action
func (r *Router) Listeners(action string) int {
	return len(r.listeners[action])
}

// Queue holds a platform event until the next Flush
func (r *Router) Queue(ev tcell.Event) {
	r.pending = append(r.pending, ev)
}

// Flush translates queued events in arrival order and dispatches the actions
// Returns the number of actions produced
func (r *Router) Flush() int {
	pending := r.pending
	r.pending = nil

	n := 0
	for _, ev := range pending {
		for _, a := range r.mapping.Translate(ev) {
			r.Dispatch(a)
			n++
		}
	}
	return n
}

// Dispatch delivers a to every listener of its name and returns how many received it
func (r *Router) Dispatch(a Action) int {
	ls := slices.Clone(r.listeners[a.Name])
	for _, l := range ls {
		l.OnAction(a)
	}
	if len(ls) == 0 {
		r.log.Debug("action without listeners", zap.String("action", a.Name))
	}
	return len(ls)
}
