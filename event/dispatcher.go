package event

import "sync"

// Handler reacts to one event
type Handler func(Event)

// Dispatcher maps event kinds to handlers called in registration order
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// On appends a handler for kind
func (d *Dispatcher) On(kind string, h Handler) {
	d.mu.Lock()
	d.handlers[kind] = append(d.handlers[kind], h)
	d.mu.Unlock()
}

// Handles reports whether any handler is registered for kind
func (d *Dispatcher) Handles(kind string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[kind]) > 0
}

// Dispatch calls every handler for the event kind and returns how many ran
func (d *Dispatcher) Dispatch(ev Event) int {
	d.mu.RLock()
	hs := d.handlers[ev.Kind]
	d.mu.RUnlock()

	for _, h := range hs {
		h(ev)
	}
	return len(hs)
}
