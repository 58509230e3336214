package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"go.uber.org/zap"
)

// State is the playback state of a router
type State uint8

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

type voice struct {
	id   SoundID
	ctrl *beep.Ctrl
	done atomic.Bool
}

// Router tracks the sounds one context controls
// Pause, Resume and Stop act on every active sound of the context at once
// Pauses nest: each Pause needs a matching Resume
type Router struct {
	mu     sync.Mutex
	lib    *Library
	out    Output
	log    *zap.Logger
	ids    map[SoundID]struct{}
	active []*voice
	state  State
	pauses int
}

func NewRouter(lib *Library, out Output, log *zap.Logger) *Router {
	if out == nil {
		out = &NullOutput{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		lib: lib,
		out: out,
		log: log,
		ids: make(map[SoundID]struct{}),
	}
}

// Register puts a sound under this router's control
func (r *Router) Register(id SoundID) {
	r.mu.Lock()
	r.ids[id] = struct{}{}
	r.mu.Unlock()
}

// RegisterName registers a sound by name and returns its id
func (r *Router) RegisterName(name string) SoundID {
	id := IDFor(name)
	r.Register(id)
	return id
}

// Controls reports whether id was registered
func (r *Router) Controls(id SoundID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[id]
	return ok
}

// Play starts a registered sound; unregistered or unknown ids return false
// A sound started while paused begins paused
func (r *Router) Play(id SoundID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; !ok {
		r.log.Debug("sound not registered", zap.Uint64("sound", uint64(id)))
		return false
	}
	if r.lib == nil {
		return false
	}
	stream, ok := r.lib.Streamer(id)
	if !ok {
		r.log.Warn("sound missing from library", zap.Uint64("sound", uint64(id)))
		return false
	}

	v := &voice{id: id}
	v.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(stream, beep.Callback(func() { v.done.Store(true) })),
		Paused:   r.state == Paused,
	}
	r.prune()
	r.active = append(r.active, v)
	if r.state == Stopped {
		r.state = Playing
	}
	r.out.Play(v.ctrl)
	return true
}

// Pause suspends every active sound
func (r *Router) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pauses++
	if r.pauses > 1 {
		return
	}
	r.setPaused(true)
	r.state = Paused
}

// Resume undoes one Pause; sounds restart when the last pause is undone
func (r *Router) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pauses == 0 {
		return
	}
	r.pauses--
	if r.pauses > 0 {
		return
	}
	r.setPaused(false)
	r.prune()
	if len(r.active) > 0 {
		r.state = Playing
	} else {
		r.state = Stopped
	}
}

// Stop ends every active sound and clears pause nesting
func (r *Router) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := r.active
	r.out.Do(func() {
		for _, v := range active {
			v.ctrl.Streamer = nil
			v.ctrl.Paused = true
		}
	})
	r.active = nil
	r.pauses = 0
	r.state = Stopped
}

// State returns the current playback state
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	if r.state == Playing && len(r.active) == 0 {
		r.state = Stopped
	}
	return r.state
}

// Active returns the number of sounds not yet finished
func (r *Router) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	return len(r.active)
}

func (r *Router) setPaused(paused bool) {
	active := r.active
	r.out.Do(func() {
		for _, v := range active {
			v.ctrl.Paused = paused
		}
	})
}

func (r *Router) prune() {
	kept := r.active[:0]
	for _, v := range r.active {
		if !v.done.Load() {
			kept = append(kept, v)
		}
	}
	for i := len(kept); i < len(r.active); i++ {
		r.active[i] = nil
	}
	r.active = kept
}
