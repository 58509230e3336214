package component

import (
	"slices"

	"github.com/lixenwraith/regolith/audio"
)

// AudioEmitter plays the sounds an entity registered through its context router
type AudioEmitter struct {
	sounds []audio.SoundID
	router *audio.Router
}

func NewAudioEmitter() *AudioEmitter {
	return &AudioEmitter{}
}

// Attach binds the emitter and its sounds to a context router
func (a *AudioEmitter) Attach(r *audio.Router) {
	a.router = r
	if r == nil {
		return
	}
	for _, id := range a.sounds {
		r.Register(id)
	}
}

func (a *AudioEmitter) Router() *audio.Router { return a.router }

// Register adds a sound by name; repeated names are kept once
func (a *AudioEmitter) Register(name string) audio.SoundID {
	id := audio.IDFor(name)
	if !slices.Contains(a.sounds, id) {
		a.sounds = append(a.sounds, id)
	}
	if a.router != nil {
		a.router.Register(id)
	}
	return id
}

// Has reports whether the sound was registered on this emitter
func (a *AudioEmitter) Has(name string) bool {
	return slices.Contains(a.sounds, audio.IDFor(name))
}

func (a *AudioEmitter) Sounds() []audio.SoundID {
	return slices.Clone(a.sounds)
}

// Play plays a registered sound; unregistered names and detached emitters return false
func (a *AudioEmitter) Play(name string) bool {
	id := audio.IDFor(name)
	if a.router == nil || !slices.Contains(a.sounds, id) {
		return false
	}
	return a.router.Play(id)
}

// Clone copies the sound set and shares the router back-reference
func (a *AudioEmitter) Clone() *AudioEmitter {
	return &AudioEmitter{sounds: slices.Clone(a.sounds), router: a.router}
}

func (a *AudioEmitter) Configure(names []string) {
	for _, n := range names {
		a.Register(n)
	}
}
