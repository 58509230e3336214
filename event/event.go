package event

import (
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

// Built-in signal kinds handled by the engine context
const (
	KindDestroy    = "destroy"
	KindPlaySound  = "play_sound"
	KindSpawn      = "spawn"
	KindActivate   = "activate"
	KindDeactivate = "deactivate"
)

// Scene stack signal kinds, handled by the scene director
const (
	KindPushScene = "push_scene" // params: scene
	KindPopScene  = "pop_scene"
)

// Event is a signal emitted by an entity during a frame
// Target names another entity; empty means the source itself
type Event struct {
	Kind     string
	Source   core.Entity
	Target   string
	Position vmath.Vec2
	Params   map[string]any
	Frame    int64
}

// String returns a named parameter or def
func (e Event) String(key, def string) string {
	if v, ok := e.Params[key].(string); ok {
		return v
	}
	return def
}
