package input

import (
	"fmt"

	"github.com/lixenwraith/regolith/vmath"
)

// ActionKind is the value shape an action carries
type ActionKind uint8

const (
	Boolean ActionKind = iota
	Scalar
	Vector
)

var kindNames = map[string]ActionKind{
	"":        Boolean,
	"boolean": Boolean,
	"scalar":  Scalar,
	"vector":  Vector,
}

// ParseKind resolves a document kind name
func ParseKind(name string) (ActionKind, error) {
	k, ok := kindNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown action kind %q", name)
	}
	return k, nil
}

// Canonical action names used by the built-in objects and default mapping
const (
	ActionMove    = "move"
	ActionJump    = "jump"
	ActionFire    = "fire"
	ActionClick   = "click"
	ActionPointer = "pointer"
	ActionPause   = "pause"
	ActionQuit    = "quit"

	ActionFocusNext     = "focus_next"
	ActionFocusPrevious = "focus_previous"
	ActionSelect        = "select"
)

// Action is a platform-independent input event
// Pressed is false for releases; Vector carries direction or pointer position
type Action struct {
	Name    string
	Kind    ActionKind
	Pressed bool
	Value   float64
	Vector  vmath.Vec2
}

// Binding is what a raw input resolves to
type Binding struct {
	Action string
	Kind   ActionKind
	Value  float64
	Vector vmath.Vec2
}

func (b Binding) action(pressed bool) Action {
	return Action{Name: b.Action, Kind: b.Kind, Pressed: pressed, Value: b.Value, Vector: b.Vector}
}
