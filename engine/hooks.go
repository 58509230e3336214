package engine

import (
	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/input"
	"github.com/lixenwraith/regolith/physics"
)

// Behavior is the entity-specific state of a concrete object kind
// Hooks below are discovered on it by type assertion
type Behavior interface {
	Clone() Behavior
}

// Collider is notified of each contact; the contact is seen from self
type Collider interface {
	OnCollision(self, other *Object, c physics.Contact)
}

// ContainmentHandler replaces default clamping when self leaves its container
type ContainmentHandler interface {
	OnContainment(self, container *Object, c physics.Contact)
}

// ClickHandler is called when a clickable is released while down
type ClickHandler interface {
	OnClick(self *Object)
}

// StateHandler observes clickable state changes
type StateHandler interface {
	OnStateChange(self *Object, t component.Transition)
}

// ActionHandler receives the actions the object registered for
type ActionHandler interface {
	OnAction(self *Object, a input.Action)
}

// Configurer reads behaviour fields from the document after traits are configured
type Configurer interface {
	Configure(self *Object, spec *config.ObjectSpec, env *Env) error
}

// Updater runs in the physics phase before integration
type Updater interface {
	Update(self *Object, dt float64, env *Env)
}

// As narrows a behaviour to a hook interface
func As[T any](b Behavior) (T, bool) {
	t, ok := b.(T)
	return t, ok
}
