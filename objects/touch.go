package objects

import (
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/physics"
)

// Toucher triggers its interactable on every contact
// Once limits it to a single trigger unless the document sets trigger_limit
type Toucher struct {
	Once bool
}

func (t *Toucher) Clone() engine.Behavior {
	cp := *t
	return &cp
}

func (t *Toucher) Configure(self *engine.Object, spec *config.ObjectSpec, _ *engine.Env) error {
	if t.Once && spec.TriggerLimit == nil && self.Interactable != nil {
		self.Interactable.SetLimit(1)
	}
	return nil
}

func (t *Toucher) OnCollision(self, _ *engine.Object, _ physics.Contact) {
	self.Trigger()
}
