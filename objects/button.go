package objects

import (
	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/input"
)

// Button emits its signals when clicked
// The drawable resource follows the state: base, base.focused, base.down, base.inactive
type Button struct {
	base string
}

func (b *Button) Clone() engine.Behavior {
	cp := *b
	return &cp
}

func (b *Button) Configure(self *engine.Object, _ *config.ObjectSpec, _ *engine.Env) error {
	if self.Drawable != nil {
		b.base = self.Drawable.Resource
	}
	if len(self.Actions) == 0 {
		self.Actions = []string{input.ActionPointer, input.ActionClick}
	}
	if self.Clickable != nil {
		b.show(self, self.Clickable.State())
	}
	return nil
}

// Resource returns the resource name shown in state s
func (b *Button) Resource(s component.ClickState) string {
	if s == component.ClickNormal {
		return b.base
	}
	return b.base + "." + s.String()
}

func (b *Button) show(self *engine.Object, s component.ClickState) {
	if self.Drawable != nil && b.base != "" {
		self.Drawable.Resource = b.Resource(s)
	}
}

func (b *Button) OnStateChange(self *engine.Object, t component.Transition) {
	b.show(self, t.To)
}

func (b *Button) OnClick(self *engine.Object) {
	self.Trigger()
}
