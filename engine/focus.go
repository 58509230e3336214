package engine

import (
	"slices"

	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/input"
)

// focusable reports whether keyboard focus may land on h
func (l *ContextLayer) focusable(h core.Entity) (*Object, bool) {
	o, ok := l.pool.Get(h)
	if !ok || o.IsDestroyed() || o.Clickable == nil {
		return nil, false
	}
	return o, o.Clickable.State() != component.ClickInactive
}

// Focused returns the clickable holding keyboard focus
func (l *ContextLayer) Focused() (*Object, bool) {
	return l.focusable(l.focused)
}

// FocusNext moves focus to the next clickable in registration order, wrapping
// Inactive and destroyed clickables are skipped
func (l *ContextLayer) FocusNext() (*Object, bool) { return l.cycle(1) }

// FocusPrevious moves focus to the previous clickable, wrapping
func (l *ContextLayer) FocusPrevious() (*Object, bool) { return l.cycle(-1) }

func (l *ContextLayer) cycle(step int) (*Object, bool) {
	n := len(l.clickables)
	if n == 0 {
		return nil, false
	}
	start := slices.Index(l.clickables, l.focused)
	if start < 0 && step < 0 {
		start = n
	}
	for i := 1; i <= n; i++ {
		idx := ((start+step*i)%n + n) % n
		if o, ok := l.focusable(l.clickables[idx]); ok {
			l.setFocus(o)
			return o, true
		}
	}
	return nil, false
}

// RequestFocus gives focus to o if it is a focusable clickable of this layer
func (l *ContextLayer) RequestFocus(o *Object) bool {
	if o == nil || l.placed[o.Handle()]&inClickables == 0 {
		return false
	}
	if _, ok := l.focusable(o.Handle()); !ok {
		return false
	}
	l.setFocus(o)
	return true
}

func (l *ContextLayer) setFocus(o *Object) {
	if prev, ok := l.pool.Get(l.focused); ok && prev != o && prev.Clickable != nil {
		prev.notify(prev.Clickable.TakeFocus())
	}
	l.focused = o.Handle()
	o.notify(o.Clickable.GiveFocus())
}

// SelectFocused presses and releases the focused clickable
// Returns true when that produced a click
func (l *ContextLayer) SelectFocused() bool {
	o, ok := l.Focused()
	if !ok {
		return false
	}
	o.notify(o.Clickable.Down())
	t := o.Clickable.Up()
	o.notify(t)
	return t.Clicked
}

// focusDriver routes keyboard focus actions to the context's lead layer
type focusDriver struct {
	c *Context
}

func (d focusDriver) OnAction(a input.Action) {
	l := d.c.lead
	if !a.Pressed || l == nil {
		return
	}
	switch a.Name {
	case input.ActionFocusNext:
		l.FocusNext()
	case input.ActionFocusPrevious:
		l.FocusPrevious()
	case input.ActionSelect:
		l.SelectFocused()
	}
}
