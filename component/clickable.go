package component

import (
	"fmt"

	"github.com/lixenwraith/regolith/core"
)

// ClickState is the pointer interaction state of a clickable
type ClickState uint8

const (
	ClickNormal ClickState = iota
	ClickFocused
	ClickDown
	ClickInactive
)

var clickStateNames = [...]string{"normal", "focused", "down", "inactive"}

func (s ClickState) String() string {
	if int(s) < len(clickStateNames) {
		return clickStateNames[s]
	}
	return fmt.Sprintf("ClickState(%d)", s)
}

// ParseClickState resolves a document state name
func ParseClickState(name string) (ClickState, error) {
	for i, n := range clickStateNames {
		if n == name {
			return ClickState(i), nil
		}
	}
	return 0, core.ConfigError("ParseClickState", "unknown clickable state", core.ErrInvalidDocument).
		With("State", name)
}

// Transition reports the outcome of a clickable input
type Transition struct {
	From    ClickState
	To      ClickState
	Clicked bool // released while down
}

// Changed reports whether the state moved
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Clickable is the state machine behind buttons
type Clickable struct {
	state ClickState
}

func NewClickable() *Clickable {
	return &Clickable{}
}

func (c *Clickable) State() ClickState { return c.state }

func (c *Clickable) move(to ClickState, clicked bool) Transition {
	t := Transition{From: c.state, To: to, Clicked: clicked}
	c.state = to
	return t
}

func (c *Clickable) stay() Transition {
	return Transition{From: c.state, To: c.state}
}

// GiveFocus moves Normal to Focused
func (c *Clickable) GiveFocus() Transition {
	if c.state == ClickNormal {
		return c.move(ClickFocused, false)
	}
	return c.stay()
}

// TakeFocus returns Focused or Down to Normal
func (c *Clickable) TakeFocus() Transition {
	if c.state == ClickFocused || c.state == ClickDown {
		return c.move(ClickNormal, false)
	}
	return c.stay()
}

// Down presses a Normal or Focused clickable
func (c *Clickable) Down() Transition {
	if c.state == ClickNormal || c.state == ClickFocused {
		return c.move(ClickDown, false)
	}
	return c.stay()
}

// Up releases: Down clicks and becomes Focused, Focused loses focus
func (c *Clickable) Up() Transition {
	switch c.state {
	case ClickDown:
		return c.move(ClickFocused, true)
	case ClickFocused:
		return c.move(ClickNormal, false)
	}
	return c.stay()
}

// Activate re-enables an Inactive clickable
func (c *Clickable) Activate() Transition {
	if c.state == ClickInactive {
		return c.move(ClickNormal, false)
	}
	return c.stay()
}

// Deactivate disables the clickable from any state
func (c *Clickable) Deactivate() Transition {
	if c.state != ClickInactive {
		return c.move(ClickInactive, false)
	}
	return c.stay()
}

func (c *Clickable) Clone() *Clickable {
	cp := *c
	return &cp
}

// Configure sets the initial state by name; empty keeps the current state
func (c *Clickable) Configure(state string) error {
	if state == "" {
		return nil
	}
	s, err := ParseClickState(state)
	if err != nil {
		return err
	}
	c.state = s
	return nil
}
