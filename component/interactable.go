package component

import (
	"maps"

	"github.com/lixenwraith/regolith/config"
)

// Signal is one emission target of an interactable
type Signal struct {
	Kind   string
	Target string
	Params map[string]any
}

// Interactable emits its signals, in order, each time it is triggered
// When limited, triggers past the limit are no-ops
type Interactable struct {
	Signals []Signal
	limit   int
	limited bool
	count   int
}

func NewInteractable(signals ...Signal) *Interactable {
	return &Interactable{Signals: signals}
}

// SetLimit caps the number of effective triggers; negative removes the cap
func (i *Interactable) SetLimit(n int) {
	if n < 0 {
		i.limited = false
		i.limit = 0
		return
	}
	i.limited = true
	i.limit = n
}

// Limit returns the cap and whether one is set
func (i *Interactable) Limit() (int, bool) { return i.limit, i.limited }

func (i *Interactable) Count() int { return i.count }

// Exhausted reports whether further triggers are no-ops
func (i *Interactable) Exhausted() bool {
	return i.limited && i.count >= i.limit
}

// Trigger emits every signal and counts the trigger
// Returns false without emitting when exhausted
func (i *Interactable) Trigger(emit func(Signal)) bool {
	if i.Exhausted() {
		return false
	}
	for _, s := range i.Signals {
		emit(s)
	}
	i.count++
	return true
}

// Reset clears the trigger counter
func (i *Interactable) Reset() { i.count = 0 }

func (i *Interactable) Clone() *Interactable {
	c := *i
	c.Signals = make([]Signal, len(i.Signals))
	for k, s := range i.Signals {
		s.Params = maps.Clone(s.Params)
		c.Signals[k] = s
	}
	return &c
}

func (i *Interactable) Configure(spec *config.ObjectSpec) {
	if len(spec.Signals) > 0 {
		i.Signals = i.Signals[:0]
		for _, s := range spec.Signals {
			i.Signals = append(i.Signals, Signal{Kind: s.Kind, Target: s.Target, Params: maps.Clone(s.Params)})
		}
	}
	if spec.TriggerLimit != nil {
		i.SetLimit(*spec.TriggerLimit)
	}
}
