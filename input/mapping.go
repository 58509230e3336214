package input

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

// keysByName inverts tcell's key name table, lower-cased
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

var buttonsByName = map[string]tcell.ButtonMask{
	"left":       tcell.Button1,
	"right":      tcell.Button2,
	"middle":     tcell.Button3,
	"wheel_up":   tcell.WheelUp,
	"wheel_down": tcell.WheelDown,
}

// Mapping translates terminal events into actions for one context
type Mapping struct {
	Keys    map[tcell.Key]Binding
	Runes   map[rune]Binding
	Mouse   map[tcell.ButtonMask]Binding
	Pointer string // action emitted with the pointer position on mouse events, empty disables

	buttons tcell.ButtonMask
}

// NewMapping returns an empty mapping
func NewMapping() *Mapping {
	return &Mapping{
		Keys:  make(map[tcell.Key]Binding),
		Runes: make(map[rune]Binding),
		Mouse: make(map[tcell.ButtonMask]Binding),
	}
}

// DefaultMapping binds arrows and wasd to movement, space to jump
// Tab and Backtab cycle focus, Enter selects
func DefaultMapping() *Mapping {
	m := NewMapping()
	move := func(x, y float64) Binding {
		return Binding{Action: ActionMove, Kind: Vector, Vector: vmath.V2(x, y)}
	}
	m.Keys[tcell.KeyUp] = move(0, -1)
	m.Keys[tcell.KeyDown] = move(0, 1)
	m.Keys[tcell.KeyLeft] = move(-1, 0)
	m.Keys[tcell.KeyRight] = move(1, 0)
	m.Keys[tcell.KeyTab] = Binding{Action: ActionFocusNext}
	m.Keys[tcell.KeyBacktab] = Binding{Action: ActionFocusPrevious}
	m.Keys[tcell.KeyEnter] = Binding{Action: ActionSelect}
	m.Keys[tcell.KeyEscape] = Binding{Action: ActionPause}
	m.Keys[tcell.KeyCtrlC] = Binding{Action: ActionQuit}

	m.Runes['w'] = move(0, -1)
	m.Runes['s'] = move(0, 1)
	m.Runes['a'] = move(-1, 0)
	m.Runes['d'] = move(1, 0)
	m.Runes[' '] = Binding{Action: ActionJump}
	m.Runes['f'] = Binding{Action: ActionFire}
	m.Runes['q'] = Binding{Action: ActionQuit}

	m.Mouse[tcell.Button1] = Binding{Action: ActionClick}
	m.Pointer = ActionPointer
	return m
}

// Configure adds or replaces bindings from a document
func (m *Mapping) Configure(spec *config.InputSpec) error {
	if spec == nil {
		return nil
	}
	for name, b := range spec.Keys {
		key, ok := keysByName[strings.ToLower(name)]
		if !ok {
			return core.ConfigError("Mapping.Configure", "unknown key name", core.ErrInvalidDocument).
				With("Key", name)
		}
		bind, err := binding(b)
		if err != nil {
			return err
		}
		m.Keys[key] = bind
	}
	for name, b := range spec.Runes {
		r := []rune(name)
		if len(r) != 1 {
			return core.ConfigError("Mapping.Configure", "rune binding must be one character", core.ErrInvalidDocument).
				With("Rune", name)
		}
		bind, err := binding(b)
		if err != nil {
			return err
		}
		m.Runes[r[0]] = bind
	}
	for name, b := range spec.Mouse {
		btn, ok := buttonsByName[name]
		if !ok {
			return core.ConfigError("Mapping.Configure", "unknown mouse button", core.ErrInvalidDocument).
				With("Button", name)
		}
		bind, err := binding(b)
		if err != nil {
			return err
		}
		m.Mouse[btn] = bind
	}
	return nil
}

func binding(b config.BindingSpec) (Binding, error) {
	kind, err := ParseKind(b.Kind)
	if err != nil {
		return Binding{}, core.ConfigError("Mapping.Configure", "invalid binding", err).
			With("Action", b.Action)
	}
	out := Binding{Action: b.Action, Kind: kind, Value: b.Value}
	if b.Vector != nil {
		out.Vector = b.Vector.Vec()
	}
	return out, nil
}

// Translate converts one terminal event into zero or more actions
// Terminals report key presses only; mouse buttons report press and release
func (m *Mapping) Translate(ev tcell.Event) []Action {
	switch e := ev.(type) {
	case *tcell.EventKey:
		var (
			b  Binding
			ok bool
		)
		if e.Key() == tcell.KeyRune {
			b, ok = m.Runes[e.Rune()]
		} else {
			b, ok = m.Keys[e.Key()]
		}
		if !ok {
			return nil
		}
		return []Action{b.action(true)}

	case *tcell.EventMouse:
		x, y := e.Position()
		pos := vmath.V2(float64(x), float64(y))
		var out []Action
		if m.Pointer != "" {
			out = append(out, Action{Name: m.Pointer, Kind: Vector, Pressed: true, Vector: pos})
		}

		now := e.Buttons()
		changed := now ^ m.buttons
		m.buttons = now

		masks := make([]tcell.ButtonMask, 0, len(m.Mouse))
		for mask := range m.Mouse {
			masks = append(masks, mask)
		}
		slices.Sort(masks)
		for _, mask := range masks {
			if changed&mask == 0 {
				continue
			}
			a := m.Mouse[mask].action(now&mask != 0)
			a.Vector = pos
			out = append(out, a)
		}
		return out
	}
	return nil
}
