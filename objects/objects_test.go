package objects

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/event"
	"github.com/lixenwraith/regolith/input"
	"github.com/lixenwraith/regolith/physics"
	"github.com/lixenwraith/regolith/registry"
	"github.com/lixenwraith/regolith/vmath"
)

type world struct {
	t   *testing.T
	ctx *engine.Context
	f   *registry.Factory
}

func newWorld(t *testing.T, env physics.Env, teams ...string) *world {
	t.Helper()
	f := registry.NewFactory(nil)
	require.NoError(t, Register(f))

	ctx := engine.NewContext("objects", engine.Deps{Physics: env})
	for _, name := range teams {
		ctx.Teams.Register(name)
	}
	ctx.Types.Register("solid")
	_, err := ctx.AddLayer("main", 100, 100)
	require.NoError(t, err)
	return &world{t: t, ctx: ctx, f: f}
}

func (w *world) pair(a, b string) {
	ta, _ := w.ctx.Teams.Lookup(a)
	tb, _ := w.ctx.Teams.Lookup(b)
	require.NoError(w.t, w.ctx.Collision.AddCollisionPair(ta, tb))
}

func (w *world) spawn(spec config.ObjectSpec) *engine.Object {
	w.t.Helper()
	o, err := w.f.BuildSpec(&spec, w.ctx.Env())
	require.NoError(w.t, err)
	_, err = w.ctx.Spawn("main", o)
	require.NoError(w.t, err)
	return o
}

func pt(x, y float64) *config.Point { return &config.Point{x, y} }

func TestRegisterAllKinds(t *testing.T) {
	f := registry.NewFactory(nil)
	require.NoError(t, Register(f))
	assert.Equal(t, []string{
		TypeBlock, TypeBouncer, TypeButton, TypeHazard,
		TypePlayer, TypeRegion, TypeSprite, TypeTrigger,
	}, f.Names())

	err := Register(f)
	require.ErrorIs(t, err, core.ErrDuplicateType)
}

func TestBuiltTraitsMatchDeclaration(t *testing.T) {
	w := newWorld(t, physics.Env{}, "any")
	for _, b := range Builders() {
		o, err := w.f.Build(b.Name, &config.ObjectSpec{}, w.ctx.Env())
		require.NoError(t, err, b.Name)
		assert.Equal(t, b.Traits, registry.TraitsOf(o), b.Name)
	}
}

func TestPlayerLandsAndJumps(t *testing.T) {
	w := newWorld(t, physics.Env{Gravity: vmath.V2(0, 20)}, "hero", "ground")
	w.pair("hero", "ground")

	w.spawn(config.ObjectSpec{
		ResourceType: TypeBlock, Width: 100, Height: 10, Position: pt(0, 80),
		Collision: &config.CollisionSpec{Team: "ground", Type: "solid"},
	})
	mass := 1.0
	hero := w.spawn(config.ObjectSpec{
		ResourceType: TypePlayer, Name: "hero", Width: 2, Height: 2, Position: pt(10, 70), Mass: &mass,
		Collision: &config.CollisionSpec{Team: "hero"},
		Params:    map[string]any{"solid": "solid", "jump": 15},
	})
	p := hero.Behavior.(*Player)
	assert.Equal(t, []string{input.ActionMove, input.ActionJump}, hero.Actions)

	for i := 0; i < 120; i++ {
		w.ctx.Frame(1.0/30, nil)
	}
	require.True(t, p.Grounded())
	assert.InDelta(t, 78.0, hero.Position.Y, 1.0, "resting on the block")
	assert.LessOrEqual(t, hero.Position.Y+hero.Height, 80.0+1e-9)

	w.ctx.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	w.ctx.Frame(1.0/30, nil)
	assert.Less(t, hero.Movable.Velocity.Y, 0.0, "moving up after jump")
	assert.False(t, p.Grounded())
}

func TestPlayerUnknownSolidType(t *testing.T) {
	w := newWorld(t, physics.Env{}, "hero")
	_, err := w.f.BuildSpec(&config.ObjectSpec{
		ResourceType: TypePlayer,
		Params:       map[string]any{"solid": "lava"},
	}, w.ctx.Env())
	require.ErrorIs(t, err, core.ErrUnknownType)
	e, _ := core.AsError(err)
	typeID, _ := e.Detail("TypeID")
	assert.Equal(t, TypePlayer, typeID)
}

func TestBouncerStaysInRegion(t *testing.T) {
	w := newWorld(t, physics.Env{}, "arena", "ball")
	arena, _ := w.ctx.Teams.Lookup("arena")
	ball, _ := w.ctx.Teams.Lookup("ball")
	require.NoError(t, w.ctx.Collision.AddContainerPair(arena, ball))

	w.spawn(config.ObjectSpec{
		ResourceType: TypeRegion, Width: 100, Height: 100,
		Collision: &config.CollisionSpec{Team: "arena"},
	})
	b := w.spawn(config.ObjectSpec{
		ResourceType: TypeBouncer, Width: 4, Height: 4, Position: pt(90, 50), Velocity: pt(30, 0),
		Collision: &config.CollisionSpec{Team: "ball"},
	})

	for i := 0; i < 10; i++ {
		w.ctx.Frame(0.1, nil)
		bounds := b.Bounds()
		require.True(t, physics.Contains(core.Rect{W: 100, H: 100}, bounds), "frame %d: %+v", i, bounds)
	}
	assert.Less(t, b.Movable.Velocity.X, 0.0, "reflected off the right edge")
	assert.Equal(t, 1, b.Behavior.(*Bouncer).Bounces)
	assert.Equal(t, 1.0, b.Collidable.Elasticity)
}

func TestHazardEmitsSignalsOnContact(t *testing.T) {
	w := newWorld(t, physics.Env{}, "hero", "hazard")
	w.pair("hazard", "hero")

	w.spawn(config.ObjectSpec{
		ResourceType: TypeBlock, Name: "gate", Width: 5, Height: 5, Position: pt(50, 50),
		Collision: &config.CollisionSpec{Team: "hero"},
	})
	w.spawn(config.ObjectSpec{
		ResourceType: TypeHazard, Width: 5, Height: 5,
		Collision: &config.CollisionSpec{Team: "hazard"},
		Signals:   []config.SignalSpec{{Kind: event.KindDestroy, Target: "gate"}},
	})
	w.spawn(config.ObjectSpec{
		ResourceType: TypeRegion, Name: "hero", Width: 5, Height: 5, Position: pt(2, 2),
		Collision: &config.CollisionSpec{Team: "hero"},
	})

	w.ctx.Frame(0.016, nil)
	_, ok := w.ctx.Find("gate")
	assert.False(t, ok, "gate destroyed by hazard signal")
}

func TestTriggerFiresOnce(t *testing.T) {
	w := newWorld(t, physics.Env{}, "hero", "zone")
	w.pair("zone", "hero")

	var fired int
	w.ctx.OnSignal("checkpoint", func(event.Event) { fired++ })

	zone := w.spawn(config.ObjectSpec{
		ResourceType: TypeTrigger, Width: 10, Height: 10,
		Collision: &config.CollisionSpec{Team: "zone"},
		Signals:   []config.SignalSpec{{Kind: "checkpoint"}},
	})
	w.spawn(config.ObjectSpec{
		ResourceType: TypeRegion, Width: 2, Height: 2, Position: pt(4, 4),
		Collision: &config.CollisionSpec{Team: "hero"},
	})

	for i := 0; i < 5; i++ {
		w.ctx.Frame(0.016, nil)
	}
	assert.Equal(t, 1, fired)
	assert.True(t, zone.Interactable.Exhausted())
	assert.False(t, zone.HasTexture())
}

func TestButtonClickEmitsSignals(t *testing.T) {
	w := newWorld(t, physics.Env{})

	var clicks int
	w.ctx.OnSignal("start", func(event.Event) { clicks++ })
	btn := w.spawn(config.ObjectSpec{
		ResourceType: TypeButton, Width: 4, Height: 2, Position: pt(2, 2),
		Signals: []config.SignalSpec{{Kind: "start"}},
	})
	assert.Equal(t, TypeButton, btn.Drawable.Resource)
	assert.Equal(t, 1, w.ctx.Input.Listeners(input.ActionClick))

	w.ctx.HandleEvent(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))
	w.ctx.Frame(0.016, nil)
	assert.Equal(t, component.ClickFocused, btn.Clickable.State())
	assert.Equal(t, "button.focused", btn.Drawable.Resource)

	w.ctx.HandleEvent(tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone))
	w.ctx.Frame(0.016, nil)
	assert.Equal(t, component.ClickDown, btn.Clickable.State())
	assert.Equal(t, "button.down", btn.Drawable.Resource)
	assert.Zero(t, clicks)

	w.ctx.HandleEvent(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone))
	w.ctx.Frame(0.016, nil)
	assert.Equal(t, 1, clicks)
	assert.Equal(t, component.ClickFocused, btn.Clickable.State())

	w.ctx.HandleEvent(tcell.NewEventMouse(40, 40, tcell.ButtonNone, tcell.ModNone))
	w.ctx.Frame(0.016, nil)
	assert.Equal(t, component.ClickNormal, btn.Clickable.State())
	assert.Equal(t, TypeButton, btn.Drawable.Resource)
}

func TestButtonCloneKeepsBase(t *testing.T) {
	w := newWorld(t, physics.Env{})
	btn := w.spawn(config.ObjectSpec{
		ResourceType: TypeButton, Width: 4, Height: 2,
		Texture: &config.TextureSpec{Resource: "play"},
	})
	h, err := w.ctx.SpawnClone("main", btn.Handle(), vmath.V2(10, 10))
	require.NoError(t, err)
	c, ok := w.ctx.Get(h)
	require.True(t, ok)
	assert.Equal(t, "play.down", c.Behavior.(*Button).Resource(component.ClickDown))
}
