package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/regolith/audio"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

func ptr[T any](v T) *T { return &v }

func TestInverseMassConsistency(t *testing.T) {
	for _, m := range []float64{-5, -vmath.Epsilon, 0, vmath.Epsilon / 2, vmath.Epsilon} {
		mv := NewMovable(m)
		assert.Equal(t, 0.0, mv.InverseMass(), "mass %v", m)
		assert.True(t, mv.Immovable())
	}
	for _, m := range []float64{vmath.Epsilon * 2, 0.5, 1, 2, 1e6} {
		mv := NewMovable(m)
		assert.Equal(t, 1/m, mv.InverseMass(), "mass %v", m)
		assert.False(t, mv.Immovable())
	}

	mv := NewMovable(4)
	mv.SetMass(0)
	assert.Equal(t, 0.0, mv.InverseMass())
	mv.SetMass(8)
	assert.Equal(t, 0.125, mv.InverseMass())
}

func TestMovableConfigureAndClone(t *testing.T) {
	mv := NewMovable(1)
	mv.Configure(&config.ObjectSpec{Mass: ptr(2.0), Velocity: &config.Point{1, 2}})
	assert.Equal(t, 0.5, mv.InverseMass())
	assert.Equal(t, vmath.V2(1, 2), mv.Velocity)

	c := mv.Clone()
	c.Velocity = vmath.V2(9, 9)
	c.SetMass(3)
	assert.Equal(t, vmath.V2(1, 2), mv.Velocity)
	assert.Equal(t, 2.0, mv.Mass())
}

func testTables() Tables {
	teams := core.NewNameTable[core.Team]()
	teams.Register("player")
	teams.Register("hazard")
	types := core.NewNameTable[core.CollisionType]()
	types.Register("solid")
	return Tables{Teams: teams, Types: types}
}

func TestCollidableConfigure(t *testing.T) {
	c := NewCollidable()
	assert.False(t, c.HasTeam())

	err := c.Configure(&config.CollisionSpec{
		Team:       "hazard",
		Type:       "solid",
		Active:     ptr(false),
		Elasticity: 0.8,
		Shape:      &config.ShapeSpec{Kind: "circle", Radius: 3, Offset: &config.Point{1, 1}},
	}, testTables())
	require.NoError(t, err)
	assert.True(t, c.HasTeam())
	assert.Equal(t, core.Team(2), c.Team())
	assert.Equal(t, core.CollisionType(1), c.Type)
	assert.False(t, c.Active)
	assert.Equal(t, ShapeCircle, c.Shape.Kind)
	assert.Equal(t, core.Rect{X: -2, Y: -2, W: 6, H: 6}, c.Shape.Bounds(vmath.Vec2{}, 10, 10))
}

func TestCollidableUnknownNames(t *testing.T) {
	err := NewCollidable().Configure(&config.CollisionSpec{Team: "ghosts"}, testTables())
	require.ErrorIs(t, err, core.ErrUnknownTeam)
	e, _ := core.AsError(err)
	v, ok := e.Detail("Team")
	require.True(t, ok)
	assert.Equal(t, "ghosts", v)
	assert.True(t, e.Recoverable)

	err = NewCollidable().Configure(&config.CollisionSpec{Team: "player", Type: "liquid"}, testTables())
	require.ErrorIs(t, err, core.ErrUnknownType)

	err = NewCollidable().Configure(&config.CollisionSpec{Shape: &config.ShapeSpec{Kind: "hexagon"}}, testTables())
	require.ErrorIs(t, err, core.ErrInvalidDocument)
}

func TestBoxShapeDefaultsToEntitySize(t *testing.T) {
	s := Shape{Kind: ShapeBox, Width: 4}
	assert.Equal(t, core.Rect{X: 1, Y: 2, W: 4, H: 8}, s.Bounds(vmath.V2(1, 2), 6, 8))
}

func TestDrawableConfigure(t *testing.T) {
	d := NewDrawable("wall")
	d.Configure(&config.TextureSpec{Resource: "brick", Clip: &[4]float64{0, 0, 2, 2}, Visible: ptr(false)})
	assert.Equal(t, "brick", d.Resource)
	assert.Equal(t, core.Rect{W: 2, H: 2}, d.Clip)
	assert.False(t, d.Visible)
	assert.Equal(t, core.Rect{X: 3, Y: 4, W: 5, H: 6}, d.Destination(vmath.V2(3, 4), 5, 6))
}

func TestInteractableLimit(t *testing.T) {
	i := NewInteractable(Signal{Kind: "a"}, Signal{Kind: "b"})
	i.SetLimit(2)

	var got []string
	emit := func(s Signal) { got = append(got, s.Kind) }

	assert.True(t, i.Trigger(emit))
	assert.True(t, i.Trigger(emit))
	assert.False(t, i.Trigger(emit))
	assert.True(t, i.Exhausted())
	assert.Equal(t, []string{"a", "b", "a", "b"}, got)
	assert.Equal(t, 2, i.Count())

	i.Reset()
	assert.False(t, i.Exhausted())

	i.SetLimit(-1)
	for range 5 {
		i.Trigger(emit)
	}
	assert.Equal(t, 5, i.Count())
}

func TestInteractableCloneIndependent(t *testing.T) {
	i := &Interactable{}
	i.Configure(&config.ObjectSpec{
		Signals:      []config.SignalSpec{{Kind: "spawn", Params: map[string]any{"prototype": "coin"}}},
		TriggerLimit: ptr(1),
	})
	c := i.Clone()
	c.Signals[0].Params["prototype"] = "gem"
	c.Trigger(func(Signal) {})

	assert.Equal(t, "coin", i.Signals[0].Params["prototype"])
	assert.Equal(t, 0, i.Count())
	assert.True(t, c.Exhausted())
}

func TestAudioEmitterPlaysRegisteredOnly(t *testing.T) {
	lib := audio.NewLibrary(8000)
	lib.Add("jump", audio.Tone{Frequency: 300, Duration: 10 * time.Millisecond, Volume: 1})
	lib.Add("land", audio.Tone{Frequency: 200, Duration: 10 * time.Millisecond, Volume: 1})
	out := &audio.NullOutput{}
	router := audio.NewRouter(lib, out, nil)

	a := NewAudioEmitter()
	a.Configure([]string{"jump", "jump"})
	assert.Len(t, a.Sounds(), 1)
	assert.False(t, a.Play("jump"), "detached emitter")

	a.Attach(router)
	assert.True(t, router.Controls(audio.IDFor("jump")))
	assert.True(t, a.Play("jump"))
	assert.False(t, a.Play("land"))
	assert.Equal(t, 1, out.Played())

	c := a.Clone()
	assert.Same(t, router, c.Router())
	c.Register("land")
	assert.False(t, a.Has("land"))
	assert.True(t, c.Play("land"))
}

func TestClickableTransitions(t *testing.T) {
	c := NewClickable()

	tr := c.Down()
	assert.Equal(t, Transition{From: ClickNormal, To: ClickDown}, tr)

	tr = c.Up()
	assert.True(t, tr.Clicked)
	assert.Equal(t, ClickFocused, c.State())

	tr = c.Up()
	assert.False(t, tr.Clicked)
	assert.Equal(t, ClickNormal, c.State())

	assert.True(t, c.GiveFocus().Changed())
	assert.False(t, c.GiveFocus().Changed())
	assert.True(t, c.TakeFocus().Changed())

	c.Deactivate()
	assert.Equal(t, ClickInactive, c.State())
	assert.False(t, c.Down().Changed())
	assert.False(t, c.Up().Clicked)
	assert.False(t, c.GiveFocus().Changed())

	assert.Equal(t, ClickNormal, c.Activate().To)
	assert.False(t, c.Activate().Changed())
}

func TestClickableConfigure(t *testing.T) {
	c := NewClickable()
	require.NoError(t, c.Configure("inactive"))
	assert.Equal(t, ClickInactive, c.State())
	require.NoError(t, c.Configure(""))
	assert.Equal(t, ClickInactive, c.State())

	err := c.Configure("hovered")
	require.ErrorIs(t, err, core.ErrInvalidDocument)
	assert.Equal(t, "focused", ClickFocused.String())
}
