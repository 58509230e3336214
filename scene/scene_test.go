package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/regolith/audio"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/objects"
	"github.com/lixenwraith/regolith/physics"
	"github.com/lixenwraith/regolith/registry"
	"github.com/lixenwraith/regolith/render"
	"github.com/lixenwraith/regolith/status"
	"github.com/lixenwraith/regolith/vmath"
)

const yard = `
name: yard
teams: [hero, ground, arena, pickup]
collision_types: [solid]
collision:
  collision_rules:
    - [hero, ground]
    - [pickup, hero]
  container_rules:
    - [arena, hero]
sounds:
  - {name: jump, wave: square, frequency: 440, duration_ms: 60}
  - {name: coin, wave: sine, frequency: 880, duration_ms: 60}
prototypes:
  - {resource_type: sprite, name: spark, width: 1, height: 1, texture: {resource: star}}
layers:
  - name: sky
    width: 160
    height: 24
    movement_scale: [0.5, 1]
    objects:
      - {resource_type: sprite, position: [3, 2], width: 1, height: 1, texture: {resource: star}}
  - name: world
    width: 160
    height: 24
    objects:
      - resource_type: region
        width: 160
        height: 24
        collision: {team: arena}
      - resource_type: block
        position: [0, 22]
        width: 160
        height: 2
        texture: {resource: wall}
        collision: {team: ground, type: solid}
      - resource_type: hazard
        name: coin
        position: [20, 20]
        width: 1
        height: 1
        texture: {resource: coin}
        collision: {team: pickup}
        trigger_limit: 1
        signals:
          - {kind: play_sound, params: {sound: coin}}
          - {kind: spawn, params: {prototype: spark, dy: -1}}
          - {kind: destroy}
      - resource_type: player
        name: hero
        position: [18, 19]
        width: 3
        height: 3
        texture: {resource: player}
        collision: {team: hero}
        sounds: [jump]
        params: {solid: solid}
camera:
  layer: world
  follow: hero
  width: 40
  height: 12
`

func newDeps() Deps {
	f := registry.NewFactory(nil)
	if err := objects.Register(f); err != nil {
		panic(err)
	}
	return Deps{
		Factory: f,
		Sounds:  audio.NewLibrary(audio.DefaultSampleRate),
		Output:  &audio.NullOutput{},
		Physics: physics.Env{Gravity: vmath.V2(0, 30)},
		Metrics: status.NewRegistry(),
	}
}

func decode(t *testing.T, doc string) *config.Scene {
	t.Helper()
	s, err := config.DecodeScene(strings.NewReader(doc))
	require.NoError(t, err)
	return s
}

func TestLoadBuildsContext(t *testing.T) {
	ctx, err := Load(decode(t, yard), newDeps())
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, "yard", ctx.Name)
	assert.Equal(t, 4, ctx.Teams.Len())
	assert.True(t, ctx.Collision.Sealed())
	assert.Len(t, ctx.Collision.CollisionPairs(), 2)
	assert.Len(t, ctx.Collision.ContainerPairs(), 1)
	assert.Equal(t, 5, ctx.Pool().Len())

	world, err := ctx.Layer("world")
	require.NoError(t, err)
	assert.Same(t, world, ctx.Lead())

	hero, ok := ctx.Find("hero")
	require.True(t, ok)
	assert.Equal(t, engine.CameraFollowing, world.Camera().Mode())
	assert.Equal(t, hero.Handle(), world.Camera().Target())
	assert.Equal(t, 40.0, world.Camera().Width)

	_, ok = ctx.Prototype("spark")
	assert.True(t, ok)
	assert.True(t, ctx.Audio.Controls(audio.IDFor("coin")))
}

func TestLoadedSceneRuns(t *testing.T) {
	deps := newDeps()
	ctx, err := Load(decode(t, yard), deps)
	require.NoError(t, err)
	defer ctx.Close()

	rec := &render.Recorder{}
	for i := 0; i < 30; i++ {
		ctx.Frame(1.0/30, rec)
	}

	_, ok := ctx.Find("coin")
	assert.False(t, ok, "coin collected on first contact")
	assert.Contains(t, rec.Resources(), "player")
	assert.Contains(t, rec.Resources(), "wall")
	assert.Equal(t, 2, countOf(rec.Resources(), "star"), "backdrop star and spawned spark")

	hero, ok := ctx.Find("hero")
	require.True(t, ok)
	assert.LessOrEqual(t, hero.Position.Y+hero.Height, 22.0+1e-9, "standing on the ground")
	assert.Equal(t, int64(30), deps.Metrics.Ints.Get(status.FrameCount).Load())
}

func countOf(xs []string, x string) int {
	n := 0
	for _, s := range xs {
		if s == x {
			n++
		}
	}
	return n
}

func TestUnknownResourceType(t *testing.T) {
	doc := decode(t, `
name: broken
layers:
  - name: main
    width: 10
    height: 10
    objects:
      - {resource_type: nonexistent}
`)
	ctx, err := Load(doc, newDeps())
	require.Nil(t, ctx)
	require.ErrorIs(t, err, core.ErrTypeNotFound)
	assert.True(t, core.IsRecoverable(err))

	e, _ := core.AsError(err)
	typeID, _ := e.Detail("TypeID")
	scene, _ := e.Detail("Scene")
	layer, _ := e.Detail("Layer")
	assert.Equal(t, "nonexistent", typeID)
	assert.Equal(t, "broken", scene)
	assert.Equal(t, "main", layer)
}

func TestUnknownTeamInRules(t *testing.T) {
	doc := decode(t, `
name: broken
teams: [a]
collision:
  collision_rules: [[a, b]]
layers: [{name: main, width: 10, height: 10}]
`)
	_, err := Load(doc, newDeps())
	require.ErrorIs(t, err, core.ErrUnknownTeam)
	e, _ := core.AsError(err)
	team, _ := e.Detail("Team")
	assert.Equal(t, "b", team)
}

func TestCameraTargetMustExist(t *testing.T) {
	doc := decode(t, `
name: lost
layers: [{name: main, width: 10, height: 10}]
camera: {layer: main, follow: nobody}
`)
	_, err := Load(doc, newDeps())
	require.ErrorIs(t, err, core.ErrInvalidDocument)
}

func TestMissingFactory(t *testing.T) {
	_, err := Load(decode(t, yard), Deps{})
	require.Error(t, err)
	assert.False(t, core.IsRecoverable(err))
}
