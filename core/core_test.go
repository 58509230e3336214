package core

import (
	"testing"

	"github.com/lixenwraith/regolith/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityPacking(t *testing.T) {
	e := MakeEntity(7, 3)
	assert.Equal(t, uint32(7), e.Index())
	assert.Equal(t, uint32(3), e.Generation())
	assert.False(t, e.IsNil())
	assert.True(t, NilEntity.IsNil())
	assert.Equal(t, "entity(7:3)", e.String())
}

func TestRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 50}

	assert.True(t, outer.Contains(Rect{X: 10, Y: 10, W: 10, H: 10}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(Rect{X: 95, Y: 10, W: 10, H: 10}))

	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Intersects(Rect{X: 5, Y: 0, W: 10, H: 10}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}), "touching edges")

	assert.Equal(t, vmath.V2(5, 5), a.Center())
	assert.Equal(t, Rect{X: 1, Y: 2, W: 10, H: 10}, a.Translate(vmath.V2(1, 2)))
	assert.True(t, a.ContainsPoint(vmath.V2(0, 0)))
	assert.False(t, a.ContainsPoint(vmath.V2(10, 0)))
}

func TestNameTable(t *testing.T) {
	teams := NewNameTable[Team]()

	player := teams.Register("player")
	hazard := teams.Register("hazard")
	require.Equal(t, Team(1), player)
	require.Equal(t, Team(2), hazard)
	assert.Equal(t, player, teams.Register("player"), "re-registration returns the same id")

	id, ok := teams.Lookup("hazard")
	assert.True(t, ok)
	assert.Equal(t, hazard, id)

	_, ok = teams.Lookup("ghost")
	assert.False(t, ok)

	assert.Equal(t, "player", teams.Name(player))
	assert.Equal(t, "", teams.Name(Team(99)))
	assert.Equal(t, 2, teams.Len())
	assert.Equal(t, []string{"player", "hazard"}, teams.Names())
}

func TestNilNameTable(t *testing.T) {
	var teams *NameTable[Team]
	_, ok := teams.Lookup("player")
	assert.False(t, ok)
	assert.Equal(t, "", teams.Name(1))
	assert.Zero(t, teams.Len())
	assert.Empty(t, teams.Names())
}
