package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeon-crawl/geom"
)

func TestMapIndexing(t *testing.T) {
	m := NewMap(10, 5, TileWall)

	require.Len(t, m.Tiles, 50)
	require.Len(t, m.Revealed, 50)
	assert.Equal(t, 23, m.Index(3, 2))
	assert.Equal(t, geom.Pt(3, 2), m.PointAt(23))

	_, ok := m.TryIndex(geom.Pt(10, 0))
	assert.False(t, ok)
	_, ok = m.TryIndex(geom.Pt(-1, 0))
	assert.False(t, ok)
	idx, ok := m.TryIndex(geom.Pt(9, 4))
	assert.True(t, ok)
	assert.Equal(t, 49, idx)
}

func TestCanEnterTile(t *testing.T) {
	m := NewMap(4, 4, TileWall)
	m.SetTile(geom.Pt(1, 1), TileFloor)

	assert.True(t, m.CanEnterTile(geom.Pt(1, 1)))
	assert.False(t, m.CanEnterTile(geom.Pt(2, 1)), "wall")
	assert.False(t, m.CanEnterTile(geom.Pt(-1, 1)), "out of bounds")
	assert.True(t, m.IsOpaque(geom.Pt(9, 9)), "out of bounds is opaque")
	assert.Equal(t, 1, m.FloorCount())

	m.Reveal(geom.Pt(1, 1))
	assert.True(t, m.IsRevealed(geom.Pt(1, 1)))
	assert.False(t, m.IsRevealed(geom.Pt(0, 0)))
}

func TestHealthHealCaps(t *testing.T) {
	h := Health{Current: 9, Max: 10}
	assert.Equal(t, 10, h.Healed(1).Current)
	assert.Equal(t, 10, h.Healed(5).Current)
	assert.True(t, h.Alive())
	assert.False(t, Health{Current: 0, Max: 3}.Alive())
}

func TestRegistrySpawnDespawn(t *testing.T) {
	reg := NewRegistry()

	goblin := reg.Spawn(Enemy{}, At(geom.Pt(2, 3)), Health{Current: 1, Max: 1}, Name("Goblin"))
	assert.True(t, reg.Alive(goblin))
	assert.Equal(t, "Goblin", reg.NameOf(goblin))

	found, ok := reg.EnemyAt(geom.Pt(2, 3))
	require.True(t, ok)
	assert.Equal(t, goblin, found)

	require.True(t, reg.Despawn(goblin))
	assert.False(t, reg.Alive(goblin))
	assert.False(t, reg.Positions.Has(goblin))
	_, ok = reg.LivingAt(geom.Pt(2, 3))
	assert.False(t, ok)
}

func TestRegistryMissingPlayer(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Player()
	assert.True(t, errors.Is(err, ErrMissingEntity))
	_, err = reg.Amulet()
	assert.ErrorIs(t, err, ErrMissingEntity)

	p := reg.Spawn(Player{}, At(geom.Pt(1, 1)))
	got, err := reg.Player()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestRenderablesNeedPosition(t *testing.T) {
	reg := NewRegistry()
	reg.Spawn(Render{Glyph: '@'}, At(geom.Pt(1, 1)))
	reg.Spawn(Render{Glyph: 'x'})

	rs := reg.Renderables()
	require.Len(t, rs, 1)
	assert.Equal(t, '@', rs[0].Render.Glyph)
}

func TestCommandBufferDefersUntilFlush(t *testing.T) {
	reg := NewRegistry()
	cb := NewCommandBuffer()

	e := reg.Spawn(At(geom.Pt(1, 1)), Health{Current: 3, Max: 3})
	cb.Attach(e, Health{Current: 2, Max: 3})
	cb.Spawn(WantsToMove{Entity: e, Destination: geom.Pt(2, 1)})

	h, _ := reg.Healths.Get(e)
	assert.Equal(t, 3, h.Current, "not applied before flush")
	assert.Equal(t, 0, reg.MoveRequests.Len())
	assert.Equal(t, 2, cb.Len())

	cb.Flush(reg)
	h, _ = reg.Healths.Get(e)
	assert.Equal(t, 2, h.Current)
	assert.Equal(t, 1, reg.MoveRequests.Len())
	assert.Equal(t, 0, cb.Len())
}

func TestCommandBufferLastStagedWins(t *testing.T) {
	reg := NewRegistry()
	cb := NewCommandBuffer()

	e := reg.Spawn(Health{Current: 5, Max: 5})
	cb.Attach(e, Health{Current: 4, Max: 5})
	cb.Attach(e, Health{Current: 1, Max: 5})
	cb.Flush(reg)

	h, _ := reg.Healths.Get(e)
	assert.Equal(t, 1, h.Current)
}

func TestCommandBufferSkipsDespawnedTargets(t *testing.T) {
	reg := NewRegistry()
	cb := NewCommandBuffer()

	e := reg.Spawn(Health{Current: 1, Max: 1})
	cb.Despawn(e)
	cb.Attach(e, Name("ghost"))
	cb.Despawn(e)
	cb.Flush(reg)

	assert.False(t, reg.Alive(e))
	assert.Equal(t, 0, reg.Names.Len())
	assert.Equal(t, 0, reg.Len())
}

func TestCommandBufferRemove(t *testing.T) {
	reg := NewRegistry()
	cb := NewCommandBuffer()

	msg := reg.Spawn(WantsToAttack{})
	cb.Remove(msg, WantsToAttack{})
	cb.Flush(reg)

	assert.True(t, reg.Alive(msg))
	assert.False(t, reg.Attacks.Has(msg))
}

func TestFieldOfViewStartsDirty(t *testing.T) {
	fov := NewFieldOfView(8)
	assert.True(t, fov.Dirty)
	assert.Equal(t, 0, fov.VisibleTiles.Size())
	fov.VisibleTiles.Put(geom.Pt(1, 1))
	assert.True(t, fov.CanSee(geom.Pt(1, 1)))
}
