package systems

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/ecs"
	"dungeon-crawl/geom"
	"dungeon-crawl/rng"
)

type fixture struct {
	w      *World
	player ecs.Entity
	amulet ecs.Entity
	// monsters in row-major order of the layout
	monsters []ecs.Entity
}

// newFixture builds a world from a layout. '#' is wall and everything else
// floor; '@' is the player, 'A' the amulet, 'g' a wandering goblin and 'o' a
// chasing orc.
func newFixture(t *testing.T, rows ...string) *fixture {
	t.Helper()

	cfg := config.Default()
	cfg.MapWidth, cfg.MapHeight = len(rows[0]), len(rows)
	m := components.NewMap(cfg.MapWidth, cfg.MapHeight, components.TileWall)

	w := NewWorld(cfg, m, rng.New(1))
	SubscribeNarration(w.Events, w.Log)
	f := &fixture{w: w}
	reg := w.Registry

	for y, row := range rows {
		for x, c := range row {
			p := geom.Pt(x, y)
			if c != '#' {
				m.SetTile(p, components.TileFloor)
			}
			switch c {
			case '@':
				f.player = reg.Spawn(components.Player{}, components.At(p),
					components.Health{Current: 10, Max: 10}, components.Name("Player"),
					components.NewFieldOfView(cfg.PlayerFOVRadius))
			case 'A':
				f.amulet = reg.Spawn(components.Item{}, components.AmuletOfYala{}, components.At(p),
					components.Name("Amulet of Yala"))
			case 'g':
				f.monsters = append(f.monsters, reg.Spawn(components.Enemy{}, components.MovingRandomly{},
					components.At(p), components.Health{Current: 1, Max: 1}, components.Name("Goblin"),
					components.NewFieldOfView(cfg.MonsterFOVRadius)))
			case 'o':
				f.monsters = append(f.monsters, reg.Spawn(components.Enemy{}, components.ChasingPlayer{},
					components.At(p), components.Health{Current: 2, Max: 2}, components.Name("Orc"),
					components.NewFieldOfView(cfg.MonsterFOVRadius)))
			}
		}
	}
	return f
}

func (f *fixture) run(t *testing.T, s *Schedule, key Key) {
	t.Helper()
	f.w.Key = key
	require.NoError(t, s.Run(f.w))
}

func (f *fixture) health(e ecs.Entity) int {
	h, _ := f.w.Registry.Healths.Get(e)
	return h.Current
}

func (f *fixture) pos(e ecs.Entity) geom.Point {
	p, _ := f.w.Registry.PositionOf(e)
	return p
}

func (f *fixture) logText() []string {
	var out []string
	for _, m := range f.w.Log.Messages {
		out = append(out, m.Text)
	}
	return out
}

func TestWaitingHealsAndStays(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@...A#",
		"#######",
	)
	f.w.Registry.Healths.GetPtr(f.player).Current = 5

	f.run(t, InputSchedule(), KeyNone)
	assert.Equal(t, AwaitingInput, f.w.State)
	assert.Equal(t, 6, f.health(f.player))

	f.run(t, InputSchedule(), KeyOther)
	assert.Equal(t, AwaitingInput, f.w.State)
	assert.Equal(t, 7, f.health(f.player))

	f.w.Registry.Healths.GetPtr(f.player).Current = 10
	f.run(t, InputSchedule(), KeyNone)
	assert.Equal(t, 10, f.health(f.player), "healing caps at max")
	assert.Equal(t, 0, f.w.Registry.MoveRequests.Len()+f.w.Registry.Attacks.Len())
}

func TestMoveRightFullCycle(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@...A#",
		"#######",
	)

	f.run(t, InputSchedule(), KeyRight)
	assert.Equal(t, PlayerTurn, f.w.State)
	require.Equal(t, 1, f.w.Registry.MoveRequests.Len())
	msg := f.w.Registry.MoveRequests.Entities()[0]
	move, _ := f.w.Registry.MoveRequests.Get(msg)
	assert.Equal(t, components.WantsToMove{Entity: f.player, Destination: geom.Pt(2, 1)}, move)
	assert.Equal(t, geom.Pt(1, 1), f.pos(f.player), "nothing moves before resolution")

	f.run(t, PlayerSchedule(), KeyNone)
	assert.Equal(t, geom.Pt(2, 1), f.pos(f.player))
	assert.Equal(t, MonsterTurn, f.w.State)
	assert.Equal(t, 0, f.w.Registry.MoveRequests.Len())
	assert.Equal(t, 2, f.w.Registry.Len(), "message entities are gone")

	f.run(t, MonsterSchedule(), KeyNone)
	assert.Equal(t, AwaitingInput, f.w.State)
	assert.Equal(t, 10, f.health(f.player))
}

func TestBumpingWallDropsMessage(t *testing.T) {
	f := newFixture(t,
		"#####",
		"#@.A#",
		"#####",
	)

	f.run(t, InputSchedule(), KeyUp)
	assert.Equal(t, PlayerTurn, f.w.State)

	f.run(t, PlayerSchedule(), KeyNone)
	assert.Equal(t, geom.Pt(1, 1), f.pos(f.player))
	assert.Equal(t, 0, f.w.Registry.MoveRequests.Len())
	assert.Equal(t, MonsterTurn, f.w.State)
}

func TestPlayerKillsGoblin(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@g..A#",
		"#######",
	)
	goblin := f.monsters[0]

	f.run(t, InputSchedule(), KeyRight)
	require.Equal(t, 1, f.w.Registry.Attacks.Len())
	assert.Equal(t, 0, f.w.Registry.MoveRequests.Len())

	f.run(t, PlayerSchedule(), KeyNone)
	assert.False(t, f.w.Registry.Alive(goblin))
	assert.Equal(t, 0, f.w.Registry.Attacks.Len())
	assert.Equal(t, geom.Pt(1, 1), f.pos(f.player), "attacking does not move")
	assert.Equal(t, MonsterTurn, f.w.State)

	assert.Contains(t, f.logText(), "Player hits Goblin for 1 damage.")
	assert.Contains(t, f.logText(), "Goblin dies.")
}

func TestAttackOnPlayerIsNotFatal(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@g..A#",
		"#######",
	)
	f.w.Registry.Healths.GetPtr(f.player).Current = 5
	f.w.Registry.Spawn(components.WantsToAttack{Attacker: f.monsters[0], Victim: f.player})
	f.w.State = PlayerTurn

	f.run(t, PlayerSchedule(), KeyNone)
	assert.Equal(t, 4, f.health(f.player))
	assert.True(t, f.w.Registry.Alive(f.player))
	assert.Equal(t, MonsterTurn, f.w.State)
	assert.Equal(t, 0, f.w.Registry.Attacks.Len())
}

func TestPlayerDeathEndsGame(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@...A#",
		"#######",
	)
	f.w.Registry.Healths.GetPtr(f.player).Current = 0
	f.w.State = PlayerTurn

	f.run(t, PlayerSchedule(), KeyNone)
	assert.Equal(t, GameOver, f.w.State)
	assert.True(t, f.w.Registry.Alive(f.player), "the player is never despawned")

	// Terminal states stay put
	f.run(t, PlayerSchedule(), KeyNone)
	assert.Equal(t, GameOver, f.w.State)
}

func TestReachingAmuletWins(t *testing.T) {
	f := newFixture(t,
		"#####",
		"#@A.#",
		"#####",
	)

	f.run(t, InputSchedule(), KeyRight)
	require.Equal(t, 1, f.w.Registry.MoveRequests.Len(), "the amulet is not attacked")

	f.run(t, PlayerSchedule(), KeyNone)
	assert.Equal(t, f.pos(f.amulet), f.pos(f.player))
	assert.Equal(t, Victory, f.w.State)
}

func TestEndTurnSkippedWhileAwaitingInput(t *testing.T) {
	f := newFixture(t,
		"#####",
		"#@A.#",
		"#####",
	)
	f.w.Registry.Healths.GetPtr(f.player).Current = 0

	require.NoError(t, NewEndTurnSystem().Update(f.w))
	assert.Equal(t, AwaitingInput, f.w.State)
}

func TestMissingEntitiesFailFast(t *testing.T) {
	f := newFixture(t,
		"#####",
		"#..A#",
		"#####",
	)
	f.w.Key = KeyRight
	err := InputSchedule().Run(f.w)
	assert.True(t, errors.Is(err, components.ErrMissingEntity))

	g := newFixture(t,
		"#####",
		"#@..#",
		"#####",
	)
	g.w.State = PlayerTurn
	err = PlayerSchedule().Run(g.w)
	assert.ErrorIs(t, err, components.ErrMissingEntity)
}

// flushMessages applies the staged commands and returns the messages they
// created, removing them again so the next decision starts clean
func (f *fixture) flushMessages() ([]components.WantsToMove, []components.WantsToAttack) {
	reg := f.w.Registry
	f.w.Commands.Flush(reg)

	var moves []components.WantsToMove
	var attacks []components.WantsToAttack
	for _, msg := range reg.MoveRequests.Entities() {
		m, _ := reg.MoveRequests.Get(msg)
		moves = append(moves, m)
		reg.Despawn(msg)
	}
	for _, msg := range reg.Attacks.Entities() {
		a, _ := reg.Attacks.Get(msg)
		attacks = append(attacks, a)
		reg.Despawn(msg)
	}
	return moves, attacks
}

func TestRandomMoveDecisions(t *testing.T) {
	f := newFixture(t,
		"#####",
		"#@g##",
		"#####",
	)
	goblin := f.monsters[0]
	sys := NewRandomMoveSystem()

	attacks, moves := 0, 0
	for i := 0; i < 60; i++ {
		require.NoError(t, sys.Update(f.w))
		staged, hits := f.flushMessages()
		require.Equal(t, 1, len(staged)+len(hits), "one decision per wanderer")

		for _, a := range hits {
			assert.Equal(t, components.WantsToAttack{Attacker: goblin, Victim: f.player}, a)
			attacks++
		}
		for _, m := range staged {
			assert.Equal(t, goblin, m.Entity)
			assert.NotEqual(t, f.pos(f.player), m.Destination)
			moves++
		}
	}
	assert.Positive(t, attacks)
	assert.Positive(t, moves)
	assert.Equal(t, geom.Pt(2, 1), f.pos(goblin), "deciding does not move")
}

func TestRandomMoveNeverAttacksMonsters(t *testing.T) {
	f := newFixture(t,
		"######",
		"#gg#@#",
		"######",
	)
	sys := NewRandomMoveSystem()

	for i := 0; i < 40; i++ {
		require.NoError(t, sys.Update(f.w))
		staged, hits := f.flushMessages()
		assert.Empty(t, hits)
		for _, move := range staged {
			other := f.monsters[0]
			if move.Entity == other {
				other = f.monsters[1]
			}
			assert.NotEqual(t, f.pos(other), move.Destination, "steps into a monster are dropped")
		}
	}
}

func TestChaserStepsTowardPlayer(t *testing.T) {
	f := newFixture(t,
		"##########",
		"#@.....o##",
		"########A#",
	)
	orc := f.monsters[0]
	f.w.State = MonsterTurn

	f.run(t, MonsterSchedule(), KeyNone)
	assert.Equal(t, geom.Pt(6, 1), f.pos(orc))
	assert.Equal(t, AwaitingInput, f.w.State)
	assert.Equal(t, 10, f.health(f.player))
}

func TestAdjacentChaserAttacks(t *testing.T) {
	f := newFixture(t,
		"######",
		"#@o.A#",
		"######",
	)
	orc := f.monsters[0]
	f.w.State = MonsterTurn

	f.run(t, MonsterSchedule(), KeyNone)
	assert.Equal(t, geom.Pt(2, 1), f.pos(orc))
	assert.Equal(t, 9, f.health(f.player))
	assert.Contains(t, f.logText(), "Orc hits you for 1 damage.")
}

func TestUnreachableChaserStays(t *testing.T) {
	f := newFixture(t,
		"#########",
		"#@.A#.o.#",
		"#########",
	)
	orc := f.monsters[0]
	f.w.State = MonsterTurn

	f.run(t, MonsterSchedule(), KeyNone)
	assert.Equal(t, geom.Pt(6, 1), f.pos(orc))
	assert.Equal(t, AwaitingInput, f.w.State)
}

func TestChasersDecideFromSnapshot(t *testing.T) {
	f := newFixture(t,
		"##########",
		"#@..oo..A#",
		"##########",
	)
	front, back := f.monsters[0], f.monsters[1]
	f.w.State = MonsterTurn

	f.run(t, MonsterSchedule(), KeyNone)
	assert.Equal(t, geom.Pt(3, 1), f.pos(front))
	assert.Equal(t, geom.Pt(5, 1), f.pos(back), "the tile ahead was occupied when it decided")
}

func TestVisibleTiles(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#.....#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	m := f.w.Map
	origin := geom.Pt(1, 2)

	vis := VisibleTiles(m, origin, 8)
	assert.True(t, vis.Has(origin))
	assert.True(t, vis.Has(geom.Pt(2, 2)))
	assert.True(t, vis.Has(geom.Pt(3, 2)), "walls are visible when struck")
	assert.False(t, vis.Has(geom.Pt(4, 2)), "tiles behind a wall are hidden")
	assert.False(t, vis.Has(geom.Pt(5, 2)))
	assert.True(t, vis.Has(geom.Pt(0, 2)))

	small := VisibleTiles(m, origin, 1)
	assert.True(t, small.Has(geom.Pt(2, 2)))
	assert.False(t, small.Has(geom.Pt(3, 2)), "outside the radius")
	assert.False(t, small.Has(geom.Pt(2, 1)), "diagonal is farther than 1")
}

func TestFOVSystemRecomputesDirtyAndReveals(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@..#.#",
		"#######",
	)
	require.NoError(t, NewFOVSystem().Update(f.w))

	fov, _ := f.w.Registry.FOVs.Get(f.player)
	assert.False(t, fov.Dirty)
	assert.True(t, fov.CanSee(geom.Pt(3, 1)))
	assert.False(t, fov.CanSee(geom.Pt(5, 1)))
	assert.True(t, f.w.Map.IsRevealed(geom.Pt(4, 1)))
	assert.False(t, f.w.Map.IsRevealed(geom.Pt(5, 1)))

	// A clean view is not recomputed even if the map changes
	f.w.Map.SetTile(geom.Pt(4, 1), components.TileFloor)
	require.NoError(t, NewFOVSystem().Update(f.w))
	fov, _ = f.w.Registry.FOVs.Get(f.player)
	assert.False(t, fov.CanSee(geom.Pt(5, 1)))
}

func TestMovementMarksViewDirty(t *testing.T) {
	f := newFixture(t,
		"######",
		"#@..A#",
		"######",
	)
	require.NoError(t, NewFOVSystem().Update(f.w))

	f.w.Registry.Spawn(components.WantsToMove{Entity: f.player, Destination: geom.Pt(2, 1)})
	require.NoError(t, NewMovementSystem().Update(f.w))
	f.w.Commands.Flush(f.w.Registry)

	fov, _ := f.w.Registry.FOVs.Get(f.player)
	assert.True(t, fov.Dirty)
	assert.Equal(t, geom.Pt(2, 1), f.pos(f.player))
}

func TestMovementSkipsDeadEntities(t *testing.T) {
	f := newFixture(t,
		"######",
		"#@g.A#",
		"######",
	)
	goblin := f.monsters[0]
	f.w.Registry.Spawn(components.WantsToMove{Entity: goblin, Destination: geom.Pt(3, 1)})
	f.w.Registry.Despawn(goblin)

	require.NoError(t, NewMovementSystem().Update(f.w))
	f.w.Commands.Flush(f.w.Registry)
	assert.Equal(t, 0, f.w.Registry.MoveRequests.Len())
	assert.Equal(t, 2, f.w.Registry.Len())
}

func TestScheduleOrder(t *testing.T) {
	assert.Equal(t, []string{"player_input", "flush", "fov", "flush", "camera"}, InputSchedule().Steps())
	assert.Equal(t, []string{"combat", "flush", "movement", "flush", "fov", "flush", "camera", "end_turn"},
		PlayerSchedule().Steps())
	assert.Equal(t, []string{"random_move", "chasing", "flush", "combat", "flush", "movement", "flush",
		"fov", "flush", "camera", "end_turn"}, MonsterSchedule().Steps())
}

func TestViewportClamps(t *testing.T) {
	v := NewViewport(40, 25)

	v.CenterOn(geom.Pt(5, 5), 80, 50)
	assert.Equal(t, 0, v.X)
	assert.Equal(t, 0, v.Y)

	v.CenterOn(geom.Pt(79, 49), 80, 50)
	assert.Equal(t, 40, v.X)
	assert.Equal(t, 25, v.Y)

	v.CenterOn(geom.Pt(40, 25), 80, 50)
	assert.Equal(t, 20, v.X)
	assert.Equal(t, 13, v.Y)

	assert.True(t, v.Contains(geom.Pt(20, 13)))
	assert.False(t, v.Contains(geom.Pt(60, 13)))
	assert.Equal(t, geom.Pt(1, 2), v.ToScreen(geom.Pt(21, 15)))
	assert.Equal(t, geom.Pt(21, 15), v.ToMap(geom.Pt(1, 2)))
}

func TestDescribe(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@g..A#",
		"#######",
	)
	assert.Empty(t, Describe(f.w.Registry, geom.Pt(2, 1)), "nothing is visible yet")

	require.NoError(t, NewFOVSystem().Update(f.w))
	assert.Equal(t, []string{"Goblin : 1 hp"}, Describe(f.w.Registry, geom.Pt(2, 1)))
	assert.Equal(t, []string{"Amulet of Yala"}, Describe(f.w.Registry, geom.Pt(5, 1)))
	assert.Empty(t, Describe(f.w.Registry, geom.Pt(3, 1)))
}

func TestMessageLogKeepsNewest(t *testing.T) {
	log := NewMessageLog()
	for i := 0; i < 105; i++ {
		log.Add(string(rune('a' + i%26)))
	}
	assert.Len(t, log.Messages, 100)

	recent := log.RecentMessages(2)
	require.Len(t, recent, 2)
	assert.Equal(t, string(rune('a'+104%26)), recent[0].Text)
	assert.Len(t, log.RecentMessages(500), 100)
}

func TestNarrationIsColoredByType(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@g..A#",
		"#######",
	)
	f.run(t, InputSchedule(), KeyRight)
	f.run(t, PlayerSchedule(), KeyNone)

	recent := f.w.Log.RecentMessages(2)
	require.Len(t, recent, 2)
	assert.Equal(t, MessageTypeCombat, recent[0].Type)
	assert.Equal(t, color.RGBA{255, 100, 100, 255}, recent[0].GetColor())

	f.w.Registry.Healths.GetPtr(f.player).Current = 0
	f.w.State = PlayerTurn
	f.run(t, PlayerSchedule(), KeyNone)
	alert := f.w.Log.RecentMessages(1)[0]
	assert.Equal(t, MessageTypeAlert, alert.Type)
	assert.NotEqual(t, recent[0].GetColor(), alert.GetColor())
	assert.NotEqual(t, ColoredMessage{}.GetColor(), alert.GetColor())
}

func TestTurnStateEventsNarrate(t *testing.T) {
	f := newFixture(t,
		"#######",
		"#@...A#",
		"#######",
	)
	var seen []TurnState
	f.w.Events.Subscribe(EventTurnState, func(e ecs.Event) {
		seen = append(seen, e.(TurnStateEvent).To)
	})

	f.run(t, InputSchedule(), KeyRight)
	f.run(t, PlayerSchedule(), KeyNone)
	f.run(t, MonsterSchedule(), KeyNone)
	assert.Equal(t, []TurnState{PlayerTurn, MonsterTurn, AwaitingInput}, seen)
}
