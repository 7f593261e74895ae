package components

import (
	"image/color"

	"github.com/zyedidia/generic/mapset"

	"dungeon-crawl/ecs"
	"dungeon-crawl/geom"
)

// Position is where an entity stands on the map
type Position struct {
	geom.Point
}

// At creates a position component
func At(p geom.Point) Position {
	return Position{Point: p}
}

// Health stores an entity's hit points
type Health struct {
	Current int
	Max     int
}

// Alive reports whether the entity still has hit points left
func (h Health) Alive() bool {
	return h.Current >= 1
}

// Healed returns h raised by amount, capped at Max
func (h Health) Healed(amount int) Health {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h
}

// Render stores what the drawing layer needs for an entity
type Render struct {
	Color color.RGBA
	Glyph rune
}

// Player indicates that an entity is controlled by the player
type Player struct{}

// Enemy marks hostile entities
type Enemy struct{}

// Item marks things that can be picked up
type Item struct{}

// AmuletOfYala marks the win-condition item
type AmuletOfYala struct{}

// MovingRandomly marks monsters that wander
type MovingRandomly struct{}

// ChasingPlayer marks monsters that walk the flow field toward the player
type ChasingPlayer struct{}

// FieldOfView stores what an entity can currently see
type FieldOfView struct {
	VisibleTiles mapset.Set[geom.Point]
	Radius       int
	Dirty        bool
}

// NewFieldOfView creates an empty, dirty field of view
func NewFieldOfView(radius int) FieldOfView {
	return FieldOfView{
		VisibleTiles: mapset.New[geom.Point](),
		Radius:       radius,
		Dirty:        true,
	}
}

// CanSee reports whether p is in the visible set
func (f FieldOfView) CanSee(p geom.Point) bool {
	return f.VisibleTiles.Has(p)
}

// WantsToMove is a message asking the movement system to relocate an entity
type WantsToMove struct {
	Entity      ecs.Entity
	Destination geom.Point
}

// WantsToAttack is a message asking the combat system to resolve one hit
type WantsToAttack struct {
	Attacker ecs.Entity
	Victim   ecs.Entity
}
