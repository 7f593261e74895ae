package generation

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/geom"
	"dungeon-crawl/rng"
)

var (
	// ErrGenerationExhausted is returned when an architect runs out of
	// attempts before producing a usable map
	ErrGenerationExhausted = errors.New("map generation exhausted")
	// ErrSpawnExhausted is returned when fewer spawn candidates exist than
	// were requested
	ErrSpawnExhausted = errors.New("not enough spawn candidates")
)

// Architect identifies a map generation strategy
type Architect int

const (
	ArchitectEmpty Architect = iota
	ArchitectRooms
	ArchitectDrunkardsWalk
	ArchitectCellularAutomata
)

func (a Architect) String() string {
	switch a {
	case ArchitectRooms:
		return "rooms"
	case ArchitectDrunkardsWalk:
		return "drunkards-walk"
	case ArchitectCellularAutomata:
		return "cellular-automata"
	default:
		return "empty"
	}
}

// DungeonGenerator handles procedural generation of dungeon layouts
type DungeonGenerator struct {
	cfg    config.Game
	rng    *rng.RNG
	logger *slog.Logger
}

// NewDungeonGenerator creates a generator that draws from r
func NewDungeonGenerator(cfg config.Game, r *rng.RNG) *DungeonGenerator {
	return &DungeonGenerator{
		cfg:    cfg,
		rng:    r,
		logger: slog.New(slog.DiscardHandler),
	}
}

// SetLogger replaces the diagnostics logger, which discards by default
func (g *DungeonGenerator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Build runs a single architect
func (g *DungeonGenerator) Build(kind Architect) (*MapBuilder, error) {
	switch kind {
	case ArchitectRooms:
		return g.GenerateRoomsAndCorridors()
	case ArchitectDrunkardsWalk:
		return g.GenerateDrunkardsWalk()
	case ArchitectCellularAutomata:
		return g.GenerateCellularDungeon()
	case ArchitectEmpty:
		return g.GenerateEmpty(), nil
	default:
		return nil, fmt.Errorf("unknown architect %d", kind)
	}
}

func (g *DungeonGenerator) newBuilder(kind Architect) *MapBuilder {
	return &MapBuilder{
		Map:       components.NewMap(g.cfg.MapWidth, g.cfg.MapHeight, components.TileWall),
		Architect: kind,
	}
}

// interior reports whether p lies inside the one-tile wall border
func (g *DungeonGenerator) interior(p geom.Point) bool {
	return p.X >= 1 && p.X < g.cfg.MapWidth-1 && p.Y >= 1 && p.Y < g.cfg.MapHeight-1
}

func (g *DungeonGenerator) center() geom.Point {
	return geom.Pt(g.cfg.MapWidth/2, g.cfg.MapHeight/2)
}

// GenerateEmpty creates an open floor surrounded by a wall border
func (g *DungeonGenerator) GenerateEmpty() *MapBuilder {
	mb := g.newBuilder(ArchitectEmpty)
	mb.Map.Fill(components.TileFloor)
	for x := 0; x < g.cfg.MapWidth; x++ {
		mb.Map.SetTile(geom.Pt(x, 0), components.TileWall)
		mb.Map.SetTile(geom.Pt(x, g.cfg.MapHeight-1), components.TileWall)
	}
	for y := 0; y < g.cfg.MapHeight; y++ {
		mb.Map.SetTile(geom.Pt(0, y), components.TileWall)
		mb.Map.SetTile(geom.Pt(g.cfg.MapWidth-1, y), components.TileWall)
	}
	mb.PlayerStart = g.center()
	return mb
}

// GenerateRoomsAndCorridors places non-overlapping rooms and joins them with
// L-shaped corridors in order of their centres' x coordinate
func (g *DungeonGenerator) GenerateRoomsAndCorridors() (*MapBuilder, error) {
	mb := g.newBuilder(ArchitectRooms)

	attempts := 0
	for len(mb.Rooms) < g.cfg.RoomCount {
		if attempts >= g.cfg.RoomAttempts {
			return nil, fmt.Errorf("placed %d of %d rooms in %d attempts: %w",
				len(mb.Rooms), g.cfg.RoomCount, attempts, ErrGenerationExhausted)
		}
		attempts++

		room := geom.WithSize(
			g.rng.Range(1, g.cfg.MapWidth-10),
			g.rng.Range(1, g.cfg.MapHeight-10),
			g.rng.Range(2, 10),
			g.rng.Range(2, 10),
		)

		overlap := false
		for _, r := range mb.Rooms {
			if r.Intersect(room) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		room.Each(func(p geom.Point) {
			if g.interior(p) {
				mb.Map.SetTile(p, components.TileFloor)
			}
		})
		mb.Rooms = append(mb.Rooms, room)
	}

	g.connectRooms(mb)
	mb.PlayerStart = mb.Rooms[0].Center()
	return mb, nil
}

// connectRooms joins each room to the previous one in centre-x order
func (g *DungeonGenerator) connectRooms(mb *MapBuilder) {
	rooms := make([]geom.Rect, len(mb.Rooms))
	copy(rooms, mb.Rooms)
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Center().X < rooms[j].Center().X
	})

	for i := 1; i < len(rooms); i++ {
		prev := rooms[i-1].Center()
		next := rooms[i].Center()
		if g.rng.CoinFlip() {
			g.createHorizontalCorridor(mb.Map, prev.X, next.X, prev.Y)
			g.createVerticalCorridor(mb.Map, prev.Y, next.Y, next.X)
		} else {
			g.createVerticalCorridor(mb.Map, prev.Y, next.Y, prev.X)
			g.createHorizontalCorridor(mb.Map, prev.X, next.X, next.Y)
		}
	}
}

// createHorizontalCorridor carves floor from x1 to x2 inclusive along y
func (g *DungeonGenerator) createHorizontalCorridor(m *components.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(geom.Pt(x, y), components.TileFloor)
	}
}

// createVerticalCorridor carves floor from y1 to y2 inclusive along x
func (g *DungeonGenerator) createVerticalCorridor(m *components.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(geom.Pt(x, y), components.TileFloor)
	}
}
