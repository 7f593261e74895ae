package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeon-crawl/config"
	"dungeon-crawl/engine"
	"dungeon-crawl/geom"
	"dungeon-crawl/systems"
)

var keyBindings = map[ebiten.Key]systems.Key{
	ebiten.KeyArrowLeft:  systems.KeyLeft,
	ebiten.KeyArrowRight: systems.KeyRight,
	ebiten.KeyArrowUp:    systems.KeyUp,
	ebiten.KeyArrowDown:  systems.KeyDown,
	ebiten.KeyH:          systems.KeyLeft,
	ebiten.KeyL:          systems.KeyRight,
	ebiten.KeyK:          systems.KeyUp,
	ebiten.KeyJ:          systems.KeyDown,
	ebiten.KeyEnter:      systems.KeyConfirm,
}

var hudBackground = color.RGBA{12, 12, 12, 255}

// dim darkens remembered tiles that are out of sight
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 3, c.G / 3, c.B / 3, c.A}
}

// Game implements ebiten.Game interface.
type Game struct {
	state *engine.State
	keys  []ebiten.Key
}

// NewGame creates a new game instance
func NewGame(state *engine.State) *Game {
	return &Game{state: state}
}

// Update reads one key press and advances the simulation. The player's turn
// only starts on a key press; the resolution states run on their own.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])

	key := systems.KeyNone
	if len(g.keys) > 0 {
		key = systems.KeyOther
		if k, ok := keyBindings[g.keys[0]]; ok {
			key = k
		}
	}

	if key == systems.KeyNone && g.state.TurnState() == systems.AwaitingInput {
		return nil
	}
	return g.state.Tick(key)
}

// Draw prints the viewport as text, then the HUD below it
func (g *Game) Draw(screen *ebiten.Image) {
	m := g.state.Map()
	theme := g.state.Theme()
	vp := g.state.Viewport()
	fov, _ := g.state.PlayerFOV()

	for sy := 0; sy < vp.Height; sy++ {
		for sx := 0; sx < vp.Width; sx++ {
			p := vp.ToMap(geom.Pt(sx, sy))
			if !m.InBounds(p) || !m.IsRevealed(p) {
				continue
			}
			px, py := sx*config.TileSize, sy*config.TileSize
			tint := theme.TileColor(m.Tile(p))
			if !fov.CanSee(p) {
				tint = dim(tint)
			}
			vector.DrawFilledRect(screen, float32(px), float32(py),
				config.TileSize, config.TileSize, tint, false)
			ebitenutil.DebugPrintAt(screen, string(theme.TileGlyph(m.Tile(p))), px+4, py)
		}
	}

	for _, r := range g.state.Renderables() {
		if !fov.CanSee(r.Position) || !vp.Contains(r.Position) {
			continue
		}
		sp := vp.ToScreen(r.Position)
		px, py := sp.X*config.TileSize, sp.Y*config.TileSize
		vector.DrawFilledRect(screen, float32(px), float32(py),
			config.TileSize, config.TileSize, r.Render.Color, false)
		ebitenutil.DebugPrintAt(screen, string(r.Render.Glyph), px+4, py)
	}

	g.drawHUD(screen, vp)
}

func (g *Game) drawHUD(screen *ebiten.Image, vp systems.Viewport) {
	top := vp.Height * config.TileSize
	w, _ := config.GetScreenDimensions()
	vector.DrawFilledRect(screen, 0, float32(top), float32(w),
		config.HUDRows*config.TileSize, hudBackground, false)

	health, _ := g.state.PlayerHealth()
	status := fmt.Sprintf("HP %d/%d  %s  %s/%s", health.Current, health.Max,
		g.state.TurnState(), g.state.Architect(), g.state.Theme())
	ebitenutil.DebugPrintAt(screen, status, 4, top)

	line := 1
	cx, cy := ebiten.CursorPosition()
	hover := vp.ToMap(geom.Pt(cx/config.TileSize, cy/config.TileSize))
	if cy < top {
		for _, tip := range g.state.Describe(hover) {
			ebitenutil.DebugPrintAt(screen, tip, 4, top+line*config.TileSize)
			line++
		}
	}

	for _, msg := range g.state.Messages(max(0, config.HUDRows-line)) {
		y := top + line*config.TileSize
		vector.DrawFilledRect(screen, 0, float32(y+2), 4, config.TileSize-4, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 8, y)
		line++
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
