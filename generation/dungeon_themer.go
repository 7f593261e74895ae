package generation

import (
	"image/color"

	"dungeon-crawl/components"
)

// Theme maps tile types to what the drawing layer shows. Themes carry no
// state.
type Theme int

const (
	ThemeDungeon Theme = iota
	ThemeForest
)

// Themes lists every theme in selection order
var Themes = []Theme{ThemeDungeon, ThemeForest}

func (t Theme) String() string {
	switch t {
	case ThemeForest:
		return "forest"
	default:
		return "dungeon"
	}
}

// TileGlyph returns the glyph for a tile type
func (t Theme) TileGlyph(tile components.TileType) rune {
	switch t {
	case ThemeForest:
		if tile == components.TileFloor {
			return ';'
		}
		return '"'
	default:
		if tile == components.TileFloor {
			return '.'
		}
		return '#'
	}
}

// TileColor returns the cell tint for a tile type
func (t Theme) TileColor(tile components.TileType) color.RGBA {
	switch t {
	case ThemeForest:
		if tile == components.TileFloor {
			return color.RGBA{110, 90, 50, 255} // Earth
		}
		return color.RGBA{34, 139, 34, 255} // Forest green
	default:
		if tile == components.TileFloor {
			return color.RGBA{64, 64, 64, 255} // Dark gray
		}
		return color.RGBA{128, 128, 128, 255} // Gray
	}
}
