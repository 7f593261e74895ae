package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Map dimensions in tiles
	MapWidth  = 80
	MapHeight = 50

	// Viewport dimensions in tiles
	DisplayWidth  = MapWidth / 2
	DisplayHeight = MapHeight / 2

	// Rows reserved under the viewport for the HUD and message log
	HUDRows = 8

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = DisplayWidth * TileSize
	WindowHeight = (DisplayHeight + HUDRows) * TileSize
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}
