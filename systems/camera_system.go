package systems

import "dungeon-crawl/geom"

// Viewport is the window of the map the drawing layer shows
type Viewport struct {
	X, Y          int
	Width, Height int
}

// NewViewport creates a viewport of the given size at the origin
func NewViewport(width, height int) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// CenterOn moves the viewport so p sits in the middle, clamped so the
// viewport never leaves a mapWidth x mapHeight map
func (v *Viewport) CenterOn(p geom.Point, mapWidth, mapHeight int) {
	v.X = clamp(p.X-v.Width/2, 0, max(0, mapWidth-v.Width))
	v.Y = clamp(p.Y-v.Height/2, 0, max(0, mapHeight-v.Height))
}

// Contains reports whether map point p is inside the viewport
func (v *Viewport) Contains(p geom.Point) bool {
	return p.X >= v.X && p.X < v.X+v.Width && p.Y >= v.Y && p.Y < v.Y+v.Height
}

// ToScreen converts a map point to viewport coordinates
func (v *Viewport) ToScreen(p geom.Point) geom.Point {
	return geom.Pt(p.X-v.X, p.Y-v.Y)
}

// ToMap converts viewport coordinates to a map point
func (v *Viewport) ToMap(p geom.Point) geom.Point {
	return geom.Pt(p.X+v.X, p.Y+v.Y)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// CameraSystem keeps the viewport on the player
type CameraSystem struct{}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Name identifies the system in schedules
func (s *CameraSystem) Name() string { return "camera" }

// Update centres the viewport on the player
func (s *CameraSystem) Update(w *World) error {
	player, err := w.Registry.Player()
	if err != nil {
		return err
	}
	if pos, ok := w.Registry.PositionOf(player); ok {
		w.Camera.CenterOn(pos, w.Map.Width, w.Map.Height)
	}
	return nil
}
