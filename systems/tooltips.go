package systems

import (
	"fmt"

	"dungeon-crawl/components"
	"dungeon-crawl/geom"
)

// Describe returns one line per named entity on p that the player can see.
// Entities with health show it as "Name : N hp".
func Describe(reg *components.Registry, p geom.Point) []string {
	player, err := reg.Player()
	if err != nil {
		return nil
	}
	fov, ok := reg.FOVs.Get(player)
	if !ok || !fov.CanSee(p) {
		return nil
	}

	var lines []string
	for _, e := range reg.Positions.Entities() {
		pos, _ := reg.Positions.Get(e)
		if pos.Point != p {
			continue
		}
		name, ok := reg.Names.Get(e)
		if !ok {
			continue
		}
		if health, ok := reg.Healths.Get(e); ok {
			lines = append(lines, fmt.Sprintf("%s : %d hp", name, health.Current))
		} else {
			lines = append(lines, name.String())
		}
	}
	return lines
}
