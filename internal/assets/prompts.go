package assets

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/farmstead/internal/game"
)

const mapPromptTemplate = `Age of Empires II Definitive Edition isometric terrain sprite.
High-detail 45-degree equidistant perspective map of a medieval farm estate.
The ground layout features organic, staggered building foundations at these positions: %s.
Foundations are made of weathered gray stone masonry, perfectly flush with the ground.
Terrain details: Dark lush grass, winding dirt paths connecting foundations, small rocky outcroppings, and patches of dry mud.
Everything follows a strict 45-degree isometric grid. Bird-eye view, no interface, sharp sprite-based rendering, warm medieval lighting.`

// Sector names the third of the map a point falls in, e.g. "north-west".
func Sector(x, y int) string {
	horiz := "center"
	switch {
	case x*3 < game.MapWidth:
		horiz = "west"
	case x*3 > game.MapWidth*2:
		horiz = "east"
	}
	vert := "middle"
	switch {
	case y*3 < game.MapHeight:
		vert = "north"
	case y*3 > game.MapHeight*2:
		vert = "south"
	}
	return vert + "-" + horiz
}

func MapPrompt(buildings []game.Building) string {
	parts := make([]string, 0, len(buildings))
	for _, b := range buildings {
		parts = append(parts, fmt.Sprintf("a %s stone foundation at coordinates (%d, %d) in the %s sector", b.Label, b.X, b.Y, Sector(b.X, b.Y)))
	}
	return fmt.Sprintf(mapPromptTemplate, strings.Join(parts, ", "))
}
