package obj

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
)

// Projector maps grid cells to isometric screen positions. Rows are squashed
// to a quarter of the tile height and every row shifts half a tile right.
type Projector struct {
	tile  image.Point
	cache map[common.Coord]cp.Vector
}

func NewProjector(tileSize image.Point) *Projector {
	return &Projector{
		tile:  tileSize,
		cache: make(map[common.Coord]cp.Vector),
	}
}

func (p *Projector) TileSize() image.Point {
	return p.tile
}

// Project returns the render position of c shifted by offset. The unshifted
// grid scaling is cached per cell.
func (p *Projector) Project(c common.Coord, offset cp.Vector) cp.Vector {
	base, ok := p.cache[c]
	if !ok {
		base = cp.Vector{X: float64(c.X * p.tile.X), Y: float64(c.Y * p.tile.Y)}
		p.cache[c] = base
	}

	return cp.Vector{
		X: base.X + float64(c.Y)/2*float64(p.tile.X) + offset.X,
		Y: base.Y*0.25 + offset.Y,
	}
}

// Cached reports how many cells have a cached base position.
func (p *Projector) Cached() int {
	return len(p.cache)
}
