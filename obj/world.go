package obj

import (
	"fmt"
	"image"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/levels"
	"github.com/milk9111/stormtravel/render"
)

// World is the walkable grid of one stage together with its projector and
// tile textures.
type World struct {
	data  *levels.World
	tiles map[common.Coord]levels.TileRef
	proj  *Projector
	cache *TileCache
}

// NewWorld checks every tile-layer cell against the atlas and loads its
// texture. A missing reference is a configuration error.
func NewWorld(data *levels.World, sheet render.Sheet) (*World, error) {
	if data == nil {
		return nil, fmt.Errorf("obj: new world: nil world data")
	}
	if data.TileSize.X <= 0 || data.TileSize.Y <= 0 {
		return nil, fmt.Errorf("obj: new world %s: invalid tile size %v", data.Name, data.TileSize)
	}

	w := &World{
		data:  data,
		tiles: data.Layer(common.TileLayer),
		proj:  NewProjector(data.TileSize),
		cache: NewTileCache(sheet, data.Groups, data.TileSize),
	}
	if w.tiles == nil {
		w.tiles = map[common.Coord]levels.TileRef{}
	}

	for c, ref := range w.tiles {
		if _, err := w.cache.Texture(ref.Group, ref.Name); err != nil {
			return nil, fmt.Errorf("obj: new world %s: cell %s: %w", data.Name, c, err)
		}
	}
	return w, nil
}

func (w *World) Name() string {
	return w.data.Name
}

func (w *World) TileSize() image.Point {
	return w.proj.TileSize()
}

func (w *World) Projector() *Projector {
	return w.proj
}

func (w *World) Tiles() *TileCache {
	return w.cache
}

// Walkable reports whether c is populated in the tile layer.
func (w *World) Walkable(c common.Coord) bool {
	_, ok := w.tiles[c]
	return ok
}

func (w *World) Tile(c common.Coord) (levels.TileRef, bool) {
	ref, ok := w.tiles[c]
	return ref, ok
}

func (w *World) IsExit(c common.Coord) bool {
	ref, ok := w.tiles[c]
	return ok && ref.IsExit()
}

func (w *World) Project(c common.Coord, offset cp.Vector) cp.Vector {
	return w.proj.Project(c, offset)
}

// Window is a half-open range of grid cells.
type Window struct {
	Left, Top, Right, Bottom int
}

func (win Window) Contains(c common.Coord) bool {
	return c.X >= win.Left && c.X < win.Right && c.Y >= win.Top && c.Y < win.Bottom
}

// VisibleWindow returns the cells that can land on a viewW x viewH view
// shifted by offset. Three extra rows cover the isometric shear.
func (w *World) VisibleWindow(offset cp.Vector, viewW, viewH int) Window {
	ts := w.TileSize()
	tw, th := float64(ts.X), float64(ts.Y)

	left := int(math.Floor(-offset.X/tw)) - 1
	top := int(math.Floor(-offset.Y/th)) - 1
	return Window{
		Left:   left,
		Top:    top,
		Right:  left + int(math.Ceil(float64(viewW)/tw)) + 2,
		Bottom: top + int(math.Ceil(float64(viewH)/th)) + 1 + 3,
	}
}

// Draw paints the populated cells of the visible window row by row and
// returns how many tiles were drawn.
func (w *World) Draw(dst render.Surface, offset cp.Vector) int {
	size := dst.Size()
	win := w.VisibleWindow(offset, size.X, size.Y)

	drawn := 0
	for y := win.Top; y < win.Bottom; y++ {
		for x := win.Left; x < win.Right; x++ {
			c := common.Coord{X: x, Y: y}
			ref, ok := w.tiles[c]
			if !ok {
				continue
			}
			img, err := w.cache.Texture(ref.Group, ref.Name)
			if err != nil {
				continue
			}
			dst.DrawImage(img, w.proj.Project(c, offset), render.Opaque)
			drawn++
		}
	}
	return drawn
}
