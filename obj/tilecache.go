package obj

import (
	"fmt"
	"image"

	"github.com/milk9111/stormtravel/levels"
	"github.com/milk9111/stormtravel/render"
)

// TileCache slices and scales tile textures on first use and keeps them for
// the lifetime of the world.
type TileCache struct {
	sheet    render.Sheet
	groups   map[string]map[string]image.Rectangle
	size     image.Point
	textures map[levels.TileRef]render.Image
}

func NewTileCache(sheet render.Sheet, groups map[string]map[string]image.Rectangle, tileSize image.Point) *TileCache {
	return &TileCache{
		sheet:    sheet,
		groups:   groups,
		size:     tileSize,
		textures: make(map[levels.TileRef]render.Image),
	}
}

func (c *TileCache) Texture(group, name string) (render.Image, error) {
	ref := levels.TileRef{Group: group, Name: name}
	if img, ok := c.textures[ref]; ok {
		return img, nil
	}

	src, ok := c.groups[group][name]
	if !ok {
		return nil, fmt.Errorf("obj: texture %s: %w", ref, levels.ErrUnknownTile)
	}
	img, err := c.sheet.Region(src, c.size)
	if err != nil {
		return nil, fmt.Errorf("obj: texture %s: %w", ref, err)
	}
	c.textures[ref] = img
	return img, nil
}

func (c *TileCache) Len() int {
	return len(c.textures)
}
