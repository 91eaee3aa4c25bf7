package main

import (
	"image"
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/levels"
	"github.com/milk9111/stormtravel/obj"
	"github.com/milk9111/stormtravel/prefabs"
)

// cellSize is the projector tile size in terminal cells. With the quarter
// height squash of the projection each grid row lands on one terminal row.
var cellSize = image.Pt(4, 4)

// glyph is one character to put on the terminal.
type glyph struct {
	At   image.Point
	Rune rune
	Kind glyphKind
}

type glyphKind int

const (
	glyphWater glyphKind = iota
	glyphExit
	glyphPlayer
	glyphShark
	glyphStorm
	glyphFog
)

// view lays a world and optionally one stage's placements out in terminal
// cells.
type view struct {
	world  *levels.World
	stage  *prefabs.StageSpec
	proj   *obj.Projector
	offset cp.Vector
}

func newView(world *levels.World, stage *prefabs.StageSpec) *view {
	return &view{
		world: world,
		stage: stage,
		proj:  obj.NewProjector(cellSize),
	}
}

func (v *view) point(c common.Coord) image.Point {
	p := v.proj.Project(c, v.offset)
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// centre puts the grid origin in the middle of a w by h terminal.
func (v *view) centre(w, h int) {
	v.offset = cp.Vector{X: float64(w / 2), Y: float64(h / 2)}
}

func (v *view) pan(dx, dy float64) {
	v.offset = v.offset.Add(cp.Vector{X: dx, Y: dy})
}

// glyphs returns the tiles back to front and the placements on top.
func (v *view) glyphs() []glyph {
	layer := v.world.Layer(common.TileLayer)
	cells := make([]common.Coord, 0, len(layer))
	for c := range layer {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	var out []glyph
	for _, c := range cells {
		ref := layer[c]
		g := glyph{At: v.point(c), Rune: '~', Kind: glyphWater}
		switch {
		case ref.Name == common.ExitTile:
			g.Rune, g.Kind = 'E', glyphExit
		case ref.Name == "foam":
			g.Rune = '*'
		}
		out = append(out, g)
	}

	if v.stage != nil {
		for _, p := range v.stage.Entities {
			g := glyph{At: v.point(common.Coord{X: p.X, Y: p.Y})}
			switch p.Kind {
			case prefabs.KindShark:
				g.Rune, g.Kind = 'S', glyphShark
			case prefabs.KindStorm:
				g.Rune, g.Kind = '#', glyphStorm
			case prefabs.KindFog:
				g.Rune, g.Kind = 'f', glyphFog
			default:
				continue
			}
			out = append(out, g)
		}
	}
	out = append(out, glyph{At: v.point(common.Coord{}), Rune: '@', Kind: glyphPlayer})
	return out
}
