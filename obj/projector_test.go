package obj

import (
	"errors"
	"image"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/levels"
	"github.com/milk9111/stormtravel/render"
)

func TestProjectorProject(t *testing.T) {
	tests := []struct {
		name   string
		cell   common.Coord
		offset cp.Vector
		want   cp.Vector
	}{
		{"origin", common.C(0, 0), cp.Vector{}, cp.Vector{}},
		{"origin shifted", common.C(0, 0), testOffset, cp.Vector{X: 80, Y: 48}},
		{"column", common.C(1, 0), testOffset, cp.Vector{X: 96, Y: 48}},
		{"row", common.C(0, 1), testOffset, cp.Vector{X: 88, Y: 52}},
		{"odd row half tile", common.C(0, 3), cp.Vector{}, cp.Vector{X: 24, Y: 12}},
		{"left key", common.C(-1, 1), testOffset, cp.Vector{X: 72, Y: 52}},
		{"right key", common.C(2, -2), testOffset, cp.Vector{X: 96, Y: 40}},
	}

	p := NewProjector(image.Pt(16, 16))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Project(tt.cell, tt.offset)
			if got != tt.want {
				t.Fatalf("Project(%s, %v) = %v, want %v", tt.cell, tt.offset, got, tt.want)
			}
			if again := p.Project(tt.cell, tt.offset); again != got {
				t.Fatalf("second projection %v differs from first %v", again, got)
			}
		})
	}
}

func TestProjectorCacheIgnoresOffset(t *testing.T) {
	p := NewProjector(image.Pt(16, 16))
	c := common.C(3, -2)

	a := p.Project(c, cp.Vector{})
	b := p.Project(c, cp.Vector{X: 10, Y: -5})
	if p.Cached() != 1 {
		t.Fatalf("expected one cached cell, got %d", p.Cached())
	}
	if b.Sub(a) != (cp.Vector{X: 10, Y: -5}) {
		t.Fatalf("offset not applied after lookup: %v then %v", a, b)
	}
}

func TestTileCacheReusesTextures(t *testing.T) {
	sheet := &render.BlankSheet{Width: 64, Height: 64}
	groups := map[string]map[string]image.Rectangle{
		"sea": {"water": image.Rect(0, 0, 8, 8)},
	}
	cache := NewTileCache(sheet, groups, image.Pt(16, 16))

	first, err := cache.Texture("sea", "water")
	if err != nil {
		t.Fatalf("texture: %v", err)
	}
	second, err := cache.Texture("sea", "water")
	if err != nil {
		t.Fatalf("texture: %v", err)
	}
	if first != second {
		t.Fatalf("expected the cached texture to be returned")
	}
	if sheet.Requests != 1 {
		t.Fatalf("expected one sheet request, got %d", sheet.Requests)
	}
	if got := first.Bounds().Size(); got != image.Pt(16, 16) {
		t.Fatalf("expected texture scaled to tile size, got %v", got)
	}

	if _, err := cache.Texture("sea", "kelp"); !errors.Is(err, levels.ErrUnknownTile) {
		t.Fatalf("expected ErrUnknownTile, got %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected one cached texture, got %d", cache.Len())
	}
}
