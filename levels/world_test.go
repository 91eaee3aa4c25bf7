package levels

import (
	"errors"
	"image"
	"testing"

	"github.com/milk9111/stormtravel/common"
)

const smallWorld = `
tile_size: 16
groups:
  sea:
    water: [0, 0, 16, 16]
    end: [32, 0, 16, 16]
legend:
  "~": sea/water
  "E": sea/end
origin: [-1, 0]
layers:
  tiles:
    - ".~~"
    - "~.E"
`

func TestParseWorld(t *testing.T) {
	w, err := Parse("small", []byte(smallWorld))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if w.TileSize != image.Pt(16, 16) {
		t.Fatalf("unexpected tile size %v", w.TileSize)
	}

	tiles := w.Layer(common.TileLayer)
	tests := []struct {
		name  string
		coord common.Coord
		want  TileRef
		ok    bool
	}{
		{"origin_offset_empty", common.C(-1, 0), TileRef{}, false},
		{"first_water", common.C(0, 0), TileRef{Group: "sea", Name: "water"}, true},
		{"second_row_water", common.C(-1, 1), TileRef{Group: "sea", Name: "water"}, true},
		{"hole", common.C(0, 1), TileRef{}, false},
		{"exit", common.C(1, 1), TileRef{Group: "sea", Name: "end"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tiles[tc.coord]
			if ok != tc.ok || got != tc.want {
				t.Fatalf("cell %v = %v,%v want %v,%v", tc.coord, got, ok, tc.want, tc.ok)
			}
		})
	}

	if exits := w.Exits(); len(exits) != 1 || exits[0] != common.C(1, 1) {
		t.Fatalf("unexpected exits %v", exits)
	}
	if r, ok := w.Region(TileRef{Group: "sea", Name: "end"}); !ok || r != image.Rect(32, 0, 48, 16) {
		t.Fatalf("unexpected region %v ok=%v", r, ok)
	}
}

func TestParseWorldErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		is   error
	}{
		{
			name: "unknown_tile_in_legend",
			src: `
tile_size: 16
groups:
  sea:
    water: [0, 0, 16, 16]
legend:
  "~": sea/water
  "E": sea/end
layers:
  tiles:
    - "~E"
`,
			is: ErrUnknownTile,
		},
		{
			name: "no_exit",
			src: `
tile_size: 16
groups:
  sea:
    water: [0, 0, 16, 16]
legend:
  "~": sea/water
layers:
  tiles:
    - "~~"
`,
			is: ErrNoExit,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.name, []byte(tc.src))
			if !errors.Is(err, tc.is) {
				t.Fatalf("expected %v, got %v", tc.is, err)
			}
		})
	}

	if _, err := Parse("bad_glyph", []byte("tile_size: 16\nlayers:\n  tiles:\n    - \"?\"\n")); err == nil {
		t.Fatalf("expected error for glyph missing from legend")
	}
	if _, err := Parse("bad_size", []byte("tile_size: 0\n")); err == nil {
		t.Fatalf("expected error for zero tile size")
	}
}

func TestEmbeddedWorldsLoad(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("expected embedded worlds")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			w, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%s) failed: %v", name, err)
			}
			if _, ok := w.Layer(common.TileLayer)[common.C(0, 0)]; !ok {
				t.Fatalf("world %s has no start cell at (0,0)", name)
			}
		})
	}
}
