package levels

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/milk9111/stormtravel/common"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownTile = errors.New("levels: unknown tile")
	ErrNoExit      = errors.New("levels: world has no exit tile")
)

// TileRef names a tile in the atlas by group and name.
type TileRef struct {
	Group string
	Name  string
}

func (r TileRef) String() string {
	return r.Group + "/" + r.Name
}

// IsExit reports whether the tile marks the stage exit.
func (r TileRef) IsExit() bool {
	return r.Name == common.ExitTile
}

// ParseTileRef parses "group/name".
func ParseTileRef(s string) (TileRef, error) {
	group, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || group == "" || name == "" {
		return TileRef{}, fmt.Errorf("levels: bad tile ref %q", s)
	}
	return TileRef{Group: group, Name: name}, nil
}

// World is the immutable snapshot produced from a world file: the tile size,
// the atlas regions per tile group and the sparse cell layers.
type World struct {
	Name     string
	TileSize image.Point
	Groups   map[string]map[string]image.Rectangle
	Layers   map[string]map[common.Coord]TileRef
}

// Layer returns the cells of the named layer, or nil.
func (w *World) Layer(name string) map[common.Coord]TileRef {
	if w == nil || w.Layers == nil {
		return nil
	}
	return w.Layers[name]
}

// Region returns the unscaled atlas rectangle for ref.
func (w *World) Region(ref TileRef) (image.Rectangle, bool) {
	if w == nil || w.Groups == nil {
		return image.Rectangle{}, false
	}
	group, ok := w.Groups[ref.Group]
	if !ok {
		return image.Rectangle{}, false
	}
	r, ok := group[ref.Name]
	return r, ok
}

// Exits returns the exit cells of the tile layer, sorted row-major.
func (w *World) Exits() []common.Coord {
	var out []common.Coord
	for c, ref := range w.Layer(common.TileLayer) {
		if ref.IsExit() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Validate checks that every cell references a tile present in the atlas and
// that the tile layer has an exit.
func (w *World) Validate() error {
	for layer, cells := range w.Layers {
		for c, ref := range cells {
			if _, ok := w.Region(ref); !ok {
				return fmt.Errorf("%w: %s at %s on layer %s", ErrUnknownTile, ref, c, layer)
			}
		}
	}
	if len(w.Exits()) == 0 {
		return fmt.Errorf("%w: %s", ErrNoExit, w.Name)
	}
	return nil
}

type worldFile struct {
	TileSize int                          `yaml:"tile_size"`
	Groups   map[string]map[string][4]int `yaml:"groups"`
	Legend   map[string]string            `yaml:"legend"`
	Origin   [2]int                       `yaml:"origin"`
	Layers   map[string][]string          `yaml:"layers"`
}

// Parse decodes a world file. Rows are read top to bottom starting at
// Origin; each rune is looked up in the legend, '.' and ' ' are empty cells.
func Parse(name string, data []byte) (*World, error) {
	var f worldFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if f.TileSize <= 0 {
		return nil, fmt.Errorf("levels: %s: invalid tile size %d", name, f.TileSize)
	}

	w := &World{
		Name:     name,
		TileSize: image.Pt(f.TileSize, f.TileSize),
		Groups:   make(map[string]map[string]image.Rectangle, len(f.Groups)),
		Layers:   make(map[string]map[common.Coord]TileRef, len(f.Layers)),
	}
	for group, tiles := range f.Groups {
		regions := make(map[string]image.Rectangle, len(tiles))
		for tile, r := range tiles {
			if r[2] <= 0 || r[3] <= 0 {
				return nil, fmt.Errorf("levels: %s: tile %s/%s has empty region", name, group, tile)
			}
			regions[tile] = image.Rect(r[0], r[1], r[0]+r[2], r[1]+r[3])
		}
		w.Groups[group] = regions
	}

	legend := make(map[rune]TileRef, len(f.Legend))
	for glyph, raw := range f.Legend {
		runes := []rune(glyph)
		if len(runes) != 1 {
			return nil, fmt.Errorf("levels: %s: legend key %q must be one character", name, glyph)
		}
		ref, err := ParseTileRef(raw)
		if err != nil {
			return nil, fmt.Errorf("levels: %s: %w", name, err)
		}
		legend[runes[0]] = ref
	}

	for layer, rows := range f.Layers {
		cells := make(map[common.Coord]TileRef)
		for dy, row := range rows {
			for dx, glyph := range []rune(row) {
				if glyph == '.' || glyph == ' ' {
					continue
				}
				ref, ok := legend[glyph]
				if !ok {
					return nil, fmt.Errorf("levels: %s: glyph %q at row %d is not in the legend", name, glyph, dy)
				}
				cells[common.C(f.Origin[0]+dx, f.Origin[1]+dy)] = ref
			}
		}
		w.Layers[layer] = cells
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Load reads and parses a world file by name.
func Load(name string) (*World, error) {
	data, err := ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(cleanLevelPath(name), data)
}
