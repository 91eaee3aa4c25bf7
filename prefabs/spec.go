package prefabs

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownKind = errors.New("unknown entity kind")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// StagesSpec is the ordered stage manifest.
type StagesSpec struct {
	DefaultMaxMoves int         `yaml:"default_max_moves"`
	Stages          []StageSpec `yaml:"stages"`
}

type StageSpec struct {
	Name     string          `yaml:"name"`
	World    string          `yaml:"world"`
	MaxMoves int             `yaml:"max_moves"`
	Entities []PlacementSpec `yaml:"entities"`
}

// PlacementSpec puts one entity of Kind on cell (X, Y). Dir is only read for
// sharks; a nil Dir means the default patrol direction.
type PlacementSpec struct {
	Kind string  `yaml:"kind"`
	X    int     `yaml:"x"`
	Y    int     `yaml:"y"`
	Dir  *[2]int `yaml:"dir"`
}

const (
	KindShark = "shark"
	KindStorm = "storm"
	KindFog   = "fog"
)

func LoadStagesSpec() (*StagesSpec, error) {
	spec, err := LoadSpec[StagesSpec]("stages.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate stages.yaml: %w", err)
	}
	return &spec, nil
}

// Validate checks kinds and fills in budgets left at zero.
func (s *StagesSpec) Validate() error {
	if len(s.Stages) == 0 {
		return errors.New("no stages")
	}
	if s.DefaultMaxMoves <= 0 {
		s.DefaultMaxMoves = 5
	}
	for i := range s.Stages {
		st := &s.Stages[i]
		if st.World == "" {
			return fmt.Errorf("stage %d: missing world", i)
		}
		if st.MaxMoves <= 0 {
			st.MaxMoves = s.DefaultMaxMoves
		}
		if st.Name == "" {
			st.Name = fmt.Sprintf("stage %d", i+1)
		}
		for j, p := range st.Entities {
			switch p.Kind {
			case KindShark, KindStorm, KindFog:
			default:
				return fmt.Errorf("stage %d entity %d: %w: %q", i, j, ErrUnknownKind, p.Kind)
			}
		}
	}
	return nil
}

// RectSpec is a source rectangle on the sprite sheet, [x, y, w, h].
type RectSpec [4]int

func (r RectSpec) Rect() image.Rectangle {
	return image.Rect(r[0], r[1], r[0]+r[2], r[1]+r[3])
}

type PlayerSpec struct {
	Name      string  `yaml:"name"`
	MaxHealth int     `yaml:"max_health"`
	MoveSpeed float64 `yaml:"move_speed"`
	// Sprites are indexed by health-1.
	Sprites []RectSpec `yaml:"sprites"`
}

type SharkSpec struct {
	Name        string   `yaml:"name"`
	MoveSpeed   float64  `yaml:"move_speed"`
	AttackRange float64  `yaml:"attack_range"`
	Damage      int      `yaml:"damage"`
	Dir         [2]int   `yaml:"dir"`
	Sprite      RectSpec `yaml:"sprite"`
}

type StormSpec struct {
	Name       string   `yaml:"name"`
	MoveSpeed  float64  `yaml:"move_speed"`
	DropHeight float64  `yaml:"drop_height"`
	Damage     int      `yaml:"damage"`
	Sprite     RectSpec `yaml:"sprite"`
}

type FogSpec struct {
	Name      string   `yaml:"name"`
	MoveSpeed float64  `yaml:"move_speed"`
	KillRange float64  `yaml:"kill_range"`
	Sprite    RectSpec `yaml:"sprite"`
	Halo      HaloSpec `yaml:"halo"`
}

type HaloSpec struct {
	Color  YAMLColor    `yaml:"color"`
	Radius float64      `yaml:"radius"`
	Points [][2]float64 `yaml:"points"`
}

type UISpec struct {
	Title        string      `yaml:"title"`
	TextColor    YAMLColor   `yaml:"text_color"`
	TextOutline  YAMLColor   `yaml:"text_outline"`
	Background   YAMLColor   `yaml:"background"`
	WorldOutline YAMLColor   `yaml:"world_outline"`
	Death        OverlaySpec `yaml:"death"`
	TooManyMoves OverlaySpec `yaml:"too_many_moves"`
	Ending       OverlaySpec `yaml:"ending"`
	Pause        PauseSpec   `yaml:"pause"`
}

type OverlaySpec struct {
	Title     string  `yaml:"title"`
	Subtitle  string  `yaml:"subtitle"`
	TitleSize float64 `yaml:"title_size"`
}

type PauseSpec struct {
	Title  string `yaml:"title"`
	Resume string `yaml:"resume"`
	Quit   string `yaml:"quit"`
}

// Tuning bundles every per-kind spec the stage builder needs.
type Tuning struct {
	Player PlayerSpec
	Shark  SharkSpec
	Storm  StormSpec
	Fog    FogSpec
}

func LoadTuning() (*Tuning, error) {
	var t Tuning
	var err error
	if t.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if t.Shark, err = LoadSpec[SharkSpec]("shark.yaml"); err != nil {
		return nil, err
	}
	if t.Storm, err = LoadSpec[StormSpec]("storm.yaml"); err != nil {
		return nil, err
	}
	if t.Fog, err = LoadSpec[FogSpec]("fog.yaml"); err != nil {
		return nil, err
	}
	if t.Player.MaxHealth <= 0 {
		t.Player.MaxHealth = 2
	}
	if len(t.Player.Sprites) < t.Player.MaxHealth {
		return nil, fmt.Errorf("prefabs: player.yaml: need %d sprites, have %d", t.Player.MaxHealth, len(t.Player.Sprites))
	}
	return &t, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the colour or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
