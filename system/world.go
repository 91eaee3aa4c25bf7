package system

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/levels"
	"github.com/milk9111/stormtravel/obj"
	"github.com/milk9111/stormtravel/prefabs"
	"github.com/milk9111/stormtravel/render"
)

// Sprites are the entity images cut from the sprite sheet.
type Sprites struct {
	Player []render.Image
	Shark  render.Image
	Storm  render.Image
	Fog    render.Image
}

// Campaign is every stage of the game, built once at start-up, plus the
// player that walks them.
type Campaign struct {
	Stages  []*obj.Stage
	Player  *obj.Player
	Sprites Sprites

	worlds map[string]*obj.World
}

// LoadCampaign reads stages.yaml and the per-kind tuning files and builds
// every stage.
func LoadCampaign(sheet render.Sheet, rng *rand.Rand) (*Campaign, error) {
	spec, err := prefabs.LoadStagesSpec()
	if err != nil {
		return nil, err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	return BuildCampaign(spec, tuning, sheet, rng)
}

func BuildCampaign(spec *prefabs.StagesSpec, tuning *prefabs.Tuning, sheet render.Sheet, rng *rand.Rand) (*Campaign, error) {
	if spec == nil || tuning == nil {
		return nil, fmt.Errorf("system: build campaign: missing stage or tuning spec")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}

	sprites, err := loadSprites(tuning, sheet)
	if err != nil {
		return nil, err
	}

	c := &Campaign{
		Sprites: sprites,
		worlds:  make(map[string]*obj.World),
	}
	for i, st := range spec.Stages {
		w, err := c.world(st.World, sheet)
		if err != nil {
			return nil, fmt.Errorf("system: stage %d %q: %w", i+1, st.Name, err)
		}
		entities, err := spawnEntities(st.Entities, tuning, sprites, rng)
		if err != nil {
			return nil, fmt.Errorf("system: stage %d %q: %w", i+1, st.Name, err)
		}
		c.Stages = append(c.Stages, obj.NewStage(st.Name, w, st.MaxMoves, entities))
	}

	c.Player = obj.NewPlayer(common.Coord{}, obj.PlayerConfig{
		MaxHealth: tuning.Player.MaxHealth,
		Speed:     tuning.Player.MoveSpeed,
		Sprites:   sprites.Player,
	})
	return c, nil
}

// world loads a world file once; stages on the same file share it.
func (c *Campaign) world(name string, sheet render.Sheet) (*obj.World, error) {
	if w, ok := c.worlds[name]; ok {
		return w, nil
	}
	data, err := levels.Load(name)
	if err != nil {
		return nil, err
	}
	w, err := obj.NewWorld(data, sheet)
	if err != nil {
		return nil, err
	}
	c.worlds[name] = w
	return w, nil
}

// Worlds reports how many distinct world files were loaded.
func (c *Campaign) Worlds() int {
	return len(c.worlds)
}

func loadSprites(t *prefabs.Tuning, sheet render.Sheet) (Sprites, error) {
	var s Sprites
	region := func(r prefabs.RectSpec) (render.Image, error) {
		rect := r.Rect()
		img, err := sheet.Region(rect, rect.Size())
		if err != nil {
			return nil, fmt.Errorf("system: sprite %v: %w", rect, err)
		}
		return img, nil
	}

	for _, r := range t.Player.Sprites {
		img, err := region(r)
		if err != nil {
			return s, err
		}
		s.Player = append(s.Player, img)
	}

	var err error
	if s.Shark, err = region(t.Shark.Sprite); err != nil {
		return s, err
	}
	if s.Storm, err = region(t.Storm.Sprite); err != nil {
		return s, err
	}
	if s.Fog, err = region(t.Fog.Sprite); err != nil {
		return s, err
	}
	return s, nil
}
