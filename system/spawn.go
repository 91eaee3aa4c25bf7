package system

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/obj"
	"github.com/milk9111/stormtravel/prefabs"
)

var fogColor = color.NRGBA{R: 0x22, G: 0x12, B: 0x28, A: 0xff}

// spawnEntities builds a stage's entities in placement order. Fog banks get
// a random halo phase from rng.
func spawnEntities(placements []prefabs.PlacementSpec, t *prefabs.Tuning, s Sprites, rng *rand.Rand) ([]obj.Entity, error) {
	entities := make([]obj.Entity, 0, len(placements))
	for i, p := range placements {
		at := common.C(p.X, p.Y)
		switch p.Kind {
		case prefabs.KindShark:
			dir := common.C(t.Shark.Dir[0], t.Shark.Dir[1])
			if p.Dir != nil {
				dir = common.C(p.Dir[0], p.Dir[1])
			}
			entities = append(entities, obj.NewShark(at, dir, obj.SharkConfig{
				Speed:       t.Shark.MoveSpeed,
				AttackRange: t.Shark.AttackRange,
				Damage:      t.Shark.Damage,
				Sprite:      s.Shark,
			}))
		case prefabs.KindStorm:
			entities = append(entities, obj.NewStorm(at, obj.StormConfig{
				Speed:      t.Storm.MoveSpeed,
				DropHeight: t.Storm.DropHeight,
				Damage:     t.Storm.Damage,
				Sprite:     s.Storm,
			}))
		case prefabs.KindFog:
			points := make([]cp.Vector, 0, len(t.Fog.Halo.Points))
			for _, pt := range t.Fog.Halo.Points {
				points = append(points, cp.Vector{X: pt[0], Y: pt[1]})
			}
			entities = append(entities, obj.NewFog(at, rng.Float64()*10, obj.FogConfig{
				Speed:     t.Fog.MoveSpeed,
				KillRange: t.Fog.KillRange,
				Sprite:    s.Fog,
				Color:     t.Fog.Halo.Color.Or(fogColor),
				Radius:    t.Fog.Halo.Radius,
				Points:    points,
			}))
		default:
			return nil, fmt.Errorf("entity %d: %w: %q", i, prefabs.ErrUnknownKind, p.Kind)
		}
	}
	return entities, nil
}
