package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/render"
)

type StormConfig struct {
	Speed      float64
	DropHeight float64
	Damage     int
	Sprite     render.Image
}

// Storm sits on one cell. A player whose render position lands exactly on
// the storm's takes damage and is thrown one cell in a random cardinal
// direction. The drop-in after Setup only moves the sprite: the render
// position is on the cell from the start, so CanMove holds right away.
type Storm struct {
	body
	drop   float64
	fall   float64
	damage int
}

func NewStorm(at common.Coord, cfg StormConfig) *Storm {
	if cfg.Speed <= 0 {
		cfg.Speed = 40
	}
	if cfg.DropHeight <= 0 {
		cfg.DropHeight = 64
	}
	if cfg.Damage <= 0 {
		cfg.Damage = 1
	}
	return &Storm{
		body: body{
			grid:   at,
			origin: at,
			speed:  cfg.Speed,
			sprite: cfg.Sprite,
		},
		drop:   cfg.DropHeight,
		damage: cfg.Damage,
	}
}

func (s *Storm) Kind() Kind { return KindStorm }

// Setup snaps the storm onto its cell and lifts the sprite by the drop
// height.
func (s *Storm) Setup(ctx *Context) {
	s.grid = s.origin
	s.snap(ctx)
	s.fall = s.drop
}

// Fall is how far above its cell the sprite is still drawn.
func (s *Storm) Fall() float64 {
	return s.fall
}

func (s *Storm) Update(ctx *Context) {}

func (s *Storm) Render(ctx *Context) {
	s.interpolate(ctx)
	s.fall = max(s.fall-ctx.DT*s.speed, 0)

	p := ctx.Player
	if p == nil || s.fall > 0 || ctx.Stage == nil || ctx.Stage.MoveCount <= 0 {
		return
	}
	if p.RenderPos() != s.render {
		return
	}
	p.ApplyDamage(s.damage)
	p.Displace(common.Cardinals[ctx.Rand.IntN(len(common.Cardinals))])
}

func (s *Storm) Draw(dst render.Surface) {
	if s.sprite == nil {
		return
	}
	at := s.render.Add(s.drawOffset).Sub(cp.Vector{Y: s.fall})
	dst.DrawImage(s.sprite, at, render.Opaque)
}
