package obj

import (
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/render"
)

type SharkConfig struct {
	Speed       float64
	AttackRange float64
	Damage      int
	Sprite      render.Image
}

// Shark patrols back and forth along one direction, turning around at the
// edge of the walkable area, and bites a player it catches up with.
type Shark struct {
	body
	dir        common.Coord
	originDir  common.Coord
	originFlip bool
	canAttack  bool
	reach      float64
	damage     int
}

// NewShark places a shark on at, heading dir. A zero dir heads down.
func NewShark(at, dir common.Coord, cfg SharkConfig) *Shark {
	if dir.IsZero() {
		dir = common.Coord{X: 0, Y: 1}
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 20
	}
	if cfg.AttackRange <= 0 {
		cfg.AttackRange = 2
	}
	if cfg.Damage <= 0 {
		cfg.Damage = 1
	}
	// The sprite faces down; any other heading starts mirrored.
	flip := dir.X != 0 || dir.Y != 1
	return &Shark{
		body: body{
			grid:   at,
			origin: at,
			speed:  cfg.Speed,
			sprite: cfg.Sprite,
			flip:   flip,
		},
		dir:        dir,
		originDir:  dir,
		originFlip: flip,
		reach:      cfg.AttackRange,
		damage:     cfg.Damage,
	}
}

func (s *Shark) Kind() Kind { return KindShark }

func (s *Shark) Direction() common.Coord { return s.dir }
func (s *Shark) Flipped() bool           { return s.flip }
func (s *Shark) CanAttack() bool         { return s.canAttack }

func (s *Shark) Setup(ctx *Context) {
	s.grid = s.origin
	s.dir = s.originDir
	s.flip = s.originFlip
	s.canAttack = false
	s.snap(ctx)
}

// Update advances one cell, reversing first when the cell ahead is not
// walkable. If the cell behind is blocked too the shark stays put.
func (s *Shark) Update(ctx *Context) {
	if !ctx.World.Walkable(s.grid.Add(s.dir)) {
		s.dir = s.dir.Neg()
		s.flip = !s.flip
	}
	s.canAttack = true

	next := s.grid.Add(s.dir)
	if ctx.World.Walkable(next) {
		s.grid = next
	}
}

// Render glides toward the grid cell and bites the player when close enough:
// the shark backs off one cell, the player takes damage and is knocked back.
func (s *Shark) Render(ctx *Context) {
	s.interpolate(ctx)

	p := ctx.Player
	if p == nil || !s.canAttack {
		return
	}
	if s.render.Distance(p.RenderPos()) > s.reach {
		return
	}
	s.grid = s.grid.Sub(s.dir)
	p.ApplyDamage(s.damage)
	p.Knockback()
	s.canAttack = false
}
