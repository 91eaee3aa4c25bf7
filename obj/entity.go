package obj

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/render"
)

// Kind enumerates the entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindShark
	KindStorm
	KindFog
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindShark:
		return "shark"
	case KindStorm:
		return "storm"
	case KindFog:
		return "fog"
	default:
		return "unknown"
	}
}

// Context is what an entity can see while it acts.
type Context struct {
	World  *World
	Stage  *Stage
	Player *Player
	Offset cp.Vector
	// DT is the frame time in seconds.
	DT float64
	// Clock is seconds since start, used for decorative animation.
	Clock float64
	Rand  *rand.Rand
}

// Project is shorthand for projecting c with the context offset.
func (ctx *Context) Project(c common.Coord) cp.Vector {
	return ctx.World.Project(c, ctx.Offset)
}

// Entity is a grid-bound actor. Update runs once per accepted player move,
// Render once per frame while the stage is shown, Draw only paints.
type Entity interface {
	Kind() Kind
	GridPos() common.Coord
	RenderPos() cp.Vector
	Setup(ctx *Context)
	Update(ctx *Context)
	Render(ctx *Context)
	CanMove(ctx *Context) bool
	Draw(dst render.Surface)
}

// body is the state shared by every entity.
type body struct {
	grid   common.Coord
	origin common.Coord
	render cp.Vector
	speed  float64
	sprite render.Image
	flip   bool
	// drawOffset is added to the render position when painting.
	drawOffset cp.Vector
}

func (b *body) GridPos() common.Coord {
	return b.grid
}

func (b *body) Origin() common.Coord {
	return b.origin
}

func (b *body) RenderPos() cp.Vector {
	return b.render
}

// CanMove reports whether the render position has reached the projected
// grid position exactly.
func (b *body) CanMove(ctx *Context) bool {
	return b.render == ctx.Project(b.grid)
}

func (b *body) snap(ctx *Context) {
	b.render = ctx.Project(b.grid)
}

func (b *body) interpolate(ctx *Context) {
	b.render = common.MoveTowards(b.render, ctx.Project(b.grid), ctx.DT*b.speed)
}

func (b *body) Draw(dst render.Surface) {
	if b.sprite == nil {
		return
	}
	dst.DrawImage(b.sprite, b.render.Add(b.drawOffset), render.DrawOptions{Alpha: 1, FlipX: b.flip})
}
