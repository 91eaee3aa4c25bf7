package obj

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/render"
)

type FogConfig struct {
	Speed     float64
	KillRange float64
	Sprite    render.Image
	Color     color.Color
	Radius    float64
	Points    []cp.Vector
}

// Fog is a stationary hazard that kills the player on contact. It is drawn
// with a pulsing halo of small circles.
type Fog struct {
	body
	reach  float64
	color  color.NRGBA
	radius float64
	points []cp.Vector
	phase  float64
	clock  float64
}

// NewFog places fog on at. phase offsets the halo pulse so neighbouring fog
// banks do not breathe in step.
func NewFog(at common.Coord, phase float64, cfg FogConfig) *Fog {
	if cfg.Speed <= 0 {
		cfg.Speed = 20
	}
	if cfg.KillRange <= 0 {
		cfg.KillRange = 2
	}
	if cfg.Radius <= 0 {
		cfg.Radius = 3
	}
	c := color.NRGBA{R: 0x22, G: 0x12, B: 0x28, A: 0xff}
	if cfg.Color != nil {
		c = color.NRGBAModel.Convert(cfg.Color).(color.NRGBA)
	}
	return &Fog{
		body: body{
			grid:   at,
			origin: at,
			speed:  cfg.Speed,
			sprite: cfg.Sprite,
		},
		reach:  cfg.KillRange,
		color:  c,
		radius: cfg.Radius,
		points: cfg.Points,
		phase:  phase,
	}
}

func (f *Fog) Kind() Kind { return KindFog }

func (f *Fog) Setup(ctx *Context) {
	f.grid = f.origin
	f.snap(ctx)
}

func (f *Fog) Update(ctx *Context) {}

func (f *Fog) Render(ctx *Context) {
	f.interpolate(ctx)
	f.clock = ctx.Clock

	p := ctx.Player
	if p == nil {
		return
	}
	if f.render.Distance(p.RenderPos()) <= f.reach {
		p.Kill()
	}
}

// HaloAlpha is the alpha of halo circle idx at the last rendered clock.
func (f *Fog) HaloAlpha(idx int) uint8 {
	a := math.Cos(f.clock+f.phase+float64(idx)*200)*64 + 128 + 80
	return uint8(math.Max(0, math.Min(255, a)))
}

func (f *Fog) Draw(dst render.Surface) {
	f.body.Draw(dst)
	center := f.render.Add(cp.Vector{X: 9, Y: 1})
	for idx, pt := range f.points {
		c := f.color
		c.A = f.HaloAlpha(idx)
		dst.FillCircle(center.Add(pt), f.radius, c)
	}
}
