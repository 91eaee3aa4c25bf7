package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/render"
)

type PlayerConfig struct {
	MaxHealth int
	Speed     float64
	// Sprites are indexed by health-1.
	Sprites []render.Image
}

// Player is the token the user steers. Its health only changes through
// ApplyDamage, Kill and Reset; OnDeath fires the first time health drops to
// zero after a reset.
type Player struct {
	body
	sprites   []render.Image
	maxHealth int
	health    int
	dead      bool
	ready     bool

	// LastMove is the delta of the most recent accepted move.
	LastMove common.Coord
	OnDeath  func()
}

func NewPlayer(origin common.Coord, cfg PlayerConfig) *Player {
	if cfg.MaxHealth <= 0 {
		cfg.MaxHealth = 2
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 20
	}
	return &Player{
		body: body{
			grid:       origin,
			origin:     origin,
			speed:      cfg.Speed,
			drawOffset: cp.Vector{X: 0, Y: -4},
		},
		sprites:   cfg.Sprites,
		maxHealth: cfg.MaxHealth,
		health:    cfg.MaxHealth,
		ready:     true,
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) Health() int    { return p.health }
func (p *Player) MaxHealth() int { return p.maxHealth }
func (p *Player) Alive() bool    { return p.health > 0 }

// Ready reports whether no move is in flight.
func (p *Player) Ready() bool { return p.ready }

// Move starts a move by delta. The caller checks walkability.
func (p *Player) Move(delta common.Coord) {
	p.grid = p.grid.Add(delta)
	p.LastMove = delta
	p.ready = false
}

// ApplyDamage removes n health and reports whether the player died from it.
func (p *Player) ApplyDamage(n int) bool {
	if n <= 0 {
		return false
	}
	return p.setHealth(p.health - n)
}

// Kill drops health to zero.
func (p *Player) Kill() bool {
	return p.setHealth(0)
}

func (p *Player) setHealth(h int) bool {
	if h < 0 {
		h = 0
	}
	p.health = h
	if p.health > 0 || p.dead {
		return false
	}
	p.dead = true
	if p.OnDeath != nil {
		p.OnDeath()
	}
	return true
}

// Knockback undoes the last move on the grid.
func (p *Player) Knockback() {
	p.grid = p.grid.Sub(p.LastMove)
}

// Displace shifts the grid position without walkability checks.
func (p *Player) Displace(delta common.Coord) {
	p.grid = p.grid.Add(delta)
}

// Reset puts the player back on its origin cell with full health. The
// render position is left to glide back.
func (p *Player) Reset() {
	p.grid = p.origin
	p.health = p.maxHealth
	p.dead = false
}

// ReturnToOrigin moves the grid position home without touching health.
func (p *Player) ReturnToOrigin() {
	p.grid = p.origin
}

// Setup resets the player and snaps it onto its origin cell.
func (p *Player) Setup(ctx *Context) {
	p.Reset()
	p.LastMove = common.Coord{}
	p.snap(ctx)
	p.ready = true
}

// Update glides toward the grid position and re-arms input once there.
func (p *Player) Update(ctx *Context) {
	p.interpolate(ctx)
	if p.CanMove(ctx) {
		p.ready = true
	}
}

func (p *Player) Render(ctx *Context) {}

// Sprite returns the image for the current health.
func (p *Player) Sprite() render.Image {
	if len(p.sprites) == 0 {
		return nil
	}
	idx := min(max(p.health-1, 0), len(p.sprites)-1)
	return p.sprites[idx]
}

func (p *Player) Draw(dst render.Surface) {
	if img := p.Sprite(); img != nil {
		dst.DrawImage(img, p.render.Add(p.drawOffset), render.Opaque)
	}
}
