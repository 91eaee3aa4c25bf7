package system

import (
	"fmt"
	"image"
	"log"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/obj"
)

// State is the level-progress state derived from the controller's fades,
// the player and the stage index.
type State int

const (
	StatePlaying State = iota
	StateFadingOut
	StateFadingIn
	StateDead
	StateTooManyMoves
	StateEnding
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateFadingOut:
		return "fading-out"
	case StateFadingIn:
		return "fading-in"
	case StateDead:
		return "dead"
	case StateTooManyMoves:
		return "too-many-moves"
	case StateEnding:
		return "ending"
	default:
		return "unknown"
	}
}

const (
	displayFadeRate = 4
	overlayFadeRate = 2
	opaque          = 255
)

// Ambience is the ambient sound loop. It plays while a stage is on screen
// and fades out under the overlays.
type Ambience interface {
	Play()
	FadeOut()
}

type Options struct {
	// Start is the index of the first stage to play.
	Start int
	// Offset shifts every projected position. Zero means DefaultOffset.
	Offset   cp.Vector
	Rand     *rand.Rand
	Ambience Ambience
	// Debug logs every accepted move.
	Debug bool
}

// Controller runs the stage sequence: moves, the move budget, death,
// restart and the fades between stages.
type Controller struct {
	stages []*obj.Stage
	index  int
	player *obj.Player
	offset cp.Vector
	rand   *rand.Rand
	clock  float64

	display *obj.Fade
	death   *obj.Fade
	tooMany *obj.Fade

	ambience Ambience
	debug    bool
	quit     bool
}

// DefaultOffset centres the grid origin on the logical display: half the
// display measured in whole tiles, lifted by half a row, scaled by the tile
// width.
func DefaultOffset(tile image.Point) cp.Vector {
	if tile.X <= 0 || tile.Y <= 0 {
		return cp.Vector{}
	}
	cols := float64(common.BaseWidth / tile.X)
	rows := float64(common.BaseHeight / tile.Y)
	return cp.Vector{X: cols / 2, Y: rows/2 - 0.5}.Mult(float64(tile.X))
}

func NewController(stages []*obj.Stage, player *obj.Player, opts Options) (*Controller, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("system: new controller: no stages")
	}
	if player == nil {
		return nil, fmt.Errorf("system: new controller: nil player")
	}
	if opts.Start < 0 || opts.Start > len(stages) {
		return nil, fmt.Errorf("system: new controller: start stage %d out of range [0, %d]", opts.Start, len(stages))
	}

	c := &Controller{
		stages:   stages,
		index:    opts.Start,
		player:   player,
		offset:   opts.Offset,
		rand:     opts.Rand,
		display:  obj.NewFade(opaque, displayFadeRate),
		death:    obj.NewFade(0, overlayFadeRate),
		tooMany:  obj.NewFade(0, overlayFadeRate),
		ambience: opts.Ambience,
		debug:    opts.Debug,
	}
	if c.offset == (cp.Vector{}) {
		c.offset = DefaultOffset(stages[0].World.TileSize())
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewPCG(1, 2))
	}
	player.OnDeath = c.onDeath

	if stage := c.Stage(); stage != nil {
		ctx := c.context(0)
		player.Setup(ctx)
		stage.Setup(ctx)
	}
	return c, nil
}

// Stage returns the current stage, or nil once every stage is cleared.
func (c *Controller) Stage() *obj.Stage {
	if c.index >= len(c.stages) {
		return nil
	}
	return c.stages[c.index]
}

func (c *Controller) Stages() []*obj.Stage   { return c.stages }
func (c *Controller) Index() int             { return c.index }
func (c *Controller) Player() *obj.Player    { return c.player }
func (c *Controller) Offset() cp.Vector      { return c.offset }
func (c *Controller) DisplayAlpha() float64  { return c.display.Alpha }
func (c *Controller) DeathAlpha() float64    { return c.death.Alpha }
func (c *Controller) TooManyAlpha() float64  { return c.tooMany.Alpha }
func (c *Controller) Clock() float64         { return c.clock }
func (c *Controller) Quit() bool             { return c.quit }
func (c *Controller) SetAmbience(a Ambience) { c.ambience = a }

// OverlaysHidden reports whether both overlays are below the visibility
// threshold, i.e. the stage itself is on screen.
func (c *Controller) OverlaysHidden() bool {
	return !c.death.Visible() && !c.tooMany.Visible()
}

func (c *Controller) State() State {
	stage := c.Stage()
	switch {
	case stage == nil:
		return StateEnding
	case !c.player.Alive() || c.death.Visible():
		return StateDead
	case c.tooMany.Target > 0 || c.tooMany.Visible():
		return StateTooManyMoves
	case stage.World.IsExit(c.player.GridPos()):
		return StateFadingOut
	case c.display.Alpha < c.display.Target-1:
		return StateFadingIn
	default:
		return StatePlaying
	}
}

func (c *Controller) context(dt float64) *obj.Context {
	ctx := &obj.Context{
		Stage:  c.Stage(),
		Player: c.player,
		Offset: c.offset,
		DT:     dt,
		Clock:  c.clock,
		Rand:   c.rand,
	}
	if ctx.Stage != nil {
		ctx.World = ctx.Stage.World
	}
	return ctx
}

// Move applies one player move. It is rejected without side effects unless
// a stage is active, the player is alive and idle, neither overlay is up,
// the player is not already standing on the exit and the target cell is
// walkable.
func (c *Controller) Move(dir common.Direction) bool {
	stage := c.Stage()
	if stage == nil {
		return false
	}
	if !c.player.Ready() || !c.player.Alive() {
		return false
	}
	if c.death.Alpha >= 1 || c.tooMany.Alpha >= 1 {
		return false
	}
	if stage.World.IsExit(c.player.GridPos()) {
		return false
	}

	delta := dir.Delta()
	if delta.IsZero() {
		return false
	}
	target := c.player.GridPos().Add(delta)
	if !stage.World.Walkable(target) {
		return false
	}

	c.player.Move(delta)
	stage.MoveCount++
	stage.Update(c.context(0))

	if c.debug {
		log.Printf("move: %s to %s (%d/%d)", dir, target, stage.MoveCount, stage.MaxMoves)
	}
	return true
}

// Restart resets the current stage: overlays fade away, the move count
// drops to zero, the player returns to its origin at full health and every
// entity is set up again. It does nothing once the game has ended.
func (c *Controller) Restart() bool {
	stage := c.Stage()
	if stage == nil {
		return false
	}

	c.death.To(0)
	c.tooMany.To(0)
	c.display.To(opaque)

	stage.Reset(c.context(0))
	c.player.Reset()
	return true
}

// Step advances one frame of dt seconds and then applies events.
func (c *Controller) Step(dt float64, events []obj.Event) {
	if dt < 0 {
		dt = 0
	}
	c.clock += dt

	stage := c.Stage()
	if stage != nil {
		if c.OverlaysHidden() {
			stage.Render(c.context(dt))
			if c.ambience != nil {
				c.ambience.Play()
			}
		} else if c.ambience != nil {
			c.ambience.FadeOut()
		}
	}

	c.death.Step(dt)
	c.tooMany.Step(dt)

	c.checkExit()

	c.display.Step(dt)

	for _, ev := range events {
		switch ev.Kind {
		case obj.EventMove:
			c.Move(ev.Dir)
		case obj.EventRestart:
			c.Restart()
		case obj.EventQuit:
			c.quit = true
		}
	}

	if c.Stage() != nil {
		c.player.Update(c.context(dt))
	}
}

// checkExit fades the display out while the player stands on an exit and,
// once it is dark, either advances to the next stage or raises the
// too-many-moves overlay.
func (c *Controller) checkExit() {
	stage := c.Stage()
	if stage == nil || !stage.World.IsExit(c.player.GridPos()) {
		return
	}

	c.display.To(0)
	if math.Round(c.display.Alpha) > 1 {
		return
	}

	c.player.ReturnToOrigin()
	c.display.To(opaque)
	c.display.Alpha = 2

	if stage.WithinBudget() {
		log.Printf("progress: cleared %q in %d/%d moves", stage.Name, stage.MoveCount, stage.MaxMoves)
		c.index++
		if c.index >= len(c.stages) {
			log.Printf("progress: all %d stages cleared", len(c.stages))
		}
	} else {
		log.Printf("progress: %q took %d moves, budget %d", stage.Name, stage.MoveCount, stage.MaxMoves)
		c.tooMany.To(opaque)
	}

	if next := c.Stage(); next != nil {
		next.Setup(c.context(0))
	}
}

func (c *Controller) onDeath() {
	log.Printf("progress: player died on stage %d", c.index+1)
	c.death.To(opaque)
	c.display.To(opaque)
}

// Snapshot is a plain copy of the controller state for debugging.
type Snapshot struct {
	State        State
	Index        int
	Stages       int
	Stage        string
	MoveCount    int
	MaxMoves     int
	Health       int
	Grid         common.Coord
	Render       cp.Vector
	Ready        bool
	DisplayAlpha float64
	DeathAlpha   float64
	TooManyAlpha float64
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		State:        c.State(),
		Index:        c.index,
		Stages:       len(c.stages),
		Health:       c.player.Health(),
		Grid:         c.player.GridPos(),
		Render:       c.player.RenderPos(),
		Ready:        c.player.Ready(),
		DisplayAlpha: c.display.Alpha,
		DeathAlpha:   c.death.Alpha,
		TooManyAlpha: c.tooMany.Alpha,
	}
	if stage := c.Stage(); stage != nil {
		s.Stage = stage.Name
		s.MoveCount = stage.MoveCount
		s.MaxMoves = stage.MaxMoves
	}
	return s
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"state=%s stage=%d/%d %q moves=%d/%d health=%d grid=%s render=(%.2f,%.2f) ready=%v display=%.1f death=%.1f too_many=%.1f",
		s.State, s.Index+1, s.Stages, s.Stage, s.MoveCount, s.MaxMoves, s.Health, s.Grid,
		s.Render.X, s.Render.Y, s.Ready, s.DisplayAlpha, s.DeathAlpha, s.TooManyAlpha,
	)
}
