package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/render"
)

// Stage is one playable level: a world, the entities on it and the move
// budget.
type Stage struct {
	Name      string
	World     *World
	Entities  []Entity
	MoveCount int
	MaxMoves  int
}

func NewStage(name string, world *World, maxMoves int, entities []Entity) *Stage {
	return &Stage{
		Name:     name,
		World:    world,
		Entities: entities,
		MaxMoves: maxMoves,
	}
}

// Setup returns every entity to its initial placement.
func (s *Stage) Setup(ctx *Context) {
	for _, e := range s.Entities {
		e.Setup(ctx)
	}
}

// Reset clears the move count and sets the entities up again.
func (s *Stage) Reset(ctx *Context) {
	s.MoveCount = 0
	s.Setup(ctx)
}

// WithinBudget reports whether the moves so far fit the budget.
func (s *Stage) WithinBudget() bool {
	return s.MoveCount <= s.MaxMoves
}

// Update gives every entity its turn, in placement order.
func (s *Stage) Update(ctx *Context) {
	for _, e := range s.Entities {
		e.Update(ctx)
	}
}

func (s *Stage) Render(ctx *Context) {
	for _, e := range s.Entities {
		e.Render(ctx)
	}
}

// Draw paints the world and then the entities. It returns the number of
// tiles drawn.
func (s *Stage) Draw(dst render.Surface, offset cp.Vector) int {
	n := s.World.Draw(dst, offset)
	for _, e := range s.Entities {
		e.Draw(dst)
	}
	return n
}

// Count returns how many entities of kind k the stage holds.
func (s *Stage) Count(k Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind() == k {
			n++
		}
	}
	return n
}
