package obj

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stormtravel/levels"
	"github.com/milk9111/stormtravel/render"
)

var testOffset = cp.Vector{X: 80, Y: 48}

// newTestWorld builds a world from rows of '~' water, 'E' exit and '.' gaps
// whose top-left cell is (ox, oy).
func newTestWorld(t *testing.T, ox, oy int, rows ...string) *World {
	t.Helper()

	var b strings.Builder
	b.WriteString("tile_size: 16\n")
	b.WriteString("groups:\n  sea:\n    water: [0, 0, 16, 16]\n    end: [32, 0, 16, 16]\n")
	b.WriteString("legend:\n  \"~\": sea/water\n  \"E\": sea/end\n")
	fmt.Fprintf(&b, "origin: [%d, %d]\n", ox, oy)
	b.WriteString("layers:\n  tiles:\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "    - %q\n", row)
	}

	data, err := levels.Parse("test", []byte(b.String()))
	if err != nil {
		t.Fatalf("parse test world: %v", err)
	}
	w, err := NewWorld(data, &render.BlankSheet{Width: 64, Height: 64})
	if err != nil {
		t.Fatalf("new test world: %v", err)
	}
	return w
}

func newTestContext(w *World, p *Player) *Context {
	return &Context{
		World:  w,
		Stage:  NewStage("test", w, 5, nil),
		Player: p,
		Offset: testOffset,
		DT:     10,
		Rand:   rand.New(rand.NewPCG(1, 2)),
	}
}
