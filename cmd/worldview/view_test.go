package main

import (
	"image"
	"testing"

	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/levels"
	"github.com/milk9111/stormtravel/prefabs"
)

func TestGlyphs(t *testing.T) {
	world, err := levels.Load("shallows.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	v := newView(world, nil)
	v.centre(40, 20)

	glyphs := v.glyphs()
	tiles := len(world.Layer("tiles"))
	if len(glyphs) != tiles+1 {
		t.Fatalf("got %d glyphs, want %d tiles plus the player", len(glyphs), tiles)
	}

	player := glyphs[len(glyphs)-1]
	if player.Rune != '@' || player.At != image.Pt(20, 10) {
		t.Fatalf("player glyph %+v, want '@' at (20,10)", player)
	}

	exits := 0
	for _, g := range glyphs {
		if g.Kind == glyphExit {
			exits++
		}
	}
	if exits != 1 {
		t.Fatalf("got %d exit glyphs, want 1", exits)
	}
}

func TestPointSteps(t *testing.T) {
	v := newView(&levels.World{}, nil)
	origin := v.point(common.Coord{})

	if d := v.point(common.Coord{X: 1}).Sub(origin); d != image.Pt(4, 0) {
		t.Fatalf("column step %v, want (4,0)", d)
	}
	if d := v.point(common.Coord{Y: 1}).Sub(origin); d != image.Pt(2, 1) {
		t.Fatalf("row step %v, want (2,1)", d)
	}
}

func TestStagePlacements(t *testing.T) {
	world, err := levels.Load("shallows.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	spec, err := prefabs.LoadStagesSpec()
	if err != nil {
		t.Fatalf("LoadStagesSpec: %v", err)
	}
	stages := stagesOn(spec, "shallows.yaml")
	if len(stages) == 0 {
		t.Fatalf("no stages on shallows.yaml")
	}

	v := newView(world, &stages[0])
	sharks := 0
	for _, g := range v.glyphs() {
		if g.Kind == glyphShark {
			sharks++
		}
	}
	if sharks != 2 {
		t.Fatalf("got %d sharks on %q, want 2", sharks, stages[0].Name)
	}
}

func TestCycle(t *testing.T) {
	tests := []struct {
		i, step, n, want int
	}{
		{-1, 1, 3, 0},
		{2, 1, 3, -1},
		{-1, -1, 3, 2},
		{0, -1, 3, -1},
		{-1, 1, 0, -1},
	}
	for _, tt := range tests {
		if got := cycle(tt.i, tt.step, tt.n); got != tt.want {
			t.Fatalf("cycle(%d, %d, %d) = %d, want %d", tt.i, tt.step, tt.n, got, tt.want)
		}
	}
}
