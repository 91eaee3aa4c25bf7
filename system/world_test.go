package system

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/stormtravel/obj"
	"github.com/milk9111/stormtravel/prefabs"
	"github.com/milk9111/stormtravel/render"
)

func TestLoadCampaign(t *testing.T) {
	sheet := &render.BlankSheet{Width: 64, Height: 64}
	c, err := LoadCampaign(sheet, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("load campaign: %v", err)
	}

	if len(c.Stages) != 11 {
		t.Fatalf("expected 11 stages, got %d", len(c.Stages))
	}
	if c.Worlds() != 2 {
		t.Fatalf("expected stages to share two world files, got %d", c.Worlds())
	}
	if c.Stages[0].World != c.Stages[8].World || c.Stages[9].World == c.Stages[0].World {
		t.Fatalf("unexpected world sharing")
	}

	counts := []struct {
		stage               int
		sharks, storms, fog int
	}{
		{0, 2, 0, 0},
		{1, 0, 4, 0},
		{3, 0, 0, 6},
		{4, 4, 2, 5},
		{10, 4, 0, 8},
	}
	for _, tt := range counts {
		s := c.Stages[tt.stage]
		if s.Count(obj.KindShark) != tt.sharks || s.Count(obj.KindStorm) != tt.storms || s.Count(obj.KindFog) != tt.fog {
			t.Fatalf("stage %d: got %d sharks %d storms %d fog", tt.stage+1,
				s.Count(obj.KindShark), s.Count(obj.KindStorm), s.Count(obj.KindFog))
		}
	}

	if c.Player.MaxHealth() != 2 || len(c.Sprites.Player) != 2 {
		t.Fatalf("unexpected player: health %d sprites %d", c.Player.MaxHealth(), len(c.Sprites.Player))
	}

	ctl, err := NewController(c.Stages, c.Player, Options{Start: 3})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if ctl.Stage().Name != c.Stages[3].Name {
		t.Fatalf("expected to start on stage 4, got %q", ctl.Stage().Name)
	}
}

func TestSpawnRejectsUnknownKind(t *testing.T) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	_, err = spawnEntities([]prefabs.PlacementSpec{{Kind: "kraken"}}, tuning, Sprites{}, rand.New(rand.NewPCG(1, 1)))
	if !errors.Is(err, prefabs.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestSpawnSharkHeading(t *testing.T) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	ents, err := spawnEntities([]prefabs.PlacementSpec{
		{Kind: prefabs.KindShark},
		{Kind: prefabs.KindShark, Dir: &[2]int{0, -1}},
	}, tuning, Sprites{}, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if d := ents[0].(*obj.Shark).Direction(); d.X != 0 || d.Y != 1 {
		t.Fatalf("expected the tuned default heading, got %s", d)
	}
	if d := ents[1].(*obj.Shark).Direction(); d.X != 0 || d.Y != -1 {
		t.Fatalf("expected the placed heading, got %s", d)
	}
}
