package system

import (
	"testing"

	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/obj"
)

func TestHUDScript(t *testing.T) {
	hud, err := LoadHUD("hud.tengo")
	if err != nil {
		t.Fatalf("load hud: %v", err)
	}

	tests := []struct {
		name string
		in   HUDValues
		want string
	}{
		{"budget", HUDValues{Moves: 3, MaxMoves: 5, Health: 2}, "Moves: 3 [/5]\nHealth: 2"},
		{"no budget", HUDValues{Moves: 0, Health: 1}, "Moves: 0\nHealth: 1"},
		{"cached repeat", HUDValues{Moves: 0, Health: 1}, "Moves: 0\nHealth: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hud.Text(tt.in)
			if err != nil {
				t.Fatalf("text: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Text(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHUDScriptErrors(t *testing.T) {
	if _, err := NewHUD([]byte("hud := ")); err == nil {
		t.Fatalf("expected a compile error")
	}

	hud, err := NewHUD([]byte("x := moves"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := hud.Text(HUDValues{}); err == nil {
		t.Fatalf("expected an error when the script does not set hud")
	}
}

func TestControllerHUDValues(t *testing.T) {
	c := newController(t, obj.NewStage("a", newWorld(t, column...), 5, nil))
	c.Move(common.DirDown)

	got := c.HUDValues()
	want := HUDValues{Moves: 1, MaxMoves: 5, Health: 2, Stage: 1, Stages: 1}
	if got != want {
		t.Fatalf("HUDValues = %+v, want %+v", got, want)
	}
}
