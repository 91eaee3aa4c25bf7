package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/stormtravel/prefabs"
)

// HUDValues are the inputs of the HUD script.
type HUDValues struct {
	Moves    int
	MaxMoves int
	Health   int
	Stage    int
	Stages   int
}

// HUD formats the heads-up text with a tengo script. The script sees the
// globals moves, max_moves, health, stage and stages and must set hud.
type HUD struct {
	compiled *tengo.Compiled
	last     HUDValues
	text     string
	valid    bool
}

// LoadHUD compiles the named script from prefabs/scripts.
func LoadHUD(name string) (*HUD, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("system: load hud %s: %w", name, err)
	}
	return NewHUD(src)
}

func NewHUD(src []byte) (*HUD, error) {
	script := tengo.NewScript(src)
	for _, name := range []string{"moves", "max_moves", "health", "stage", "stages"} {
		if err := script.Add(name, 0); err != nil {
			return nil, fmt.Errorf("system: hud add %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("fmt", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: compile hud: %w", err)
	}
	return &HUD{compiled: compiled}, nil
}

// Text runs the script for v. The result is reused while v is unchanged.
func (h *HUD) Text(v HUDValues) (string, error) {
	if h.valid && v == h.last {
		return h.text, nil
	}

	vars := map[string]int{
		"moves":     v.Moves,
		"max_moves": v.MaxMoves,
		"health":    v.Health,
		"stage":     v.Stage,
		"stages":    v.Stages,
	}
	for name, val := range vars {
		if err := h.compiled.Set(name, val); err != nil {
			return "", fmt.Errorf("system: hud set %s: %w", name, err)
		}
	}
	if err := h.compiled.Run(); err != nil {
		return "", fmt.Errorf("system: run hud: %w", err)
	}
	if !h.compiled.IsDefined("hud") {
		return "", fmt.Errorf("system: run hud: script did not set hud")
	}

	h.text = h.compiled.Get("hud").String()
	h.last = v
	h.valid = true
	return h.text, nil
}

// HUDValues collects the HUD inputs from c.
func (c *Controller) HUDValues() HUDValues {
	v := HUDValues{
		Health: c.player.Health(),
		Stage:  c.index + 1,
		Stages: len(c.stages),
	}
	if stage := c.Stage(); stage != nil {
		v.Moves = stage.MoveCount
		v.MaxMoves = stage.MaxMoves
	}
	return v
}
