package prefabs

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadStagesSpec(t *testing.T) {
	spec, err := LoadStagesSpec()
	if err != nil {
		t.Fatalf("load stages: %v", err)
	}

	budgets := []int{5, 5, 5, 7, 9, 13, 11, 9, 5, 8, 10}
	if len(spec.Stages) != len(budgets) {
		t.Fatalf("expected %d stages, got %d", len(budgets), len(spec.Stages))
	}
	for i, want := range budgets {
		if got := spec.Stages[i].MaxMoves; got != want {
			t.Fatalf("stage %d: expected budget %d, got %d", i, want, got)
		}
		if _, err := Load(spec.Stages[i].World); err == nil {
			t.Fatalf("stage %d: world %q should live in levels, not prefabs", i, spec.Stages[i].World)
		}
	}

	first := spec.Stages[0]
	if len(first.Entities) != 2 || first.Entities[0].Kind != KindShark {
		t.Fatalf("unexpected first stage entities: %+v", first.Entities)
	}
	if first.Entities[0].Dir != nil {
		t.Fatalf("expected default shark direction, got %v", *first.Entities[0].Dir)
	}
}

func TestStagesSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    StagesSpec
		wantErr error
	}{
		{
			name:    "unknown kind",
			spec:    StagesSpec{Stages: []StageSpec{{World: "w.yaml", Entities: []PlacementSpec{{Kind: "kraken"}}}}},
			wantErr: ErrUnknownKind,
		},
		{
			name: "empty",
			spec: StagesSpec{},
		},
		{
			name: "missing world",
			spec: StagesSpec{Stages: []StageSpec{{Name: "a"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStagesSpecDefaults(t *testing.T) {
	spec := StagesSpec{Stages: []StageSpec{{World: "w.yaml"}}}
	if err := spec.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if spec.Stages[0].MaxMoves != 5 {
		t.Fatalf("expected default budget 5, got %d", spec.Stages[0].MaxMoves)
	}
	if spec.Stages[0].Name != "stage 1" {
		t.Fatalf("expected generated name, got %q", spec.Stages[0].Name)
	}
}

func TestLoadTuning(t *testing.T) {
	tuning, err := LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}
	if tuning.Player.MaxHealth != 2 || tuning.Player.MoveSpeed != 20 {
		t.Fatalf("unexpected player tuning: %+v", tuning.Player)
	}
	if tuning.Storm.MoveSpeed != 40 || tuning.Storm.DropHeight != 64 {
		t.Fatalf("unexpected storm tuning: %+v", tuning.Storm)
	}
	if got := tuning.Shark.Sprite.Rect(); got != image.Rect(32, 16, 48, 32) {
		t.Fatalf("unexpected shark sprite %v", got)
	}
	if len(tuning.Fog.Halo.Points) != 7 {
		t.Fatalf("expected 7 halo points, got %d", len(tuning.Fog.Halo.Points))
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#652654"`, want: color.NRGBA{R: 0x65, G: 0x26, B: 0x54, A: 0xff}},
		{in: `"22122880"`, want: color.NRGBA{R: 0x22, G: 0x12, B: 0x28, A: 0x80}},
		{in: `"#fff"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if c.Color != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, c.Color)
			}
		})
	}
}

func TestScriptPath(t *testing.T) {
	for _, in := range []string{"hud.tengo", "scripts/hud.tengo", "prefabs/scripts/hud.tengo", "prefabs/hud.tengo"} {
		if got := scriptPath(in); got != "scripts/hud.tengo" {
			t.Fatalf("scriptPath(%q) = %q", in, got)
		}
	}
	if _, err := LoadScript("hud.tengo"); err != nil {
		t.Fatalf("load hud script: %v", err)
	}
}

func TestLoadSpecFile(t *testing.T) {
	for _, name := range []string{"stages.yaml", "prefabs/stages.yaml"} {
		if got := specPath(name); got != "stages.yaml" {
			t.Fatalf("specPath(%q) = %q", name, got)
		}
		if _, err := Load(name); err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
	}
	if _, err := Load("missing.yaml"); err == nil {
		t.Fatalf("expected an error for a missing spec")
	}
}
