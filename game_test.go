package main

import (
	"testing"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/stormtravel/prefabs"
)

func TestOrDefault(t *testing.T) {
	if got := orDefault("", "Paused"); got != "Paused" {
		t.Fatalf("orDefault empty = %q", got)
	}
	if got := orDefault("Halt", "Paused"); got != "Halt" {
		t.Fatalf("orDefault set = %q", got)
	}
}

func TestAmbienceWithoutPlayer(t *testing.T) {
	var nilAmbience *Ambience
	for _, a := range []*Ambience{nilAmbience, NewAmbience(nil)} {
		a.Play()
		a.FadeOut()
		a.Update()
		if err := a.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
}

func TestPlanReload(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  reloadPlan
	}{
		{"script", []string{"prefabs/scripts/hud.tengo"}, reloadPlan{hud: true}},
		{"ui", []string{"prefabs/ui.yaml"}, reloadPlan{ui: true}},
		{"stages", []string{"prefabs/stages.yaml"}, reloadPlan{campaign: true}},
		{"world", []string{"levels/narrows.yaml"}, reloadPlan{campaign: true}},
		{"mixed", []string{"prefabs/ui.yaml", "prefabs/shark.yaml"}, reloadPlan{ui: true, campaign: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := planReload(tt.paths); got != tt.want {
				t.Fatalf("planReload(%v) = %+v, want %+v", tt.paths, got, tt.want)
			}
		})
	}
}

func TestApplyUIRebuildsPanels(t *testing.T) {
	defer func(p, e func(*Game) *ebitenui.UI) { newPauseUI, newEndingUI = p, e }(newPauseUI, newEndingUI)

	var pauseTitles, endingTitles []string
	newPauseUI = func(g *Game) *ebitenui.UI {
		pauseTitles = append(pauseTitles, g.ui.Pause.Title)
		return &ebitenui.UI{}
	}
	newEndingUI = func(g *Game) *ebitenui.UI {
		endingTitles = append(endingTitles, g.ui.Ending.Title)
		return &ebitenui.UI{}
	}

	g := &Game{}
	g.applyUI(prefabs.UISpec{Pause: prefabs.PauseSpec{Title: "Paused"}, Ending: prefabs.OverlaySpec{Title: "Calm"}})
	first := g.pauseUI
	g.applyUI(prefabs.UISpec{Pause: prefabs.PauseSpec{Title: "Halt"}, Ending: prefabs.OverlaySpec{Title: "Clear skies"}})

	if g.pauseUI == first {
		t.Fatalf("pause panel was not rebuilt")
	}
	if len(pauseTitles) != 2 || pauseTitles[1] != "Halt" {
		t.Fatalf("pause panel built with titles %v", pauseTitles)
	}
	if len(endingTitles) != 2 || endingTitles[1] != "Clear skies" {
		t.Fatalf("ending panel built with titles %v", endingTitles)
	}
}

func TestWindowTitle(t *testing.T) {
	g := &Game{}
	if got := windowTitle(g.Title(), 59.7); got != "Travelling through Storm (60 fps)" {
		t.Fatalf("windowTitle = %q", got)
	}
}
