package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/stormtravel/common"
)

const (
	ambienceVolume     = 0.3
	ambienceFadeFrames = common.TPS
)

// Ambience loops the sea sound while a stage is on screen. FadeOut ramps
// the volume down over a second and then pauses the player.
type Ambience struct {
	player   *audio.Player
	fadeLeft int
}

func NewAmbience(p *audio.Player) *Ambience {
	return &Ambience{player: p}
}

// Play starts the loop unless it is playing or still fading out.
func (a *Ambience) Play() {
	if a == nil || a.player == nil || a.fadeLeft > 0 || a.player.IsPlaying() {
		return
	}
	a.player.SetVolume(ambienceVolume)
	a.player.Play()
}

func (a *Ambience) FadeOut() {
	if a == nil || a.player == nil || a.fadeLeft > 0 || !a.player.IsPlaying() {
		return
	}
	a.fadeLeft = ambienceFadeFrames
}

// Update advances a running fade by one frame.
func (a *Ambience) Update() {
	if a == nil || a.player == nil || a.fadeLeft <= 0 {
		return
	}
	a.fadeLeft--
	a.player.SetVolume(ambienceVolume * float64(a.fadeLeft) / ambienceFadeFrames)
	if a.fadeLeft == 0 {
		a.player.Pause()
	}
}

func (a *Ambience) Close() error {
	if a == nil || a.player == nil {
		return nil
	}
	return a.player.Close()
}
