package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stormtravel/common"
)

func main() {
	debug := flag.Bool("debug", false, "log every move and enable F2 state copy")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	stage := flag.Int("stage", 0, "index of the first stage to play")
	watch := flag.Bool("watch", false, "reload prefabs, levels and scripts from disk when they change")
	mute := flag.Bool("mute", false, "disable the ambient sea loop")
	scale := flag.Int("scale", common.WindowScale, "window scale of the 160x120 display")
	seed := flag.Uint64("seed", 0, "random seed for storms and fog (0 uses the clock)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *scale < 1 {
		*scale = 1
	}

	game, err := NewGame(Config{
		Stage: *stage,
		Debug: *debug,
		Watch: *watch,
		Mute:  *mute,
		Seed:  *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(common.BaseWidth**scale, common.BaseHeight**scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
