// Command worldview previews a world file in the terminal with the game's
// isometric projection. Arrow keys pan, n and p step through the stages
// placed on that world, q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/stormtravel/levels"
	"github.com/milk9111/stormtravel/prefabs"
)

var styles = map[glyphKind]tcell.Style{
	glyphWater:  tcell.StyleDefault.Foreground(tcell.ColorSteelBlue),
	glyphExit:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	glyphPlayer: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	glyphShark:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	glyphStorm:  tcell.StyleDefault.Foreground(tcell.ColorPurple),
	glyphFog:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

func main() {
	worldName := flag.String("world", "shallows.yaml", "world file under levels/")
	flag.Parse()

	world, err := levels.Load(*worldName)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := prefabs.LoadStagesSpec()
	if err != nil {
		log.Fatal(err)
	}
	stages := stagesOn(spec, *worldName)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	picked := -1
	v := newView(world, nil)
	w, h := screen.Size()
	v.centre(w, h)

	for {
		draw(screen, v, title(*worldName, stages, picked))

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := screen.Size()
			v.centre(w, h)
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyUp:
				v.pan(0, 1)
			case tcell.KeyDown:
				v.pan(0, -1)
			case tcell.KeyLeft:
				v.pan(2, 0)
			case tcell.KeyRight:
				v.pan(-2, 0)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return
				case 'n':
					picked = cycle(picked, 1, len(stages))
				case 'p':
					picked = cycle(picked, -1, len(stages))
				}
				v.stage = nil
				if picked >= 0 {
					v.stage = &stages[picked]
				}
			}
		}
	}
}

func draw(screen tcell.Screen, v *view, header string) {
	screen.Clear()
	w, h := screen.Size()
	for _, g := range v.glyphs() {
		if g.At.X < 0 || g.At.Y < 1 || g.At.X >= w || g.At.Y >= h {
			continue
		}
		screen.SetContent(g.At.X, g.At.Y, g.Rune, nil, styles[g.Kind])
	}
	for i, r := range header {
		if i >= w {
			break
		}
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

// stagesOn returns the stages played on world.
func stagesOn(spec *prefabs.StagesSpec, world string) []prefabs.StageSpec {
	var out []prefabs.StageSpec
	for _, s := range spec.Stages {
		if s.World == world {
			out = append(out, s)
		}
	}
	return out
}

// cycle steps i through -1 (no stage) and 0..n-1, wrapping both ways.
func cycle(i, step, n int) int {
	if n == 0 {
		return -1
	}
	i = (i + 1 + step) % (n + 1)
	if i < 0 {
		i += n + 1
	}
	return i - 1
}

func title(world string, stages []prefabs.StageSpec, picked int) string {
	if picked < 0 {
		return fmt.Sprintf(" %s: %d stages (n/p to pick, q to quit) ", world, len(stages))
	}
	s := stages[picked]
	return fmt.Sprintf(" %s: %s, %d entities, %d moves ", world, s.Name, len(s.Entities), s.MaxMoves)
}
