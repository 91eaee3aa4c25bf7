// Command headless plays a scripted run of the game without a window and
// prints the controller state at every stage change.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/milk9111/stormtravel/assets"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/render"
	"github.com/milk9111/stormtravel/system"
)

func main() {
	scriptPath := flag.String("script", "", "file with one move per token (- for stdin)")
	moves := flag.String("moves", "", "inline script, e.g. \"down down left\"")
	stage := flag.Int("stage", 0, "index of the first stage")
	seed := flag.Uint64("seed", 1, "random seed for storms and fog")
	fps := flag.Int("fps", common.TPS, "simulated frames per second")
	debug := flag.Bool("debug", false, "log every accepted move")
	flag.Parse()

	var src io.Reader = strings.NewReader(*moves)
	switch *scriptPath {
	case "":
	case "-":
		src = os.Stdin
	default:
		f, err := os.Open(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		src = f
	}
	events, err := parseScript(src)
	if err != nil {
		log.Fatal(err)
	}
	if *fps <= 0 {
		log.Fatalf("headless: fps must be positive, got %d", *fps)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	b := assets.SheetImage().Bounds()
	sheet := &render.BlankSheet{Width: b.Dx(), Height: b.Dy()}
	campaign, err := system.LoadCampaign(sheet, rng)
	if err != nil {
		log.Fatal(err)
	}
	ctrl, err := system.NewController(campaign.Stages, campaign.Player, system.Options{
		Start: *stage,
		Rand:  rng,
		Debug: *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	r := newRunner(system.NewLoop(ctrl), 1/float64(*fps), os.Stdout)
	final := r.run(events)
	fmt.Printf("moves: %d accepted, %d rejected; frames: %d\n", r.accepted, r.rejected, r.loop.Frames())
	if final.State == system.StateEnding {
		fmt.Println("all stages cleared")
	}
}
