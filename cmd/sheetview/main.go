// Command sheetview cycles through the cells of the sprite sheet, or writes
// the generated sheet to a PNG so it can be edited and dropped into assets/.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stormtravel/assets"
)

const viewSize = 128

type sheetGame struct {
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
}

func (g *sheetGame) Update() error {
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *sheetGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x22, 0x12, 0x28, 0xff})
	if len(g.frames) == 0 {
		return
	}
	f := g.frames[g.current]
	scale := float64(viewSize / 2 / f.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(viewSize/4, viewSize/4)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(f, op)
}

func (g *sheetGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// cells cuts img into size by size cells, skipping fully transparent ones.
func cells(img image.Image, size int) []image.Rectangle {
	var out []image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y+size <= b.Max.Y; y += size {
		for x := b.Min.X; x+size <= b.Max.X; x += size {
			r := image.Rect(x, y, x+size, y+size)
			if !empty(img, r) {
				out = append(out, r)
			}
		}
	}
	return out
}

func empty(img image.Image, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return false
			}
		}
	}
	return true
}

func main() {
	export := flag.String("export", "", "write the sprite sheet to this PNG file and exit")
	fps := flag.Int("fps", 2, "frames per second")
	flag.Parse()

	img := assets.SheetImage()
	if *export != "" {
		f, err := os.Create(*export)
		if err != nil {
			log.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		return
	}

	sheet := ebiten.NewImageFromImage(img)
	g := &sheetGame{ticksPerFrm: 1}
	for _, r := range cells(img, assets.CellSize) {
		g.frames = append(g.frames, sheet.SubImage(r).(*ebiten.Image))
	}
	if *fps > 0 {
		g.ticksPerFrm = max(1, 60 / *fps)
	}

	ebiten.SetWindowSize(viewSize*4, viewSize*4)
	ebiten.SetWindowTitle("Sprite sheet")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
