package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

const (
	SheetSize = 64
	CellSize  = 16
)

var (
	seaTop    = color.NRGBA{R: 0x3a, G: 0x6f, B: 0x8f, A: 0xff}
	seaSide   = color.NRGBA{R: 0x26, G: 0x48, B: 0x66, A: 0xff}
	seaShade  = color.NRGBA{R: 0x1b, G: 0x33, B: 0x4d, A: 0xff}
	sandTop   = color.NRGBA{R: 0xd9, G: 0xa4, B: 0x41, A: 0xff}
	hullColor = color.NRGBA{R: 0x8a, G: 0x4b, B: 0x2e, A: 0xff}
	fogColor  = color.NRGBA{R: 0xc8, G: 0xc0, B: 0xd8, A: 0xb0}
)

// SpriteSheet paints the placeholder atlas. Cell origins:
//
//	(0,0) water   (16,0) foam    (32,0) end
//	(16,16) boat  (16,32) damaged boat  (32,16) shark
//	(0,32) storm  (0,48) fog
func SpriteSheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SheetSize, SheetSize))

	drawTile(img, image.Pt(0, 0), seaTop, nil)
	drawTile(img, image.Pt(16, 0), seaTop, colornames.White)
	drawTile(img, image.Pt(32, 0), sandTop, colornames.Khaki)

	drawBoat(img, image.Pt(16, 16), colornames.Ivory)
	drawBoat(img, image.Pt(16, 32), colornames.Rosybrown)
	drawFin(img, image.Pt(32, 16))
	drawCloud(img, image.Pt(0, 32))
	fillCircle(img, image.Pt(8, 56), 5, fogColor)
	fillCircle(img, image.Pt(5, 54), 3, fogColor)
	fillCircle(img, image.Pt(11, 55), 3, fogColor)

	return img
}

// drawTile paints an isometric block: a diamond top face over two shaded
// sides. speckle, when set, dots the top face.
func drawTile(img *image.NRGBA, at image.Point, top color.Color, speckle color.Color) {
	for y := 0; y < 8; y++ {
		half := 8 - abs(y*2-7)/2 - 1
		for x := 8 - half - 1; x <= 8+half; x++ {
			img.Set(at.X+x, at.Y+y, top)
		}
	}
	for y := 4; y < 12; y++ {
		for x := 0; x < 16; x++ {
			if img.NRGBAAt(at.X+x, at.Y+y).A != 0 {
				continue
			}
			side := seaSide
			if x >= 8 {
				side = seaShade
			}
			img.Set(at.X+x, at.Y+y, side)
		}
	}
	if speckle != nil {
		for _, p := range []image.Point{{5, 3}, {9, 2}, {11, 4}, {7, 5}} {
			img.Set(at.X+p.X, at.Y+p.Y, speckle)
		}
	}
}

func drawBoat(img *image.NRGBA, at image.Point, sail color.Color) {
	for y := 10; y < 13; y++ {
		inset := y - 10
		fillRect(img, image.Rect(at.X+3+inset, at.Y+y, at.X+13-inset, at.Y+y+1), hullColor)
	}
	fillRect(img, image.Rect(at.X+7, at.Y+2, at.X+8, at.Y+10), colornames.Saddlebrown)
	for y := 3; y < 9; y++ {
		fillRect(img, image.Rect(at.X+8, at.Y+y, at.X+8+(y-2), at.Y+y+1), sail)
	}
}

func drawFin(img *image.NRGBA, at image.Point) {
	for y := 4; y < 12; y++ {
		w := (y - 3) / 2
		fillRect(img, image.Rect(at.X+8-w, at.Y+y, at.X+9, at.Y+y+1), colornames.Slategray)
	}
	fillRect(img, image.Rect(at.X+4, at.Y+12, at.X+12, at.Y+13), colornames.White)
}

func drawCloud(img *image.NRGBA, at image.Point) {
	fillCircle(img, at.Add(image.Pt(5, 6)), 4, colornames.Darkslategray)
	fillCircle(img, at.Add(image.Pt(10, 5)), 5, colornames.Darkslategray)
	fillRect(img, image.Rect(at.X+3, at.Y+6, at.X+14, at.Y+10), colornames.Darkslategray)
	bolt := []image.Point{{8, 10}, {7, 11}, {8, 12}, {7, 13}, {6, 14}}
	for _, p := range bolt {
		img.Set(at.X+p.X, at.Y+p.Y, colornames.Gold)
	}
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func fillCircle(img *image.NRGBA, center image.Point, radius int, c color.Color) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				img.Set(center.X+x, center.Y+y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
