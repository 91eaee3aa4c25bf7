package ebiten

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the faces used for HUD and overlay text.
type Fonts struct {
	source *text.GoTextFaceSource
	Small  text.Face
	UI     text.Face
}

func NewFonts() (*Fonts, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load goregular: %w", err)
	}
	return &Fonts{
		source: s,
		Small:  &text.GoTextFace{Source: s, Size: 8},
		UI:     text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

// Sized returns a face of the regular font at size points.
func (f *Fonts) Sized(size float64) text.Face {
	return &text.GoTextFace{Source: f.source, Size: size}
}

// DrawOutlinedText draws s at (x, y) in clr with a one pixel border in
// outline. Lines are separated by lineSpacing pixels. alpha scales both.
func DrawOutlinedText(dst *ebiten.Image, s string, face text.Face, x, y, lineSpacing float64, clr, outline color.Color, alpha float32) {
	draw := func(dx, dy float64, c color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+dx, y+dy)
		op.LineSpacing = lineSpacing
		op.ColorScale.ScaleWithColor(c)
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(dst, s, face, op)
	}
	for _, d := range [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		draw(d[0], d[1], outline)
	}
	draw(0, 0, clr)
}

// DrawCenteredText draws s horizontally centred on cx with its top at y.
func DrawCenteredText(dst *ebiten.Image, s string, face text.Face, cx, y float64, clr, outline color.Color, alpha float32) {
	w, _ := text.Measure(s, face, 0)
	DrawOutlinedText(dst, s, face, cx-w/2, y, 0, clr, outline, alpha)
}
