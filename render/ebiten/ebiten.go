// Package ebiten implements render on top of Ebitengine.
package ebiten

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/stormtravel/render"
)

// Image wraps an *ebiten.Image.
type Image struct {
	img *ebiten.Image
}

func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

func (i *Image) Ebiten() *ebiten.Image {
	return i.img
}

// Sheet slices textures from a sprite sheet image.
type Sheet struct {
	src *ebiten.Image
}

func NewSheet(img image.Image) *Sheet {
	return &Sheet{src: ebiten.NewImageFromImage(img)}
}

func (s *Sheet) Region(src image.Rectangle, size image.Point) (render.Image, error) {
	if !src.In(s.src.Bounds()) || src.Empty() {
		return nil, fmt.Errorf("render: region %v outside sheet %v", src, s.src.Bounds())
	}
	if size.X <= 0 || size.Y <= 0 {
		size = src.Size()
	}

	sub := s.src.SubImage(src).(*ebiten.Image)
	dst := ebiten.NewImage(size.X, size.Y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size.X)/float64(src.Dx()), float64(size.Y)/float64(src.Dy()))
	dst.DrawImage(sub, op)
	return &Image{img: dst}, nil
}

// Surface draws onto an *ebiten.Image.
type Surface struct {
	dst *ebiten.Image
}

func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

func (s *Surface) Target() *ebiten.Image {
	return s.dst
}

func (s *Surface) Size() image.Point {
	return s.dst.Bounds().Size()
}

func (s *Surface) DrawImage(img render.Image, at cp.Vector, opts render.DrawOptions) {
	src, ok := img.(*Image)
	if !ok || src == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if opts.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleAlpha(float32(opts.Alpha))
	s.dst.DrawImage(src.img, op)
}

func (s *Surface) FillCircle(center cp.Vector, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

// Outline draws a one pixel silhouette of src in clr around every opaque
// pixel, then src itself on top.
func Outline(dst, src *ebiten.Image, clr color.Color) {
	r, g, b, a := clr.RGBA()
	var cm colorm.ColorM
	cm.Scale(0, 0, 0, float64(a)/0xffff)
	cm.Translate(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff, 0)

	for _, d := range [4]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		op := &colorm.DrawImageOptions{}
		op.GeoM.Translate(float64(d.X), float64(d.Y))
		colorm.DrawImage(dst, src, cm, op)
	}
	dst.DrawImage(src, nil)
}
