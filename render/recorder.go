package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jakecoffman/cp"
)

// Blank is an Image with a size and no pixels.
type Blank struct {
	Src  image.Rectangle
	Size image.Point
}

func (b Blank) Bounds() image.Rectangle {
	return image.Rectangle{Max: b.Size}
}

// BlankSheet hands out Blank images. It backs window-less runs.
type BlankSheet struct {
	Width, Height int
	Requests      int
}

func (s *BlankSheet) Region(src image.Rectangle, size image.Point) (Image, error) {
	s.Requests++
	if s.Width > 0 && !src.In(image.Rect(0, 0, s.Width, s.Height)) {
		return nil, fmt.Errorf("render: region %v outside sheet %dx%d", src, s.Width, s.Height)
	}
	return Blank{Src: src, Size: size}, nil
}

// Op is one recorded draw call.
type Op struct {
	Image  Image
	At     cp.Vector
	Opts   DrawOptions
	Radius float64
	Color  color.Color
}

// Recorder is a Surface that records draw calls instead of painting.
type Recorder struct {
	W, H    int
	Images  []Op
	Circles []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() image.Point {
	return image.Pt(r.W, r.H)
}

func (r *Recorder) DrawImage(img Image, at cp.Vector, opts DrawOptions) {
	r.Images = append(r.Images, Op{Image: img, At: at, Opts: opts})
}

func (r *Recorder) FillCircle(center cp.Vector, radius float64, clr color.Color) {
	r.Circles = append(r.Circles, Op{At: center, Radius: radius, Color: clr})
}

func (r *Recorder) Reset() {
	r.Images = r.Images[:0]
	r.Circles = r.Circles[:0]
}
