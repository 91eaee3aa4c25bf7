// Package render is the drawing surface the game core paints onto. It keeps
// the simulation packages free of any graphics backend.
package render

import (
	"image"
	"image/color"

	"github.com/jakecoffman/cp"
)

// Image is a drawable texture.
type Image interface {
	Bounds() image.Rectangle
}

// Sheet slices textures out of a sprite sheet.
type Sheet interface {
	// Region returns the src sub-rectangle scaled to size.
	Region(src image.Rectangle, size image.Point) (Image, error)
}

// DrawOptions tweak a single DrawImage call.
type DrawOptions struct {
	// Alpha multiplies the image alpha, 0..1.
	Alpha float64
	FlipX bool
}

var Opaque = DrawOptions{Alpha: 1}

// Surface is a destination for drawing.
type Surface interface {
	Size() image.Point
	DrawImage(img Image, at cp.Vector, opts DrawOptions)
	FillCircle(center cp.Vector, radius float64, clr color.Color)
}
