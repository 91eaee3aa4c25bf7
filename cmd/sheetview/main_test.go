package main

import (
	"image"
	"testing"

	"github.com/milk9111/stormtravel/assets"
)

func TestCells(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	img.Pix[3] = 0xff
	got := cells(img, 16)
	if len(got) != 1 || got[0] != image.Rect(0, 0, 16, 16) {
		t.Fatalf("cells = %v, want only the first cell", got)
	}
}

func TestCellsOfGeneratedSheet(t *testing.T) {
	got := cells(assets.SpriteSheet(), assets.CellSize)
	if len(got) < 7 {
		t.Fatalf("got %d non-empty cells, want at least 7", len(got))
	}
}
