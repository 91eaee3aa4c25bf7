package assets

import (
	"bytes"
	"image"
	"testing"
)

func TestSpriteSheetCells(t *testing.T) {
	sheet := SpriteSheet()
	if got := sheet.Bounds(); got != image.Rect(0, 0, SheetSize, SheetSize) {
		t.Fatalf("unexpected sheet bounds %v", got)
	}

	cells := map[string]image.Point{
		"water": {0, 0},
		"foam":  {16, 0},
		"end":   {32, 0},
		"boat":  {16, 16},
		"boat1": {16, 32},
		"shark": {32, 16},
		"storm": {0, 32},
		"fog":   {0, 48},
	}
	for name, at := range cells {
		cell := sheet.SubImage(image.Rect(at.X, at.Y, at.X+CellSize, at.Y+CellSize)).(*image.NRGBA)
		if opaque(cell) == 0 {
			t.Fatalf("cell %s at %v is empty", name, at)
		}
	}
}

func TestSeaLoopDeterministic(t *testing.T) {
	a := SeaLoop(8000, 1, 7)
	b := SeaLoop(8000, 1, 7)
	if len(a) != 8000*4 {
		t.Fatalf("expected %d bytes, got %d", 8000*4, len(a))
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("expected identical loops for the same seed")
	}
	if bytes.Equal(a, SeaLoop(8000, 1, 8)) {
		t.Fatalf("expected different loops for different seeds")
	}
	if a[0] != 0 || a[1] != 0 {
		t.Fatalf("expected loop to start silent, got %v", a[:4])
	}
}

func TestCleanAssetPath(t *testing.T) {
	tests := map[string]string{
		"sea.wav":                "sea.wav",
		"assets/spritesheet.png": "spritesheet.png",
		"/home/x/assets/a/b.png": "a/b.png",
		"":                       "",
	}
	for in, want := range tests {
		if got := cleanAssetPath(in); got != want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func opaque(img *image.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestGeneratedFallbacks(t *testing.T) {
	if _, err := LoadFile("missing.png"); err == nil {
		t.Fatalf("expected an error for a file that is not on disk")
	}
	if _, err := LoadFile("load.go"); err == nil {
		t.Fatalf("package sources must not be served as assets")
	}
	if got := SheetImage().Bounds(); got != SpriteSheet().Bounds() {
		t.Fatalf("expected the generated sheet, got bounds %v", got)
	}
}
