package render

import (
	"image"
	"image/color"
	"testing"
)

func TestFindBestQuadrant(t *testing.T) {
	red, blue := RGB{255, 0, 0}, RGB{0, 0, 255}
	tests := []struct {
		name   string
		pixels [4]RGB
		want   rune
	}{
		{"uniform", [4]RGB{red, red, red, red}, '█'},
		{"upper half", [4]RGB{red, red, blue, blue}, '▀'},
		{"left half", [4]RGB{red, blue, red, blue}, '▌'},
		{"single corner", [4]RGB{blue, blue, blue, red}, '▗'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			char, fg, bg := findBestQuadrant(tt.pixels)
			// Inverse pattern with swapped colors is equally exact
			inverse := map[rune]rune{'▀': '▄', '▌': '▐', '▗': '▛'}
			if char != tt.want && inverse[tt.want] != char {
				t.Errorf("Expected %q, got %q", tt.want, char)
			}
			if tt.name == "uniform" && (fg != red || bg != red) {
				t.Errorf("Uniform colors fg=%v bg=%v", fg, bg)
			}
		})
	}
}

func TestQuadrantCellsSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{0, 200, 0, 255})
		}
	}
	cells := QuadrantCells(img, 5, 3)
	if len(cells) != 15 {
		t.Fatalf("Expected 15 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c.Rune != '█' || c.Fg.G < 190 {
			t.Errorf("Cell %d = %+v", i, c)
		}
	}
	if QuadrantCells(img, 0, 3) != nil {
		t.Error("Zero width should produce nil")
	}
}

func TestBlitQuadrantsSkipsTransparentCells(t *testing.T) {
	buf := NewRenderBuffer(2, 1)
	buf.SetWithBg(0, 0, 'p', RGBWhite, RGB{1, 2, 3})
	buf.SetWithBg(1, 0, 'q', RGBWhite, RGB{1, 2, 3})

	grid := image.NewRGBA(image.Rect(0, 0, 4, 2))
	// Opaque yellow fills the second cell only
	for y := 0; y < 2; y++ {
		for x := 2; x < 4; x++ {
			grid.SetRGBA(x, y, color.RGBA{255, 255, 0, 255})
		}
	}
	buf.BlitQuadrants(grid, 0, 0, 0.05)

	if buf.Get(0, 0).Rune != 'p' {
		t.Errorf("Transparent cell overwritten: %+v", buf.Get(0, 0))
	}
	c := buf.Get(1, 0)
	if c.Rune != '█' || c.Fg != (RGB{255, 255, 0}) {
		t.Errorf("Opaque cell = %+v", c)
	}
}

func TestOverPremultiplied(t *testing.T) {
	// Half-transparent white over black is mid gray
	got := overPremultiplied(RGBBlack, color.RGBA{128, 128, 128, 128})
	if got.R != 128 {
		t.Errorf("Expected 128, got %v", got)
	}
	if got := overPremultiplied(RGB{10, 20, 30}, color.RGBA{}); got != (RGB{10, 20, 30}) {
		t.Errorf("Transparent sample changed destination: %v", got)
	}
}
