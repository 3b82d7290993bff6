package render

import (
	"errors"
	"testing"
)

func TestNewCanvasUnavailable(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewCanvas(size[0], size[1]); !errors.Is(err, ErrCanvasUnavailable) {
			t.Errorf("NewCanvas(%d,%d) err = %v", size[0], size[1], err)
		}
	}
}

func TestCanvasLogicalSize(t *testing.T) {
	c, err := NewCanvas(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	w, h := c.Logical()
	if w != canvasReferenceWidth {
		t.Errorf("Expected logical width %v, got %v", canvasReferenceWidth, w)
	}
	if want := 24.0 * CanvasPixelsY * canvasReferenceWidth / (80 * CanvasPixelsX); h != want {
		t.Errorf("Expected logical height %v, got %v", want, h)
	}
}

func TestCanvasDotComposites(t *testing.T) {
	c, err := NewCanvas(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear()
	w, h := c.Logical()
	c.Dot(w/2, h/2, 6, Hex("#10b981"), 1)

	buf := NewRenderBuffer(20, 10)
	c.Composite(buf, 0, 0)

	if buf.Get(10, 5).Rune == 0 {
		t.Error("Expected the dot to reach the center cell")
	}
	if buf.Get(0, 0).Rune != 0 {
		t.Error("Expected corners to stay untouched")
	}
}

func TestCanvasClearIsTransparent(t *testing.T) {
	c, _ := NewCanvas(4, 2)
	c.Dot(0, 0, 20, RGBWhite, 1)
	c.Clear()
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("Clear left pixels behind")
		}
	}
}

func TestCanvasText(t *testing.T) {
	c, err := NewCanvas(40, 20)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear()
	w, h := c.Logical()
	if err := c.Text("20", w/2, h/2, 8, RGBWhite, 1); err != nil {
		t.Fatalf("Text: %v", err)
	}
	lit := 0
	img := c.Image()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Expected glyph pixels")
	}
}

func TestCanvasCellToLogical(t *testing.T) {
	c, err := NewCanvas(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	x, y := c.CellToLogical(0, 0)
	if x != 8 || y != 16 {
		t.Errorf("CellToLogical(0,0) = %v,%v, want 8,16", x, y)
	}
	x, _ = c.CellToLogical(79, 0)
	if x != 1272 {
		t.Errorf("CellToLogical(79,0) x = %v, want 1272", x)
	}
}

func TestCanvasPolygonAndLine(t *testing.T) {
	c, err := NewCanvas(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	w, h := c.Logical()
	c.Polygon([][2]float64{{0, 0}, {w / 2, 0}, {w / 2, h}, {0, h}}, RGB{255, 0, 0}, 1)
	img := c.Image()
	if a := img.RGBAAt(10, 40).A; a != 255 {
		t.Errorf("Expected filled left half, alpha %d", a)
	}
	if a := img.RGBAAt(70, 40).A; a != 0 {
		t.Errorf("Expected empty right half, alpha %d", a)
	}

	c.Clear()
	c.Line(w*0.75, 0, w*0.75, h, 40, RGBWhite, 1)
	if a := c.Image().RGBAAt(60, 40).A; a == 0 {
		t.Error("Expected line to cover its column")
	}
	if a := c.Image().RGBAAt(5, 40).A; a != 0 {
		t.Errorf("Expected nothing far from the line, alpha %d", a)
	}
}
