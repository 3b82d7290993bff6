package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferClipping(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	buf.SetWithBg(-1, 0, 'x', RGBWhite, RGBBlack)
	buf.SetWithBg(4, 0, 'x', RGBWhite, RGBBlack)
	buf.SetFgOnly(0, 2, 'x', RGBWhite, tcell.AttrNone)
	if (buf.Get(9, 9) != Cell{}) {
		t.Error("Out of bounds Get should return zero cell")
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if buf.Get(x, y).Rune != 0 {
				t.Fatalf("Cell %d,%d written by out of bounds call", x, y)
			}
		}
	}
}

func TestRenderBufferSetModes(t *testing.T) {
	buf := NewRenderBuffer(2, 1)
	buf.SetWithBg(0, 0, 'a', RGB{10, 10, 10}, RGB{100, 100, 100})

	buf.Set(0, 0, 0, RGBBlack, RGB{200, 200, 200}, BlendAlphaBg, 0.5, tcell.AttrNone)
	c := buf.Get(0, 0)
	if c.Rune != 'a' {
		t.Errorf("Zero rune should keep glyph, got %q", c.Rune)
	}
	if c.Bg != (RGB{150, 150, 150}) {
		t.Errorf("Alpha bg = %v", c.Bg)
	}
	if c.Fg != (RGB{10, 10, 10}) {
		t.Errorf("Bg-only mode touched fg: %v", c.Fg)
	}

	buf.Set(0, 0, 'b', RGB{255, 0, 0}, RGBBlack, BlendFgOnly, 1, tcell.AttrBold)
	c = buf.Get(0, 0)
	if c.Rune != 'b' || c.Fg != (RGB{255, 0, 0}) || c.Bg != (RGB{150, 150, 150}) || c.Attrs != tcell.AttrBold {
		t.Errorf("Fg-only replace produced %+v", c)
	}
}

func TestRenderBufferResizeClears(t *testing.T) {
	buf := NewRenderBuffer(3, 3)
	buf.SetWithBg(1, 1, 'x', RGBWhite, RGBWhite)
	buf.Resize(2, 2)
	if w, h := buf.Bounds(); w != 2 || h != 2 {
		t.Fatalf("Bounds = %d,%d", w, h)
	}
	if buf.Get(1, 1).Rune != 0 {
		t.Error("Resize did not clear")
	}
}

func TestDrawTextWideGlyphs(t *testing.T) {
	buf := NewRenderBuffer(10, 1)
	end := buf.DrawText(0, 0, "a🐱b", RGBWhite, tcell.AttrNone)
	if end != 4 {
		t.Errorf("Expected end column 4, got %d", end)
	}
	if buf.Get(1, 0).Rune != '🐱' || !buf.Get(2, 0).WideTail || buf.Get(3, 0).Rune != 'b' {
		t.Errorf("Unexpected layout: %+v %+v %+v", buf.Get(1, 0), buf.Get(2, 0), buf.Get(3, 0))
	}
	if TextWidth("a🐱b") != 4 {
		t.Errorf("TextWidth = %d", TextWidth("a🐱b"))
	}
}

func TestFlushToScreenAppliesDefaultBackground(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(3, 1)

	buf := NewRenderBuffer(3, 1)
	buf.DefaultBg = RGB{26, 27, 38}
	buf.SetWithBg(0, 0, 'x', RGBWhite, RGB{255, 0, 0})
	buf.SetFgOnly(1, 0, 'y', RGBWhite, tcell.AttrNone)
	buf.FlushToScreen(screen)

	cells, w, _ := screen.GetContents()
	if w != 3 {
		t.Fatalf("Screen width %d", w)
	}
	if string(cells[0].Runes) != "x" || string(cells[1].Runes) != "y" {
		t.Errorf("Unexpected runes %q %q", string(cells[0].Runes), string(cells[1].Runes))
	}
	_, bg0, _ := cells[0].Style.Decompose()
	_, bg1, _ := cells[1].Style.Decompose()
	if TcellToRGB(bg0) != (RGB{255, 0, 0}) {
		t.Errorf("Painted background lost: %v", TcellToRGB(bg0))
	}
	if TcellToRGB(bg1) != buf.DefaultBg {
		t.Errorf("Untouched cell should get default background, got %v", TcellToRGB(bg1))
	}
}
