package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RenderBuffer is a cell compositor with dirty tracking. Untouched cells
// receive the default background at flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int

	// DefaultBg fills cells nobody painted a background on
	DefaultBg RGB
	// DefaultFg is the foreground of blank cells
	DefaultFg RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{DefaultFg: RGBWhite}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: b.DefaultFg, Bg: b.DefaultBg}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with the specified blend mode. A zero rune keeps
// the existing glyph
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
		dst.Attrs = attrs
		dst.WideTail = false
	}
	if flags&flagBg != 0 {
		dst.Bg = applyOp(op, dst.Bg, bg, alpha)
		b.touched[idx] = true
	}
	if flags&flagFg != 0 {
		dst.Fg = applyOp(op, dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune, foreground and attrs, preserving the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
	dst.WideTail = false
}

// SetBgOnly updates the background, preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes an opaque cell
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// FillBg paints the background of a rectangle, clipped to the buffer
func (b *RenderBuffer) FillBg(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetBgOnly(col, row, bg)
		}
	}
}

// FillRect writes an opaque blank rectangle
func (b *RenderBuffer) FillRect(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetWithBg(col, row, ' ', b.DefaultFg, bg)
		}
	}
}

// ShadeRect alpha-blends color over the background of a rectangle
func (b *RenderBuffer) ShadeRect(x, y, w, h int, color RGB, alpha float64) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, 0, RGBBlack, color, BlendAlphaBg, alpha, tcell.AttrNone)
		}
	}
}

// DrawText writes s starting at x,y keeping the background and returns the
// column after the last glyph. Wide glyphs occupy two cells
func (b *RenderBuffer) DrawText(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetFgOnly(x, y, r, fg, attrs)
		if w == 2 && b.inBounds(x+1, y) {
			tail := &b.cells[y*b.width+x+1]
			tail.Rune = 0
			tail.WideTail = true
		}
		x += w
	}
	return x
}

// DrawTextBg writes s with an explicit background
func (b *RenderBuffer) DrawTextBg(x, y int, s string, fg, bg RGB, attrs tcell.AttrMask) int {
	start := x
	end := b.DrawText(x, y, s, fg, attrs)
	for col := start; col < end; col++ {
		b.SetBgOnly(col, y, bg)
	}
	return end
}

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ===== OUTPUT =====

// finalize applies the default background to untouched cells
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = b.DefaultBg
		}
	}
}

// FlushToScreen writes the buffer to a tcell screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.WideTail {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(RGBToTcell(c.Fg)).
				Background(RGBToTcell(c.Bg)).
				Attributes(c.Attrs)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
