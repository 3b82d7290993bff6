package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell. A zero Rune renders as a space;
// WideTail marks the cell covered by the right half of a wide glyph
type Cell struct {
	Rune     rune
	Fg       RGB
	Bg       RGB
	Attrs    tcell.AttrMask
	WideTail bool
}
