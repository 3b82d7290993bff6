package effect

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/render"
)

var (
	hintColor   = render.RGB{R: 161, G: 161, B: 170}
	bannerBg    = render.RGB{R: 39, G: 39, B: 42}
	bannerColor = render.RGBWhite
)

// dim darkens everything already in buf
func dim(buf *render.RenderBuffer, alpha float64) {
	w, h := buf.Bounds()
	buf.ShadeRect(0, 0, w, h, render.RGBBlack, alpha)
}

// centerText writes s centered on row y and returns its start column
func centerText(buf *render.RenderBuffer, y int, s string, fg render.RGB, attrs tcell.AttrMask) int {
	w, _ := buf.Bounds()
	x := (w - render.TextWidth(s)) / 2
	buf.DrawText(x, y, s, fg, attrs)
	return x
}

// shadedText writes s centered on row y, coloring the i-th of n runes with
// shade(i, n). Columns advance by display width
func shadedText(buf *render.RenderBuffer, y int, s string, shade func(i, n int) render.RGB, attrs tcell.AttrMask) {
	w, _ := buf.Bounds()
	x := (w - render.TextWidth(s)) / 2
	n := utf8.RuneCountInString(s)
	i := 0
	for _, r := range s {
		x = buf.DrawText(x, y, string(r), shade(i, n), attrs)
		i++
	}
}

// banner draws s as a padded pill centered on row y
func banner(buf *render.RenderBuffer, y int, s string) {
	if s == "" {
		return
	}
	w, _ := buf.Bounds()
	padded := "  " + s + "  "
	x := (w - render.TextWidth(padded)) / 2
	buf.DrawTextBg(x, y, padded, bannerColor, bannerBg, tcell.AttrBold)
}

// hexPalette parses colors, falling back to black on bad input
func hexPalette(hex ...string) []render.RGB {
	out := make([]render.RGB, len(hex))
	for i, h := range hex {
		out[i] = render.Hex(h)
	}
	return out
}
