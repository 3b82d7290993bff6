package effect

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

// fireGlyphs map heat to density, coolest first
var fireGlyphs = []rune(" .:-=+*#%@")

// firePalette spreads the classic doom fire ramp across every heat level
var firePalette = func() []render.RGB {
	stops := hexPalette("#070707", "#571f07", "#9f2f07", "#c74707", "#df5707",
		"#d7730f", "#cf8f0f", "#c7a717", "#bfb72f", "#ffffff")
	out := make([]render.RGB, constants.FireLevels)
	for i := range out {
		out[i] = render.Gradient(stops, float64(i)/float64(constants.FireLevels-1))
	}
	return out
}()

// Fire is the celebration overlay: a doom fire rising from the bottom with
// a banner above it
type Fire struct {
	env  *Env
	w, h int
	heat []uint8
}

func NewFire() *Fire {
	return &Fire{}
}

func (f *Fire) Mount(env *Env) error {
	f.env = env
	f.resize(env.Width, env.Height)
	env.TrackSize(f.resize)
	env.Scope.Every(constants.FireInterval, f.spread)
	return nil
}

// resize restarts the fire on a fresh grid fed by a hot bottom row
func (f *Fire) resize(w, h int) {
	f.w, f.h = max(w, 0), max(h*2/3, 0)
	f.heat = make([]uint8, f.w*f.h)
	if f.h == 0 {
		return
	}
	hot := uint8(constants.FireLevels - 1)
	bottom := (f.h - 1) * f.w
	for x := 0; x < f.w; x++ {
		f.heat[bottom+x] = hot
	}
}

// spread propagates every cell one row up with random sideways drift and
// decay
func (f *Fire) spread() {
	r := f.env.Rand
	for x := 0; x < f.w; x++ {
		for y := 1; y < f.h; y++ {
			src := y*f.w + x
			v := f.heat[src]
			if v == 0 {
				f.heat[src-f.w] = 0
				continue
			}
			rnd := r.Intn(4)
			dst := src - f.w - rnd + 1
			if dst < 0 || dst >= len(f.heat) {
				continue
			}
			f.heat[dst] = v - uint8(rnd&1)
		}
	}
}

func (f *Fire) Unmount() {
	f.heat = nil
}

// Heat returns the heat level at column x, fire row y
func (f *Fire) Heat(x, y int) int {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	return int(f.heat[y*f.w+x])
}

func (f *Fire) Render(buf *render.RenderBuffer) {
	_, h := buf.Bounds()
	dim(buf, 0.7)
	top := h - f.h
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			v := f.heat[y*f.w+x]
			if v == 0 {
				continue
			}
			glyph := fireGlyphs[int(v)*(len(fireGlyphs)-1)/(constants.FireLevels-1)]
			col := firePalette[v]
			buf.Set(x, top+y, glyph, col, render.Scale(col, 0.35), render.BlendReplace, 1, tcell.AttrNone)
		}
	}

	mid := max(h/4, 1)
	shadedText(buf, mid, f.env.Text.CelebrationTitle, func(i, _ int) render.RGB {
		return firePalette[len(firePalette)-1-i%8]
	}, tcell.AttrBold)
	centerText(buf, mid+2, f.env.Text.CelebrationDetail, render.RGBWhite, tcell.AttrNone)
	centerText(buf, mid+4, f.env.Text.CloseHint, hintColor, tcell.AttrDim)
}
