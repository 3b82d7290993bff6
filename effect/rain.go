package effect

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

// RainAlphabet is katakana, latin capitals and digits
var RainAlphabet = []rune("アァカサタナハマヤャラワガザダバパイィキシチニヒミリヰギジヂビピウゥクスツヌフムユュルグズブヅプエェケセテネヘメレヱゲゼデベペオォコソトノホモヨョロヲゴゾドボポヴッン" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789")

var rainColor = render.RGB{G: 255}

// rainMinAlpha hides fully faded glyphs
const rainMinAlpha = 0.03

type rainCell struct {
	glyph rune
	alpha float64
}

// Rain drops glyph columns down the screen, fading what was drawn before
type Rain struct {
	env   *Env
	cols  int
	rows  int
	drops []int
	grid  []rainCell
}

func NewRain() *Rain {
	return &Rain{}
}

func (r *Rain) Mount(env *Env) error {
	r.env = env
	r.resize(env.Width, env.Height)
	env.TrackSize(r.resize)
	env.Scope.Every(constants.RainInterval, r.tick)
	return nil
}

func (r *Rain) resize(w, h int) {
	r.cols = max(w/constants.RainColumnWidth, 0)
	r.rows = max(h, 0)
	r.drops = make([]int, r.cols)
	for i := range r.drops {
		r.drops[i] = 1
	}
	r.grid = make([]rainCell, r.cols*r.rows)
}

// tick fades the grid, draws each drop head and advances it
func (r *Rain) tick() {
	for i := range r.grid {
		r.grid[i].alpha *= constants.RainFade
	}
	rng := r.env.Rand
	for c := range r.drops {
		row := r.drops[c]
		if row >= 0 && row < r.rows {
			r.grid[row*r.cols+c] = rainCell{
				glyph: RainAlphabet[rng.Intn(len(RainAlphabet))],
				alpha: 1,
			}
		}
		if row >= r.rows && rng.Float64() < constants.RainResetChance {
			r.drops[c] = 0
		}
		r.drops[c]++
	}
}

func (r *Rain) Unmount() {
	r.grid = nil
	r.drops = nil
}

// Drops returns each column's head row
func (r *Rain) Drops() []int {
	return append([]int(nil), r.drops...)
}

// Intensity returns the glyph brightness at column c, row y
func (r *Rain) Intensity(c, y int) float64 {
	if c < 0 || c >= r.cols || y < 0 || y >= r.rows {
		return 0
	}
	return r.grid[y*r.cols+c].alpha
}

func (r *Rain) Render(buf *render.RenderBuffer) {
	dim(buf, 0.6)
	for y := 0; y < r.rows; y++ {
		for c := 0; c < r.cols; c++ {
			cell := r.grid[y*r.cols+c]
			if cell.alpha < rainMinAlpha {
				continue
			}
			fg := render.Scale(rainColor, cell.alpha*0.9)
			if cell.alpha >= 1 {
				fg = render.RGB{R: 180, G: 255, B: 180}
			}
			buf.DrawText(c*constants.RainColumnWidth, y, string(cell.glyph), fg, tcell.AttrNone)
		}
	}
	banner(buf, 1, r.env.Text.ChaosBanner)
}
