package effect

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

const (
	portraitTitleRows = 5
	portraitMaxCols   = 64
	strobeCycle       = constants.PortraitStrobePeriod + 500*time.Millisecond
)

// strobeKeys are lightning flash opacities spread over one strobe period
var strobeKeys = []float64{0, 0.2, 0, 0.4, 0}

var (
	portraitRed    = render.Hex("#dc2626")
	portraitDark   = render.Hex("#450a0a")
	portraitStroke = render.Hex("#550000")
)

// Portrait plays the riff and shows the portrait under a strobing title.
// It closes when the clip ends or on timeout, whichever comes first
type Portrait struct {
	env    *Env
	source string

	elapsed time.Duration
	closed  bool

	img      image.Image
	cells    []render.Cell
	cellCols int
	cellRows int

	canvas *render.Canvas
}

// NewPortrait creates a portrait runner loading its image from source
func NewPortrait(source string) *Portrait {
	return &Portrait{source: source}
}

func (p *Portrait) Mount(env *Env) error {
	p.env = env
	p.closed = false
	p.elapsed = 0

	env.Play(audio.ClipRiff, constants.PortraitVolume, p.finish)
	env.Scope.After(constants.PortraitTimeout, p.finish)
	env.Scope.Loop(func(dt time.Duration) { p.elapsed += dt })
	env.TrackSize(func(w, h int) { p.canvas = nil })

	ctx, cancel := context.WithTimeout(context.Background(), constants.PortraitFetchTimeout)
	env.Scope.Defer(cancel)
	env.LoadImage(ctx, p.source, func(img image.Image) {
		p.img = img
		p.cells = nil
	})
	return nil
}

// finish closes the overlay once, whichever trigger comes first
func (p *Portrait) finish() {
	if p.closed {
		return
	}
	p.closed = true
	p.env.Close()
}

func (p *Portrait) Unmount() {
	p.img = nil
	p.cells = nil
	p.canvas = nil
}

// HasImage reports whether the portrait image arrived
func (p *Portrait) HasImage() bool {
	return p.img != nil
}

// strobeAlpha is the flash opacity at elapsed
func strobeAlpha(elapsed time.Duration) float64 {
	phase := elapsed % strobeCycle
	if phase >= constants.PortraitStrobePeriod {
		return 0
	}
	pos := float64(phase) / float64(constants.PortraitStrobePeriod) * float64(len(strobeKeys)-1)
	i := int(pos)
	frac := pos - float64(i)
	return strobeKeys[i]*(1-frac) + strobeKeys[i+1]*frac
}

func (p *Portrait) Render(buf *render.RenderBuffer) {
	w, h := buf.Bounds()
	buf.FillRect(0, 0, w, h, render.RGBBlack)

	// Pulsing red glow from the center
	pulse := 0.75 + 0.25*math.Sin(p.elapsed.Seconds()*math.Pi*2)
	cx, cy := float64(w)/2, float64(h)/2
	reach := math.Hypot(cx, cy*2) + 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, (float64(y)-cy)*2) / reach
			if a := 0.4 * (1 - d) * pulse; a > 0 {
				buf.Set(x, y, 0, render.RGBBlack, portraitDark, render.BlendAlphaBg, a*2, tcell.AttrNone)
			}
		}
	}

	p.renderTitle(buf, w)

	top := portraitTitleRows + 2
	bottom := p.renderImage(buf, w, h, top)

	centerText(buf, min(bottom+1, h-2), p.env.Text.PortraitSubtitle, portraitRed, tcell.AttrBold)

	if a := strobeAlpha(p.elapsed); a > 0 {
		buf.ShadeRect(0, 0, w, h, render.RGBWhite, a*0.5)
	}
}

func (p *Portrait) renderTitle(buf *render.RenderBuffer, w int) {
	title := p.env.Text.PortraitTitle
	if p.canvas == nil {
		if c, err := render.NewCanvas(w, portraitTitleRows); err == nil {
			p.canvas = c
		}
	}
	if p.canvas == nil {
		centerText(buf, 1, title, portraitRed, tcell.AttrBold)
		return
	}
	lw, lh := p.canvas.Logical()
	p.canvas.Clear()
	// Offset pass gives the glitch outline
	p.canvas.Text(title, lw/2-6, lh/2-6, 3, portraitStroke, 0.8)
	if err := p.canvas.Text(title, lw/2, lh/2, 3, portraitRed, 1); err != nil {
		centerText(buf, 1, title, portraitRed, tcell.AttrBold)
		return
	}
	p.canvas.Composite(buf, 0, 1)
}

// renderImage draws the portrait from row top and returns the row below it
func (p *Portrait) renderImage(buf *render.RenderBuffer, w, h, top int) int {
	if p.img == nil {
		return top + 1
	}
	b := p.img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return top + 1
	}
	aspect := float64(b.Dx()) / float64(b.Dy())
	rows := max(h-top-4, 1)
	cols := int(float64(rows) * 2 * aspect)
	if limit := min(w-4, portraitMaxCols); cols > limit {
		cols = limit
		rows = max(int(float64(cols)/(2*aspect)), 1)
	}
	if cols <= 0 {
		return top + 1
	}
	if p.cells == nil || p.cellCols != cols || p.cellRows != rows {
		p.cells = render.QuadrantCells(p.img, cols, rows)
		p.cellCols, p.cellRows = cols, rows
	}

	// Jitter a cell sideways at the flash rate
	jitter := int(p.elapsed/(100*time.Millisecond)%3) - 1
	x0 := (w-cols)/2 + jitter
	buf.BlitCells(p.cells, cols, x0, top)
	return top + rows
}
