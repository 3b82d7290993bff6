package page

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/render"
)

// Options configures a page
type Options struct {
	Lang  content.Language
	Light bool
	Toast *Toast
	// Copy writes to the clipboard; defaults to the system clipboard
	Copy func(string) error
	// Shaking reports whether overlays want the page shaken
	Shaking func() bool
}

type hotspot struct {
	x0, x1, y int
	target    Target
}

// Page renders the scrollable resume beneath the overlays and resolves
// clicks to the surface under the pointer
type Page struct {
	lang   content.Language
	resume *content.Resume
	light  bool

	toast   *Toast
	copy    func(string) error
	shaking func() bool

	width, height int
	lines         []line
	stale         bool
	scroll        int

	hot []hotspot
}

// New creates a page
func New(opts Options) *Page {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Shaking == nil {
		opts.Shaking = func() bool { return false }
	}
	return &Page{
		lang:    opts.Lang,
		resume:  content.For(opts.Lang),
		light:   opts.Light,
		toast:   opts.Toast,
		copy:    opts.Copy,
		shaking: opts.Shaking,
		stale:   true,
	}
}

func (p *Page) Language() content.Language { return p.lang }
func (p *Page) Light() bool                { return p.light }

// SetLanguage switches the page copy, keeping the scroll position if it fits
func (p *Page) SetLanguage(l content.Language) {
	if l == p.lang {
		return
	}
	p.lang = l
	p.resume = content.For(l)
	p.stale = true
}

// ToggleTheme flips between dark and light
func (p *Page) ToggleTheme() {
	p.light = !p.light
}

// Theme returns the active palette
func (p *Page) Theme() Theme {
	if p.light {
		return LightTheme
	}
	return DarkTheme
}

// Resize sets the viewport size
func (p *Page) Resize(w, h int) {
	if w == p.width && h == p.height {
		return
	}
	if w != p.width {
		p.stale = true
	}
	p.width, p.height = w, h
	p.clamp()
}

func (p *Page) columnWidth() int {
	return min(max(p.width-4, 0), constants.PageMaxWidth)
}

func (p *Page) columnX() int {
	return (p.width - p.columnWidth()) / 2
}

func (p *Page) document() []line {
	if p.stale {
		p.lines = layoutResume(p.resume, p.columnWidth())
		p.stale = false
		p.clamp()
	}
	return p.lines
}

// viewport is the number of content rows below the navbar
func (p *Page) viewport() int {
	return max(p.height-1, 0)
}

// MaxScroll is the largest valid scroll offset
func (p *Page) MaxScroll() int {
	return max(len(p.document())-p.viewport(), 0)
}

// Offset returns the first visible document line
func (p *Page) Offset() int {
	return p.scroll
}

func (p *Page) clamp() {
	if p.stale {
		return
	}
	p.scroll = min(max(p.scroll, 0), max(len(p.lines)-p.viewport(), 0))
}

// Scroll moves by delta lines
func (p *Page) Scroll(delta int) {
	p.scroll += delta
	p.document()
	p.clamp()
}

// PageBy scrolls dir viewports, a little less than a full screen
func (p *Page) PageBy(dir int) {
	step := max(int(float64(p.viewport())*constants.PageStep), 1)
	p.Scroll(dir * step)
}

func (p *Page) Top() { p.scroll = 0 }

func (p *Page) Bottom() {
	p.scroll = p.MaxScroll()
}

// ShowsBackToTop reports whether the back-to-top button is shown
func (p *Page) ShowsBackToTop() bool {
	return p.scroll > constants.ScrollTopThreshold
}

// Click resolves the surface at x,y from the last render. Links, theme,
// language and back-to-top are handled here; the target is returned either
// way so callers can count or trigger overlays
func (p *Page) Click(x, y int) (Target, bool) {
	for i := len(p.hot) - 1; i >= 0; i-- {
		h := p.hot[i]
		if y != h.y || x < h.x0 || x >= h.x1 {
			continue
		}
		switch h.target.Kind {
		case TargetLink:
			p.copyLink(h.target.Value)
		case TargetTheme:
			p.ToggleTheme()
		case TargetLanguage:
			p.SetLanguage(p.lang.Toggle())
		case TargetTop:
			p.Top()
		}
		return h.target, true
	}
	return Target{}, false
}

func (p *Page) copyLink(url string) {
	if err := p.copy(url); err != nil {
		log.Printf("page: clipboard: %v", err)
		if p.toast != nil {
			p.toast.Show(url)
		}
		return
	}
	if p.toast != nil {
		p.toast.Show(content.Overlay(p.lang).Copied)
	}
}

// shakeOffsets cycles the horizontal page offset while shaking
var shakeOffsets = [...]int{-constants.ShakeAmplitude, 1, constants.ShakeAmplitude, -1, 0, constants.ShakeAmplitude, -constants.ShakeAmplitude, 1}

func (p *Page) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := buf.Bounds()
	p.Resize(w, h)
	theme := p.Theme()
	doc := p.document()
	p.hot = p.hot[:0]

	buf.FillBg(0, 0, w, h, theme.Bg)

	dx := 0
	if p.shaking() {
		dx = shakeOffsets[ctx.Frame%uint64(len(shakeOffsets))]
	}

	x0 := p.columnX() + dx
	for row := 0; row < p.viewport(); row++ {
		idx := p.scroll + row
		if idx >= len(doc) {
			break
		}
		p.drawLine(buf, theme, doc[idx], x0, row+1)
	}

	if !p.light && ctx.HasPointer {
		spotlight(buf, theme.Glow, ctx.PointerX, ctx.PointerY)
	}

	p.drawNavbar(buf, theme, w)

	if p.ShowsBackToTop() && h > 2 {
		label := p.resume.BackToTop
		x := w - render.TextWidth(label) - 2
		end := buf.DrawTextBg(x, h-1, label, theme.Bg, theme.Accent, tcell.AttrBold)
		p.hot = append(p.hot, hotspot{x0: x, x1: end, y: h - 1, target: Target{Kind: TargetTop}})
	}
}

func (p *Page) drawLine(buf *render.RenderBuffer, theme Theme, l line, x, y int) {
	for _, s := range l.spans {
		fg := theme.color(s.role, s.color)
		end := buf.DrawText(x, y, s.text, fg, s.attrs)
		if s.target.Kind != TargetNone {
			p.hot = append(p.hot, hotspot{x0: x, x1: end, y: y, target: s.target})
		}
		x = end
	}
}

func (p *Page) drawNavbar(buf *render.RenderBuffer, theme Theme, w int) {
	buf.FillRect(0, 0, w, 1, theme.Surface)
	r := p.resume
	buf.DrawText(2, 0, string([]rune(r.FirstName)[:1])+string([]rune(r.LastName)[:1])+".", theme.Accent, tcell.AttrBold)

	themeLabel := "[☾]"
	if p.light {
		themeLabel = "[☀]"
	}
	langLabel := "[" + p.lang.Toggle().Label() + "]"

	x := w - render.TextWidth(themeLabel) - 2
	end := buf.DrawText(x, 0, themeLabel, theme.Strong, tcell.AttrNone)
	p.hot = append(p.hot, hotspot{x0: x, x1: end, y: 0, target: Target{Kind: TargetTheme}})

	x -= render.TextWidth(langLabel) + 1
	end = buf.DrawText(x, 0, langLabel, theme.Strong, tcell.AttrBold)
	p.hot = append(p.hot, hotspot{x0: x, x1: end, y: 0, target: Target{Kind: TargetLanguage}})
}

// spotlight brightens the background in an ellipse around the pointer.
// Cells are twice as tall as wide so rows count double
func spotlight(buf *render.RenderBuffer, glow render.RGB, px, py int) {
	const radius = constants.SpotlightRadius
	const peak = 0.18
	for dy := -radius / 2; dy <= radius/2; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := float64(dx*dx + 4*dy*dy)
			if d > radius*radius {
				continue
			}
			alpha := peak * (1 - d/(radius*radius))
			buf.Set(px+dx, py+dy, 0, render.RGBBlack, glow, render.BlendAlphaBg, alpha, tcell.AttrNone)
		}
	}
}
