package effect

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

var alienSprite = []string{
	`    .-""""-.    `,
	`  .'        '.  `,
	` /  __    __  \ `,
	`|  /██\  /██\  |`,
	`|  \██/  \██/  |`,
	` \            / `,
	`  '.   --   .'  `,
	`    '-.__.-'    `,
}

var (
	alienSkin   = render.Hex("#4ade80")
	alienShadow = render.Hex("#166534")
	bubbleBg    = render.RGBWhite
	bubbleFg    = render.Hex("#18181b")
	bubbleText  = render.Hex("#52525b")
)

// Alien is the greeting modal: a speech bubble over a bobbing alien
type Alien struct {
	env     *Env
	elapsed time.Duration
}

func NewAlien() *Alien {
	return &Alien{}
}

func (a *Alien) Mount(env *Env) error {
	a.env = env
	a.elapsed = 0
	env.Scope.Loop(func(dt time.Duration) { a.elapsed += dt })
	return nil
}

func (a *Alien) Unmount() {}

// Bob is the vertical offset in rows at the current time
func (a *Alien) Bob() int {
	phase := float64(a.elapsed) / float64(constants.AlienBobPeriod)
	return int(math.Round(math.Cos(phase*2*math.Pi) - 1))
}

func (a *Alien) Render(buf *render.RenderBuffer) {
	w, h := buf.Bounds()
	dim(buf, 0.8)

	text := a.env.Text
	lines := append([]string{text.AlienTitle, ""}, text.AlienLines...)
	inner := 0
	for _, l := range lines {
		inner = max(inner, render.TextWidth(l))
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	total := boxH + 2 + len(alienSprite) + 2
	top := max((h-total)/2, 0)
	left := (w - boxW) / 2

	// Bubble with a hard drop shadow
	buf.FillRect(left+1, top+1, boxW, boxH, render.RGBBlack)
	buf.FillRect(left, top, boxW, boxH, bubbleBg)
	for i, l := range lines {
		fg, attrs := bubbleText, tcell.AttrBold
		if i == 0 {
			fg = bubbleFg
		}
		x := left + (boxW-render.TextWidth(l))/2
		buf.DrawText(x, top+1+i, l, fg, attrs)
	}
	buf.SetWithBg(w/2, top+boxH, '▼', bubbleBg, render.RGBBlack)

	spriteTop := top + boxH + 2 + a.Bob()
	spriteLeft := (w - render.TextWidth(alienSprite[0])) / 2
	for row, line := range alienSprite {
		x := spriteLeft
		for _, r := range line {
			switch r {
			case ' ':
			case '█':
				buf.SetFgOnly(x, spriteTop+row, r, render.RGBBlack, tcell.AttrNone)
			default:
				buf.SetFgOnly(x, spriteTop+row, r, alienSkin, tcell.AttrBold)
			}
			x++
		}
	}
	// Cheek shading under the eyes
	buf.ShadeRect(spriteLeft+2, spriteTop+5, render.TextWidth(alienSprite[0])-4, 1, alienShadow, 0.5)

	if a.elapsed >= time.Second {
		centerText(buf, min(spriteTop+len(alienSprite)+1, h-1), text.AlienHint, hintColor, tcell.AttrDim)
	}
}
