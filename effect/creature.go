package effect

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

// dragonSprite faces left, the direction of flight
var dragonSprite = []string{
	`          __     /\        /\          `,
	`   ___   / o\___/  \______/  \         `,
	`  <___>=<   ____        ____  \_____   `,
	`      \_/\_/    \  /\  /    \__ ~~~~>  `,
	`                 \/  \/                `,
}

var (
	dragonGradient = hexPalette("#fb923c", "#dc2626", "#7f1d1d")
	shadowColor    = render.RGB{R: 10, G: 10, B: 10}
)

// Creature flies a dragon across the screen while roaring and shaking the
// page. It dismisses itself after a fixed time
type Creature struct {
	env     *Env
	elapsed time.Duration
}

func NewCreature() *Creature {
	return &Creature{}
}

func (c *Creature) Mount(env *Env) error {
	c.env = env
	c.elapsed = 0
	env.Play(audio.ClipRoar, constants.CreatureVolume, nil)
	env.RequestShake()
	env.TrackSize(nil)
	env.Scope.Loop(func(dt time.Duration) {
		c.elapsed += dt
	})
	env.Scope.After(constants.CreatureTimeout, env.Close)
	return nil
}

func (c *Creature) Unmount() {}

// Progress is the flight fraction in [0,1]
func (c *Creature) Progress() float64 {
	return min(float64(c.elapsed)/float64(constants.CreatureFlightTime), 1)
}

// Position returns the sprite's top-left cell for a w x h viewport
func (c *Creature) Position(w, h int) (int, int) {
	t := c.Progress()
	spriteW := render.TextWidth(dragonSprite[0])
	startX, endX := float64(w)+1, -float64(spriteW)-1
	x := startX + (endX-startX)*t

	// Altitude: 40% -> 50% -> 45% of the height, plus a slow wave
	var frac float64
	if t < 0.5 {
		frac = 0.40 + 0.10*(t/0.5)
	} else {
		frac = 0.50 - 0.05*((t-0.5)/0.5)
	}
	y := frac*float64(h) - float64(len(dragonSprite))/2 + math.Sin(t*math.Pi*6)*0.8
	return int(math.Round(x)), int(math.Round(y))
}

func (c *Creature) Render(buf *render.RenderBuffer) {
	w, h := buf.Bounds()
	x, y := c.Position(w, h)
	t := c.Progress()

	// Ground shadow fades in then out along the flight
	if shadowAlpha := 0.4 * (1 - math.Abs(2*t-1)); shadowAlpha > 0 {
		sy := h - h/10 - 1
		sw := render.TextWidth(dragonSprite[0])
		buf.ShadeRect(x+2, sy, sw-4, 1, shadowColor, shadowAlpha)
		buf.ShadeRect(x+6, sy+1, sw-12, 1, shadowColor, shadowAlpha/2)
	}

	for row, line := range dragonSprite {
		col := render.Gradient(dragonGradient, float64(row)/float64(len(dragonSprite)-1))
		cx := x
		for _, r := range line {
			if r != ' ' {
				buf.SetFgOnly(cx, y+row, r, col, tcell.AttrBold)
			}
			cx++
		}
	}

	if pulse := c.elapsed / (500 * time.Millisecond); pulse%2 == 0 {
		centerText(buf, h-2, c.env.Text.CreatureHint, hintColor, tcell.AttrNone)
	} else {
		centerText(buf, h-2, c.env.Text.CreatureHint, hintColor, tcell.AttrDim)
	}
}
