package effect

import (
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

// burstPalette is the fixed firework palette; one color per explosion
var burstPalette = hexPalette("#ef4444", "#f59e0b", "#10b981", "#3b82f6", "#8b5cf6", "#ec4899")

var (
	dieColor      = render.Hex("#4f46e5")
	dieCritColor  = render.Hex("#f59e0b")
	dieEdgeColor  = render.RGBWhite
	critGradient  = hexPalette("#facc15", "#f97316", "#ef4444")
	diceTextColor = render.Hex("#d4d4d8")
)

// dieOutline and dieFacets are the hexagonal D20 silhouette on a 100-unit box
var dieOutline = [][2]float64{{50, 5}, {93, 25}, {93, 75}, {50, 95}, {7, 75}, {7, 25}}

var dieFacets = []struct {
	points [][2]float64
	shade  float64
}{
	{[][2]float64{{50, 5}, {50, 50}, {93, 25}}, 0.1},
	{[][2]float64{{50, 5}, {7, 25}, {50, 50}}, 0.2},
	{[][2]float64{{7, 25}, {7, 75}, {50, 50}}, 0.3},
	{[][2]float64{{7, 75}, {50, 95}, {50, 50}}, 0.1},
	{[][2]float64{{50, 95}, {93, 75}, {50, 50}}, 0.2},
	{[][2]float64{{93, 75}, {93, 25}, {50, 50}}, 0.3},
}

// RollD20 returns a uniform integer in [1,20]
func RollD20(r interface{ Intn(int) int }) int {
	return r.Intn(constants.DiceSides) + 1
}

type burstParticle struct {
	x, y   float64
	vx, vy float64
	alpha  float64
	color  render.RGB
}

// Dice rolls a D20: the face flickers while rolling, then settles on an
// independent final roll. A natural 20 fires bursts until dismissed
type Dice struct {
	env *Env

	value    int
	rolling  bool
	critical bool
	started  time.Time

	canvas    *render.Canvas
	particles []burstParticle
}

func NewDice() *Dice {
	return &Dice{}
}

func (d *Dice) Mount(env *Env) error {
	d.env = env
	d.rolling = true
	d.started = env.Scope.Now()
	d.value = RollD20(env.Rand)
	d.rebuildCanvas(env.Width, env.Height)
	env.TrackSize(d.rebuildCanvas)

	reroll := env.Scope.Every(constants.DiceRerollInterval, func() {
		d.value = RollD20(env.Rand)
	})
	env.Scope.After(constants.DiceSettleDelay, func() {
		reroll.Cancel()
		d.settle(RollD20(env.Rand))
	})
	return nil
}

func (d *Dice) settle(final int) {
	d.value = final
	d.rolling = false
	if final != constants.DiceSides {
		return
	}
	d.critical = true
	d.env.Scope.Every(constants.BurstInterval, d.explode)
	d.env.Scope.Loop(d.step)
}

func (d *Dice) rebuildCanvas(w, h int) {
	c, err := render.NewCanvas(w, h)
	if err != nil {
		d.canvas = nil
		return
	}
	// Particles keep logical coordinates, which survive the rebuild
	d.canvas = c
}

// explode spawns one radial burst at a random point in the upper canvas
func (d *Dice) explode() {
	if d.canvas == nil {
		return
	}
	r := d.env.Rand
	w, h := d.canvas.Logical()
	x := r.Float64() * w
	y := r.Float64() * h * constants.BurstHeightRatio
	color := burstPalette[r.Intn(len(burstPalette))]
	for i := 0; i < constants.BurstParticles; i++ {
		angle := r.Float64() * math.Pi * 2
		speed := r.Float64()*constants.BurstSpeedRange + constants.BurstSpeedMin
		d.particles = append(d.particles, burstParticle{
			x: x, y: y,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			alpha: 1,
			color: color,
		})
	}
}

func (d *Dice) step(time.Duration) {
	d.particles = sweep(d.particles, func(p *burstParticle) bool {
		p.x += p.vx
		p.y += p.vy
		p.vy += constants.BurstGravity
		p.alpha -= constants.BurstAlphaDecay
		return p.alpha > 0
	})
}

func (d *Dice) Unmount() {
	d.canvas = nil
	d.particles = nil
}

// Value is the face currently shown
func (d *Dice) Value() int { return d.value }

func (d *Dice) Rolling() bool  { return d.rolling }
func (d *Dice) Critical() bool { return d.critical }
func (d *Dice) Particles() int { return len(d.particles) }

// Status is the result line, empty while rolling
func (d *Dice) Status() string {
	switch {
	case d.rolling:
		return ""
	case d.critical:
		return d.env.Text.CriticalHit
	case d.value == 1:
		return d.env.Text.CriticalMiss
	default:
		return d.env.Text.SkillCheck
	}
}

func (d *Dice) Render(buf *render.RenderBuffer) {
	dim(buf, 0.6)
	_, h := buf.Bounds()
	dieRows := max(h/3, 5)
	top := (h-dieRows)/2 - 2

	if d.canvas != nil {
		d.canvas.Clear()
		numeral := d.drawDie(top, dieRows)
		for _, p := range d.particles {
			d.canvas.Dot(p.x, p.y, 3, p.color, p.alpha)
		}
		d.canvas.Composite(buf, 0, 0)
		if !numeral {
			centerText(buf, top+dieRows/2, strconv.Itoa(d.value), render.RGBWhite, tcell.AttrBold)
		}
	} else {
		centerText(buf, top+dieRows/2, strconv.Itoa(d.value), render.RGBWhite, tcell.AttrBold)
	}

	y := top + dieRows + 1
	if d.rolling {
		return
	}
	if d.critical {
		shadedText(buf, y, d.env.Text.CriticalHit, func(i, n int) render.RGB {
			return render.Gradient(critGradient, float64(i)/float64(max(n-1, 1)))
		}, tcell.AttrBold)
		centerText(buf, y+1, d.env.Text.CriticalHitDetail, render.RGBWhite, tcell.AttrNone)
		y += 3
	} else {
		centerText(buf, y, d.Status(), diceTextColor, tcell.AttrNone)
		y += 2
	}
	centerText(buf, y, d.env.Text.CloseHint, hintColor, tcell.AttrDim)
}

// drawDie paints the die and its numeral on the canvas, dieRows cells tall
// starting at row top. Returns false when the numeral could not be drawn
func (d *Dice) drawDie(top, dieRows int) bool {
	w, _ := d.canvas.Logical()
	_, y0 := d.canvas.CellToLogical(0, float64(top))
	_, y1 := d.canvas.CellToLogical(0, float64(top+dieRows))
	size := y1 - y0
	cx := w / 2
	if d.rolling {
		// Shake while rolling
		elapsed := d.env.Scope.Now().Sub(d.started).Seconds()
		cx += math.Sin(elapsed*math.Pi*10) * size * 0.05
	}
	ox := cx - size/2
	at := func(pts [][2]float64) [][2]float64 {
		out := make([][2]float64, len(pts))
		for i, p := range pts {
			out[i] = [2]float64{ox + p[0]*size/100, y0 + p[1]*size/100}
		}
		return out
	}

	body := dieColor
	if d.critical {
		body = dieCritColor
	}
	d.canvas.Polygon(at(dieOutline), dieEdgeColor, 1)
	inset := make([][2]float64, len(dieOutline))
	for i, p := range dieOutline {
		inset[i] = [2]float64{50 + (p[0]-50)*0.94, 50 + (p[1]-50)*0.94}
	}
	d.canvas.Polygon(at(inset), body, 0.9)
	for _, f := range dieFacets {
		d.canvas.Polygon(at(f.points), render.RGBBlack, f.shade)
	}

	label := strconv.Itoa(d.value)
	if err := d.canvas.Text(label, cx, y0+size/2, max(dieRows/3, 1), render.RGBWhite, 1); err != nil {
		log.Printf("dice: numeral: %v", err)
		return false
	}
	return true
}
