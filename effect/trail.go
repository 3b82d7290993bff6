package effect

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

// TrailTheme is a symbol set and its colors
type TrailTheme struct {
	Name    string
	Symbols []string
	Colors  []render.RGB
}

var (
	MusicTheme = TrailTheme{
		Name:    "music",
		Symbols: []string{"♪", "♫", "♬", "♭", "♮", "🎼", "🎹"},
		Colors:  hexPalette("#f59e0b", "#ec4899", "#facc15"),
	}
	ScienceTheme = TrailTheme{
		Name:    "science",
		Symbols: []string{"⚛", "⚗", "🧬", "🧪", "🔬", "🔭"},
		Colors:  hexPalette("#10b981", "#4ade80", "#5eead4"),
	}
	MathTheme = TrailTheme{
		Name:    "math",
		Symbols: []string{"∑", "∫", "π", "√", "∞", "≠", "≈", "÷"},
		Colors:  hexPalette("#06b6d4", "#60a5fa", "#a5b4fc"),
	}
	AstronomyTheme = TrailTheme{
		Name:    "astronomy",
		Symbols: []string{"★", "☄", "🌑", "✨", "🪐", "🌍", "🛸"},
		Colors:  hexPalette("#ffffff", "#d8b4fe", "#c7d2fe"),
	}
)

type trailParticle struct {
	x, y   float64
	driftX float64
	symbol string
	color  render.RGB
	born   time.Time
}

// Trail spawns themed symbols at the pointer that float up and fade
type Trail struct {
	env   *Env
	theme TrailTheme

	particles []trailParticle
	lastSpawn time.Time
	removed   int
}

func NewTrail(theme TrailTheme) *Trail {
	return &Trail{theme: theme}
}

func (t *Trail) Mount(env *Env) error {
	t.env = env
	t.lastSpawn = time.Time{}
	env.OnPointerMove(t.pointerMoved)
	env.Scope.Loop(t.step)
	return nil
}

func (t *Trail) pointerMoved(x, y int) {
	now := t.env.Scope.Now()
	if !t.lastSpawn.IsZero() && now.Sub(t.lastSpawn) <= constants.TrailSpawnInterval {
		return
	}
	t.lastSpawn = now
	t.spawn(x, y, now)
}

func (t *Trail) spawn(x, y int, now time.Time) {
	r := t.env.Rand
	t.particles = append(t.particles, trailParticle{
		x:      float64(x) + signedUnit(r)*2*constants.TrailJitter,
		y:      float64(y) + signedUnit(r)*constants.TrailJitter,
		driftX: signedUnit(r) * 2 * constants.TrailDrift,
		symbol: t.theme.Symbols[r.Intn(len(t.theme.Symbols))],
		color:  t.theme.Colors[r.Intn(len(t.theme.Colors))],
		born:   now,
	})
	if over := len(t.particles) - constants.TrailMaxParticles; over > 0 {
		t.removed += over
		t.particles = append(t.particles[:0], t.particles[over:]...)
	}
}

// step drops particles whose lifetime is over
func (t *Trail) step(time.Duration) {
	now := t.env.Scope.Now()
	t.particles = sweep(t.particles, func(p *trailParticle) bool {
		if now.Sub(p.born) >= constants.TrailLifetime {
			t.removed++
			return false
		}
		return true
	})
}

func (t *Trail) Unmount() {
	t.particles = nil
}

// Particles returns the live particle count
func (t *Trail) Particles() int {
	return len(t.particles)
}

// Removed counts particles retired so far
func (t *Trail) Removed() int {
	return t.removed
}

func (t *Trail) Render(buf *render.RenderBuffer) {
	dim(buf, 0.6)
	banner(buf, 1, t.env.Text.ChaosBanner)

	now := t.env.Scope.Now()
	for _, p := range t.particles {
		progress := min(float64(now.Sub(p.born))/float64(constants.TrailLifetime), 1)
		eased := 1 - (1-progress)*(1-progress)
		x := p.x + p.driftX*eased
		y := p.y - constants.TrailRise*eased
		fg := render.Lerp(p.color, render.RGBBlack, progress)
		buf.DrawText(int(x), int(y), p.symbol, fg, tcell.AttrBold)
	}

	if len(t.particles) == 0 {
		_, h := buf.Bounds()
		centerText(buf, h/2, t.env.Text.TrailHint, hintColor, tcell.AttrDim)
	}
}
