package effect

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

// Glyph sets for the swarm variants
var (
	CatGlyphs    = []string{"🐱", "🐈", "😹", "😽", "🐾", "🦁", "🐯"}
	JungleGlyphs = []string{"🐒", "🦍", "🐍", "🦜", "🐆", "🐘", "🌴", "🦧"}
)

// Sprite is one bouncing glyph. Position is in cells, rotation in degrees
type Sprite struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Spin     float64
	Scale    float64
	Glyph    string
}

// Swarm bounces sprites around the viewport until dismissed
type Swarm struct {
	env     *Env
	glyphs  []string
	banner  bool
	sprites []Sprite
}

// NewSwarm creates a swarm drawing from glyphs. Banner shows the chaos
// banner and dims the page
func NewSwarm(glyphs []string, banner bool) *Swarm {
	return &Swarm{glyphs: glyphs, banner: banner}
}

func (s *Swarm) Mount(env *Env) error {
	s.env = env
	env.TrackSize(nil)
	r := env.Rand
	s.sprites = make([]Sprite, constants.SwarmCount)
	speed := constants.SwarmSpeedRange * constants.SwarmSpeedScale
	for i := range s.sprites {
		s.sprites[i] = Sprite{
			X:        r.Float64() * float64(env.Width),
			Y:        r.Float64() * float64(env.Height),
			VX:       signedUnit(r) * speed,
			VY:       signedUnit(r) * speed / 2,
			Rotation: r.Float64() * 360,
			Spin:     signedUnit(r) * constants.SwarmSpinRange,
			Scale:    constants.SwarmScaleMin + r.Float64()*constants.SwarmScaleRange,
			Glyph:    s.glyphs[r.Intn(len(s.glyphs))],
		}
	}
	env.Scope.Loop(s.step)
	return nil
}

// step integrates one frame and reflects sprites off the edges
func (s *Swarm) step(time.Duration) {
	r := s.env.Rand
	maxX := float64(s.env.Width - 2)
	maxY := float64(s.env.Height - 1)
	for i := range s.sprites {
		sp := &s.sprites[i]
		sp.X += sp.VX
		sp.Y += sp.VY
		sp.Rotation = math.Mod(sp.Rotation+sp.Spin, 360)

		if sp.X <= 0 || sp.X >= maxX {
			sp.VX = -sp.VX
			sp.Spin = signedUnit(r) * constants.SwarmBounceSpin
			sp.X = math.Max(0, math.Min(sp.X, maxX))
		}
		if sp.Y <= 0 || sp.Y >= maxY {
			sp.VY = -sp.VY
			sp.Spin = signedUnit(r) * constants.SwarmBounceSpin
			sp.Y = math.Max(0, math.Min(sp.Y, maxY))
		}
	}
}

func (s *Swarm) Unmount() {
	s.sprites = nil
}

// Sprites returns a copy of the current sprites
func (s *Swarm) Sprites() []Sprite {
	return append([]Sprite(nil), s.sprites...)
}

func (s *Swarm) Render(buf *render.RenderBuffer) {
	if s.banner {
		dim(buf, 0.6)
		banner(buf, 1, s.env.Text.ChaosBanner)
	}
	for _, sp := range s.sprites {
		// Glyphs stay upright; spin shows as a sway
		sway := 0
		if math.Sin(sp.Rotation*math.Pi/180) > 0.7 {
			sway = 1
		}
		attrs := tcell.AttrNone
		if sp.Scale > 1.25 {
			attrs = tcell.AttrBold
		}
		buf.DrawText(int(sp.X)+sway, int(sp.Y), sp.Glyph, render.RGBWhite, attrs)
	}
}
