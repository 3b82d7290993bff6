package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

const (
	saberBladeLength = 500.0
	saberHiltLength  = 60.0
	saberGuardWidth  = 96.0
	// saberTiltDecay eases the swing back to upright between pointer events
	saberTiltDecay = 0.85
)

var (
	saberGlow  = render.Hex("#dc2626")
	saberInner = render.Hex("#ef4444")
	saberHilt  = render.Hex("#52525b")
	saberGuard = render.Hex("#27272a")
	saberTint  = render.Hex("#ef4444")
)

// spring is a critically-ish damped follower
type spring struct {
	pos, vel float64
}

func (s *spring) step(target, stiffness, damping, dt float64) {
	accel := stiffness*(target-s.pos) - damping*s.vel
	s.vel += accel * dt
	s.pos += s.vel * dt
}

// Saber draws a lightsaber following the pointer with spring lag and a swing
// tilt proportional to horizontal speed
type Saber struct {
	env    *Env
	canvas *render.Canvas

	targetX, targetY float64
	x, y             spring
	tilt             spring
	tiltTarget       float64
	lastX            float64
	seen             bool
}

func NewSaber() *Saber {
	return &Saber{}
}

func (s *Saber) Mount(env *Env) error {
	s.env = env
	s.seen = false
	s.rebuild(env.Width, env.Height)
	w, h := s.logicalSize()
	s.targetX, s.targetY = w/2, h/2
	s.x = spring{pos: s.targetX}
	s.y = spring{pos: s.targetY}
	s.lastX = s.targetX

	env.TrackSize(s.rebuild)
	env.OnPointerMove(s.pointerMoved)
	env.Scope.Loop(s.step)
	return nil
}

func (s *Saber) rebuild(w, h int) {
	c, err := render.NewCanvas(w, h)
	if err != nil {
		s.canvas = nil
		return
	}
	s.canvas = c
}

func (s *Saber) logicalSize() (float64, float64) {
	if s.canvas == nil {
		return 0, 0
	}
	return s.canvas.Logical()
}

func (s *Saber) pointerMoved(cx, cy int) {
	if s.canvas == nil {
		return
	}
	x, y := s.canvas.CellToLogical(float64(cx), float64(cy))
	if s.seen {
		velocity := x - s.lastX
		s.tiltTarget = math.Max(-constants.SaberMaxTilt, math.Min(velocity*constants.SaberTiltGain, constants.SaberMaxTilt))
	}
	s.seen = true
	s.lastX = x
	s.targetX, s.targetY = x, y
}

func (s *Saber) step(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}
	// Integrate in small slices to keep the stiff springs stable on long frames
	for sec > 0 {
		h := math.Min(sec, 0.008)
		s.x.step(s.targetX, constants.SaberStiffness, constants.SaberDamping, h)
		s.y.step(s.targetY, constants.SaberStiffness, constants.SaberDamping, h)
		s.tilt.step(s.tiltTarget, constants.SaberTiltStiffness, constants.SaberTiltDamping, h)
		sec -= h
	}
	s.tiltTarget *= saberTiltDecay
}

func (s *Saber) Unmount() {
	s.canvas = nil
}

// Hilt returns the smoothed hilt position in logical units
func (s *Saber) Hilt() (float64, float64) {
	return s.x.pos, s.y.pos
}

// Tilt returns the smoothed tilt in degrees, positive leaning right
func (s *Saber) Tilt() float64 {
	return s.tilt.pos
}

func (s *Saber) Render(buf *render.RenderBuffer) {
	w, h := buf.Bounds()
	buf.ShadeRect(0, 0, w, h, saberTint, 0.05)
	dim(buf, 0.4)
	banner(buf, 1, s.env.Text.ChaosBanner)
	if s.canvas == nil {
		return
	}

	s.canvas.Clear()
	rad := s.tilt.pos * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	hx, hy := s.x.pos, s.y.pos

	// Hilt runs down from the pointer, the blade up from the guard
	baseX, baseY := hx-dx*saberHiltLength/2, hy-dy*saberHiltLength/2
	guardX, guardY := hx+dx*saberHiltLength/2, hy+dy*saberHiltLength/2
	tipX, tipY := guardX+dx*saberBladeLength, guardY+dy*saberBladeLength

	s.canvas.Line(guardX, guardY, tipX, tipY, 46, saberGlow, 0.35)
	s.canvas.Line(guardX, guardY, tipX, tipY, 24, saberInner, 0.8)
	s.canvas.Line(guardX, guardY, tipX, tipY, 10, render.RGBWhite, 1)

	px, py := -dy, dx
	s.canvas.Line(guardX-px*saberGuardWidth/2, guardY-py*saberGuardWidth/2,
		guardX+px*saberGuardWidth/2, guardY+py*saberGuardWidth/2, 12, saberGuard, 1)
	s.canvas.Line(baseX, baseY, guardX, guardY, 32, saberHilt, 1)

	s.canvas.Composite(buf, 0, 0)
}
