package effect

import (
	"context"
	"image"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/render"
)

// fixedSource makes rand.Intn(n) return v for any n > v
type fixedSource struct{ v int64 }

func (s fixedSource) Int63() int64 { return s.v << 32 }
func (s fixedSource) Seed(int64)   {}

type fakePlayback struct {
	clip    audio.Clip
	volume  float64
	onEnd   func()
	stopped int
}

func (p *fakePlayback) Stop() { p.stopped++ }

type fakePlayer struct {
	plays []*fakePlayback
	err   error
	muted bool
}

func (f *fakePlayer) Play(clip audio.Clip, volume float64, onEnd func()) (audio.Playback, error) {
	pb := &fakePlayback{clip: clip, volume: volume, onEnd: onEnd}
	f.plays = append(f.plays, pb)
	return pb, f.err
}

func (f *fakePlayer) SetMuted(m bool) { f.muted = m }
func (f *fakePlayer) Muted() bool     { return f.muted }

type fakeImages struct {
	srcs []string
	done func(image.Image, error)
}

func (f *fakeImages) ImageAsync(_ context.Context, src string, done func(image.Image, error)) {
	f.srcs = append(f.srcs, src)
	f.done = done
}

type harness struct {
	t      *testing.T
	clock  *engine.MockTimeProvider
	sched  *engine.Scheduler
	scope  *engine.Scope
	bus    *input.Bus
	player *fakePlayer
	images *fakeImages
	env    *Env

	closes int
	shake  int
}

func newHarness(t *testing.T, w, h int, src rand.Source) *harness {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	sched := engine.NewScheduler(clock)
	hs := &harness{
		t:      t,
		clock:  clock,
		sched:  sched,
		scope:  engine.NewScope(sched),
		bus:    input.NewBus(),
		player: &fakePlayer{},
		images: &fakeImages{},
	}
	hs.env = &Env{
		Scope:  hs.scope,
		Rand:   rand.New(src),
		Audio:  hs.player,
		Images: hs.images,
		Bus:    hs.bus,
		Text:   content.Overlay(content.English),
		Width:  w,
		Height: h,
		Close:  func() { hs.closes++ },
		Shake: func(on bool) {
			if on {
				hs.shake++
			} else {
				hs.shake--
			}
		},
	}
	return hs
}

func (hs *harness) mount(r Runner) {
	hs.t.Helper()
	if err := r.Mount(hs.env); err != nil {
		hs.t.Fatalf("Mount: %v", err)
	}
}

// advance moves the clock forward d in frame-sized steps, advancing the
// scheduler after each
func (hs *harness) advance(d time.Duration) {
	for d > 0 {
		step := min(d, constants.FrameUpdateInterval)
		hs.clock.Advance(step)
		hs.sched.Advance()
		d -= step
	}
}

// release tears down like the orchestrator does
func (hs *harness) release(r Runner) {
	r.Unmount()
	hs.scope.Release()
}

func (hs *harness) render(r Runner) *render.RenderBuffer {
	buf := render.NewRenderBuffer(hs.env.Width, hs.env.Height)
	r.Render(buf)
	return buf
}

// rowText returns the glyphs on row y
func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := buf.Get(x, y)
		if c.WideTail {
			continue
		}
		if c.Rune == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func containsText(buf *render.RenderBuffer, s string) bool {
	_, h := buf.Bounds()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(buf, y), s) {
			return true
		}
	}
	return false
}
