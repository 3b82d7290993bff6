package effect

import (
	"context"
	"image"
	"log"
	"math/rand"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/render"
)

// Runner is one overlay. Mount acquires everything through env.Scope so the
// orchestrator can release it on any exit path; Unmount drops runner-local
// state. Render is called once per frame while mounted
type Runner interface {
	Mount(env *Env) error
	Unmount()
	Render(buf *render.RenderBuffer)
}

// ImageLoader fetches an image off the loop goroutine
type ImageLoader interface {
	ImageAsync(ctx context.Context, src string, done func(image.Image, error))
}

// Env is what a mounted runner may touch. Close and Shake are bound to this
// mount by the orchestrator
type Env struct {
	Scope  *engine.Scope
	Rand   *rand.Rand
	Audio  audio.Player
	Images ImageLoader
	Bus    *input.Bus
	Text   content.OverlayText

	Width  int
	Height int

	Close func()
	Shake func(on bool)
}

// OnPointerMove subscribes fn for the lifetime of the mount
func (e *Env) OnPointerMove(fn func(x, y int)) {
	if e.Bus == nil {
		return
	}
	e.Scope.Defer(e.Bus.OnPointerMove(fn))
}

// TrackSize keeps Width and Height current and calls fn after each change
func (e *Env) TrackSize(fn func(w, h int)) {
	if e.Bus == nil {
		return
	}
	e.Scope.Defer(e.Bus.OnResize(func(w, h int) {
		e.Width, e.Height = w, h
		if fn != nil {
			fn(w, h)
		}
	}))
}

// Play starts clip and stops it on release. onEnd runs on the loop goroutine
// and never after release. Failures are logged; the overlay carries on
func (e *Env) Play(clip audio.Clip, volume float64, onEnd func()) {
	if e.Audio == nil {
		return
	}
	var ended func()
	if onEnd != nil {
		ended = func() { e.Scope.Post(onEnd) }
	}
	pb, err := e.Audio.Play(clip, volume, ended)
	if err != nil {
		log.Printf("effect: %s playback failed: %v", clip, err)
	}
	if pb != nil {
		e.Scope.Defer(pb.Stop)
	}
}

// RequestShake holds a page shake until release
func (e *Env) RequestShake() {
	if e.Shake == nil {
		return
	}
	e.Shake(true)
	e.Scope.Defer(func() { e.Shake(false) })
}

// LoadImage fetches src in the background and hands the result to done on
// the loop goroutine unless released first
func (e *Env) LoadImage(ctx context.Context, src string, done func(image.Image)) {
	if e.Images == nil || src == "" {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	e.Scope.Defer(cancel)
	e.Images.ImageAsync(ctx, src, func(img image.Image, err error) {
		if err != nil {
			log.Printf("effect: image %s: %v", src, err)
			return
		}
		e.Scope.Post(func() { done(img) })
	})
}
