package overlay

import (
	"log"
	"math/rand"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/effect"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/render"
)

// Builder creates a fresh runner for a kind
type Builder func(kind effect.Kind) (effect.Runner, bool)

// Config wires the orchestrator to the application loop
type Config struct {
	Scheduler *engine.Scheduler
	Rand      *rand.Rand
	Audio     audio.Player
	Images    effect.ImageLoader
	Bus       *input.Bus
	Text      content.OverlayText
	Width     int
	Height    int
	// Options feed the default builder
	Options effect.Options
	// Build overrides effect.New
	Build Builder
}

type mount struct {
	kind    effect.Kind
	runner  effect.Runner
	scope   *engine.Scope
	gen     uint64
	shaking bool
}

// Orchestrator owns which overlay is active on each channel. Triggers on a
// busy channel are dropped; closing releases everything the runner acquired
type Orchestrator struct {
	cfg     Config
	slots   [channelCount]*mount
	gen     uint64
	shakers int
	width   int
	height  int
	text    content.OverlayText
}

// New creates an orchestrator
func New(cfg Config) *Orchestrator {
	if cfg.Build == nil {
		opts := cfg.Options
		cfg.Build = func(k effect.Kind) (effect.Runner, bool) {
			return effect.New(k, opts)
		}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	o := &Orchestrator{cfg: cfg, width: cfg.Width, height: cfg.Height, text: cfg.Text}
	if cfg.Bus != nil {
		cfg.Bus.OnResize(func(w, h int) {
			o.width, o.height = w, h
		})
	}
	return o
}

// SetText changes the copy handed to overlays mounted from now on
func (o *Orchestrator) SetText(t content.OverlayText) {
	o.text = t
}

// Trigger mounts kind if its channel is free. Returns false when dropped
func (o *Orchestrator) Trigger(kind effect.Kind) bool {
	ch := ChannelOf(kind)
	if o.slots[ch] != nil {
		return false
	}
	runner, ok := o.cfg.Build(kind)
	if !ok {
		log.Printf("overlay: no runner for %q", kind)
		return false
	}

	o.gen++
	m := &mount{
		kind:   kind,
		runner: runner,
		scope:  engine.NewScope(o.cfg.Scheduler),
		gen:    o.gen,
	}
	env := &effect.Env{
		Scope:  m.scope,
		Rand:   o.cfg.Rand,
		Audio:  o.cfg.Audio,
		Images: o.cfg.Images,
		Bus:    o.cfg.Bus,
		Text:   o.text,
		Width:  o.width,
		Height: o.height,
		Close:  func() { o.release(m) },
		Shake:  func(on bool) { o.setShake(m, on) },
	}

	// Claim the slot first so a runner may close itself during Mount
	o.slots[ch] = m
	if err := runner.Mount(env); err != nil {
		log.Printf("overlay: mount %s: %v", kind, err)
		o.release(m)
		return false
	}
	return o.slots[ch] == m
}

// Close unmounts kind if it is active. Idempotent
func (o *Orchestrator) Close(kind effect.Kind) bool {
	m := o.slots[ChannelOf(kind)]
	if m == nil || m.kind != kind {
		return false
	}
	return o.release(m)
}

// Toggle closes kind when active, otherwise triggers it
func (o *Orchestrator) Toggle(kind effect.Kind) bool {
	if o.Active(kind) {
		o.Close(kind)
		return false
	}
	return o.Trigger(kind)
}

// release frees m's channel if m is still its current mount. Stale close
// callbacks from earlier mounts fall through here
func (o *Orchestrator) release(m *mount) bool {
	ch := ChannelOf(m.kind)
	cur := o.slots[ch]
	if cur == nil || cur.gen != m.gen {
		return false
	}
	o.slots[ch] = nil
	m.runner.Unmount()
	m.scope.Release()
	if m.shaking {
		m.shaking = false
		o.shakers--
	}
	return true
}

func (o *Orchestrator) setShake(m *mount, on bool) {
	if m.shaking == on {
		return
	}
	if on && m.scope.Released() {
		return
	}
	m.shaking = on
	if on {
		o.shakers++
	} else {
		o.shakers--
	}
}

// HandleClick dismisses the topmost click-capturing overlay. Overlays cover
// the whole screen so the position only matters to the page beneath
func (o *Orchestrator) HandleClick(x, y int) bool {
	return o.DismissTop()
}

// DismissTop closes the topmost click-capturing overlay
func (o *Orchestrator) DismissTop() bool {
	for _, ch := range clickOrder {
		if m := o.slots[ch]; m != nil {
			return o.release(m)
		}
	}
	return false
}

// Capturing reports whether a click would be consumed by an overlay
func (o *Orchestrator) Capturing() bool {
	for _, ch := range clickOrder {
		if o.slots[ch] != nil {
			return true
		}
	}
	return false
}

// Teardown closes every overlay
func (o *Orchestrator) Teardown() {
	for ch := range o.slots {
		if m := o.slots[ch]; m != nil {
			o.release(m)
		}
	}
}

// Shaking reports whether any overlay holds a shake request
func (o *Orchestrator) Shaking() bool {
	return o.shakers > 0
}

// Active reports whether kind is mounted
func (o *Orchestrator) Active(kind effect.Kind) bool {
	m := o.slots[ChannelOf(kind)]
	return m != nil && m.kind == kind
}

// ActiveOn returns the kind mounted on ch
func (o *Orchestrator) ActiveOn(ch Channel) (effect.Kind, bool) {
	if ch >= channelCount || o.slots[ch] == nil {
		return "", false
	}
	return o.slots[ch].kind, true
}

// Render draws mounted overlays bottom to top
func (o *Orchestrator) Render(_ render.RenderContext, buf *render.RenderBuffer) {
	for _, ch := range drawOrder {
		if m := o.slots[ch]; m != nil {
			m.runner.Render(buf)
		}
	}
}

// IsVisible reports whether any overlay is mounted
func (o *Orchestrator) IsVisible() bool {
	for _, m := range o.slots {
		if m != nil {
			return true
		}
	}
	return false
}

// Layer returns a renderer drawing only ch, for registering channels at
// different render priorities
func (o *Orchestrator) Layer(ch Channel) render.SystemRenderer {
	return &layer{o: o, ch: ch}
}

type layer struct {
	o  *Orchestrator
	ch Channel
}

func (l *layer) Render(_ render.RenderContext, buf *render.RenderBuffer) {
	if m := l.o.slots[l.ch]; m != nil {
		m.runner.Render(buf)
	}
}

func (l *layer) IsVisible() bool {
	return l.ch < channelCount && l.o.slots[l.ch] != nil
}
