package app

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/effect"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/gesture"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/overlay"
	"github.com/lixenwraith/folio/page"
	"github.com/lixenwraith/folio/render"
)

// Options wires an App
type Options struct {
	Screen tcell.Screen
	// Clock defaults to the monotonic wall clock
	Clock  engine.TimeProvider
	Audio  audio.Player
	Images effect.ImageLoader
	Rand   *rand.Rand

	Lang           content.Language
	Light          bool
	PortraitSource string

	// Copy overrides the system clipboard
	Copy func(string) error
}

// App routes terminal events to the page, the gesture detector and the
// overlay orchestrator, and renders one frame per Frame call. All methods
// run on the loop goroutine
type App struct {
	screen tcell.Screen
	clock  engine.TimeProvider
	sched  *engine.Scheduler
	bus    *input.Bus
	audio  audio.Player

	keys     *input.KeyTable
	mouse    input.MouseTracker
	detector *gesture.Detector

	nameClicks   *gesture.ClickCounter
	skillsClicks *gesture.ClickCounter

	overlays *overlay.Orchestrator
	page     *page.Page
	toast    *page.Toast
	renderer *render.RenderOrchestrator

	width, height int
	frame         uint64
}

// New creates an app drawing to opts.Screen, which must be initialized
func New(opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	a := &App{
		screen:       opts.Screen,
		clock:        opts.Clock,
		sched:        engine.NewScheduler(opts.Clock),
		bus:          input.NewBus(),
		audio:        opts.Audio,
		keys:         input.DefaultKeyTable(),
		detector:     gesture.NewDetector(gesture.DefaultPatterns()),
		nameClicks:   gesture.NewClickCounter(constants.NameClickThreshold),
		skillsClicks: gesture.NewClickCounter(constants.SkillsClickThreshold),
	}
	a.width, a.height = opts.Screen.Size()

	a.overlays = overlay.New(overlay.Config{
		Scheduler: a.sched,
		Rand:      opts.Rand,
		Audio:     opts.Audio,
		Images:    opts.Images,
		Bus:       a.bus,
		Text:      content.Overlay(opts.Lang),
		Width:     a.width,
		Height:    a.height,
		Options:   effect.Options{PortraitSource: opts.PortraitSource},
	})

	a.toast = page.NewToast(a.clock.Now)
	a.page = page.New(page.Options{
		Lang:    opts.Lang,
		Light:   opts.Light,
		Toast:   a.toast,
		Copy:    opts.Copy,
		Shaking: a.overlays.Shaking,
	})

	a.renderer = render.NewRenderOrchestrator(opts.Screen)
	a.renderer.Register(a.page, render.PriorityPage)
	a.renderer.Register(a.overlays.Layer(overlay.ChannelAmbient), render.PriorityAmbient)
	for _, ch := range []overlay.Channel{overlay.ChannelPrimary, overlay.ChannelPortrait, overlay.ChannelCreature} {
		a.renderer.Register(a.overlays.Layer(ch), render.PriorityOverlay)
	}
	a.renderer.Register(a.overlays.Layer(overlay.ChannelModal), render.PriorityModal)
	a.renderer.Register(a.toast, render.PriorityUI)
	return a
}

func (a *App) Overlays() *overlay.Orchestrator { return a.overlays }
func (a *App) Page() *page.Page                { return a.page }
func (a *App) Scheduler() *engine.Scheduler    { return a.sched }

// HandleEvent processes one terminal event. Returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		for _, in := range a.mouse.Classify(ev) {
			a.handlePointer(in)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		a.resize(w, h)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	in := a.keys.Classify(ev)
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentEscape:
		a.overlays.DismissTop()
	case input.IntentToggleMute:
		a.toggleMute()
	case input.IntentLanguage:
		a.setLanguage(a.page.Language().Toggle())
	case input.IntentTheme:
		a.page.ToggleTheme()
	case input.IntentScroll:
		a.page.Scroll(in.Delta)
	case input.IntentPage:
		a.page.PageBy(in.Delta)
	case input.IntentTop:
		a.page.Top()
	case input.IntentBottom:
		a.page.Bottom()
	case input.IntentNone:
		if ev.Key() == tcell.KeyRune && !a.overlays.Capturing() {
			if entry, ok := a.keys.RuneIntent(ev.Rune()); ok && entry.Intent == input.IntentScroll {
				a.page.Scroll(entry.Delta)
			}
		}
	}

	if trig, ok := a.detector.Feed(in.Key); ok {
		a.fire(trig)
	}
	return true
}

// triggerKinds maps key gestures to the overlay they start
var triggerKinds = map[gesture.Trigger]effect.Kind{
	gesture.TriggerCelebration: effect.KindCelebration,
	gesture.TriggerPortrait:    effect.KindPortrait,
	gesture.TriggerCreature:    effect.KindCreature,
}

func (a *App) fire(trig gesture.Trigger) {
	kind, ok := triggerKinds[trig]
	if !ok {
		return
	}
	if !a.overlays.Trigger(kind) {
		log.Printf("app: %s dropped, channel busy", kind)
	}
}

func (a *App) handlePointer(in input.Intent) {
	switch in.Type {
	case input.IntentPointerMove:
		a.bus.PointerMoved(in.X, in.Y)
	case input.IntentScroll:
		a.page.Scroll(in.Delta * constants.WheelStep)
	case input.IntentClick:
		if a.overlays.HandleClick(in.X, in.Y) {
			return
		}
		if target, ok := a.page.Click(in.X, in.Y); ok {
			a.activate(target)
		}
	}
}

// activate reacts to a page surface the page did not fully handle itself
func (a *App) activate(t page.Target) {
	switch t.Kind {
	case page.TargetName:
		a.count(a.nameClicks, effect.KindAlien)
	case page.TargetSkills:
		a.count(a.skillsClicks, effect.KindJungle)
	case page.TargetDice:
		a.overlays.Trigger(effect.KindDice)
	case page.TargetEffect:
		if kind, ok := effect.ParseKind(t.Value); ok {
			a.overlays.Trigger(kind)
		}
	case page.TargetLanguage:
		a.setLanguage(a.page.Language())
	}
}

func (a *App) count(c *gesture.ClickCounter, kind effect.Kind) {
	switch c.Click(a.overlays.Active(kind)) {
	case gesture.ClickActivate:
		a.overlays.Trigger(kind)
	case gesture.ClickDeactivate:
		a.overlays.Close(kind)
	}
}

func (a *App) setLanguage(l content.Language) {
	a.page.SetLanguage(l)
	a.overlays.SetText(content.Overlay(l))
}

func (a *App) toggleMute() {
	if a.audio == nil {
		return
	}
	a.audio.SetMuted(!a.audio.Muted())
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.renderer.Resize(w, h)
	a.page.Resize(w, h)
	a.bus.Resized(w, h)
}

// Frame advances timers and overlay loops, then renders
func (a *App) Frame() {
	a.sched.Advance()
	a.frame++

	px, py, has := a.mouse.Position()
	a.renderer.RenderFrame(render.RenderContext{
		Now:        a.clock.Now(),
		Frame:      a.frame,
		Width:      a.width,
		Height:     a.height,
		PointerX:   px,
		PointerY:   py,
		HasPointer: has,
	})
}

// Close tears down every overlay
func (a *App) Close() {
	a.overlays.Teardown()
}
