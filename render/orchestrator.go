package render

import "github.com/gdamore/tcell/v2"

type layer struct {
	r        SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator composites registered layers into one buffer per frame,
// lowest priority first. Equal priorities draw in registration order
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []layer
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
		layers: make([]layer, 0, 8),
	}
}

// Register inserts r after every layer with priority <= its own
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	pos := len(o.layers)
	for pos > 0 && o.layers[pos-1].priority > priority {
		pos--
	}
	o.layers = append(o.layers, layer{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = layer{r: r, priority: priority}
}

// Buffer exposes the compositor, mainly for tests
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame clears the buffer, draws every visible layer and flushes
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()
	for _, l := range o.layers {
		if vt, ok := l.r.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.r.Render(ctx, o.buffer)
	}
	o.buffer.FlushToScreen(o.screen)
}
