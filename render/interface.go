package render

// SystemRenderer is implemented by anything with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RendererFunc adapts a function to SystemRenderer
type RendererFunc func(ctx RenderContext, buf *RenderBuffer)

func (f RendererFunc) Render(ctx RenderContext, buf *RenderBuffer) { f(ctx, buf) }
