package render

import "time"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now   time.Time
	Frame uint64

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Pointer cell, valid when HasPointer
	PointerX   int
	PointerY   int
	HasPointer bool
}
