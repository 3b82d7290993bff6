package render

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Canvas pixel density per terminal cell. 4x8 keeps pixels square on the
// usual 1:2 cell aspect
const (
	CanvasPixelsX = 4
	CanvasPixelsY = 8

	// canvasReferenceWidth is the logical width effects are tuned for
	canvasReferenceWidth = 1280.0

	// compositeMinAlpha hides cells with only faint coverage
	compositeMinAlpha = 0.06
)

// ErrCanvasUnavailable is returned for a zero-area canvas
var ErrCanvasUnavailable = errors.New("canvas unavailable")

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error
)

func monoFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = truetype.Parse(gomonobold.TTF)
	})
	return fontTTF, fontErr
}

// Canvas is a raster surface covering cols x rows cells, drawn with gg and
// composited back as quadrant glyphs. Effects use logical coordinates
// scaled from a 1280-unit wide reference
type Canvas struct {
	dc    *gg.Context
	cols  int
	rows  int
	scale float64
	faces map[int]font.Face
}

// NewCanvas allocates a canvas for the given cell area
func NewCanvas(cols, rows int) (*Canvas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%dx%d cells: %w", cols, rows, ErrCanvasUnavailable)
	}
	px := cols * CanvasPixelsX
	return &Canvas{
		dc:    gg.NewContext(px, rows*CanvasPixelsY),
		cols:  cols,
		rows:  rows,
		scale: float64(px) / canvasReferenceWidth,
		faces: make(map[int]font.Face),
	}, nil
}

// Cells returns the covered cell area
func (c *Canvas) Cells() (int, int) {
	return c.cols, c.rows
}

// Logical returns the canvas size in logical units
func (c *Canvas) Logical() (float64, float64) {
	return float64(c.dc.Width()) / c.scale, float64(c.dc.Height()) / c.scale
}

// Clear makes the canvas fully transparent
func (c *Canvas) Clear() {
	c.dc.SetRGBA(0, 0, 0, 0)
	c.dc.Clear()
}

// Dot fills a circle at logical x,y with a radius in canvas pixels
func (c *Canvas) Dot(x, y, radiusPx float64, col RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	c.setColor(col, alpha)
	c.dc.DrawCircle(x*c.scale, y*c.scale, radiusPx)
	c.dc.Fill()
}

// Polygon fills the closed path through logical points
func (c *Canvas) Polygon(points [][2]float64, col RGB, alpha float64) {
	if len(points) < 3 || alpha <= 0 {
		return
	}
	c.setColor(col, alpha)
	c.dc.MoveTo(points[0][0]*c.scale, points[0][1]*c.scale)
	for _, p := range points[1:] {
		c.dc.LineTo(p[0]*c.scale, p[1]*c.scale)
	}
	c.dc.ClosePath()
	c.dc.Fill()
}

// Line strokes a round-capped segment between logical points. Width is in
// logical units
func (c *Canvas) Line(x1, y1, x2, y2, width float64, col RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	c.setColor(col, alpha)
	c.dc.SetLineWidth(max(width*c.scale, 1))
	c.dc.SetLineCapRound()
	c.dc.DrawLine(x1*c.scale, y1*c.scale, x2*c.scale, y2*c.scale)
	c.dc.Stroke()
}

// CellToLogical returns the logical coordinates of a cell center
func (c *Canvas) CellToLogical(cx, cy float64) (float64, float64) {
	return (cx + 0.5) * CanvasPixelsX / c.scale, (cy + 0.5) * CanvasPixelsY / c.scale
}

// Text draws s centered on logical x,y with glyphs about heightCells tall
func (c *Canvas) Text(s string, x, y float64, heightCells int, col RGB, alpha float64) error {
	face, err := c.face(heightCells)
	if err != nil {
		return err
	}
	c.dc.SetFontFace(face)
	c.setColor(col, alpha)
	c.dc.DrawStringAnchored(s, x*c.scale, y*c.scale, 0.5, 0.5)
	return nil
}

func (c *Canvas) setColor(col RGB, alpha float64) {
	c.dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, min(alpha, 1))
}

func (c *Canvas) face(heightCells int) (font.Face, error) {
	if heightCells < 1 {
		heightCells = 1
	}
	if f, ok := c.faces[heightCells]; ok {
		return f, nil
	}
	ttf, err := monoFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	// Cap height of Go Mono is about 0.7 em
	size := float64(heightCells*CanvasPixelsY) / 0.7
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[heightCells] = f
	return f, nil
}

// Image returns the backing premultiplied pixels
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// Composite downsamples the canvas and blends it over buf at x0,y0
func (c *Canvas) Composite(buf *RenderBuffer, x0, y0 int) {
	grid := Downsample(c.Image(), c.cols, c.rows)
	buf.BlitQuadrants(grid, x0, y0, compositeMinAlpha)
}
