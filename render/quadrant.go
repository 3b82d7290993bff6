package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var QuadrantChars = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

// Downsample scales img to a 2x2-per-cell grid for cols x rows cells
func Downsample(img image.Image, cols, rows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols*2, rows*2))
	if cols <= 0 || rows <= 0 {
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// QuadrantCells converts an opaque image into cols x rows cells, row-major
func QuadrantCells(img image.Image, cols, rows int) []Cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	grid := Downsample(img, cols, rows)
	cells := make([]Cell, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var pixels [4]RGB
			for i, off := range quadrantOffsets {
				pixels[i] = colorToRGB(grid.RGBAAt(x*2+off[0], y*2+off[1]))
			}
			char, fg, bg := findBestQuadrant(pixels)
			cells[y*cols+x] = Cell{Rune: char, Fg: fg, Bg: bg}
		}
	}
	return cells
}

// BlitCells copies cells (cols wide) into the buffer at x0,y0
func (b *RenderBuffer) BlitCells(cells []Cell, cols, x0, y0 int) {
	if cols <= 0 {
		return
	}
	for i, c := range cells {
		b.SetWithBg(x0+i%cols, y0+i/cols, c.Rune, c.Fg, c.Bg)
	}
}

// BlitQuadrants composites a 2x2-per-cell premultiplied grid over the
// buffer at x0,y0. Cells whose four samples are all below minAlpha are left
// untouched; partially covered samples blend over the existing background
func (b *RenderBuffer) BlitQuadrants(grid *image.RGBA, x0, y0 int, minAlpha float64) {
	bounds := grid.Bounds()
	cols, rows := bounds.Dx()/2, bounds.Dy()/2
	threshold := uint8(minAlpha * 255)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			bx, by := x0+x, y0+y
			if !b.inBounds(bx, by) {
				continue
			}
			var samples [4]color.RGBA
			visible := false
			for i, off := range quadrantOffsets {
				samples[i] = grid.RGBAAt(bounds.Min.X+x*2+off[0], bounds.Min.Y+y*2+off[1])
				if samples[i].A > threshold {
					visible = true
				}
			}
			if !visible {
				continue
			}

			under := b.cells[by*b.width+bx].Bg
			if !b.touched[by*b.width+bx] {
				under = b.DefaultBg
			}
			var pixels [4]RGB
			for i, s := range samples {
				pixels[i] = overPremultiplied(under, s)
			}
			char, fg, bg := findBestQuadrant(pixels)
			b.Set(bx, by, char, fg, bg, BlendReplace, 1, tcell.AttrNone)
		}
	}
}

// quadrantOffsets are sample positions: [0]=UL, [1]=UR, [2]=LL, [3]=LR
var quadrantOffsets = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// overPremultiplied composites a premultiplied sample over an opaque color
func overPremultiplied(dst RGB, s color.RGBA) RGB {
	inv := 255 - int(s.A)
	return RGB{
		R: uint8(min(255, int(s.R)+fastDiv255(int(dst.R)*inv))),
		G: uint8(min(255, int(s.G)+fastDiv255(int(dst.G)*inv))),
		B: uint8(min(255, int(s.B)+fastDiv255(int(dst.B)*inv))),
	}
}

// findBestQuadrant finds the optimal quadrant character and fg/bg colors for 4 pixels
// Uses exhaustive search over all 16 patterns to minimize color error
func findBestQuadrant(pixels [4]RGB) (rune, RGB, RGB) {
	bestError := int(^uint(0) >> 1)
	bestPattern := 0
	var bestFg, bestBg RGB

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, err := computePatternColors(pixels, pattern)
		if err < bestError {
			bestError = err
			bestPattern = pattern
			bestFg = fg
			bestBg = bg
		}
	}

	// Uniform cells read better as a full block than as a blank
	if bestPattern == 0 {
		return QuadrantChars[15], bestBg, bestBg
	}
	return QuadrantChars[bestPattern], bestFg, bestBg
}

// computePatternColors averages each group and returns the total squared error
func computePatternColors(pixels [4]RGB, pattern int) (fg, bg RGB, totalError int) {
	var fgSum, bgSum [3]int
	var fgCount, bgCount int

	for i := 0; i < 4; i++ {
		p := pixels[i]
		if pattern&(1<<i) != 0 {
			fgSum[0] += int(p.R)
			fgSum[1] += int(p.G)
			fgSum[2] += int(p.B)
			fgCount++
		} else {
			bgSum[0] += int(p.R)
			bgSum[1] += int(p.G)
			bgSum[2] += int(p.B)
			bgCount++
		}
	}

	if fgCount > 0 {
		fg = RGB{uint8(fgSum[0] / fgCount), uint8(fgSum[1] / fgCount), uint8(fgSum[2] / fgCount)}
	}
	if bgCount > 0 {
		bg = RGB{uint8(bgSum[0] / bgCount), uint8(bgSum[1] / bgCount), uint8(bgSum[2] / bgCount)}
	}

	for i := 0; i < 4; i++ {
		target := bg
		if pattern&(1<<i) != 0 {
			target = fg
		}
		totalError += colorDistanceSq(pixels[i], target)
	}
	return fg, bg, totalError
}

// colorDistanceSq computes squared Euclidean distance in RGB space
func colorDistanceSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// colorToRGB converts any color.Color to RGB, undoing alpha premultiplication
func colorToRGB(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBBlack
	}
	return RGB{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
	}
}
