package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// TcellToRGB converts tcell.Color to RGB. ColorDefault maps to black
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGBBlack
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Hex parses "#rrggbb" or "#rgb". Malformed input yields black
func Hex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBBlack
	}
	return FromColorful(c)
}

// FromColorful clamps a colorful.Color into RGB
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// ToColorful converts RGB into colorful space
func ToColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Gradient samples an evenly spaced multi-stop gradient, blending in HCL
// so hue transitions stay vivid
func Gradient(stops []RGB, t float64) RGB {
	switch {
	case len(stops) == 0:
		return RGBBlack
	case len(stops) == 1 || t <= 0:
		return stops[0]
	case t >= 1:
		return stops[len(stops)-1]
	}
	pos := t * float64(len(stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	if frac == 0 {
		return stops[i]
	}
	return FromColorful(ToColorful(stops[i]).BlendHcl(ToColorful(stops[i+1]), frac))
}
