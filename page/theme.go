package page

import "github.com/lixenwraith/folio/render"

// Theme is the page palette
type Theme struct {
	Bg      render.RGB
	Surface render.RGB
	Fg      render.RGB
	Strong  render.RGB
	Muted   render.RGB
	Accent  render.RGB
	Border  render.RGB
	Glow    render.RGB
}

var (
	DarkTheme = Theme{
		Bg:      render.Hex("#0f172a"),
		Surface: render.Hex("#1e293b"),
		Fg:      render.Hex("#cbd5e1"),
		Strong:  render.Hex("#f8fafc"),
		Muted:   render.Hex("#64748b"),
		Accent:  render.Hex("#3b82f6"),
		Border:  render.Hex("#334155"),
		Glow:    render.Hex("#60a5fa"),
	}
	LightTheme = Theme{
		Bg:      render.Hex("#f8fafc"),
		Surface: render.Hex("#e2e8f0"),
		Fg:      render.Hex("#334155"),
		Strong:  render.Hex("#0f172a"),
		Muted:   render.Hex("#64748b"),
		Accent:  render.Hex("#2563eb"),
		Border:  render.Hex("#cbd5e1"),
		Glow:    render.Hex("#93c5fd"),
	}
)

// role picks a theme color so a layout survives theme switches
type role uint8

const (
	roleFg role = iota
	roleStrong
	roleMuted
	roleAccent
	roleCustom
)

func (t Theme) color(r role, custom render.RGB) render.RGB {
	switch r {
	case roleStrong:
		return t.Strong
	case roleMuted:
		return t.Muted
	case roleAccent:
		return t.Accent
	case roleCustom:
		return custom
	default:
		return t.Fg
	}
}
