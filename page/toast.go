package page

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/constants"
	"github.com/lixenwraith/folio/render"
)

// Toast is a transient message pinned to the bottom of the screen
type Toast struct {
	text    string
	expires time.Time
	now     func() time.Time
}

// NewToast creates a toast reading time from now
func NewToast(now func() time.Time) *Toast {
	return &Toast{now: now}
}

// Show displays text for constants.ToastTimeout
func (t *Toast) Show(text string) {
	t.text = text
	t.expires = t.now().Add(constants.ToastTimeout)
}

// Text returns the current message, empty once expired
func (t *Toast) Text() string {
	if t.text == "" || !t.now().Before(t.expires) {
		return ""
	}
	return t.text
}

func (t *Toast) IsVisible() bool {
	return t.Text() != ""
}

func (t *Toast) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	text := t.Text()
	if text == "" {
		return
	}
	w, h := buf.Bounds()
	label := " " + text + " "
	x := (w - render.TextWidth(label)) / 2
	y := h - 2
	buf.DrawTextBg(x, y, label, render.RGBBlack, render.Hex("#10b981"), tcell.AttrBold)
}
