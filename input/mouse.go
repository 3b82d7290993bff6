package input

import "github.com/gdamore/tcell/v2"

// MouseTracker turns tcell's level-triggered button masks into discrete
// press edges and pointer motion
type MouseTracker struct {
	buttons tcell.ButtonMask
	x, y    int
	seen    bool
}

// Classify returns the intents carried by a mouse event: motion when the
// pointer cell changed, a click on a primary button press edge, a scroll
// for wheel events
func (m *MouseTracker) Classify(ev *tcell.EventMouse) []Intent {
	x, y := ev.Position()
	btn := ev.Buttons()
	var out []Intent

	if !m.seen || x != m.x || y != m.y {
		out = append(out, Intent{Type: IntentPointerMove, X: x, Y: y})
	}
	m.seen = true
	m.x, m.y = x, y

	switch {
	case btn&tcell.WheelUp != 0:
		out = append(out, Intent{Type: IntentScroll, Delta: -1, X: x, Y: y})
	case btn&tcell.WheelDown != 0:
		out = append(out, Intent{Type: IntentScroll, Delta: 1, X: x, Y: y})
	}

	pressed := btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	if pressed&tcell.Button1 != 0 && m.buttons&tcell.Button1 == 0 {
		out = append(out, Intent{Type: IntentClick, X: x, Y: y})
	}
	m.buttons = pressed
	return out
}

// Position returns the last known pointer cell
func (m *MouseTracker) Position() (int, int, bool) {
	return m.x, m.y, m.seen
}
