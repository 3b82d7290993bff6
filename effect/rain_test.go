package effect

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/folio/constants"
)

func TestRainAlphabet(t *testing.T) {
	if len(RainAlphabet) <= 80 {
		t.Errorf("Expected more than 80 glyphs, got %d", len(RainAlphabet))
	}
}

func TestRainColumnsAndFade(t *testing.T) {
	hs := newHarness(t, 20, 10, rand.NewSource(4))
	r := NewRain()
	hs.mount(r)

	if n := len(r.Drops()); n != 10 {
		t.Fatalf("Expected 10 columns of width 2, got %d", n)
	}

	hs.advance(constants.RainInterval)
	if got := r.Intensity(0, 1); got != 1 {
		t.Fatalf("Expected fresh glyph at the drop row, got %v", got)
	}
	for _, d := range r.Drops() {
		if d != 2 {
			t.Fatalf("Expected drops advanced to row 2, got %v", r.Drops())
		}
	}

	hs.advance(constants.RainInterval)
	if got := r.Intensity(0, 1); math.Abs(got-constants.RainFade) > 1e-9 {
		t.Errorf("Expected faded glyph %v, got %v", constants.RainFade, got)
	}
	hs.render(r)
}

func TestRainResetsPastBottom(t *testing.T) {
	// Float64 near zero always passes the reset chance
	hs := newHarness(t, 4, 3, fixedSource{0})
	r := NewRain()
	hs.mount(r)

	for i := 0; i < 3; i++ {
		r.tick()
	}
	// Heads went 1 -> 2 -> 3, the third tick saw row 3 past the bottom
	for _, d := range r.Drops() {
		if d != 1 {
			t.Errorf("Expected reset to the top, got %v", r.Drops())
		}
	}
}

func TestRainNoResetWhileOnScreen(t *testing.T) {
	hs := newHarness(t, 4, 50, fixedSource{0})
	r := NewRain()
	hs.mount(r)
	for i := 0; i < 10; i++ {
		r.tick()
	}
	for _, d := range r.Drops() {
		if d != 11 {
			t.Errorf("Expected heads to keep falling on screen, got %v", r.Drops())
		}
	}
}
