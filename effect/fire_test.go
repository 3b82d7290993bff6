package effect

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/folio/constants"
)

func TestFirePalette(t *testing.T) {
	if len(firePalette) != constants.FireLevels {
		t.Fatalf("Expected %d levels, got %d", constants.FireLevels, len(firePalette))
	}
	if l0, lN := firePalette[0], firePalette[len(firePalette)-1]; l0.R > 20 || lN.R < 240 || lN.G < 240 {
		t.Errorf("Expected dark to white ramp, got %v .. %v", l0, lN)
	}
}

func TestFireRises(t *testing.T) {
	hs := newHarness(t, 30, 30, rand.NewSource(8))
	f := NewFire()
	hs.mount(f)

	if f.Heat(5, f.h-1) != constants.FireLevels-1 {
		t.Fatal("Expected a hot bottom row")
	}
	if f.Heat(5, f.h-5) != 0 {
		t.Fatal("Expected cold rows before the first tick")
	}

	hs.advance(2 * time.Second)
	warm := 0
	for x := 0; x < f.w; x++ {
		if f.Heat(x, f.h-5) > 0 {
			warm++
		}
	}
	if warm == 0 {
		t.Error("Expected heat to propagate upwards")
	}
	for x := 0; x < f.w; x++ {
		for y := 0; y < f.h; y++ {
			if v := f.Heat(x, y); v >= constants.FireLevels {
				t.Fatalf("Heat overflow %d at %d,%d", v, x, y)
			}
		}
	}

	buf := hs.render(f)
	if !containsText(buf, hs.env.Text.CelebrationTitle) {
		t.Error("Expected banner title")
	}
}

func TestFireDoesNotSelfClose(t *testing.T) {
	hs := newHarness(t, 20, 10, rand.NewSource(8))
	f := NewFire()
	hs.mount(f)
	hs.advance(30 * time.Second)
	if hs.closes != 0 {
		t.Error("Celebration must wait for a click")
	}
	hs.release(f)
	if hs.sched.Pending() != 0 {
		t.Errorf("Pending entries: %d", hs.sched.Pending())
	}
}
