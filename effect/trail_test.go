package effect

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/folio/constants"
)

func TestTrailSpawnThrottle(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	tr := NewTrail(MusicTheme)
	hs.mount(tr)

	hs.bus.PointerMoved(10, 10)
	if tr.Particles() != 1 {
		t.Fatalf("Expected first move to spawn, got %d", tr.Particles())
	}
	hs.clock.Advance(10 * time.Millisecond)
	hs.bus.PointerMoved(11, 10)
	if tr.Particles() != 1 {
		t.Errorf("Expected throttled spawn, got %d", tr.Particles())
	}
	hs.clock.Advance(constants.TrailSpawnInterval)
	hs.bus.PointerMoved(12, 10)
	if tr.Particles() != 2 {
		t.Errorf("Expected spawn after the interval, got %d", tr.Particles())
	}
}

func TestTrailNeverExceedsCap(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	tr := NewTrail(MathTheme)
	hs.mount(tr)

	for i := 0; i < 100; i++ {
		hs.clock.Advance(constants.TrailSpawnInterval + time.Millisecond)
		hs.bus.PointerMoved(i%80, 12)
		if tr.Particles() > constants.TrailMaxParticles {
			t.Fatalf("Trail grew to %d", tr.Particles())
		}
	}
	if tr.Particles() != constants.TrailMaxParticles {
		t.Errorf("Expected a full trail, got %d", tr.Particles())
	}
	if tr.Removed() != 100-constants.TrailMaxParticles {
		t.Errorf("Expected %d evicted, got %d", 100-constants.TrailMaxParticles, tr.Removed())
	}
}

func TestTrailParticlesExpireOnce(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	tr := NewTrail(ScienceTheme)
	hs.mount(tr)

	spawned := 0
	for i := 0; i < 10; i++ {
		hs.bus.PointerMoved(i, 5)
		spawned++
		hs.advance(constants.TrailSpawnInterval + time.Millisecond)
	}
	hs.advance(constants.TrailLifetime)
	if tr.Particles() != 0 {
		t.Errorf("Expected all particles expired, %d left", tr.Particles())
	}
	if tr.Removed() != spawned {
		t.Errorf("Expected %d removals, got %d", spawned, tr.Removed())
	}
	hs.advance(time.Second)
	if tr.Removed() != spawned {
		t.Errorf("Particles removed twice: %d", tr.Removed())
	}
}

func TestTrailHintWhileEmpty(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	tr := NewTrail(AstronomyTheme)
	hs.mount(tr)

	if buf := hs.render(tr); !containsText(buf, hs.env.Text.TrailHint) {
		t.Error("Expected hint while empty")
	}
	hs.bus.PointerMoved(40, 12)
	if buf := hs.render(tr); containsText(buf, hs.env.Text.TrailHint) {
		t.Error("Hint should hide once particles exist")
	}
}

func TestTrailReleaseUnsubscribes(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	tr := NewTrail(MusicTheme)
	hs.mount(tr)
	hs.release(tr)

	if hs.bus.Listeners() != 0 {
		t.Errorf("Expected no listeners, got %d", hs.bus.Listeners())
	}
	hs.bus.PointerMoved(3, 3)
	if tr.Particles() != 0 {
		t.Error("Spawned after release")
	}
}
