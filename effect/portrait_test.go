package effect

import (
	"errors"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/constants"
)

func TestPortraitClosesOnClipEnd(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	p := NewPortrait("portrait.jpg")
	hs.mount(p)

	if len(hs.player.plays) != 1 {
		t.Fatalf("Expected one clip, got %d", len(hs.player.plays))
	}
	pb := hs.player.plays[0]
	if pb.clip != audio.ClipRiff || pb.volume != constants.PortraitVolume {
		t.Errorf("Unexpected playback %v at %v", pb.clip, pb.volume)
	}

	hs.advance(time.Second)
	// The end callback comes from the audio goroutine and lands on the next frame
	pb.onEnd()
	if hs.closes != 0 {
		t.Fatal("End callback must not close synchronously")
	}
	hs.advance(constants.FrameUpdateInterval)
	if hs.closes != 1 {
		t.Fatalf("Expected close on clip end, got %d", hs.closes)
	}

	// The timeout still pending must not close again
	hs.advance(constants.PortraitTimeout)
	if hs.closes != 1 {
		t.Errorf("Expected exactly one close, got %d", hs.closes)
	}
}

func TestPortraitClosesOnTimeout(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	p := NewPortrait("")
	hs.mount(p)

	hs.advance(constants.PortraitTimeout - time.Millisecond)
	if hs.closes != 0 {
		t.Fatal("Closed early")
	}
	hs.advance(time.Millisecond)
	if hs.closes != 1 {
		t.Fatalf("Expected timeout close, got %d", hs.closes)
	}

	hs.release(p)
	// A clip ending after release is dropped
	hs.player.plays[0].onEnd()
	hs.advance(constants.FrameUpdateInterval)
	if hs.closes != 1 {
		t.Errorf("Late end callback closed again: %d", hs.closes)
	}
	if hs.player.plays[0].stopped != 1 {
		t.Errorf("Expected clip stopped on release")
	}
}

func TestPortraitImageArrives(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	p := NewPortrait("https://example.com/goat.jpg")
	hs.mount(p)

	if len(hs.images.srcs) != 1 || hs.images.srcs[0] != "https://example.com/goat.jpg" {
		t.Fatalf("Unexpected image requests %v", hs.images.srcs)
	}
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	hs.images.done(img, nil)
	if p.HasImage() {
		t.Fatal("Image must be delivered on the loop goroutine")
	}
	hs.advance(constants.FrameUpdateInterval)
	if !p.HasImage() {
		t.Fatal("Expected image after the next frame")
	}
	buf := hs.render(p)
	if !containsText(buf, "PRINCE OF DARKNESS") {
		t.Error("Expected subtitle")
	}
}

func TestPortraitImageFailureIgnored(t *testing.T) {
	hs := newHarness(t, 80, 24, rand.NewSource(1))
	p := NewPortrait("missing.png")
	hs.mount(p)
	hs.images.done(nil, errors.New("404"))
	hs.advance(constants.FrameUpdateInterval)
	if p.HasImage() {
		t.Error("Failed load must leave no image")
	}
	hs.render(p)
}

func TestStrobeAlpha(t *testing.T) {
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{50 * time.Millisecond, 0.2},
		{100 * time.Millisecond, 0},
		{150 * time.Millisecond, 0.4},
		{400 * time.Millisecond, 0},
		{strobeCycle + 150*time.Millisecond, 0.4},
	}
	for _, tt := range tests {
		if got := strobeAlpha(tt.at); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("strobeAlpha(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}
